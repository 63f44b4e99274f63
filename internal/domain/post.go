package domain

type Post struct {
	ID             int    `json:"id"`
	Title          string `json:"title"`
	Content        string `json:"content"`
	PosterEmail    string `json:"poster_email"`
	PosterID       int    `json:"poster_id"`
	PosterName     string `json:"poster_name"`
	Likes          int    `json:"likes"`
	Channel        string `json:"channel"`
	CreateDatetime string `json:"create_datetime"`
}

// Channels the feed can be filtered by.
var Channels = []string{
	"Vegetarian_Cuisine",
	"Chinese_Cuisine",
	"Western_Cuisine",
	"Japanese_Cuisine",
	"Desserts",
	"Soups",
}
