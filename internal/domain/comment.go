package domain

// Comment belongs to exactly one post; the store holds the comment
// list of a single post at a time.
type Comment struct {
	ID               int    `json:"id"`
	Post             int    `json:"post"`
	PostTitle        string `json:"post_title"`
	PosterEmail      string `json:"poster_email"`
	CommentatorEmail string `json:"commentator_email"`
	CommentatorID    int    `json:"commentator_id"`
	CommentatorName  string `json:"commentator_name"`
	Comment          string `json:"comment"`
	Read             bool   `json:"read"`
	CreateDatetime   string `json:"create_datetime"`
}
