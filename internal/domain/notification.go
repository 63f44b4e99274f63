package domain

// Notification categories as the server keys them.
const (
	CategoryComments  = "comments"
	CategoryLikes     = "likes"
	CategoryFollowers = "followers"
)

// Notification is the union of the three shapes the server groups by
// category; fields outside an item's category are zero-valued.
type Notification struct {
	ID int `json:"id"`

	// comment on my post
	Post             int    `json:"post,omitempty"`
	PostTitle        string `json:"post_title,omitempty"`
	CommentatorEmail string `json:"commentator_email,omitempty"`
	CommentatorID    int    `json:"commentator_id,omitempty"`
	CommentatorName  string `json:"commentator_name,omitempty"`
	Comment          string `json:"comment,omitempty"`

	// like on my post
	PostID            int    `json:"post_id,omitempty"`
	LikedAccountEmail string `json:"liked_account_email,omitempty"`
	LikedAccountName  string `json:"liked_account_name,omitempty"`

	// new follower
	FollowerEmail string `json:"follower_email,omitempty"`
	FollowerName  string `json:"follower_name,omitempty"`
	FollowerID    int    `json:"follower_id,omitempty"`
	FollowedEmail string `json:"followed_email,omitempty"`

	PosterEmail    string `json:"poster_email,omitempty"`
	Read           bool   `json:"read"`
	CreateDatetime string `json:"create_datetime"`
}

// Notifications maps a category name to its ordered notification list.
type Notifications map[string][]Notification
