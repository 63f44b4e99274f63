package domain

// Account is the profile record the account endpoints return.
// AccessToken is only populated on login and signup replies.
type Account struct {
	ID             int    `json:"id"`
	Email          string `json:"email"`
	Name           string `json:"name"`
	Role           string `json:"role"`
	Bio            string `json:"bio"`
	Avatar         string `json:"avatar"`
	Wallpaper      string `json:"wallpaper"`
	CreateDatetime string `json:"create_datetime"`
	AccessToken    string `json:"access_token,omitempty"`
	Followers      int    `json:"followers"`
	Likes          int    `json:"likes"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Passcode string `json:"passcode"`
}
