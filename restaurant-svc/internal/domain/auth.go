package domain

// TokenPayload is the identity carried inside a session token.
type TokenPayload struct {
	Subject      string
	RestaurantID string
}

// Principal is the authorized caller handed to services after the guard ran.
type Principal struct {
	TokenPayload
	Member *Member
}

type Session struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	Name        string `json:"name"`
	AccessToken string `json:"access_token,omitempty"`
}
