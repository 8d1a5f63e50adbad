package models

// SessionUser is the signed-in admin as returned by /user/login and
// /user/register, minus the password.
type SessionUser struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

// TokenPair is issued by the identity provider and exchanged for a session
type TokenPair struct {
	IDToken      string `json:"idToken" validate:"required"`
	RefreshToken string `json:"refreshToken" validate:"required"`
}
