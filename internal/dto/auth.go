package dto

// LoginRequest carries the shared access password. There are no user
// accounts; a single secret gates the whole application.
type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// LoginResponse returns the session token issued after a successful gate
// check.
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expiresAt"`
}
