package dto

// RegisterRequest is the user registration payload. Registration never
// grants the admin role; admin accounts come from seeding.
type RegisterRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest is the login payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserInfo is the user block returned alongside a token
type UserInfo struct {
	UserID   int64  `json:"user_id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Admin    bool   `json:"admin"`
}

// TokenResponse is the login response body
type TokenResponse struct {
	Msg       string   `json:"msg"`
	Token     string   `json:"token"`
	ExpiresIn int      `json:"expiresIn"`
	User      UserInfo `json:"user"`
}
