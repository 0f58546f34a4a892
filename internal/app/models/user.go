package models

// User defines the user model based on the 'users' table
type User struct {
	ID       int64  `json:"id" db:"id"`
	FullName string `json:"full_name" db:"full_name"`
	Email    string `json:"email" db:"email"`
	Password string `json:"-" db:"password"` // bcrypt hash, excluded from JSON
	Admin    bool   `json:"admin" db:"admin"`
}
