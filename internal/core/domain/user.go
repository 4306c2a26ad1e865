package domain

import "time"

// User models a registered account.
type User struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SavedAddress is a ship-from address stored for a user.
type SavedAddress struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Address   Address   `json:"address"`
	CreatedAt time.Time `json:"created_at"`
}
