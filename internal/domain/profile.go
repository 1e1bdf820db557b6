package domain

import "time"

// Profile holds the public campus profile for a user.
// One profile exists per user; it is created on first login.
type Profile struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	DisplayName string    `json:"display_name"`
	Bio         string    `json:"bio"`
	Course      string    `json:"course"`
	AvatarID    string    `json:"avatar_id"`
	Birthday    string    `json:"birthday"` // YYYY-MM-DD, empty when unset
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BirthdayEntry is a directory row for the birthdays page
type BirthdayEntry struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	Birthday    string `json:"birthday"`
}
