package domain

import "time"

// Memory is an uploaded photo with a caption.
// FileID references the stored file in the memories bucket.
type Memory struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	FileID    string    `json:"file_id"`
	Caption   string    `json:"caption"`
	CreatedAt time.Time `json:"created_at"`
}
