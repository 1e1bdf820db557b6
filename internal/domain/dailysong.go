package domain

import "time"

// DateFormat is the calendar-date layout used for submission dates.
// Submissions carry a date, never a time of day.
const DateFormat = "2006-01-02"

// Song is the picked content of a daily submission. The daily pick engine
// treats it as an opaque payload; only the search client knows where it
// came from.
type Song struct {
	TrackName  string `json:"track_name"`
	ArtistName string `json:"artist_name"`
	ArtworkURL string `json:"artwork_url"`
	PreviewURL string `json:"preview_url"`
}

// Empty reports whether the song payload carries no content
func (s Song) Empty() bool {
	return s.TrackName == "" && s.ArtistName == ""
}

// Submission is one user's daily song pick.
// Submissions are append-only: Date and IsWinner never change after creation.
type Submission struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	DisplayName string    `json:"display_name"`
	Song        Song      `json:"song"`
	Date        string    `json:"date"` // YYYY-MM-DD
	IsWinner    bool      `json:"is_winner"`
	CreatedAt   time.Time `json:"created_at"`
}

// SubmitResult is returned by a successful daily song submission
type SubmitResult struct {
	Submission *Submission `json:"submission"`
	Streak     int         `json:"streak"`
}
