package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campuslife/CampusLife_Go/internal/domain"
)

// Constraint names from the daily_songs migration. The partial unique index
// is the authoritative arbiter of the winner slot: one winner per date,
// first write wins, and the database decides, not the client.
const (
	winnerSlotIndex    = "idx_daily_songs_winner"
	userDateConstraint = "daily_songs_user_id_submission_date_key"
	submissionColumns  = `submission_id, user_id, display_name, track_name, artist_name, artwork_url, preview_url, submission_date, is_winner, created_at`
)

// DailySongRepository implements the submission store for PostgreSQL
type DailySongRepository struct {
	db *pgxpool.Pool
}

// NewDailySongRepository creates a new DailySongRepository
func NewDailySongRepository(db *pgxpool.Pool) *DailySongRepository {
	return &DailySongRepository{db: db}
}

func scanSubmission(row pgx.Row, s *domain.Submission) error {
	return row.Scan(&s.ID, &s.UserID, &s.DisplayName,
		&s.Song.TrackName, &s.Song.ArtistName, &s.Song.ArtworkURL, &s.Song.PreviewURL,
		&s.Date, &s.IsWinner, &s.CreatedAt)
}

// CreateSubmission appends one submission. Two unique constraints guard the
// insert: the winner slot index (one winner per date) and the per-user
// uniqueness (one pick per user per date). Losing the winner race surfaces as
// domain.ErrAlreadyWon so the caller can re-read who claimed the slot.
func (r *DailySongRepository) CreateSubmission(ctx context.Context, submission *domain.Submission) error {
	query := `
		INSERT INTO daily_songs (user_id, display_name, track_name, artist_name, artwork_url, preview_url, submission_date, is_winner)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING submission_id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		submission.UserID, submission.DisplayName,
		submission.Song.TrackName, submission.Song.ArtistName,
		submission.Song.ArtworkURL, submission.Song.PreviewURL,
		submission.Date, submission.IsWinner).
		Scan(&submission.ID, &submission.CreatedAt)
	if err != nil {
		if isUniqueViolation(err, winnerSlotIndex) {
			return domain.ErrAlreadyWon
		}
		if isUniqueViolation(err, userDateConstraint) {
			return domain.ErrAlreadySubmitted
		}
		return fmt.Errorf("failed to insert submission: %w", err)
	}
	return nil
}

// GetWinner returns the winning submission for a date, or nil when the slot
// is still open. An open slot is the steady state, not an error.
func (r *DailySongRepository) GetWinner(ctx context.Context, date string) (*domain.Submission, error) {
	query := `SELECT ` + submissionColumns + ` FROM daily_songs WHERE submission_date = $1 AND is_winner`

	var submission domain.Submission
	if err := scanSubmission(r.db.QueryRow(ctx, query, date), &submission); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get winner: %w", err)
	}
	return &submission, nil
}

// GetSubmission returns a user's pick for a date, or nil when absent
func (r *DailySongRepository) GetSubmission(ctx context.Context, userID, date string) (*domain.Submission, error) {
	query := `SELECT ` + submissionColumns + ` FROM daily_songs WHERE user_id = $1 AND submission_date = $2`

	var submission domain.Submission
	if err := scanSubmission(r.db.QueryRow(ctx, query, userID, date), &submission); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get submission: %w", err)
	}
	return &submission, nil
}

// ListSubmissionsByUser returns a user's full submission history, most
// recent date first
func (r *DailySongRepository) ListSubmissionsByUser(ctx context.Context, userID string) ([]domain.Submission, error) {
	query := `SELECT ` + submissionColumns + ` FROM daily_songs WHERE user_id = $1 ORDER BY submission_date DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	defer rows.Close()

	var submissions []domain.Submission
	for rows.Next() {
		var s domain.Submission
		if err := scanSubmission(rows, &s); err != nil {
			return nil, fmt.Errorf("failed to scan submission: %w", err)
		}
		submissions = append(submissions, s)
	}
	return submissions, rows.Err()
}
