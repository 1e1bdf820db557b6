package repository

import (
	"context"

	"github.com/campuslife/CampusLife_Go/internal/domain"
)

// DailySong defines the interface for the submission store.
//
// The store, not the engine, adjudicates the winner slot: CreateSubmission
// must enforce "at most one winner per date" atomically and return
// domain.ErrAlreadyWon when a concurrent writer claimed the slot first, and
// domain.ErrAlreadySubmitted when the user already has a pick for that date.
// Submissions are append-only; there is no update or delete.
type DailySong interface {
	CreateSubmission(ctx context.Context, submission *domain.Submission) error
	GetWinner(ctx context.Context, date string) (*domain.Submission, error)
	GetSubmission(ctx context.Context, userID, date string) (*domain.Submission, error)
	ListSubmissionsByUser(ctx context.Context, userID string) ([]domain.Submission, error)
}
