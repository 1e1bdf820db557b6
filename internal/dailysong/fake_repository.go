package dailysong

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/campuslife/CampusLife_Go/internal/domain"
)

// FakeRepository is a stateful in-memory submission store for testing.
// Its CreateSubmission performs an atomic check-and-set on the winner slot
// under a mutex, mirroring the partial unique index the real store uses, so
// race tests can assert that concurrent submits resolve to exactly one
// winner.
type FakeRepository struct {
	mu          sync.Mutex
	submissions []domain.Submission

	// ForcedErr, when set, is returned by every method to simulate an
	// unavailable store
	ForcedErr error
}

// NewFakeRepository creates an empty fake submission store
func NewFakeRepository() *FakeRepository {
	return &FakeRepository{}
}

// Seed inserts history directly, bypassing the winner slot check
func (f *FakeRepository) Seed(submissions ...domain.Submission) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.submissions = append(f.submissions, submissions...)
}

func (f *FakeRepository) CreateSubmission(ctx context.Context, submission *domain.Submission) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.ForcedErr != nil {
		return f.ForcedErr
	}

	for _, existing := range f.submissions {
		if existing.Date == submission.Date && existing.IsWinner && submission.IsWinner {
			return domain.ErrAlreadyWon
		}
		if existing.Date == submission.Date && existing.UserID == submission.UserID {
			return domain.ErrAlreadySubmitted
		}
	}

	submission.ID = uuid.NewString()
	submission.CreatedAt = time.Now()
	f.submissions = append(f.submissions, *submission)
	return nil
}

func (f *FakeRepository) GetWinner(ctx context.Context, date string) (*domain.Submission, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.ForcedErr != nil {
		return nil, f.ForcedErr
	}

	for i := range f.submissions {
		if f.submissions[i].Date == date && f.submissions[i].IsWinner {
			s := f.submissions[i]
			return &s, nil
		}
	}
	return nil, nil
}

func (f *FakeRepository) GetSubmission(ctx context.Context, userID, date string) (*domain.Submission, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.ForcedErr != nil {
		return nil, f.ForcedErr
	}

	for i := range f.submissions {
		if f.submissions[i].UserID == userID && f.submissions[i].Date == date {
			s := f.submissions[i]
			return &s, nil
		}
	}
	return nil, nil
}

func (f *FakeRepository) ListSubmissionsByUser(ctx context.Context, userID string) ([]domain.Submission, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.ForcedErr != nil {
		return nil, f.ForcedErr
	}

	var out []domain.Submission
	for _, s := range f.submissions {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}
