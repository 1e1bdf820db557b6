package dailysong

import (
	"context"
	"errors"
	"fmt"

	"github.com/campuslife/CampusLife_Go/internal/domain"
	"github.com/campuslife/CampusLife_Go/internal/logger"
	"github.com/campuslife/CampusLife_Go/internal/metrics"
	"github.com/campuslife/CampusLife_Go/internal/repository"
)

// Notifier is told when a day's winner slot is claimed. Announcements are
// best-effort: a notifier failure never fails the submission.
type Notifier interface {
	AnnounceWinner(ctx context.Context, winner *domain.Submission)
}

// Service defines the interface for the daily pick engine
type Service interface {
	// GetSongOfTheDay returns today's winning submission, or nil while the
	// winner slot is still open.
	GetSongOfTheDay(ctx context.Context) (*domain.Submission, error)

	// HasSubmittedToday reports whether the user already has a pick for
	// today. Display hint only; Submit re-checks at write time.
	HasSubmittedToday(ctx context.Context, userID string) (bool, error)

	// Submit claims today's winner slot for the user. Fails with
	// *domain.AlreadyWonError when the slot is taken, naming the winner.
	Submit(ctx context.Context, userID, displayName string, song domain.Song) (*domain.SubmitResult, error)

	// ComputeStreak derives the user's consecutive-day streak from their
	// full submission history.
	ComputeStreak(ctx context.Context, userID string) (int, error)
}

// service implements the Service interface
type service struct {
	repo     repository.DailySong
	clock    Clock
	notifier Notifier
}

// NewService creates a new daily song service. notifier may be nil.
func NewService(repo repository.DailySong, clock Clock, notifier Notifier) Service {
	return &service{
		repo:     repo,
		clock:    clock,
		notifier: notifier,
	}
}

func (s *service) GetSongOfTheDay(ctx context.Context) (*domain.Submission, error) {
	winner, err := s.repo.GetWinner(ctx, s.clock.Today())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
	}
	return winner, nil
}

func (s *service) HasSubmittedToday(ctx context.Context, userID string) (bool, error) {
	if userID == "" {
		return false, domain.ErrNotAuthenticated
	}
	submission, err := s.repo.GetSubmission(ctx, userID, s.clock.Today())
	if err != nil {
		return false, fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
	}
	return submission != nil, nil
}

func (s *service) Submit(ctx context.Context, userID, displayName string, song domain.Song) (*domain.SubmitResult, error) {
	log := logger.FromContext(ctx)

	if userID == "" {
		return nil, domain.ErrNotAuthenticated
	}
	if song.Empty() {
		return nil, fmt.Errorf("%w: empty song payload", domain.ErrInvalidInput)
	}

	today := s.clock.Today()

	// Authoritative re-check at submit time. A value cached earlier in the
	// caller's session proves nothing.
	winner, err := s.repo.GetWinner(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
	}
	if winner != nil {
		metrics.DailySubmissions.WithLabelValues(metrics.OutcomeRejected).Inc()
		return nil, &domain.AlreadyWonError{Winner: winner}
	}

	submission := &domain.Submission{
		UserID:      userID,
		DisplayName: displayName,
		Song:        song,
		Date:        today,
		IsWinner:    true,
	}

	if err := s.repo.CreateSubmission(ctx, submission); err != nil {
		switch {
		case errors.Is(err, domain.ErrAlreadyWon):
			// Lost the check-then-act race: the store's winner slot
			// constraint fired between our read and our write. Report who
			// actually won.
			metrics.DailySubmissions.WithLabelValues(metrics.OutcomeRejected).Inc()
			winner, werr := s.repo.GetWinner(ctx, today)
			if werr != nil || winner == nil {
				log.Warn("Lost winner race but could not load winner", "date", today, "error", werr)
				return nil, &domain.AlreadyWonError{}
			}
			return nil, &domain.AlreadyWonError{Winner: winner}
		case errors.Is(err, domain.ErrAlreadySubmitted):
			metrics.DailySubmissions.WithLabelValues(metrics.OutcomeRejected).Inc()
			return nil, err
		default:
			return nil, fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
		}
	}

	metrics.DailySubmissions.WithLabelValues(metrics.OutcomeWon).Inc()
	log.Info("Song of the day claimed",
		"user_id", userID,
		"date", today,
		"track", song.TrackName)

	streak, err := s.ComputeStreak(ctx, userID)
	if err != nil {
		// The submission landed; a streak read failure should not undo it
		log.Warn("Failed to compute streak after submission", "user_id", userID, "error", err)
		streak = 1
	}

	if s.notifier != nil {
		s.notifier.AnnounceWinner(ctx, submission)
	}

	return &domain.SubmitResult{Submission: submission, Streak: streak}, nil
}

func (s *service) ComputeStreak(ctx context.Context, userID string) (int, error) {
	if userID == "" {
		return 0, domain.ErrNotAuthenticated
	}
	history, err := s.repo.ListSubmissionsByUser(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
	}
	return StreakFromHistory(history), nil
}
