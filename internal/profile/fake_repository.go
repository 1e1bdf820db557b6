package profile

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/campuslife/CampusLife_Go/internal/domain"
)

// FakeRepository is a stateful in-memory profile store for testing
type FakeRepository struct {
	mu       sync.Mutex
	profiles map[string]*domain.Profile // keyed by user ID
}

// NewFakeRepository creates an empty fake profile store
func NewFakeRepository() *FakeRepository {
	return &FakeRepository{profiles: make(map[string]*domain.Profile)}
}

func (f *FakeRepository) CreateProfile(ctx context.Context, profile *domain.Profile) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	profile.ID = uuid.NewString()
	profile.CreatedAt = time.Now()
	profile.UpdatedAt = profile.CreatedAt
	clone := *profile
	f.profiles[profile.UserID] = &clone
	return nil
}

func (f *FakeRepository) GetProfileByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	profile, ok := f.profiles[userID]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	clone := *profile
	return &clone, nil
}

func (f *FakeRepository) ListProfiles(ctx context.Context) ([]domain.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	profiles := make([]domain.Profile, 0, len(f.profiles))
	for _, p := range f.profiles {
		profiles = append(profiles, *p)
	}
	return profiles, nil
}

func (f *FakeRepository) UpdateProfile(ctx context.Context, profile domain.Profile) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.profiles[profile.UserID]; !ok {
		return domain.ErrProfileNotFound
	}
	profile.UpdatedAt = time.Now()
	f.profiles[profile.UserID] = &profile
	return nil
}
