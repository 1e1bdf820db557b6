package rant

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/campuslife/CampusLife_Go/internal/domain"
)

// FakeRepository is a stateful in-memory rant store for testing
type FakeRepository struct {
	mu    sync.Mutex
	rants map[string]*domain.Rant
}

// NewFakeRepository creates an empty fake rant store
func NewFakeRepository() *FakeRepository {
	return &FakeRepository{rants: make(map[string]*domain.Rant)}
}

func (f *FakeRepository) CreateRant(ctx context.Context, rant *domain.Rant) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	rant.ID = uuid.NewString()
	rant.CreatedAt = time.Now()
	rant.UpdatedAt = rant.CreatedAt
	clone := *rant
	f.rants[rant.ID] = &clone
	return nil
}

func (f *FakeRepository) GetRantByID(ctx context.Context, rantID string) (*domain.Rant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	rant, ok := f.rants[rantID]
	if !ok {
		return nil, domain.ErrRantNotFound
	}
	clone := *rant
	return &clone, nil
}

func (f *FakeRepository) ListRants(ctx context.Context, limit int) ([]domain.Rant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	rants := make([]domain.Rant, 0, len(f.rants))
	for _, r := range f.rants {
		rants = append(rants, *r)
	}
	sort.Slice(rants, func(i, j int) bool {
		return rants[i].CreatedAt.After(rants[j].CreatedAt)
	})
	if limit > 0 && len(rants) > limit {
		rants = rants[:limit]
	}
	return rants, nil
}

func (f *FakeRepository) UpdateRant(ctx context.Context, rant domain.Rant) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.rants[rant.ID]; !ok {
		return domain.ErrRantNotFound
	}
	rant.UpdatedAt = time.Now()
	f.rants[rant.ID] = &rant
	return nil
}

func (f *FakeRepository) DeleteRant(ctx context.Context, rantID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.rants[rantID]; !ok {
		return domain.ErrRantNotFound
	}
	delete(f.rants, rantID)
	return nil
}
