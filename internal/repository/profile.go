package repository

import (
	"context"

	"github.com/campuslife/CampusLife_Go/internal/domain"
)

// Profile defines the interface for profile persistence
type Profile interface {
	CreateProfile(ctx context.Context, profile *domain.Profile) error
	GetProfileByUserID(ctx context.Context, userID string) (*domain.Profile, error)
	ListProfiles(ctx context.Context) ([]domain.Profile, error)
	UpdateProfile(ctx context.Context, profile domain.Profile) error
}
