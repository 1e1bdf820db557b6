package repository

import (
	"context"

	"github.com/campuslife/CampusLife_Go/internal/domain"
)

// Rant defines the interface for rant persistence
type Rant interface {
	CreateRant(ctx context.Context, rant *domain.Rant) error
	GetRantByID(ctx context.Context, rantID string) (*domain.Rant, error)
	ListRants(ctx context.Context, limit int) ([]domain.Rant, error)
	UpdateRant(ctx context.Context, rant domain.Rant) error
	DeleteRant(ctx context.Context, rantID string) error
}
