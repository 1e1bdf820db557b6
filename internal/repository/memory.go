package repository

import (
	"context"

	"github.com/campuslife/CampusLife_Go/internal/domain"
)

// Memory defines the interface for memory metadata persistence.
// The photo bytes themselves live in storage.Store, keyed by FileID.
type Memory interface {
	CreateMemory(ctx context.Context, memory *domain.Memory) error
	GetMemoryByID(ctx context.Context, memoryID string) (*domain.Memory, error)
	ListMemories(ctx context.Context) ([]domain.Memory, error)
	DeleteMemory(ctx context.Context, memoryID string) error
}
