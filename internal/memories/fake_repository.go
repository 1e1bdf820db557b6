package memories

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/campuslife/CampusLife_Go/internal/domain"
)

// FakeRepository is a stateful in-memory memory-metadata store for testing
type FakeRepository struct {
	mu       sync.Mutex
	memories map[string]*domain.Memory
}

// NewFakeRepository creates an empty fake memory store
func NewFakeRepository() *FakeRepository {
	return &FakeRepository{memories: make(map[string]*domain.Memory)}
}

func (f *FakeRepository) CreateMemory(ctx context.Context, memory *domain.Memory) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	memory.ID = uuid.NewString()
	memory.CreatedAt = time.Now()
	clone := *memory
	f.memories[memory.ID] = &clone
	return nil
}

func (f *FakeRepository) GetMemoryByID(ctx context.Context, memoryID string) (*domain.Memory, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	memory, ok := f.memories[memoryID]
	if !ok {
		return nil, domain.ErrMemoryNotFound
	}
	clone := *memory
	return &clone, nil
}

func (f *FakeRepository) ListMemories(ctx context.Context) ([]domain.Memory, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	memories := make([]domain.Memory, 0, len(f.memories))
	for _, m := range f.memories {
		memories = append(memories, *m)
	}
	sort.Slice(memories, func(i, j int) bool {
		return memories[i].CreatedAt.After(memories[j].CreatedAt)
	})
	return memories, nil
}

func (f *FakeRepository) DeleteMemory(ctx context.Context, memoryID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.memories[memoryID]; !ok {
		return domain.ErrMemoryNotFound
	}
	delete(f.memories, memoryID)
	return nil
}
