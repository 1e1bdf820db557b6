package wishlist

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/campuslife/CampusLife_Go/internal/domain"
)

// FakeRepository is a stateful in-memory wishlist store for testing
type FakeRepository struct {
	mu    sync.Mutex
	items map[string]*domain.WishlistItem
}

// NewFakeRepository creates an empty fake wishlist store
func NewFakeRepository() *FakeRepository {
	return &FakeRepository{items: make(map[string]*domain.WishlistItem)}
}

func (f *FakeRepository) CreateItem(ctx context.Context, item *domain.WishlistItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	item.ID = uuid.NewString()
	item.CreatedAt = time.Now()
	item.UpdatedAt = item.CreatedAt
	clone := *item
	f.items[item.ID] = &clone
	return nil
}

func (f *FakeRepository) GetItemByID(ctx context.Context, itemID string) (*domain.WishlistItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	item, ok := f.items[itemID]
	if !ok {
		return nil, domain.ErrWishlistItemNotFound
	}
	clone := *item
	return &clone, nil
}

func (f *FakeRepository) ListItems(ctx context.Context) ([]domain.WishlistItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	items := make([]domain.WishlistItem, 0, len(f.items))
	for _, item := range f.items {
		items = append(items, *item)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func (f *FakeRepository) UpdateItem(ctx context.Context, item domain.WishlistItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	existing, ok := f.items[item.ID]
	if !ok {
		return domain.ErrWishlistItemNotFound
	}
	// The token never changes after creation
	item.OwnerToken = existing.OwnerToken
	item.UpdatedAt = time.Now()
	f.items[item.ID] = &item
	return nil
}

func (f *FakeRepository) DeleteItem(ctx context.Context, itemID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.items[itemID]; !ok {
		return domain.ErrWishlistItemNotFound
	}
	delete(f.items, itemID)
	return nil
}
