package repository

import (
	"context"

	"github.com/campuslife/CampusLife_Go/internal/domain"
)

// Wishlist defines the interface for wishlist persistence.
// Items carry their owner token; callers decide whether to expose it.
type Wishlist interface {
	CreateItem(ctx context.Context, item *domain.WishlistItem) error
	GetItemByID(ctx context.Context, itemID string) (*domain.WishlistItem, error)
	ListItems(ctx context.Context) ([]domain.WishlistItem, error)
	UpdateItem(ctx context.Context, item domain.WishlistItem) error
	DeleteItem(ctx context.Context, itemID string) error
}
