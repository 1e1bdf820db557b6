package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campuslife/CampusLife_Go/internal/domain"
)

// WishlistRepository implements the wishlist repository for PostgreSQL
type WishlistRepository struct {
	db *pgxpool.Pool
}

// NewWishlistRepository creates a new WishlistRepository
func NewWishlistRepository(db *pgxpool.Pool) *WishlistRepository {
	return &WishlistRepository{db: db}
}

// CreateItem inserts a new wishlist item
func (r *WishlistRepository) CreateItem(ctx context.Context, item *domain.WishlistItem) error {
	query := `
		INSERT INTO wishlist_items (title, description, owner_token)
		VALUES ($1, $2, $3)
		RETURNING item_id, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query, item.Title, item.Description, item.OwnerToken).
		Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert wishlist item: %w", err)
	}
	return nil
}

// GetItemByID fetches one wishlist item including its owner token
func (r *WishlistRepository) GetItemByID(ctx context.Context, itemID string) (*domain.WishlistItem, error) {
	query := `
		SELECT item_id, title, description, owner_token, created_at, updated_at
		FROM wishlist_items
		WHERE item_id = $1
	`
	var item domain.WishlistItem
	err := r.db.QueryRow(ctx, query, itemID).
		Scan(&item.ID, &item.Title, &item.Description, &item.OwnerToken, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrWishlistItemNotFound
		}
		return nil, fmt.Errorf("failed to get wishlist item: %w", err)
	}
	return &item, nil
}

// ListItems returns all wishlist items newest first
func (r *WishlistRepository) ListItems(ctx context.Context) ([]domain.WishlistItem, error) {
	query := `
		SELECT item_id, title, description, owner_token, created_at, updated_at
		FROM wishlist_items
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list wishlist items: %w", err)
	}
	defer rows.Close()

	var items []domain.WishlistItem
	for rows.Next() {
		var item domain.WishlistItem
		if err := rows.Scan(&item.ID, &item.Title, &item.Description, &item.OwnerToken, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan wishlist item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// UpdateItem persists title/description edits
func (r *WishlistRepository) UpdateItem(ctx context.Context, item domain.WishlistItem) error {
	query := `
		UPDATE wishlist_items
		SET title = $1, description = $2, updated_at = NOW()
		WHERE item_id = $3
	`
	tag, err := r.db.Exec(ctx, query, item.Title, item.Description, item.ID)
	if err != nil {
		return fmt.Errorf("failed to update wishlist item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrWishlistItemNotFound
	}
	return nil
}

// DeleteItem removes a wishlist item
func (r *WishlistRepository) DeleteItem(ctx context.Context, itemID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM wishlist_items WHERE item_id = $1`, itemID)
	if err != nil {
		return fmt.Errorf("failed to delete wishlist item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrWishlistItemNotFound
	}
	return nil
}
