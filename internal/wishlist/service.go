package wishlist

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"

	"github.com/campuslife/CampusLife_Go/internal/domain"
	"github.com/campuslife/CampusLife_Go/internal/logger"
	"github.com/campuslife/CampusLife_Go/internal/metrics"
	"github.com/campuslife/CampusLife_Go/internal/repository"
)

// Field limits in characters
const (
	MaxTitleLength       = 120
	MaxDescriptionLength = 500
)

// Service defines the interface for the anonymous wishlist.
// Items are never tied to accounts; ownership is proven by presenting the
// client-generated token supplied at creation.
type Service interface {
	Create(ctx context.Context, title, description, ownerToken string) (*domain.WishlistItem, error)
	List(ctx context.Context) ([]domain.WishlistItem, error)
	Update(ctx context.Context, itemID, title, description, ownerToken string) (*domain.WishlistItem, error)
	Delete(ctx context.Context, itemID, ownerToken string) error
}

// service implements the Service interface
type service struct {
	repo repository.Wishlist
}

// NewService creates a new wishlist service
func NewService(repo repository.Wishlist) Service {
	return &service{repo: repo}
}

func validateItem(title, description string) (string, string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", "", fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}
	if len([]rune(title)) > MaxTitleLength {
		return "", "", fmt.Errorf("%w: title exceeds %d characters", domain.ErrInvalidInput, MaxTitleLength)
	}
	if len([]rune(description)) > MaxDescriptionLength {
		return "", "", fmt.Errorf("%w: description exceeds %d characters", domain.ErrInvalidInput, MaxDescriptionLength)
	}
	return title, description, nil
}

// tokenMatches compares tokens in constant time
func tokenMatches(stored, presented string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(presented)) == 1
}

// Create adds an anonymous item guarded by the given owner token
func (s *service) Create(ctx context.Context, title, description, ownerToken string) (*domain.WishlistItem, error) {
	log := logger.FromContext(ctx)

	title, description, err := validateItem(title, description)
	if err != nil {
		return nil, err
	}
	if ownerToken == "" {
		return nil, fmt.Errorf("%w: owner token is required", domain.ErrInvalidInput)
	}

	item := &domain.WishlistItem{
		Title:       title,
		Description: description,
		OwnerToken:  ownerToken,
	}
	if err := s.repo.CreateItem(ctx, item); err != nil {
		return nil, err
	}

	metrics.WishlistItems.WithLabelValues(metrics.ActionCreated).Inc()
	log.Info("Wishlist item created", "item_id", item.ID)
	return item, nil
}

// List returns all items with owner tokens stripped
func (s *service) List(ctx context.Context) ([]domain.WishlistItem, error) {
	items, err := s.repo.ListItems(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i].OwnerToken = ""
	}
	return items, nil
}

// Update edits an item if the presented token matches
func (s *service) Update(ctx context.Context, itemID, title, description, ownerToken string) (*domain.WishlistItem, error) {
	title, description, err := validateItem(title, description)
	if err != nil {
		return nil, err
	}

	item, err := s.repo.GetItemByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if !tokenMatches(item.OwnerToken, ownerToken) {
		return nil, domain.ErrNotOwner
	}

	item.Title = title
	item.Description = description
	if err := s.repo.UpdateItem(ctx, *item); err != nil {
		return nil, err
	}

	item.OwnerToken = ""
	return item, nil
}

// Delete removes an item if the presented token matches
func (s *service) Delete(ctx context.Context, itemID, ownerToken string) error {
	item, err := s.repo.GetItemByID(ctx, itemID)
	if err != nil {
		return err
	}
	if !tokenMatches(item.OwnerToken, ownerToken) {
		return domain.ErrNotOwner
	}

	if err := s.repo.DeleteItem(ctx, itemID); err != nil {
		return err
	}

	metrics.WishlistItems.WithLabelValues(metrics.ActionDeleted).Inc()
	return nil
}
