package rant

import (
	"context"
	"fmt"
	"strings"

	"github.com/campuslife/CampusLife_Go/internal/domain"
	"github.com/campuslife/CampusLife_Go/internal/logger"
	"github.com/campuslife/CampusLife_Go/internal/metrics"
	"github.com/campuslife/CampusLife_Go/internal/repository"
)

// MaxContentLength bounds rant content in characters
const MaxContentLength = 1000

// DefaultListLimit caps a feed page when the caller asks for no limit
const DefaultListLimit = 50

// Service defines the interface for rant feed operations
type Service interface {
	Create(ctx context.Context, userID, displayName, content string) (*domain.Rant, error)
	Get(ctx context.Context, rantID string) (*domain.Rant, error)
	List(ctx context.Context, limit int) ([]domain.Rant, error)
	Update(ctx context.Context, userID, rantID, content string) (*domain.Rant, error)
	Delete(ctx context.Context, userID, rantID string) error
}

// service implements the Service interface
type service struct {
	repo repository.Rant
}

// NewService creates a new rant service
func NewService(repo repository.Rant) Service {
	return &service{repo: repo}
}

func validateContent(content string) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", fmt.Errorf("%w: content is required", domain.ErrInvalidInput)
	}
	if len([]rune(content)) > MaxContentLength {
		return "", fmt.Errorf("%w: content exceeds %d characters", domain.ErrInvalidInput, MaxContentLength)
	}
	return content, nil
}

// Create posts a new rant to the feed
func (s *service) Create(ctx context.Context, userID, displayName, content string) (*domain.Rant, error) {
	log := logger.FromContext(ctx)

	if userID == "" {
		return nil, domain.ErrNotAuthenticated
	}
	content, err := validateContent(content)
	if err != nil {
		return nil, err
	}

	rant := &domain.Rant{
		UserID:      userID,
		DisplayName: displayName,
		Content:     content,
	}
	if err := s.repo.CreateRant(ctx, rant); err != nil {
		return nil, err
	}

	metrics.RantsCreated.Inc()
	log.Info("Rant created", "rant_id", rant.ID, "user_id", userID)
	return rant, nil
}

// Get fetches a single rant
func (s *service) Get(ctx context.Context, rantID string) (*domain.Rant, error) {
	return s.repo.GetRantByID(ctx, rantID)
}

// List returns the feed newest-first
func (s *service) List(ctx context.Context, limit int) ([]domain.Rant, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	return s.repo.ListRants(ctx, limit)
}

// Update edits a rant's content. Only the author may edit.
func (s *service) Update(ctx context.Context, userID, rantID, content string) (*domain.Rant, error) {
	content, err := validateContent(content)
	if err != nil {
		return nil, err
	}

	rant, err := s.repo.GetRantByID(ctx, rantID)
	if err != nil {
		return nil, err
	}
	if rant.UserID != userID {
		return nil, domain.ErrNotOwner
	}

	rant.Content = content
	if err := s.repo.UpdateRant(ctx, *rant); err != nil {
		return nil, err
	}
	return rant, nil
}

// Delete removes a rant. Only the author may delete.
func (s *service) Delete(ctx context.Context, userID, rantID string) error {
	rant, err := s.repo.GetRantByID(ctx, rantID)
	if err != nil {
		return err
	}
	if rant.UserID != userID {
		return domain.ErrNotOwner
	}
	return s.repo.DeleteRant(ctx, rantID)
}
