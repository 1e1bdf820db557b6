package memories

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/campuslife/CampusLife_Go/internal/domain"
	"github.com/campuslife/CampusLife_Go/internal/logger"
	"github.com/campuslife/CampusLife_Go/internal/metrics"
	"github.com/campuslife/CampusLife_Go/internal/repository"
	"github.com/campuslife/CampusLife_Go/internal/storage"
)

// MaxCaptionLength bounds memory captions in characters
const MaxCaptionLength = 280

// Service defines the interface for the shared photo wall
type Service interface {
	Add(ctx context.Context, userID, caption, contentType string, photo io.Reader) (*domain.Memory, error)
	List(ctx context.Context) ([]domain.Memory, error)
	OpenPhoto(ctx context.Context, memoryID string) (io.ReadCloser, string, error)
	Delete(ctx context.Context, userID, memoryID string) error
}

// service implements the Service interface
type service struct {
	repo  repository.Memory
	files storage.Store
}

// NewService creates a new memories service
func NewService(repo repository.Memory, files storage.Store) Service {
	return &service{repo: repo, files: files}
}

// Add stores the photo bytes then records the metadata row. The stored
// file is removed again if the row cannot be written.
func (s *service) Add(ctx context.Context, userID, caption, contentType string, photo io.Reader) (*domain.Memory, error) {
	log := logger.FromContext(ctx)

	if userID == "" {
		return nil, domain.ErrNotAuthenticated
	}
	if len([]rune(caption)) > MaxCaptionLength {
		return nil, fmt.Errorf("%w: caption exceeds %d characters", domain.ErrInvalidInput, MaxCaptionLength)
	}
	ext, ok := storage.ImageExtensions[contentType]
	if !ok {
		return nil, fmt.Errorf("%w: unsupported content type %q", domain.ErrInvalidInput, contentType)
	}

	fileID, err := s.files.Save(ctx, ext, photo)
	if err != nil {
		return nil, fmt.Errorf("failed to store photo: %w", err)
	}

	memory := &domain.Memory{
		UserID:  userID,
		FileID:  fileID,
		Caption: caption,
	}
	if err := s.repo.CreateMemory(ctx, memory); err != nil {
		if cleanupErr := s.files.Delete(ctx, fileID); cleanupErr != nil {
			log.Warn("Failed to clean up orphaned photo", "file_id", fileID, "error", cleanupErr)
		}
		return nil, err
	}

	metrics.MemoriesUploaded.Inc()
	log.Info("Memory added", "memory_id", memory.ID, "user_id", userID)
	return memory, nil
}

// List returns all memories
func (s *service) List(ctx context.Context) ([]domain.Memory, error) {
	return s.repo.ListMemories(ctx)
}

// OpenPhoto returns the photo bytes and the file ID for content-type
// inference. The caller closes the reader.
func (s *service) OpenPhoto(ctx context.Context, memoryID string) (io.ReadCloser, string, error) {
	memory, err := s.repo.GetMemoryByID(ctx, memoryID)
	if err != nil {
		return nil, "", err
	}

	reader, err := s.files.Open(ctx, memory.FileID)
	if err != nil {
		if errors.Is(err, storage.ErrFileNotFound) {
			return nil, "", domain.ErrMemoryNotFound
		}
		return nil, "", err
	}
	return reader, memory.FileID, nil
}

// Delete removes the photo then the metadata row. Only the uploader may
// delete. A missing file is tolerated so a half-deleted memory can be
// cleaned up.
func (s *service) Delete(ctx context.Context, userID, memoryID string) error {
	log := logger.FromContext(ctx)

	memory, err := s.repo.GetMemoryByID(ctx, memoryID)
	if err != nil {
		return err
	}
	if memory.UserID != userID {
		return domain.ErrNotOwner
	}

	if err := s.files.Delete(ctx, memory.FileID); err != nil && !errors.Is(err, storage.ErrFileNotFound) {
		return fmt.Errorf("failed to delete photo: %w", err)
	}
	if err := s.repo.DeleteMemory(ctx, memoryID); err != nil {
		return err
	}

	log.Info("Memory deleted", "memory_id", memoryID, "user_id", userID)
	return nil
}
