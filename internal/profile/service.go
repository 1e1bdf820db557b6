package profile

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/campuslife/CampusLife_Go/internal/domain"
	"github.com/campuslife/CampusLife_Go/internal/logger"
	"github.com/campuslife/CampusLife_Go/internal/repository"
	"github.com/campuslife/CampusLife_Go/internal/storage"
)

// Service defines the interface for campus profile operations
type Service interface {
	GetOrCreate(ctx context.Context, userID, displayName string) (*domain.Profile, error)
	Get(ctx context.Context, userID string) (*domain.Profile, error)
	Update(ctx context.Context, userID string, update Update) (*domain.Profile, error)
	List(ctx context.Context) ([]domain.Profile, error)
	Search(ctx context.Context, query string) ([]domain.Profile, error)
	BirthdaysInMonth(ctx context.Context, month time.Month) ([]domain.BirthdayEntry, error)

	// UpdateAvatar stores a new avatar image and points the profile at it.
	// The avatar file ID is server-assigned; it cannot be set through Update.
	UpdateAvatar(ctx context.Context, userID, contentType string, image io.Reader) (*domain.Profile, error)

	// OpenAvatar returns the avatar bytes and the file ID for content-type
	// inference. The caller closes the reader.
	OpenAvatar(ctx context.Context, userID string) (io.ReadCloser, string, error)
}

// Update carries the mutable profile fields. Nil fields are left unchanged.
type Update struct {
	DisplayName *string
	Bio         *string
	Course      *string
	Birthday    *string
}

// service implements the Service interface
type service struct {
	repo  repository.Profile
	files storage.Store
	title cases.Caser
}

// NewService creates a new profile service
func NewService(repo repository.Profile, files storage.Store) Service {
	return &service{
		repo:  repo,
		files: files,
		title: cases.Title(language.English),
	}
}

// GetOrCreate returns the user's profile, bootstrapping an empty one on
// first access so every account always has a profile.
func (s *service) GetOrCreate(ctx context.Context, userID, displayName string) (*domain.Profile, error) {
	log := logger.FromContext(ctx)

	profile, err := s.repo.GetProfileByUserID(ctx, userID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, domain.ErrProfileNotFound) {
		return nil, err
	}

	profile = &domain.Profile{
		UserID:      userID,
		DisplayName: displayName,
	}
	if err := s.repo.CreateProfile(ctx, profile); err != nil {
		return nil, err
	}

	log.Info("Profile created", "user_id", userID)
	return profile, nil
}

// Get fetches a profile by user ID
func (s *service) Get(ctx context.Context, userID string) (*domain.Profile, error) {
	return s.repo.GetProfileByUserID(ctx, userID)
}

// Update applies the non-nil fields of the update to the profile
func (s *service) Update(ctx context.Context, userID string, update Update) (*domain.Profile, error) {
	profile, err := s.repo.GetProfileByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if update.DisplayName != nil {
		if *update.DisplayName == "" {
			return nil, fmt.Errorf("%w: display name cannot be empty", domain.ErrInvalidInput)
		}
		profile.DisplayName = *update.DisplayName
	}
	if update.Bio != nil {
		profile.Bio = *update.Bio
	}
	if update.Course != nil {
		profile.Course = s.title.String(strings.TrimSpace(*update.Course))
	}
	if update.Birthday != nil {
		if *update.Birthday != "" {
			if _, err := time.Parse(domain.DateFormat, *update.Birthday); err != nil {
				return nil, fmt.Errorf("%w: birthday must be formatted as %s", domain.ErrInvalidInput, domain.DateFormat)
			}
		}
		profile.Birthday = *update.Birthday
	}

	if err := s.repo.UpdateProfile(ctx, *profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// List returns all profiles sorted by display name
func (s *service) List(ctx context.Context) ([]domain.Profile, error) {
	profiles, err := s.repo.ListProfiles(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(profiles, func(i, j int) bool {
		return strings.ToLower(profiles[i].DisplayName) < strings.ToLower(profiles[j].DisplayName)
	})
	return profiles, nil
}

// Search finds profiles whose display name or course fuzzy-matches the
// query, best matches first.
func (s *service) Search(ctx context.Context, query string) ([]domain.Profile, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.List(ctx)
	}

	profiles, err := s.repo.ListProfiles(ctx)
	if err != nil {
		return nil, err
	}

	type ranked struct {
		profile domain.Profile
		score   int
	}
	var matches []ranked
	for _, p := range profiles {
		score := fuzzy.RankMatchNormalizedFold(query, p.DisplayName)
		if courseScore := fuzzy.RankMatchNormalizedFold(query, p.Course); courseScore >= 0 && (score < 0 || courseScore < score) {
			score = courseScore
		}
		if score < 0 {
			continue
		}
		matches = append(matches, ranked{profile: p, score: score})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score < matches[j].score
	})

	results := make([]domain.Profile, 0, len(matches))
	for _, m := range matches {
		results = append(results, m.profile)
	}
	return results, nil
}

// UpdateAvatar stores the new image, repoints the profile, then removes the
// replaced file. A stale previous file is tolerated.
func (s *service) UpdateAvatar(ctx context.Context, userID, contentType string, image io.Reader) (*domain.Profile, error) {
	log := logger.FromContext(ctx)

	if userID == "" {
		return nil, domain.ErrNotAuthenticated
	}
	ext, ok := storage.ImageExtensions[contentType]
	if !ok {
		return nil, fmt.Errorf("%w: unsupported content type %q", domain.ErrInvalidInput, contentType)
	}

	profile, err := s.repo.GetProfileByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	fileID, err := s.files.Save(ctx, ext, image)
	if err != nil {
		return nil, fmt.Errorf("failed to store avatar: %w", err)
	}

	previous := profile.AvatarID
	profile.AvatarID = fileID
	if err := s.repo.UpdateProfile(ctx, *profile); err != nil {
		if cleanupErr := s.files.Delete(ctx, fileID); cleanupErr != nil {
			log.Warn("Failed to clean up orphaned avatar", "file_id", fileID, "error", cleanupErr)
		}
		return nil, err
	}

	if previous != "" {
		if err := s.files.Delete(ctx, previous); err != nil && !errors.Is(err, storage.ErrFileNotFound) {
			log.Warn("Failed to delete replaced avatar", "file_id", previous, "error", err)
		}
	}

	log.Info("Avatar updated", "user_id", userID, "file_id", fileID)
	return profile, nil
}

// OpenAvatar returns the avatar bytes for a user, or ErrAvatarNotFound when
// none has been uploaded.
func (s *service) OpenAvatar(ctx context.Context, userID string) (io.ReadCloser, string, error) {
	profile, err := s.repo.GetProfileByUserID(ctx, userID)
	if err != nil {
		return nil, "", err
	}
	if profile.AvatarID == "" {
		return nil, "", domain.ErrAvatarNotFound
	}

	reader, err := s.files.Open(ctx, profile.AvatarID)
	if err != nil {
		if errors.Is(err, storage.ErrFileNotFound) {
			return nil, "", domain.ErrAvatarNotFound
		}
		return nil, "", err
	}
	return reader, profile.AvatarID, nil
}

// BirthdaysInMonth lists everyone with a birthday in the given month,
// ordered by day.
func (s *service) BirthdaysInMonth(ctx context.Context, month time.Month) ([]domain.BirthdayEntry, error) {
	profiles, err := s.repo.ListProfiles(ctx)
	if err != nil {
		return nil, err
	}

	type dated struct {
		entry domain.BirthdayEntry
		day   int
	}
	var entries []dated
	for _, p := range profiles {
		if p.Birthday == "" {
			continue
		}
		birthday, err := time.Parse(domain.DateFormat, p.Birthday)
		if err != nil {
			continue
		}
		if birthday.Month() != month {
			continue
		}
		entries = append(entries, dated{
			entry: domain.BirthdayEntry{
				UserID:      p.UserID,
				DisplayName: p.DisplayName,
				Birthday:    p.Birthday,
			},
			day: birthday.Day(),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].day < entries[j].day
	})

	results := make([]domain.BirthdayEntry, 0, len(entries))
	for _, e := range entries {
		results = append(results, e.entry)
	}
	return results, nil
}
