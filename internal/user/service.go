package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/campuslife/CampusLife_Go/internal/domain"
	"github.com/campuslife/CampusLife_Go/internal/logger"
	"github.com/campuslife/CampusLife_Go/internal/repository"
)

// Service defines the interface for account operations
type Service interface {
	Register(ctx context.Context, email, password, displayName string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	VerifyToken(ctx context.Context, token string) (string, error)
	GetUser(ctx context.Context, userID string) (*domain.User, error)
	UpdateName(ctx context.Context, userID, displayName string) (*domain.User, error)
	UpdateEmail(ctx context.Context, userID, email, password string) (*domain.User, error)
	UpdatePassword(ctx context.Context, userID, oldPassword, newPassword string) error
}

// service implements the Service interface
type service struct {
	repo   repository.User
	tokens *tokenIssuer
	cache  *userCache
}

// NewService creates a new user service
func NewService(repo repository.User, tokens *tokenIssuer) Service {
	return &service{
		repo:   repo,
		tokens: tokens,
		cache:  newUserCache(CacheSize, CacheTTL),
	}
}

// Register creates a new account with a bcrypt-hashed password
func (s *service) Register(ctx context.Context, email, password, displayName string) (*domain.User, error) {
	log := logger.FromContext(ctx)

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || displayName == "" {
		return nil, fmt.Errorf("%w: email and display name are required", domain.ErrInvalidInput)
	}
	if len(password) < MinPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", domain.ErrInvalidInput, MinPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Email:        email,
		DisplayName:  displayName,
		PasswordHash: string(hash),
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	log.Info("User registered", "user_id", user.ID)
	return user, nil
}

// Login verifies credentials and issues a session token
func (s *service) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Same failure for unknown email and bad password
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return token, user, nil
}

// VerifyToken validates a session token and returns the user ID it names
func (s *service) VerifyToken(_ context.Context, token string) (string, error) {
	userID, err := s.tokens.Verify(token)
	if err != nil {
		return "", domain.ErrNotAuthenticated
	}
	return userID, nil
}

// GetUser fetches a user by ID, consulting the cache first
func (s *service) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	if user, ok := s.cache.Get(userID); ok {
		return user, nil
	}

	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.cache.Set(userID, user)
	return user, nil
}

// UpdateName changes the display name
func (s *service) UpdateName(ctx context.Context, userID, displayName string) (*domain.User, error) {
	if displayName == "" {
		return nil, fmt.Errorf("%w: display name is required", domain.ErrInvalidInput)
	}

	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.DisplayName = displayName
	if err := s.repo.UpdateUser(ctx, *user); err != nil {
		return nil, err
	}

	s.cache.Invalidate(userID)
	return user, nil
}

// UpdateEmail changes the email after verifying the current password
func (s *service) UpdateEmail(ctx context.Context, userID, email, password string) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", domain.ErrInvalidInput)
	}

	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	user.Email = email
	if err := s.repo.UpdateUser(ctx, *user); err != nil {
		return nil, err
	}

	s.cache.Invalidate(userID)
	return user, nil
}

// UpdatePassword rotates the password after verifying the old one
func (s *service) UpdatePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	if len(newPassword) < MinPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", domain.ErrInvalidInput, MinPasswordLength)
	}

	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(oldPassword)); err != nil {
		return domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user.PasswordHash = string(hash)
	if err := s.repo.UpdateUser(ctx, *user); err != nil {
		return err
	}

	s.cache.Invalidate(userID)
	return nil
}
