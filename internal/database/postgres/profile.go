package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campuslife/CampusLife_Go/internal/domain"
)

// ProfileRepository implements the profile repository for PostgreSQL
type ProfileRepository struct {
	db *pgxpool.Pool
}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository(db *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{db: db}
}

const profileColumns = `profile_id, user_id, display_name, bio, course, avatar_id, birthday, created_at, updated_at`

func scanProfile(row pgx.Row, p *domain.Profile) error {
	return row.Scan(&p.ID, &p.UserID, &p.DisplayName, &p.Bio, &p.Course,
		&p.AvatarID, &p.Birthday, &p.CreatedAt, &p.UpdatedAt)
}

// CreateProfile inserts a new profile for a user
func (r *ProfileRepository) CreateProfile(ctx context.Context, profile *domain.Profile) error {
	query := `
		INSERT INTO profiles (user_id, display_name, bio, course, avatar_id, birthday)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING profile_id, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query,
		profile.UserID, profile.DisplayName, profile.Bio, profile.Course,
		profile.AvatarID, profile.Birthday).
		Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert profile: %w", err)
	}
	return nil
}

// GetProfileByUserID fetches the profile belonging to a user
func (r *ProfileRepository) GetProfileByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE user_id = $1`

	var profile domain.Profile
	if err := scanProfile(r.db.QueryRow(ctx, query, userID), &profile); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &profile, nil
}

// ListProfiles returns all profiles ordered by display name
func (r *ProfileRepository) ListProfiles(ctx context.Context) ([]domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles ORDER BY display_name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer rows.Close()

	var profiles []domain.Profile
	for rows.Next() {
		var p domain.Profile
		if err := scanProfile(rows, &p); err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

// UpdateProfile persists profile edits
func (r *ProfileRepository) UpdateProfile(ctx context.Context, profile domain.Profile) error {
	query := `
		UPDATE profiles
		SET display_name = $1, bio = $2, course = $3, avatar_id = $4, birthday = $5, updated_at = NOW()
		WHERE profile_id = $6
	`
	tag, err := r.db.Exec(ctx, query,
		profile.DisplayName, profile.Bio, profile.Course, profile.AvatarID,
		profile.Birthday, profile.ID)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}
