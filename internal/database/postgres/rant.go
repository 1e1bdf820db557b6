package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campuslife/CampusLife_Go/internal/domain"
)

// RantRepository implements the rant repository for PostgreSQL
type RantRepository struct {
	db *pgxpool.Pool
}

// NewRantRepository creates a new RantRepository
func NewRantRepository(db *pgxpool.Pool) *RantRepository {
	return &RantRepository{db: db}
}

// CreateRant inserts a new rant
func (r *RantRepository) CreateRant(ctx context.Context, rant *domain.Rant) error {
	query := `
		INSERT INTO rants (user_id, display_name, content)
		VALUES ($1, $2, $3)
		RETURNING rant_id, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query, rant.UserID, rant.DisplayName, rant.Content).
		Scan(&rant.ID, &rant.CreatedAt, &rant.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert rant: %w", err)
	}
	return nil
}

// GetRantByID fetches one rant
func (r *RantRepository) GetRantByID(ctx context.Context, rantID string) (*domain.Rant, error) {
	query := `
		SELECT rant_id, user_id, display_name, content, created_at, updated_at
		FROM rants
		WHERE rant_id = $1
	`
	var rant domain.Rant
	err := r.db.QueryRow(ctx, query, rantID).
		Scan(&rant.ID, &rant.UserID, &rant.DisplayName, &rant.Content, &rant.CreatedAt, &rant.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRantNotFound
		}
		return nil, fmt.Errorf("failed to get rant: %w", err)
	}
	return &rant, nil
}

// ListRants returns rants newest first, capped at limit
func (r *RantRepository) ListRants(ctx context.Context, limit int) ([]domain.Rant, error) {
	query := `
		SELECT rant_id, user_id, display_name, content, created_at, updated_at
		FROM rants
		ORDER BY created_at DESC
		LIMIT $1
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list rants: %w", err)
	}
	defer rows.Close()

	var rants []domain.Rant
	for rows.Next() {
		var rant domain.Rant
		if err := rows.Scan(&rant.ID, &rant.UserID, &rant.DisplayName, &rant.Content, &rant.CreatedAt, &rant.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan rant: %w", err)
		}
		rants = append(rants, rant)
	}
	return rants, rows.Err()
}

// UpdateRant persists an edited rant body
func (r *RantRepository) UpdateRant(ctx context.Context, rant domain.Rant) error {
	query := `
		UPDATE rants
		SET content = $1, updated_at = NOW()
		WHERE rant_id = $2
	`
	tag, err := r.db.Exec(ctx, query, rant.Content, rant.ID)
	if err != nil {
		return fmt.Errorf("failed to update rant: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrRantNotFound
	}
	return nil
}

// DeleteRant removes a rant
func (r *RantRepository) DeleteRant(ctx context.Context, rantID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM rants WHERE rant_id = $1`, rantID)
	if err != nil {
		return fmt.Errorf("failed to delete rant: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrRantNotFound
	}
	return nil
}
