package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campuslife/CampusLife_Go/internal/domain"
)

// MemoryRepository implements the memory metadata repository for PostgreSQL
type MemoryRepository struct {
	db *pgxpool.Pool
}

// NewMemoryRepository creates a new MemoryRepository
func NewMemoryRepository(db *pgxpool.Pool) *MemoryRepository {
	return &MemoryRepository{db: db}
}

// CreateMemory inserts a new memory row
func (r *MemoryRepository) CreateMemory(ctx context.Context, memory *domain.Memory) error {
	query := `
		INSERT INTO memories (user_id, file_id, caption)
		VALUES ($1, $2, $3)
		RETURNING memory_id, created_at
	`
	err := r.db.QueryRow(ctx, query, memory.UserID, memory.FileID, memory.Caption).
		Scan(&memory.ID, &memory.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert memory: %w", err)
	}
	return nil
}

// GetMemoryByID fetches one memory
func (r *MemoryRepository) GetMemoryByID(ctx context.Context, memoryID string) (*domain.Memory, error) {
	query := `
		SELECT memory_id, user_id, file_id, caption, created_at
		FROM memories
		WHERE memory_id = $1
	`
	var memory domain.Memory
	err := r.db.QueryRow(ctx, query, memoryID).
		Scan(&memory.ID, &memory.UserID, &memory.FileID, &memory.Caption, &memory.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrMemoryNotFound
		}
		return nil, fmt.Errorf("failed to get memory: %w", err)
	}
	return &memory, nil
}

// ListMemories returns all memories newest first
func (r *MemoryRepository) ListMemories(ctx context.Context) ([]domain.Memory, error) {
	query := `
		SELECT memory_id, user_id, file_id, caption, created_at
		FROM memories
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list memories: %w", err)
	}
	defer rows.Close()

	var memories []domain.Memory
	for rows.Next() {
		var memory domain.Memory
		if err := rows.Scan(&memory.ID, &memory.UserID, &memory.FileID, &memory.Caption, &memory.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan memory: %w", err)
		}
		memories = append(memories, memory)
	}
	return memories, rows.Err()
}

// DeleteMemory removes a memory row
func (r *MemoryRepository) DeleteMemory(ctx context.Context, memoryID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM memories WHERE memory_id = $1`, memoryID)
	if err != nil {
		return fmt.Errorf("failed to delete memory: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrMemoryNotFound
	}
	return nil
}
