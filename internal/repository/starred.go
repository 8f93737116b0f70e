package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// StarredRepository stores starred word ids. Presence of a row is the whole
// signal; there is no payload beyond the id.
type StarredRepository struct {
	db *pgxpool.Pool
}

// NewStarredRepository creates a new StarredRepository with the provided
// database pool.
func NewStarredRepository(db *pgxpool.Pool) *StarredRepository {
	return &StarredRepository{db: db}
}

// GetAll loads every starred word id. Called once at startup.
func (r *StarredRepository) GetAll(ctx context.Context) (map[string]bool, error) {
	query := `SELECT word_id FROM starred_words`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("get all starred words: %w", err)
	}
	defer rows.Close()

	starred := make(map[string]bool)
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan starred word: %w", err)
		}
		starred[id] = true
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate starred words: %w", err)
	}

	return starred, nil
}

// Add stars a word id. Starring an already starred word is not an error.
func (r *StarredRepository) Add(ctx context.Context, wordID string) error {
	query := `
		INSERT INTO starred_words (word_id)
		VALUES ($1)
		ON CONFLICT (word_id) DO NOTHING
	`

	_, err := r.db.Exec(ctx, query, wordID)
	if err != nil {
		return fmt.Errorf("add starred word: %w", err)
	}

	return nil
}

// Delete unstars a word id.
func (r *StarredRepository) Delete(ctx context.Context, wordID string) error {
	query := `DELETE FROM starred_words WHERE word_id = $1`

	_, err := r.db.Exec(ctx, query, wordID)
	if err != nil {
		return fmt.Errorf("delete starred word: %w", err)
	}

	return nil
}
