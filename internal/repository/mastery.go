// Package repository provides PostgreSQL-backed access to the two progress
// collections: wrong-attempt mastery records and starred words. Both are
// plain document tables keyed by word id; the service layer keeps the
// in-memory copies and treats these as write-through storage.
package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dailyvocab/vocab-study-bot/internal/domain/entities"
)

// MasteryRepository stores one wrong-attempts record per word id.
type MasteryRepository struct {
	db *pgxpool.Pool
}

// NewMasteryRepository creates a new MasteryRepository with the provided
// database pool.
func NewMasteryRepository(db *pgxpool.Pool) *MasteryRepository {
	return &MasteryRepository{db: db}
}

// GetAll loads every mastery record. Called once at startup to seed the
// in-memory state.
func (r *MasteryRepository) GetAll(ctx context.Context) (map[string]entities.MasteryRecord, error) {
	query := `
		SELECT word_id, count, correct_streak
		FROM wrong_attempts
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("get all mastery records: %w", err)
	}
	defer rows.Close()

	records := make(map[string]entities.MasteryRecord)
	for rows.Next() {
		var id string
		var rec entities.MasteryRecord
		if err = rows.Scan(&id, &rec.Count, &rec.CorrectStreak); err != nil {
			return nil, fmt.Errorf("scan mastery record: %w", err)
		}
		records[id] = rec
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate mastery records: %w", err)
	}

	return records, nil
}

// Upsert creates or replaces the record for a word id.
func (r *MasteryRepository) Upsert(ctx context.Context, wordID string, rec entities.MasteryRecord) error {
	query := `
		INSERT INTO wrong_attempts (word_id, count, correct_streak)
		VALUES ($1, $2, $3)
		ON CONFLICT (word_id)
		DO UPDATE SET
			count = excluded.count,
			correct_streak = excluded.correct_streak
	`

	_, err := r.db.Exec(ctx, query, wordID, rec.Count, rec.CorrectStreak)
	if err != nil {
		return fmt.Errorf("upsert mastery record: %w", err)
	}

	return nil
}

// Delete removes the record for a word id. Deleting an absent record is not
// an error.
func (r *MasteryRepository) Delete(ctx context.Context, wordID string) error {
	query := `DELETE FROM wrong_attempts WHERE word_id = $1`

	_, err := r.db.Exec(ctx, query, wordID)
	if err != nil {
		return fmt.Errorf("delete mastery record: %w", err)
	}

	return nil
}
