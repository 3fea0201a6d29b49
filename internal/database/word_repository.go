package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/example/engstudy/pkg/models"
)

// WordRepository handles database operations for the word catalog
type WordRepository struct {
	db *DB
}

// NewWordRepository creates a new repository instance
func NewWordRepository(db *DB) *WordRepository {
	return &WordRepository{db: db}
}

const wordColumns = `id, word, translation, part_of_speech, pronunciation, example, topic, position, created_at, updated_at`

// Catalog returns all words in catalog order
func (r *WordRepository) Catalog(ctx context.Context) ([]models.Word, error) {
	words := []models.Word{}
	query := "SELECT " + wordColumns + " FROM words ORDER BY position, id"
	if err := r.db.SelectContext(ctx, &words, query); err != nil {
		return nil, fmt.Errorf("failed to get words: %w", err)
	}
	return words, nil
}

// GetByKey returns a word by its canonical form
func (r *WordRepository) GetByKey(ctx context.Context, key string) (*models.Word, error) {
	var word models.Word
	query := r.db.Rebind("SELECT " + wordColumns + " FROM words WHERE word = ?")
	err := r.db.GetContext(ctx, &word, query, key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("word %q: %w", key, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get word %q: %w", key, err)
	}
	return &word, nil
}

// Count returns the catalog size
func (r *WordRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.GetContext(ctx, &n, "SELECT COUNT(*) FROM words"); err != nil {
		return 0, fmt.Errorf("failed to count words: %w", err)
	}
	return n, nil
}

// NextPosition returns the position after the last catalog entry
func (r *WordRepository) NextPosition(ctx context.Context) (int, error) {
	var pos int
	if err := r.db.GetContext(ctx, &pos, "SELECT COALESCE(MAX(position), 0) + 1 FROM words"); err != nil {
		return 0, fmt.Errorf("failed to get next position: %w", err)
	}
	return pos, nil
}

// Upsert inserts a new word or updates the existing one with the same key.
// The catalog position of an existing word is kept. It reports whether
// the word was created.
func (r *WordRepository) Upsert(ctx context.Context, word *models.Word) (bool, error) {
	now := utc(time.Now())

	existing, err := r.GetByKey(ctx, word.Key)
	switch {
	case err == nil:
		query := r.db.Rebind(`
			UPDATE words SET
				translation = ?,
				part_of_speech = ?,
				pronunciation = ?,
				example = ?,
				topic = ?,
				updated_at = ?
			WHERE id = ?`)
		_, err := r.db.ExecContext(ctx, query,
			word.Translation,
			word.PartOfSpeech,
			word.Pronunciation,
			word.Example,
			word.Topic,
			now,
			existing.ID,
		)
		if err != nil {
			return false, fmt.Errorf("failed to update word %q: %w", word.Key, err)
		}
		word.ID = existing.ID
		word.Position = existing.Position
		word.CreatedAt = existing.CreatedAt
		word.UpdatedAt = now
		return false, nil

	case !errors.Is(err, ErrNotFound):
		return false, err
	}

	if word.Position == 0 {
		if word.Position, err = r.NextPosition(ctx); err != nil {
			return false, err
		}
	}

	id, err := r.db.execReturningID(ctx, `
		INSERT INTO words (word, translation, part_of_speech, pronunciation, example, topic, position, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		word.Key,
		word.Translation,
		word.PartOfSpeech,
		word.Pronunciation,
		word.Example,
		word.Topic,
		word.Position,
		now,
		now,
	)
	if err != nil {
		return false, fmt.Errorf("failed to create word %q: %w", word.Key, err)
	}

	word.ID = id
	word.CreatedAt = now
	word.UpdatedAt = now
	return true, nil
}
