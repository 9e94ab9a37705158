package repository

import (
	"context"
	"fmt"
	"unicode/utf8"

	"slovli/database"
	"slovli/domain/interfaces"
)

// customWordRepository implements interfaces.CustomWordRepository
type customWordRepository struct {
	q Queryable
}

// NewCustomWordRepository creates a new custom word repository
func NewCustomWordRepository(db *database.DB) interfaces.CustomWordRepository {
	return &customWordRepository{q: db.Pool}
}

// NewCustomWordRepositoryWithTx creates a new custom word repository with a transaction
func NewCustomWordRepositoryWithTx(tx Queryable) interfaces.CustomWordRepository {
	return &customWordRepository{q: tx}
}

// Add inserts a word; returns false when it already exists for its length
func (r *customWordRepository) Add(ctx context.Context, word string, addedBy int64) (bool, error) {
	query := `
		INSERT INTO custom_words (word, word_length, added_by)
		VALUES ($1, $2, $3)
		ON CONFLICT (word, word_length) DO NOTHING
	`

	result, err := r.q.Exec(ctx, query, word, utf8.RuneCountInString(word), addedBy)
	if err != nil {
		return false, fmt.Errorf("failed to add custom word %q: %w", word, err)
	}
	return result.RowsAffected() > 0, nil
}

// Remove deletes a word; returns false when it was not present
func (r *customWordRepository) Remove(ctx context.Context, word string) (bool, error) {
	result, err := r.q.Exec(ctx, `DELETE FROM custom_words WHERE word = $1`, word)
	if err != nil {
		return false, fmt.Errorf("failed to remove custom word %q: %w", word, err)
	}
	return result.RowsAffected() > 0, nil
}

// WordsForLength returns all custom words of the given length, sorted
func (r *customWordRepository) WordsForLength(ctx context.Context, length int) ([]string, error) {
	query := `
		SELECT word
		FROM custom_words
		WHERE word_length = $1
		ORDER BY word ASC
	`

	rows, err := r.q.Query(ctx, query, length)
	if err != nil {
		return nil, fmt.Errorf("failed to query custom words of length %d: %w", length, err)
	}
	defer rows.Close()

	var words []string
	for rows.Next() {
		var word string
		if err := rows.Scan(&word); err != nil {
			return nil, fmt.Errorf("failed to scan custom word: %w", err)
		}
		words = append(words, word)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate custom word rows: %w", err)
	}

	return words, nil
}

// CountByLength returns per-length totals for lengths that have words
func (r *customWordRepository) CountByLength(ctx context.Context) (map[int]int64, error) {
	query := `
		SELECT word_length, COUNT(*)
		FROM custom_words
		GROUP BY word_length
	`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to count custom words: %w", err)
	}
	defer rows.Close()

	counts := make(map[int]int64)
	for rows.Next() {
		var length int
		var count int64
		if err := rows.Scan(&length, &count); err != nil {
			return nil, fmt.Errorf("failed to scan custom word count: %w", err)
		}
		counts[length] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate custom word counts: %w", err)
	}

	return counts, nil
}
