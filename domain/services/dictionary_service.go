package services

import (
	"context"
	"fmt"

	"slovli/domain/entities"
	"slovli/domain/interfaces"
)

// dictionaryService implements the DictionaryService interface: management
// of the admin-curated custom words layered over the embedded base pool.
type dictionaryService struct {
	customWordRepo interfaces.CustomWordRepository
	pool           interfaces.WordPool
}

// NewDictionaryService creates a new dictionary service
func NewDictionaryService(customWordRepo interfaces.CustomWordRepository, pool interfaces.WordPool) interfaces.DictionaryService {
	return &dictionaryService{
		customWordRepo: customWordRepo,
		pool:           pool,
	}
}

// normalize validates raw admin input into canonical dictionary form
func (s *dictionaryService) normalize(rawWord string) (string, error) {
	word := NormalizeWord(rawWord)
	if !IsAlphabetic(word) {
		return "", entities.ErrInvalidAlphabet
	}
	if n := len([]rune(word)); n < entities.MinWordLength || n > entities.MaxWordLength {
		return "", entities.ErrWrongLength
	}
	return word, nil
}

// AddWord normalizes and inserts a custom word
func (s *dictionaryService) AddWord(ctx context.Context, rawWord string, addedBy int64) (string, error) {
	word, err := s.normalize(rawWord)
	if err != nil {
		return "", err
	}
	if s.pool.Contains(word) {
		return word, entities.ErrWordExists
	}

	added, err := s.customWordRepo.Add(ctx, word, addedBy)
	if err != nil {
		return "", fmt.Errorf("failed to add custom word: %w", err)
	}
	if !added {
		return word, entities.ErrWordExists
	}
	return word, nil
}

// RemoveWord removes a custom word. Base-dictionary words are immutable, so
// a word found only in the base pool is refused rather than silently ignored.
func (s *dictionaryService) RemoveWord(ctx context.Context, rawWord string) (string, error) {
	word, err := s.normalize(rawWord)
	if err != nil {
		return "", err
	}

	removed, err := s.customWordRepo.Remove(ctx, word)
	if err != nil {
		return "", fmt.Errorf("failed to remove custom word: %w", err)
	}
	if !removed {
		return word, entities.ErrNotInDictionary
	}
	return word, nil
}

// CheckWord reports where a word lives
func (s *dictionaryService) CheckWord(ctx context.Context, rawWord string) (bool, bool, string, error) {
	word, err := s.normalize(rawWord)
	if err != nil {
		return false, false, "", err
	}

	custom, err := s.customWordRepo.WordsForLength(ctx, len([]rune(word)))
	if err != nil {
		return false, false, "", fmt.Errorf("failed to load custom words: %w", err)
	}

	inCustom := false
	for _, w := range custom {
		if w == word {
			inCustom = true
			break
		}
	}
	return s.pool.Contains(word), inCustom, word, nil
}

// Counts returns custom-word totals per length
func (s *dictionaryService) Counts(ctx context.Context) (map[int]int64, error) {
	counts, err := s.customWordRepo.CountByLength(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count custom words: %w", err)
	}
	return counts, nil
}
