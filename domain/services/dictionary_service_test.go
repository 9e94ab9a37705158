package services

import (
	"context"
	"testing"

	"slovli/domain/entities"
	"slovli/domain/testhelpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDictionaryService_AddWord(t *testing.T) {
	tests := []struct {
		name       string
		rawWord    string
		setup      func(repo *testhelpers.MockCustomWordRepository, pool *testhelpers.MockWordPool)
		wantWord   string
		wantErr    error
	}{
		{
			name:    "normalized and added",
			rawWord: "яхонт",
			setup: func(repo *testhelpers.MockCustomWordRepository, pool *testhelpers.MockWordPool) {
				pool.On("Contains", "ЯХОНТ").Return(false)
				repo.On("Add", mock.Anything, "ЯХОНТ", int64(7)).Return(true, nil)
			},
			wantWord: "ЯХОНТ",
		},
		{
			name:    "yo folding applies before storage",
			rawWord: "Ёжики",
			setup: func(repo *testhelpers.MockCustomWordRepository, pool *testhelpers.MockWordPool) {
				pool.On("Contains", "ЕЖИКИ").Return(false)
				repo.On("Add", mock.Anything, "ЕЖИКИ", int64(7)).Return(true, nil)
			},
			wantWord: "ЕЖИКИ",
		},
		{
			name:    "already in base pool",
			rawWord: "ПЕСНЯ",
			setup: func(repo *testhelpers.MockCustomWordRepository, pool *testhelpers.MockWordPool) {
				pool.On("Contains", "ПЕСНЯ").Return(true)
			},
			wantErr: entities.ErrWordExists,
		},
		{
			name:    "duplicate custom word",
			rawWord: "яхонт",
			setup: func(repo *testhelpers.MockCustomWordRepository, pool *testhelpers.MockWordPool) {
				pool.On("Contains", "ЯХОНТ").Return(false)
				repo.On("Add", mock.Anything, "ЯХОНТ", int64(7)).Return(false, nil)
			},
			wantErr: entities.ErrWordExists,
		},
		{
			name:    "too short",
			rawWord: "дом",
			setup:   func(repo *testhelpers.MockCustomWordRepository, pool *testhelpers.MockWordPool) {},
			wantErr: entities.ErrWrongLength,
		},
		{
			name:    "too long",
			rawWord: "электричество",
			setup:   func(repo *testhelpers.MockCustomWordRepository, pool *testhelpers.MockWordPool) {},
			wantErr: entities.ErrWrongLength,
		},
		{
			name:    "non cyrillic input",
			rawWord: "word",
			setup:   func(repo *testhelpers.MockCustomWordRepository, pool *testhelpers.MockWordPool) {},
			wantErr: entities.ErrInvalidAlphabet,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(testhelpers.MockCustomWordRepository)
			pool := new(testhelpers.MockWordPool)
			tt.setup(repo, pool)

			svc := NewDictionaryService(repo, pool)
			word, err := svc.AddWord(context.Background(), tt.rawWord, 7)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantWord, word)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestDictionaryService_RemoveWord(t *testing.T) {
	repo := new(testhelpers.MockCustomWordRepository)
	pool := new(testhelpers.MockWordPool)
	svc := NewDictionaryService(repo, pool)
	ctx := context.Background()

	repo.On("Remove", ctx, "ЯХОНТ").Return(true, nil).Once()
	word, err := svc.RemoveWord(ctx, "яхонт")
	require.NoError(t, err)
	assert.Equal(t, "ЯХОНТ", word)

	// Absent words, including base-pool words, are refused
	repo.On("Remove", ctx, "ПЕСНЯ").Return(false, nil).Once()
	_, err = svc.RemoveWord(ctx, "песня")
	assert.ErrorIs(t, err, entities.ErrNotInDictionary)
}

func TestDictionaryService_CheckWord(t *testing.T) {
	repo := new(testhelpers.MockCustomWordRepository)
	pool := new(testhelpers.MockWordPool)
	svc := NewDictionaryService(repo, pool)
	ctx := context.Background()

	repo.On("WordsForLength", ctx, 5).Return([]string{"ЯХОНТ"}, nil)
	pool.On("Contains", "ЯХОНТ").Return(false)
	pool.On("Contains", "ПЕСНЯ").Return(true)
	pool.On("Contains", "РЮМКА").Return(false)

	inBase, inCustom, word, err := svc.CheckWord(ctx, "яхонт")
	require.NoError(t, err)
	assert.False(t, inBase)
	assert.True(t, inCustom)
	assert.Equal(t, "ЯХОНТ", word)

	inBase, inCustom, _, err = svc.CheckWord(ctx, "песня")
	require.NoError(t, err)
	assert.True(t, inBase)
	assert.False(t, inCustom)

	inBase, inCustom, _, err = svc.CheckWord(ctx, "рюмка")
	require.NoError(t, err)
	assert.False(t, inBase)
	assert.False(t, inCustom)
}

func TestGuildSettingsService_UpdateWordLength(t *testing.T) {
	tests := []struct {
		name    string
		length  int
		setup   func(repo *testhelpers.MockGuildSettingsRepository, pool *testhelpers.MockWordPool)
		wantErr error
	}{
		{
			name:   "valid length persists",
			length: 6,
			setup: func(repo *testhelpers.MockGuildSettingsRepository, pool *testhelpers.MockWordPool) {
				repo.On("GetOrCreate", mock.Anything).Return(&entities.GuildSettings{GuildID: 1, WordLength: 5}, nil)
				pool.On("HasLength", 6).Return(true)
				repo.On("Update", mock.Anything, mock.MatchedBy(func(s *entities.GuildSettings) bool {
					return s.WordLength == 6
				})).Return(nil)
			},
		},
		{
			name:   "length below range",
			length: 3,
			setup: func(repo *testhelpers.MockGuildSettingsRepository, pool *testhelpers.MockWordPool) {
				repo.On("GetOrCreate", mock.Anything).Return(&entities.GuildSettings{GuildID: 1, WordLength: 5}, nil)
			},
			wantErr: entities.ErrWrongLength,
		},
		{
			name:   "length without dictionary coverage",
			length: 9,
			setup: func(repo *testhelpers.MockGuildSettingsRepository, pool *testhelpers.MockWordPool) {
				repo.On("GetOrCreate", mock.Anything).Return(&entities.GuildSettings{GuildID: 1, WordLength: 5}, nil)
				pool.On("HasLength", 9).Return(false)
			},
			wantErr: entities.ErrEmptyAnswerPool,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(testhelpers.MockGuildSettingsRepository)
			pool := new(testhelpers.MockWordPool)
			tt.setup(repo, pool)

			svc := NewGuildSettingsService(repo, pool)
			err := svc.UpdateWordLength(context.Background(), tt.length)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			repo.AssertExpectations(t)
		})
	}
}
