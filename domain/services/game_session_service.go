package services

import (
	"context"
	"fmt"
	"math/rand"

	"slovli/domain/entities"
	"slovli/domain/events"
	"slovli/domain/interfaces"
)

// gameSessionService implements the GameSessionService interface. One
// instance is created per unit of work, so every repository it holds is
// already scoped to the guild and shares one transaction.
type gameSessionService struct {
	guildID        int64
	gameRepo       interfaces.GameRepository
	settingsRepo   interfaces.GuildSettingsRepository
	customWordRepo interfaces.CustomWordRepository
	pool           interfaces.WordPool
	stats          interfaces.StatsService
	eventBus       interfaces.EventPublisher
}

// NewGameSessionService creates a new game session service for one guild
func NewGameSessionService(
	guildID int64,
	gameRepo interfaces.GameRepository,
	settingsRepo interfaces.GuildSettingsRepository,
	customWordRepo interfaces.CustomWordRepository,
	pool interfaces.WordPool,
	stats interfaces.StatsService,
	eventBus interfaces.EventPublisher,
) interfaces.GameSessionService {
	return &gameSessionService{
		guildID:        guildID,
		gameRepo:       gameRepo,
		settingsRepo:   settingsRepo,
		customWordRepo: customWordRepo,
		pool:           pool,
		stats:          stats,
		eventBus:       eventBus,
	}
}

// StartNew deals a fresh puzzle at the guild's configured word length. A
// previously in-progress game is discarded without any stats credit; its
// answer is returned so the caller can reveal it.
func (s *gameSessionService) StartNew(ctx context.Context) (*entities.StartResult, error) {
	if err := s.gameRepo.LockGuild(ctx); err != nil {
		return nil, fmt.Errorf("failed to lock guild: %w", err)
	}

	settings, err := s.settingsRepo.GetOrCreate(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get guild settings: %w", err)
	}

	previous, err := s.gameRepo.GetActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get active game: %w", err)
	}

	answer, err := s.pickAnswer(ctx, settings.WordLength)
	if err != nil {
		return nil, err
	}

	game, err := entities.NewGame(s.guildID, answer, settings.WordLength)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	if err := s.gameRepo.Upsert(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}

	if err := s.eventBus.Publish(events.GameStartedEvent{
		GuildID:    s.guildID,
		WordLength: settings.WordLength,
	}); err != nil {
		return nil, fmt.Errorf("failed to publish game started event: %w", err)
	}

	result := &entities.StartResult{WordLength: settings.WordLength}
	if previous != nil && previous.IsInProgress() {
		result.PreviousAnswer = previous.Answer
	}
	return result, nil
}

// pickAnswer draws a uniformly random answer of the given length from the
// base pool merged with the guild's custom words.
func (s *gameSessionService) pickAnswer(ctx context.Context, length int) (string, error) {
	candidates := s.pool.AnswerCandidates(length)

	custom, err := s.customWordRepo.WordsForLength(ctx, length)
	if err != nil {
		return "", fmt.Errorf("failed to load custom words: %w", err)
	}
	candidates = append(candidates, custom...)

	if len(candidates) == 0 {
		return "", entities.ErrEmptyAnswerPool
	}
	return candidates[rand.Intn(len(candidates))], nil
}

// SubmitGuess runs the full validate-score-apply sequence for one guess
// inside the guild's critical section.
func (s *gameSessionService) SubmitGuess(ctx context.Context, guesserID int64, displayName, rawText string) (*entities.GuessOutcome, error) {
	if err := s.gameRepo.LockGuild(ctx); err != nil {
		return nil, fmt.Errorf("failed to lock guild: %w", err)
	}

	game, err := s.gameRepo.GetActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get active game: %w", err)
	}
	if game == nil {
		return nil, entities.ErrNoActiveGame
	}

	guess := NormalizeWord(rawText)
	if len([]rune(guess)) != game.WordLength {
		return nil, entities.ErrWrongLength
	}
	if !IsAlphabetic(guess) {
		return nil, entities.ErrInvalidAlphabet
	}
	if ok, err := s.isValidGuess(ctx, guess, game.WordLength); err != nil {
		return nil, err
	} else if !ok {
		return nil, entities.ErrNotInDictionary
	}
	if game.HasGuessed(guess) {
		return nil, entities.ErrAlreadyGuessed
	}

	marks := ScoreGuess(guess, game.Answer)
	status := game.RecordAttempt(guess, marks, guesserID)

	outcome := &entities.GuessOutcome{
		Marks:             marks,
		AttemptCount:      game.AttemptCount(),
		RemainingAttempts: game.RemainingAttempts(),
		History:           game.Attempts,
		LetterStatuses:    AggregateLetterMarks(game.Attempts),
	}

	switch status {
	case entities.GameStatusWon:
		outcome.Kind = entities.OutcomeWon
		outcome.Answer = game.Answer
		if err := s.finishGame(ctx, game, guesserID, displayName); err != nil {
			return nil, err
		}
	case entities.GameStatusLost:
		outcome.Kind = entities.OutcomeLost
		outcome.Answer = game.Answer
		if err := s.finishGame(ctx, game, 0, ""); err != nil {
			return nil, err
		}
	default:
		outcome.Kind = entities.OutcomeContinue
		if err := s.gameRepo.Upsert(ctx, game); err != nil {
			return nil, fmt.Errorf("failed to save game: %w", err)
		}
	}

	return outcome, nil
}

// finishGame applies statistics for a terminal transition and deletes the
// game record. A loss carries no per-user stats update; only the guild
// aggregate records it.
func (s *gameSessionService) finishGame(ctx context.Context, game *entities.Game, winnerID int64, displayName string) error {
	won := game.Status == entities.GameStatusWon
	attempts := game.AttemptCount()

	if won {
		if err := s.stats.ApplyPlayerResult(ctx, winnerID, true, attempts); err != nil {
			return fmt.Errorf("failed to apply player result: %w", err)
		}
		if err := s.stats.RecordGuildWin(ctx, winnerID, displayName); err != nil {
			return fmt.Errorf("failed to record guild win: %w", err)
		}
	}
	if err := s.stats.ApplyGuildResult(ctx, won, attempts); err != nil {
		return fmt.Errorf("failed to apply guild result: %w", err)
	}

	if err := s.gameRepo.Delete(ctx); err != nil {
		return fmt.Errorf("failed to clear game: %w", err)
	}

	if err := s.eventBus.Publish(events.GameCompletedEvent{
		GuildID:      s.guildID,
		WinnerID:     winnerID,
		Won:          won,
		AttemptCount: attempts,
		WordLength:   game.WordLength,
		Answer:       game.Answer,
	}); err != nil {
		return fmt.Errorf("failed to publish game completed event: %w", err)
	}
	return nil
}

// isValidGuess checks the base pool first, then the guild's custom words
func (s *gameSessionService) isValidGuess(ctx context.Context, guess string, length int) (bool, error) {
	if s.pool.Contains(guess) {
		return true, nil
	}
	custom, err := s.customWordRepo.WordsForLength(ctx, length)
	if err != nil {
		return false, fmt.Errorf("failed to load custom words: %w", err)
	}
	for _, w := range custom {
		if w == guess {
			return true, nil
		}
	}
	return false, nil
}

// GiveUp abandons the active game with no statistics update
func (s *gameSessionService) GiveUp(ctx context.Context) (string, error) {
	if err := s.gameRepo.LockGuild(ctx); err != nil {
		return "", fmt.Errorf("failed to lock guild: %w", err)
	}

	game, err := s.gameRepo.GetActive(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get active game: %w", err)
	}
	if game == nil {
		return "", entities.ErrNoActiveGame
	}

	if err := s.gameRepo.Delete(ctx); err != nil {
		return "", fmt.Errorf("failed to clear game: %w", err)
	}
	return game.Answer, nil
}

// ActiveGame returns the in-progress game without mutating anything
func (s *gameSessionService) ActiveGame(ctx context.Context) (*entities.Game, error) {
	game, err := s.gameRepo.GetActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get active game: %w", err)
	}
	return game, nil
}
