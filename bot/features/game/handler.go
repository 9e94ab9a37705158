package game

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"slovli/bot/common"
	"slovli/domain/entities"
	"slovli/domain/interfaces"
	"slovli/domain/services"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// leaderboardSummarySize caps the leaderboard line appended to win replies
const leaderboardSummarySize = 5

// HandleCommand routes the play-loop subcommands of /wordle
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate, sub *discordgo.ApplicationCommandInteractionDataOption) {
	switch sub.Name {
	case "new":
		f.handleNew(s, i)
	case "giveup":
		f.handleGiveUp(s, i)
	case "board":
		f.handleBoard(s, i)
	default:
		common.RespondWithError(s, i, "Unknown subcommand")
	}
}

// sessionService builds the per-transaction service stack on top of an
// already begun unit of work.
func (f *Feature) sessionService(uow interfaces.UnitOfWork, guildID int64) interfaces.GameSessionService {
	stats := services.NewStatsService(
		uow.PlayerStatsRepository(),
		uow.GuildStatsRepository(),
		uow.GuildUserWinRepository(),
	)
	return services.NewGameSessionService(
		guildID,
		uow.GameRepository(),
		uow.GuildSettingsRepository(),
		uow.CustomWordRepository(),
		f.pool,
		stats,
		uow.EventBus(),
	)
}

func (f *Feature) handleNew(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	guildID, err := strconv.ParseInt(i.GuildID, 10, 64)
	if err != nil {
		log.Errorf("Error parsing guild ID %s: %v", i.GuildID, err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	uow := f.uowFactory.CreateForGuild(guildID)
	if err := uow.Begin(ctx); err != nil {
		log.Errorf("Error beginning transaction: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}
	defer uow.Rollback()

	result, err := f.sessionService(uow, guildID).StartNew(ctx)
	if err != nil {
		if errors.Is(err, entities.ErrEmptyAnswerPool) {
			common.RespondWithError(s, i, "The dictionary has no words of the configured length. Change it with /wordle length.")
			return
		}
		log.Errorf("Error starting game: %v", err)
		common.RespondWithError(s, i, "Unable to start a game. Please try again.")
		return
	}

	if err := uow.Commit(); err != nil {
		log.Errorf("Error committing transaction: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	content := fmt.Sprintf("🆕 New game! I picked a word of **%d** letters. Just type your guesses into the chat. You have %d attempts.",
		result.WordLength, entities.MaxAttempts)
	if result.PreviousAnswer != "" {
		content = fmt.Sprintf("The previous word was **%s**.\n%s", result.PreviousAnswer, content)
	}

	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Content: content},
	}); err != nil {
		log.Errorf("Error responding to new game command: %v", err)
	}
}

func (f *Feature) handleGiveUp(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	guildID, err := strconv.ParseInt(i.GuildID, 10, 64)
	if err != nil {
		log.Errorf("Error parsing guild ID %s: %v", i.GuildID, err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	uow := f.uowFactory.CreateForGuild(guildID)
	if err := uow.Begin(ctx); err != nil {
		log.Errorf("Error beginning transaction: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}
	defer uow.Rollback()

	answer, err := f.sessionService(uow, guildID).GiveUp(ctx)
	if err != nil {
		if errors.Is(err, entities.ErrNoActiveGame) {
			common.RespondWithError(s, i, "There is no game to give up. Start one with /wordle new.")
			return
		}
		log.Errorf("Error giving up game: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	if err := uow.Commit(); err != nil {
		log.Errorf("Error committing transaction: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: fmt.Sprintf("🏳️ Game over. The word was **%s**.", answer),
		},
	}); err != nil {
		log.Errorf("Error responding to give up command: %v", err)
	}
}

func (f *Feature) handleBoard(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	guildID, err := strconv.ParseInt(i.GuildID, 10, 64)
	if err != nil {
		log.Errorf("Error parsing guild ID %s: %v", i.GuildID, err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	uow := f.uowFactory.CreateForGuild(guildID)
	if err := uow.Begin(ctx); err != nil {
		log.Errorf("Error beginning transaction: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}
	defer uow.Rollback()

	game, err := f.sessionService(uow, guildID).ActiveGame(ctx)
	if err != nil {
		log.Errorf("Error loading active game: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}
	if err := uow.Commit(); err != nil {
		log.Errorf("Error committing transaction: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}
	if game == nil {
		common.RespondWithError(s, i, "There is no active game. Start one with /wordle new.")
		return
	}

	image, err := f.renderer.RenderBoard(game.Attempts, game.WordLength)
	if err != nil {
		log.Errorf("Error rendering board: %v", err)
		common.RespondWithError(s, i, "Unable to render the board. Please try again.")
		return
	}

	content := fmt.Sprintf("Attempts used: %d of %d.", game.AttemptCount(), entities.MaxAttempts)
	if hint := FormatLetterHint(services.AggregateLetterMarks(game.Attempts)); hint != "" {
		content += "\n" + hint
	}

	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Files: []*discordgo.File{{
				Name:        "board.png",
				ContentType: "image/png",
				Reader:      bytes.NewReader(image),
			}},
		},
	}); err != nil {
		log.Errorf("Error responding to board command: %v", err)
	}
}

// HandleMessage treats a plain chat message as a guess. Messages that do not
// look like a guess for the current game are ignored so normal conversation
// keeps flowing.
func (f *Feature) HandleMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	// Only single-token messages can be guesses
	if len(strings.Fields(m.Content)) != 1 {
		return
	}

	ctx := context.Background()

	guildID, err := strconv.ParseInt(m.GuildID, 10, 64)
	if err != nil {
		return
	}
	guesserID, err := strconv.ParseInt(m.Author.ID, 10, 64)
	if err != nil {
		return
	}

	displayName := m.Author.Username
	if m.Member != nil && m.Member.Nick != "" {
		displayName = m.Member.Nick
	}

	uow := f.uowFactory.CreateForGuild(guildID)
	if err := uow.Begin(ctx); err != nil {
		log.Errorf("Error beginning transaction: %v", err)
		return
	}
	defer uow.Rollback()

	outcome, err := f.sessionService(uow, guildID).SubmitGuess(ctx, guesserID, displayName, m.Content)
	if err != nil {
		switch {
		case errors.Is(err, entities.ErrNoActiveGame),
			errors.Is(err, entities.ErrWrongLength),
			errors.Is(err, entities.ErrInvalidAlphabet):
			// Ordinary chatter, not a guess
		case errors.Is(err, entities.ErrNotInDictionary):
			f.reply(s, m, "🤔 I don't know that word.")
		case errors.Is(err, entities.ErrAlreadyGuessed):
			f.reply(s, m, "This word was already tried.")
		default:
			log.Errorf("Error submitting guess: %v", err)
		}
		return
	}

	// Terminal outcomes carry the refreshed guild aggregates in the reply.
	// Read them inside the same transaction so the numbers include this game.
	var summary string
	if outcome.Kind != entities.OutcomeContinue {
		summary = f.guildSummary(ctx, uow, outcome.Kind == entities.OutcomeWon)
	}

	if err := uow.Commit(); err != nil {
		log.Errorf("Error committing transaction: %v", err)
		return
	}

	f.replyWithBoard(s, m, outcome, summary)
}

// guildSummary reads the guild aggregate and, after a win, the leaderboard,
// formatted as extra lines for a terminal reply. Best effort: an empty string
// on read errors, the outcome reply still goes out.
func (f *Feature) guildSummary(ctx context.Context, uow interfaces.UnitOfWork, won bool) string {
	stats := services.NewStatsService(
		uow.PlayerStatsRepository(),
		uow.GuildStatsRepository(),
		uow.GuildUserWinRepository(),
	)

	guildStats, err := stats.GuildStats(ctx)
	if err != nil || guildStats == nil {
		if err != nil {
			log.Errorf("Error loading guild stats for summary: %v", err)
		}
		return ""
	}

	summary := fmt.Sprintf("📊 Server: %d played, %d won (%d%%), streak %d (record %d).",
		guildStats.Played, guildStats.Wins, guildStats.WinRatePercent(),
		guildStats.CurrentStreak, guildStats.MaxStreak)

	if won {
		rows, err := stats.Leaderboard(ctx, leaderboardSummarySize)
		if err != nil {
			log.Errorf("Error loading leaderboard for summary: %v", err)
			return summary
		}
		if len(rows) > 0 {
			entries := make([]string, 0, len(rows))
			for _, row := range rows {
				entries = append(entries, fmt.Sprintf("%s %d", row.DisplayName, row.Wins))
			}
			summary += "\n🏆 " + strings.Join(entries, " · ")
		}
	}
	return summary
}

func (f *Feature) replyWithBoard(s *discordgo.Session, m *discordgo.MessageCreate, outcome *entities.GuessOutcome, summary string) {
	image, err := f.renderer.RenderBoard(outcome.History, len([]rune(outcome.History[0].Word)))
	if err != nil {
		log.Errorf("Error rendering board: %v", err)
		return
	}

	var content string
	switch outcome.Kind {
	case entities.OutcomeWon:
		content = fmt.Sprintf("🎉 <@%s> guessed it! The word was **%s**, found in %d of %d attempts.",
			m.Author.ID, outcome.Answer, outcome.AttemptCount, entities.MaxAttempts)
	case entities.OutcomeLost:
		content = fmt.Sprintf("💀 Out of attempts. The word was **%s**. Start a new game with /wordle new.", outcome.Answer)
	default:
		content = fmt.Sprintf("Attempts left: %d.", outcome.RemainingAttempts)
		if hint := FormatLetterHint(outcome.LetterStatuses); hint != "" {
			content += "\n" + hint
		}
	}
	if summary != "" {
		content += "\n" + summary
	}

	if _, err := s.ChannelMessageSendComplex(m.ChannelID, &discordgo.MessageSend{
		Content:   content,
		Reference: m.Reference(),
		Files: []*discordgo.File{{
			Name:        "board.png",
			ContentType: "image/png",
			Reader:      bytes.NewReader(image),
		}},
	}); err != nil {
		log.Errorf("Error sending board reply: %v", err)
	}
}

func (f *Feature) reply(s *discordgo.Session, m *discordgo.MessageCreate, content string) {
	if _, err := s.ChannelMessageSendReply(m.ChannelID, content, m.Reference()); err != nil {
		log.Errorf("Error sending reply: %v", err)
	}
}
