package settings

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"slovli/bot/common"
	"slovli/domain/entities"
	"slovli/domain/interfaces"
	"slovli/domain/services"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// Feature manages per-guild configuration
type Feature struct {
	session    *discordgo.Session
	uowFactory interfaces.UnitOfWorkFactory
	pool       interfaces.WordPool
}

// NewFeature creates a new settings feature instance
func NewFeature(session *discordgo.Session, uowFactory interfaces.UnitOfWorkFactory, pool interfaces.WordPool) *Feature {
	return &Feature{
		session:    session,
		uowFactory: uowFactory,
		pool:       pool,
	}
}

// HandleCommand handles the /wordle length subcommand
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate, sub *discordgo.ApplicationCommandInteractionDataOption) {
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

	svc := services.NewGuildSettingsService(uow.GuildSettingsRepository(), f.pool)

	// Without an argument the subcommand reports the current setting
	if len(sub.Options) == 0 {
		settings, err := svc.GetOrCreateSettings(ctx)
		if err != nil {
			log.Errorf("Error getting guild settings: %v", err)
			common.RespondWithError(s, i, "Unable to process request. Please try again.")
			return
		}
		if err := uow.Commit(); err != nil {
			log.Errorf("Error committing transaction: %v", err)
			common.RespondWithError(s, i, "Unable to process request. Please try again.")
			return
		}
		f.respond(s, i, fmt.Sprintf("Words here have **%d** letters. New games use the setting after you change it.", settings.WordLength))
		return
	}

	// Changing the setting is restricted to administrators
	if !common.IsInteractionAdmin(s, i) {
		common.RespondWithError(s, i, "Only server administrators can change the word length.")
		return
	}

	length := int(sub.Options[0].IntValue())
	if err := svc.UpdateWordLength(ctx, length); err != nil {
		switch {
		case errors.Is(err, entities.ErrWrongLength):
			common.RespondWithError(s, i, fmt.Sprintf("Word length must be between %d and %d.", entities.MinWordLength, entities.MaxWordLength))
		case errors.Is(err, entities.ErrEmptyAnswerPool):
			common.RespondWithError(s, i, "The dictionary has no words of that length.")
		default:
			log.Errorf("Error updating word length: %v", err)
			common.RespondWithError(s, i, "Unable to process request. Please try again.")
		}
		return
	}

	if err := uow.Commit(); err != nil {
		log.Errorf("Error committing transaction: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	f.respond(s, i, fmt.Sprintf("📏 Done! New games will use words of **%d** letters. The current game, if any, keeps its length.", length))
}

func (f *Feature) respond(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Content: content},
	}); err != nil {
		log.Errorf("Error responding to length command: %v", err)
	}
}
