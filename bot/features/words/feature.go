package words

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"slovli/bot/common"
	"slovli/domain/entities"
	"slovli/domain/interfaces"
	"slovli/domain/services"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// Feature manages the custom dictionary through the /word command
type Feature struct {
	session    *discordgo.Session
	uowFactory interfaces.UnitOfWorkFactory
	pool       interfaces.WordPool
}

// NewFeature creates a new words feature instance
func NewFeature(session *discordgo.Session, uowFactory interfaces.UnitOfWorkFactory, pool interfaces.WordPool) *Feature {
	return &Feature{
		session:    session,
		uowFactory: uowFactory,
		pool:       pool,
	}
}

// HandleCommand handles the /word command and its subcommands
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	options := i.ApplicationCommandData().Options
	if len(options) == 0 {
		common.RespondWithError(s, i, "Please specify a subcommand: add, remove, check or count")
		return
	}

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

	svc := services.NewDictionaryService(uow.CustomWordRepository(), f.pool)

	// Dictionary edits are restricted to administrators
	switch options[0].Name {
	case "add", "remove":
		if !common.IsInteractionAdmin(s, i) {
			common.RespondWithError(s, i, "Only server administrators can edit the dictionary.")
			return
		}
	}

	var content string
	switch options[0].Name {
	case "add":
		content, err = f.handleAdd(ctx, svc, i, options[0].Options)
	case "remove":
		content, err = f.handleRemove(ctx, svc, options[0].Options)
	case "check":
		content, err = f.handleCheck(ctx, svc, options[0].Options)
	case "count":
		content, err = f.handleCount(ctx, svc)
	default:
		common.RespondWithError(s, i, "Unknown subcommand")
		return
	}

	if err != nil {
		f.respondError(s, i, err)
		return
	}

	if err := uow.Commit(); err != nil {
		log.Errorf("Error committing transaction: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Content: content},
	}); err != nil {
		log.Errorf("Error responding to word command: %v", err)
	}
}

func (f *Feature) handleAdd(ctx context.Context, svc interfaces.DictionaryService, i *discordgo.InteractionCreate, options []*discordgo.ApplicationCommandInteractionDataOption) (string, error) {
	raw := stringOption(options, "word")
	addedBy, err := strconv.ParseInt(i.Member.User.ID, 10, 64)
	if err != nil {
		return "", fmt.Errorf("failed to parse user ID: %w", err)
	}

	word, err := svc.AddWord(ctx, raw, addedBy)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("📖 Added **%s** to the dictionary.", word), nil
}

func (f *Feature) handleRemove(ctx context.Context, svc interfaces.DictionaryService, options []*discordgo.ApplicationCommandInteractionDataOption) (string, error) {
	word, err := svc.RemoveWord(ctx, stringOption(options, "word"))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("🗑️ Removed **%s** from the dictionary.", word), nil
}

func (f *Feature) handleCheck(ctx context.Context, svc interfaces.DictionaryService, options []*discordgo.ApplicationCommandInteractionDataOption) (string, error) {
	inBase, inCustom, word, err := svc.CheckWord(ctx, stringOption(options, "word"))
	if err != nil {
		return "", err
	}

	switch {
	case inBase && inCustom:
		return fmt.Sprintf("**%s** is in the base dictionary and was also added manually.", word), nil
	case inBase:
		return fmt.Sprintf("**%s** is in the base dictionary.", word), nil
	case inCustom:
		return fmt.Sprintf("**%s** was added to the dictionary manually.", word), nil
	default:
		return fmt.Sprintf("**%s** is not in the dictionary.", word), nil
	}
}

func (f *Feature) handleCount(ctx context.Context, svc interfaces.DictionaryService) (string, error) {
	counts, err := svc.Counts(ctx)
	if err != nil {
		return "", err
	}
	if len(counts) == 0 {
		return "No custom words have been added yet.", nil
	}

	lengths := make([]int, 0, len(counts))
	for length := range counts {
		lengths = append(lengths, length)
	}
	sort.Ints(lengths)

	var b strings.Builder
	b.WriteString("Custom words per length:\n")
	for _, length := range lengths {
		fmt.Fprintf(&b, "%d letters: %d\n", length, counts[length])
	}
	return b.String(), nil
}

func (f *Feature) respondError(s *discordgo.Session, i *discordgo.InteractionCreate, err error) {
	switch {
	case errors.Is(err, entities.ErrWordExists):
		common.RespondWithError(s, i, "This word is already in the dictionary.")
	case errors.Is(err, entities.ErrNotInDictionary):
		common.RespondWithError(s, i, "This word is not a custom word. Base dictionary words cannot be removed.")
	case errors.Is(err, entities.ErrWrongLength):
		common.RespondWithError(s, i, fmt.Sprintf("Words must have between %d and %d letters.", entities.MinWordLength, entities.MaxWordLength))
	case errors.Is(err, entities.ErrInvalidAlphabet):
		common.RespondWithError(s, i, "Words may only contain Cyrillic letters.")
	default:
		log.Errorf("Error handling word command: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
	}
}

// stringOption extracts a named string option, empty when missing
func stringOption(options []*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	for _, opt := range options {
		if opt.Name == name {
			return opt.StringValue()
		}
	}
	return ""
}
