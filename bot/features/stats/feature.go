package stats

import (
	"context"
	"strconv"

	"slovli/bot/common"
	"slovli/domain/interfaces"
	"slovli/domain/services"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// leaderboardLimit caps the rows shown by /wordle top
const leaderboardLimit = 10

// Feature surfaces the aggregated statistics: personal, guild-wide and the
// per-guild winners leaderboard.
type Feature struct {
	session    *discordgo.Session
	uowFactory interfaces.UnitOfWorkFactory
}

// NewFeature creates a new stats feature instance
func NewFeature(session *discordgo.Session, uowFactory interfaces.UnitOfWorkFactory) *Feature {
	return &Feature{
		session:    session,
		uowFactory: uowFactory,
	}
}

// HandleCommand routes the statistics subcommands of /wordle
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate, sub *discordgo.ApplicationCommandInteractionDataOption) {
	switch sub.Name {
	case "stats":
		f.handlePlayerStats(s, i, sub.Options)
	case "chatstats":
		f.handleGuildStats(s, i)
	case "top":
		f.handleLeaderboard(s, i)
	default:
		common.RespondWithError(s, i, "Unknown subcommand")
	}
}

// statsService builds the read-side service stack on a begun unit of work
func statsService(uow interfaces.UnitOfWork) interfaces.StatsService {
	return services.NewStatsService(
		uow.PlayerStatsRepository(),
		uow.GuildStatsRepository(),
		uow.GuildUserWinRepository(),
	)
}

func (f *Feature) handlePlayerStats(s *discordgo.Session, i *discordgo.InteractionCreate, options []*discordgo.ApplicationCommandInteractionDataOption) {
	ctx := context.Background()

	guildID, err := strconv.ParseInt(i.GuildID, 10, 64)
	if err != nil {
		log.Errorf("Error parsing guild ID %s: %v", i.GuildID, err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	// Default to the command issuer; an explicit user option overrides
	target := i.Member.User
	for _, opt := range options {
		if opt.Name == "user" {
			target = opt.UserValue(s)
		}
	}
	targetID, err := strconv.ParseInt(target.ID, 10, 64)
	if err != nil {
		log.Errorf("Error parsing user ID %s: %v", target.ID, err)
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

	stats, err := statsService(uow).PlayerStats(ctx, targetID)
	if err != nil {
		log.Errorf("Error getting player stats: %v", err)
		common.RespondWithError(s, i, "Unable to retrieve statistics. Please try again.")
		return
	}
	if err := uow.Commit(); err != nil {
		log.Errorf("Error committing transaction: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	embed := BuildPlayerStatsEmbed(target.Username, stats)
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Embeds: []*discordgo.MessageEmbed{embed}},
	}); err != nil {
		log.Errorf("Error responding to stats command: %v", err)
	}
}

func (f *Feature) handleGuildStats(s *discordgo.Session, i *discordgo.InteractionCreate) {
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

	stats, err := statsService(uow).GuildStats(ctx)
	if err != nil {
		log.Errorf("Error getting guild stats: %v", err)
		common.RespondWithError(s, i, "Unable to retrieve statistics. Please try again.")
		return
	}
	if err := uow.Commit(); err != nil {
		log.Errorf("Error committing transaction: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	embed := BuildGuildStatsEmbed(stats)
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Embeds: []*discordgo.MessageEmbed{embed}},
	}); err != nil {
		log.Errorf("Error responding to chatstats command: %v", err)
	}
}

func (f *Feature) handleLeaderboard(s *discordgo.Session, i *discordgo.InteractionCreate) {
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

	entries, err := statsService(uow).Leaderboard(ctx, leaderboardLimit)
	if err != nil {
		log.Errorf("Error getting leaderboard: %v", err)
		common.RespondWithError(s, i, "Unable to retrieve the leaderboard. Please try again.")
		return
	}
	if err := uow.Commit(); err != nil {
		log.Errorf("Error committing transaction: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	embed := BuildLeaderboardEmbed(entries)
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Embeds: []*discordgo.MessageEmbed{embed}},
	}); err != nil {
		log.Errorf("Error responding to top command: %v", err)
	}
}
