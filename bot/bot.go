package bot

import (
	"context"
	"fmt"
	"strconv"

	"slovli/bot/features/game"
	"slovli/bot/features/settings"
	"slovli/bot/features/stats"
	"slovli/bot/features/words"
	"slovli/domain/interfaces"
	"slovli/domain/services"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// Config holds bot configuration
type Config struct {
	Token   string
	GuildID string
}

// Bot manages the Discord bot and all feature modules
type Bot struct {
	// Core components
	config     Config
	session    *discordgo.Session
	uowFactory interfaces.UnitOfWorkFactory
	pool       interfaces.WordPool

	// Feature modules
	game     *game.Feature
	stats    *stats.Feature
	settings *settings.Feature
	words    *words.Feature
}

// New creates a new bot instance with all features
func New(config Config, uowFactory interfaces.UnitOfWorkFactory, pool interfaces.WordPool) (*Bot, error) {
	dg, err := discordgo.New("Bot " + config.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating discord session: %w", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentMessageContent

	bot := &Bot{
		config:     config,
		session:    dg,
		uowFactory: uowFactory,
		pool:       pool,
	}

	// Create feature modules
	bot.game, err = game.NewFeature(dg, uowFactory, pool)
	if err != nil {
		return nil, fmt.Errorf("error creating game feature: %w", err)
	}
	bot.stats = stats.NewFeature(dg, uowFactory)
	bot.settings = settings.NewFeature(dg, uowFactory, pool)
	bot.words = words.NewFeature(dg, uowFactory, pool)

	// Register handlers
	dg.AddHandler(bot.handleCommands)
	dg.AddHandler(bot.handleGuildCreate)
	dg.AddHandler(bot.handleMessageCreate)

	// Open websocket connection
	if err := dg.Open(); err != nil {
		return nil, fmt.Errorf("error opening connection: %w", err)
	}

	// Register slash commands with Discord
	if err := bot.registerCommands(); err != nil {
		dg.Close()
		return nil, fmt.Errorf("error registering commands: %w", err)
	}

	return bot, nil
}

// Close gracefully shuts down the bot
func (b *Bot) Close() error {
	return b.session.Close()
}

// GetSession returns the Discord session
func (b *Bot) GetSession() *discordgo.Session {
	return b.session
}

// handleCommands routes slash commands to appropriate handlers
func (b *Bot) handleCommands(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	switch i.ApplicationCommandData().Name {
	case "wordle":
		options := i.ApplicationCommandData().Options
		if len(options) == 0 {
			return
		}
		sub := options[0]
		switch sub.Name {
		case "new", "giveup", "board":
			b.game.HandleCommand(s, i, sub)
		case "stats", "chatstats", "top":
			b.stats.HandleCommand(s, i, sub)
		case "length":
			b.settings.HandleCommand(s, i, sub)
		}
	case "word":
		b.words.HandleCommand(s, i)
	}
}

// handleGuildCreate handles when the bot joins a new guild
func (b *Bot) handleGuildCreate(s *discordgo.Session, g *discordgo.GuildCreate) {
	ctx := context.Background()

	guildID, err := strconv.ParseInt(g.ID, 10, 64)
	if err != nil {
		log.Errorf("Failed to parse guild ID %s: %v", g.ID, err)
		return
	}

	uow := b.uowFactory.CreateForGuild(guildID)
	if err := uow.Begin(ctx); err != nil {
		log.Errorf("Failed to begin transaction: %v", err)
		return
	}
	defer uow.Rollback()

	settingsService := services.NewGuildSettingsService(uow.GuildSettingsRepository(), b.pool)
	guildSettings, err := settingsService.GetOrCreateSettings(ctx)
	if err != nil {
		log.Errorf("Failed to track new guild %s (%s): %v", g.Name, g.ID, err)
		return
	}

	if err := uow.Commit(); err != nil {
		log.Errorf("Failed to commit transaction: %v", err)
		return
	}

	log.Infof("Bot joined guild: %s (ID: %d, word length: %d)",
		g.Name, guildID, guildSettings.WordLength)
}

// handleMessageCreate forwards plain chat messages to the game feature, which
// decides whether they count as guesses
func (b *Bot) handleMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	// Skip messages from bots, including our own, to avoid loops
	if m.Author == nil || m.Author.Bot {
		return
	}

	// Skip if message is not from a guild
	if m.GuildID == "" {
		return
	}

	if m.Content == "" {
		return
	}

	b.game.HandleMessage(s, m)
}
