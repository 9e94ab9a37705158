package stats

import (
	"fmt"
	"strings"

	"slovli/domain/entities"

	"github.com/bwmarrin/discordgo"
)

const embedColor = 0x6AAA64

// BuildPlayerStatsEmbed renders one user's aggregate
func BuildPlayerStatsEmbed(username string, stats *entities.PlayerStats) *discordgo.MessageEmbed {
	if stats == nil {
		return &discordgo.MessageEmbed{
			Title:       fmt.Sprintf("Statistics for %s", username),
			Description: "No finished games yet.",
			Color:       embedColor,
		}
	}

	return &discordgo.MessageEmbed{
		Title: fmt.Sprintf("Statistics for %s", username),
		Color: embedColor,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Played", Value: fmt.Sprintf("%d", stats.Played), Inline: true},
			{Name: "Won", Value: fmt.Sprintf("%d (%d%%)", stats.Wins, stats.WinRatePercent()), Inline: true},
			{Name: "Streak", Value: fmt.Sprintf("%d (best %d)", stats.CurrentStreak, stats.MaxStreak), Inline: true},
			{Name: "Guess distribution", Value: formatDistribution(stats.AttemptDist), Inline: false},
		},
	}
}

// BuildGuildStatsEmbed renders the guild-wide aggregate
func BuildGuildStatsEmbed(stats *entities.GuildStats) *discordgo.MessageEmbed {
	if stats == nil {
		return &discordgo.MessageEmbed{
			Title:       "Server statistics",
			Description: "No finished games yet.",
			Color:       embedColor,
		}
	}

	return &discordgo.MessageEmbed{
		Title: "Server statistics",
		Color: embedColor,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Played", Value: fmt.Sprintf("%d", stats.Played), Inline: true},
			{Name: "Won", Value: fmt.Sprintf("%d (%d%%)", stats.Wins, stats.WinRatePercent()), Inline: true},
			{Name: "Streak", Value: fmt.Sprintf("%d (best %d)", stats.CurrentStreak, stats.MaxStreak), Inline: true},
			{Name: "Guess distribution", Value: formatDistribution(stats.AttemptDist), Inline: false},
		},
	}
}

// BuildLeaderboardEmbed renders the winners table
func BuildLeaderboardEmbed(entries []*entities.GuildUserWin) *discordgo.MessageEmbed {
	if len(entries) == 0 {
		return &discordgo.MessageEmbed{
			Title:       "Top winners",
			Description: "Nobody has won a game here yet.",
			Color:       embedColor,
		}
	}

	medals := []string{"🥇", "🥈", "🥉"}
	var b strings.Builder
	for idx, entry := range entries {
		prefix := fmt.Sprintf("%d.", idx+1)
		if idx < len(medals) {
			prefix = medals[idx]
		}
		fmt.Fprintf(&b, "%s **%s**: %d\n", prefix, entry.DisplayName, entry.Wins)
	}

	return &discordgo.MessageEmbed{
		Title:       "Top winners",
		Description: b.String(),
		Color:       embedColor,
	}
}

// formatDistribution draws one bar line per attempt bucket
func formatDistribution(dist []int64) string {
	var max int64 = 1
	for _, n := range dist {
		if n > max {
			max = n
		}
	}

	var b strings.Builder
	for idx, n := range dist {
		width := int(n * 12 / max)
		if n > 0 && width == 0 {
			width = 1
		}
		fmt.Fprintf(&b, "%d: %s %d\n", idx+1, strings.Repeat("▰", width), n)
	}
	return b.String()
}
