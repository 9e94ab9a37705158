package entities

import "fmt"

// RollingStats is the aggregate kept for both players and guilds: monotonic
// played/wins counters, win streaks and the distribution of winning attempt
// counts (index 0 = won on the first guess).
type RollingStats struct {
	Played        int64   `db:"played"`
	Wins          int64   `db:"wins"`
	CurrentStreak int64   `db:"current_streak"`
	MaxStreak     int64   `db:"max_streak"`
	AttemptDist   []int64 `db:"attempt_dist"`
}

// NewRollingStats returns zeroed stats with an allocated distribution
func NewRollingStats() RollingStats {
	return RollingStats{AttemptDist: make([]int64, MaxAttempts)}
}

// ApplyResult folds one terminated game into the aggregate. A win extends
// the streak and credits the attempt-count bucket; a loss resets the streak
// and leaves the distribution untouched.
func (s *RollingStats) ApplyResult(won bool, attemptCount int) error {
	if won && (attemptCount < 1 || attemptCount > MaxAttempts) {
		return fmt.Errorf("attempt count must be between 1 and %d, got %d", MaxAttempts, attemptCount)
	}
	if len(s.AttemptDist) != MaxAttempts {
		dist := make([]int64, MaxAttempts)
		copy(dist, s.AttemptDist)
		s.AttemptDist = dist
	}

	s.Played++
	if won {
		s.Wins++
		s.CurrentStreak++
		if s.CurrentStreak > s.MaxStreak {
			s.MaxStreak = s.CurrentStreak
		}
		s.AttemptDist[attemptCount-1]++
	} else {
		s.CurrentStreak = 0
	}
	return nil
}

// WinRatePercent returns the rounded win percentage, 0 when nothing played
func (s *RollingStats) WinRatePercent() int {
	if s.Played == 0 {
		return 0
	}
	return int((s.Wins*100 + s.Played/2) / s.Played)
}

// PlayerStats is the per-user aggregate, keyed by Discord ID
type PlayerStats struct {
	DiscordID int64 `db:"discord_id"`
	RollingStats
}

// NewPlayerStats returns zeroed stats for a user
func NewPlayerStats(discordID int64) *PlayerStats {
	return &PlayerStats{DiscordID: discordID, RollingStats: NewRollingStats()}
}

// GuildStats is the per-guild aggregate: played/won by anyone in the guild,
// streak of consecutive guild-level wins.
type GuildStats struct {
	GuildID int64 `db:"guild_id"`
	RollingStats
}

// NewGuildStats returns zeroed stats for a guild
func NewGuildStats(guildID int64) *GuildStats {
	return &GuildStats{GuildID: guildID, RollingStats: NewRollingStats()}
}

// GuildUserWin is one per-guild leaderboard row: cumulative wins and the
// last-seen display name of the member.
type GuildUserWin struct {
	GuildID     int64  `db:"guild_id"`
	DiscordID   int64  `db:"discord_id"`
	DisplayName string `db:"display_name"`
	Wins        int64  `db:"wins"`
}
