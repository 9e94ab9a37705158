package repository

import (
	"context"
	"fmt"

	"slovli/database"
	"slovli/domain/interfaces"

	"github.com/jackc/pgx/v5"
)

// unitOfWork implements the interfaces.UnitOfWork interface
type unitOfWork struct {
	db                     *database.DB
	tx                     pgx.Tx
	ctx                    context.Context
	guildID                int64
	transactionalPublisher interfaces.TransactionalEventPublisher
	gameRepo               interfaces.GameRepository
	playerStatsRepo        interfaces.PlayerStatsRepository
	guildStatsRepo         interfaces.GuildStatsRepository
	guildUserWinRepo       interfaces.GuildUserWinRepository
	guildSettingsRepo      interfaces.GuildSettingsRepository
	customWordRepo         interfaces.CustomWordRepository
}

type unitOfWorkFactory struct {
	db *database.DB
}

// NewUnitOfWorkFactory creates a new UnitOfWork factory
func NewUnitOfWorkFactory(db *database.DB) *unitOfWorkFactory {
	return &unitOfWorkFactory{
		db: db,
	}
}

// CreateForGuildWithPublisher creates a new UnitOfWork with a specific transactional publisher
func (f *unitOfWorkFactory) CreateForGuildWithPublisher(guildID int64, transactionalPublisher interfaces.TransactionalEventPublisher) interfaces.UnitOfWork {
	return &unitOfWork{
		db:                     f.db,
		guildID:                guildID,
		transactionalPublisher: transactionalPublisher,
	}
}

// Begin starts a new transaction
func (u *unitOfWork) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}

	tx, err := u.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	u.tx = tx
	u.ctx = ctx

	// Create guild-scoped repositories with the transaction
	u.gameRepo = NewGameRepositoryScoped(tx, u.guildID)
	u.playerStatsRepo = NewPlayerStatsRepositoryWithTx(tx) // Player stats are global, not guild-scoped
	u.guildStatsRepo = NewGuildStatsRepositoryScoped(tx, u.guildID)
	u.guildUserWinRepo = NewGuildUserWinRepositoryScoped(tx, u.guildID)
	u.guildSettingsRepo = NewGuildSettingsRepositoryScoped(tx, u.guildID)
	u.customWordRepo = NewCustomWordRepositoryWithTx(tx) // Custom dictionary is shared across guilds

	return nil
}

// Commit commits the transaction
func (u *unitOfWork) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}

	err := u.tx.Commit(u.ctx)
	if err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	u.tx = nil

	// Flush pending events after successful commit
	if u.transactionalPublisher != nil {
		u.transactionalPublisher.Flush(u.ctx)
	}

	return nil
}

// Rollback rolls back the transaction
func (u *unitOfWork) Rollback() error {
	if u.tx == nil {
		return nil // Nothing to rollback
	}

	err := u.tx.Rollback(u.ctx)
	if err != nil && err != pgx.ErrTxClosed {
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}

	u.tx = nil

	// Discard pending events on rollback
	if u.transactionalPublisher != nil {
		u.transactionalPublisher.Discard()
	}

	return nil
}

// GameRepository returns the game repository for this unit of work
func (u *unitOfWork) GameRepository() interfaces.GameRepository {
	if u.gameRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.gameRepo
}

// PlayerStatsRepository returns the player stats repository for this unit of work
func (u *unitOfWork) PlayerStatsRepository() interfaces.PlayerStatsRepository {
	if u.playerStatsRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.playerStatsRepo
}

// GuildStatsRepository returns the guild stats repository for this unit of work
func (u *unitOfWork) GuildStatsRepository() interfaces.GuildStatsRepository {
	if u.guildStatsRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.guildStatsRepo
}

// GuildUserWinRepository returns the guild user win repository for this unit of work
func (u *unitOfWork) GuildUserWinRepository() interfaces.GuildUserWinRepository {
	if u.guildUserWinRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.guildUserWinRepo
}

// GuildSettingsRepository returns the guild settings repository for this unit of work
func (u *unitOfWork) GuildSettingsRepository() interfaces.GuildSettingsRepository {
	if u.guildSettingsRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.guildSettingsRepo
}

// CustomWordRepository returns the custom word repository for this unit of work
func (u *unitOfWork) CustomWordRepository() interfaces.CustomWordRepository {
	if u.customWordRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.customWordRepo
}

// EventBus returns the transactional event publisher for this unit of work
func (u *unitOfWork) EventBus() interfaces.EventPublisher {
	if u.transactionalPublisher == nil {
		panic("unit of work has no event publisher")
	}
	return u.transactionalPublisher
}
