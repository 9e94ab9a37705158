package infrastructure

import (
	"context"

	"slovli/database"
	"slovli/domain/events"
	"slovli/domain/interfaces"
	"slovli/repository"
)

// UnitOfWorkFactory implements the interfaces.UnitOfWorkFactory interface.
// It pairs each unit of work with a fresh transactional event publisher so
// events only leave the process when the transaction commits.
type UnitOfWorkFactory struct {
	repoFactory interface {
		CreateForGuildWithPublisher(guildID int64, publisher interfaces.TransactionalEventPublisher) interfaces.UnitOfWork
	}
	eventPublisher interfaces.EventPublisher
}

// NewUnitOfWorkFactory creates a new UnitOfWorkFactory
func NewUnitOfWorkFactory(db *database.DB, eventPublisher interfaces.EventPublisher) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{
		repoFactory:    repository.NewUnitOfWorkFactory(db),
		eventPublisher: eventPublisher,
	}
}

// RegisterLocalHandler registers a handler that will be invoked locally for events
// This ensures events published within the same process are handled immediately
func (f *UnitOfWorkFactory) RegisterLocalHandler(eventType events.EventType, handler func(context.Context, events.Event) error) {
	if natsPublisher, ok := f.eventPublisher.(*NATSEventPublisher); ok {
		natsPublisher.RegisterLocalHandler(eventType, handler)
	}
}

// CreateForGuild creates a new UnitOfWork with a transactional event publisher
func (f *UnitOfWorkFactory) CreateForGuild(guildID int64) interfaces.UnitOfWork {
	transactionalPublisher := NewNATSTransactionalPublisher(f.eventPublisher)
	return f.repoFactory.CreateForGuildWithPublisher(guildID, transactionalPublisher)
}
