package game

import (
	"fmt"

	"slovli/domain/interfaces"

	"github.com/bwmarrin/discordgo"
)

// Feature owns the play loop: dealing games, accepting guesses from chat
// messages, surrender and the board rendering that goes with each reply.
type Feature struct {
	session    *discordgo.Session
	uowFactory interfaces.UnitOfWorkFactory
	pool       interfaces.WordPool
	renderer   *BoardRenderer
}

// NewFeature creates a new game feature instance
func NewFeature(session *discordgo.Session, uowFactory interfaces.UnitOfWorkFactory, pool interfaces.WordPool) (*Feature, error) {
	renderer, err := NewBoardRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to create board renderer: %w", err)
	}
	return &Feature{
		session:    session,
		uowFactory: uowFactory,
		pool:       pool,
		renderer:   renderer,
	}, nil
}
