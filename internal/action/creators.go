package action

import (
	"github.com/charmbracelet/log"

	"github.com/nibzard/fluxtodo/internal/logging"
)

// Handler accepts actions for dispatch. *dispatcher.Dispatcher implements it.
type Handler interface {
	HandleAction(Action) error
}

// Creators build actions from UI intents and forward them to a Handler.
// Neither items nor indices are validated.
type Creators struct {
	handler Handler
	logger  *log.Logger
}

// NewCreators returns creators that forward to h.
func NewCreators(h Handler, logger *log.Logger) *Creators {
	return &Creators{
		handler: h,
		logger:  logging.Component(logger, "actions"),
	}
}

// AddItem dispatches an ADD_ITEM action. The list is updated and listeners
// notified before it returns.
func (c *Creators) AddItem(item string) error {
	c.logger.Debug("Actions.addItem", "item", item)
	return c.handler.HandleAction(AddItem{Item: item})
}

// RemoveItem dispatches a REMOVE_ITEM action for the given position.
func (c *Creators) RemoveItem(index int) error {
	c.logger.Debug("Actions.removeItem", "index", index)
	return c.handler.HandleAction(RemoveItem{Index: index})
}
