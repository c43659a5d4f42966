// Package dispatcher broadcasts action payloads to registered handlers.
//
// A Dispatcher is the single routing point between action creators and the
// store. Dispatch is synchronous: every handler has run, in registration
// order, by the time it returns. A Dispatcher is not safe for concurrent use.
package dispatcher

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/nibzard/fluxtodo/internal/action"
	"github.com/nibzard/fluxtodo/internal/logging"
)

var (
	// ErrNestedDispatch is returned by Dispatch when called from a handler.
	ErrNestedDispatch = errors.New("cannot dispatch in the middle of a dispatch")
	// ErrUnknownToken is returned by Unregister for tokens it never issued or
	// already removed.
	ErrUnknownToken = errors.New("token does not map to a registered handler")
)

// Handler receives every dispatched payload.
type Handler func(action.Payload)

// Token identifies a registration.
type Token string

const tokenPrefix = "ID_"

type registration struct {
	token   Token
	handler Handler
}

// Dispatcher fans payloads out to handlers.
type Dispatcher struct {
	handlers    []registration
	lastID      int
	dispatching bool
	logger      *log.Logger
}

// New creates an empty Dispatcher.
func New(logger *log.Logger) *Dispatcher {
	return &Dispatcher{logger: logging.Component(logger, "dispatcher")}
}

// Register appends h to the handler list. Registering the same function twice
// yields two registrations.
func (d *Dispatcher) Register(h Handler) Token {
	d.lastID++
	tok := Token(fmt.Sprintf("%s%d", tokenPrefix, d.lastID))
	d.handlers = append(d.handlers, registration{token: tok, handler: h})
	d.logger.Debug("Dispatcher.register", "token", tok)
	return tok
}

// Unregister removes the handler registered under tok.
func (d *Dispatcher) Unregister(tok Token) error {
	d.logger.Debug("Dispatcher.unregister", "token", tok)
	for i, r := range d.handlers {
		if r.token == tok {
			d.handlers = append(d.handlers[:i:i], d.handlers[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrUnknownToken, tok)
}

// Dispatch invokes every registered handler with p, in registration order.
// Handler panics propagate to the caller.
func (d *Dispatcher) Dispatch(p action.Payload) error {
	if d.dispatching {
		return ErrNestedDispatch
	}
	d.logger.Debug("Dispatcher.dispatch", "source", p.Source, "action", p.Action)

	d.dispatching = true
	defer func() { d.dispatching = false }()

	// Registrations made by a handler take effect from the next dispatch.
	handlers := d.handlers
	for _, r := range handlers {
		r.handler(p)
	}
	return nil
}

// HandleAction wraps a in a view-sourced payload and dispatches it.
func (d *Dispatcher) HandleAction(a action.Action) error {
	d.logger.Debug("Dispatcher.handleAction", "action", a)
	return d.Dispatch(action.Payload{Source: action.SourceView, Action: a})
}

// IsDispatching reports whether a dispatch is in progress.
func (d *Dispatcher) IsDispatching() bool {
	return d.dispatching
}

// Len returns the number of registered handlers.
func (d *Dispatcher) Len() int {
	return len(d.handlers)
}
