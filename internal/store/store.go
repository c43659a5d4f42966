// Package store owns the todo list. The list changes only inside the handler
// the store registers with the dispatcher, and every handled action is
// followed by one change notification to the current listeners.
package store

import (
	"slices"

	"github.com/charmbracelet/log"

	"github.com/nibzard/fluxtodo/internal/action"
	"github.com/nibzard/fluxtodo/internal/dispatcher"
	"github.com/nibzard/fluxtodo/internal/logging"
)

// ChangeEvent names the store-to-view notification in diagnostics.
const ChangeEvent = "CHANGE"

// Listener is notified after every mutation. Notifications carry no data;
// listeners re-read the store.
type Listener interface {
	OnChange()
}

// ListenerFunc adapts a function to Listener. Use a pointer to one so it can
// be compared on removal.
type ListenerFunc func()

// OnChange implements Listener.
func (f *ListenerFunc) OnChange() { (*f)() }

// Store holds the authoritative list.
type Store struct {
	list       []string
	listeners  []Listener
	dispatcher *dispatcher.Dispatcher
	token      dispatcher.Token
	logger     *log.Logger
}

// New creates an empty Store and registers it with d.
func New(d *dispatcher.Dispatcher, logger *log.Logger) *Store {
	s := &Store{
		list:       []string{},
		dispatcher: d,
		logger:     logging.Component(logger, "store"),
	}
	s.token = d.Register(s.handle)
	return s
}

// Close unregisters the store from its dispatcher.
func (s *Store) Close() error {
	return s.dispatcher.Unregister(s.token)
}

// Token returns the dispatcher registration of the store.
func (s *Store) Token() dispatcher.Token {
	return s.token
}

// GetList returns a copy of the current list.
func (s *Store) GetList() []string {
	s.logger.Debug("Store.getList")
	return slices.Clone(s.list)
}

// Len returns the number of items.
func (s *Store) Len() int {
	return len(s.list)
}

// AddChangeListener subscribes l. Subscribing the same listener twice is not
// detected and results in two notifications per change.
func (s *Store) AddChangeListener(l Listener) {
	s.logger.Debug("Store.addChangeListener", "listener", l)
	s.listeners = append(s.listeners, l)
}

// RemoveChangeListener drops the most recent subscription of l. Removing a
// listener that is not subscribed is a no-op.
func (s *Store) RemoveChangeListener(l Listener) {
	s.logger.Debug("Store.removeChangeListener", "listener", l)
	for i := len(s.listeners) - 1; i >= 0; i-- {
		if s.listeners[i] == l {
			s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
			return
		}
	}
}

// ListenerCount returns the number of subscriptions.
func (s *Store) ListenerCount() int {
	return len(s.listeners)
}

func (s *Store) handle(p action.Payload) {
	s.logger.Debug("Store.handle", "source", p.Source, "action", p.Action)
	switch a := p.Action.(type) {
	case action.AddItem:
		s.addItem(a.Item)
	case action.RemoveItem:
		s.removeItem(a.Index)
	default:
		return
	}
	s.emitChange()
}

func (s *Store) addItem(item string) {
	s.logger.Debug("Store.addItem", "item", item)
	s.list = append(s.list, item)
}

// removeItem deletes one element the way a splice(index, 1) does: indices at
// or past the end remove nothing, negative indices count back from the end
// and clamp to the first element.
func (s *Store) removeItem(index int) {
	s.logger.Debug("Store.removeItem", "index", index)
	i, ok := resolveIndex(index, len(s.list))
	if !ok {
		return
	}
	s.list = slices.Delete(s.list, i, i+1)
}

func resolveIndex(index, n int) (int, bool) {
	if index < 0 {
		index = max(n+index, 0)
	}
	if index >= n {
		return 0, false
	}
	return index, true
}

func (s *Store) emitChange() {
	listeners := slices.Clone(s.listeners)
	s.logger.Debug("Store.emit", "event", ChangeEvent, "listeners", len(listeners))
	for _, l := range listeners {
		l.OnChange()
	}
}
