package view

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/nibzard/fluxtodo/internal/action"
	"github.com/nibzard/fluxtodo/internal/logging"
	"github.com/nibzard/fluxtodo/internal/store"
)

// Lines above the first row in ListContainer.View: title, blank, input, blank.
const rowsTop = 4

// ListContainer is the only stateful view. While mounted it is subscribed to
// the store and keeps a cached copy of the list, which it hands to its
// ListView on every change.
type ListContainer struct {
	store   *store.Store
	title   string
	items   []string
	mounted bool
	lastErr error

	add    *AddItemView
	list   *ListView
	styles Styles
	logger *log.Logger
}

// NewListContainer creates an unmounted container.
func NewListContainer(s *store.Store, actions *action.Creators, opts ContainerOptions, logger *log.Logger) *ListContainer {
	logger = logging.Component(logger, "view")
	styles := DefaultStyles()
	c := &ListContainer{
		store:  s,
		title:  opts.Title,
		styles: styles,
		logger: logger,
		add:    NewAddItemView(actions, opts.Placeholder, opts.CharLimit, logger),
		list:   NewListView(actions, styles, logger),
	}
	logger.Debug("ListContainer.constructor", "title", opts.Title)
	return c
}

// ContainerOptions configures a ListContainer.
type ContainerOptions struct {
	Title       string
	Placeholder string
	CharLimit   int
}

// Mount subscribes to the store and caches the current list.
func (c *ListContainer) Mount() {
	if c.mounted {
		return
	}
	c.logger.Debug("ListContainer.mount")
	c.store.AddChangeListener(c)
	c.mounted = true
	c.refresh()
}

// Unmount unsubscribes from the store.
func (c *ListContainer) Unmount() {
	if !c.mounted {
		return
	}
	c.logger.Debug("ListContainer.unmount")
	c.store.RemoveChangeListener(c)
	c.mounted = false
}

// Mounted reports whether the container is subscribed.
func (c *ListContainer) Mounted() bool {
	return c.mounted
}

// OnChange implements store.Listener.
func (c *ListContainer) OnChange() {
	c.logger.Debug("ListContainer.onChange")
	c.refresh()
}

func (c *ListContainer) refresh() {
	c.items = c.store.GetList()
	c.list.SetItems(c.items)
}

// Items returns a copy of the cached list.
func (c *ListContainer) Items() []string {
	return slices.Clone(c.items)
}

// Err returns the error of the last failed action, if any.
func (c *ListContainer) Err() error {
	return c.lastErr
}

// AddItem returns the input view.
func (c *ListContainer) AddItem() *AddItemView { return c.add }

// List returns the list view.
func (c *ListContainer) List() *ListView { return c.list }

// toggleFocus moves keyboard focus between the input and the list.
func (c *ListContainer) toggleFocus() tea.Cmd {
	if c.list.Focused() {
		c.list.Blur()
		return c.add.Focus()
	}
	c.add.Blur()
	c.list.Focus()
	return nil
}

// Update routes msg to the child views.
func (c *ListContainer) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	var err error

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "shift+tab":
			return c.toggleFocus()
		case "ctrl+x":
			c.record(c.list.RemoveSelected())
			return nil
		}
		if c.list.Focused() {
			if msg.Type == submitKey {
				return c.toggleFocus()
			}
			c.record(c.list.Update(msg))
			return nil
		}
		switch msg.String() {
		case "up", "ctrl+p":
			c.list.MoveCursor(-1)
			return nil
		case "down", "ctrl+n":
			c.list.MoveCursor(1)
			return nil
		}
		cmd, err = c.add.Update(msg)
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			err = c.list.Click(msg.X, msg.Y-rowsTop)
		}
	default:
		cmd, err = c.add.Update(msg)
	}
	c.record(err)
	return cmd
}

func (c *ListContainer) record(err error) {
	if err != nil {
		c.logger.Error("action failed", "err", err)
	}
	c.lastErr = err
}

// View renders the title, the input and the rows.
func (c *ListContainer) View() string {
	c.logger.Debug("ListContainer.render")
	var b strings.Builder
	b.WriteString(c.styles.Title.Render(c.title) + "\n\n")
	b.WriteString(c.add.View() + "\n\n")
	b.WriteString(c.list.View() + "\n")
	if c.lastErr != nil {
		b.WriteString("\n" + c.styles.Error.Render("Error: "+c.lastErr.Error()) + "\n")
	}
	return b.String()
}
