package view

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/nibzard/fluxtodo/internal/app"
	"github.com/nibzard/fluxtodo/internal/config"
	"github.com/nibzard/fluxtodo/internal/logging"
)

// Root is the top-level bubbletea model. It renders the list container and
// a help line and holds no list state of its own.
type Root struct {
	container *ListContainer
	styles    Styles
	logger    *log.Logger
	showHelp  bool
}

// NewRoot builds the view tree for a.
func NewRoot(a *app.App, cfg *config.Config) *Root {
	logger := logging.Component(a.Logger, "view")
	logger.Debug("App.constructor")
	return &Root{
		container: NewListContainer(a.Store, a.Actions, ContainerOptions{
			Title:       cfg.Title,
			Placeholder: cfg.Placeholder,
			CharLimit:   cfg.CharLimit,
		}, a.Logger),
		styles: DefaultStyles(),
		logger: logger,
	}
}

// Container returns the list container.
func (r *Root) Container() *ListContainer {
	return r.container
}

// Init mounts the container.
func (r *Root) Init() tea.Cmd {
	r.container.Mount()
	return nil
}

// Update implements tea.Model.
func (r *Root) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			r.container.Unmount()
			return r, tea.Quit
		case "f1":
			r.showHelp = !r.showHelp
			return r, nil
		}
	}
	return r, r.container.Update(msg)
}

// View implements tea.Model.
func (r *Root) View() string {
	r.logger.Debug("App.render")
	var b strings.Builder
	b.WriteString(r.container.View())
	b.WriteString("\n")
	if r.showHelp {
		writeHelp(&b, r.styles)
	}
	b.WriteString(r.styles.Help.Render("enter add | tab switch focus | ctrl+x remove | f1 help | esc quit"))
	b.WriteString("\n")
	return b.String()
}

func writeHelp(b *strings.Builder, styles Styles) {
	lines := []string{
		"Keyboard Shortcuts",
		"",
		"  enter         Add the typed item (input) / back to input (list)",
		"  tab           Switch focus between input and list",
		"  up, down      Move the selection",
		"  ctrl+x        Remove the selected item",
		"  x, d, delete  Remove the selected item (list focused)",
		"  click [x]     Remove that item",
		"  esc, ctrl+c   Quit",
		"",
	}
	for _, line := range lines {
		b.WriteString(styles.Help.Render(line) + "\n")
	}
}
