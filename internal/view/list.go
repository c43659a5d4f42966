package view

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/nibzard/fluxtodo/internal/action"
)

// Row layout. Hit-testing mirrors these, so keep them in sync with renderRow.
const (
	cursorMarker  = "> "
	removeControl = "[x]"
	controlColumn = len(cursorMarker)
)

// ListView renders one row per item with a remove control, and keeps a
// cursor for keyboard removal. It owns no list state: the container hands it
// the cached items.
type ListView struct {
	items   []string
	cursor  int
	focused bool
	actions *action.Creators
	styles  Styles
	logger  *log.Logger
}

// NewListView creates an empty list view.
func NewListView(actions *action.Creators, styles Styles, logger *log.Logger) *ListView {
	return &ListView{actions: actions, styles: styles, logger: logger}
}

// SetItems replaces the rendered items and keeps the cursor in range.
func (v *ListView) SetItems(items []string) {
	v.items = items
	v.clampCursor()
}

// Cursor returns the selected row.
func (v *ListView) Cursor() int {
	return v.cursor
}

// Focus gives the list keyboard focus.
func (v *ListView) Focus() { v.focused = true }

// Blur removes keyboard focus.
func (v *ListView) Blur() { v.focused = false }

// Focused reports whether the list has keyboard focus.
func (v *ListView) Focused() bool { return v.focused }

// MoveCursor moves the selection by delta rows.
func (v *ListView) MoveCursor(delta int) {
	v.cursor += delta
	v.clampCursor()
}

func (v *ListView) clampCursor() {
	if v.cursor >= len(v.items) {
		v.cursor = len(v.items) - 1
	}
	if v.cursor < 0 {
		v.cursor = 0
	}
}

// RemoveSelected removes the row under the cursor. It does nothing on an
// empty list.
func (v *ListView) RemoveSelected() error {
	if len(v.items) == 0 {
		return nil
	}
	return v.removeRow(v.cursor)
}

// removeRow is the remove control of a row: it passes the row's own index.
func (v *ListView) removeRow(index int) error {
	v.logger.Debug("List.remove", "index", index)
	return v.actions.RemoveItem(index)
}

// Update handles keys while the list is focused.
func (v *ListView) Update(msg tea.Msg) error {
	key, ok := msg.(tea.KeyMsg)
	if !ok || !v.focused {
		return nil
	}
	switch key.String() {
	case "up", "k":
		v.MoveCursor(-1)
	case "down", "j":
		v.MoveCursor(1)
	case "home", "g":
		v.cursor = 0
	case "end", "G":
		v.cursor = len(v.items) - 1
		v.clampCursor()
	case "x", "d", "delete", "backspace":
		return v.RemoveSelected()
	}
	return nil
}

// HitRow returns the row whose remove control covers column x of row line
// y, both relative to the first row.
func (v *ListView) HitRow(x, y int) (int, bool) {
	if y < 0 || y >= len(v.items) {
		return 0, false
	}
	if x < controlColumn || x >= controlColumn+len(removeControl) {
		return 0, false
	}
	return y, true
}

// Click handles a click relative to the first row.
func (v *ListView) Click(x, y int) error {
	row, ok := v.HitRow(x, y)
	if !ok {
		return nil
	}
	v.cursor = row
	return v.removeRow(row)
}

// View renders the rows.
func (v *ListView) View() string {
	v.logger.Debug("List.render", "items", len(v.items))
	if len(v.items) == 0 {
		return v.styles.Empty.Render("(nothing to do)")
	}
	rows := make([]string, len(v.items))
	for i, item := range v.items {
		rows[i] = v.renderRow(i, item)
	}
	return strings.Join(rows, "\n")
}

func (v *ListView) renderRow(i int, item string) string {
	marker := strings.Repeat(" ", len(cursorMarker))
	style := v.styles.Row
	if i == v.cursor && v.focused {
		marker = cursorMarker
		style = v.styles.SelectedRow
	}
	return marker + v.styles.Remove.Render(removeControl) + " " + style.Render(item)
}
