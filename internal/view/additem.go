package view

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/nibzard/fluxtodo/internal/action"
)

// submitKey confirms the input (key code 13).
const submitKey = tea.KeyEnter

// AddItemView is the new item input. Pressing enter adds whatever was typed,
// including nothing, and clears the input.
type AddItemView struct {
	input   textinput.Model
	actions *action.Creators
	logger  *log.Logger
}

// NewAddItemView creates a focused input.
func NewAddItemView(actions *action.Creators, placeholder string, charLimit int, logger *log.Logger) *AddItemView {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = charLimit
	in.Prompt = "+ "
	in.Focus()
	return &AddItemView{input: in, actions: actions, logger: logger}
}

// Value returns the current input text.
func (v *AddItemView) Value() string {
	return v.input.Value()
}

// Focus gives the input keyboard focus.
func (v *AddItemView) Focus() tea.Cmd { return v.input.Focus() }

// Blur removes keyboard focus.
func (v *AddItemView) Blur() { v.input.Blur() }

// Focused reports whether the input has keyboard focus.
func (v *AddItemView) Focused() bool { return v.input.Focused() }

// Update feeds msg to the input, submitting on enter.
func (v *AddItemView) Update(msg tea.Msg) (tea.Cmd, error) {
	if key, ok := msg.(tea.KeyMsg); ok && key.Type == submitKey && v.input.Focused() {
		return nil, v.submit()
	}
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return cmd, nil
}

func (v *AddItemView) submit() error {
	item := v.input.Value()
	v.logger.Debug("AddItem.handleSubmit", "item", item)
	v.input.SetValue("")
	return v.actions.AddItem(item)
}

// View renders the input line.
func (v *AddItemView) View() string {
	return v.input.View()
}
