// Package view is the terminal UI: a root view, a list container subscribed
// to the store, an add-item input and the list rows.
package view

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nibzard/fluxtodo/internal/app"
	"github.com/nibzard/fluxtodo/internal/config"
)

// Option configures Run.
type Option func(*runConfig)

type runConfig struct {
	input      io.Reader
	output     io.Writer
	requireTTY bool
}

// WithInput reads terminal input from r instead of stdin.
func WithInput(r io.Reader) Option {
	return func(c *runConfig) {
		c.input = r
	}
}

// WithOutput renders to w instead of stdout and skips the TTY check.
func WithOutput(w io.Writer) Option {
	return func(c *runConfig) {
		c.output = w
		c.requireTTY = false
	}
}

// Run mounts the root view once and runs the UI until the user quits or ctx
// is cancelled.
func Run(ctx context.Context, a *app.App, cfg *config.Config, opts ...Option) error {
	c := &runConfig{requireTTY: true}
	for _, opt := range opts {
		opt(c)
	}
	if c.requireTTY && !IsTTY(os.Stdout) {
		return fmt.Errorf("tui requires a TTY")
	}

	root := NewRoot(a, cfg)
	defer root.container.Unmount()

	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if cfg.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	if cfg.Mouse {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}
	if c.input != nil {
		programOpts = append(programOpts, tea.WithInput(c.input))
	}
	if c.output != nil {
		programOpts = append(programOpts, tea.WithOutput(c.output))
	}

	_, err := tea.NewProgram(root, programOpts...).Run()
	return err
}

// IsTTY returns true if w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
