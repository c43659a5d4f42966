// Package cmd implements the CLI command structure for fluxtodo.
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/nibzard/fluxtodo/internal/app"
	"github.com/nibzard/fluxtodo/internal/config"
	"github.com/nibzard/fluxtodo/internal/logging"
	"github.com/nibzard/fluxtodo/internal/script"
	"github.com/nibzard/fluxtodo/internal/view"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Run executes the fluxtodo CLI.
func Run(ctx context.Context, args []string) error {
	root := newRootCmd(os.Stdin, os.Stdout, os.Stderr)
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

// cli carries the streams and the loaded configuration shared by every
// command.
type cli struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	cws *config.ConfigWithSources
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	c := &cli{in: in, out: out, errOut: errOut}

	root := &cobra.Command{
		Use:   "fluxtodo",
		Short: "A todo list driven by a one-way action flow",
		Long: `fluxtodo keeps an in-memory todo list. Items are added from the input
line and removed from the list; every change flows through a single
dispatcher into the store, and the views re-render from the store.

Running fluxtodo without a subcommand starts the terminal UI.`,
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cws, err := config.LoadWithSources(cmd.Flags())
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			c.cws = cws
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.tui(cmd.Context())
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)
	root.SetVersionTemplate("fluxtodo version {{.Version}}\n")
	config.BindFlags(root.PersistentFlags())

	root.AddCommand(
		c.tuiCmd(),
		c.replayCmd(),
		c.configCmd(),
		c.logsCmd(),
		c.versionCmd(),
	)
	return root
}

func (c *cli) tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Start the terminal UI (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.tui(cmd.Context())
		},
	}
}

func (c *cli) tui(ctx context.Context) error {
	cfg := c.cws.Config
	// The UI owns the terminal, so diagnostics go to the run log or nowhere.
	logger, closeLog, err := c.openLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	a := app.New(logger)
	defer a.Close()

	var opts []view.Option
	if c.out != io.Writer(os.Stdout) {
		opts = append(opts, view.WithInput(c.in), view.WithOutput(c.out))
	}
	return view.Run(ctx, a, cfg, opts...)
}

func (c *cli) replayCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "replay <script>",
		Short: "Apply a JSON or YAML action script and print the resulting list",
		Long: `Replay validates an action script and dispatches its actions in order,
exactly as the UI would, then prints the final list one item per line.

	{"actions": [{"type": "ADD_ITEM", "item": "milk"}, {"type": "REMOVE_ITEM", "index": 0}]}

Files ending in .yaml or .yml are read as YAML.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.replay(args[0], asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the final list as a JSON array")
	return cmd
}

func (c *cli) replay(path string, asJSON bool) error {
	s, err := script.Load(path)
	if err != nil {
		return fmt.Errorf("loading script: %w", err)
	}

	logger, closeLog, err := c.openLogger(c.errOut)
	if err != nil {
		return err
	}
	defer closeLog()

	a := app.New(logger)
	defer a.Close()

	if err := s.Apply(a.Actions, logger); err != nil {
		return fmt.Errorf("replaying %s: %w", path, err)
	}

	items := a.Store.GetList()
	if asJSON {
		if items == nil {
			items = []string{}
		}
		enc := json.NewEncoder(c.out)
		return enc.Encode(items)
	}
	for _, item := range items {
		fmt.Fprintln(c.out, item)
	}
	return nil
}

func (c *cli) configCmd() *cobra.Command {
	var example bool
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration and where each value came from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if example {
				_, err := io.WriteString(c.out, config.ExampleConfig())
				return err
			}
			return c.printConfig()
		},
	}
	cmd.Flags().BoolVar(&example, "example", false, "Print an example config file")
	return cmd
}

func (c *cli) printConfig() error {
	cws := c.cws
	if len(cws.Files) == 0 {
		fmt.Fprintln(c.out, "# no config files found")
	}
	for _, f := range cws.Files {
		fmt.Fprintf(c.out, "# %s\n", f)
	}
	for _, key := range config.Keys() {
		value, err := cws.Config.Value(key)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.out, "%-15s = %-30q # %s\n", key, value, cws.Sources[key])
	}
	return nil
}

func (c *cli) logsCmd() *cobra.Command {
	var (
		follow bool
		lines  int
	)
	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Print the most recent run log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logDir := c.cws.Config.LogDir
			if logDir == "" {
				return fmt.Errorf("log_dir is not set")
			}
			logPath, err := logging.FindLatestLog(logDir)
			if err != nil {
				return fmt.Errorf("finding latest log: %w", err)
			}
			if logPath == "" {
				fmt.Fprintln(c.out, "No log files found.")
				return nil
			}
			fmt.Fprintf(c.errOut, "Tailing: %s\n", logPath)
			return logging.TailLog(cmd.Context(), c.out, logPath, lines, follow)
		},
	}
	cmd.Flags().BoolVarP(&follow, "follow", "f", false, "Follow the log (like tail -f)")
	cmd.Flags().IntVarP(&lines, "lines", "n", 0, "Number of lines to show (0 = all)")
	return cmd
}

func (c *cli) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(c.out, "fluxtodo version %s\n", Version)
			return nil
		},
	}
}

// openLogger builds the diagnostic logger. With log_dir set, lines go to a
// new run log file; otherwise they go to fallback.
func (c *cli) openLogger(fallback io.Writer) (*log.Logger, func(), error) {
	cfg := c.cws.Config
	w := fallback
	closeFn := func() {}
	if cfg.LogDir != "" {
		rl, err := logging.NewRunLogger(cfg.LogDir)
		if err != nil {
			return nil, nil, fmt.Errorf("opening run log: %w", err)
		}
		w = rl.Writer()
		closeFn = func() { _ = rl.Close() }
	}
	logger := logging.NewFromConfig(w, cfg.LogLevel, cfg.LogFormat, cfg.LogTimestamps, cfg.LogCaller)
	return logger, closeFn, nil
}
