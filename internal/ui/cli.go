package ui

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/statusbox/internal/config"
	"github.com/javiermolinar/statusbox/internal/debuglog"
	"github.com/javiermolinar/statusbox/internal/tui"
	"github.com/javiermolinar/statusbox/internal/tui/indicator"
	"github.com/javiermolinar/statusbox/internal/tui/theme"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	config *config.Config
	root   *cobra.Command

	// Global flags
	debug     bool
	noColor   bool
	theme     string
	animation string
}

// NewApp creates a new CLI application with the given config.
func NewApp(cfg *config.Config) *App {
	if cfg == nil {
		cfg = config.Default()
	}
	a := &App{config: cfg}

	a.root = &cobra.Command{
		Use:   "statusbox",
		Short: "Status overlays for terminal screens",
		Long: `statusbox shows loading, error and empty-state overlays on top of
terminal screens.

Run without a subcommand to open the demo: a list screen and a grid
screen, each hosting one status overlay at a time.`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if a.noColor {
				DisableColor()
			}
			return a.applyFlags()
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return tui.Run(a.config, a.debug)
		},
	}

	flags := a.root.PersistentFlags()
	flags.BoolVar(&a.debug, "debug", false, "Enable debug logging (writes "+debuglog.DefaultPath+")")
	flags.BoolVar(&a.noColor, "no-color", false, "Disable colored output")
	flags.StringVar(&a.theme, "theme", "", fmt.Sprintf("Theme override (%s)", strings.Join(theme.Available(), ", ")))
	flags.StringVar(&a.animation, "animation", "", fmt.Sprintf("Indicator animation (%s)", strings.Join(indicator.Animations(), ", ")))

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.themesCmd())
	a.root.AddCommand(a.previewCmd())

	return a
}

// applyFlags copies flag overrides into the config and validates the result.
func (a *App) applyFlags() error {
	if a.theme != "" {
		a.config.UI.Theme = a.theme
	}
	if a.animation != "" {
		a.config.Indicator.Animation = a.animation
	}
	if err := a.config.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}
	return nil
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "statusbox %s (commit: %s)\n", Version, Commit)
		},
	}
}

// SetArgs overrides the command-line arguments.
func (a *App) SetArgs(args []string) {
	a.root.SetArgs(args)
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}
