package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/statusbox/internal/config"
	"github.com/javiermolinar/statusbox/internal/tui/indicator"
	"github.com/javiermolinar/statusbox/internal/tui/theme"
)

func (a *App) configCmd() *cobra.Command {
	var path string
	var edit bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "View or edit configuration",
		Long: `Configuration management.

If no config file exists, creates one with default values.
Otherwise, displays the current config. With --edit, prompts for
each value and saves the result.

Example:
  statusbox config
  statusbox config --edit`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if path == "" {
				path = config.DefaultConfigPath()
			}
			return runConfig(cmd.InOrStdin(), cmd.OutOrStdout(), path, edit)
		},
	}

	cmd.Flags().StringVar(&path, "path", "", "Config file path (default ~/.config/statusbox/config.toml)")
	cmd.Flags().BoolVar(&edit, "edit", false, "Edit values interactively")
	return cmd
}

func runConfig(in io.Reader, out io.Writer, path string, edit bool) error {
	fmt.Fprintf(out, "Config file: %s\n\n", path)

	cfg, err := config.LoadFrom(path)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	_, statErr := os.Stat(path)
	if os.IsNotExist(statErr) {
		fmt.Fprintln(out, "No config file found. Creating with default values...")
		if err := cfg.SaveTo(path); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Fprintf(out, "Created %s\n\n", path)
	}

	printConfig(out, cfg)
	if !edit {
		return nil
	}

	fmt.Fprintln(out)
	reader := bufio.NewReader(in)
	cfg.UI.Theme = promptChoice(reader, out, "UI theme", cfg.UI.Theme, theme.IsAvailable, theme.Available())
	cfg.Indicator.Animation = promptChoice(reader, out, "Indicator animation", cfg.Indicator.Animation, isAnimation, indicator.Animations())
	cfg.Indicator.Period = promptValue(reader, out, "Indicator period", cfg.Indicator.Period)
	cfg.Indicator.HidesWhenStopped = promptBool(reader, out, "Hide indicator when stopped", cfg.Indicator.HidesWhenStopped)
	cfg.Layout.ReadableWidth = promptInt(reader, out, "Readable width (0 for none)", cfg.Layout.ReadableWidth)
	cfg.Layout.Margin = promptInt(reader, out, "Margin", cfg.Layout.Margin)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if err := cfg.SaveTo(path); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Fprintln(out, "\nConfiguration saved!")
	return nil
}

func printConfig(out io.Writer, cfg *config.Config) {
	fmt.Fprintln(out, formatHeader("Current configuration:"))
	fmt.Fprintln(out, "──────────────────────")
	fmt.Fprintln(out, "[ui]")
	fmt.Fprintf(out, "  theme              = %s\n", cfg.UI.Theme)
	fmt.Fprintln(out, "\n[indicator]")
	fmt.Fprintf(out, "  animation          = %s\n", cfg.Indicator.Animation)
	fmt.Fprintf(out, "  period             = %s\n", cfg.Indicator.Period)
	fmt.Fprintf(out, "  hides_when_stopped = %t\n", cfg.Indicator.HidesWhenStopped)
	fmt.Fprintln(out, "\n[layout]")
	fmt.Fprintf(out, "  readable_width     = %d\n", cfg.Layout.ReadableWidth)
	fmt.Fprintf(out, "  margin             = %d\n", cfg.Layout.Margin)
}

func isAnimation(name string) bool {
	_, err := indicator.ParseAnimation(name)
	return err == nil && name != ""
}

func promptValue(reader *bufio.Reader, out io.Writer, label, current string) string {
	if current == "" {
		fmt.Fprintf(out, "  %s: ", label)
	} else {
		fmt.Fprintf(out, "  %s [%s]: ", label, current)
	}
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return current
	}
	return input
}

func promptChoice(reader *bufio.Reader, out io.Writer, label, current string, valid func(string) bool, options []string) string {
	names := strings.Join(options, ", ")
	full := fmt.Sprintf("%s (%s)", label, names)
	for {
		value := strings.ToLower(promptValue(reader, out, full, current))
		if valid(value) {
			return value
		}
		fmt.Fprintf(out, "  Invalid value %q. Available: %s\n", value, names)
		if _, err := reader.Peek(1); err != nil {
			return current
		}
	}
}

func promptBool(reader *bufio.Reader, out io.Writer, label string, current bool) bool {
	value := strings.ToLower(promptValue(reader, out, label+" (y/n)", yesNo(current)))
	switch value {
	case "y", "yes", "true":
		return true
	case "n", "no", "false":
		return false
	}
	return current
}

func promptInt(reader *bufio.Reader, out io.Writer, label string, current int) int {
	value := promptValue(reader, out, label, strconv.Itoa(current))
	n, err := strconv.Atoi(value)
	if err != nil {
		fmt.Fprintf(out, "  Invalid number %q, keeping %d\n", value, current)
		return current
	}
	return n
}

func yesNo(b bool) string {
	if b {
		return "y"
	}
	return "n"
}
