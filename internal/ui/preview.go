package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/statusbox/internal/config"
	"github.com/javiermolinar/statusbox/internal/status"
	"github.com/javiermolinar/statusbox/internal/tui/surface"
	"github.com/javiermolinar/statusbox/internal/tui/view"
)

func (a *App) previewCmd() *cobra.Command {
	var st status.Status
	var image string
	var height int

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Print a status overlay once",
		Long: `Render a single status overlay to stdout using the configured theme
and layout, without starting the interactive demo.

Example:
  statusbox preview --title "No items" --description "Nothing to show yet."
  statusbox preview --loading --theme mocha`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st.Image = status.Image(image)
			if st.ActionTitle != "" {
				st.Action = func() {}
			}
			return renderPreview(cmd.OutOrStdout(), a.config, st, termWidth(), height)
		},
	}

	cmd.Flags().BoolVar(&st.Loading, "loading", false, "Show the loading indicator")
	cmd.Flags().StringVar(&st.Title, "title", "", "Title text")
	cmd.Flags().StringVar(&st.Description, "description", "", "Description text")
	cmd.Flags().StringVar(&st.ActionTitle, "action", "", "Action button label")
	cmd.Flags().StringVar(&image, "image", "", "Glyph art shown above the description")
	cmd.Flags().IntVar(&height, "height", 0, "Surface height (default fits the overlay)")
	return cmd
}

// renderPreview attaches a view bound to st to a surface of the given width
// and prints the composited frame.
func renderPreview(out io.Writer, cfg *config.Config, st status.Status, width, height int) error {
	t, err := cfg.Theme()
	if err != nil {
		return fmt.Errorf("loading theme: %w", err)
	}
	period, err := cfg.IndicatorPeriod()
	if err != nil {
		return fmt.Errorf("indicator: %w", err)
	}

	sv := view.New(
		view.WithTheme(t),
		view.WithAnimation(cfg.Animation()),
		view.WithPeriod(period),
		view.WithHidesWhenStopped(cfg.Indicator.HidesWhenStopped),
	)
	// The tick command is dropped: the frame is printed once.
	_ = sv.SetStatus(&st)

	s := surface.New(
		surface.WithName("preview"),
		surface.WithReadableWidth(cfg.Layout.ReadableWidth),
		surface.WithMargin(cfg.Layout.Margin),
		surface.WithBackground(lipgloss.Color(t.Bg)),
	)
	s.SetSize(width, 1)
	s.Attach(sv)
	if height <= 0 {
		height = lipgloss.Height(sv.View()) + 2
	}
	s.SetSize(width, height)

	fmt.Fprintln(out, s.Render(""))
	return nil
}
