package cli

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/gridboard/gridboard/pkg/component"
	"github.com/gridboard/gridboard/pkg/document"
	"github.com/gridboard/gridboard/pkg/grid"
	"github.com/gridboard/gridboard/pkg/render"
)

// previewCommand creates the preview command for rendering a layout in the
// terminal.
func (c *CLI) previewCommand() *cobra.Command {
	var (
		width     int
		termWidth int
	)

	cmd := &cobra.Command{
		Use:   "preview [layout.json]",
		Short: "Render a layout document in the terminal",
		Long: `Render a layout document in the terminal.

The layout is re-flowed for the given container width, scaled down to
terminal cells, and drawn row by row with the built-in renderers.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			doc, err := document.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("load layout %s: %w", args[0], err)
			}
			settings := cfg.GridSettings()
			settings.Reflow = true
			components, _ := grid.Apply(doc.Components, width, settings)
			fmt.Fprintln(cmd.OutOrStdout(), renderPreview(components, width, termWidth))
			return nil
		},
	}

	cmd.Flags().IntVarP(&width, "width", "w", 1280, "container width in pixels")
	cmd.Flags().IntVar(&termWidth, "columns", 100, "terminal columns to draw into")

	return cmd
}

// renderPreview scales a laid-out component list to terminal cells and joins
// it into rows. Components sharing a row origin are joined horizontally.
func renderPreview(components []component.Component, containerWidth, termWidth int) string {
	if containerWidth <= 0 || termWidth <= 0 {
		return ""
	}
	reg := render.Builtin()
	scale := float64(termWidth) / float64(containerWidth)

	// Bucket visible components by row origin.
	rows := map[int][]component.Component{}
	for _, comp := range components {
		if !comp.Visible {
			continue
		}
		rows[comp.Position.Y] = append(rows[comp.Position.Y], comp)
	}
	ys := make([]int, 0, len(rows))
	for y := range rows {
		ys = append(ys, y)
	}
	sort.Ints(ys)

	rendered := make([]string, 0, len(ys))
	for _, y := range ys {
		row := rows[y]
		sort.Slice(row, func(i, j int) bool { return row[i].Position.X < row[j].Position.X })
		cells := make([]string, 0, len(row))
		for _, comp := range row {
			w := int(float64(comp.Size.Width) * scale)
			// Terminal cells are roughly twice as tall as wide.
			h := int(float64(comp.Size.Height) * scale / 2)
			cells = append(cells, reg.Render(comp, w, h))
		}
		rendered = append(rendered, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rendered...)
}
