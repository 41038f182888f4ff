package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gridboard/gridboard/pkg/document"
	"github.com/gridboard/gridboard/pkg/grid"
)

// optimizeCommand creates the optimize command for re-flowing a layout file.
func (c *CLI) optimizeCommand() *cobra.Command {
	var (
		width  int
		reflow bool
		output string
	)

	cmd := &cobra.Command{
		Use:   "optimize [layout.json]",
		Short: "Optimize a layout document for a container width",
		Long: `Optimize a layout document for a container width.

The optimizer flows draft components onto the breakpoint grid, applies
size constraints, and resolves overlaps. With --reflow every visible
component is repositioned into reading order; without it explicit
placements are preserved.

The component order in the file is never changed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			return c.runOptimize(args[0], output, width, reflow, cfg.GridSettings())
		},
	}

	cmd.Flags().IntVarP(&width, "width", "w", 1280, "container width in pixels")
	cmd.Flags().BoolVar(&reflow, "reflow", false, "reposition all visible components into reading order")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: overwrite input)")

	return cmd
}

func (c *CLI) runOptimize(input, output string, width int, reflow bool, settings grid.Config) error {
	prog := newProgress(c.Logger)

	doc, err := document.ReadFile(input)
	if err != nil {
		return fmt.Errorf("load layout %s: %w", input, err)
	}

	settings.Reflow = reflow
	optimized, capHit := grid.Apply(doc.Components, width, settings)
	if capHit {
		c.Logger.Warn("collision retry cap exhausted, residual overlap remains", "width", width)
	}
	doc.Components = optimized

	if output == "" {
		output = input
	}
	if err := document.WriteFile(doc, output); err != nil {
		return fmt.Errorf("write layout %s: %w", output, err)
	}

	prog.done(fmt.Sprintf("Optimized %d components for width %d", len(optimized), width))
	return nil
}
