package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gridboard/gridboard/pkg/document"
	"github.com/gridboard/gridboard/pkg/template"
)

// templateCommand creates the template command group.
func (c *CLI) templateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Work with the built-in layout templates",
		Long: `Work with the built-in layout templates.

Templates are named starter layouts. Instantiating one mints fresh
component ids, so the same template can seed any number of dashboards.`,
	}
	cmd.AddCommand(c.templateListCommand())
	cmd.AddCommand(c.templateShowCommand())
	cmd.AddCommand(c.templateNewCommand())
	return cmd
}

func (c *CLI) templateListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg := template.Builtin()
			for _, name := range reg.Names() {
				components, err := reg.Instantiate(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-12s %d components\n", name, len(components))
			}
			return nil
		},
	}
}

func (c *CLI) templateShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show [name]",
		Short: "Print a template as a layout document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			components, err := template.Builtin().Instantiate(args[0])
			if err != nil {
				return err
			}
			data, err := document.Export(components)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}

func (c *CLI) templateNewCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "new [name]",
		Short: "Write a fresh layout file from a template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			components, err := template.Builtin().Instantiate(args[0])
			if err != nil {
				return err
			}
			doc := document.New(components)
			if err := document.WriteFile(doc, output); err != nil {
				return err
			}
			c.Logger.Info("wrote layout", "template", args[0], "path", output, "components", len(components))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "layout.json", "output file path")
	_ = cmd.MarkFlagFilename("output", "json")

	return cmd
}
