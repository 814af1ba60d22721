package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/surfplot/surfplot/pkg/layout"
	"github.com/surfplot/surfplot/pkg/surface"
)

// layoutOpts holds the command-line flags for the layout command.
type layoutOpts struct {
	hemispheres []string // hemispheres to plot: left, right
	mode        string   // grid, row or column
	views       []string // view names in order
	flip        bool     // swap the hemisphere order
	interactive bool     // explore the layout in a terminal UI
}

// layoutCommand creates the layout command for previewing view grids.
func (c *CLI) layoutCommand() *cobra.Command {
	opts := layoutOpts{
		hemispheres: []string{string(surface.Left), string(surface.Right)},
		mode:        string(layout.Grid),
		views:       []string{string(surface.Lateral), string(surface.Medial)},
	}

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print the view grid for a layout",
		Long: `Print the view grid for a layout.

The layout command computes where each hemisphere and view lands in the
figure without loading any surfaces. Each cell reads "hemisphere view".

With --interactive, the flags only seed a terminal UI in which views can
be toggled and reordered and the mode, flip and hemispheres changed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringSliceVar(&opts.hemispheres, "hemispheres", opts.hemispheres, "hemispheres to plot: left, right")
	cmd.Flags().StringVar(&opts.mode, "layout", opts.mode, "layout mode: grid (default), row, column")
	cmd.Flags().StringSliceVar(&opts.views, "views", opts.views, "views: lateral, medial, dorsal, ventral, anterior, posterior")
	cmd.Flags().BoolVar(&opts.flip, "flip", false, "swap the hemisphere order")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "explore layouts interactively")

	return cmd
}

// runLayout computes the layout and prints its shape and grid.
func (c *CLI) runLayout(ctx context.Context, opts layoutOpts) error {
	var left, right bool
	for _, s := range opts.hemispheres {
		h, err := surface.ParseHemisphere(s)
		if err != nil {
			return err
		}
		left = left || h == surface.Left
		right = right || h == surface.Right
	}
	mode, err := layout.ParseMode(opts.mode)
	if err != nil {
		return err
	}
	views, err := surface.ParseViews(opts.views)
	if err != nil {
		return err
	}

	m := NewLayoutModel(left, right, mode, views, opts.flip)
	if opts.interactive {
		final, err := tea.NewProgram(m, tea.WithContext(ctx)).Run()
		if err != nil {
			return fmt.Errorf("layout explorer: %w", err)
		}
		m = final.(LayoutModel)
		if !m.Done {
			return nil
		}
	}

	l, err := m.Layout()
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "%s %v\n", StyleTitle.Render("Shape"), l.Shape())
	fmt.Fprintln(c.out, layoutTable(l))
	if opts.interactive {
		printNextStep("Equivalent command", m.Command())
	}
	return nil
}
