package cli

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/surfplot/surfplot/pkg/datasets"
	"github.com/surfplot/surfplot/pkg/scalars"
)

// medialWallCommand creates the medial-wall command, which pads data
// stored without the fs_LR medial wall back to the full vertex count.
func (c *CLI) medialWallCommand() *cobra.Command {
	var (
		output string
		split  bool
	)

	cmd := &cobra.Command{
		Use:   "medial-wall [data]",
		Short: "Insert the fs_LR medial wall into cortex-only data",
		Long: `Insert the fs_LR medial wall into cortex-only data.

The input must hold 59412 values (cortex only) or 64984 values (already
complete). Medial-wall vertices are written as NaN. With --split the
result is written as <output>_lh and <output>_rh.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := scalars.Load(scalars.Path(args[0]))
			if err != nil {
				return err
			}
			arrays, err := datasets.AddMedialWall(values, split)
			if err != nil {
				return err
			}

			out := output
			if out == "" {
				out = strings.TrimSuffix(args[0], filepath.Ext(args[0])) + "_full.txt"
			}
			paths := []string{out}
			if split {
				base, ext := strings.TrimSuffix(out, filepath.Ext(out)), filepath.Ext(out)
				paths = []string{base + "_lh" + ext, base + "_rh" + ext}
			}
			for i, a := range arrays {
				if err := writeValues(paths[i], a); err != nil {
					return err
				}
				printFile(paths[i])
			}
			printSuccess("Added medial wall (%d → %d vertices)", len(values), datasets.FullVertices)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <data>_full.txt)")
	cmd.Flags().BoolVar(&split, "split", false, "write left and right hemispheres separately")

	return cmd
}
