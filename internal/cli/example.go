package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/surfplot/surfplot/pkg/datasets"
	"github.com/surfplot/surfplot/pkg/scalars"
)

// exampleCommand creates the example command for exporting bundled data.
func (c *CLI) exampleCommand() *cobra.Command {
	var (
		dir  string
		join bool
	)

	cmd := &cobra.Command{
		Use:   "example [" + strings.Join(datasets.Names(), "|") + "]",
		Short: "Write an example dataset as text",
		Long: `Write an example dataset as text, one value per line.

Without --join, the left and right hemispheres are written to
lh_<name>.txt and rh_<name>.txt; with --join both go to <name>.txt,
left hemisphere first.`,
		ValidArgs: datasets.Names(),
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			arrays, err := datasets.LoadExampleData(args[0], join)
			if err != nil {
				return err
			}
			names := []string{"lh_" + args[0] + ".txt", "rh_" + args[0] + ".txt"}
			if join {
				names = []string{args[0] + ".txt"}
			}
			for i, values := range arrays {
				path := filepath.Join(dir, names[i])
				if err := writeValues(path, values); err != nil {
					return err
				}
				printFile(path)
			}
			printSuccess("Wrote %s (%d vertices)", args[0], datasets.FullVertices)
			printNewline()
			printNextStep("Use it in a figure file", fmt.Sprintf("[[layers]] example = %q", args[0]))
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "output", "o", ".", "output directory")
	cmd.Flags().BoolVar(&join, "join", false, "write both hemispheres to one file")

	return cmd
}

// writeValues writes values to path, one per line, creating parent
// directories as needed.
func writeValues(path string, values []float64) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := scalars.WriteText(f, values); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
