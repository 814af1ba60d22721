package cli

import (
	"github.com/spf13/cobra"

	"github.com/surfplot/surfplot/pkg/buildinfo"
	"github.com/surfplot/surfplot/pkg/observability"
)

// RootCommand creates the root cobra command with all subcommands registered.
// Before any subcommand runs, the CLI logger is attached to the command
// context and logging hooks are installed.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Surfplot arranges brain surface figures",
		Long:         `Surfplot lays out cortical surface views in grids, rows or columns, overlays per-vertex data layers with colour maps, and composes the rendered views with colorbars into publication figures.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			hooks := logHooks{logger: c.Logger}
			observability.SetBuildHooks(hooks)
			observability.SetCacheHooks(hooks)
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.SetOut(c.out)

	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.exampleCommand())
	root.AddCommand(c.medialWallCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}
