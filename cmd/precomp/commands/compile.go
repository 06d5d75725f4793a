package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newCompileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compile <file>...",
		Short: "Compile the given sources if their outputs are stale",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Compile(cmd.Context(), args, c.opts)
		},
	}
}

func (c *CLI) newScanCmd() *cobra.Command {
	var ignoreDeps, deleteStale bool

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Compile every stale source under the root",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := c.opts
			opts.IgnoreDependencies = ignoreDeps
			opts.DeleteStaleFiles = deleteStale
			return c.app.Scan(cmd.Context(), opts)
		},
	}

	cmd.Flags().BoolVar(&ignoreDeps, "ignore-dependencies", false, "Disable dependency tracking; the dependency store is not opened")
	cmd.Flags().BoolVar(&deleteStale, "delete-stale-files", false, "Delete files in the output directory that no scanned source produced")
	return cmd
}

func (c *CLI) newWatchCmd() *cobra.Command {
	var ignoreDeps, deleteStale, noInitialScan bool

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Scan, then recompile changed sources and their dependents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := c.opts
			opts.IgnoreDependencies = ignoreDeps
			opts.DeleteStaleFiles = deleteStale
			opts.NoInitialScan = noInitialScan
			return c.app.Watch(cmd.Context(), opts)
		},
	}

	cmd.Flags().BoolVar(&ignoreDeps, "ignore-dependencies", false, "Disable dependency tracking; the dependency store is not opened")
	cmd.Flags().BoolVar(&deleteStale, "delete-stale-files", false, "Delete stale outputs after the initial scan")
	cmd.Flags().BoolVar(&noInitialScan, "no-initial-scan", false, "Start watching without scanning first")
	cmd.MarkFlagsMutuallyExclusive("delete-stale-files", "no-initial-scan")
	return cmd
}
