package commands

import (
	"io"

	goccy "github.com/goccy/go-json"
	"github.com/rodaine/table"
	"github.com/spf13/cobra"
	"go.trai.ch/precomp/internal/app"
)

func (c *CLI) newDepsCmd() *cobra.Command {
	var transitive, stored, asJSON bool
	cmd := &cobra.Command{
		Use:   "deps <file>",
		Short: "List the files a source imports",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode := app.DepsDirect
			switch {
			case stored:
				mode = app.DepsStored
			case transitive:
				mode = app.DepsTransitive
			}
			rows, err := c.app.Deps(cmd.Context(), args[0], mode, c.opts)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), rows, asJSON)
		},
	}
	cmd.Flags().BoolVarP(&transitive, "transitive", "t", false, "Include indirect imports")
	cmd.Flags().BoolVar(&stored, "stored", false, "Show the edges recorded by the last compile")
	cmd.MarkFlagsMutuallyExclusive("transitive", "stored")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON instead of a table")
	return cmd
}

func (c *CLI) newDependentsCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "dependents <file>",
		Short: "List the recorded sources that depend on a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := c.app.Dependents(cmd.Context(), args[0], c.opts)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), rows, asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON instead of a table")
	return cmd
}

func render(w io.Writer, rows []app.Dependency, asJSON bool) error {
	if asJSON {
		if rows == nil {
			rows = []app.Dependency{}
		}
		data, err := goccy.MarshalIndent(rows, "", "  ")
		if err != nil {
			return err
		}
		_, err = w.Write(append(data, '\n'))
		return err
	}

	t := table.New("Source", "Dependency").WithWriter(w)
	for _, r := range rows {
		t.AddRow(r.Source, r.Dependency)
	}
	t.Print()
	return nil
}
