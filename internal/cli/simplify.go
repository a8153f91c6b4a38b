package cli

import (
	"github.com/spf13/cobra"

	tmdio "github.com/matzehuels/tmd/pkg/io"
)

// simplifyCommand creates the simplify command.
func (c *CLI) simplifyCommand() *cobra.Command {
	var (
		flags  analysisFlags
		output string
	)

	cmd := &cobra.Command{
		Use:   "simplify [file]",
		Short: "Reduce a tree to its section boundaries",
		Long: `Simplify keeps the root and the last point of every section and writes the
reduced tree as JSON. Without --output the tree is printed to stdout.`,
		Example: `  tmd simplify neuron.json -o neuron.simple.json`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := loadTree(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			runner, err := c.newRunner(cmd.Context(), flags.noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			simplified, err := runner.Simplify(cmd.Context(), t, c.options(cmd, &flags))
			if err != nil {
				return err
			}

			if output == "" {
				return tmdio.WriteJSON(simplified, cmd.OutOrStdout())
			}
			if err := tmdio.ExportJSON(simplified, output); err != nil {
				return err
			}
			printSuccess("Simplified %s", args[0])
			printDetail("%d → %d points", t.Size(), simplified.Size())
			printFile(output)
			return nil
		},
	}

	flags.registerCache(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file")
	return cmd
}
