package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// pcaCommand creates the pca command.
func (c *CLI) pcaCommand() *cobra.Command {
	var flags analysisFlags

	cmd := &cobra.Command{
		Use:   "pca [file]",
		Short: "Print the principal direction of a tree in a plane",
		Long: `PCA projects every point onto a plane of two axes and prints the requested
principal direction as a unit vector. Component 0 is the direction of largest
variance.`,
		Example: `  tmd pca neuron.json --plane xz --component 1`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := loadTree(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			runner, err := c.newRunner(cmd.Context(), true)
			if err != nil {
				return err
			}
			defer runner.Close()

			opts := c.options(cmd, &flags)
			dir, err := runner.PrincipalAxis(cmd.Context(), t, opts)
			if err != nil {
				return err
			}
			printKeyValue("Plane", opts.Plane)
			printKeyValue("Component", fmt.Sprint(opts.Component))
			printKeyValue("Direction", StyleNumber.Render(fmt.Sprintf("[%.6f, %.6f]", dir[0], dir[1])))
			return nil
		},
	}

	flags.registerPlane(cmd)
	return cmd
}
