package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// analyzeCommand creates the analyze command.
func (c *CLI) analyzeCommand() *cobra.Command {
	var (
		flags   analysisFlags
		output  string
		jsonOut bool
	)

	cmd := &cobra.Command{
		Use:   "analyze [file]",
		Short: "Compute the full morphometric report of a tree",
		Long: `Analyze loads a JSON tree and computes sections, segment and path lengths,
radial distances, branch orders and orientation. Reports are cached by tree
content and options.`,
		Example: `  # Summary on the terminal
  tmd analyze neuron.json

  # Planar radial distances from a custom point, full report as JSON
  tmd analyze neuron.json --axes xy --point 10,20 -o report.json`,
		Args: cobra.ExactArgs(1),
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

			report, cached, err := runner.Analyze(cmd.Context(), t, c.options(cmd, &flags))
			if err != nil {
				return err
			}

			data, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				return fmt.Errorf("encode report: %w", err)
			}
			if jsonOut {
				fmt.Println(string(data))
				return nil
			}

			printSuccess("Analyzed %s", args[0])
			printStats(report.Size, len(report.Sections), cached)
			printNewline()
			printKeyValue("Type", fmt.Sprint(report.Type))
			printKeyValue("Tips", fmt.Sprint(report.Terminations))
			printKeyValue("Forks", fmt.Sprintf("%d (%d bifurcations)", report.Multifurcations, report.Bifurcations))
			printKeyValue("Length", fmt.Sprintf("%.3f", report.Summary.TotalLength))
			printKeyValue("Max path", fmt.Sprintf("%.3f", report.Summary.MaxPathDistance))
			printKeyValue("Max radial", fmt.Sprintf("%.3f", report.Summary.MaxRadialDistance))
			printKeyValue("Max order", fmt.Sprint(report.Summary.MaxBranchOrder))
			if report.PrincipalAxis != nil {
				printKeyValue("Orientation", fmt.Sprintf("[%.3f, %.3f]", report.PrincipalAxis[0], report.PrincipalAxis[1]))
			}

			if output != "" {
				if err := os.WriteFile(output, append(data, '\n'), 0644); err != nil {
					return fmt.Errorf("write %s: %w", output, err)
				}
				printNewline()
				printFile(output)
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the full JSON report to this file")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "print the full JSON report to stdout")

	return cmd
}
