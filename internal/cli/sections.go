package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// sectionsCommand creates the sections command.
func (c *CLI) sectionsCommand() *cobra.Command {
	var flags analysisFlags

	cmd := &cobra.Command{
		Use:   "sections [file]",
		Short: "List the sections of a tree",
		Long: `Sections prints one row per section: the boundary it grows out of, its
first and last point, its length and the branch order of its last point.`,
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

			report, _, err := runner.Analyze(cmd.Context(), t, c.options(cmd, &flags))
			if err != nil {
				return err
			}
			if len(report.Sections) == 0 {
				printInfo("Tree has a single point and no sections")
				return nil
			}

			header := lipgloss.NewStyle().Bold(true).Foreground(colorGray)
			cell := lipgloss.NewStyle().Width(10).Align(lipgloss.Right)
			row := func(style lipgloss.Style, cols ...string) string {
				out := make([]string, len(cols))
				for i, col := range cols {
					out[i] = cell.Inherit(style).Render(col)
				}
				return strings.Join(out, " ")
			}

			fmt.Println(row(header, "begin", "first", "end", "length", "order"))
			for _, s := range report.Sections {
				fmt.Println(row(StyleValue,
					fmt.Sprint(s.Begin),
					fmt.Sprint(s.First),
					fmt.Sprint(s.End),
					fmt.Sprintf("%.3f", s.Length),
					fmt.Sprint(s.BranchOrder)))
			}
			printNewline()
			printDetail("%d sections", len(report.Sections))
			return nil
		},
	}

	flags.registerCache(cmd)
	return cmd
}
