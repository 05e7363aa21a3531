package cmd

import (
	"github.com/conneroisu/gondola/internal/report"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"l"},
	Short:   "List the days that have a solver",
	Long: `List every registered day with its puzzle title.

Examples:
  gondola list                    # One day per line
  gondola list -o json            # Output as JSON
  gondola list --output yaml      # Output as YAML`,
	Args: cobra.NoArgs,
	RunE: runList,
}

var listFlags *OutputFlags

func init() {
	rootCmd.AddCommand(listCmd)

	listFlags = addOutputFlags(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	rt, err := loadRuntime(cmd)
	if err != nil {
		return err
	}

	renderer, err := report.NewRenderer(rt.cfg.ReportOptions())
	if err != nil {
		return err
	}

	return renderer.RenderDays(cmd.Context(), cmd.OutOrStdout(), report.Describe(rt.registry))
}
