package commands

import (
	"github.com/spf13/cobra"

	"github.com/beixiyo/ai-sync/internal/errors"
	"github.com/beixiyo/ai-sync/internal/report"
	"github.com/beixiyo/ai-sync/internal/tool"
)

var (
	toolsProject    bool
	toolsProjectDir string
	toolsOutput     string
)

func init() {
	toolsCmd.Flags().BoolVarP(&toolsProject, "project", "p", false,
		"show project targets")
	toolsCmd.Flags().StringVarP(&toolsProjectDir, "project-dir", "d", "",
		"project directory (default: working directory)")
	toolsCmd.Flags().StringVarP(&toolsOutput, "output", "o", "text",
		"output format: text, json")
	rootCmd.AddCommand(toolsCmd)
}

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the registered tools and their targets",
	Long: `List every registered tool, built-in or declared in the config file,
with the configuration types it supports and the resolved target path of
each type.`,
	Args: cobra.NoArgs,
	RunE: runTools,
}

func runTools(cmd *cobra.Command, _ []string) error {
	format, err := report.ParseFormat(toolsOutput)
	if err != nil {
		return errors.NewUserError(err, "use --output text or --output json")
	}

	scope := tool.Scope{IsProject: toolsProject}
	if toolsProject {
		if scope.ProjectDir, err = resolveProjectDir(toolsProjectDir); err != nil {
			return err
		}
	}

	return report.NewReporter(cmd.OutOrStdout(), format).Tools(report.ToolRows(registry, scope))
}
