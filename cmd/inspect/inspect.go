// cmd/inspect/inspect.go

package inspect

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/opskit-dev/opskit/pkg/logger"
)

// InspectCmd is the root command for read-only reporting operations.
var InspectCmd = &cobra.Command{
	Use:     "inspect",
	Short:   "Inspect resources (e.g., pull requests, presentations)",
	Long:    `The inspect command produces read-only reports: GitHub pull request metrics and text extracted from PowerPoint files.`,
	Aliases: []string{"read", "report"},
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.GetLogger()
		log.Info("No subcommand provided for inspect.", zap.String("command", cmd.Use))
		_ = cmd.Help()
	},
}

func init() {
	InspectCmd.AddCommand(PRMetricsCmd)
	InspectCmd.AddCommand(PptxCmd)
}
