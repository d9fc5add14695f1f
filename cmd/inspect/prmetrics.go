// cmd/inspect/prmetrics.go

package inspect

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"

	"github.com/opskit-dev/opskit/pkg/github"
	"github.com/opskit-dev/opskit/pkg/opscli"
	"github.com/opskit-dev/opskit/pkg/opserr"
	"github.com/opskit-dev/opskit/pkg/opsio"
)

const dateLayout = "2006-01-02"

var PRMetricsCmd = &cobra.Command{
	Use:   "pr-metrics",
	Short: "Report merge and review metrics for GitHub pull requests",
	Long: `Fetches merged pull requests for the configured repositories and writes
a markdown report with time-to-merge, review, and comment statistics.

Repositories come from a JSON config file and the API token from the
GITHUB_TOKEN environment variable (a local .env file is honored).

Examples:
  opskit inspect pr-metrics --start 2026-01-01 --end 2026-02-01
  opskit inspect pr-metrics --start 2026-01-01 --end 2026-02-01 --output report.md`,

	RunE: opscli.Wrap(func(rc *opsio.RuntimeContext, cmd *cobra.Command, args []string) error {
		startStr, _ := cmd.Flags().GetString("start")
		endStr, _ := cmd.Flags().GetString("end")
		output, _ := cmd.Flags().GetString("output")
		configPath, _ := cmd.Flags().GetString("config")
		logger := otelzap.Ctx(rc.Ctx)

		// Default window is the last two weeks.
		end := time.Now().UTC().Truncate(24 * time.Hour)
		start := end.AddDate(0, 0, -14)
		var err error
		if startStr != "" {
			start, err = time.Parse(dateLayout, startStr)
			if err != nil {
				return opserr.NewExpectedError(rc.Ctx,
					fmt.Errorf("invalid --start date %q, expected YYYY-MM-DD", startStr))
			}
		}
		if endStr != "" {
			end, err = time.Parse(dateLayout, endStr)
			if err != nil {
				return opserr.NewExpectedError(rc.Ctx,
					fmt.Errorf("invalid --end date %q, expected YYYY-MM-DD", endStr))
			}
		}
		// Window end is inclusive of the whole day.
		end = end.Add(24*time.Hour - time.Second)
		if end.Before(start) {
			return opserr.NewExpectedError(rc.Ctx,
				fmt.Errorf("--end must not be before --start"))
		}

		cfg, err := github.LoadConfig(rc, configPath)
		if err != nil {
			return err
		}
		token, err := github.ResolveToken(rc)
		if err != nil {
			return err
		}

		client := github.NewClient(token)
		summaries := make([]github.Summary, 0, len(cfg.Repos))
		for _, repo := range cfg.Repos {
			summary, err := github.CollectRepoMetrics(rc, client, repo, start, end)
			if err != nil {
				logger.Warn("Skipping repository", zap.String("repo", repo), zap.Error(err))
				continue
			}
			summaries = append(summaries, summary)
		}
		if len(summaries) == 0 {
			return fmt.Errorf("no repositories could be analyzed")
		}

		report := github.WriteReport(summaries)
		if output == "" {
			fmt.Print(report)
			return nil
		}
		if err := os.WriteFile(output, []byte(report), 0o644); err != nil {
			return fmt.Errorf("failed to write report to %s: %w", output, err)
		}
		fmt.Printf("Report written to %s\n", output)
		return nil
	}),
}

func init() {
	PRMetricsCmd.Flags().String("start", "", "Window start date, YYYY-MM-DD (default: 14 days ago)")
	PRMetricsCmd.Flags().String("end", "", "Window end date, YYYY-MM-DD (default: today)")
	PRMetricsCmd.Flags().StringP("output", "o", "", "Write the markdown report to a file instead of stdout")
	PRMetricsCmd.Flags().String("config", "github-config.json", "Path to the repositories config file")
}
