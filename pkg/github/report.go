// pkg/github/report.go

package github

import (
	"fmt"
	"sort"
	"strings"
)

// WriteReport renders the summaries as a markdown document. Repos are
// emitted in the order given; PRs within a repo sort by time-to-merge
// descending so the slowest merges lead the table.
func WriteReport(summaries []Summary) string {
	var b strings.Builder

	b.WriteString("# Pull Request Metrics\n\n")
	if len(summaries) > 0 {
		b.WriteString(fmt.Sprintf("Window: %s to %s\n\n",
			summaries[0].WindowStart.Format("2006-01-02"),
			summaries[0].WindowEnd.Format("2006-01-02")))
	}

	for _, s := range summaries {
		b.WriteString(fmt.Sprintf("## %s\n\n", s.Repo))
		if s.PRCount == 0 {
			b.WriteString("No merged pull requests in window.\n\n")
			continue
		}

		b.WriteString(fmt.Sprintf("- Merged PRs: %d\n", s.PRCount))
		b.WriteString(fmt.Sprintf("- Time to merge: mean %s, median %s, min %s, max %s\n",
			formatHours(s.MeanTimeToMerge),
			formatHours(s.MedianTimeToMerge),
			formatHours(s.MinTimeToMerge),
			formatHours(s.MaxTimeToMerge)))
		if s.ReviewedPRCount > 0 {
			b.WriteString(fmt.Sprintf("- Review time (first review to merge): mean %s, median %s\n",
				formatHours(s.MeanReviewTime),
				formatHours(s.MedianReviewTime)))
		} else {
			b.WriteString("- Review time (first review to merge): no reviews\n")
		}
		b.WriteString(fmt.Sprintf("- Comments: mean %.1f, median %.1f\n", s.MeanComments, s.MedianComments))
		b.WriteString(fmt.Sprintf("- Approvals per PR: mean %.1f\n", s.MeanApprovals))
		b.WriteString(fmt.Sprintf("- Changed files per PR: mean %.1f\n\n", s.MeanChangedFiles))

		prs := make([]PRMetrics, len(s.PRs))
		copy(prs, s.PRs)
		sort.SliceStable(prs, func(i, j int) bool {
			return prs[i].TimeToMergeHours > prs[j].TimeToMergeHours
		})

		b.WriteString("| PR | Title | Author | Time to merge | Review time | Comments | Approvals | Reviewers | +/- |\n")
		b.WriteString("|---|---|---|---|---|---|---|---|---|\n")
		for _, pr := range prs {
			b.WriteString(fmt.Sprintf("| [#%d](%s) | %s | %s | %s | %s | %d | %d | %d | +%d/-%d |\n",
				pr.Number, pr.URL,
				escapeCell(pr.Title),
				pr.Author,
				formatHours(pr.TimeToMergeHours),
				formatReviewTime(pr.FirstReviewToMergeHours),
				pr.CommentCount,
				pr.ApprovalCount,
				pr.DistinctReviewers,
				pr.Additions, pr.Deletions))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// formatHours renders a duration in hours as "Nd N.Nh" once it crosses a
// day, plain "N.Nh" below that.
func formatHours(hours float64) string {
	if hours >= 24 {
		days := int(hours) / 24
		rem := hours - float64(days)*24
		return fmt.Sprintf("%dd %.1fh", days, rem)
	}
	return fmt.Sprintf("%.1fh", hours)
}

func formatReviewTime(hours float64) string {
	if hours < 0 {
		return "n/a"
	}
	return formatHours(hours)
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
