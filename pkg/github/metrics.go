// pkg/github/metrics.go

package github

import (
	"sort"
	"time"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"

	"github.com/opskit-dev/opskit/pkg/opsio"
)

// PRMetrics holds the computed metrics for one merged pull request.
type PRMetrics struct {
	Number                  int
	Title                   string
	Author                  string
	URL                     string
	CreatedAt               time.Time
	MergedAt                time.Time
	TimeToMergeHours        float64
	FirstReviewToMergeHours float64 // -1 when no review was submitted
	CommentCount            int
	ApprovalCount           int
	DistinctReviewers       int
	Additions               int
	Deletions               int
	ChangedFiles            int
}

// Summary aggregates metrics across all qualifying PRs of one repo.
type Summary struct {
	Repo              string
	WindowStart       time.Time
	WindowEnd         time.Time
	PRCount           int
	ReviewedPRCount   int
	MeanTimeToMerge   float64
	MedianTimeToMerge float64
	MinTimeToMerge    float64
	MaxTimeToMerge    float64
	MeanReviewTime    float64
	MedianReviewTime  float64
	MeanComments      float64
	MedianComments    float64
	MeanApprovals     float64
	MeanChangedFiles  float64
	PRs               []PRMetrics
}

// Qualifies reports whether a PR counts toward the window: it must be
// merged, created inside the window, and merged inside the window.
func Qualifies(pr PullRequest, start, end time.Time) bool {
	if pr.MergedAt == nil {
		return false
	}
	if pr.CreatedAt.Before(start) || pr.CreatedAt.After(end) {
		return false
	}
	if pr.MergedAt.Before(start) || pr.MergedAt.After(end) {
		return false
	}
	return true
}

// Analyze computes the per-PR metrics from the detailed PR view and its
// reviews.
func Analyze(pr PullRequest, reviews []Review, commentCount int) PRMetrics {
	m := PRMetrics{
		Number:       pr.Number,
		Title:        pr.Title,
		URL:          pr.HTMLURL,
		CreatedAt:    pr.CreatedAt,
		MergedAt:     *pr.MergedAt,
		CommentCount: commentCount,
		Additions:    pr.Additions,
		Deletions:    pr.Deletions,
		ChangedFiles: pr.ChangedFiles,
	}
	if pr.User != nil {
		m.Author = pr.User.Login
	}
	m.TimeToMergeHours = m.MergedAt.Sub(pr.CreatedAt).Hours()

	var firstReview *time.Time
	reviewers := make(map[string]struct{})
	for _, r := range reviews {
		if r.SubmittedAt != nil && (firstReview == nil || r.SubmittedAt.Before(*firstReview)) {
			firstReview = r.SubmittedAt
		}
		if r.State == "APPROVED" {
			m.ApprovalCount++
		}
		if r.User != nil {
			reviewers[r.User.Login] = struct{}{}
		}
	}
	m.DistinctReviewers = len(reviewers)

	if firstReview != nil {
		m.FirstReviewToMergeHours = m.MergedAt.Sub(*firstReview).Hours()
	} else {
		m.FirstReviewToMergeHours = -1
	}
	return m
}

// Summarize folds the per-PR metrics of one repo into aggregate
// statistics. It returns a zero-count summary for an empty slice.
func Summarize(repo string, start, end time.Time, prs []PRMetrics) Summary {
	s := Summary{
		Repo:        repo,
		WindowStart: start,
		WindowEnd:   end,
		PRCount:     len(prs),
		PRs:         prs,
	}
	if len(prs) == 0 {
		return s
	}

	ttm := make([]float64, 0, len(prs))
	comments := make([]float64, 0, len(prs))
	var review []float64
	var approvals, changed float64
	for _, pr := range prs {
		ttm = append(ttm, pr.TimeToMergeHours)
		comments = append(comments, float64(pr.CommentCount))
		// Unreviewed PRs carry the -1 sentinel and stay out of the
		// review-time statistics.
		if pr.FirstReviewToMergeHours >= 0 {
			review = append(review, pr.FirstReviewToMergeHours)
		}
		approvals += float64(pr.ApprovalCount)
		changed += float64(pr.ChangedFiles)
	}

	s.MeanTimeToMerge = mean(ttm)
	s.MedianTimeToMerge = median(ttm)
	s.MinTimeToMerge = minOf(ttm)
	s.MaxTimeToMerge = maxOf(ttm)
	s.ReviewedPRCount = len(review)
	if len(review) > 0 {
		s.MeanReviewTime = mean(review)
		s.MedianReviewTime = median(review)
	}
	s.MeanComments = mean(comments)
	s.MedianComments = median(comments)
	s.MeanApprovals = approvals / float64(len(prs))
	s.MeanChangedFiles = changed / float64(len(prs))
	return s
}

// CollectRepoMetrics runs the full fetch-and-analyze pass for one repo:
// list closed PRs back to the window start, keep the ones qualifying for
// the window, fetch detail and reviews per PR, and summarize.
func CollectRepoMetrics(rc *opsio.RuntimeContext, client *Client, repo string, start, end time.Time) (Summary, error) {
	logger := otelzap.Ctx(rc.Ctx)
	logger.Info("Collecting pull request metrics",
		zap.String("repo", repo),
		zap.Time("start", start),
		zap.Time("end", end))

	pulls, err := client.ClosedPulls(rc, repo, start)
	if err != nil {
		return Summary{}, err
	}

	var metrics []PRMetrics
	for _, pr := range pulls {
		if !Qualifies(pr, start, end) {
			continue
		}

		detail, err := client.Pull(rc, repo, pr.Number)
		if err != nil {
			logger.Warn("Skipping PR, detail fetch failed",
				zap.Int("pr", pr.Number), zap.Error(err))
			continue
		}
		reviews, err := client.Reviews(rc, repo, pr.Number)
		if err != nil {
			logger.Warn("Skipping PR, review fetch failed",
				zap.Int("pr", pr.Number), zap.Error(err))
			continue
		}
		comments, err := client.CommentCount(rc, repo, pr.Number)
		if err != nil {
			logger.Warn("Comment count unavailable, using zero",
				zap.Int("pr", pr.Number), zap.Error(err))
			comments = 0
		}
		metrics = append(metrics, Analyze(*detail, reviews, comments))
	}

	logger.Info("Repo metrics collected",
		zap.String("repo", repo),
		zap.Int("qualifying_prs", len(metrics)))
	return Summarize(repo, start, end, metrics), nil
}

func mean(vals []float64) float64 {
	var sum float64
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

func median(vals []float64) float64 {
	sorted := make([]float64, len(vals))
	copy(sorted, vals)
	sort.Float64s(sorted)
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

func minOf(vals []float64) float64 {
	m := vals[0]
	for _, v := range vals[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func maxOf(vals []float64) float64 {
	m := vals[0]
	for _, v := range vals[1:] {
		if v > m {
			m = v
		}
	}
	return m
}
