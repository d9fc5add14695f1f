// pkg/github/client.go

package github

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"

	"github.com/opskit-dev/opskit/pkg/httpclient"
	"github.com/opskit-dev/opskit/pkg/opsio"
)

const defaultBaseURL = "https://api.github.com"

const perPage = 100

// User is the author/reviewer identity subset we need.
type User struct {
	Login string `json:"login"`
}

// PullRequest is the API subset used for metrics.
type PullRequest struct {
	Number       int        `json:"number"`
	Title        string     `json:"title"`
	HTMLURL      string     `json:"html_url"`
	User         *User      `json:"user"`
	CreatedAt    time.Time  `json:"created_at"`
	MergedAt     *time.Time `json:"merged_at"`
	Additions    int        `json:"additions"`
	Deletions    int        `json:"deletions"`
	ChangedFiles int        `json:"changed_files"`
}

// Review is a single PR review.
type Review struct {
	State       string     `json:"state"`
	SubmittedAt *time.Time `json:"submitted_at"`
	User        *User      `json:"user"`
}

// Client talks to the GitHub REST API v3.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

func NewClient(token string) *Client {
	return &Client{
		httpClient: httpclient.DefaultClient(),
		baseURL:    defaultBaseURL,
		token:      token,
	}
}

// NewClientWithBaseURL exists for tests against a local server.
func NewClientWithBaseURL(token, baseURL string) *Client {
	c := NewClient(token)
	c.baseURL = baseURL
	return c
}

func (c *Client) get(rc *opsio.RuntimeContext, path string, params url.Values, out interface{}) (http.Header, error) {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(rc.Ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "token "+c.token)
	req.Header.Set("Accept", "application/vnd.github.v3+json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("GitHub API returned %d for %s: %s", resp.StatusCode, path, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return nil, fmt.Errorf("failed to decode response from %s: %w", path, err)
	}
	return resp.Header, nil
}

// getAllPages walks Link-header pagination, appending each page's items
// through collect. A failing page stops the walk but keeps what was fetched,
// matching the fail-soft behavior of the interactive tool this replaces.
func (c *Client) getAllPages(rc *opsio.RuntimeContext, path string, params url.Values, collect func(json.RawMessage) (int, error)) error {
	logger := otelzap.Ctx(rc.Ctx)

	for page := 1; ; page++ {
		pageParams := url.Values{}
		for k, v := range params {
			pageParams[k] = v
		}
		pageParams.Set("page", strconv.Itoa(page))
		pageParams.Set("per_page", strconv.Itoa(perPage))

		var raw json.RawMessage
		header, err := c.get(rc, path, pageParams, &raw)
		if err != nil {
			logger.Warn("Page fetch failed, keeping partial results",
				zap.String("path", path),
				zap.Int("page", page),
				zap.Error(err))
			return nil
		}

		n, err := collect(raw)
		if err != nil {
			return err
		}
		if n == 0 {
			return nil
		}

		if !hasNextPage(header.Get("Link")) {
			return nil
		}
	}
}

// hasNextPage parses the Link header, a comma-separated list of
// `<url>; rel="kind"` entries.
func hasNextPage(linkHeader string) bool {
	for _, part := range strings.Split(linkHeader, ",") {
		if strings.Contains(part, `rel="next"`) {
			return true
		}
	}
	return false
}

// ClosedPulls lists closed PRs for a repo, newest first. Pagination stops
// at the first entry created before cutoff, since everything after it on
// the created-descending listing is older still. A zero cutoff lists all.
func (c *Client) ClosedPulls(rc *opsio.RuntimeContext, repo string, cutoff time.Time) ([]PullRequest, error) {
	var all []PullRequest
	params := url.Values{
		"state":     {"closed"},
		"sort":      {"created"},
		"direction": {"desc"},
	}
	err := c.getAllPages(rc, "/repos/"+repo+"/pulls", params, func(raw json.RawMessage) (int, error) {
		var page []PullRequest
		if err := json.Unmarshal(raw, &page); err != nil {
			return 0, err
		}
		for _, pr := range page {
			if !cutoff.IsZero() && pr.CreatedAt.Before(cutoff) {
				return 0, nil
			}
			all = append(all, pr)
		}
		return len(page), nil
	})
	return all, err
}

// Pull fetches the detailed view of one PR (the list endpoint omits the
// additions/deletions/changed_files counters).
func (c *Client) Pull(rc *opsio.RuntimeContext, repo string, number int) (*PullRequest, error) {
	var pr PullRequest
	if _, err := c.get(rc, fmt.Sprintf("/repos/%s/pulls/%d", repo, number), nil, &pr); err != nil {
		return nil, err
	}
	return &pr, nil
}

// Reviews lists all reviews for a PR.
func (c *Client) Reviews(rc *opsio.RuntimeContext, repo string, number int) ([]Review, error) {
	var all []Review
	err := c.getAllPages(rc, fmt.Sprintf("/repos/%s/pulls/%d/reviews", repo, number), nil, func(raw json.RawMessage) (int, error) {
		var page []Review
		if err := json.Unmarshal(raw, &page); err != nil {
			return 0, err
		}
		all = append(all, page...)
		return len(page), nil
	})
	return all, err
}

// CommentCount totals review comments (on code) plus issue comments
// (general discussion) for a PR.
func (c *Client) CommentCount(rc *opsio.RuntimeContext, repo string, number int) (int, error) {
	total := 0
	paths := []string{
		fmt.Sprintf("/repos/%s/pulls/%d/comments", repo, number),
		fmt.Sprintf("/repos/%s/issues/%d/comments", repo, number),
	}
	for _, path := range paths {
		err := c.getAllPages(rc, path, nil, func(raw json.RawMessage) (int, error) {
			var page []json.RawMessage
			if err := json.Unmarshal(raw, &page); err != nil {
				return 0, err
			}
			total += len(page)
			return len(page), nil
		})
		if err != nil {
			return 0, err
		}
	}
	return total, nil
}
