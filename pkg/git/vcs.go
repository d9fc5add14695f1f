// pkg/git/vcs.go

package git

import (
	"fmt"
	"strings"

	"github.com/opskit-dev/opskit/pkg/execute"
	"github.com/opskit-dev/opskit/pkg/opsio"
)

// Vcs is the capability port for everything the commit pipeline needs from
// version control. The classifier and resolver never touch it; only the
// collector and the commit/push steps do, which keeps the analysis stages
// testable without a repository.
type Vcs interface {
	Status(rc *opsio.RuntimeContext) (*Status, error)
	// Diff returns the unified diff of a tracked path against HEAD,
	// staged and unstaged changes combined.
	Diff(rc *opsio.RuntimeContext, path string) (string, error)
	// ReadFile returns worktree file content, used to synthesize a
	// pseudo-diff for untracked files.
	ReadFile(rc *opsio.RuntimeContext, path string) (string, error)
	StageAll(rc *opsio.RuntimeContext) error
	Commit(rc *opsio.RuntimeContext, message string) error
	Push(rc *opsio.RuntimeContext, branch string, hasUpstream bool) (string, error)
}

// CLI is the Vcs implementation backed by the git binary.
type CLI struct{}

var _ Vcs = (*CLI)(nil)

func NewCLI() *CLI {
	return &CLI{}
}

func (c *CLI) Status(rc *opsio.RuntimeContext) (*Status, error) {
	return GetStatus(rc)
}

func (c *CLI) Diff(rc *opsio.RuntimeContext, path string) (string, error) {
	output, err := execute.Run(rc.Ctx, execute.Options{
		Command: "git",
		Args:    []string{"diff", "HEAD", "--", path},
		Capture: true,
	})
	if err != nil {
		return "", fmt.Errorf("failed to diff %s: %w", path, err)
	}
	return output, nil
}

func (c *CLI) ReadFile(rc *opsio.RuntimeContext, path string) (string, error) {
	// `git show :0:path` would only see staged content; untracked files
	// have to come from the worktree.
	output, err := execute.Run(rc.Ctx, execute.Options{
		Command: "git",
		Args:    []string{"diff", "--no-index", "--", "/dev/null", path},
		Capture: true,
	})
	// diff --no-index exits 1 when the files differ, which is the normal
	// case here; the diff text is still complete.
	if err != nil && strings.TrimSpace(output) == "" {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return output, nil
}

func (c *CLI) StageAll(rc *opsio.RuntimeContext) error {
	if err := execute.RunSimple(rc.Ctx, "git", "add", "-A"); err != nil {
		return fmt.Errorf("failed to stage changes: %w", err)
	}
	return nil
}

func (c *CLI) Commit(rc *opsio.RuntimeContext, message string) error {
	if err := execute.RunSimple(rc.Ctx, "git", "commit", "-m", message); err != nil {
		return fmt.Errorf("git commit failed: %w", err)
	}
	return nil
}

// Push pushes to the configured upstream, or sets one on origin when the
// branch has none yet. It returns the destination for the summary line.
func (c *CLI) Push(rc *opsio.RuntimeContext, branch string, hasUpstream bool) (string, error) {
	if hasUpstream {
		if err := execute.RunSimple(rc.Ctx, "git", "push"); err != nil {
			return "", fmt.Errorf("git push failed: %w", err)
		}
		return "upstream", nil
	}

	if err := execute.RunSimple(rc.Ctx, "git", "push", "-u", "origin", branch); err != nil {
		return "", fmt.Errorf("git push failed: %w", err)
	}
	return "origin/" + branch, nil
}
