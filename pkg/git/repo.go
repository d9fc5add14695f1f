// pkg/git/repo.go
//
// Read-only repository introspection through go-git. Anything that mutates
// the repository goes through the git binary (vcs.go) so hooks, signing and
// credential helpers behave exactly as they would for a human.

package git

import (
	"fmt"

	gogit "github.com/go-git/go-git/v5"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"

	"github.com/opskit-dev/opskit/pkg/opsio"
)

// OpenRepository locates the enclosing repository, walking up from dir.
func OpenRepository(rc *opsio.RuntimeContext, dir string) (*gogit.Repository, error) {
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("not inside a git repository: %w", err)
	}
	return repo, nil
}

// HeadHash returns the current HEAD commit hash.
func HeadHash(rc *opsio.RuntimeContext, repo *gogit.Repository) (string, error) {
	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("failed to resolve HEAD: %w", err)
	}
	return head.Hash().String(), nil
}

// HasUpstream reports whether the branch has a tracking remote configured.
func HasUpstream(rc *opsio.RuntimeContext, repo *gogit.Repository, branch string) bool {
	logger := otelzap.Ctx(rc.Ctx)

	cfg, err := repo.Config()
	if err != nil {
		logger.Debug("Could not read repository config", zap.Error(err))
		return false
	}

	b, ok := cfg.Branches[branch]
	if !ok || b == nil {
		return false
	}
	return b.Remote != "" && b.Merge != ""
}
