// pkg/git/collect.go

package git

import (
	"sort"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"

	"github.com/opskit-dev/opskit/pkg/opsio"
)

// FileChange is one entry of the change set: a path plus its diff text
// against the last commit, with the add/delete filters already resolved.
type FileChange struct {
	Path      string
	Diff      string
	IsNew     bool
	IsDeleted bool
}

// CollectChanges builds the change set for the current repository state:
// the deduplicated, lexically sorted union of staged, unstaged and untracked
// paths relative to HEAD, each paired with its diff text. Untracked files
// get an added-file diff so the downstream analysis sees their content.
func CollectChanges(rc *opsio.RuntimeContext, vcs Vcs) ([]FileChange, *Status, error) {
	logger := otelzap.Ctx(rc.Ctx)

	status, err := vcs.Status(rc)
	if err != nil {
		return nil, nil, err
	}

	seen := make(map[string]bool)
	untracked := make(map[string]bool)
	isNew := make(map[string]bool)
	deleted := make(map[string]bool)
	var paths []string

	add := func(files []string) {
		for _, f := range files {
			if f == "" || seen[f] {
				continue
			}
			seen[f] = true
			paths = append(paths, f)
		}
	}
	add(status.Staged)
	add(status.Modified)
	add(status.Untracked)
	add(status.Deleted)
	for _, f := range status.Untracked {
		untracked[f] = true
		isNew[f] = true
	}
	for _, f := range status.Added {
		isNew[f] = true
	}
	for _, f := range status.Deleted {
		deleted[f] = true
	}

	sort.Strings(paths)

	changes := make([]FileChange, 0, len(paths))
	for _, path := range paths {
		var diff string
		var err error
		if untracked[path] {
			diff, err = vcs.ReadFile(rc, path)
		} else {
			diff, err = vcs.Diff(rc, path)
		}
		if err != nil {
			return nil, nil, err
		}
		changes = append(changes, FileChange{
			Path:      path,
			Diff:      diff,
			IsNew:     isNew[path],
			IsDeleted: deleted[path],
		})
	}

	logger.Debug("Change set collected", zap.Int("files", len(changes)))
	return changes, status, nil
}
