package commit

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/opskit-dev/opskit/pkg/git"
)

func TestGenerate_CIWorkflowChange(t *testing.T) {
	t.Parallel()

	changes := []git.FileChange{
		{Path: ".github/workflows/ci.yml", Diff: diffFixture("+      - run: make lint")},
	}

	msg := Generate(changes)
	assert.Equal(t, TypeCI, msg.Type)
	assert.Equal(t, "update CI configuration", msg.Description)
	assert.Equal(t, "ci: update CI configuration", msg.String())
}

func TestGenerate_NewFeatureFile(t *testing.T) {
	t.Parallel()

	changes := []git.FileChange{
		{Path: "src/feature.py", Diff: diffFixture("+def enable_retry():", "+    pass"), IsNew: true},
	}

	msg := Generate(changes)
	assert.Equal(t, TypeFeat, msg.Type)
	assert.Equal(t, "src", msg.Scope)
	assert.Equal(t, "add retry", msg.Description)
	assert.Equal(t, "feat(src): add retry", msg.String())
}

func TestGenerate_SingleDocFile(t *testing.T) {
	t.Parallel()

	changes := []git.FileChange{
		{Path: "README.md", Diff: diffFixture("+New install notes")},
	}

	msg := Generate(changes)
	assert.Equal(t, TypeDocs, msg.Type)
	assert.Equal(t, "docs: update documentation", msg.String())
}

func TestGenerate_BreakingRemoval(t *testing.T) {
	t.Parallel()

	changes := []git.FileChange{
		{Path: "api/handlers.ts", Diff: diffFixture("-export function legacyLookup()")},
	}

	msg := Generate(changes)
	assert.Equal(t, TypeFeat, msg.Type)
	assert.True(t, msg.Breaking)
	assert.Equal(t, "feat(api)!: add new functionality\n\n"+BreakingFooter, msg.String())
}

func TestGenerate_WhitespaceOnlyRun(t *testing.T) {
	t.Parallel()

	changes := []git.FileChange{
		{Path: "src/new_thing.go", Diff: diffFixture("+    ", "-\t"), IsNew: true},
	}

	msg := Generate(changes)
	assert.Equal(t, TypeStyle, msg.Type, "style wins even for new files when no content changed")
	assert.Equal(t, "style(src): format code", msg.String())
}

func TestGenerate_BugFixKeyword(t *testing.T) {
	t.Parallel()

	changes := []git.FileChange{
		{Path: "pkgs/poller.go", Diff: diffFixture("+// fixes flaky shutdown", "-time.Sleep(time.Second)")},
	}

	msg := Generate(changes)
	assert.Equal(t, TypeFix, msg.Type)
	assert.Equal(t, "fix(pkgs): fix flaky", msg.String())
}

func TestGenerate_DeterministicAcrossRuns(t *testing.T) {
	t.Parallel()

	changes := []git.FileChange{
		{Path: "src/a.go", Diff: diffFixture("+enable batching", "-old"), IsNew: false},
		{Path: "src/b.go", Diff: diffFixture("+helper")},
	}

	assert.Equal(t, Generate(changes), Generate(changes))
}
