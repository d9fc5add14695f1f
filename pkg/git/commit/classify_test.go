package commit

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/opskit-dev/opskit/pkg/git"
)

func diffFixture(lines ...string) string {
	header := "diff --git a/f b/f\nindex 0000000..1111111 100644\n--- a/f\n+++ b/f\n@@ -1,3 +1,3 @@\n"
	body := ""
	for _, l := range lines {
		body += l + "\n"
	}
	return header + body
}

func TestClassifyPath_Precedence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path string
		want func(FileSignal) bool
	}{
		{"markdown is docs", "docs/guide.md", func(s FileSignal) bool { return s.IsDocs }},
		{"readme without extension is docs", "README", func(s FileSignal) bool { return s.IsDocs }},
		{"changelog is docs", "CHANGELOG.md", func(s FileSignal) bool { return s.IsDocs }},
		{"test markdown stays docs", "test/README.md", func(s FileSignal) bool { return s.IsDocs && !s.IsTest }},
		{"go test file", "pkg/git/status_test.go", func(s FileSignal) bool { return s.IsTest }},
		{"jest suffix", "src/app.spec.ts", func(s FileSignal) bool { return s.IsTest }},
		{"dunder tests dir", "src/__tests__/app.js", func(s FileSignal) bool { return s.IsTest }},
		{"workflow is ci", ".github/workflows/ci.yml", func(s FileSignal) bool { return s.IsCI }},
		{"jenkinsfile is ci", "Jenkinsfile", func(s FileSignal) bool { return s.IsCI }},
		{"workflow named test is test not ci", ".github/workflows/test.yml", func(s FileSignal) bool { return s.IsTest && !s.IsCI }},
		{"package manifest is build", "package.json", func(s FileSignal) bool { return s.IsBuild }},
		{"go.mod is build", "go.mod", func(s FileSignal) bool { return s.IsBuild }},
		{"nested lockfile is build", "web/yarn.lock", func(s FileSignal) bool { return s.IsBuild }},
		{"plain source matches nothing", "src/main.go", func(s FileSignal) bool {
			return !s.IsDocs && !s.IsTest && !s.IsCI && !s.IsBuild
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			sig := ClassifyPath(tt.path, false, false)
			assert.True(t, tt.want(sig), "unexpected signal %+v", sig)
		})
	}
}

func TestClassifyPath_FlagsPassThrough(t *testing.T) {
	t.Parallel()

	sig := ClassifyPath("src/new.go", true, false)
	assert.True(t, sig.IsNew)
	assert.False(t, sig.IsDeleted)

	sig = ClassifyPath("src/old.go", false, true)
	assert.True(t, sig.IsDeleted)
}

func TestAggregate_StyleOnly(t *testing.T) {
	t.Parallel()

	whitespaceOnly := diffFixture("-\t", "+    ", "-", "+  ")
	content := diffFixture("-old value", "+new value")

	agg := Aggregate([]git.FileChange{
		{Path: "a.go", Diff: whitespaceOnly},
		{Path: "b.go", Diff: whitespaceOnly},
	})
	assert.True(t, agg.StyleOnly)

	agg = Aggregate([]git.FileChange{
		{Path: "a.go", Diff: whitespaceOnly},
		{Path: "b.go", Diff: content},
	})
	assert.False(t, agg.StyleOnly, "one content change breaks style-only for the run")

	// Vacuously true on an empty change set.
	assert.True(t, Aggregate(nil).StyleOnly)
}

func TestAggregate_StyleOnlyIgnoresDiffHeaders(t *testing.T) {
	t.Parallel()

	// The ---/+++ header lines carry non-whitespace text but are not
	// content changes.
	agg := Aggregate([]git.FileChange{{Path: "a.go", Diff: diffFixture("+   ")}})
	assert.True(t, agg.StyleOnly)
}

func TestAggregate_BreakingChange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		want bool
	}{
		{"removed export definition", "-export function foo()", true},
		{"removed export with leading whitespace", "-   export function foo()", true},
		{"removed def", "-def handler():", true},
		{"removed class", "-class Widget:", true},
		{"removed export with no space before punctuation", "-export(default)", true},
		{"removed def glued to paren", "-def(", true},
		{"removed identifier merely starting with keyword", "-defer cleanup()", false},
		{"removed exported symbol", "-exportedNames = nil", false},
		{"removed plain line", "-return x", false},
		{"breaking plus structural keyword", "+ This is BREAKING for the public API", true},
		{"breaking without structural keyword", "+ breaking the ice", false},
		{"remove next to interface", "+remove the old interface", true},
		{"deprecate alone", "+deprecate this eventually", false},
		{"unrelated addition", "+fmt.Println(n)", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			agg := Aggregate([]git.FileChange{{Path: "src/a.go", Diff: diffFixture(tt.line)}})
			assert.Equal(t, tt.want, agg.BreakingChange)
		})
	}
}

func TestAggregate_BreakingChangeAcrossFiles(t *testing.T) {
	t.Parallel()

	agg := Aggregate([]git.FileChange{
		{Path: "src/a.go", Diff: diffFixture("+harmless")},
		{Path: "src/b.go", Diff: diffFixture("-export function foo()")},
	})
	assert.True(t, agg.BreakingChange, "any single file sets the run-wide flag")
}

func TestAggregate_FeatureAddition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		want bool
	}{
		{"def enable underscore token", "+def enable_retry():", true},
		{"implement phrase", "+implement caching for lookups", true},
		{"add followed by word", "+add support for proxies", true},
		{"comment restating keyword", "+# add retry handling", false},
		{"keyword on removed line ignored", "-enable retries", false},
		{"plain addition", "+count++", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			agg := Aggregate([]git.FileChange{{Path: "src/a.py", Diff: diffFixture(tt.line)}})
			assert.Equal(t, tt.want, agg.FeatureAddition)
		})
	}
}

func TestAggregate_Idempotent(t *testing.T) {
	t.Parallel()

	changes := []git.FileChange{
		{Path: "src/a.go", Diff: diffFixture("+new line", "-old line"), IsNew: true},
		{Path: "docs/x.md", Diff: diffFixture("+some docs")},
	}

	first := Aggregate(changes)
	second := Aggregate(changes)
	assert.Equal(t, first, second, "classification is a pure function of the change set")
}
