package commit

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/opskit-dev/opskit/pkg/git"
)

func TestResolveType_DecisionTable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		agg  AggregateSignals
		want Type
	}{
		{
			name: "ci wins over everything",
			agg:  AggregateSignals{AnyCI: true, AnyBuild: true, AnyTest: true, AnyNew: true, BreakingChange: true},
			want: TypeCI,
		},
		{
			name: "build before test",
			agg:  AggregateSignals{AnyBuild: true, AnyTest: true},
			want: TypeBuild,
		},
		{
			name: "tests only",
			agg:  AggregateSignals{AnyTest: true},
			want: TypeTest,
		},
		{
			name: "test rule skipped when files are new",
			agg:  AggregateSignals{AnyTest: true, AnyNew: true},
			want: TypeFeat,
		},
		{
			name: "test rule skipped when files deleted",
			agg:  AggregateSignals{AnyTest: true, AnyDeleted: true},
			want: TypeFix,
		},
		{
			name: "single docs file",
			agg:  AggregateSignals{AnyDocs: true, FileCount: 1},
			want: TypeDocs,
		},
		{
			name: "docs among several files falls through",
			agg:  AggregateSignals{AnyDocs: true, FileCount: 3},
			want: TypeRefactor,
		},
		{
			name: "style only",
			agg:  AggregateSignals{StyleOnly: true, AnyNew: true},
			want: TypeStyle,
		},
		{
			name: "deletion without breaking is a fix",
			agg:  AggregateSignals{AnyDeleted: true},
			want: TypeFix,
		},
		{
			name: "breaking change is a feat",
			agg:  AggregateSignals{BreakingChange: true},
			want: TypeFeat,
		},
		{
			name: "deletion plus breaking is a feat",
			agg:  AggregateSignals{AnyDeleted: true, BreakingChange: true},
			want: TypeFeat,
		},
		{
			name: "new file is a feat",
			agg:  AggregateSignals{AnyNew: true},
			want: TypeFeat,
		},
		{
			name: "feature addition is a feat",
			agg:  AggregateSignals{FeatureAddition: true},
			want: TypeFeat,
		},
		{
			name: "bug fix keyword",
			agg:  AggregateSignals{BugFixKeyword: true},
			want: TypeFix,
		},
		{
			name: "nothing matches",
			agg:  AggregateSignals{},
			want: TypeRefactor,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ResolveType(tt.agg))
		})
	}
}

func TestResolveType_CIRegardlessOfOtherSignals(t *testing.T) {
	t.Parallel()

	// Rule 1 precedence: a change set of only CI-marked files resolves to
	// ci no matter what the diffs contain.
	changes := []git.FileChange{
		{Path: ".circleci/config.yml", Diff: diffFixture("-export function foo()")},
		{Path: "Jenkinsfile", Diff: diffFixture("+fix the build")},
	}
	agg := Aggregate(changes)
	assert.Equal(t, TypeCI, ResolveType(agg))
}

func TestResolveScope(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		paths []string
		want  string
	}{
		{
			name:  "majority directory wins",
			paths: []string{"src/a.ts", "src/b.ts", "lib/c.ts"},
			want:  "src",
		},
		{
			name:  "root files yield no scope",
			paths: []string{"a.ts", "b.ts"},
			want:  "",
		},
		{
			name:  "tie broken by lexical order",
			paths: []string{"zeta/a.go", "alpha/b.go"},
			want:  "alpha",
		},
		{
			name:  "nested directory uses base name",
			paths: []string{"pkg/git/a.go", "pkg/git/b.go"},
			want:  "git",
		},
		{
			name:  "leading dot stripped",
			paths: []string{".husky/pre-commit", ".husky/pre-push"},
			want:  "husky",
		},
		{
			name:  "githooks remapped to hooks",
			paths: []string{"githooks/pre-commit", "githooks/pre-push"},
			want:  "hooks",
		},
		{
			name:  "ci config paths do not contribute scope",
			paths: []string{".github/workflows/ci.yml"},
			want:  "",
		},
		{
			name:  "empty change set",
			paths: nil,
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ResolveScope(tt.paths))
		})
	}
}
