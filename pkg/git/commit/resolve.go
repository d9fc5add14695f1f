// pkg/git/commit/resolve.go

package commit

import (
	"path/filepath"
	"sort"
	"strings"
)

// ResolveType maps the aggregate signal vector to exactly one commit type.
// The rules form a strict decision table evaluated top to bottom; the first
// matching rule wins.
func ResolveType(agg AggregateSignals) Type {
	switch {
	case agg.AnyCI:
		return TypeCI
	case agg.AnyBuild:
		return TypeBuild
	case agg.AnyTest && !agg.AnyNew && !agg.AnyDeleted:
		return TypeTest
	case agg.AnyDocs && agg.FileCount == 1:
		return TypeDocs
	case agg.StyleOnly:
		return TypeStyle
	case agg.AnyDeleted || agg.BreakingChange:
		if agg.BreakingChange {
			return TypeFeat
		}
		return TypeFix
	case agg.AnyNew || agg.FeatureAddition:
		return TypeFeat
	case agg.BugFixKeyword:
		return TypeFix
	default:
		return TypeRefactor
	}
}

// ResolveScope derives the optional scope: the parent directory holding the
// most change set entries, by base name. The repository root yields no
// scope. Ties go to the lexically first directory.
func ResolveScope(paths []string) string {
	if len(paths) == 0 {
		return ""
	}

	sorted := make([]string, len(paths))
	copy(sorted, paths)
	sort.Strings(sorted)

	counts := make(map[string]int)
	var order []string
	for _, p := range sorted {
		// CI config trees (.github/workflows, .circleci, ...) make
		// meaningless scopes.
		if isCIPath(p) {
			continue
		}
		dir := filepath.Dir(p)
		if _, seen := counts[dir]; !seen {
			order = append(order, dir)
		}
		counts[dir]++
	}
	if len(order) == 0 {
		return ""
	}

	best := order[0]
	for _, dir := range order[1:] {
		if counts[dir] > counts[best] {
			best = dir
		}
	}

	if best == "." || best == "/" {
		return ""
	}

	scope := filepath.Base(best)
	scope = strings.TrimPrefix(scope, ".")
	if scope == "githooks" {
		scope = "hooks"
	}
	return scope
}
