// pkg/git/commit/classify.go

package commit

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/opskit-dev/opskit/pkg/git"
)

var (
	breakingLineRe   = regexp.MustCompile(`(?i)\b(breaking|remove|delete|deprecate)\b`)
	structuralLineRe = regexp.MustCompile(`(?i)\b(function|def|class|export|public|api|interface)\b`)
	featureLineRe    = regexp.MustCompile(`(?i)(?:^|[^a-z])(support|enable|add|implement|introduce|allow)[_\s]+[^/\s]`)
	featureCommentRe = regexp.MustCompile(`(?i)^\s*#\s*(support|enable|add|implement|introduce|allow)\b`)
	bugFixRe         = regexp.MustCompile(`(?i)\b(fix(es|ed)?|bugs?|errors?|issues?|resolve[sd]?|correct(ed|s)?)\b`)
)

// ClassifyPath computes the path-derived flags for one change set entry.
// The category rules are mutually exclusive and evaluated docs, test, CI,
// build - first match wins. IsNew/IsDeleted pass through untouched.
func ClassifyPath(path string, isNew, isDeleted bool) FileSignal {
	sig := FileSignal{Path: path, IsNew: isNew, IsDeleted: isDeleted}

	switch {
	case isDocsPath(path):
		sig.IsDocs = true
	case isTestPath(path):
		sig.IsTest = true
	case isCIPath(path):
		sig.IsCI = true
	case isBuildPath(path):
		sig.IsBuild = true
	}

	return sig
}

func isDocsPath(path string) bool {
	base := filepath.Base(path)
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range DocExtensions {
		if ext == e {
			return true
		}
	}
	for _, prefix := range DocPrefixes {
		if strings.HasPrefix(base, prefix) {
			return true
		}
	}
	return false
}

func isTestPath(path string) bool {
	lower := strings.ToLower(path)
	for _, marker := range TestMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	base := strings.ToLower(filepath.Base(path))
	for _, ext := range TestSuffixExtensions {
		if strings.HasSuffix(base, ".test."+ext) || strings.HasSuffix(base, ".spec."+ext) {
			return true
		}
	}
	return false
}

func isCIPath(path string) bool {
	for _, marker := range CIMarkers {
		if strings.Contains(path, marker) {
			return true
		}
	}
	return false
}

func isBuildPath(path string) bool {
	base := filepath.Base(path)
	for _, manifest := range BuildManifests {
		if base == manifest {
			return true
		}
	}
	return false
}

// Aggregate folds per-file signals and diff content into the run-wide
// signal vector. It is a pure function of the change set; calling it twice
// on the same input yields identical results.
func Aggregate(changes []git.FileChange) AggregateSignals {
	agg := AggregateSignals{
		FileCount: len(changes),
		StyleOnly: true, // vacuously true, ANDed below
	}

	for _, change := range changes {
		sig := ClassifyPath(change.Path, change.IsNew, change.IsDeleted)

		agg.AnyCI = agg.AnyCI || sig.IsCI
		agg.AnyBuild = agg.AnyBuild || sig.IsBuild
		agg.AnyTest = agg.AnyTest || sig.IsTest
		agg.AnyDocs = agg.AnyDocs || sig.IsDocs
		agg.AnyNew = agg.AnyNew || sig.IsNew
		agg.AnyDeleted = agg.AnyDeleted || sig.IsDeleted

		agg.StyleOnly = agg.StyleOnly && !hasContentChange(change.Diff)
		agg.BreakingChange = agg.BreakingChange || hasBreakingChange(change.Diff)
		agg.FeatureAddition = agg.FeatureAddition || hasFeatureAddition(change.Diff)
		agg.BugFixKeyword = agg.BugFixKeyword || bugFixRe.MatchString(change.Diff)
	}

	return agg
}

// hasContentChange reports whether any added or removed line carries
// non-whitespace content. Diff headers (+++/---) are excluded, so a diff
// whose only +/- lines are blank or whitespace counts as style-only.
func hasContentChange(diff string) bool {
	for _, line := range strings.Split(diff, "\n") {
		if !isChangeLine(line) {
			continue
		}
		if strings.TrimSpace(line[1:]) != "" {
			return true
		}
	}
	return false
}

// hasBreakingChange tests the two independent triggers: a breaking keyword
// sharing a line with a structural keyword, or a removed line that begins
// with a definition keyword.
func hasBreakingChange(diff string) bool {
	for _, line := range strings.Split(diff, "\n") {
		if breakingLineRe.MatchString(line) && structuralLineRe.MatchString(line) {
			return true
		}
		if strings.HasPrefix(line, "-") && !strings.HasPrefix(line, "---") {
			rest := strings.TrimLeft(line[1:], " \t")
			for _, kw := range DefinitionKeywords {
				if hasKeywordPrefix(rest, kw) {
					return true
				}
			}
		}
	}
	return false
}

// hasFeatureAddition looks for an added line with a feature keyword that is
// not a comment re-stating the same keyword.
func hasFeatureAddition(diff string) bool {
	for _, line := range strings.Split(diff, "\n") {
		if !strings.HasPrefix(line, "+") || strings.HasPrefix(line, "+++") {
			continue
		}
		content := line[1:]
		if featureCommentRe.MatchString(content) {
			continue
		}
		if featureLineRe.MatchString(content) {
			return true
		}
	}
	return false
}

func isChangeLine(line string) bool {
	if strings.HasPrefix(line, "+") && !strings.HasPrefix(line, "+++") {
		return true
	}
	return strings.HasPrefix(line, "-") && !strings.HasPrefix(line, "---")
}

// hasKeywordPrefix reports whether s starts with kw as a whole word, so
// "export(default)" matches "export" but "exported" does not.
func hasKeywordPrefix(s, kw string) bool {
	if len(s) < len(kw) || !strings.EqualFold(s[:len(kw)], kw) {
		return false
	}
	if len(s) == len(kw) {
		return true
	}
	return !isIdentChar(s[len(kw)])
}

func isIdentChar(c byte) bool {
	return c == '_' ||
		('a' <= c && c <= 'z') ||
		('A' <= c && c <= 'Z') ||
		('0' <= c && c <= '9')
}
