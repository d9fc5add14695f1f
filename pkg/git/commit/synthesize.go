// pkg/git/commit/synthesize.go

package commit

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/opskit-dev/opskit/pkg/git"
)

const (
	maxFeatTokenLen = 30
	maxFixTokenLen  = 40
	minFixTokenLen  = 4
)

var (
	integrationRe = regexp.MustCompile(`(?i)\b(agent|provider)s?\b`)
	supportRe     = regexp.MustCompile(`(?i)\bsupport\b`)
	multipleRe    = regexp.MustCompile(`(?i)\bmultiple\s+([A-Za-z0-9_-]+)`)
	newFeatureRe  = regexp.MustCompile(`(?i)\b(add(s|ed)?\s+(a\s+)?new\s+feature|new\s+feature)`)
	enableRe      = regexp.MustCompile(`(?i)(enable|implement)[_\s]+([A-Za-z0-9_-]+)`)
	fixTokenRe    = regexp.MustCompile(`(?i)(fix(es|ed)?|resolve[sd]?|correct(s|ed)?)[:\s_#-]+([A-Za-z0-9_-]+)`)
	refacTokenRe  = regexp.MustCompile(`(?i)(refactor(s|ed)?|restructure[sd]?|simplif(y|ies|ied))[:\s_-]+([A-Za-z0-9_-]+)`)
)

var fixedDescriptions = map[Type]string{
	TypeDocs:  "update documentation",
	TypeStyle: "format code",
	TypePerf:  "improve performance",
	TypeTest:  "add tests",
	TypeBuild: "update dependencies",
	TypeCI:    "update CI configuration",
	TypeChore: "update project configuration",
}

// Describe produces the one-line description for the resolved type by
// scanning diff text for known phrase patterns, with a per-type boilerplate
// fallback.
func Describe(t Type, changes []git.FileChange) string {
	if desc, ok := fixedDescriptions[t]; ok {
		return desc
	}

	switch t {
	case TypeFeat:
		return describeFeature(changes)
	case TypeFix:
		return describeWithToken(changes, fixTokenRe, minFixTokenLen, "fix", "fix bug")
	case TypeRefactor:
		return describeWithToken(changes, refacTokenRe, minFixTokenLen, "refactor", "refactor code")
	default:
		return "update project configuration"
	}
}

// describeFeature walks the priority ladder for feat descriptions: named
// integration support, "multiple X", "new feature", enable/implement token,
// first new file's name, generic fallback.
func describeFeature(changes []git.FileChange) string {
	for _, change := range changes {
		for _, line := range addedLines(change.Diff) {
			if supportRe.MatchString(line) {
				if m := integrationRe.FindStringSubmatch(line); m != nil {
					return "add " + strings.ToLower(m[1]) + " support"
				}
			}
		}
	}

	for _, change := range changes {
		for _, line := range addedLines(change.Diff) {
			if m := multipleRe.FindStringSubmatch(line); m != nil {
				return "support multiple " + cleanToken(m[1], maxFeatTokenLen)
			}
		}
	}

	for _, change := range changes {
		for _, line := range addedLines(change.Diff) {
			if newFeatureRe.MatchString(line) {
				return "add new feature"
			}
		}
	}

	for _, change := range changes {
		for _, line := range addedLines(change.Diff) {
			if m := enableRe.FindStringSubmatch(line); m != nil {
				if token := cleanToken(m[2], maxFeatTokenLen); token != "" {
					return "add " + token
				}
			}
		}
	}

	for _, change := range changes {
		if change.IsNew {
			if word := firstNameWord(change.Path); word != "" {
				return "add " + word
			}
		}
	}

	return "add new functionality"
}

// describeWithToken extracts the token following a keyword match anywhere in
// the change set's diffs, discarding tokens shorter than minLen.
func describeWithToken(changes []git.FileChange, re *regexp.Regexp, minLen int, verb, fallback string) string {
	for _, change := range changes {
		for _, line := range strings.Split(change.Diff, "\n") {
			m := re.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			token := cleanToken(m[len(m)-1], maxFixTokenLen)
			if len(token) >= minLen {
				return verb + " " + token
			}
		}
	}
	return fallback
}

func addedLines(diff string) []string {
	var lines []string
	for _, line := range strings.Split(diff, "\n") {
		if strings.HasPrefix(line, "+") && !strings.HasPrefix(line, "+++") {
			lines = append(lines, line[1:])
		}
	}
	return lines
}

// cleanToken lowercases, trims separator punctuation and truncates.
func cleanToken(token string, maxLen int) string {
	token = strings.ToLower(token)
	token = strings.Trim(token, "_-.:,;()")
	if len(token) > maxLen {
		token = token[:maxLen]
	}
	return token
}

// firstNameWord derives a word from a file's base name: extension stripped,
// lowercased, separators replaced by spaces, first word taken.
func firstNameWord(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.ToLower(base)
	base = strings.NewReplacer("_", " ", "-", " ").Replace(base)
	fields := strings.Fields(base)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
