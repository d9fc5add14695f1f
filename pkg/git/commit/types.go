// Package commit derives a Conventional Commits message from the current
// change set. The pipeline is four strictly forward stages: collect (in
// pkg/git), classify, resolve, synthesize. Everything in this package is a
// pure function of paths and diff text.
package commit

import "strings"

// Type is the Conventional Commits type enumeration.
type Type string

const (
	TypeCI       Type = "ci"
	TypeBuild    Type = "build"
	TypeTest     Type = "test"
	TypeDocs     Type = "docs"
	TypeStyle    Type = "style"
	TypeFeat     Type = "feat"
	TypeFix      Type = "fix"
	TypeRefactor Type = "refactor"
	TypePerf     Type = "perf"
	TypeChore    Type = "chore"
)

// FileSignal holds the per-path flags derived from pattern matching alone.
type FileSignal struct {
	Path      string
	IsNew     bool
	IsDeleted bool
	IsDocs    bool
	IsTest    bool
	IsCI      bool
	IsBuild   bool
}

// AggregateSignals is the fold of all FileSignals plus the two
// content-derived booleans.
type AggregateSignals struct {
	FileCount int

	AnyCI      bool
	AnyBuild   bool
	AnyTest    bool
	AnyDocs    bool
	AnyNew     bool
	AnyDeleted bool

	StyleOnly       bool
	BreakingChange  bool
	FeatureAddition bool
	BugFixKeyword   bool
}

// Message is the final artifact before serialization.
type Message struct {
	Type        Type
	Scope       string
	Breaking    bool
	Description string
}

// BreakingFooter is appended after a blank line whenever Breaking is set.
const BreakingFooter = "BREAKING CHANGE: this commit removes or changes existing public interfaces"

// String serializes to the `type(scope)!: description` grammar.
func (m Message) String() string {
	var b strings.Builder
	b.WriteString(string(m.Type))
	if m.Scope != "" {
		b.WriteString("(")
		b.WriteString(m.Scope)
		b.WriteString(")")
	}
	if m.Breaking {
		b.WriteString("!")
	}
	b.WriteString(": ")
	b.WriteString(m.Description)
	if m.Breaking {
		b.WriteString("\n\n")
		b.WriteString(BreakingFooter)
	}
	return b.String()
}
