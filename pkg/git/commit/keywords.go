// pkg/git/commit/keywords.go
//
// The classifier is keyword-driven by design; the lists live here as named
// configuration so tests can reference them and reviewers can tune them
// without touching the matching logic.

package commit

var (
	// DocExtensions mark documentation files by extension.
	DocExtensions = []string{".md", ".txt", ".rst", ".adoc"}

	// DocPrefixes mark documentation files by basename prefix.
	DocPrefixes = []string{"README", "CHANGELOG"}

	// TestMarkers mark test files when present anywhere in the path.
	TestMarkers = []string{"test", "spec", "__tests__"}

	// TestSuffixExtensions are the languages recognized for the
	// *.test.<ext> / *.spec.<ext> convention.
	TestSuffixExtensions = []string{"js", "ts", "jsx", "tsx", "mjs", "py", "rb", "go"}

	// CIMarkers identify CI-system paths.
	CIMarkers = []string{
		".github", ".gitlab", ".circleci", ".travis",
		"Jenkinsfile", ".gitlab-ci", "azure-pipelines",
	}

	// BuildManifests is the fixed set of dependency and build manifest
	// basenames.
	BuildManifests = []string{
		"package.json", "package-lock.json", "yarn.lock", "pnpm-lock.yaml",
		"go.mod", "go.sum",
		"Cargo.toml", "Cargo.lock",
		"requirements.txt", "Pipfile", "Pipfile.lock", "pyproject.toml", "setup.py",
		"pom.xml", "build.gradle", "build.gradle.kts",
		"Gemfile", "Gemfile.lock",
		"composer.json", "composer.lock",
		"Makefile", "CMakeLists.txt", "Dockerfile",
	}

	// BreakingKeywords trigger breaking-change detection when they share a
	// line with a StructuralKeyword.
	BreakingKeywords = []string{"breaking", "remove", "delete", "deprecate"}

	// StructuralKeywords are the code-structure words that must co-occur
	// with a BreakingKeyword.
	StructuralKeywords = []string{"function", "def", "class", "export", "public", "api", "interface"}

	// DefinitionKeywords flag a breaking change when a removed line starts
	// with one of them.
	DefinitionKeywords = []string{"export", "function", "def", "class", "public"}

	// FeatureKeywords mark feature-adding lines.
	FeatureKeywords = []string{"support", "enable", "add", "implement", "introduce", "allow"}

	// FixKeywords mark bug-fix-flavored diffs.
	FixKeywords = []string{"fix", "bug", "error", "issue", "resolve", "correct"}

	// RefactorKeywords drive token extraction for refactor descriptions.
	RefactorKeywords = []string{"refactor", "restructure", "simplify"}
)
