// Package git wraps the git CLI behind a narrow capability port and adds
// read-only repository introspection via go-git.
package git

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"

	"github.com/opskit-dev/opskit/pkg/execute"
	"github.com/opskit-dev/opskit/pkg/opserr"
	"github.com/opskit-dev/opskit/pkg/opsio"
	"github.com/opskit-dev/opskit/pkg/platform"
)

// Status is a parsed `git status --porcelain` snapshot.
type Status struct {
	Branch       string
	IsClean      bool
	Staged       []string
	Modified     []string
	Untracked    []string
	Added        []string
	Deleted      []string
	HasConflicts bool
}

// GetStatus retrieves the current repository status.
func GetStatus(rc *opsio.RuntimeContext) (*Status, error) {
	logger := otelzap.Ctx(rc.Ctx)

	if !platform.IsCommandAvailable("git") {
		return nil, opserr.NewExpectedError(rc.Ctx, fmt.Errorf("git command not found - please install git"))
	}

	branchOutput, err := execute.Run(rc.Ctx, execute.Options{
		Command: "git",
		Args:    []string{"branch", "--show-current"},
		Capture: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get current branch: %w", err)
	}

	statusOutput, err := execute.Run(rc.Ctx, execute.Options{
		Command: "git",
		Args:    []string{"status", "--porcelain"},
		Capture: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get git status: %w", err)
	}

	status := ParseStatus(statusOutput)
	status.Branch = strings.TrimSpace(branchOutput)

	logger.Debug("Git status retrieved",
		zap.String("branch", status.Branch),
		zap.Bool("is_clean", status.IsClean),
		zap.Int("staged", len(status.Staged)),
		zap.Int("modified", len(status.Modified)),
		zap.Int("untracked", len(status.Untracked)),
		zap.Int("deleted", len(status.Deleted)))

	return status, nil
}

// ParseStatus parses `git status --porcelain` output.
func ParseStatus(output string) *Status {
	status := &Status{
		IsClean:   strings.TrimSpace(output) == "",
		Staged:    []string{},
		Modified:  []string{},
		Untracked: []string{},
		Added:     []string{},
		Deleted:   []string{},
	}

	conflictCodes := map[string]bool{
		"DD": true, "AU": true, "UD": true,
		"UA": true, "DU": true, "AA": true, "UU": true,
	}

	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) < 4 {
			continue
		}

		statusCode := line[:2]
		filename := strings.TrimSpace(line[3:])
		// Renames are reported as "old -> new"; the new path is the one
		// that exists in the working tree.
		if idx := strings.Index(filename, " -> "); idx >= 0 {
			filename = filename[idx+4:]
		}
		filename = strings.Trim(filename, `"`)

		switch {
		case conflictCodes[statusCode]:
			status.HasConflicts = true
		case statusCode == "??":
			status.Untracked = append(status.Untracked, filename)
		default:
			if statusCode[0] == 'A' {
				status.Added = append(status.Added, filename)
			}
			if statusCode[0] == 'D' || statusCode[1] == 'D' {
				status.Deleted = append(status.Deleted, filename)
			}
			if statusCode[0] != ' ' && statusCode[0] != '?' {
				status.Staged = append(status.Staged, filename)
			}
			if statusCode[1] != ' ' && statusCode[1] != '?' {
				status.Modified = append(status.Modified, filename)
			}
		}
	}

	return status
}
