// cmd/commit/commit.go

package commit

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"

	"github.com/opskit-dev/opskit/pkg/git"
	"github.com/opskit-dev/opskit/pkg/git/commit"
	"github.com/opskit-dev/opskit/pkg/opscli"
	"github.com/opskit-dev/opskit/pkg/opsio"
)

var CommitCmd = &cobra.Command{
	Use:     "commit",
	Aliases: []string{"ci"},
	Short:   "Stage, commit, and push with a generated message",
	Long: `Commit stages every pending change, generates a Conventional Commit
message from the diff, commits, and pushes to the upstream branch.

The message is derived from what actually changed: file paths decide the
type (docs, test, ci, build) and the diff content refines it (feat, fix,
refactor, style, breaking changes). Pass --message to override it.

Examples:
  opskit commit                       # stage, commit, and push
  opskit commit --dry-run             # show the message, change nothing
  opskit commit --no-push             # commit locally only
  opskit commit -m "fix: typo"        # use your own message`,

	RunE: opscli.Wrap(func(rc *opsio.RuntimeContext, cmd *cobra.Command, args []string) error {
		message, _ := cmd.Flags().GetString("message")
		dryRun, _ := cmd.Flags().GetBool("dry-run")
		noPush, _ := cmd.Flags().GetBool("no-push")
		logger := otelzap.Ctx(rc.Ctx)

		vcs := git.NewCLI()

		changes, status, err := git.CollectChanges(rc, vcs)
		if err != nil {
			return err
		}
		if len(changes) == 0 {
			logger.Info("Nothing to commit, working tree clean")
			fmt.Println("Nothing to commit, working tree clean.")
			return nil
		}

		if message == "" {
			message = commit.GenerateSmartMessage(rc, changes)
		}

		logger.Info("Prepared commit",
			zap.String("message", message),
			zap.Int("files", len(changes)),
			zap.String("branch", status.Branch))

		if dryRun {
			fmt.Printf("Would commit %d file(s) on %s:\n\n  %s\n", len(changes), status.Branch, message)
			return nil
		}

		if err := vcs.StageAll(rc); err != nil {
			return err
		}
		if err := vcs.Commit(rc, message); err != nil {
			return err
		}

		repo, err := git.OpenRepository(rc, ".")
		if err != nil {
			return err
		}
		hash, err := git.HeadHash(rc, repo)
		if err != nil {
			return err
		}
		fmt.Printf("Committed %s: %s\n", hash, message)

		if noPush {
			logger.Info("Push skipped", zap.String("commit", hash))
			return nil
		}

		remoteRef, err := vcs.Push(rc, status.Branch, git.HasUpstream(rc, repo, status.Branch))
		if err != nil {
			return err
		}
		fmt.Printf("Pushed %s to %s\n", status.Branch, remoteRef)
		return nil
	}),
}

func init() {
	CommitCmd.Flags().StringP("message", "m", "", "Commit message (skips message generation)")
	CommitCmd.Flags().Bool("dry-run", false, "Print the generated message without committing")
	CommitCmd.Flags().Bool("no-push", false, "Commit without pushing")
}
