/* cmd/root.go */

package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/opskit-dev/opskit/cmd/commit"
	"github.com/opskit-dev/opskit/cmd/inspect"
	"github.com/opskit-dev/opskit/pkg/logger"
	"github.com/opskit-dev/opskit/pkg/opscli"
	"github.com/opskit-dev/opskit/pkg/opserr"
	"github.com/opskit-dev/opskit/pkg/opsio"
)

// RootCmd is the base command for opskit.
var RootCmd = &cobra.Command{
	Use:   "opskit",
	Short: "Admin toolkit for repository and reporting chores",
	Long: `Opskit bundles the small operational tools used day to day: committing
work with a generated Conventional Commit message, pulling GitHub review
metrics, and extracting text from presentations.`,
	RunE: opscli.Wrap(func(rc *opsio.RuntimeContext, cmd *cobra.Command, args []string) error {
		fmt.Println("No subcommand provided. Try `opskit help`.")
		return cmd.Help()
	}),
}

// HelpCmd wraps help so that it can be invoked like a normal command.
var HelpCmd = &cobra.Command{
	Use:   "help",
	Short: "Help about any command",
	Long:  "Displays help for opskit or a specific subcommand.",
	RunE: opscli.Wrap(func(rc *opsio.RuntimeContext, cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return RootCmd.Help()
		}
		c, _, err := RootCmd.Find(args)
		if err != nil || c == nil {
			return fmt.Errorf("command not found: %s", strings.Join(args, " "))
		}
		return c.Help()
	}),
}

// RegisterCommands adds all subcommands to the root command.
func RegisterCommands() {
	RootCmd.SetHelpCommand(HelpCmd)

	for _, subCmd := range []*cobra.Command{
		commit.CommitCmd,
		inspect.InspectCmd,
	} {
		RootCmd.AddCommand(subCmd)
	}
}

// Execute initializes and runs the root command.
func Execute() {
	defer func() {
		if err := logger.Sync(); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to flush logs: %v\n", err)
		}
	}()

	RegisterCommands()

	if err := RootCmd.Execute(); err != nil {
		if opserr.IsExpectedUserError(err) {
			logger.L().Warn("CLI completed with user error", zap.Error(err))
			os.Exit(0) // user mistakes are not tool failures
		} else {
			logger.L().Error("CLI execution error", zap.Error(err))
			os.Exit(1)
		}
	}
}
