// cmd/inspect/pptx.go

package inspect

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"

	"github.com/opskit-dev/opskit/pkg/opscli"
	"github.com/opskit-dev/opskit/pkg/opsio"
	"github.com/opskit-dev/opskit/pkg/pptx"
)

var PptxCmd = &cobra.Command{
	Use:   "pptx <input.pptx> [output.txt]",
	Short: "Extract text from a PowerPoint presentation",
	Long: `Extracts slide titles, bulleted content, image alt-text, and speaker
notes from a .pptx file. Output goes to stdout unless an output file is
given.

Examples:
  opskit inspect pptx deck.pptx
  opskit inspect pptx deck.pptx deck.txt`,
	Args: cobra.RangeArgs(1, 2),

	RunE: opscli.Wrap(func(rc *opsio.RuntimeContext, cmd *cobra.Command, args []string) error {
		input := args[0]
		logger := otelzap.Ctx(rc.Ctx)

		slides, err := pptx.Extract(rc, input)
		if err != nil {
			return err
		}
		logger.Info("Extracted presentation text",
			zap.String("file", input),
			zap.Int("slides", len(slides)))

		text := pptx.Format(slides)
		if len(args) == 2 {
			if err := os.WriteFile(args[1], []byte(text), 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", args[1], err)
			}
			fmt.Printf("Text extracted and saved to %s\n", args[1])
			return nil
		}
		fmt.Print(text)
		return nil
	}),
}
