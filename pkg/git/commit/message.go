// pkg/git/commit/message.go

package commit

import (
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"

	"github.com/opskit-dev/opskit/pkg/git"
	"github.com/opskit-dev/opskit/pkg/opsio"
)

// Generate runs classify, resolve and synthesize over a collected change
// set. It is a pure function: the same change set always yields the same
// message.
func Generate(changes []git.FileChange) Message {
	agg := Aggregate(changes)

	paths := make([]string, len(changes))
	for i, c := range changes {
		paths[i] = c.Path
	}

	msg := Message{
		Type:     ResolveType(agg),
		Scope:    ResolveScope(paths),
		Breaking: agg.BreakingChange,
	}
	msg.Description = Describe(msg.Type, changes)

	return msg
}

// GenerateSmartMessage generates a commit message for the current change
// set and logs the derived signals for troubleshooting.
func GenerateSmartMessage(rc *opsio.RuntimeContext, changes []git.FileChange) string {
	logger := otelzap.Ctx(rc.Ctx)

	agg := Aggregate(changes)
	msg := Generate(changes)

	logger.Debug("Generated commit message",
		zap.String("type", string(msg.Type)),
		zap.String("scope", msg.Scope),
		zap.Bool("breaking", msg.Breaking),
		zap.String("description", msg.Description),
		zap.Int("files", agg.FileCount),
		zap.Bool("style_only", agg.StyleOnly),
		zap.Bool("feature_addition", agg.FeatureAddition))

	return msg.String()
}
