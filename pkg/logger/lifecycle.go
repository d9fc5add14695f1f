// pkg/logger/lifecycle.go

package logger

import (
	"github.com/google/uuid"
)

// GenerateTraceID returns a short 8-char trace ID for correlating the log
// lines of one command invocation when no telemetry trace is active.
func GenerateTraceID() string {
	return uuid.New().String()[:8]
}
