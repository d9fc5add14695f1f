package shared

import "go.uber.org/zap"

// Version is stamped at build time via -ldflags.
var Version = "dev"

// SafeSync flushes the global logger, swallowing the EBADF/ENOTTY errors
// zap returns when stdout is a terminal.
func SafeSync() {
	_ = zap.L().Sync()
}
