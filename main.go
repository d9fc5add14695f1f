// main.go

package main

import (
	"fmt"
	"os"

	"github.com/opskit-dev/opskit/cmd"
	"github.com/opskit-dev/opskit/pkg/logger"
	"github.com/opskit-dev/opskit/pkg/telemetry"
)

func main() {
	logger.InitializeWithFallback()
	if err := telemetry.Init("opskit"); err != nil {
		fmt.Fprintf(os.Stderr, "telemetry init failed: %v\n", err)
	}

	cmd.Execute()
}
