// pkg/platform/platform.go

package platform

import "os/exec"

// IsCommandAvailable reports whether a binary is resolvable on PATH.
func IsCommandAvailable(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
