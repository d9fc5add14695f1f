// Package github fetches pull request metrics from the GitHub REST API and
// renders a markdown report.
package github

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/opskit-dev/opskit/pkg/opserr"
	"github.com/opskit-dev/opskit/pkg/opsio"
)

// Config is the pr-metrics configuration file.
type Config struct {
	Repos []string `json:"repos"`
}

// LoadConfig reads the JSON configuration listing repositories to analyze.
func LoadConfig(rc *opsio.RuntimeContext, path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, opserr.NewExpectedError(rc.Ctx,
			fmt.Errorf("configuration file not found: %s (copy github-config.json.example and edit it)", path))
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid JSON in configuration file %s: %w", path, err)
	}
	if len(cfg.Repos) == 0 {
		return nil, opserr.NewExpectedError(rc.Ctx,
			fmt.Errorf("no repositories configured in %s", path))
	}

	return &cfg, nil
}

// ResolveToken finds the GitHub API token from the environment, loading a
// local .env file first if one exists.
func ResolveToken(rc *opsio.RuntimeContext) (string, error) {
	// Best effort; a missing .env is not an error.
	_ = godotenv.Load()

	for _, key := range []string{"GITHUB_TOKEN", "GITHUB_API_TOKEN"} {
		if token := os.Getenv(key); token != "" {
			return token, nil
		}
	}
	return "", opserr.NewExpectedError(rc.Ctx,
		fmt.Errorf("missing GitHub token - set the GITHUB_TOKEN environment variable"))
}
