// pkg/github/config_test.go

package github

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opskit-dev/opskit/pkg/opserr"
)

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "github-config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"repos": ["acme/widgets", "acme/gadgets"]}`), 0o600))

	cfg, err := LoadConfig(testRC(), path)
	require.NoError(t, err)
	assert.Equal(t, []string{"acme/widgets", "acme/gadgets"}, cfg.Repos)
}

func TestLoadConfigMissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadConfig(testRC(), filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.True(t, opserr.IsExpectedUserError(err))
}

func TestLoadConfigEmptyRepos(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "github-config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"repos": []}`), 0o600))

	_, err := LoadConfig(testRC(), path)
	require.Error(t, err)
	assert.True(t, opserr.IsExpectedUserError(err))
}

func TestLoadConfigInvalidJSON(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "github-config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"repos": [`), 0o600))

	_, err := LoadConfig(testRC(), path)
	require.Error(t, err)
	assert.False(t, opserr.IsExpectedUserError(err))
}
