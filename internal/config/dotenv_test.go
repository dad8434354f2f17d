package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdirTemp(t *testing.T) string {
	t.Helper()

	cwd, err := os.Getwd()
	require.NoError(t, err)
	dir := t.TempDir()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(cwd) })
	return dir
}

func TestLoadDotEnv_LocalWinsOverBase(t *testing.T) {
	chdirTemp(t)
	require.NoError(t, os.WriteFile(".env", []byte("DEALFLOW_DOTENV_KEY=base\n"), 0o644))
	require.NoError(t, os.WriteFile(".env.local", []byte("DEALFLOW_DOTENV_KEY=local\n"), 0o644))
	os.Unsetenv("DEALFLOW_DOTENV_KEY")
	t.Cleanup(func() { os.Unsetenv("DEALFLOW_DOTENV_KEY") })

	loaded := LoadDotEnv()

	assert.Equal(t, []string{".env.local", ".env"}, loaded)
	assert.Equal(t, "local", os.Getenv("DEALFLOW_DOTENV_KEY"))
}

func TestLoadDotEnv_RealEnvWins(t *testing.T) {
	chdirTemp(t)
	require.NoError(t, os.WriteFile(".env", []byte("DEALFLOW_DOTENV_KEY=base\n"), 0o644))
	t.Setenv("DEALFLOW_DOTENV_KEY", "fromenv")

	LoadDotEnv()

	assert.Equal(t, "fromenv", os.Getenv("DEALFLOW_DOTENV_KEY"))
}

func TestLoadDotEnv_NoFiles(t *testing.T) {
	chdirTemp(t)

	assert.Empty(t, LoadDotEnv())
}
