package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, input string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestDefaultsLoadClassics(t *testing.T) {
	out, logs, err := execute(t, "count\nexit\n", "--no-color")
	require.NoError(t, err)

	assert.Contains(t, out, "13 books")
	assert.Contains(t, logs, "loaded classic books count=13")
}

func TestSeedFlag(t *testing.T) {
	out, logs, err := execute(t, "count\n", "--seed", "--records", "20", "--no-color")
	require.NoError(t, err)

	assert.Contains(t, out, "33 books")
	assert.Contains(t, logs, "seeded random books count=20")
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookstore.ini")
	content := "[catalog]\nseed_classics = false\nseed_random = 5\n[log]\nlevel = error\n[cli]\ncolor = false\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	out, logs, err := execute(t, "count\n", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "5 books")
	assert.Empty(t, logs)

	// an explicit flag wins over the file
	_, logs, err = execute(t, "count\n", "--config", path, "--log-level", "info")
	require.NoError(t, err)
	assert.Contains(t, logs, "seeded random books count=5")
}

func TestInvalidArguments(t *testing.T) {
	_, _, err := execute(t, "", "--config", filepath.Join(t.TempDir(), "missing.ini"))
	assert.Error(t, err)

	_, _, err = execute(t, "", "--seed", "--records", "-1")
	assert.Error(t, err)

	_, _, err = execute(t, "", "unexpected")
	assert.Error(t, err)
}
