package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunScript(t *testing.T) {
	var out bytes.Buffer
	err := runScript(&out, []string{"push-back:1", "push-back:2", "pop-front", "pop-at:3"}, 0, false)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Len(t, lines, 5)
	assert.Contains(t, lines[3], "error -6")
	assert.Equal(t, "list: [2]", lines[4])
}

func TestRunScriptBadToken(t *testing.T) {
	var out bytes.Buffer
	err := runScript(&out, []string{"push-back"}, 0, false)
	assert.Error(t, err)
	assert.Empty(t, out.String())
}

func TestRunScriptMaxBytes(t *testing.T) {
	var out bytes.Buffer
	err := runScript(&out, []string{"push-back:1", "push-back:2"}, 1, false)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "error -3")
	assert.Contains(t, out.String(), "list: []")
}

func TestEnvUint(t *testing.T) {
	t.Setenv(envMaxBytes, "64")
	v, err := envUint(envMaxBytes)
	assert.NoError(t, err)
	assert.Equal(t, uint64(64), v)

	t.Setenv(envMaxBytes, "lots")
	_, err = envUint(envMaxBytes)
	assert.Error(t, err)

	t.Setenv(envMaxBytes, "")
	v, err = envUint(envMaxBytes)
	assert.NoError(t, err)
	assert.Zero(t, v)
}

func TestSettingsFromEnv(t *testing.T) {
	assert := assert.New(t)

	t.Setenv(envMaxBytes, "128")
	t.Setenv(envVerbose, "true")
	maxBytes, verbose, err := settings(runCmd)
	assert.NoError(err)
	assert.Equal(uint64(128), maxBytes)
	assert.True(verbose)

	t.Setenv(envVerbose, "maybe")
	_, _, err = settings(runCmd)
	assert.Error(err)
}
