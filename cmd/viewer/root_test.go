package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetFlags() {
	flagTextOnly, flagSummarize, flagJSON = false, false, false
	flagForums, flagMode = "", ""
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags()
	t.Cleanup(resetFlags)
	for _, k := range []string{"COLLECTOR_MODE", "LINK_BASE_URL", "FORUMS_FILE", "FETCH_LIMIT", "LOG_LEVEL"} {
		t.Setenv(k, "")
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRoot_MockTextOnly(t *testing.T) {
	out, err := execute(t, "--mode", "mock", "--textonly")
	require.NoError(t, err)

	assert.Contains(t, out, "Title: [")
	assert.Contains(t, out, "LINK: https://reddit.com/r/")
	assert.NotContains(t, out, "(no text body)")
	assert.NotContains(t, out, "[Image]")
}

func TestRoot_MockJSON(t *testing.T) {
	out, err := execute(t, "--mode", "mock", "--json", "--textonly")
	require.NoError(t, err)

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(out)), &rec))
	assert.Equal(t, false, rec["stickied"])
	assert.Equal(t, false, rec["over_18"])
	assert.NotEmpty(t, rec["selftext"])
	assert.Equal(t, rec["subreddit"], rec["forum"])
}

func TestRoot_RejectsPositionalArgs(t *testing.T) {
	_, err := execute(t, "--mode", "mock", "AskReddit")
	assert.Error(t, err)
}

func TestRoot_InvalidMode(t *testing.T) {
	_, err := execute(t, "--mode", "telepathy")
	assert.ErrorContains(t, err, "COLLECTOR_MODE")
}
