package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVersionCommandOutputsBuildInfo(t *testing.T) {
	originalVersion := version
	originalCommit := commit
	originalDate := date
	t.Cleanup(func() {
		version = originalVersion
		commit = originalCommit
		date = originalDate
	})

	version = "1.2.3"
	commit = "abcdef1"
	date = "2026-10-03"

	output, _, err := executeCommand("version")
	require.NoError(t, err)
	require.Contains(t, output, "pagekit 1.2.3")
	require.Contains(t, output, "abcdef1")
	require.Contains(t, output, "2026-10-03")
}

func TestVersionCommandSkipsStartup(t *testing.T) {
	setupCLIHome(t)

	_, _, err := executeCommand("version", "--config", "/does/not/exist.yaml")
	require.NoError(t, err)
}
