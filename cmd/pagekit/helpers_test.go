package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type cliEnv struct {
	configDir       string
	preferencesPath string
	logPath         string
}

func setupCLIHome(t *testing.T) cliEnv {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	for _, key := range []string{"PAGEKIT_PREFERENCES_PATH", "PAGEKIT_LOG_LEVEL", "PAGEKIT_LOG_FILE", "PAGEKIT_PULSE_DELAY", "PAGEKIT_SUCCESS_DISPLAY"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	dir := filepath.Join(home, ".config", "pagekit")
	return cliEnv{
		configDir:       dir,
		preferencesPath: filepath.Join(dir, "preferences.yaml"),
		logPath:         filepath.Join(dir, "pagekit.log"),
	}
}

func executeCommand(args ...string) (string, string, error) {
	app := &AppContext{}
	defer app.Close()
	return executeWithApp(app, args...)
}

func executeWithApp(app *AppContext, args ...string) (string, string, error) {
	root := newRootCmd(app)
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetIn(&bytes.Buffer{})
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeCLIFile(t *testing.T, path, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}
