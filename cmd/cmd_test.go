package cmd

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/boozedog/smoovgarden/internal/tips"
)

// testEnv points SMOOVGARDEN_DIR at a temp directory so config.Load() and
// the default tips path never touch the real home directory.
type testEnv struct {
	ConfigDir string
	TipsPath  string
}

// newTestEnv creates an isolated environment with no config and no tips file.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	configDir := filepath.Join(t.TempDir(), "config")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("create config dir: %v", err)
	}

	t.Setenv("SMOOVGARDEN_DIR", configDir)
	t.Setenv("SMOOVGARDEN_TIPS", "")

	return &testEnv{
		ConfigDir: configDir,
		TipsPath:  filepath.Join(configDir, "tips.yaml"),
	}
}

// writeStarterTips writes the full 12-month table to the default tips path.
func (e *testEnv) writeStarterTips(t *testing.T) {
	t.Helper()
	if err := tips.WriteFile(e.TipsPath, tips.Starter()); err != nil {
		t.Fatalf("write tips: %v", err)
	}
}

// writeConfig writes config.toml with the given content.
func (e *testEnv) writeConfig(t *testing.T, content string) {
	t.Helper()
	path := filepath.Join(e.ConfigDir, "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config.toml: %v", err)
	}
}

// runCmd executes a cobra command with the given args and captures stdout.
// Commands use fmt.Printf (writes to os.Stdout), so we redirect os.Stdout
// to a pipe to capture output.
func (e *testEnv) runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("create pipe: %v", err)
	}
	os.Stdout = w

	// Reset global flag vars to avoid state leakage between tests
	resetFlags()

	rootCmd.SetArgs(args)
	execErr := rootCmd.Execute()

	// Close writer and restore stdout before reading
	w.Close()
	os.Stdout = origStdout

	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("read pipe: %v", err)
	}
	r.Close()

	return string(out), execErr
}

// resetFlags resets package-level flag variables to their defaults
// so tests don't leak state between runs.
func resetFlags() {
	flagTips = ""
	flagDate = ""
	flagHemisphere = ""
	flagLogLevel = ""
	flagLogFormat = ""
	adviceFormat = ""
	initForce = false
}
