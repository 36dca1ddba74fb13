package main

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type cliTestEnv struct {
	serverURL  string
	configPath string
	statePath  string
	baseDir    string
}

func setupCLITestEnv(t *testing.T, handler http.Handler) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)

	serverURL := ""
	if handler != nil {
		srv := httptest.NewServer(handler)
		t.Cleanup(srv.Close)
		serverURL = srv.URL
	}

	statePath := filepath.Join(base, "session.json")
	configPath := filepath.Join(homeDir, ".config", "jellyctl", "config.toml")
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		t.Fatalf("mkdir config dir: %v", err)
	}
	writeTestConfig(t, configPath, serverURL, statePath)

	return &cliTestEnv{
		serverURL:  serverURL,
		configPath: configPath,
		statePath:  statePath,
		baseDir:    base,
	}
}

func runCLI(t *testing.T, env *cliTestEnv, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	flags := []string{"--config", env.configPath}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeTestConfig(t *testing.T, path, serverURL, statePath string) {
	t.Helper()
	content := fmt.Sprintf(
		"[server]\nurl = %q\n\n[device]\nname = \"test-device\"\n\n[session]\nstate_path = %q\n",
		serverURL,
		statePath,
	)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
