package commands

import (
	"bytes"
	"path/filepath"
	"testing"

	"SessionGuard/internal/config"
)

// testConfig направляет хранилище токена в temp, чтобы артефакты не попадали в
// пользовательский каталог.
func testConfig(t *testing.T, serverURL string) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		ServerURL:    serverURL,
		TokenStore:   config.StoreFile,
		TokenDir:     filepath.Join(dir, "tok"),
		ClientDBPath: filepath.Join(dir, "db", "s.sqlite"),
		LoginPath:    "/login",
		PublicPaths:  []string{"/", "/login"},
	}
}

// captureOut подменяет Out на буфер на время теста.
func captureOut(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	prev := Out
	Out = buf
	t.Cleanup(func() { Out = prev })
	return buf
}
