package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	rerrors "github.com/angeljsb/reactive/internal/errors"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaults(t *testing.T) {
	cfg := New()
	if cfg.Preview.Host != "localhost" {
		t.Errorf("Host = %q, want localhost", cfg.Preview.Host)
	}
	if cfg.Preview.Port != 3000 {
		t.Errorf("Port = %d, want 3000", cfg.Preview.Port)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Level = %q, want info", cfg.Log.Level)
	}
	if cfg.Addr() != "localhost:3000" {
		t.Errorf("Addr() = %q", cfg.Addr())
	}
}

func TestLoadMissingDirUsesDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Preview.Port != DefaultPort {
		t.Errorf("Port = %d, want default", cfg.Preview.Port)
	}
}

func TestLoadJSON(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, JSONFileName, `{
  "name": "gallery",
  "preview": {"host": "0.0.0.0", "port": 8080},
  "log": {"level": "debug"}
}`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Name != "gallery" {
		t.Errorf("Name = %q", cfg.Name)
	}
	if cfg.Addr() != "0.0.0.0:8080" {
		t.Errorf("Addr() = %q", cfg.Addr())
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Level = %q", cfg.Log.Level)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("Format = %q, want default text", cfg.Log.Format)
	}
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, YAMLFileName, "name: gallery\npreview:\n  port: 4000\n")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Preview.Port != 4000 {
		t.Errorf("Port = %d, want 4000", cfg.Preview.Port)
	}
	if cfg.Preview.Host != "localhost" {
		t.Errorf("Host = %q, want default", cfg.Preview.Host)
	}
}

func TestJSONPreferredOverYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, JSONFileName, `{"preview": {"port": 5000}}`)
	writeFile(t, dir, YAMLFileName, "preview:\n  port: 6000\n")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Preview.Port != 5000 {
		t.Errorf("Port = %d, want 5000 from reactive.json", cfg.Preview.Port)
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, JSONFileName, "{not json")

	_, err := Load(dir)
	if err == nil {
		t.Fatal("expected parse error")
	}
	var coded *rerrors.Error
	if !stderrors.As(err, &coded) || coded.Code != "E060" {
		t.Errorf("want E060, got %v", err)
	}
}

func TestValidatePortRange(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, JSONFileName, `{"preview": {"port": 99999}}`)

	_, err := Load(dir)
	var coded *rerrors.Error
	if !stderrors.As(err, &coded) || coded.Code != "E061" {
		t.Errorf("want E061, got %v", err)
	}
}

func TestValidateLogLevel(t *testing.T) {
	cfg := New()
	cfg.Log.Level = "shouty"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown log level")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	cfg := New()
	cfg.Name = "saved"
	path := filepath.Join(dir, JSONFileName)
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if loaded.Name != "saved" {
		t.Errorf("Name = %q, want saved", loaded.Name)
	}
	if loaded.Path() != path {
		t.Errorf("Path() = %q", loaded.Path())
	}
}
