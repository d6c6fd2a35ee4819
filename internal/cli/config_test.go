package cli

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/matzehuels/taxo/pkg/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "taxo.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
output = "out"
formats = ["pre", "post", "json"]
no_cache = true
`)

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}

	if cfg.Output != "out" {
		t.Errorf("Output = %q, want %q", cfg.Output, "out")
	}
	if want := []string{"pre", "post", "json"}; !reflect.DeepEqual(cfg.Formats, want) {
		t.Errorf("Formats = %v, want %v", cfg.Formats, want)
	}
	if !cfg.NoCache {
		t.Error("NoCache = false, want true")
	}
}

func TestLoadConfigMissingExplicit(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil {
		t.Fatal("loadConfig() should fail for a missing explicit path")
	}
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeFileNotFound)
	}
}

func TestLoadConfigMissingDefault(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if !reflect.DeepEqual(cfg, Config{}) {
		t.Errorf("cfg = %+v, want zero config", cfg)
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	path := writeConfig(t, "output = [broken")

	_, err := loadConfig(path)
	if err == nil {
		t.Fatal("loadConfig() should fail for malformed TOML")
	}
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidConfig)
	}
}

func TestLoadConfigInvalidFormat(t *testing.T) {
	path := writeConfig(t, `formats = ["pre", "bogus"]`)

	if _, err := loadConfig(path); err == nil {
		t.Fatal("loadConfig() should reject unknown formats")
	}
}
