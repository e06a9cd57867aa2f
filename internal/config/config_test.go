package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromDirWithoutManifestReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	policy, err := LoadFromDir(dir)
	if err != nil {
		t.Fatalf("LoadFromDir: %v", err)
	}
	if policy != DefaultSessionPolicy() {
		t.Fatalf("expected DefaultSessionPolicy for a directory with no manifest, got %+v", policy)
	}
}

func TestLoadParsesLimitsSection(t *testing.T) {
	dir := t.TempDir()
	manifestPath := filepath.Join(dir, "ouros.toml")
	contents := `
[limits]
max_memory_mb = 64
max_operations = 1000
max_recursion = 50
timeout_ms = 2500
`
	if err := os.WriteFile(manifestPath, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	policy, err := Load(manifestPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if policy.MaxMemoryBytes != 64<<20 {
		t.Fatalf("expected 64MiB, got %d", policy.MaxMemoryBytes)
	}
	if policy.MaxOperations != 1000 {
		t.Fatalf("expected 1000 operations, got %d", policy.MaxOperations)
	}
	if policy.MaxRecursionDepth != 50 {
		t.Fatalf("expected recursion depth 50, got %d", policy.MaxRecursionDepth)
	}
	if policy.Timeout.Milliseconds() != 2500 {
		t.Fatalf("expected a 2500ms timeout, got %s", policy.Timeout)
	}
}

func TestLoadWithEmptyLimitsKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	manifestPath := filepath.Join(dir, "ouros.toml")
	if err := os.WriteFile(manifestPath, []byte("[limits]\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	policy, err := Load(manifestPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if policy != DefaultSessionPolicy() {
		t.Fatalf("an empty [limits] section should keep every default, got %+v", policy)
	}
}

func TestFindWalksUpToParentDirectory(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "ouros.toml"), []byte("[limits]\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	nested := filepath.Join(root, "a", "b", "c")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	path, ok, err := Find(nested)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if !ok {
		t.Fatalf("expected Find to locate the manifest in an ancestor directory")
	}
	want, _ := filepath.Abs(filepath.Join(root, "ouros.toml"))
	if path != want {
		t.Fatalf("expected %q, got %q", want, path)
	}
}

func TestFindReturnsNotOkWhenMissing(t *testing.T) {
	dir := t.TempDir()
	_, ok, err := Find(dir)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if ok {
		t.Fatalf("expected ok=false when no manifest exists up to the filesystem root")
	}
}
