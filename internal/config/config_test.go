package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"slimdev/internal/config"
)

func writeSource(t *testing.T, dir, contents string) string {
	t.Helper()
	path := filepath.Join(dir, config.SourceFileName)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}
	return path
}

func TestLoadParsesDocument(t *testing.T) {
	path := writeSource(t, t.TempDir(), `
[tool.poetry]
name = "demo"

[tool.slimdev]
python_version = "3.13.2"
dev_mode = true
cpus = 8
`)

	doc, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if doc.Path() != path {
		t.Fatalf("unexpected document path: got %q want %q", doc.Path(), path)
	}

	value, ok := doc.Lookup("tool.slimdev.python_version")
	if !ok {
		t.Fatal("expected python_version to resolve")
	}
	if value != "3.13.2" {
		t.Fatalf("unexpected python_version: %v", value)
	}

	if _, ok := doc.Lookup("tool.slimdev.absent"); ok {
		t.Fatal("expected absent key to miss")
	}
	if _, ok := doc.Lookup("tool.slimdev.python_version.deeper"); ok {
		t.Fatal("expected lookup through a scalar to miss")
	}
	if _, ok := doc.Lookup("tool.poetry.name"); !ok {
		t.Fatal("expected poetry metadata to remain addressable")
	}
}

func TestLoadMissingFileFailsWithParseError(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	var parseErr *config.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ParseError, got %T: %v", err, err)
	}
}

func TestLoadInvalidTOMLFailsWithParseError(t *testing.T) {
	path := writeSource(t, t.TempDir(), "[tool.slimdev\npython_version = ")

	_, err := config.Load(path)
	if err == nil {
		t.Fatal("expected error for invalid TOML")
	}
	var parseErr *config.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ParseError, got %T: %v", err, err)
	}
	if parseErr.Path != path {
		t.Fatalf("unexpected error path: got %q want %q", parseErr.Path, path)
	}
}

func TestLocateSourceWalksParents(t *testing.T) {
	root := t.TempDir()
	path := writeSource(t, root, "[tool.slimdev]\n")

	nested := filepath.Join(root, "scripts", "deep")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir nested: %v", err)
	}

	found, err := config.LocateSource(nested)
	if err != nil {
		t.Fatalf("LocateSource returned error: %v", err)
	}
	if found != path {
		t.Fatalf("unexpected source path: got %q want %q", found, path)
	}
}

func TestLocateSourceFailsWithoutSource(t *testing.T) {
	if _, err := config.LocateSource(t.TempDir()); err == nil {
		t.Fatal("expected error when no pyproject.toml exists")
	}
}

func TestKeyTableShape(t *testing.T) {
	keys := config.Keys()
	if len(keys) == 0 {
		t.Fatal("expected a non-empty key table")
	}

	seen := make(map[string]bool, len(keys))
	for _, key := range keys {
		if seen[key.Env()] {
			t.Fatalf("duplicate env name %q in key table", key.Env())
		}
		seen[key.Env()] = true
	}

	if keys[0].Env() != "PYTHON_VERSION" {
		t.Fatalf("expected PYTHON_VERSION first, got %q", keys[0].Env())
	}
	if keys[0].DotPath() != "tool.slimdev.python_version" {
		t.Fatalf("unexpected dot path: %q", keys[0].DotPath())
	}
}
