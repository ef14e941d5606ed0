package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// SourceFileName is the conventional name of the configuration source.
const SourceFileName = "pyproject.toml"

// Document is a parsed TOML source, addressable by dot path.
type Document struct {
	root map[string]any
	path string
}

// Load parses the TOML file at path. A missing, unreadable, or syntactically
// invalid file fails with *ParseError.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	var root map[string]any
	if err := toml.Unmarshal(data, &root); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	return &Document{root: root, path: path}, nil
}

// Path returns the filesystem path the document was loaded from.
func (d *Document) Path() string {
	return d.path
}

// Lookup resolves a dot path such as "tool.slimdev.python_version" against
// the document tree. The second return value reports whether the full path
// exists and addresses a value.
func (d *Document) Lookup(dotPath string) (any, bool) {
	if d == nil || d.root == nil {
		return nil, false
	}

	segments := strings.Split(dotPath, ".")
	var current any = d.root
	for _, segment := range segments {
		table, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = table[segment]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// LocateSource walks from startDir toward the filesystem root looking for
// pyproject.toml, mirroring how the prebuild script is run from arbitrary
// subdirectories of the project.
func LocateSource(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolve start directory: %w", err)
	}

	for {
		candidate := filepath.Join(dir, SourceFileName)
		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			return candidate, nil
		}
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("stat %s: %w", candidate, err)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no %s found in %s or any parent directory", SourceFileName, startDir)
		}
		dir = parent
	}
}
