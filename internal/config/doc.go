// Package config loads and projects devcontainer settings from pyproject.toml.
//
// The [tool.slimdev] table is the single source of truth for container
// configuration. This package parses the document, resolves every recognized
// key against it (falling back to repository defaults), and produces the
// ordered key/value record that becomes .devcontainer/.env.
//
// Resolution collects every unresolved key before failing, so a single run
// reports the complete set of problems instead of the first one.
package config
