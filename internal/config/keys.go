package config

import "strings"

// Namespace is the TOML table that holds container settings.
const Namespace = "tool.slimdev"

// Key describes one recognized output of the projection. Keys without a
// Default must be present in the source document.
type Key struct {
	Name    string // key under [tool.slimdev], lower snake-case
	Default any    // fallback when the document omits the key; nil means none
}

// Env returns the environment variable name the key projects to.
func (k Key) Env() string {
	return strings.ToUpper(k.Name)
}

// DotPath returns the full lookup path for the key in the source document.
func (k Key) DotPath() string {
	return Namespace + "." + k.Name
}

// Keys returns the recognized keys in output order. The .env file is always
// written in this order regardless of how the source document is arranged.
func Keys() []Key {
	return keyTable
}

var keyTable = []Key{
	{Name: "python_version"},
	{Name: "postgres_version", Default: "17"},
	{Name: "postgres_user", Default: "postgres"},
	{Name: "postgres_password"},
	{Name: "postgres_db", Default: "postgres"},
	{Name: "dev_mode", Default: false},
	{Name: "dev_container_name", Default: "slimdev"},
	{Name: "username", Default: "vscode"},
	{Name: "use_root_user", Default: false},
	{Name: "cpus", Default: 4},
	{Name: "memory", Default: "8g"},
	{Name: "storage", Default: "32g"},
	{Name: "zsh_autosuggestions_repo", Default: "https://github.com/zsh-users/zsh-autosuggestions"},
}
