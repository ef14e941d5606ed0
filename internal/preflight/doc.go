// Package preflight provides readiness checks for the devcontainer scaffold.
//
// The checks cover the files CI validates before a container build: the
// pyproject.toml source of truth, the .devcontainer build inputs, the
// generated .env, and version pinning in requirements.txt. The CLI "doctor"
// command runs them all and renders the results; "verify" uses the env-file
// check on its own.
//
// Each check reports every problem it finds rather than stopping at the
// first, so one run gives a complete picture.
package preflight
