// Package envfile models the ordered key/value record written to
// .devcontainer/.env and provides atomic serialization for it.
//
// The writer stages output in a sibling temp file and renames it into place
// only after a successful flush, so downstream tooling (docker compose, the
// prebuild script) never observes a partially written file: on any failure
// the previous .env, if one existed, is left byte-identical.
package envfile
