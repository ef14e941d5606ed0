// Package main hosts the slimdev CLI entrypoint and command graph.
//
// The Cobra-based command tree covers the devcontainer prebuild contract:
// the bare invocation projects pyproject.toml into .devcontainer/.env,
// "extract" prints the resolved pairs, "verify" checks an existing env file,
// and "doctor" runs the scaffold readiness checks CI relies on. Source and
// output paths are resolved by convention so the prebuild script can call
// the tool with no arguments.
//
// The commands stay thin; parsing, resolution, and serialization live in the
// internal packages.
package main
