package preflight

import "path/filepath"

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
	Detail string `json:"detail"`
}

// RunAll executes every repository check against the project rooted at root.
func RunAll(root string) []Result {
	return []Result{
		CheckFileStructure(root),
		CheckEnvFile(root),
		CheckRequirementsPinned(root),
		CheckOutputDirWritable(filepath.Join(root, ".devcontainer")),
	}
}

// AllPassed reports whether every result passed.
func AllPassed(results []Result) bool {
	for _, result := range results {
		if !result.Passed {
			return false
		}
	}
	return true
}
