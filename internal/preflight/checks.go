package preflight

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sys/unix"

	"slimdev/internal/config"
	"slimdev/internal/envfile"
)

// requiredFiles lists the scaffold files a container build depends on,
// relative to the project root.
var requiredFiles = []string{
	config.SourceFileName,
	filepath.Join(".devcontainer", "Dockerfile"),
	filepath.Join(".devcontainer", "docker-compose.yml"),
	filepath.Join(".devcontainer", ".env"),
	filepath.Join(".github", "dependabot.yml"),
}

// CheckFileStructure verifies that every required scaffold file exists.
func CheckFileStructure(root string) Result {
	const name = "File structure"

	var missing []string
	for _, rel := range requiredFiles {
		if _, err := os.Stat(filepath.Join(root, rel)); err != nil {
			missing = append(missing, rel)
		}
	}
	if len(missing) > 0 {
		return Result{Name: name, Detail: "missing: " + strings.Join(missing, ", ")}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%d required files present", len(requiredFiles))}
}

// CheckEnvFile verifies that .devcontainer/.env exists, parses, and carries a
// non-empty value for every recognized key.
func CheckEnvFile(root string) Result {
	const name = "Environment file"

	path := filepath.Join(root, ".devcontainer", ".env")
	record, err := envfile.Parse(path)
	if err != nil {
		return Result{Name: name, Detail: err.Error()}
	}

	var unset []string
	for _, key := range config.Keys() {
		value, ok := record.Get(key.Env())
		if !ok || value == "" {
			unset = append(unset, key.Env())
		}
	}
	if len(unset) > 0 {
		return Result{Name: name, Detail: "unset: " + strings.Join(unset, ", ")}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%d keys set", len(config.Keys()))}
}

// CheckRequirementsPinned verifies that every requirement in
// .devcontainer/requirements.txt carries an exact == pin. Reproducible
// container builds need the full set pinned.
func CheckRequirementsPinned(root string) Result {
	const name = "Requirement pins"

	path := filepath.Join(root, ".devcontainer", "requirements.txt")
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{Name: name, Detail: err.Error()}
	}

	var unpinned []string
	total := 0
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		total++
		if !strings.Contains(line, "==") {
			unpinned = append(unpinned, line)
		}
	}
	if len(unpinned) > 0 {
		return Result{Name: name, Detail: "unpinned: " + strings.Join(unpinned, ", ")}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%d requirements pinned", total)}
}

// CheckOutputDirWritable verifies that the directory receiving generated
// output exists and is writable by the current user.
func CheckOutputDirWritable(path string) Result {
	const name = "Output directory"

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s does not exist", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("stat %s: %v", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s is not a directory", path)}
	}
	if err := unix.Access(path, unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s: insufficient permissions: %v", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (writable)", path)}
}
