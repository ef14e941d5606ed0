package envfile

import (
	"fmt"
	"os"
	"strings"
)

// Header is written as the first line of every generated env file so readers
// know not to edit it by hand. Parse skips it like any other comment.
const Header = "# Generated from pyproject.toml - DO NOT EDIT"

// Write serializes the record to path atomically. The content is staged in a
// sibling temp file, flushed, and renamed over path; the temp file is removed
// on any failure so a half-written file never replaces an existing one. The
// parent directory must already exist.
func Write(record Record, path string) error {
	var b strings.Builder
	b.WriteString(Header)
	b.WriteByte('\n')
	for _, entry := range record.Entries() {
		b.WriteString(entry.Key)
		b.WriteByte('=')
		b.WriteString(quote(entry.Value))
		b.WriteByte('\n')
	}

	tmpPath := path + ".tmp"
	file, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("create temp env file: %w", err)
	}

	if _, err := file.WriteString(b.String()); err != nil {
		file.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write temp env file: %w", err)
	}
	if err := file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("sync temp env file: %w", err)
	}
	if err := file.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp env file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename temp env file: %w", err)
	}
	return nil
}

// quote wraps values that the shell or compose would otherwise mangle in
// double quotes, escaping embedded backslashes and quotes. Plain values pass
// through unchanged so the common case stays readable.
func quote(value string) string {
	if value != "" && !strings.ContainsAny(value, " \t#$`'\"\\") {
		return value
	}

	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(value); i++ {
		switch c := value[i]; c {
		case '"', '\\':
			b.WriteByte('\\')
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}
