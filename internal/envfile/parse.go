package envfile

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Parse reads an env file back into a record. Blank lines and # comments are
// skipped; lines without an = separator are rejected. Double-quoted values
// are unquoted with \" and \\ unescaped.
func Parse(path string) (Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return Record{}, fmt.Errorf("open env file: %w", err)
	}
	defer file.Close()

	var record Record
	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, rawValue, ok := strings.Cut(line, "=")
		if !ok {
			return Record{}, fmt.Errorf("%s:%d: expected KEY=VALUE, got %q", path, lineNo, line)
		}

		value, err := unquote(rawValue)
		if err != nil {
			return Record{}, fmt.Errorf("%s:%d: %w", path, lineNo, err)
		}
		record.Set(strings.TrimSpace(key), value)
	}
	if err := scanner.Err(); err != nil {
		return Record{}, fmt.Errorf("read env file: %w", err)
	}
	return record, nil
}

func unquote(value string) (string, error) {
	if value == "" || value[0] != '"' {
		return value, nil
	}
	if len(value) < 2 || value[len(value)-1] != '"' {
		return "", fmt.Errorf("unterminated quoted value %q", value)
	}

	inner := value[1 : len(value)-1]
	var b strings.Builder
	for i := 0; i < len(inner); i++ {
		c := inner[i]
		if c == '\\' {
			i++
			if i >= len(inner) {
				return "", fmt.Errorf("trailing escape in quoted value %q", value)
			}
			c = inner[i]
		}
		b.WriteByte(c)
	}
	return b.String(), nil
}
