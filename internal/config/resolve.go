package config

import (
	"fmt"
	"strconv"

	"slimdev/internal/envfile"
)

// Resolve projects the document into an ordered environment record. Every
// recognized key is looked up under [tool.slimdev]; absent keys fall back to
// their default. Keys that resolve neither way are collected and reported
// together in a single *ValidationError.
func Resolve(doc *Document) (envfile.Record, error) {
	var record envfile.Record
	var missing []string

	for _, key := range keyTable {
		value, ok := doc.Lookup(key.DotPath())
		if !ok {
			if key.Default == nil {
				missing = append(missing, key.Name)
				continue
			}
			value = key.Default
		}

		text, err := coerce(value)
		if err != nil {
			return envfile.Record{}, fmt.Errorf("resolve %s: %w", key.DotPath(), err)
		}
		record.Set(key.Env(), text)
	}

	if len(missing) > 0 {
		return envfile.Record{}, &ValidationError{Missing: missing}
	}
	return record, nil
}

// coerce renders a scalar TOML value as its .env string form. Booleans become
// lowercase true/false, numbers their decimal form; tables and arrays are not
// valid container settings.
func coerce(value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case bool:
		return strconv.FormatBool(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case int:
		return strconv.Itoa(v), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	default:
		return "", fmt.Errorf("unsupported value type %T", value)
	}
}
