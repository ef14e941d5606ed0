package config

import (
	"fmt"
	"strings"
)

// ParseError reports a source document that could not be read or parsed.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError reports every recognized key that resolved neither from
// the source document nor from a default.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required configuration keys under [%s]: %s",
		Namespace, strings.Join(e.Missing, ", "))
}
