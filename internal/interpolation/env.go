// Package interpolation expands ${VAR} and ${VAR:default} references in
// configuration values loaded from disk.
package interpolation

import (
	"errors"
	"fmt"
	"os"
	"regexp"
)

// ErrUndefinedVariable is returned when a reference has no default and the
// variable is not present in the environment.
var ErrUndefinedVariable = errors.New("environment variable not defined")

// Matches ${NAME} and ${NAME:default}. The colon is captured on its own so
// that ${NAME:} (empty default) can be told apart from ${NAME}.
var envRefPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(:)?([^}]*)\}`)

// ExpandEnvVars replaces every ${NAME} or ${NAME:default} reference in input.
//
// A variable present in the environment always wins, even when set to the
// empty string. Missing variables fall back to the default when one is
// given; otherwise the reference is left untouched and an error naming the
// variable is returned alongside the partially expanded string.
func ExpandEnvVars(input string) (string, error) {
	if input == "" {
		return "", nil
	}

	var missing []error
	out := envRefPattern.ReplaceAllStringFunc(input, func(ref string) string {
		parts := envRefPattern.FindStringSubmatch(ref)
		name, hasDefault, fallback := parts[1], parts[2] == ":", parts[3]

		if value, ok := os.LookupEnv(name); ok {
			return value
		}
		if hasDefault {
			return fallback
		}

		missing = append(missing, fmt.Errorf("%w: %s", ErrUndefinedVariable, name))
		return ref
	})

	return out, errors.Join(missing...)
}
