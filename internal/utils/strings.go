package utils

import (
	"regexp"
	"strings"

	"github.com/rewahq/rewa/internal/ui"
)

// envVarRe matches ${NAME} placeholders. NAME is restricted to uppercase
// letters, digits and underscores so shell-style $VAR references and
// lowercase braces pass through untouched.
var envVarRe = regexp.MustCompile(`\$\{([A-Z0-9_]+)\}`)

// nameRe validates registry and toolchain names (alphanumeric start,
// then alphanumerics, hyphens, underscores, and dots).
var nameRe = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_.\-]*$`)

// ExpandEnvVars replaces every ${NAME} placeholder in s with the value
// returned by resolve. Placeholders the resolver cannot satisfy are
// replaced with the empty string. The whole string is processed in a
// single leftmost-first pass; text outside placeholders is unchanged.
func ExpandEnvVars(s string, resolve func(name string) (string, bool)) string {
	return envVarRe.ReplaceAllStringFunc(s, func(match string) string {
		// match is "${NAME}"; the name is everything between the braces.
		name := match[2 : len(match)-1]
		value, ok := resolve(name)
		if !ok {
			return ""
		}
		return value
	})
}

// IsValidName checks whether a registry or toolchain name is acceptable.
func IsValidName(name string) bool {
	return nameRe.MatchString(name)
}

// FormatPaths formats a slice of paths into a readable string.
func FormatPaths(paths []string) string {
	var b strings.Builder
	b.WriteString("\n")
	for _, path := range paths {
		b.WriteString("    - ")
		b.WriteString(ui.Path.Sprint(path))
		b.WriteString("\n")
	}
	return b.String()
}
