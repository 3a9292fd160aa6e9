package archive

import (
	"os"
	"path/filepath"
	"strings"
)

// sanitizeEntryPath strips stripComponents leading path segments from the
// tar entry name, joins the remainder onto dst, and reports whether the
// resulting path is safely contained within dst. It rejects entries whose
// stripped remainder is empty, absolute, or escapes dst after
// normalization (".."-based traversal). Pure function, no side effects.
func sanitizeEntryPath(dst, name string, stripComponents int) (string, bool) {
	parts := strings.Split(name, "/")
	if stripComponents >= len(parts) {
		return "", false
	}

	rest := strings.Join(parts[stripComponents:], "/")
	if rest == "" || strings.HasPrefix(rest, "/") {
		return "", false
	}

	cleanDst := filepath.Clean(dst)
	target := filepath.Join(cleanDst, filepath.FromSlash(rest))

	// The joined path must be strictly below dst; a target equal to dst
	// means the remainder normalized away to nothing.
	if !strings.HasPrefix(target, cleanDst+string(os.PathSeparator)) {
		return "", false
	}

	return target, true
}
