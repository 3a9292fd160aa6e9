package archive

import (
	"archive/tar"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	rerrors "github.com/rewahq/rewa/internal/errors"
)

// Unpack extracts a compressed tarball held in memory into dst, stripping
// stripComponents leading path segments from every entry (typically 1, to
// drop the archive's single top-level directory). It returns the paths of
// the regular files it materialized.
//
// Entries whose paths would land outside dst are skipped silently; one
// hostile or malformed entry must not deny the legitimate ones. A genuine
// I/O failure writing an accepted entry is fatal and aborts the remaining
// sequence.
func Unpack(contents []byte, dst string, stripComponents int) ([]string, error) {
	return UnpackMatching(contents, dst, stripComponents, "")
}

// UnpackMatching is Unpack restricted to regular files whose stripped
// path matches the doublestar glob pattern. An empty pattern matches
// everything.
func UnpackMatching(contents []byte, dst string, stripComponents int, pattern string) ([]string, error) {
	dec, err := newDecompressor(bytes.NewReader(contents))
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	var extracted []string
	tr := tar.NewReader(dec)
	for {
		header, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return extracted, fmt.Errorf("%w: %v", rerrors.ErrArchiveFormat, err)
		}

		target, ok := sanitizeEntryPath(dst, header.Name, stripComponents)
		if !ok {
			continue
		}

		switch header.Typeflag {
		case tar.TypeDir:
			// Best effort; a real destination problem surfaces on the
			// file write below.
			_ = os.MkdirAll(target, dirMode(header))

		case tar.TypeReg:
			if pattern != "" && !matchesPattern(dst, target, pattern) {
				continue
			}
			if err := writeEntry(tr, header, target); err != nil {
				return extracted, err
			}
			extracted = append(extracted, target)

		default:
			// Symlinks, hard links, fifos and pax headers are not
			// materialized.
			continue
		}
	}

	return extracted, nil
}

// writeEntry materializes a single regular-file entry at target,
// preserving the entry's permission bits.
func writeEntry(tr *tar.Reader, header *tar.Header, target string) error {
	// Parent directories may not have their own archive entries.
	_ = os.MkdirAll(filepath.Dir(target), 0o755)

	f, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, header.FileInfo().Mode().Perm())
	if err != nil {
		return fmt.Errorf("%w: %s: %v", rerrors.ErrExtract, header.Name, err)
	}

	if _, err := io.Copy(f, tr); err != nil {
		f.Close()
		return fmt.Errorf("%w: %s: %v", rerrors.ErrExtract, header.Name, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %s: %v", rerrors.ErrExtract, header.Name, err)
	}

	return nil
}

func dirMode(header *tar.Header) os.FileMode {
	mode := header.FileInfo().Mode().Perm()
	if mode == 0 {
		mode = 0o755
	}
	return mode
}

func matchesPattern(dst, target, pattern string) bool {
	rel, err := filepath.Rel(dst, target)
	if err != nil {
		return false
	}
	matched, err := doublestar.Match(pattern, filepath.ToSlash(rel))
	return err == nil && matched
}
