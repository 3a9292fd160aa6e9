// Package archive unpacks compressed toolchain tarballs into a destination
// directory without allowing path traversal outside it.
//
// Archive entry names are untrusted input: a hostile archive can embed
// ".." segments or absolute paths ("zip-slip"). Every entry path is
// stripped of a configurable number of leading segments, joined onto the
// destination root, normalized, and checked for containment before
// anything touches the filesystem. Entries that fail the check are skipped
// silently rather than aborting the extraction, so a single bad entry
// cannot deny the rest of the archive.
//
// Supported compression schemes are gzip and zstd, detected by magic
// bytes. The whole archive is held in memory; callers read the file fully
// before unpacking.
package archive
