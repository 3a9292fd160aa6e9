package archive

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"

	rerrors "github.com/rewahq/rewa/internal/errors"
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// newDecompressor sniffs the magic bytes of r and returns a reader for the
// decompressed stream. Toolchain tarballs come either gzip-compressed or
// zstd-compressed (the upstream standalone builds use zstd).
func newDecompressor(r io.Reader) (io.ReadCloser, error) {
	br := bufio.NewReader(r)

	magic, err := br.Peek(4)
	if err != nil {
		return nil, fmt.Errorf("%w: input shorter than a compression header", rerrors.ErrNotCompressed)
	}

	switch {
	case bytes.HasPrefix(magic, gzipMagic):
		gz, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", rerrors.ErrNotCompressed, err)
		}
		return gz, nil
	case bytes.HasPrefix(magic, zstdMagic):
		dec, err := zstd.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", rerrors.ErrNotCompressed, err)
		}
		return dec.IOReadCloser(), nil
	default:
		return nil, fmt.Errorf("%w: unrecognized magic bytes", rerrors.ErrNotCompressed)
	}
}
