package grid

import (
	"io"

	"github.com/qri-io/dataset/compression"
)

// CompressionMeta defines compression settings grid-go understands. The ID
// names a qri dataset compression format such as "gzip" or "zstd".
type CompressionMeta struct {
	ID      string `json:"id"`
	Cname   string `json:"cname,omitempty"`
	Clevel  int    `json:"clevel,omitempty"`
	Shuffle int    `json:"shuffle,omitempty"`
}

// Decompressor wraps r with the configured codec. A nil meta reads r as is.
func (m *CompressionMeta) Decompressor(r io.ReadCloser) (io.ReadCloser, error) {
	if m == nil {
		return r, nil
	}
	return compression.Decompressor(m.ID, r)
}

// Compressor wraps w with the configured codec. Callers must Close the
// returned writer to flush it. A nil meta writes to w as is.
func (m *CompressionMeta) Compressor(w io.Writer) (io.WriteCloser, error) {
	if m == nil {
		return nopWriteCloser{w}, nil
	}
	return compression.Compressor(m.ID, w)
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }
