package streamio

import (
	"bytes"
	"io"
)

// GrowReadMax reads at most n bytes from r, preallocating grow bytes.
func GrowReadMax(r io.Reader, n int64, grow int) ([]byte, error) {
	var buf bytes.Buffer
	if grow <= 0 || int64(grow) > n {
		grow = int(n)
	}
	buf.Grow(grow)
	if _, err := buf.ReadFrom(io.LimitReader(r, n)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
