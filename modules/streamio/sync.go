package streamio

import (
	"bufio"
	"io"
	"sync"
)

const (
	frameBufferSize = 4 * 1024
)

var bufferWriter = sync.Pool{
	New: func() any {
		return bufio.NewWriterSize(nil, frameBufferSize)
	},
}

// GetBufferWriter returns a *bufio.Writer that is managed by a sync.Pool.
// Returns a bufio.Writer that is reset with writer and ready for use.
//
// After use, the *bufio.Writer should be put back into the sync.Pool
// by calling PutBufferWriter.
func GetBufferWriter(writer io.Writer) *bufio.Writer {
	w := bufferWriter.Get().(*bufio.Writer)
	w.Reset(writer)
	return w
}

// PutBufferWriter drops the reference to the destination and puts writer
// back into its sync.Pool.
func PutBufferWriter(writer *bufio.Writer) {
	writer.Reset(nil)
	bufferWriter.Put(writer)
}

// WriteAll sends every chunk through one buffered writer so the destination
// receives them in a single flush whenever they fit in the buffer.
func WriteAll(dst io.Writer, chunks ...[]byte) error {
	w := GetBufferWriter(dst)
	defer PutBufferWriter(w)
	for _, c := range chunks {
		if _, err := w.Write(c); err != nil {
			return err
		}
	}
	return w.Flush()
}
