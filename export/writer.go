package export

import (
	"bufio"
	"io"
)

// Writer writes export records one per line.
type Writer struct {
	w *bufio.Writer
}

// NewWriter returns a Writer that buffers into w. Call Flush when done.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// WriteRecord appends rec followed by a newline.
func (w *Writer) WriteRecord(rec Record) error {
	if _, err := w.w.WriteString(rec.String()); err != nil {
		return err
	}
	return w.w.WriteByte('\n')
}

// Flush writes any buffered data to the underlying writer.
func (w *Writer) Flush() error {
	return w.w.Flush()
}
