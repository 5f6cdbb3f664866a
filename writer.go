package attrtext

import (
	"bytes"
	"fmt"
	"io"
)

// Writer is a buffered writer of styled text for a terminal. The terminal
// state carries over between writes, so a run split over two writes is not
// styled twice. Flush returns the terminal to the default style and writes
// the buffer to the underlying writer. The internal buffer is reset upon
// flushing
type Writer struct {
	w    io.Writer
	buf  *bytes.Buffer
	enc  *encoder
	dumb bool
}

// NewWriter creates a Writer encoding for the terminal described by caps
func NewWriter(w io.Writer, caps Capabilities) *Writer {
	return &Writer{
		w:    w,
		buf:  bytes.NewBuffer(make([]byte, 0, 8192)),
		enc:  newEncoder(caps.EncodeOptions()),
		dumb: caps.IsDumb(),
	}
}

// WriteSequence buffers seq
func (w *Writer) WriteSequence(seq Sequence) {
	if w.dumb {
		w.buf.WriteString(seq.String())
		return
	}
	w.enc.encode(w.buf, seq)
}

// Write buffers p as text in the default style
func (w *Writer) Write(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}
	if !w.dumb {
		w.enc.finish(w.buf)
	}
	return w.buf.Write(p)
}

// WriteString buffers s as text in the default style
func (w *Writer) WriteString(s string) (n int, err error) {
	if s == "" {
		return 0, nil
	}
	if !w.dumb {
		w.enc.finish(w.buf)
	}
	return w.buf.WriteString(s)
}

func (w *Writer) Printf(s string, args ...any) (n int, err error) {
	return fmt.Fprintf(w, s, args...)
}

// Len returns the number of buffered bytes
func (w *Writer) Len() int {
	return w.buf.Len()
}

func (w *Writer) Flush() (n int, err error) {
	if !w.dumb {
		w.enc.finish(w.buf)
	}
	if w.buf.Len() == 0 {
		return 0, nil
	}
	defer w.buf.Reset()
	return w.w.Write(w.buf.Bytes())
}
