package ber

// Writer accepts bytes during encoding. A CounterWriter implements Writer
// without retaining any bytes, used for the length-prefixing pre-pass so
// encode memory stays O(message) rather than O(nesting depth x message).
type Writer interface {
	WriteByte(b byte) error
	Write(p []byte) error
}

// byteWriter is the real sink, appending to an in-memory buffer.
type byteWriter struct {
	buf []byte
}

// NewWriter returns a Writer that accumulates bytes in memory. Use Bytes
// to retrieve the result once encoding completes.
func NewWriter() *byteWriter {
	return &byteWriter{}
}

func (w *byteWriter) WriteByte(b byte) error {
	w.buf = append(w.buf, b)
	return nil
}

func (w *byteWriter) Write(p []byte) error {
	w.buf = append(w.buf, p...)
	return nil
}

// Bytes returns the accumulated output.
func (w *byteWriter) Bytes() []byte { return w.buf }

// CounterWriter records only the number of bytes that would have been
// written. Running a content codec against a CounterWriter first, then
// against the real Writer, implements the two-pass length computation
// §4.1 and §9 require: no buffering of the serialized payload itself.
type CounterWriter struct {
	n int
}

func (w *CounterWriter) WriteByte(b byte) error {
	w.n++
	return nil
}

func (w *CounterWriter) Write(p []byte) error {
	w.n += len(p)
	return nil
}

// Len returns the byte count accumulated so far.
func (w *CounterWriter) Len() int { return w.n }
