package ber

import "fmt"

// Reader is a bounded, non-copying cursor over a byte buffer. Sub-readers
// carved out by ReadN share no mutable state with their parent: the
// parent's position is advanced past the sub-reader's region at the
// moment the sub-reader is created, regardless of what the sub-reader's
// own cursor later does.
type Reader struct {
	buf []byte
	pos int
	off int // absolute offset of buf[0] in the original top-level buffer, for error reporting
}

// NewReader wraps buf for reading. The returned Reader owns no copy of
// buf; callers must not mutate buf while decoding is in progress.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Offset returns the current absolute byte offset, for fault reporting.
func (r *Reader) Offset() int { return r.off + r.pos }

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int { return len(r.buf) - r.pos }

// Empty reports whether the reader has no unread bytes.
func (r *Reader) Empty() bool { return r.Remaining() == 0 }

func (r *Reader) errorf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Offset: r.Offset(), Message: fmt.Sprintf(format, args...)}
}

// ReadByte consumes and returns the next byte.
func (r *Reader) ReadByte() (byte, error) {
	if r.Remaining() < 1 {
		return 0, r.errorf(KindUnexpectedEnd, "expected 1 byte, have 0")
	}
	b := r.buf[r.pos]
	r.pos++
	return b, nil
}

// PeekByte returns the next byte without consuming it.
func (r *Reader) PeekByte() (byte, bool) {
	if r.Remaining() < 1 {
		return 0, false
	}
	return r.buf[r.pos], true
}

// ReadN consumes exactly n bytes and returns a sub-reader over that
// contiguous view. The parent is advanced past the region immediately;
// the sub-reader is an independent, non-overlapping view.
func (r *Reader) ReadN(n int) (*Reader, error) {
	if n < 0 || r.Remaining() < n {
		return nil, r.errorf(KindUnexpectedEnd, "expected %d bytes, have %d", n, r.Remaining())
	}
	start := r.pos
	r.pos += n
	return &Reader{buf: r.buf[start : start+n], off: r.off + start}, nil
}

// Bytes returns the remaining unread bytes as a borrowed view (no copy).
func (r *Reader) Bytes() []byte {
	return r.buf[r.pos:]
}
