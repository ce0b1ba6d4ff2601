package ber

// boolCodec implements Codec[bool]. Content is exactly one byte; 0x00 is
// false, any other byte is true; encode always emits 0xFF for true.
type boolCodec struct{}

func (boolCodec) WriteContent(w Writer, v bool) error {
	if v {
		return w.WriteByte(0xFF)
	}
	return w.WriteByte(0x00)
}

func (boolCodec) ReadContent(r *Reader) (bool, error) {
	if r.Remaining() != 1 {
		return false, r.errorf(KindContentInvalid, "boolean content must be exactly 1 byte, got %d", r.Remaining())
	}
	b, _ := r.ReadByte()
	return b != 0x00, nil
}

// Boolean is the universal BOOLEAN type.
var Boolean = Type[bool]{
	ID:    Identifier{Class: ClassUniversal, Encoding: Primitive, TagNumber: TagBoolean},
	Codec: boolCodec{},
}

// intCodec implements Codec[int64] with minimal two's-complement
// encoding: the fewest bytes such that the leading byte's sign bit
// matches the value's sign.
type intCodec struct{}

func (intCodec) WriteContent(w Writer, v int64) error {
	n := 1
	for t := v; t > 127 || t < -128; t >>= 8 {
		n++
	}
	buf := make([]byte, n)
	for i := 0; i < n; i++ {
		buf[n-1-i] = byte(v >> (8 * i))
	}
	return w.Write(buf)
}

func (intCodec) ReadContent(r *Reader) (int64, error) {
	if r.Empty() {
		return 0, r.errorf(KindContentInvalid, "integer content must be nonempty")
	}
	if r.Remaining() > 8 {
		return 0, r.errorf(KindContentInvalid, "integer content wider than 8 bytes (%d)", r.Remaining())
	}

	first, _ := r.ReadByte()
	v := int64(int8(first))
	for !r.Empty() {
		b, _ := r.ReadByte()
		v = (v << 8) | int64(b)
	}
	return v, nil
}

// Integer is the universal INTEGER type, decoded as a signed int64.
var Integer = Type[int64]{
	ID:    Identifier{Class: ClassUniversal, Encoding: Primitive, TagNumber: TagInteger},
	Codec: intCodec{},
}

// octetStringCodec implements Codec[[]byte]; content is raw bytes
// returned as a borrowed view into the reader's buffer.
type octetStringCodec struct{}

func (octetStringCodec) WriteContent(w Writer, v []byte) error {
	return w.Write(v)
}

func (octetStringCodec) ReadContent(r *Reader) ([]byte, error) {
	b := r.Bytes()
	r.pos = len(r.buf)
	return b, nil
}

// OctetString is the universal OCTET STRING type.
var OctetString = Type[[]byte]{
	ID:    Identifier{Class: ClassUniversal, Encoding: Primitive, TagNumber: TagOctetString},
	Codec: octetStringCodec{},
}

// nullCodec implements Codec[struct{}]; content must be empty.
type nullCodec struct{}

func (nullCodec) WriteContent(w Writer, v struct{}) error { return nil }

func (nullCodec) ReadContent(r *Reader) (struct{}, error) {
	if !r.Empty() {
		return struct{}{}, r.errorf(KindContentInvalid, "NULL content must be empty, got %d bytes", r.Remaining())
	}
	return struct{}{}, nil
}

// Null is the universal NULL type.
var Null = Type[struct{}]{
	ID:    Identifier{Class: ClassUniversal, Encoding: Primitive, TagNumber: TagNull},
	Codec: nullCodec{},
}

// Enumerated is the universal ENUMERATED type: identical wire form to
// Integer, but tag number 10. The decoded integer is surfaced unchanged;
// mapping to a caller enumeration (and rejecting unknown values, if
// desired) is the caller's concern.
var Enumerated = Type[int64]{
	ID:    Identifier{Class: ClassUniversal, Encoding: Primitive, TagNumber: TagEnumerated},
	Codec: intCodec{},
}
