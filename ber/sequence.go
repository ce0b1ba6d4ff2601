package ber

// SequenceIdentifier and SetIdentifier are the universal constructed
// identifiers for tag numbers 16 and 17 respectively. The wire byte each
// derives to (0x30, 0x31) is a consequence of encoding (class, encoding,
// number), never hardcoded elsewhere.
var (
	SequenceIdentifier = Identifier{Class: ClassUniversal, Encoding: Constructed, TagNumber: TagSequence}
	SetIdentifier      = Identifier{Class: ClassUniversal, Encoding: Constructed, TagNumber: TagSet}
)

// WriteConstructed writes id, a two-pass-computed length, and then the
// bytes produced by calling build against the real writer. build is
// invoked twice: once against a CounterWriter to size the content, once
// against w to emit it. The ldap package writes its LDAPMessage envelope
// this way (Message.Encode); its other SEQUENCEs are Type values over a
// content Codec.
func WriteConstructed(w Writer, id Identifier, build func(Writer) error) error {
	if err := id.WriteTo(w); err != nil {
		return err
	}
	counter := &CounterWriter{}
	if err := build(counter); err != nil {
		return err
	}
	if err := WriteLength(w, counter.Len()); err != nil {
		return err
	}
	return build(w)
}

// ReadConstructed reads an Identifier, requires it to equal id, reads a
// definite Length, and hands parse a sub-reader bounded to exactly that
// length. ReadConstructed itself requires the sub-reader be fully
// consumed after parse returns, so individual field parsers need not
// re-check trailing bytes.
func ReadConstructed(r *Reader, id Identifier, parse func(*Reader) error) error {
	startOffset := r.Offset()
	gotID, err := ReadIdentifier(r)
	if err != nil {
		return err
	}
	if !gotID.Equal(id) {
		return newMismatchError(startOffset, id, gotID)
	}

	length, err := ReadLength(r)
	if err != nil {
		return err
	}
	n, err := length.RequireDefinite(r)
	if err != nil {
		return err
	}

	sub, err := r.ReadN(n)
	if err != nil {
		return err
	}
	if err := parse(sub); err != nil {
		return err
	}
	if !sub.Empty() {
		return sub.errorf(KindTrailingBytes, "%d bytes remain after decoding sequence", sub.Remaining())
	}
	return nil
}

// Element is what SequenceOf/SetOf need from a repeated member: a value
// that knows how to write and read one whole TLV of itself. Both Type[T]
// and Choice[T] satisfy this, which is what lets SEQUENCE OF/SET OF
// Filter (a CHOICE, not a single fixed Type) reuse the same combinator
// as SEQUENCE OF OCTET STRING.
type Element[T any] interface {
	Write(w Writer, v T) error
	Read(r *Reader) (T, error)
}

// repeatedCodec implements Codec[[]T] for the uniform repetition forms
// SequenceOf/SetOf: content is the concatenation of zero or more TLVs
// all produced by elem. Order is preserved on decode for both forms;
// this codec does not enforce Set ordering.
type repeatedCodec[T any] struct {
	elem Element[T]
}

func (c repeatedCodec[T]) WriteContent(w Writer, vs []T) error {
	for _, v := range vs {
		if err := c.elem.Write(w, v); err != nil {
			return err
		}
	}
	return nil
}

func (c repeatedCodec[T]) ReadContent(r *Reader) ([]T, error) {
	var out []T
	for !r.Empty() {
		v, err := c.elem.Read(r)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// SequenceOf builds a SEQUENCE OF elem: universal constructed, tag
// number 16.
func SequenceOf[T any](elem Element[T]) Type[[]T] {
	return Type[[]T]{ID: SequenceIdentifier, Codec: repeatedCodec[T]{elem: elem}}
}

// SetOf builds a SET OF elem: universal constructed, tag number 17.
func SetOf[T any](elem Element[T]) Type[[]T] {
	return Type[[]T]{ID: SetIdentifier, Codec: repeatedCodec[T]{elem: elem}}
}
