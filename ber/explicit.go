package ber

// Explicit wraps Inner in a new outer constructed TLV; the inner
// value's own Identifier and content are written/read unchanged inside
// it. Inner may be a plain Type or anything else satisfying Element
// (e.g. a Choice, for wrapping a CHOICE like Filter's `not`
// alternative, which RFC 4511 tags EXPLICIT rather than the implicit
// default).
type Explicit[T any] struct {
	OuterID Identifier
	Inner   Element[T]
}

// NewExplicit builds an Explicit wrapper tagged context-specific n,
// constructed, the default explicit_ would use absent an overriding
// class.
func NewExplicit[T any](tagNumber uint64, inner Element[T]) Explicit[T] {
	return Explicit[T]{
		OuterID: Identifier{Class: ClassContextSpecific, Encoding: Constructed, TagNumber: tagNumber},
		Inner:   inner,
	}
}

func (e Explicit[T]) Write(w Writer, v T) error {
	return WriteConstructed(w, e.OuterID, func(iw Writer) error {
		return e.Inner.Write(iw, v)
	})
}

func (e Explicit[T]) Read(r *Reader) (T, error) {
	var result T
	err := ReadConstructed(r, e.OuterID, func(sub *Reader) error {
		v, err := e.Inner.Read(sub)
		if err != nil {
			return err
		}
		result = v
		return nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return result, nil
}
