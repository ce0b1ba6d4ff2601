package ber

// maxLengthBytes bounds the long-form length encoding to what fits a
// machine int; an input claiming more is rejected rather than risking
// overflow.
const maxLengthBytes = 8

// Length is either a definite non-negative byte count or the indefinite
// form. The indefinite form is never emitted by this codec and is
// rejected wherever a consumer requires a definite length.
type Length struct {
	Definite bool
	Value    int
}

// WriteLength writes n in minimal form: one byte if n <= 127, otherwise
// a long-form length byte followed by the minimal big-endian encoding
// of n (no leading zero byte).
func WriteLength(w Writer, n int) error {
	if n < 0 {
		return &Error{Kind: KindLengthInvalid, Message: "negative length"}
	}
	if n <= 127 {
		return w.WriteByte(byte(n))
	}

	var buf []byte
	v := uint64(n)
	for v > 0 {
		buf = append([]byte{byte(v & 0xFF)}, buf...)
		v >>= 8
	}
	if err := w.WriteByte(0x80 | byte(len(buf))); err != nil {
		return err
	}
	return w.Write(buf)
}

// ReadLength reads a Length from r. Indefinite form (0x80 alone) is
// recognized and returned with Definite=false rather than being treated
// as an error at this layer; callers that cannot accept it (every LDAP
// production) reject it via RequireDefinite.
func ReadLength(r *Reader) (Length, error) {
	first, err := r.ReadByte()
	if err != nil {
		return Length{}, err
	}

	if first&0x80 == 0 {
		return Length{Definite: true, Value: int(first & 0x7F)}, nil
	}

	k := int(first & 0x7F)
	if k == 0 {
		return Length{Definite: false}, nil
	}
	if k > maxLengthBytes {
		return Length{}, r.errorf(KindLengthInvalid, "long-form length uses %d bytes, exceeds platform limit", k)
	}

	sub, err := r.ReadN(k)
	if err != nil {
		return Length{}, err
	}
	var n uint64
	for !sub.Empty() {
		b, _ := sub.ReadByte()
		n = (n << 8) | uint64(b)
	}
	if n > uint64(int(^uint(0)>>1)) {
		return Length{}, r.errorf(KindLengthInvalid, "length %d exceeds platform int range", n)
	}
	return Length{Definite: true, Value: int(n)}, nil
}

// RequireDefinite returns the definite value or a LengthInvalid error.
func (l Length) RequireDefinite(r *Reader) (int, error) {
	if !l.Definite {
		return 0, r.errorf(KindLengthInvalid, "indefinite length not supported")
	}
	return l.Value, nil
}
