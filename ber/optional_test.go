package ber

import "testing"

func TestOptionalAbsentWritesNothing(t *testing.T) {
	opt := Optional[[]byte]{Inner: OctetString}
	w := NewWriter()
	if err := opt.Write(w, nil, false); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if len(w.Bytes()) != 0 {
		t.Errorf("expected no bytes written for absent, got %x", w.Bytes())
	}
}

func TestOptionalDecodeOfEmptyBytesReturnsAbsent(t *testing.T) {
	opt := Optional[[]byte]{Inner: OctetString}
	_, present, err := opt.Read(NewReader(nil))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if present {
		t.Error("expected absent on empty reader")
	}
}

func TestOptionalRestoresReaderWhenIdentifierDoesNotMatch(t *testing.T) {
	opt := Optional[[]byte]{Inner: OctetString}
	// An INTEGER TLV where an OCTET STRING was expected.
	data := []byte{0x02, 0x01, 0x05}
	r := NewReader(data)
	_, present, err := opt.Read(r)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if present {
		t.Error("expected absent when identifier does not match")
	}
	if r.Remaining() != len(data) {
		t.Errorf("expected reader untouched, remaining=%d want=%d", r.Remaining(), len(data))
	}
}

func TestOptionalPresentRoundTrip(t *testing.T) {
	opt := Optional[[]byte]{Inner: OctetString}
	w := NewWriter()
	if err := opt.Write(w, []byte("hi"), true); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	v, present, err := opt.Read(NewReader(w.Bytes()))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if !present || string(v) != "hi" {
		t.Errorf("expected present \"hi\", got present=%v v=%q", present, v)
	}
}
