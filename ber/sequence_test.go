package ber

import (
	"bytes"
	"testing"
)

func TestWriteConstructedEmptySequence(t *testing.T) {
	w := NewWriter()
	err := WriteConstructed(w, SequenceIdentifier, func(Writer) error { return nil })
	if err != nil {
		t.Fatalf("WriteConstructed failed: %v", err)
	}
	if !bytes.Equal(w.Bytes(), []byte{0x30, 0x00}) {
		t.Errorf("expected [0x30 0x00], got %x", w.Bytes())
	}
}

func TestWriteConstructedTwoPassMatchesSingleField(t *testing.T) {
	w := NewWriter()
	err := WriteConstructed(w, SequenceIdentifier, func(iw Writer) error {
		return Integer.Write(iw, 42)
	})
	if err != nil {
		t.Fatalf("WriteConstructed failed: %v", err)
	}

	var got int64
	readErr := ReadConstructed(NewReader(w.Bytes()), SequenceIdentifier, func(sub *Reader) error {
		v, err := Integer.Read(sub)
		got = v
		return err
	})
	if readErr != nil {
		t.Fatalf("ReadConstructed failed: %v", readErr)
	}
	if got != 42 {
		t.Errorf("expected 42, got %d", got)
	}
}

func TestReadConstructedRejectsTrailingBytes(t *testing.T) {
	w := NewWriter()
	_ = WriteConstructed(w, SequenceIdentifier, func(iw Writer) error {
		return Integer.Write(iw, 1)
	})

	err := ReadConstructed(NewReader(w.Bytes()), SequenceIdentifier, func(sub *Reader) error {
		// Deliberately read nothing, leaving the INTEGER TLV unconsumed.
		return nil
	})
	if err == nil {
		t.Fatal("expected TrailingBytes error")
	}
	berr, ok := err.(*Error)
	if !ok || berr.Kind != KindTrailingBytes {
		t.Errorf("expected KindTrailingBytes, got %v", err)
	}
}

func TestSequenceOfRoundTrip(t *testing.T) {
	attrs := SequenceOf(OctetString)
	want := [][]byte{[]byte("objectClass"), []byte("uid")}

	w := NewWriter()
	if err := attrs.Write(w, want); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	got, err := attrs.Read(NewReader(w.Bytes()))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d elements, got %d", len(want), len(got))
	}
	for i := range want {
		if string(got[i]) != string(want[i]) {
			t.Errorf("element %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestSetOfWireTagIsDerivedFromTagNumber17(t *testing.T) {
	set := SetOf(OctetString)
	w := NewWriter()
	_ = set.Write(w, [][]byte{[]byte("top")})
	if w.Bytes()[0] != 0x31 {
		t.Errorf("expected wire byte 0x31 for universal constructed tag 17, got %x", w.Bytes()[0])
	}
}
