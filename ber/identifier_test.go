package ber

import (
	"bytes"
	"testing"
)

func TestIdentifierLowTagNumber(t *testing.T) {
	id := Identifier{Class: ClassUniversal, Encoding: Primitive, TagNumber: TagInteger}
	w := NewWriter()
	if err := id.WriteTo(w); err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}
	if !bytes.Equal(w.Bytes(), []byte{0x02}) {
		t.Errorf("expected 0x02, got %x", w.Bytes())
	}

	got, err := ReadIdentifier(NewReader(w.Bytes()))
	if err != nil {
		t.Fatalf("ReadIdentifier failed: %v", err)
	}
	if !got.Equal(id) {
		t.Errorf("expected %+v, got %+v", id, got)
	}
}

func TestIdentifierHighTagNumber(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		id := Identifier{Class: ClassContextSpecific, Encoding: Constructed, TagNumber: 300}
		w := NewWriter()
		if err := id.WriteTo(w); err != nil {
			t.Fatalf("WriteTo failed: %v", err)
		}
		got, err := ReadIdentifier(NewReader(w.Bytes()))
		if err != nil {
			t.Fatalf("ReadIdentifier failed: %v", err)
		}
		if !got.Equal(id) {
			t.Errorf("expected %+v, got %+v", id, got)
		}
	})

	t.Run("first byte marks high-tag-number form", func(t *testing.T) {
		id := Identifier{Class: ClassUniversal, Encoding: Primitive, TagNumber: 31}
		w := NewWriter()
		_ = id.WriteTo(w)
		if w.Bytes()[0] != 0x1F {
			t.Errorf("expected first byte 0x1F, got %x", w.Bytes()[0])
		}
	})
}

func TestIdentifierEqualComparesAllFields(t *testing.T) {
	a := Identifier{Class: ClassUniversal, Encoding: Primitive, TagNumber: 4}
	b := Identifier{Class: ClassUniversal, Encoding: Constructed, TagNumber: 4}
	if a.Equal(b) {
		t.Error("identifiers differing only in encoding should not be equal")
	}
}

func TestIdentifierRetagPreservesEncoding(t *testing.T) {
	octet := OctetString.ID
	retagged := octet.Retag(ClassContextSpecific, 3)
	if retagged.Encoding != Primitive {
		t.Errorf("Retag must preserve encoding, got %v", retagged.Encoding)
	}
	if octet.Encoding != Primitive {
		t.Error("Retag must not mutate the original Identifier")
	}
}

func TestTagNumberOverflowRejected(t *testing.T) {
	// A high-tag-number form with more continuation bytes than any
	// real tag number should use.
	data := []byte{0x1F}
	for i := 0; i < 10; i++ {
		data = append(data, 0xFF)
	}
	_, err := ReadIdentifier(NewReader(data))
	if err == nil {
		t.Fatal("expected TagNumberOverflow, got nil")
	}
	berr, ok := err.(*Error)
	if !ok || berr.Kind != KindTagNumberOverflow {
		t.Errorf("expected KindTagNumberOverflow, got %v", err)
	}
}
