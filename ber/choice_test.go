package ber

import (
	"reflect"
	"testing"
)

// A minimal two-alternative sum type used only to exercise Choice.
type testChoiceValue interface{ isTestChoiceValue() }

type testIntAlt struct{ v int64 }

func (testIntAlt) isTestChoiceValue() {}

type testStringAlt struct{ v []byte }

func (testStringAlt) isTestChoiceValue() {}

func newTestChoice() Choice[testChoiceValue] {
	return Choice[testChoiceValue]{
		Legs: []ChoiceLeg[testChoiceValue]{
			NewChoiceLeg[testChoiceValue, int64](
				Integer,
				func(v int64) testChoiceValue { return testIntAlt{v} },
				func(v testChoiceValue) (int64, bool) {
					a, ok := v.(testIntAlt)
					return a.v, ok
				},
			),
			NewChoiceLeg[testChoiceValue, []byte](
				OctetString.ContextSpecific(0),
				func(v []byte) testChoiceValue { return testStringAlt{v} },
				func(v testChoiceValue) ([]byte, bool) {
					a, ok := v.(testStringAlt)
					return a.v, ok
				},
			),
		},
	}
}

func TestChoiceExhaustiveness(t *testing.T) {
	c := newTestChoice()

	for _, want := range []testChoiceValue{testIntAlt{7}, testStringAlt{[]byte("hi")}} {
		w := NewWriter()
		if err := c.Write(w, want); err != nil {
			t.Fatalf("Write failed: %v", err)
		}
		got, err := c.Read(NewReader(w.Bytes()))
		if err != nil {
			t.Fatalf("Read failed: %v", err)
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("expected %+v, got %+v", want, got)
		}
	}
}

func TestChoiceUnknownVariantOnDecode(t *testing.T) {
	c := newTestChoice()
	// A BOOLEAN TLV, not declared as any alternative.
	data := []byte{0x01, 0x01, 0xFF}
	_, err := c.Read(NewReader(data))
	if err == nil {
		t.Fatal("expected UnknownVariant, got nil")
	}
	berr, ok := err.(*Error)
	if !ok || berr.Kind != KindUnknownVariant {
		t.Errorf("expected KindUnknownVariant, got %v", err)
	}
}
