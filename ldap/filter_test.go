package ldap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oba-ldap/lber/ber"
)

func roundTripFilter(t *testing.T, f Filter) Filter {
	t.Helper()
	w := ber.NewWriter()
	require.NoError(t, filterChoice.Write(w, f))

	got, err := filterChoice.Read(ber.NewReader(w.Bytes()))
	require.NoError(t, err)
	return got
}

func TestFilterRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		filter Filter
	}{
		{"present", PresentFilter{Attribute: "objectClass"}},
		{"equalityMatch", EqualityMatchFilter{Attribute: "cn", Value: []byte("Alice")}},
		{"greaterOrEqual", GreaterOrEqualFilter{Attribute: "age", Value: []byte("21")}},
		{"lessOrEqual", LessOrEqualFilter{Attribute: "age", Value: []byte("65")}},
		{"approxMatch", ApproxMatchFilter{Attribute: "sn", Value: []byte("Smith")}},
		{"and", AndFilter{Filters: []Filter{
			PresentFilter{Attribute: "objectClass"},
			EqualityMatchFilter{Attribute: "cn", Value: []byte("Alice")},
		}}},
		{"or", OrFilter{Filters: []Filter{
			EqualityMatchFilter{Attribute: "cn", Value: []byte("Alice")},
			EqualityMatchFilter{Attribute: "cn", Value: []byte("Bob")},
		}}},
		{"not", NotFilter{Filter: PresentFilter{Attribute: "objectClass"}}},
		{"nested not-of-and", NotFilter{Filter: AndFilter{Filters: []Filter{
			PresentFilter{Attribute: "mail"},
			NotFilter{Filter: PresentFilter{Attribute: "mobile"}},
		}}}},
		{"substrings", SubstringsFilter{
			Attribute: "cn",
			Substrings: []SubstringComponent{
				{Kind: SubstringInitial, Value: []byte("Al")},
				{Kind: SubstringAny, Value: []byte("ic")},
				{Kind: SubstringFinal, Value: []byte("e")},
			},
		}},
		{"extensibleMatch full", ExtensibleMatchFilter{
			MatchingRule:    "2.5.13.2",
			HasMatchingRule: true,
			Type:            "cn",
			HasType:         true,
			Value:           []byte("Alice"),
			DNAttributes:    true,
		}},
		{"extensibleMatch minimal", ExtensibleMatchFilter{Value: []byte("Alice")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.filter, roundTripFilter(t, tt.filter))
		})
	}
}

func TestFilterEmptyAndIsVacuouslyTrue(t *testing.T) {
	got := roundTripFilter(t, AndFilter{})
	and, ok := got.(AndFilter)
	require.True(t, ok)
	assert.Empty(t, and.Filters)
}

func TestFilterDeeplyNested(t *testing.T) {
	f := OrFilter{Filters: []Filter{
		AndFilter{Filters: []Filter{
			PresentFilter{Attribute: "objectClass"},
			NotFilter{Filter: EqualityMatchFilter{Attribute: "status", Value: []byte("disabled")}},
		}},
		SubstringsFilter{Attribute: "mail", Substrings: []SubstringComponent{
			{Kind: SubstringAny, Value: []byte("@example")},
		}},
	}}

	assert.Equal(t, f, roundTripFilter(t, f))
}
