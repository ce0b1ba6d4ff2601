package ldap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchScopeString(t *testing.T) {
	assert.Equal(t, "WholeSubtree", ScopeWholeSubtree.String())
	assert.Equal(t, "Unknown", SearchScope(99).String())
}

func TestDerefAliasesString(t *testing.T) {
	assert.Equal(t, "DerefAlways", DerefAlways.String())
	assert.Equal(t, "Unknown", DerefAliases(99).String())
}

func TestSearchRequestRoundTrip(t *testing.T) {
	req := SearchRequest{
		BaseObject:   "ou=people,dc=example,dc=com",
		Scope:        ScopeSingleLevel,
		DerefAliases: DerefFindingBaseObj,
		SizeLimit:    100,
		TimeLimit:    30,
		TypesOnly:    true,
		Filter: AndFilter{Filters: []Filter{
			PresentFilter{Attribute: "objectClass"},
			EqualityMatchFilter{Attribute: "uid", Value: []byte("alice")},
		}},
		Attributes: []string{"cn", "mail", "uid"},
	}

	got := roundTripMessage(t, Message{MessageID: 7, Operation: req})
	assert.Equal(t, req, got.Operation)
}

func TestSearchRequestEmptyAttributesMeansAllAttributes(t *testing.T) {
	req := SearchRequest{BaseObject: "dc=example,dc=com", Filter: PresentFilter{Attribute: "objectClass"}}

	got := roundTripMessage(t, Message{MessageID: 7, Operation: req})
	searchReq, ok := got.Operation.(SearchRequest)
	assert.True(t, ok)
	assert.Empty(t, searchReq.Attributes)
}

func TestSearchResultEntryRoundTripMultipleAttributesAndValues(t *testing.T) {
	entry := SearchResultEntry{
		ObjectName: "uid=alice,ou=people,dc=example,dc=com",
		Attributes: []PartialAttribute{
			{Type: "cn", Values: [][]byte{[]byte("Alice Example")}},
			{Type: "mail", Values: [][]byte{[]byte("alice@example.com"), []byte("alice@work.example.com")}},
		},
	}

	got := roundTripMessage(t, Message{MessageID: 8, Operation: entry})
	assert.Equal(t, entry, got.Operation)
}

func TestSearchResultReferenceRoundTripMultipleURIs(t *testing.T) {
	ref := SearchResultReference{URIs: []string{
		"ldap://host1.example.com/dc=example,dc=com",
		"ldap://host2.example.com/dc=example,dc=com",
	}}

	got := roundTripMessage(t, Message{MessageID: 9, Operation: ref})
	assert.Equal(t, ref, got.Operation)
}

func TestSearchResultDoneRoundTrip(t *testing.T) {
	done := SearchResultDone{LDAPResult: NewSuccessResult()}

	got := roundTripMessage(t, Message{MessageID: 10, Operation: done})
	assert.Equal(t, done, got.Operation)
}
