package ldap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompareRequestRoundTrip(t *testing.T) {
	req := CompareRequest{DN: "uid=alice,dc=example,dc=com", Attribute: "mail", Value: []byte("alice@example.com")}

	got := roundTripMessage(t, Message{MessageID: 15, Operation: req})
	assert.Equal(t, req, got.Operation)
}

func TestCompareResponseRoundTripTrueAndFalse(t *testing.T) {
	tests := []ResultCode{ResultCompareTrue, ResultCompareFalse}

	for _, code := range tests {
		resp := CompareResponse{LDAPResult: LDAPResult{ResultCode: code}}
		got := roundTripMessage(t, Message{MessageID: 15, Operation: resp})
		assert.Equal(t, resp, got.Operation)
	}
}
