package ldap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtendedRequestRoundTripWithAndWithoutValue(t *testing.T) {
	tests := []ExtendedRequest{
		{RequestName: "1.3.6.1.4.1.1466.20037", RequestValue: []byte("STARTTLS"), HasValue: true},
		{RequestName: "1.3.6.1.4.1.4203.1.11.3"},
	}

	for _, req := range tests {
		got := roundTripMessage(t, Message{MessageID: 17, Operation: req})
		assert.Equal(t, req, got.Operation)
	}
}

func TestExtendedResponseRoundTripAllFieldCombinations(t *testing.T) {
	tests := []ExtendedResponse{
		{LDAPResult: NewSuccessResult()},
		{LDAPResult: NewSuccessResult(), ResponseName: "1.3.6.1.4.1.1466.20037", HasResponseName: true},
		{
			LDAPResult:       NewSuccessResult(),
			ResponseName:     "1.3.6.1.4.1.1466.20037",
			HasResponseName:  true,
			ResponseValue:    []byte("payload"),
			HasResponseValue: true,
		},
	}

	for _, resp := range tests {
		got := roundTripMessage(t, Message{MessageID: 18, Operation: resp})
		assert.Equal(t, resp, got.Operation)
	}
}

func TestIntermediateResponseRoundTripAllFieldCombinations(t *testing.T) {
	tests := []IntermediateResponse{
		{},
		{ResponseName: "1.2.3", HasResponseName: true},
		{ResponseName: "1.2.3", HasResponseName: true, ResponseValue: []byte("chunk"), HasResponseValue: true},
	}

	for _, resp := range tests {
		got := roundTripMessage(t, Message{MessageID: 19, Operation: resp})
		assert.Equal(t, resp, got.Operation)
	}
}
