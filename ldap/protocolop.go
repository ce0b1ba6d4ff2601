package ldap

import "github.com/oba-ldap/lber/ber"

// leg builds the common case of a ProtocolOp choice leg: a concrete
// operation struct that is its own payload, so wrap/unwrap are the
// identity function and a type assertion.
func leg[V ProtocolOp](t ber.Type[V]) ber.ChoiceLeg[ProtocolOp] {
	return ber.NewChoiceLeg[ProtocolOp, V](
		t,
		func(v V) ProtocolOp { return v },
		func(op ProtocolOp) (V, bool) { v, ok := op.(V); return v, ok },
	)
}

// protocolOpChoice is RFC 4511 §4.1.1's ProtocolOp CHOICE: every
// operation and response an LDAPMessage may carry.
var protocolOpChoice = ber.Choice[ProtocolOp]{
	Legs: []ber.ChoiceLeg[ProtocolOp]{
		leg(BindRequestType),
		leg(BindResponseType),
		leg(UnbindRequestType),
		leg(SearchRequestType),
		leg(SearchResultEntryType),
		leg(SearchResultDoneType),
		leg(SearchResultReferenceType),
		leg(ModifyRequestType),
		leg(ModifyResponseType),
		leg(AddRequestType),
		leg(AddResponseType),
		leg(DelRequestType),
		leg(DelResponseType),
		leg(ModifyDNRequestType),
		leg(ModifyDNResponseType),
		leg(CompareRequestType),
		leg(CompareResponseType),
		leg(AbandonRequestType),
		leg(ExtendedRequestType),
		leg(ExtendedResponseType),
		leg(IntermediateResponseType),
	},
}
