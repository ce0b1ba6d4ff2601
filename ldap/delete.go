package ldap

import "github.com/oba-ldap/lber/ber"

// DelRequest is RFC 4511 §4.8's [APPLICATION 10] operation: an LDAPDN
// with no SEQUENCE wrapper of its own.
type DelRequest struct {
	DN string
}

func (DelRequest) protocolOp() {}

type delRequestCodec struct{}

func (delRequestCodec) WriteContent(w ber.Writer, v DelRequest) error {
	return ber.OctetString.Codec.WriteContent(w, []byte(v.DN))
}

func (delRequestCodec) ReadContent(r *ber.Reader) (DelRequest, error) {
	dn, err := ber.OctetString.Codec.ReadContent(r)
	if err != nil {
		return DelRequest{}, err
	}
	return DelRequest{DN: string(dn)}, nil
}

// DelRequestType is the [APPLICATION 10] schema for DelRequest, a
// primitive OCTET STRING content under an APPLICATION identifier.
var DelRequestType = ber.Type[DelRequest]{ID: appID(10, ber.Primitive), Codec: delRequestCodec{}}

// DelResponse is RFC 4511 §4.8's [APPLICATION 11] LDAPResult.
type DelResponse struct {
	LDAPResult
}

func (DelResponse) protocolOp() {}

type delResponseCodec struct{}

func (delResponseCodec) WriteContent(w ber.Writer, v DelResponse) error {
	return writeLDAPResult(w, v.LDAPResult)
}

func (delResponseCodec) ReadContent(r *ber.Reader) (DelResponse, error) {
	res, err := readLDAPResult(r)
	if err != nil {
		return DelResponse{}, err
	}
	return DelResponse{LDAPResult: res}, nil
}

// DelResponseType is the [APPLICATION 11] schema for DelResponse.
var DelResponseType = ber.Type[DelResponse]{ID: appID(11, ber.Constructed), Codec: delResponseCodec{}}
