package ldap

import "github.com/oba-ldap/lber/ber"

// CompareRequest is RFC 4511 §4.10's [APPLICATION 14] operation.
type CompareRequest struct {
	DN        string
	Attribute string
	Value     []byte
}

func (CompareRequest) protocolOp() {}

type compareRequestCodec struct{}

func (compareRequestCodec) WriteContent(w ber.Writer, v CompareRequest) error {
	if err := ber.OctetString.Write(w, []byte(v.DN)); err != nil {
		return err
	}
	return avaType.Write(w, AttributeValueAssertion{Attribute: v.Attribute, Value: v.Value})
}

func (compareRequestCodec) ReadContent(r *ber.Reader) (CompareRequest, error) {
	var v CompareRequest
	dn, err := ber.OctetString.Read(r)
	if err != nil {
		return v, err
	}
	v.DN = string(dn)

	ava, err := avaType.Read(r)
	if err != nil {
		return v, err
	}
	v.Attribute = ava.Attribute
	v.Value = ava.Value
	return v, nil
}

// CompareRequestType is the [APPLICATION 14] schema for CompareRequest.
var CompareRequestType = ber.Type[CompareRequest]{ID: appID(14, ber.Constructed), Codec: compareRequestCodec{}}

// CompareResponse is RFC 4511 §4.10's [APPLICATION 15] LDAPResult.
type CompareResponse struct {
	LDAPResult
}

func (CompareResponse) protocolOp() {}

type compareResponseCodec struct{}

func (compareResponseCodec) WriteContent(w ber.Writer, v CompareResponse) error {
	return writeLDAPResult(w, v.LDAPResult)
}

func (compareResponseCodec) ReadContent(r *ber.Reader) (CompareResponse, error) {
	res, err := readLDAPResult(r)
	if err != nil {
		return CompareResponse{}, err
	}
	return CompareResponse{LDAPResult: res}, nil
}

// CompareResponseType is the [APPLICATION 15] schema for CompareResponse.
var CompareResponseType = ber.Type[CompareResponse]{ID: appID(15, ber.Constructed), Codec: compareResponseCodec{}}
