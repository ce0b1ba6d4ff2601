package ldap

import "github.com/oba-ldap/lber/ber"

// Attribute is an attribute type with one or more values, RFC 4511
// §4.1.7's Attribute ::= PartialAttribute(WITH VALUES).
type Attribute struct {
	Type   string
	Values [][]byte
}

type attributeCodec struct{}

func (attributeCodec) WriteContent(w ber.Writer, v Attribute) error {
	if err := ber.OctetString.Write(w, []byte(v.Type)); err != nil {
		return err
	}
	return ber.SetOf(ber.OctetString).Write(w, v.Values)
}

func (attributeCodec) ReadContent(r *ber.Reader) (Attribute, error) {
	var v Attribute
	typ, err := ber.OctetString.Read(r)
	if err != nil {
		return v, err
	}
	v.Type = string(typ)

	vals, err := ber.SetOf(ber.OctetString).Read(r)
	if err != nil {
		return v, err
	}
	v.Values = vals
	return v, nil
}

var attributeType = ber.Type[Attribute]{ID: ber.SequenceIdentifier, Codec: attributeCodec{}}
var attributeListType = ber.SequenceOf(attributeType)

// AddRequest is RFC 4511 §4.7's [APPLICATION 8] operation.
type AddRequest struct {
	Entry      string
	Attributes []Attribute
}

func (AddRequest) protocolOp() {}

type addRequestCodec struct{}

func (addRequestCodec) WriteContent(w ber.Writer, v AddRequest) error {
	if err := ber.OctetString.Write(w, []byte(v.Entry)); err != nil {
		return err
	}
	return attributeListType.Write(w, v.Attributes)
}

func (addRequestCodec) ReadContent(r *ber.Reader) (AddRequest, error) {
	var v AddRequest
	entry, err := ber.OctetString.Read(r)
	if err != nil {
		return v, err
	}
	v.Entry = string(entry)

	attrs, err := attributeListType.Read(r)
	if err != nil {
		return v, err
	}
	v.Attributes = attrs
	return v, nil
}

// AddRequestType is the [APPLICATION 8] schema for AddRequest.
var AddRequestType = ber.Type[AddRequest]{ID: appID(8, ber.Constructed), Codec: addRequestCodec{}}

// AddResponse is RFC 4511 §4.7's [APPLICATION 9] LDAPResult.
type AddResponse struct {
	LDAPResult
}

func (AddResponse) protocolOp() {}

type addResponseCodec struct{}

func (addResponseCodec) WriteContent(w ber.Writer, v AddResponse) error {
	return writeLDAPResult(w, v.LDAPResult)
}

func (addResponseCodec) ReadContent(r *ber.Reader) (AddResponse, error) {
	res, err := readLDAPResult(r)
	if err != nil {
		return AddResponse{}, err
	}
	return AddResponse{LDAPResult: res}, nil
}

// AddResponseType is the [APPLICATION 9] schema for AddResponse.
var AddResponseType = ber.Type[AddResponse]{ID: appID(9, ber.Constructed), Codec: addResponseCodec{}}
