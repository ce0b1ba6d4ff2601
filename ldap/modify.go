package ldap

import "github.com/oba-ldap/lber/ber"

// ModifyOperation is a single change's operation ENUMERATED, RFC 4511
// §4.6.
type ModifyOperation int64

const (
	ModifyOperationAdd     ModifyOperation = 0
	ModifyOperationDelete  ModifyOperation = 1
	ModifyOperationReplace ModifyOperation = 2
)

func (m ModifyOperation) String() string {
	switch m {
	case ModifyOperationAdd:
		return "Add"
	case ModifyOperationDelete:
		return "Delete"
	case ModifyOperationReplace:
		return "Replace"
	default:
		return "Unknown"
	}
}

// Modification is one element of a ModifyRequest's changes SEQUENCE.
type Modification struct {
	Operation ModifyOperation
	Attribute Attribute
}

type modificationCodec struct{}

func (modificationCodec) WriteContent(w ber.Writer, v Modification) error {
	if err := ber.Enumerated.Write(w, int64(v.Operation)); err != nil {
		return err
	}
	return attributeType.Write(w, v.Attribute)
}

func (modificationCodec) ReadContent(r *ber.Reader) (Modification, error) {
	var v Modification
	op, err := ber.Enumerated.Read(r)
	if err != nil {
		return v, err
	}
	v.Operation = ModifyOperation(op)

	attr, err := attributeType.Read(r)
	if err != nil {
		return v, err
	}
	v.Attribute = attr
	return v, nil
}

var modificationType = ber.Type[Modification]{ID: ber.SequenceIdentifier, Codec: modificationCodec{}}
var changesType = ber.SequenceOf(modificationType)

// ModifyRequest is RFC 4511 §4.6's [APPLICATION 6] operation.
type ModifyRequest struct {
	Object  string
	Changes []Modification
}

func (ModifyRequest) protocolOp() {}

type modifyRequestCodec struct{}

func (modifyRequestCodec) WriteContent(w ber.Writer, v ModifyRequest) error {
	if err := ber.OctetString.Write(w, []byte(v.Object)); err != nil {
		return err
	}
	return changesType.Write(w, v.Changes)
}

func (modifyRequestCodec) ReadContent(r *ber.Reader) (ModifyRequest, error) {
	var v ModifyRequest
	obj, err := ber.OctetString.Read(r)
	if err != nil {
		return v, err
	}
	v.Object = string(obj)

	changes, err := changesType.Read(r)
	if err != nil {
		return v, err
	}
	v.Changes = changes
	return v, nil
}

// ModifyRequestType is the [APPLICATION 6] schema for ModifyRequest.
var ModifyRequestType = ber.Type[ModifyRequest]{ID: appID(6, ber.Constructed), Codec: modifyRequestCodec{}}

// ModifyResponse is RFC 4511 §4.6's [APPLICATION 7] LDAPResult.
type ModifyResponse struct {
	LDAPResult
}

func (ModifyResponse) protocolOp() {}

type modifyResponseCodec struct{}

func (modifyResponseCodec) WriteContent(w ber.Writer, v ModifyResponse) error {
	return writeLDAPResult(w, v.LDAPResult)
}

func (modifyResponseCodec) ReadContent(r *ber.Reader) (ModifyResponse, error) {
	res, err := readLDAPResult(r)
	if err != nil {
		return ModifyResponse{}, err
	}
	return ModifyResponse{LDAPResult: res}, nil
}

// ModifyResponseType is the [APPLICATION 7] schema for ModifyResponse.
var ModifyResponseType = ber.Type[ModifyResponse]{ID: appID(7, ber.Constructed), Codec: modifyResponseCodec{}}
