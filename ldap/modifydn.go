package ldap

import "github.com/oba-ldap/lber/ber"

const modifyDNTagNewSuperior = 0

var newSuperiorOptional = ber.Optional[[]byte]{Inner: ber.OctetString.ContextSpecific(modifyDNTagNewSuperior)}

// ModifyDNRequest is RFC 4511 §4.9's [APPLICATION 12] operation.
type ModifyDNRequest struct {
	Entry           string
	NewRDN          string
	DeleteOldRDN    bool
	NewSuperior     string
	HasNewSuperior  bool
}

func (ModifyDNRequest) protocolOp() {}

type modifyDNRequestCodec struct{}

func (modifyDNRequestCodec) WriteContent(w ber.Writer, v ModifyDNRequest) error {
	if err := ber.OctetString.Write(w, []byte(v.Entry)); err != nil {
		return err
	}
	if err := ber.OctetString.Write(w, []byte(v.NewRDN)); err != nil {
		return err
	}
	if err := ber.Boolean.Write(w, v.DeleteOldRDN); err != nil {
		return err
	}
	return newSuperiorOptional.Write(w, []byte(v.NewSuperior), v.HasNewSuperior)
}

func (modifyDNRequestCodec) ReadContent(r *ber.Reader) (ModifyDNRequest, error) {
	var v ModifyDNRequest

	entry, err := ber.OctetString.Read(r)
	if err != nil {
		return v, err
	}
	v.Entry = string(entry)

	newRDN, err := ber.OctetString.Read(r)
	if err != nil {
		return v, err
	}
	v.NewRDN = string(newRDN)

	del, err := ber.Boolean.Read(r)
	if err != nil {
		return v, err
	}
	v.DeleteOldRDN = del

	superior, present, err := newSuperiorOptional.Read(r)
	if err != nil {
		return v, err
	}
	if present {
		v.NewSuperior = string(superior)
		v.HasNewSuperior = true
	}
	return v, nil
}

// ModifyDNRequestType is the [APPLICATION 12] schema for ModifyDNRequest.
var ModifyDNRequestType = ber.Type[ModifyDNRequest]{ID: appID(12, ber.Constructed), Codec: modifyDNRequestCodec{}}

// ModifyDNResponse is RFC 4511 §4.9's [APPLICATION 13] LDAPResult.
type ModifyDNResponse struct {
	LDAPResult
}

func (ModifyDNResponse) protocolOp() {}

type modifyDNResponseCodec struct{}

func (modifyDNResponseCodec) WriteContent(w ber.Writer, v ModifyDNResponse) error {
	return writeLDAPResult(w, v.LDAPResult)
}

func (modifyDNResponseCodec) ReadContent(r *ber.Reader) (ModifyDNResponse, error) {
	res, err := readLDAPResult(r)
	if err != nil {
		return ModifyDNResponse{}, err
	}
	return ModifyDNResponse{LDAPResult: res}, nil
}

// ModifyDNResponseType is the [APPLICATION 13] schema for ModifyDNResponse.
var ModifyDNResponseType = ber.Type[ModifyDNResponse]{ID: appID(13, ber.Constructed), Codec: modifyDNResponseCodec{}}
