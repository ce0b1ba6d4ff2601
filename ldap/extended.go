package ldap

import "github.com/oba-ldap/lber/ber"

const (
	extendedTagRequestName  = 0
	extendedTagRequestValue = 1
)

var (
	extendedRequestNameType  = ber.OctetString.ContextSpecific(extendedTagRequestName)
	extendedRequestValueType = ber.Optional[[]byte]{Inner: ber.OctetString.ContextSpecific(extendedTagRequestValue)}
)

// ExtendedRequest is RFC 4511 §4.12's [APPLICATION 23] operation.
type ExtendedRequest struct {
	RequestName  string
	RequestValue []byte
	HasValue     bool
}

func (ExtendedRequest) protocolOp() {}

type extendedRequestCodec struct{}

func (extendedRequestCodec) WriteContent(w ber.Writer, v ExtendedRequest) error {
	if err := extendedRequestNameType.Write(w, []byte(v.RequestName)); err != nil {
		return err
	}
	return extendedRequestValueType.Write(w, v.RequestValue, v.HasValue)
}

func (extendedRequestCodec) ReadContent(r *ber.Reader) (ExtendedRequest, error) {
	var v ExtendedRequest
	name, err := extendedRequestNameType.Read(r)
	if err != nil {
		return v, err
	}
	v.RequestName = string(name)

	val, present, err := extendedRequestValueType.Read(r)
	if err != nil {
		return v, err
	}
	v.RequestValue, v.HasValue = val, present
	return v, nil
}

// ExtendedRequestType is the [APPLICATION 23] schema for ExtendedRequest.
var ExtendedRequestType = ber.Type[ExtendedRequest]{ID: appID(23, ber.Constructed), Codec: extendedRequestCodec{}}

const (
	extendedTagResponseName  = 10
	extendedTagResponseValue = 11
)

var (
	extendedResponseNameOptional  = ber.Optional[[]byte]{Inner: ber.OctetString.ContextSpecific(extendedTagResponseName)}
	extendedResponseValueOptional = ber.Optional[[]byte]{Inner: ber.OctetString.ContextSpecific(extendedTagResponseValue)}
)

// ExtendedResponse is RFC 4511 §4.12's [APPLICATION 24] response:
// LDAPResult's fields followed by an optional response name/value pair.
type ExtendedResponse struct {
	LDAPResult
	ResponseName     string
	HasResponseName  bool
	ResponseValue    []byte
	HasResponseValue bool
}

func (ExtendedResponse) protocolOp() {}

type extendedResponseCodec struct{}

func (extendedResponseCodec) WriteContent(w ber.Writer, v ExtendedResponse) error {
	if err := writeLDAPResult(w, v.LDAPResult); err != nil {
		return err
	}
	if err := extendedResponseNameOptional.Write(w, []byte(v.ResponseName), v.HasResponseName); err != nil {
		return err
	}
	return extendedResponseValueOptional.Write(w, v.ResponseValue, v.HasResponseValue)
}

func (extendedResponseCodec) ReadContent(r *ber.Reader) (ExtendedResponse, error) {
	var v ExtendedResponse
	res, err := readLDAPResult(r)
	if err != nil {
		return v, err
	}
	v.LDAPResult = res

	name, hasName, err := extendedResponseNameOptional.Read(r)
	if err != nil {
		return v, err
	}
	v.ResponseName, v.HasResponseName = string(name), hasName

	val, hasVal, err := extendedResponseValueOptional.Read(r)
	if err != nil {
		return v, err
	}
	v.ResponseValue, v.HasResponseValue = val, hasVal
	return v, nil
}

// ExtendedResponseType is the [APPLICATION 24] schema for ExtendedResponse.
var ExtendedResponseType = ber.Type[ExtendedResponse]{ID: appID(24, ber.Constructed), Codec: extendedResponseCodec{}}

const (
	intermediateTagResponseName  = 0
	intermediateTagResponseValue = 1
)

var (
	intermediateResponseNameOptional  = ber.Optional[[]byte]{Inner: ber.OctetString.ContextSpecific(intermediateTagResponseName)}
	intermediateResponseValueOptional = ber.Optional[[]byte]{Inner: ber.OctetString.ContextSpecific(intermediateTagResponseValue)}
)

// IntermediateResponse is RFC 4511 §4.13's [APPLICATION 25] response.
type IntermediateResponse struct {
	ResponseName     string
	HasResponseName  bool
	ResponseValue    []byte
	HasResponseValue bool
}

func (IntermediateResponse) protocolOp() {}

type intermediateResponseCodec struct{}

func (intermediateResponseCodec) WriteContent(w ber.Writer, v IntermediateResponse) error {
	if err := intermediateResponseNameOptional.Write(w, []byte(v.ResponseName), v.HasResponseName); err != nil {
		return err
	}
	return intermediateResponseValueOptional.Write(w, v.ResponseValue, v.HasResponseValue)
}

func (intermediateResponseCodec) ReadContent(r *ber.Reader) (IntermediateResponse, error) {
	var v IntermediateResponse
	name, hasName, err := intermediateResponseNameOptional.Read(r)
	if err != nil {
		return v, err
	}
	v.ResponseName, v.HasResponseName = string(name), hasName

	val, hasVal, err := intermediateResponseValueOptional.Read(r)
	if err != nil {
		return v, err
	}
	v.ResponseValue, v.HasResponseValue = val, hasVal
	return v, nil
}

// IntermediateResponseType is the [APPLICATION 25] schema for IntermediateResponse.
var IntermediateResponseType = ber.Type[IntermediateResponse]{ID: appID(25, ber.Constructed), Codec: intermediateResponseCodec{}}
