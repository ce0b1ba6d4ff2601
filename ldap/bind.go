package ldap

import "github.com/oba-ldap/lber/ber"

const (
	authTagSimple = 0
	authTagSASL   = 3
)

// Authentication is the sum type over BindRequest's AuthenticationChoice.
type Authentication interface {
	authentication()
}

// SimpleAuth is the `simple [0] OCTET STRING` alternative.
type SimpleAuth struct {
	Password []byte
}

func (SimpleAuth) authentication() {}

// SASLAuth is the `sasl [3] SaslCredentials` alternative.
type SASLAuth struct {
	Mechanism      string
	Credentials    []byte
	HasCredentials bool
}

func (SASLAuth) authentication() {}

type saslAuthCodec struct{}

func (saslAuthCodec) WriteContent(w ber.Writer, v SASLAuth) error {
	if err := ber.OctetString.Write(w, []byte(v.Mechanism)); err != nil {
		return err
	}
	if v.HasCredentials {
		return ber.OctetString.Write(w, v.Credentials)
	}
	return nil
}

func (saslAuthCodec) ReadContent(r *ber.Reader) (SASLAuth, error) {
	var v SASLAuth
	mech, err := ber.OctetString.Read(r)
	if err != nil {
		return v, err
	}
	v.Mechanism = string(mech)
	if !r.Empty() {
		creds, err := ber.OctetString.Read(r)
		if err != nil {
			return v, err
		}
		v.Credentials = creds
		v.HasCredentials = true
	}
	return v, nil
}

var saslAuthType = ber.Type[SASLAuth]{
	ID:    ber.Identifier{Class: ber.ClassContextSpecific, Encoding: ber.Constructed, TagNumber: authTagSASL},
	Codec: saslAuthCodec{},
}

var authenticationChoice = ber.Choice[Authentication]{
	Legs: []ber.ChoiceLeg[Authentication]{
		ber.NewChoiceLeg[Authentication, []byte](
			ber.OctetString.ContextSpecific(authTagSimple),
			func(v []byte) Authentication { return SimpleAuth{Password: v} },
			func(a Authentication) ([]byte, bool) {
				s, ok := a.(SimpleAuth)
				return s.Password, ok
			},
		),
		ber.NewChoiceLeg[Authentication, SASLAuth](
			saslAuthType,
			func(v SASLAuth) Authentication { return v },
			func(a Authentication) (SASLAuth, bool) {
				s, ok := a.(SASLAuth)
				return s, ok
			},
		),
	},
}

// BindRequest is RFC 4511 §4.2's [APPLICATION 0] operation.
type BindRequest struct {
	Version int64
	Name    string
	Auth    Authentication
}

func (BindRequest) protocolOp() {}

// IsAnonymous reports whether this is an anonymous simple bind: empty
// name, empty password.
func (r BindRequest) IsAnonymous() bool {
	simple, ok := r.Auth.(SimpleAuth)
	return r.Name == "" && ok && len(simple.Password) == 0
}

type bindRequestCodec struct{}

func (bindRequestCodec) WriteContent(w ber.Writer, v BindRequest) error {
	if err := ber.Integer.Write(w, v.Version); err != nil {
		return err
	}
	if err := ber.OctetString.Write(w, []byte(v.Name)); err != nil {
		return err
	}
	return authenticationChoice.Write(w, v.Auth)
}

func (bindRequestCodec) ReadContent(r *ber.Reader) (BindRequest, error) {
	var v BindRequest
	ver, err := ber.Integer.Read(r)
	if err != nil {
		return v, err
	}
	v.Version = ver

	name, err := ber.OctetString.Read(r)
	if err != nil {
		return v, err
	}
	v.Name = string(name)

	auth, err := authenticationChoice.Read(r)
	if err != nil {
		return v, err
	}
	v.Auth = auth
	return v, nil
}

// BindRequestType is the [APPLICATION 0] schema for BindRequest.
var BindRequestType = ber.Type[BindRequest]{ID: appID(0, ber.Constructed), Codec: bindRequestCodec{}}

const contextTagServerSASLCreds = 7

var serverSASLCredsType = ber.OctetString.ContextSpecific(contextTagServerSASLCreds)

// BindResponse is RFC 4511 §4.2.2's [APPLICATION 1] response.
type BindResponse struct {
	LDAPResult
	ServerSASLCreds    []byte
	HasServerSASLCreds bool
}

func (BindResponse) protocolOp() {}

type bindResponseCodec struct{}

func (bindResponseCodec) WriteContent(w ber.Writer, v BindResponse) error {
	if err := writeLDAPResult(w, v.LDAPResult); err != nil {
		return err
	}
	if v.HasServerSASLCreds {
		return serverSASLCredsType.Write(w, v.ServerSASLCreds)
	}
	return nil
}

func (bindResponseCodec) ReadContent(r *ber.Reader) (BindResponse, error) {
	var v BindResponse
	res, err := readLDAPResult(r)
	if err != nil {
		return v, err
	}
	v.LDAPResult = res

	if !r.Empty() {
		creds, err := serverSASLCredsType.Read(r)
		if err != nil {
			return v, err
		}
		v.ServerSASLCreds = creds
		v.HasServerSASLCreds = true
	}
	return v, nil
}

// BindResponseType is the [APPLICATION 1] schema for BindResponse.
var BindResponseType = ber.Type[BindResponse]{ID: appID(1, ber.Constructed), Codec: bindResponseCodec{}}

// UnbindRequest is RFC 4511 §4.3's [APPLICATION 2] NULL operation.
type UnbindRequest struct{}

func (UnbindRequest) protocolOp() {}

type unbindCodec struct{}

func (unbindCodec) WriteContent(w ber.Writer, v UnbindRequest) error { return nil }

func (unbindCodec) ReadContent(r *ber.Reader) (UnbindRequest, error) {
	// The caller (Type.Read, or Choice.Read inside a Message) rejects any
	// leftover bytes as TrailingBytes once this returns, so a non-empty
	// reader here needs no separate check.
	return UnbindRequest{}, nil
}

// UnbindRequestType is the [APPLICATION 2] schema for UnbindRequest.
var UnbindRequestType = ber.Type[UnbindRequest]{ID: appID(2, ber.Primitive), Codec: unbindCodec{}}
