package ldap

import "github.com/oba-ldap/lber/ber"

// AbandonRequest is RFC 4511 §4.11's [APPLICATION 16] operation: a bare
// MessageID naming the operation to abandon. It has no response.
type AbandonRequest struct {
	MessageID int64
}

func (AbandonRequest) protocolOp() {}

type abandonRequestCodec struct{}

func (abandonRequestCodec) WriteContent(w ber.Writer, v AbandonRequest) error {
	return ber.Integer.Codec.WriteContent(w, v.MessageID)
}

func (abandonRequestCodec) ReadContent(r *ber.Reader) (AbandonRequest, error) {
	id, err := ber.Integer.Codec.ReadContent(r)
	if err != nil {
		return AbandonRequest{}, err
	}
	return AbandonRequest{MessageID: id}, nil
}

// AbandonRequestType is the [APPLICATION 16] schema for AbandonRequest.
var AbandonRequestType = ber.Type[AbandonRequest]{ID: appID(16, ber.Primitive), Codec: abandonRequestCodec{}}
