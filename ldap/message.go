package ldap

import (
	"fmt"

	"github.com/oba-ldap/lber/ber"
)

// appID returns the APPLICATION-class Identifier for protocol operation
// tag n, primitive or constructed per enc.
func appID(n uint64, enc ber.Encoding) ber.Identifier {
	return ber.Identifier{Class: ber.ClassApplication, Encoding: enc, TagNumber: n}
}

// ProtocolOp is the sum type over every LDAP operation carried inside an
// LDAPMessage, per RFC 4511 §4.1.1's ProtocolOp CHOICE.
type ProtocolOp interface {
	protocolOp()
}

const contextTagControls = 0

// Control is a message extension attached to an LDAPMessage, per RFC
// 4511 §4.1.11:
//
//	Control ::= SEQUENCE {
//	    controlType             LDAPOID,
//	    criticality             BOOLEAN DEFAULT FALSE,
//	    controlValue            OCTET STRING OPTIONAL
//	}
type Control struct {
	OID         string
	Criticality bool
	Value       []byte
	HasValue    bool
}

type controlCodec struct{}

func (controlCodec) WriteContent(w ber.Writer, c Control) error {
	if err := ber.OctetString.Write(w, []byte(c.OID)); err != nil {
		return err
	}
	if c.Criticality {
		if err := ber.Boolean.Write(w, true); err != nil {
			return err
		}
	}
	if c.HasValue {
		if err := ber.OctetString.Write(w, c.Value); err != nil {
			return err
		}
	}
	return nil
}

func (controlCodec) ReadContent(r *ber.Reader) (Control, error) {
	var c Control

	oid, err := ber.OctetString.Read(r)
	if err != nil {
		return c, err
	}
	c.OID = string(oid)

	if ber.Boolean.PeekMatches(r) {
		crit, err := ber.Boolean.Read(r)
		if err != nil {
			return c, err
		}
		c.Criticality = crit
	}

	if ber.OctetString.PeekMatches(r) {
		val, err := ber.OctetString.Read(r)
		if err != nil {
			return c, err
		}
		c.Value = val
		c.HasValue = true
	}

	return c, nil
}

// ControlType is the SEQUENCE-framed Control Type.
var ControlType = ber.Type[Control]{ID: ber.SequenceIdentifier, Codec: controlCodec{}}

var controlsType = ber.SequenceOf(ControlType).ContextSpecific(contextTagControls)

// Message is an LDAPMessage envelope, per RFC 4511 §4.1.1:
//
//	LDAPMessage ::= SEQUENCE {
//	    messageID       MessageID,
//	    protocolOp      CHOICE { ... },
//	    controls        [0] Controls OPTIONAL
//	}
type Message struct {
	MessageID  int64
	Operation  ProtocolOp
	Controls   []Control
}

// Encode serializes m to its BER wire form.
func (m Message) Encode() ([]byte, error) {
	w := ber.NewWriter()
	err := ber.WriteConstructed(w, ber.SequenceIdentifier, func(iw ber.Writer) error {
		if err := ber.Integer.Write(iw, m.MessageID); err != nil {
			return err
		}
		if err := protocolOpChoice.Write(iw, m.Operation); err != nil {
			return err
		}
		if len(m.Controls) > 0 {
			if err := controlsType.Write(iw, m.Controls); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// DecodeMessage parses a single LDAPMessage from data. Any bytes after
// that message are a TrailingBytes error.
func DecodeMessage(data []byte) (Message, error) {
	var m Message
	r := ber.NewReader(data)

	err := ber.ReadConstructed(r, ber.SequenceIdentifier, func(sub *ber.Reader) error {
		id, err := ber.Integer.Read(sub)
		if err != nil {
			return err
		}
		m.MessageID = id

		op, err := protocolOpChoice.Read(sub)
		if err != nil {
			return err
		}
		m.Operation = op

		if controlsType.PeekMatches(sub) {
			controls, err := controlsType.Read(sub)
			if err != nil {
				return err
			}
			m.Controls = controls
		}
		return nil
	})
	if err != nil {
		return Message{}, err
	}
	if !r.Empty() {
		return Message{}, &ber.Error{
			Kind:    ber.KindTrailingBytes,
			Offset:  r.Offset(),
			Message: fmt.Sprintf("%d bytes remain after the LDAPMessage", r.Remaining()),
		}
	}
	return m, nil
}
