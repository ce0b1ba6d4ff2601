package ldap

import "github.com/oba-ldap/lber/ber"

// SearchScope is SearchRequest's scope ENUMERATED, RFC 4511 §4.5.1.
type SearchScope int64

const (
	ScopeBaseObject  SearchScope = 0
	ScopeSingleLevel SearchScope = 1
	ScopeWholeSubtree SearchScope = 2
)

func (s SearchScope) String() string {
	switch s {
	case ScopeBaseObject:
		return "BaseObject"
	case ScopeSingleLevel:
		return "SingleLevel"
	case ScopeWholeSubtree:
		return "WholeSubtree"
	default:
		return "Unknown"
	}
}

// DerefAliases is SearchRequest's derefAliases ENUMERATED.
type DerefAliases int64

const (
	DerefNever          DerefAliases = 0
	DerefInSearching    DerefAliases = 1
	DerefFindingBaseObj DerefAliases = 2
	DerefAlways         DerefAliases = 3
)

func (d DerefAliases) String() string {
	switch d {
	case DerefNever:
		return "NeverDerefAliases"
	case DerefInSearching:
		return "DerefInSearching"
	case DerefFindingBaseObj:
		return "DerefFindingBaseObj"
	case DerefAlways:
		return "DerefAlways"
	default:
		return "Unknown"
	}
}

// SearchRequest is RFC 4511 §4.5.1's [APPLICATION 3] operation.
type SearchRequest struct {
	BaseObject   string
	Scope        SearchScope
	DerefAliases DerefAliases
	SizeLimit    int64
	TimeLimit    int64
	TypesOnly    bool
	Filter       Filter
	Attributes   []string
}

func (SearchRequest) protocolOp() {}

var attributeSelectionType = ber.SequenceOf(ber.OctetString)

type searchRequestCodec struct{}

func (searchRequestCodec) WriteContent(w ber.Writer, v SearchRequest) error {
	if err := ber.OctetString.Write(w, []byte(v.BaseObject)); err != nil {
		return err
	}
	if err := ber.Enumerated.Write(w, int64(v.Scope)); err != nil {
		return err
	}
	if err := ber.Enumerated.Write(w, int64(v.DerefAliases)); err != nil {
		return err
	}
	if err := ber.Integer.Write(w, v.SizeLimit); err != nil {
		return err
	}
	if err := ber.Integer.Write(w, v.TimeLimit); err != nil {
		return err
	}
	if err := ber.Boolean.Write(w, v.TypesOnly); err != nil {
		return err
	}
	if err := filterChoice.Write(w, v.Filter); err != nil {
		return err
	}
	attrs := make([][]byte, len(v.Attributes))
	for i, a := range v.Attributes {
		attrs[i] = []byte(a)
	}
	return attributeSelectionType.Write(w, attrs)
}

func (searchRequestCodec) ReadContent(r *ber.Reader) (SearchRequest, error) {
	var v SearchRequest

	base, err := ber.OctetString.Read(r)
	if err != nil {
		return v, err
	}
	v.BaseObject = string(base)

	scope, err := ber.Enumerated.Read(r)
	if err != nil {
		return v, err
	}
	v.Scope = SearchScope(scope)

	deref, err := ber.Enumerated.Read(r)
	if err != nil {
		return v, err
	}
	v.DerefAliases = DerefAliases(deref)

	sizeLimit, err := ber.Integer.Read(r)
	if err != nil {
		return v, err
	}
	v.SizeLimit = sizeLimit

	timeLimit, err := ber.Integer.Read(r)
	if err != nil {
		return v, err
	}
	v.TimeLimit = timeLimit

	typesOnly, err := ber.Boolean.Read(r)
	if err != nil {
		return v, err
	}
	v.TypesOnly = typesOnly

	filter, err := filterChoice.Read(r)
	if err != nil {
		return v, err
	}
	v.Filter = filter

	attrs, err := attributeSelectionType.Read(r)
	if err != nil {
		return v, err
	}
	v.Attributes = make([]string, len(attrs))
	for i, a := range attrs {
		v.Attributes[i] = string(a)
	}
	return v, nil
}

// SearchRequestType is the [APPLICATION 3] schema for SearchRequest.
var SearchRequestType = ber.Type[SearchRequest]{ID: appID(3, ber.Constructed), Codec: searchRequestCodec{}}

// PartialAttribute is one entry of a SearchResultEntry's attribute
// list, RFC 4511 §4.1.7.
type PartialAttribute struct {
	Type   string
	Values [][]byte
}

type partialAttributeCodec struct{}

func (partialAttributeCodec) WriteContent(w ber.Writer, v PartialAttribute) error {
	if err := ber.OctetString.Write(w, []byte(v.Type)); err != nil {
		return err
	}
	return ber.SetOf(ber.OctetString).Write(w, v.Values)
}

func (partialAttributeCodec) ReadContent(r *ber.Reader) (PartialAttribute, error) {
	var v PartialAttribute
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

var partialAttributeType = ber.Type[PartialAttribute]{ID: ber.SequenceIdentifier, Codec: partialAttributeCodec{}}
var partialAttributeListType = ber.SequenceOf(partialAttributeType)

// SearchResultEntry is RFC 4511 §4.5.2's [APPLICATION 4] response.
type SearchResultEntry struct {
	ObjectName string
	Attributes []PartialAttribute
}

func (SearchResultEntry) protocolOp() {}

type searchResultEntryCodec struct{}

func (searchResultEntryCodec) WriteContent(w ber.Writer, v SearchResultEntry) error {
	if err := ber.OctetString.Write(w, []byte(v.ObjectName)); err != nil {
		return err
	}
	return partialAttributeListType.Write(w, v.Attributes)
}

func (searchResultEntryCodec) ReadContent(r *ber.Reader) (SearchResultEntry, error) {
	var v SearchResultEntry
	name, err := ber.OctetString.Read(r)
	if err != nil {
		return v, err
	}
	v.ObjectName = string(name)

	attrs, err := partialAttributeListType.Read(r)
	if err != nil {
		return v, err
	}
	v.Attributes = attrs
	return v, nil
}

// SearchResultEntryType is the [APPLICATION 4] schema for SearchResultEntry.
var SearchResultEntryType = ber.Type[SearchResultEntry]{ID: appID(4, ber.Constructed), Codec: searchResultEntryCodec{}}

// SearchResultDone is RFC 4511 §4.5.2's [APPLICATION 5] LDAPResult.
type SearchResultDone struct {
	LDAPResult
}

func (SearchResultDone) protocolOp() {}

type searchResultDoneCodec struct{}

func (searchResultDoneCodec) WriteContent(w ber.Writer, v SearchResultDone) error {
	return writeLDAPResult(w, v.LDAPResult)
}

func (searchResultDoneCodec) ReadContent(r *ber.Reader) (SearchResultDone, error) {
	res, err := readLDAPResult(r)
	if err != nil {
		return SearchResultDone{}, err
	}
	return SearchResultDone{LDAPResult: res}, nil
}

// SearchResultDoneType is the [APPLICATION 5] schema for SearchResultDone.
var SearchResultDoneType = ber.Type[SearchResultDone]{ID: appID(5, ber.Constructed), Codec: searchResultDoneCodec{}}

// SearchResultReference is RFC 4511 §4.5.3's [APPLICATION 19] response:
// a SEQUENCE OF LDAPURL carried instead of an entry when the server
// refers the client elsewhere.
type SearchResultReference struct {
	URIs []string
}

func (SearchResultReference) protocolOp() {}

type searchResultReferenceCodec struct{}

func (searchResultReferenceCodec) WriteContent(w ber.Writer, v SearchResultReference) error {
	uris := make([][]byte, len(v.URIs))
	for i, u := range v.URIs {
		uris[i] = []byte(u)
	}
	return repeatedOctetStringContent{}.WriteContent(w, uris)
}

func (searchResultReferenceCodec) ReadContent(r *ber.Reader) (SearchResultReference, error) {
	var v SearchResultReference
	for !r.Empty() {
		u, err := ber.OctetString.Read(r)
		if err != nil {
			return v, err
		}
		v.URIs = append(v.URIs, string(u))
	}
	return v, nil
}

// repeatedOctetStringContent writes a sequence of OCTET STRING TLVs as
// raw content, used where the surrounding envelope already supplies
// the outer APPLICATION identifier (SearchResultReference has no
// nested SEQUENCE around its URI list).
type repeatedOctetStringContent struct{}

func (repeatedOctetStringContent) WriteContent(w ber.Writer, vs [][]byte) error {
	for _, v := range vs {
		if err := ber.OctetString.Write(w, v); err != nil {
			return err
		}
	}
	return nil
}

func (repeatedOctetStringContent) ReadContent(r *ber.Reader) ([][]byte, error) {
	var out [][]byte
	for !r.Empty() {
		v, err := ber.OctetString.Read(r)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// SearchResultReferenceType is the [APPLICATION 19] schema for SearchResultReference.
var SearchResultReferenceType = ber.Type[SearchResultReference]{ID: appID(19, ber.Constructed), Codec: searchResultReferenceCodec{}}
