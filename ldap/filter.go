package ldap

import "github.com/oba-ldap/lber/ber"

// Filter tag numbers, RFC 4511 §4.5.1.7.
const (
	filterTagAnd             = 0
	filterTagOr              = 1
	filterTagNot             = 2
	filterTagEqualityMatch    = 3
	filterTagSubstrings      = 4
	filterTagGreaterOrEqual  = 5
	filterTagLessOrEqual     = 6
	filterTagPresent         = 7
	filterTagApproxMatch     = 8
	filterTagExtensibleMatch = 9
)

// Filter is the sum type over SearchRequest's Filter CHOICE.
type Filter interface {
	filter()
}

// AndFilter is the `and [0] SET OF Filter` alternative.
type AndFilter struct{ Filters []Filter }

func (AndFilter) filter() {}

// OrFilter is the `or [1] SET OF Filter` alternative.
type OrFilter struct{ Filters []Filter }

func (OrFilter) filter() {}

// NotFilter is the `not [2] Filter` alternative, EXPLICIT-tagged since
// Filter is itself a CHOICE with no tag of its own to override.
type NotFilter struct{ Filter Filter }

func (NotFilter) filter() {}

// AttributeValueAssertion is the shared SEQUENCE shape underlying the
// equalityMatch, greaterOrEqual, lessOrEqual, and approxMatch
// alternatives, per RFC 4511 §4.1.8.
type AttributeValueAssertion struct {
	Attribute string
	Value     []byte
}

type avaCodec struct{}

func (avaCodec) WriteContent(w ber.Writer, v AttributeValueAssertion) error {
	if err := ber.OctetString.Write(w, []byte(v.Attribute)); err != nil {
		return err
	}
	return ber.OctetString.Write(w, v.Value)
}

func (avaCodec) ReadContent(r *ber.Reader) (AttributeValueAssertion, error) {
	var v AttributeValueAssertion
	attr, err := ber.OctetString.Read(r)
	if err != nil {
		return v, err
	}
	v.Attribute = string(attr)

	val, err := ber.OctetString.Read(r)
	if err != nil {
		return v, err
	}
	v.Value = val
	return v, nil
}

var avaType = ber.Type[AttributeValueAssertion]{ID: ber.SequenceIdentifier, Codec: avaCodec{}}

// EqualityMatchFilter is `equalityMatch [3] AttributeValueAssertion`.
type EqualityMatchFilter struct{ Attribute string; Value []byte }

func (EqualityMatchFilter) filter() {}

// GreaterOrEqualFilter is `greaterOrEqual [5] AttributeValueAssertion`.
type GreaterOrEqualFilter struct{ Attribute string; Value []byte }

func (GreaterOrEqualFilter) filter() {}

// LessOrEqualFilter is `lessOrEqual [6] AttributeValueAssertion`.
type LessOrEqualFilter struct{ Attribute string; Value []byte }

func (LessOrEqualFilter) filter() {}

// ApproxMatchFilter is `approxMatch [8] AttributeValueAssertion`.
type ApproxMatchFilter struct{ Attribute string; Value []byte }

func (ApproxMatchFilter) filter() {}

// PresentFilter is `present [7] AttributeDescription`.
type PresentFilter struct{ Attribute string }

func (PresentFilter) filter() {}

// SubstringKind identifies which positional alternative a
// SubstringComponent occupies within a SubstringsFilter.
type SubstringKind int

const (
	SubstringInitial SubstringKind = 0
	SubstringAny     SubstringKind = 1
	SubstringFinal   SubstringKind = 2
)

// SubstringComponent is one element of a SubstringsFilter's substrings
// SEQUENCE OF CHOICE, preserving both ordering and the multiplicity
// `any` allows.
type SubstringComponent struct {
	Kind  SubstringKind
	Value []byte
}

func substringLeg(kind SubstringKind, tagNumber uint64) ber.ChoiceLeg[SubstringComponent] {
	return ber.NewChoiceLeg[SubstringComponent, []byte](
		ber.OctetString.ContextSpecific(tagNumber),
		func(v []byte) SubstringComponent { return SubstringComponent{Kind: kind, Value: v} },
		func(c SubstringComponent) ([]byte, bool) {
			if c.Kind != kind {
				return nil, false
			}
			return c.Value, true
		},
	)
}

var substringComponentChoice = ber.Choice[SubstringComponent]{
	Legs: []ber.ChoiceLeg[SubstringComponent]{
		substringLeg(SubstringInitial, 0),
		substringLeg(SubstringAny, 1),
		substringLeg(SubstringFinal, 2),
	},
}

var substringsSeqType = ber.SequenceOf(substringComponentChoice)

// SubstringsFilter is `substrings [4] SubstringFilter`.
type SubstringsFilter struct {
	Attribute  string
	Substrings []SubstringComponent
}

func (SubstringsFilter) filter() {}

type substringsFilterCodec struct{}

func (substringsFilterCodec) WriteContent(w ber.Writer, v SubstringsFilter) error {
	if err := ber.OctetString.Write(w, []byte(v.Attribute)); err != nil {
		return err
	}
	return substringsSeqType.Write(w, v.Substrings)
}

func (substringsFilterCodec) ReadContent(r *ber.Reader) (SubstringsFilter, error) {
	var v SubstringsFilter
	attr, err := ber.OctetString.Read(r)
	if err != nil {
		return v, err
	}
	v.Attribute = string(attr)

	subs, err := substringsSeqType.Read(r)
	if err != nil {
		return v, err
	}
	v.Substrings = subs
	return v, nil
}

var substringsFilterType = ber.Type[SubstringsFilter]{ID: ber.SequenceIdentifier, Codec: substringsFilterCodec{}}.
	ContextSpecific(filterTagSubstrings)

// ExtensibleMatchFilter is `extensibleMatch [9] MatchingRuleAssertion`.
type ExtensibleMatchFilter struct {
	MatchingRule    string
	HasMatchingRule bool
	Type            string
	HasType         bool
	Value           []byte
	DNAttributes    bool
}

func (ExtensibleMatchFilter) filter() {}

const (
	matchingRuleAssertionTagMatchingRule = 1
	matchingRuleAssertionTagType         = 2
	matchingRuleAssertionTagMatchValue   = 3
	matchingRuleAssertionTagDNAttributes = 4
)

var (
	matchingRuleOptional = ber.Optional[[]byte]{Inner: ber.OctetString.ContextSpecific(matchingRuleAssertionTagMatchingRule)}
	matchTypeOptional    = ber.Optional[[]byte]{Inner: ber.OctetString.ContextSpecific(matchingRuleAssertionTagType)}
	matchValueType       = ber.OctetString.ContextSpecific(matchingRuleAssertionTagMatchValue)
	dnAttributesOptional = ber.Optional[bool]{Inner: ber.Boolean.ContextSpecific(matchingRuleAssertionTagDNAttributes)}
)

type extensibleMatchCodec struct{}

func (extensibleMatchCodec) WriteContent(w ber.Writer, v ExtensibleMatchFilter) error {
	if err := matchingRuleOptional.Write(w, []byte(v.MatchingRule), v.HasMatchingRule); err != nil {
		return err
	}
	if err := matchTypeOptional.Write(w, []byte(v.Type), v.HasType); err != nil {
		return err
	}
	if err := matchValueType.Write(w, v.Value); err != nil {
		return err
	}
	return dnAttributesOptional.Write(w, v.DNAttributes, v.DNAttributes)
}

func (extensibleMatchCodec) ReadContent(r *ber.Reader) (ExtensibleMatchFilter, error) {
	var v ExtensibleMatchFilter

	rule, hasRule, err := matchingRuleOptional.Read(r)
	if err != nil {
		return v, err
	}
	v.MatchingRule, v.HasMatchingRule = string(rule), hasRule

	typ, hasType, err := matchTypeOptional.Read(r)
	if err != nil {
		return v, err
	}
	v.Type, v.HasType = string(typ), hasType

	val, err := matchValueType.Read(r)
	if err != nil {
		return v, err
	}
	v.Value = val

	dnAttrs, present, err := dnAttributesOptional.Read(r)
	if err != nil {
		return v, err
	}
	if present {
		v.DNAttributes = dnAttrs
	}
	return v, nil
}

var extensibleMatchFilterType = ber.Type[ExtensibleMatchFilter]{ID: ber.SequenceIdentifier, Codec: extensibleMatchCodec{}}.
	ContextSpecific(filterTagExtensibleMatch)

// filterElem indirects SequenceOf/SetOf/choice-leg construction through
// the package-level filterChoice variable without copying it, so the
// mutually recursive and/or/not alternatives and the top-level Filter
// CHOICE can be declared as ordinary package vars with no init()
// ordering dance.
type filterElem struct{}

func (filterElem) Write(w ber.Writer, v Filter) error { return filterChoice.Write(w, v) }
func (filterElem) Read(r *ber.Reader) (Filter, error) { return filterChoice.Read(r) }

var andFilterType = ber.SetOf[Filter](filterElem{}).ContextSpecific(filterTagAnd)
var orFilterType = ber.SetOf[Filter](filterElem{}).ContextSpecific(filterTagOr)

type notFilterCodec struct{}

func (notFilterCodec) WriteContent(w ber.Writer, v Filter) error { return filterChoice.Write(w, v) }
func (notFilterCodec) ReadContent(r *ber.Reader) (Filter, error) { return filterChoice.Read(r) }

var notFilterType = ber.Type[Filter]{
	ID:    ber.Identifier{Class: ber.ClassContextSpecific, Encoding: ber.Constructed, TagNumber: filterTagNot},
	Codec: notFilterCodec{},
}

var filterChoice = ber.Choice[Filter]{
	Legs: []ber.ChoiceLeg[Filter]{
		ber.NewChoiceLeg[Filter, []Filter](andFilterType,
			func(v []Filter) Filter { return AndFilter{Filters: v} },
			func(f Filter) ([]Filter, bool) { a, ok := f.(AndFilter); return a.Filters, ok }),
		ber.NewChoiceLeg[Filter, []Filter](orFilterType,
			func(v []Filter) Filter { return OrFilter{Filters: v} },
			func(f Filter) ([]Filter, bool) { o, ok := f.(OrFilter); return o.Filters, ok }),
		ber.NewChoiceLeg[Filter, Filter](notFilterType,
			func(v Filter) Filter { return NotFilter{Filter: v} },
			func(f Filter) (Filter, bool) { n, ok := f.(NotFilter); return n.Filter, ok }),
		ber.NewChoiceLeg[Filter, AttributeValueAssertion](avaType.ContextSpecific(filterTagEqualityMatch),
			func(v AttributeValueAssertion) Filter { return EqualityMatchFilter{Attribute: v.Attribute, Value: v.Value} },
			func(f Filter) (AttributeValueAssertion, bool) {
				e, ok := f.(EqualityMatchFilter)
				return AttributeValueAssertion{Attribute: e.Attribute, Value: e.Value}, ok
			}),
		ber.NewChoiceLeg[Filter, SubstringsFilter](substringsFilterType,
			func(v SubstringsFilter) Filter { return v },
			func(f Filter) (SubstringsFilter, bool) { s, ok := f.(SubstringsFilter); return s, ok }),
		ber.NewChoiceLeg[Filter, AttributeValueAssertion](avaType.ContextSpecific(filterTagGreaterOrEqual),
			func(v AttributeValueAssertion) Filter { return GreaterOrEqualFilter{Attribute: v.Attribute, Value: v.Value} },
			func(f Filter) (AttributeValueAssertion, bool) {
				g, ok := f.(GreaterOrEqualFilter)
				return AttributeValueAssertion{Attribute: g.Attribute, Value: g.Value}, ok
			}),
		ber.NewChoiceLeg[Filter, AttributeValueAssertion](avaType.ContextSpecific(filterTagLessOrEqual),
			func(v AttributeValueAssertion) Filter { return LessOrEqualFilter{Attribute: v.Attribute, Value: v.Value} },
			func(f Filter) (AttributeValueAssertion, bool) {
				l, ok := f.(LessOrEqualFilter)
				return AttributeValueAssertion{Attribute: l.Attribute, Value: l.Value}, ok
			}),
		ber.NewChoiceLeg[Filter, []byte](ber.OctetString.ContextSpecific(filterTagPresent),
			func(v []byte) Filter { return PresentFilter{Attribute: string(v)} },
			func(f Filter) ([]byte, bool) { p, ok := f.(PresentFilter); return []byte(p.Attribute), ok }),
		ber.NewChoiceLeg[Filter, AttributeValueAssertion](avaType.ContextSpecific(filterTagApproxMatch),
			func(v AttributeValueAssertion) Filter { return ApproxMatchFilter{Attribute: v.Attribute, Value: v.Value} },
			func(f Filter) (AttributeValueAssertion, bool) {
				a, ok := f.(ApproxMatchFilter)
				return AttributeValueAssertion{Attribute: a.Attribute, Value: a.Value}, ok
			}),
		ber.NewChoiceLeg[Filter, ExtensibleMatchFilter](extensibleMatchFilterType,
			func(v ExtensibleMatchFilter) Filter { return v },
			func(f Filter) (ExtensibleMatchFilter, bool) { e, ok := f.(ExtensibleMatchFilter); return e, ok }),
	},
}
