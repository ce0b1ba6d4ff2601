// Package ber implements a schema-driven ASN.1 BER codec: Identifier
// and Length primitives, plus a small set of composable Type
// combinators (Boolean, Integer, OctetString, Null, Enumerated,
// Sequence, SequenceOf, SetOf, Optional, Choice, Explicit) that each
// know how to both write and read their own wire form.
//
// A Type[T] is a value, not a class: tagging it with ContextSpecific or
// Application produces a new Type[T] sharing the same content Codec, so
// the same schema expression drives both directions of a round trip.
package ber
