// Package ldap implements the RFC 4511 LDAPv3 message dictionary as a
// set of declarative schema expressions over the ber package's Type,
// Sequence, Choice, and Optional combinators.
package ldap

import (
	"fmt"

	"github.com/oba-ldap/lber/ber"
)

// ResultCode enumerates the outcome of an LDAP operation, per RFC 4511
// §4.1.9. Wire form is identical to INTEGER but tag number 10
// (ENUMERATED); unknown values decode without error and surface as the
// raw integer.
type ResultCode int64

const (
	ResultSuccess                      ResultCode = 0
	ResultOperationsError              ResultCode = 1
	ResultProtocolError                ResultCode = 2
	ResultTimeLimitExceeded            ResultCode = 3
	ResultSizeLimitExceeded            ResultCode = 4
	ResultCompareFalse                 ResultCode = 5
	ResultCompareTrue                  ResultCode = 6
	ResultAuthMethodNotSupported       ResultCode = 7
	ResultStrongerAuthRequired         ResultCode = 8
	ResultReferral                     ResultCode = 10
	ResultAdminLimitExceeded           ResultCode = 11
	ResultUnavailableCriticalExtension ResultCode = 12
	ResultConfidentialityRequired      ResultCode = 13
	ResultSaslBindInProgress           ResultCode = 14
	ResultNoSuchAttribute              ResultCode = 16
	ResultUndefinedAttributeType       ResultCode = 17
	ResultInappropriateMatching        ResultCode = 18
	ResultConstraintViolation          ResultCode = 19
	ResultAttributeOrValueExists       ResultCode = 20
	ResultInvalidAttributeSyntax       ResultCode = 21
	ResultNoSuchObject                 ResultCode = 32
	ResultAliasProblem                 ResultCode = 33
	ResultInvalidDNSyntax              ResultCode = 34
	ResultAliasDereferencingProblem    ResultCode = 36
	ResultInappropriateAuthentication  ResultCode = 48
	ResultInvalidCredentials           ResultCode = 49
	ResultInsufficientAccessRights     ResultCode = 50
	ResultBusy                         ResultCode = 51
	ResultUnavailable                  ResultCode = 52
	ResultUnwillingToPerform           ResultCode = 53
	ResultLoopDetect                   ResultCode = 54
	ResultNamingViolation              ResultCode = 64
	ResultObjectClassViolation         ResultCode = 65
	ResultNotAllowedOnNonLeaf          ResultCode = 66
	ResultNotAllowedOnRDN              ResultCode = 67
	ResultEntryAlreadyExists           ResultCode = 68
	ResultObjectClassModsProhibited    ResultCode = 69
	ResultAffectsMultipleDSAs          ResultCode = 71
	ResultOther                        ResultCode = 80
)

func (r ResultCode) String() string {
	switch r {
	case ResultSuccess:
		return "Success"
	case ResultOperationsError:
		return "OperationsError"
	case ResultProtocolError:
		return "ProtocolError"
	case ResultTimeLimitExceeded:
		return "TimeLimitExceeded"
	case ResultSizeLimitExceeded:
		return "SizeLimitExceeded"
	case ResultCompareFalse:
		return "CompareFalse"
	case ResultCompareTrue:
		return "CompareTrue"
	case ResultAuthMethodNotSupported:
		return "AuthMethodNotSupported"
	case ResultStrongerAuthRequired:
		return "StrongerAuthRequired"
	case ResultReferral:
		return "Referral"
	case ResultAdminLimitExceeded:
		return "AdminLimitExceeded"
	case ResultUnavailableCriticalExtension:
		return "UnavailableCriticalExtension"
	case ResultConfidentialityRequired:
		return "ConfidentialityRequired"
	case ResultSaslBindInProgress:
		return "SaslBindInProgress"
	case ResultNoSuchAttribute:
		return "NoSuchAttribute"
	case ResultUndefinedAttributeType:
		return "UndefinedAttributeType"
	case ResultInappropriateMatching:
		return "InappropriateMatching"
	case ResultConstraintViolation:
		return "ConstraintViolation"
	case ResultAttributeOrValueExists:
		return "AttributeOrValueExists"
	case ResultInvalidAttributeSyntax:
		return "InvalidAttributeSyntax"
	case ResultNoSuchObject:
		return "NoSuchObject"
	case ResultAliasProblem:
		return "AliasProblem"
	case ResultInvalidDNSyntax:
		return "InvalidDNSyntax"
	case ResultAliasDereferencingProblem:
		return "AliasDereferencingProblem"
	case ResultInappropriateAuthentication:
		return "InappropriateAuthentication"
	case ResultInvalidCredentials:
		return "InvalidCredentials"
	case ResultInsufficientAccessRights:
		return "InsufficientAccessRights"
	case ResultBusy:
		return "Busy"
	case ResultUnavailable:
		return "Unavailable"
	case ResultUnwillingToPerform:
		return "UnwillingToPerform"
	case ResultLoopDetect:
		return "LoopDetect"
	case ResultNamingViolation:
		return "NamingViolation"
	case ResultObjectClassViolation:
		return "ObjectClassViolation"
	case ResultNotAllowedOnNonLeaf:
		return "NotAllowedOnNonLeaf"
	case ResultNotAllowedOnRDN:
		return "NotAllowedOnRDN"
	case ResultEntryAlreadyExists:
		return "EntryAlreadyExists"
	case ResultObjectClassModsProhibited:
		return "ObjectClassModsProhibited"
	case ResultAffectsMultipleDSAs:
		return "AffectsMultipleDSAs"
	case ResultOther:
		return "Other"
	default:
		return fmt.Sprintf("Unknown(%d)", int64(r))
	}
}

// LDAPResult is the common result structure shared by most LDAP
// responses, per RFC 4511 §4.1.9:
//
//	LDAPResult ::= SEQUENCE {
//	    resultCode         ENUMERATED { ... },
//	    matchedDN          LDAPDN,
//	    diagnosticMessage  LDAPString,
//	    referral           [3] Referral OPTIONAL
//	}
type LDAPResult struct {
	ResultCode        ResultCode
	MatchedDN         string
	DiagnosticMessage string
	Referral          []string
}

var referralType = ber.SequenceOf(ber.OctetString).ContextSpecific(contextTagReferral)

const contextTagReferral = 3

func writeLDAPResult(w ber.Writer, r LDAPResult) error {
	if err := ber.Enumerated.Write(w, int64(r.ResultCode)); err != nil {
		return err
	}
	if err := ber.OctetString.Write(w, []byte(r.MatchedDN)); err != nil {
		return err
	}
	if err := ber.OctetString.Write(w, []byte(r.DiagnosticMessage)); err != nil {
		return err
	}
	if len(r.Referral) > 0 {
		uris := make([][]byte, len(r.Referral))
		for i, u := range r.Referral {
			uris[i] = []byte(u)
		}
		if err := referralType.Write(w, uris); err != nil {
			return err
		}
	}
	return nil
}

func readLDAPResult(r *ber.Reader) (LDAPResult, error) {
	var result LDAPResult

	code, err := ber.Enumerated.Read(r)
	if err != nil {
		return result, err
	}
	result.ResultCode = ResultCode(code)

	dn, err := ber.OctetString.Read(r)
	if err != nil {
		return result, err
	}
	result.MatchedDN = string(dn)

	msg, err := ber.OctetString.Read(r)
	if err != nil {
		return result, err
	}
	result.DiagnosticMessage = string(msg)

	if referralType.PeekMatches(r) {
		uris, err := referralType.Read(r)
		if err != nil {
			return result, err
		}
		result.Referral = make([]string, len(uris))
		for i, u := range uris {
			result.Referral[i] = string(u)
		}
	}

	return result, nil
}

// NewSuccessResult builds the common success LDAPResult.
func NewSuccessResult() LDAPResult {
	return LDAPResult{ResultCode: ResultSuccess}
}

// NewErrorResult builds an LDAPResult for a failed operation.
func NewErrorResult(code ResultCode, message string) LDAPResult {
	return LDAPResult{ResultCode: code, DiagnosticMessage: message}
}
