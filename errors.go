package rdfxml

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorKind classifies the errors this package can return. Comparing Kind
// values lets callers branch on failure category without string matching,
// the same role spdf's error kinds play, but surfaced instead of panicking.
type ErrorKind int

const (
	// ErrInvalidIRI marks a string that should be an IRI but failed the
	// syntactic check (spec.md only requires a syntactic check, not full
	// RFC 3987 validation).
	ErrInvalidIRI ErrorKind = iota
	// ErrIsSuffixed marks a suffixed IRI passed where a bare namespace
	// (prefix-only) was required.
	ErrIsSuffixed
	// ErrMissingPrefix marks a qname without a colon, or an element/attribute
	// name with no namespace and no default namespace in scope.
	ErrMissingPrefix
	// ErrUnknownPrefix marks a prefix with no binding in the current scope.
	ErrUnknownPrefix
	// ErrReservedPrefix marks an attempt to bind the reserved "_" prefix.
	ErrReservedPrefix
	// ErrAmbiguousSubject marks more than one of rdf:about/rdf:ID/rdf:nodeID
	// on a single node element.
	ErrAmbiguousSubject
	// ErrAmbiguousObject marks more than one of rdf:resource/rdf:nodeID on a
	// single empty property element.
	ErrAmbiguousObject
	// ErrXMLSource marks an error reported by the underlying XML tokenizer.
	ErrXMLSource
	// ErrUnexpectedEOF marks a document that ended with elements still open.
	ErrUnexpectedEOF
	// ErrMalformedLanguageTag marks a xml:lang value that isn't a
	// syntactically valid BCP-47 tag.
	ErrMalformedLanguageTag
	// ErrGraphError wraps an error returned by a sink's Graph collaborator.
	ErrGraphError
	// ErrNotImplemented marks a RDF/XML feature this parser deliberately
	// does not support (see spec.md, Non-goals and Design Notes).
	ErrNotImplemented
	// ErrGrammar marks a striping-grammar violation (e.g. two consecutive
	// predicate elements with no intervening node element).
	ErrGrammar
	// ErrInternal marks a recovered invariant violation inside the decoder
	// itself; seeing one is a bug in this package, not in the input.
	ErrInternal
)

func (k ErrorKind) String() string {
	switch k {
	case ErrInvalidIRI:
		return "InvalidIRI"
	case ErrIsSuffixed:
		return "IsSuffixed"
	case ErrMissingPrefix:
		return "MissingPrefix"
	case ErrUnknownPrefix:
		return "UnknownPrefix"
	case ErrReservedPrefix:
		return "ReservedPrefix"
	case ErrAmbiguousSubject:
		return "AmbiguousSubject"
	case ErrAmbiguousObject:
		return "AmbiguousObject"
	case ErrXMLSource:
		return "XmlSource"
	case ErrUnexpectedEOF:
		return "UnexpectedEof"
	case ErrMalformedLanguageTag:
		return "MalformedLanguageTag"
	case ErrGraphError:
		return "GraphError"
	case ErrNotImplemented:
		return "NotImplemented"
	case ErrGrammar:
		return "Grammar"
	case ErrInternal:
		return "Internal"
	default:
		return "Unknown"
	}
}

// Error is the concrete error type returned throughout this package. Kind
// allows callers to switch on failure category; Cause, when set, is the
// wrapped collaborator error (an XML decoding error or a Graph error).
type Error struct {
	Kind  ErrorKind
	Msg   string
	Cause error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("rdfxml: %s: %s: %v", e.Kind, e.Msg, e.Cause)
	}
	return fmt.Sprintf("rdfxml: %s: %s", e.Kind, e.Msg)
}

// Unwrap exposes Cause to errors.Is/errors.As, including through any
// github.com/pkg/errors wrapping applied on top.
func (e *Error) Unwrap() error { return e.Cause }

func newError(kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func wrapError(kind ErrorKind, cause error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Cause: errors.WithStack(cause)}
}
