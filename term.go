package rdfxml

import (
	"fmt"
	"strings"
	"sync"

	"github.com/knakk-successor/rdfxml/vocab"
)

// uncheckedIRI builds an IRI from a string known to already be well-formed
// (a vocabulary constant), bypassing checkIRISyntax. Used only for the two
// built-in datatype IRIs this file references directly.
func uncheckedIRI(s string) IRI { return IRI{value: s} }

var (
	xsdStringIRI     = uncheckedIRI(vocab.XSDString)
	rdfLangStringIRI = uncheckedIRI(vocab.RDFLangString)
)

// TermKind discriminates the closed set of Term implementations. Unlike the
// teacher's rdf.go, which discriminates Literal sub-variants with an
// exported DataType/lang-string pair, we keep Term itself a sealed interface
// (IRI, Blank, Literal, Variable are the only implementations) so a type
// switch over Term is exhaustive by construction.
type TermKind int

const (
	KindIRI TermKind = iota
	KindBlank
	KindLiteral
	KindVariable
)

func (k TermKind) String() string {
	switch k {
	case KindIRI:
		return "IRI"
	case KindBlank:
		return "Blank"
	case KindLiteral:
		return "Literal"
	case KindVariable:
		return "Variable"
	default:
		return "Unknown"
	}
}

// Term is any RDF term this package produces: an IRI, a blank node, a
// literal, or (for API completeness, never produced by the decoder itself)
// a variable.
type Term interface {
	Kind() TermKind
	String() string
	Equal(Term) bool

	isTerm()
}

// Subject is a Term valid in subject position: an IRI or a Blank.
type Subject interface {
	Term
	isSubject()
}

// Object is a Term valid in object position: anything but a Variable.
type Object interface {
	Term
	isObject()
}

// IRI is an absolute or relative IRI reference term. This parser performs
// only a syntactic check (no RFC 3987 normalization, no resolution against
// a base IRI — XML Base is out of scope).
type IRI struct {
	value string
}

func (t IRI) Kind() TermKind       { return KindIRI }
func (t IRI) String() string       { return "<" + t.value + ">" }
func (t IRI) Value() string        { return t.value }
func (t IRI) isTerm()              {}
func (t IRI) isSubject()           {}
func (t IRI) isObject()            {}
func (t IRI) Equal(o Term) bool {
	other, ok := o.(IRI)
	return ok && other.value == t.value
}

// Blank is a blank node term. Per this parser's label-disjointness
// invariant, labels this parser generates itself are prefixed "n"
// (GenBlank); labels copied from a document's rdf:nodeID attribute are
// prefixed "o" (nodeID blanks), so the two sources can never collide.
type Blank struct {
	label string
}

func (t Blank) Kind() TermKind { return KindBlank }
func (t Blank) String() string { return "_:" + t.label }
func (t Blank) Label() string  { return t.label }
func (t Blank) isTerm()        {}
func (t Blank) isSubject()     {}
func (t Blank) isObject()      {}
func (t Blank) Equal(o Term) bool {
	other, ok := o.(Blank)
	return ok && other.label == t.label
}

// LiteralKind distinguishes the three RDF 1.1 literal forms.
type LiteralKind int

const (
	// LiteralSimple is an xsd:string-typed literal carrying no explicit
	// datatype and no language tag (RDF 1.1 folds "plain" literals into
	// this form).
	LiteralSimple LiteralKind = iota
	// LiteralTyped carries an explicit, non-language datatype IRI.
	LiteralTyped
	// LiteralLangTagged carries rdf:langString and a BCP-47-shaped tag.
	LiteralLangTagged
)

// Literal is a literal term: a lexical form paired with either a datatype
// IRI or a language tag (never both, per the RDF 1.1 data model).
type Literal struct {
	lexical  string
	datatype IRI
	lang     string
	kind     LiteralKind
}

func (t Literal) Kind() TermKind { return KindLiteral }
func (t Literal) isTerm()        {}
func (t Literal) isObject()      {}

func (t Literal) Lexical() string     { return t.lexical }
func (t Literal) LiteralKind() LiteralKind { return t.kind }

// Datatype returns the literal's datatype IRI. For a language-tagged
// literal this is always rdf:langString.
func (t Literal) Datatype() IRI { return t.datatype }

// Lang returns the literal's language tag, or "" if the literal isn't
// language-tagged.
func (t Literal) Lang() string { return t.lang }

func (t Literal) String() string {
	var b strings.Builder
	b.WriteByte('"')
	b.WriteString(escapeLiteral(t.lexical))
	b.WriteByte('"')
	switch t.kind {
	case LiteralLangTagged:
		b.WriteByte('@')
		b.WriteString(t.lang)
	case LiteralTyped:
		b.WriteString("^^")
		b.WriteString(t.datatype.String())
	}
	return b.String()
}

func (t Literal) Equal(o Term) bool {
	other, ok := o.(Literal)
	if !ok {
		return false
	}
	return t.lexical == other.lexical && t.kind == other.kind &&
		t.lang == other.lang && t.datatype.Equal(other.datatype)
}

// Variable is a named variable term. The decoder never produces one; it
// exists so Term's implementation set matches the generalized data model
// described for this package, and so downstream code that builds on Term
// (e.g. a query layer) has somewhere to put one.
type Variable struct {
	name string
}

func (t Variable) Kind() TermKind { return KindVariable }
func (t Variable) String() string { return "?" + t.name }
func (t Variable) Name() string   { return t.name }
func (t Variable) isTerm()        {}
func (t Variable) Equal(o Term) bool {
	other, ok := o.(Variable)
	return ok && other.name == t.name
}

// Triple is a single RDF statement.
type Triple struct {
	Subject   Subject
	Predicate IRI
	Object    Object
}

func (t Triple) String() string {
	return fmt.Sprintf("%s %s %s .", t.Subject, t.Predicate, t.Object)
}

// Factory mints and interns Term values. A Factory is safe for concurrent
// use: the intern table is guarded by a mutex, following the same
// sync.RWMutex-around-a-shared-map pattern the teacher's tree-walking
// cousin uses around its accumulated-triple map, applied here to the
// string table instead, since term construction (unlike a single Decoder)
// has no reason to be confined to one goroutine.
type Factory struct {
	mu      sync.RWMutex
	strings map[string]string

	bnodeMu sync.Mutex
	bnodeN  int
}

// NewFactory returns a ready-to-use term factory.
func NewFactory() *Factory {
	return &Factory{strings: make(map[string]string)}
}

func (f *Factory) intern(s string) string {
	f.mu.RLock()
	if v, ok := f.strings[s]; ok {
		f.mu.RUnlock()
		return v
	}
	f.mu.RUnlock()

	f.mu.Lock()
	defer f.mu.Unlock()
	if v, ok := f.strings[s]; ok {
		return v
	}
	f.strings[s] = s
	return s
}

// NewIRI validates and mints an IRI term.
func (f *Factory) NewIRI(value string) (IRI, error) {
	if value == "" {
		return IRI{}, newError(ErrInvalidIRI, "empty IRI")
	}
	if err := checkIRISyntax(value); err != nil {
		return IRI{}, err
	}
	return IRI{value: f.intern(value)}, nil
}

// MustIRI is NewIRI for constants known to be valid at compile time (used
// internally, and with vocab's constants); it panics on invalid input.
func (f *Factory) MustIRI(value string) IRI {
	t, err := f.NewIRI(value)
	if err != nil {
		panic(err)
	}
	return t
}

// NewBlank mints a blank node with an explicit label. Used for rdf:nodeID,
// where labels are prefixed "o" to stay disjoint from generated labels.
func (f *Factory) NewBlank(label string) (Blank, error) {
	if label == "" {
		return Blank{}, newError(ErrInvalidIRI, "empty blank node label")
	}
	return Blank{label: "o" + f.intern(label)}, nil
}

// NewGenBlank mints a fresh, parser-generated blank node, prefixed "n" to
// stay disjoint from NewBlank's "o"-prefixed, document-supplied labels.
func (f *Factory) NewGenBlank() Blank {
	f.bnodeMu.Lock()
	n := f.bnodeN
	f.bnodeN++
	f.bnodeMu.Unlock()
	return Blank{label: fmt.Sprintf("n%d", n)}
}

// NewSimpleLiteral mints an xsd:string-typed literal with no language tag.
func (f *Factory) NewSimpleLiteral(lexical string) Literal {
	return Literal{lexical: f.intern(lexical), datatype: xsdStringIRI, kind: LiteralSimple}
}

// NewTypedLiteral mints a literal with an explicit datatype.
func (f *Factory) NewTypedLiteral(lexical string, datatype IRI) Literal {
	if datatype.Equal(rdfLangStringIRI) {
		// A literal typed rdf:langString with no tag is nonsensical;
		// callers should use NewLangLiteral instead. Fall back to
		// treating it as a plain string rather than producing a term
		// that violates the data model.
		return f.NewSimpleLiteral(lexical)
	}
	return Literal{lexical: f.intern(lexical), datatype: datatype, kind: LiteralTyped}
}

// NewLangLiteral mints a language-tagged literal after validating tag is a
// syntactically well-formed (simplified) BCP-47 tag.
func (f *Factory) NewLangLiteral(lexical, tag string) (Literal, error) {
	norm, err := normalizeLangTag(tag)
	if err != nil {
		return Literal{}, err
	}
	return Literal{lexical: f.intern(lexical), datatype: rdfLangStringIRI, lang: norm, kind: LiteralLangTagged}, nil
}

// normalizeLangTag checks tag against a simplified BCP-47 grammar
// (primary subtag of 2-8 ALPHA, followed by any number of "-" + 1-8
// alphanumeric subtags) and lowercases it, matching the conventional
// case-insensitive comparison for language tags.
func normalizeLangTag(tag string) (string, error) {
	if tag == "" {
		return "", newError(ErrMalformedLanguageTag, "empty language tag")
	}
	subtags := strings.Split(tag, "-")
	for i, s := range subtags {
		if len(s) == 0 || len(s) > 8 {
			return "", newError(ErrMalformedLanguageTag, "%q: subtag %q has invalid length", tag, s)
		}
		min := 1
		if i == 0 {
			min = 2
		}
		if len(s) < min {
			return "", newError(ErrMalformedLanguageTag, "%q: primary subtag %q too short", tag, s)
		}
		for _, r := range s {
			if i == 0 && !isAlpha(r) {
				return "", newError(ErrMalformedLanguageTag, "%q: primary subtag must be alphabetic", tag)
			}
			if i != 0 && !isAlphaOrDigit(r) {
				return "", newError(ErrMalformedLanguageTag, "%q: subtag %q must be alphanumeric", tag, s)
			}
		}
	}
	return strings.ToLower(tag), nil
}

// checkIRISyntax performs the syntactic check spec'd for this parser: reject
// whitespace and the small set of characters never legal, unescaped, in an
// IRI reference. It does not attempt full RFC 3987 validation.
func checkIRISyntax(s string) error {
	for _, r := range s {
		if isWhitespace(r) {
			return newError(ErrInvalidIRI, "%q: contains whitespace", s)
		}
		for _, bad := range badIRIRunes {
			if r == bad {
				return newError(ErrInvalidIRI, "%q: contains illegal character %q", s, r)
			}
		}
	}
	return nil
}
