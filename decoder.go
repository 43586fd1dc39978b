package rdfxml

import (
	"encoding/xml"
	"io"
	"runtime"
	"strings"

	"github.com/knakk-successor/rdfxml/vocab"
)

// textAccum buffers a predicate element's potential literal content between
// its Start and End events: the accumulated character data, the datatype
// named by a rdf:datatype attribute (if any), and whether a nested node
// element was seen instead of (or alongside) character data — in which
// case the accumulated text, if any, is insignificant whitespace and no
// literal triple should be emitted at End (the nested node's own Start
// already emitted the real object triple).
type textAccum struct {
	buf             strings.Builder
	datatype        *IRI
	hasChildElement bool
}

// frameEntry is one slot of the parents stack. Entries at even indices
// (starting at 0) hold a Subject; entries at odd indices hold an IRI
// predicate and the textAccum collecting that predicate's potential
// literal content. Keeping text per-entry (rather than one field shared
// across the whole Decoder) is what lets a predicate element's own text
// survive correctly across however many nested node/predicate elements
// open and close underneath it before it itself closes.
type frameEntry struct {
	term Term
	text *textAccum
}

// Decoder reads RDF/XML from an io.Reader and exposes the triples it
// contains one at a time through Decode, the way the teacher's
// TripleDecoder exposes N-Triples/Turtle triples — except this Decoder
// only ever speaks RDF/XML. Like the teacher's decoder, it is not safe for
// concurrent use by multiple goroutines.
type Decoder struct {
	xd      *xml.Decoder
	factory *Factory

	pending     xml.Token
	havePending bool

	scope   *scopeFrame
	parents []frameEntry // striped subject/predicate stack

	started       bool // has the document's opening element been seen yet
	rootIsWrapper bool // did the opening element turn out to be rdf:RDF
	openCount     int  // currently open elements, including the rdf:RDF wrapper if present

	rdfTypeIRI IRI

	queue []Triple

	verbose bool
}

// NewDecoder returns a Decoder that reads RDF/XML from r.
func NewDecoder(r io.Reader, opts ...Option) *Decoder {
	f := NewFactory()
	d := &Decoder{
		xd:         xml.NewDecoder(r),
		factory:    f,
		scope:      newRootScope(),
		rdfTypeIRI: f.MustIRI(vocab.RDFType),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// rdfType returns the (cached) rdf:type predicate IRI.
func (d *Decoder) rdfType() IRI { return d.rdfTypeIRI }

// Factory returns the term factory backing this Decoder's terms. Useful
// when a caller wants to mint additional terms (e.g. to query a Graph sink)
// that intern against the same string table.
func (d *Decoder) Factory() *Factory { return d.factory }

// nextToken returns the next XML token, consuming the one-token pushback
// buffer first if peekToken populated it.
func (d *Decoder) nextToken() (xml.Token, error) {
	if d.havePending {
		d.havePending = false
		return d.pending, nil
	}
	return d.xd.Token()
}

// peekToken returns, without consuming, the next XML token. A second call
// with no intervening nextToken returns the same token. xml.CopyToken
// detaches the token from the decoder's internal buffer, which Token()
// documents as being reused across calls.
func (d *Decoder) peekToken() (xml.Token, error) {
	if d.havePending {
		return d.pending, nil
	}
	tok, err := d.xd.Token()
	if err != nil {
		return nil, err
	}
	tok = xml.CopyToken(tok)
	d.pending = tok
	d.havePending = true
	return tok, nil
}

// Decode returns the next Triple in the document, or io.EOF once the
// document is exhausted. It drains the queue built up from prior XML
// events first; once that is empty it consumes and dispatches XML tokens,
// which may enqueue any number of triples (typically zero or one), until
// either the queue is non-empty or the source is exhausted. This is a
// pragmatic widening of a strict one-event-per-call contract (bounded work,
// not unbounded look-ahead: a single Decode call never reads past the
// tokens needed to either produce a triple or hit EOF), matching the
// teacher's own Decode loop shape.
func (d *Decoder) Decode() (t Triple, err error) {
	defer d.recover(&err)
	for len(d.queue) == 0 {
		tok, terr := d.nextToken()
		if terr != nil {
			if terr == io.EOF {
				if d.openCount != 0 {
					return Triple{}, newError(ErrUnexpectedEOF, "document ended with %d element(s) still open", d.openCount)
				}
				return Triple{}, io.EOF
			}
			if se, ok := terr.(*xml.SyntaxError); ok && se.Msg == "unexpected EOF" {
				return Triple{}, newError(ErrUnexpectedEOF, "document ended with %d element(s) still open", d.openCount)
			}
			return Triple{}, wrapError(ErrXMLSource, terr, "reading XML token")
		}
		if derr := d.dispatch(tok); derr != nil {
			return Triple{}, derr
		}
	}
	t = d.queue[0]
	d.queue = d.queue[1:]
	return t, nil
}

// DecodeAll decodes and returns every remaining Triple in the document.
func (d *Decoder) DecodeAll() ([]Triple, error) {
	var ts []Triple
	for {
		t, err := d.Decode()
		if err == io.EOF {
			return ts, nil
		}
		if err != nil {
			return ts, err
		}
		ts = append(ts, t)
	}
}

// emit enqueues a completed triple.
func (d *Decoder) emit(t Triple) {
	d.trace("emit %s", t)
	d.queue = append(d.queue, t)
}

// recover converts an internal invariant-violation panic into an
// *Error{Kind: ErrInternal}, the same role the teacher's
// (*TripleDecoder).recover plays for its own panicking errorf calls, except
// translated into this package's typed error instead of a bare error.
func (d *Decoder) recover(errp *error) {
	e := recover()
	if e == nil {
		return
	}
	if _, ok := e.(runtime.Error); ok {
		panic(e)
	}
	if cause, ok := e.(error); ok {
		*errp = &Error{Kind: ErrInternal, Msg: "internal invariant violated", Cause: cause}
		return
	}
	*errp = newError(ErrInternal, "internal invariant violated: %v", e)
}

func (d *Decoder) dispatch(tok xml.Token) error {
	switch t := tok.(type) {
	case xml.StartElement:
		return d.handleStart(t)
	case xml.EndElement:
		return d.handleEnd(t)
	case xml.CharData:
		return d.handleCharData(t)
	default:
		return nil
	}
}

// expectingNode reports whether the next element to be opened, at the
// current nesting depth, is in node (subject) position. This is computed
// from parents' length rather than tracked as a separate mutable flag:
// parents strictly alternates subject/predicate entries starting with a
// subject, so its parity always tells the truth about the next slot, with
// no possibility of drifting out of sync the way a hand-maintained boolean
// can on an element that doesn't go through the usual push/pop pair (an
// empty element, in particular).
func (d *Decoder) expectingNode() bool {
	return len(d.parents)%2 == 0
}
