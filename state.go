package rdfxml

import (
	"encoding/xml"
	"io"

	"github.com/knakk-successor/rdfxml/vocab"
)

// isRDFWrapper reports whether tok is the rdf:RDF root wrapper element.
func isRDFWrapper(tok xml.StartElement) bool {
	return tok.Name.Space == vocab.RDF && tok.Name.Local == "RDF"
}

// isNamespaceDecl reports whether a is a xmlns or xmlns:prefix declaration
// attribute, which is handled by the scope manager rather than turned into
// an ordinary triple.
func isNamespaceDecl(a xml.Attr) bool {
	return a.Name.Space == "xmlns" || (a.Name.Space == "" && a.Name.Local == "xmlns")
}

// isEmptyElement peeks one token past tok's Start and reports whether it is
// the matching End with nothing in between — Go's encoding/xml normalizes
// a self-closing tag into exactly that Start/End pair, so this is how an
// "Empty" event (as spec'd) is recovered from a tokenizer that only knows
// Start and End. When true, the matching End has already been consumed and
// must not be dispatched again.
func (d *Decoder) isEmptyElement(tok xml.StartElement) (bool, error) {
	next, err := d.peekToken()
	if err != nil {
		if se, ok := err.(*xml.SyntaxError); err == io.EOF || (ok && se.Msg == "unexpected EOF") {
			return false, newError(ErrUnexpectedEOF, "element <%s> was never closed", tok.Name.Local)
		}
		return false, wrapError(ErrXMLSource, err, "reading XML token")
	}
	end, ok := next.(xml.EndElement)
	if ok && end.Name == tok.Name {
		d.havePending = false
		return true, nil
	}
	return false, nil
}

// applyDeclarations registers frame's local xmlns:*/xmlns/xml:lang
// declarations, read directly off tok's attribute list — the scope
// manager's own version of §4.3's "for each attribute whose key begins
// with xmlns:, register the suffix as a prefix" step.
func (d *Decoder) applyDeclarations(frame *scopeFrame, tok xml.StartElement) error {
	for _, a := range tok.Attr {
		switch {
		case a.Name.Space == "" && a.Name.Local == "xmlns":
			if err := frame.ns.SetDefault(a.Value); err != nil {
				return err
			}
		case a.Name.Space == "xmlns":
			if err := frame.ns.AddPrefix(a.Name.Local, a.Value); err != nil {
				return err
			}
		case a.Name.Space == vocab.XML && a.Name.Local == "lang":
			frame.setLang(a.Value)
		}
	}
	return nil
}

// handleStart processes a xml.StartElement, first resolving whether Go
// collapsed it from a self-closing tag (see isEmptyElement), then pushing
// this element's scope frame, then dispatching to the node or predicate
// handler determined by the current striping position.
func (d *Decoder) handleStart(tok xml.StartElement) error {
	empty, err := d.isEmptyElement(tok)
	if err != nil {
		return err
	}

	frame := d.scope.push()
	if err := d.applyDeclarations(frame, tok); err != nil {
		return err
	}
	d.scope = frame

	firstElement := !d.started
	if firstElement {
		d.started = true
		d.rootIsWrapper = isRDFWrapper(tok)
	}

	if firstElement && d.rootIsWrapper {
		d.trace("rdf:RDF wrapper opened")
		if empty {
			d.scope = d.scope.parent
			return nil
		}
		d.openCount++
		return nil
	}

	if empty {
		return d.handleEmptyElement(tok)
	}
	d.openCount++
	if d.expectingNode() {
		return d.nodeStart(tok)
	}
	return d.predicateStart(tok)
}

// handleEmptyElement implements the Empty transitions: a node-position
// empty element emits exactly what node_start followed immediately by
// node_end would (computed here as that literal sequence, since nothing
// can occur between the two for an element with no content); a
// predicate-position empty element is resolved directly from its
// rdf:resource/rdf:nodeID/rdf:datatype attributes and never joins parents.
func (d *Decoder) handleEmptyElement(tok xml.StartElement) error {
	if d.expectingNode() {
		if err := d.nodeStart(tok); err != nil {
			return err
		}
		return d.closeTop()
	}
	if err := d.predicateEmpty(tok); err != nil {
		return err
	}
	d.scope = d.scope.parent
	return nil
}

// handleEnd processes a xml.EndElement that was not already absorbed by
// isEmptyElement.
func (d *Decoder) handleEnd(tok xml.EndElement) error {
	if d.rootIsWrapper && d.openCount == 1 && len(d.parents) == 0 {
		d.scope = d.scope.parent
		d.openCount--
		d.trace("rdf:RDF wrapper closed")
		return nil
	}
	d.openCount--
	return d.closeTop()
}

// closeTop pops the innermost open (node or predicate) frame, emitting its
// pending literal first if it was a predicate with accumulated text.
func (d *Decoder) closeTop() error {
	if len(d.parents) == 0 {
		return newError(ErrInternal, "end element with no open parent")
	}
	top := d.parents[len(d.parents)-1]
	if top.text != nil {
		if err := d.emitPendingLiteral(top); err != nil {
			return err
		}
	}
	d.parents = d.parents[:len(d.parents)-1]
	d.scope = d.scope.parent
	return nil
}

// emitPendingLiteral turns a closing predicate's accumulated text into a
// literal triple, unless a nested node element already supplied the real
// object (top.text.hasChildElement), in which case there is nothing to do:
// any accumulated text was insignificant whitespace between tags.
func (d *Decoder) emitPendingLiteral(top frameEntry) error {
	if top.text.hasChildElement {
		return nil
	}
	if len(d.parents) < 2 {
		return newError(ErrInternal, "predicate element with no enclosing subject")
	}
	subj, ok := d.parents[len(d.parents)-2].term.(Subject)
	if !ok {
		return newError(ErrInternal, "enclosing parent is not a subject term")
	}
	pred, ok := top.term.(IRI)
	if !ok {
		return newError(ErrInternal, "predicate frame does not hold an IRI")
	}

	lexical := top.text.buf.String()
	var (
		lit Literal
		err error
	)
	switch {
	case top.text.datatype != nil:
		lit = d.factory.NewTypedLiteral(lexical, *top.text.datatype)
	default:
		if lang, ok := d.scope.currentLang(); ok && lang != "" {
			lit, err = d.factory.NewLangLiteral(lexical, lang)
			if err != nil {
				return err
			}
		} else {
			lit = d.factory.NewSimpleLiteral(lexical)
		}
	}
	d.emit(Triple{Subject: subj, Predicate: pred, Object: lit})
	return nil
}

// handleCharData accumulates character data into the innermost open
// predicate's text buffer. Text seen while a node element is the innermost
// open item (awaiting predicate children, not literal content) is
// insignificant whitespace between property elements and is dropped.
func (d *Decoder) handleCharData(cd xml.CharData) error {
	if len(d.parents) == 0 || len(d.parents)%2 != 0 {
		return nil
	}
	top := d.parents[len(d.parents)-1]
	top.text.buf.Write(cd)
	return nil
}

// resolveSubject implements the rdf:about/rdf:nodeID/rdf:ID resolution and
// ambiguity check for a node element.
func (d *Decoder) resolveSubject(tok xml.StartElement) (Subject, error) {
	var about, nodeID, id string
	var hasAbout, hasNodeID, hasID bool
	for _, a := range tok.Attr {
		if a.Name.Space != vocab.RDF {
			continue
		}
		switch a.Name.Local {
		case "about":
			about, hasAbout = a.Value, true
		case "nodeID":
			nodeID, hasNodeID = a.Value, true
		case "ID":
			id, hasID = a.Value, true
		}
	}
	count := 0
	for _, b := range []bool{hasAbout, hasNodeID, hasID} {
		if b {
			count++
		}
	}
	if count > 1 {
		return nil, newError(ErrAmbiguousSubject, "node element has more than one of rdf:about/rdf:ID/rdf:nodeID")
	}
	switch {
	case hasAbout:
		return d.factory.NewIRI(about)
	case hasNodeID:
		return d.factory.NewBlank(nodeID)
	case hasID:
		_ = id
		return nil, newError(ErrNotImplemented, "rdf:ID")
	default:
		return d.factory.NewGenBlank(), nil
	}
}

// emitAttributeTriples emits one triple per property attribute on a node
// element: rdf:type (IRI-valued, per the RDF/XML grammar's attribute form
// of a type assertion) and every other attribute except rdf:about, rdf:ID,
// rdf:nodeID, xml:* and namespace declarations (literal-valued; this
// includes any other rdf:* attribute).
func (d *Decoder) emitAttributeTriples(subj Subject, tok xml.StartElement) error {
	for _, a := range tok.Attr {
		if isNamespaceDecl(a) {
			continue
		}
		if a.Name.Space == vocab.XML {
			continue
		}
		if a.Name.Space == vocab.RDF {
			switch a.Name.Local {
			case "about", "ID", "nodeID":
				continue
			case "type":
				typeIRI, err := d.factory.NewIRI(a.Value)
				if err != nil {
					return err
				}
				d.emit(Triple{Subject: subj, Predicate: d.rdfType(), Object: typeIRI})
				continue
			}
		}
		attrIRI, err := d.scope.ns.ExpandName(d.factory, a.Name.Space, a.Name.Local)
		if err != nil {
			return err
		}
		d.emit(Triple{Subject: subj, Predicate: attrIRI, Object: d.factory.NewSimpleLiteral(a.Value)})
	}
	return nil
}

// nodeStart implements the ExpectingNode transition: resolve the subject,
// emit its type triple (unless the element is rdf:Description), emit one
// triple per remaining property attribute, emit the link from the
// enclosing predicate (if any) to this subject, then push the subject.
func (d *Decoder) nodeStart(tok xml.StartElement) error {
	subj, err := d.resolveSubject(tok)
	if err != nil {
		return err
	}
	ty, err := d.scope.ns.ExpandName(d.factory, tok.Name.Space, tok.Name.Local)
	if err != nil {
		return err
	}
	if ty.Value() != vocab.RDFDescription {
		d.emit(Triple{Subject: subj, Predicate: d.rdfType(), Object: ty})
	}
	if err := d.emitAttributeTriples(subj, tok); err != nil {
		return err
	}

	if len(d.parents) > 0 {
		top := d.parents[len(d.parents)-1]
		grandparent, ok := d.parents[len(d.parents)-2].term.(Subject)
		if !ok {
			return newError(ErrInternal, "enclosing parent is not a subject term")
		}
		pred, ok := top.term.(IRI)
		if !ok {
			return newError(ErrInternal, "predicate frame does not hold an IRI")
		}
		d.emit(Triple{Subject: grandparent, Predicate: pred, Object: subj})
		top.text.hasChildElement = true
	}

	d.parents = append(d.parents, frameEntry{term: subj})
	d.trace("node start %s", subj)
	return nil
}

// predicateStart implements the ExpectingPredicate, non-empty transition:
// resolve the predicate IRI, note any rdf:datatype for the eventual
// literal, and push a fresh text accumulator. Every other attribute
// (property-attribute shorthand on a predicate element, producing a fresh
// blank object) is left unimplemented and silently ignored here, per this
// parser's scope.
func (d *Decoder) predicateStart(tok xml.StartElement) error {
	if tok.Name.Space == vocab.RDF && tok.Name.Local == "li" {
		return newError(ErrNotImplemented, "rdf:li")
	}
	pred, err := d.scope.ns.ExpandName(d.factory, tok.Name.Space, tok.Name.Local)
	if err != nil {
		return err
	}

	text := &textAccum{}
	for _, a := range tok.Attr {
		if isNamespaceDecl(a) {
			continue
		}
		if a.Name.Space != vocab.RDF {
			continue
		}
		switch a.Name.Local {
		case "parseType":
			return newError(ErrNotImplemented, "rdf:parseType=%q", a.Value)
		case "datatype":
			dt, err := d.factory.NewIRI(a.Value)
			if err != nil {
				return err
			}
			text.datatype = &dt
		}
	}

	d.trace("predicate start %s", pred)
	d.parents = append(d.parents, frameEntry{term: pred, text: text})
	return nil
}

// predicateEmpty implements the ExpectingPredicate, Empty transition: the
// object comes from rdf:resource or rdf:nodeID (mutually exclusive), or
// from an empty literal (governed by rdf:datatype/xml:lang as usual) when
// neither is present. This element never joins parents: it has no content
// for a later End to close.
func (d *Decoder) predicateEmpty(tok xml.StartElement) error {
	if tok.Name.Space == vocab.RDF && tok.Name.Local == "li" {
		return newError(ErrNotImplemented, "rdf:li")
	}
	pred, err := d.scope.ns.ExpandName(d.factory, tok.Name.Space, tok.Name.Local)
	if err != nil {
		return err
	}
	if len(d.parents) == 0 {
		return newError(ErrInternal, "predicate element with no enclosing subject")
	}
	subj, ok := d.parents[len(d.parents)-1].term.(Subject)
	if !ok {
		return newError(ErrInternal, "enclosing parent is not a subject term")
	}

	var resource, nodeID, datatype string
	var hasResource, hasNodeID, hasDatatype bool
	for _, a := range tok.Attr {
		if isNamespaceDecl(a) {
			continue
		}
		if a.Name.Space != vocab.RDF {
			continue
		}
		switch a.Name.Local {
		case "parseType":
			return newError(ErrNotImplemented, "rdf:parseType=%q", a.Value)
		case "resource":
			resource, hasResource = a.Value, true
		case "nodeID":
			nodeID, hasNodeID = a.Value, true
		case "datatype":
			datatype, hasDatatype = a.Value, true
		}
	}
	if hasResource && hasNodeID {
		return newError(ErrAmbiguousObject, "property element has both rdf:resource and rdf:nodeID")
	}

	var obj Object
	switch {
	case hasResource:
		iri, err := d.factory.NewIRI(resource)
		if err != nil {
			return err
		}
		obj = iri
	case hasNodeID:
		blank, err := d.factory.NewBlank(nodeID)
		if err != nil {
			return err
		}
		obj = blank
	case hasDatatype:
		dt, err := d.factory.NewIRI(datatype)
		if err != nil {
			return err
		}
		obj = d.factory.NewTypedLiteral("", dt)
	default:
		if lang, ok := d.scope.currentLang(); ok && lang != "" {
			lit, err := d.factory.NewLangLiteral("", lang)
			if err != nil {
				return err
			}
			obj = lit
		} else {
			obj = d.factory.NewSimpleLiteral("")
		}
	}

	d.trace("predicate empty %s", pred)
	d.emit(Triple{Subject: subj, Predicate: pred, Object: obj})
	return nil
}
