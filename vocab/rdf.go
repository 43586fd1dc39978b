// Package vocab exports IRI strings for the vocabularies this parser's test
// suite and default behavior touch: RDF, RDFS, XSD, OWL, and the two
// namespaces that the XML layer itself reserves (xml:, xmlns:).
//
// Each constant is a bare string rather than a Term, the way the teacher's
// xsd subpackage exports rdf.IRI values directly — except here the values
// are plain strings so this package stays free of any dependency on the
// decoder package (constructing a Term, even an unchecked one, would
// require importing it, and the decoder package imports vocab for its two
// built-in datatypes; keeping vocab dependency-free avoids that cycle).
// Callers turn a constant into a Term with a Factory: factory.MustIRI(vocab.RDFType).
package vocab

// RDF is the namespace IRI itself (with trailing "#"), for building further
// terms not listed below (e.g. rdf:_1, rdf:_2, ... container membership
// predicates).
const RDF = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"

// The RDF vocabulary terms this parser's grammar names directly.
const (
	RDFDescription = RDF + "Description"
	// RDFType is named RDFType, not Type, because a bare Type reads as
	// a collision with Go's type keyword at every call site.
	RDFType      = RDF + "type"
	RDFProperty  = RDF + "Property"
	RDFStatement = RDF + "Statement"
	RDFSubject   = RDF + "subject"
	RDFPredicate = RDF + "predicate"
	RDFObject    = RDF + "object"
	RDFValue     = RDF + "value"
	RDFList      = RDF + "List"
	RDFFirst     = RDF + "first"
	RDFRest      = RDF + "rest"
	RDFNil       = RDF + "nil"
	RDFBag       = RDF + "Bag"
	RDFSeq       = RDF + "Seq"
	RDFAlt       = RDF + "Alt"

	// RDFLangString is rdf:langString, the implicit datatype of every
	// language-tagged literal.
	RDFLangString = RDF + "langString"
	// RDFHTML and RDFXMLLiteral are listed for completeness; this parser
	// does not produce either (rdf:parseType="Literal" is unimplemented).
	RDFHTML       = RDF + "HTML"
	RDFXMLLiteral = RDF + "XMLLiteral"
)
