package vocab

// OWL is the Web Ontology Language namespace IRI. Listed for completeness
// (documents decoded by this parser commonly mix rdf:/rdfs:/owl: elements
// and attributes in node content); this parser has no owl:-specific
// grammar of its own.
const OWL = "http://www.w3.org/2002/07/owl#"

const (
	OWLClass              = OWL + "Class"
	OWLObjectProperty     = OWL + "ObjectProperty"
	OWLDatatypeProperty    = OWL + "DatatypeProperty"
	OWLOntology           = OWL + "Ontology"
	OWLSameAs             = OWL + "sameAs"
	OWLEquivalentClass    = OWL + "equivalentClass"
	OWLEquivalentProperty = OWL + "equivalentProperty"
	OWLInverseOf          = OWL + "inverseOf"
	OWLThing              = OWL + "Thing"
)
