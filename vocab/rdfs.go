package vocab

// RDFS is the RDF Schema namespace IRI.
const RDFS = "http://www.w3.org/2000/01/rdf-schema#"

const (
	RDFSResource    = RDFS + "Resource"
	RDFSClass       = RDFS + "Class"
	RDFSLiteral     = RDFS + "Literal"
	RDFSDatatype    = RDFS + "Datatype"
	RDFSSubClassOf  = RDFS + "subClassOf"
	RDFSSubPropertyOf = RDFS + "subPropertyOf"
	RDFSDomain      = RDFS + "domain"
	RDFSRange       = RDFS + "range"
	RDFSLabel       = RDFS + "label"
	RDFSComment     = RDFS + "comment"
	RDFSSeeAlso     = RDFS + "seeAlso"
	RDFSIsDefinedBy = RDFS + "isDefinedBy"
	RDFSMember      = RDFS + "member"
	RDFSContainer   = RDFS + "Container"
)
