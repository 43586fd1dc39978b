package vocab

// XML is the namespace Go's encoding/xml (and this parser's scope manager)
// binds the "xml" prefix to without requiring a document to declare it.
// Deliberately has no trailing "#": this must match encoding/xml's own
// internal constant exactly, since Go stamps it onto Attr.Name.Space for
// every xml:lang/xml:base attribute it hands back.
const XML = "http://www.w3.org/XML/1998/namespace"

// XMLNS is the full namespace-declaration URI, listed for completeness.
// encoding/xml does not use it directly: it marks a xmlns:prefix
// declaration attribute with the bare string "xmlns" as Name.Space (see
// isNamespaceDecl in the rdfxml package's state.go), not this URI.
const XMLNS = "http://www.w3.org/2000/xmlns/"
