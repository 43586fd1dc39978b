package rdfxml

// Option configures a Decoder at construction time, following the
// functional-options shape used elsewhere in the pack (rather than the
// teacher's TripleDecoder, which is configured post-construction via
// exported fields like Base). RDF/XML has no analogous "make the next
// Decoder decode differently" construction point, so options are applied
// once, in NewDecoder.
type Option func(*Decoder)

// WithVerbose turns on glog-style verbose tracing of state-machine
// transitions. It costs nothing when off and never changes parse results;
// it exists purely for diagnosing a document that parses "wrong".
func WithVerbose(v bool) Option {
	return func(d *Decoder) { d.verbose = v }
}
