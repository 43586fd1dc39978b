package rdfxml

import "io"

// Graph is the storage collaborator a sink writes triples into or removes
// them from. This package defines only the contract; an in-memory (or
// persistent) graph store is an external collaborator this package does
// not implement. Insert/Remove return whether the triple was new/present,
// mirroring a typical set-backed graph's de-duplicating insert.
type Graph interface {
	Insert(s Subject, p IRI, o Object) (bool, error)
	Remove(s Subject, p IRI, o Object) (bool, error)
}

// Inserter drains a stream of decoded triples into a Graph, counting how
// many were genuinely new versus already present.
type Inserter struct {
	g        Graph
	inserted int
	seen     int
}

// NewInserter returns a sink that inserts into g.
func NewInserter(g Graph) *Inserter { return &Inserter{g: g} }

// Insert inserts one triple, updating the sink's counters.
func (s *Inserter) Insert(t Triple) error {
	s.seen++
	isNew, err := s.g.Insert(t.Subject, t.Predicate, t.Object)
	if err != nil {
		return wrapError(ErrGraphError, err, "inserting %s", t)
	}
	if isNew {
		s.inserted++
	}
	return nil
}

// InsertAll drains every remaining triple from dec into the sink, stopping
// at the first error (Graph or decode) or at end of stream.
func (s *Inserter) InsertAll(dec *Decoder) (int, error) {
	for {
		t, err := dec.Decode()
		if err == io.EOF {
			return s.inserted, nil
		}
		if err != nil {
			return s.inserted, err
		}
		if err := s.Insert(t); err != nil {
			return s.inserted, err
		}
	}
}

// Inserted returns the count of triples that were new to the graph.
func (s *Inserter) Inserted() int { return s.inserted }

// Seen returns the total count of triples offered to the sink.
func (s *Inserter) Seen() int { return s.seen }

// Remover drains a stream of decoded triples, removing each from a Graph
// and counting how many were actually present to remove.
type Remover struct {
	g       Graph
	removed int
	seen    int
}

// NewRemover returns a sink that removes from g.
func NewRemover(g Graph) *Remover { return &Remover{g: g} }

// Remove removes one triple, updating the sink's counters.
func (s *Remover) Remove(t Triple) error {
	s.seen++
	wasPresent, err := s.g.Remove(t.Subject, t.Predicate, t.Object)
	if err != nil {
		return wrapError(ErrGraphError, err, "removing %s", t)
	}
	if wasPresent {
		s.removed++
	}
	return nil
}

// RemoveAll drains every remaining triple from dec, removing each from the
// sink's Graph.
func (s *Remover) RemoveAll(dec *Decoder) (int, error) {
	for {
		t, err := dec.Decode()
		if err == io.EOF {
			return s.removed, nil
		}
		if err != nil {
			return s.removed, err
		}
		if err := s.Remove(t); err != nil {
			return s.removed, err
		}
	}
}

// Removed returns the count of triples that were present and removed.
func (s *Remover) Removed() int { return s.removed }

// Seen returns the total count of triples offered to the sink.
func (s *Remover) Seen() int { return s.seen }
