package rdfxml

import (
	"testing"

	"github.com/knakk-successor/rdfxml/vocab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrefixMappingSeedsXMLPrefix(t *testing.T) {
	p := NewPrefixMapping()
	ns, ok := p.Resolve("xml")
	require.True(t, ok)
	assert.Equal(t, vocab.XML, ns.String())
}

func TestPrefixMappingChildOverlay(t *testing.T) {
	f := NewFactory()
	root := NewPrefixMapping()
	require.NoError(t, root.AddPrefix("ex", "http://example.org/"))

	child := root.Child()
	require.NoError(t, child.AddPrefix("foo", "http://foo.org/"))

	// The parent binding is visible through the child...
	iri, err := child.ExpandCURIE(f, "ex", "thing")
	require.NoError(t, err)
	assert.Equal(t, "http://example.org/thing", iri.Value())

	// ...but a child-local binding never leaks back up to the parent.
	_, ok := root.Resolve("foo")
	assert.False(t, ok)
}

func TestPrefixMappingReservedUnderscorePrefix(t *testing.T) {
	p := NewPrefixMapping()
	err := p.AddPrefix("_", "http://example.org/")
	require.Error(t, err)
	var e *Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, ErrReservedPrefix, e.Kind)
}

func TestExpandCURIEStringNoPrefix(t *testing.T) {
	f := NewFactory()
	p := NewPrefixMapping()
	_, err := p.ExpandCURIEString(f, "noColonHere")
	require.Error(t, err)
	var e *Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, ErrMissingPrefix, e.Kind)
}

func TestExpandNameDefaultNamespace(t *testing.T) {
	f := NewFactory()
	p := NewPrefixMapping()

	_, err := p.ExpandName(f, "", "title")
	require.Error(t, err)

	require.NoError(t, p.SetDefault("http://example.org/"))
	iri, err := p.ExpandName(f, "", "title")
	require.NoError(t, err)
	assert.Equal(t, "http://example.org/title", iri.Value())
}

func TestExpandNameResolvedNamespace(t *testing.T) {
	f := NewFactory()
	p := NewPrefixMapping()

	// encoding/xml hands back an already-resolved namespace IRI as Space;
	// ExpandName must use it directly rather than treating it as a prefix.
	iri, err := p.ExpandName(f, vocab.RDF, "type")
	require.NoError(t, err)
	assert.Equal(t, vocab.RDFType, iri.Value())
}

func TestUnknownPrefix(t *testing.T) {
	f := NewFactory()
	p := NewPrefixMapping()
	_, err := p.ExpandCURIE(f, "nope", "thing")
	require.Error(t, err)
	var e *Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, ErrUnknownPrefix, e.Kind)
}
