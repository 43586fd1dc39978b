package rdfxml

import (
	"testing"

	"github.com/knakk-successor/rdfxml/vocab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactoryNewIRI(t *testing.T) {
	f := NewFactory()

	tests := []struct {
		input   string
		wantErr ErrorKind
	}{
		{"http://example.org/thing", -1},
		{"", ErrInvalidIRI},
		{"http://example.org/ space", ErrInvalidIRI},
		{"http://example.org/<angle>", ErrInvalidIRI},
	}

	for _, tt := range tests {
		iri, err := f.NewIRI(tt.input)
		if tt.wantErr == -1 {
			require.NoError(t, err)
			assert.Equal(t, tt.input, iri.Value())
			continue
		}
		require.Error(t, err)
		var e *Error
		require.ErrorAs(t, err, &e)
		assert.Equal(t, tt.wantErr, e.Kind)
	}
}

func TestFactoryBlankLabelsAreDisjoint(t *testing.T) {
	f := NewFactory()

	gen1 := f.NewGenBlank()
	gen2 := f.NewGenBlank()
	assert.False(t, gen1.Equal(gen2))

	named, err := f.NewBlank("b0")
	require.NoError(t, err)

	// A document-supplied label "b0" must never collide with a
	// generated label that happens to print the same digits.
	assert.NotEqual(t, gen1.Label(), named.Label())
	assert.Equal(t, "o", named.Label()[:1])
}

func TestFactoryLiteralConstructors(t *testing.T) {
	f := NewFactory()

	simple := f.NewSimpleLiteral("hello")
	assert.Equal(t, LiteralSimple, simple.LiteralKind())
	assert.Equal(t, vocab.XSDString, simple.Datatype().Value())

	typed := f.NewTypedLiteral("42", f.MustIRI(vocab.XSDInteger))
	assert.Equal(t, LiteralTyped, typed.LiteralKind())

	lang, err := f.NewLangLiteral("bonjour", "fr-FR")
	require.NoError(t, err)
	assert.Equal(t, LiteralLangTagged, lang.LiteralKind())
	assert.Equal(t, "fr-fr", lang.Lang())

	_, err = f.NewLangLiteral("x", "")
	require.Error(t, err)
	var e *Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, ErrMalformedLanguageTag, e.Kind)
}

func TestTypedRDFLangStringFallsBackToSimple(t *testing.T) {
	f := NewFactory()
	lit := f.NewTypedLiteral("x", f.MustIRI(vocab.RDFLangString))
	assert.Equal(t, LiteralSimple, lit.LiteralKind())
}

func TestTermEquality(t *testing.T) {
	f := NewFactory()
	a := f.MustIRI("http://example.org/a")
	b := f.MustIRI("http://example.org/a")
	c := f.MustIRI("http://example.org/b")

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(Blank{label: "n0"}))
}
