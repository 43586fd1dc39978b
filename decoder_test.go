package rdfxml

import (
	"io"
	"sort"
	"strings"
	"testing"

	"github.com/knakk-successor/rdfxml/vocab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeAll(t *testing.T, doc string) []Triple {
	t.Helper()
	dec := NewDecoder(strings.NewReader(doc))
	ts, err := dec.DecodeAll()
	require.NoError(t, err)
	return ts
}

func tripleStrings(ts []Triple) []string {
	ss := make([]string, len(ts))
	for i, t := range ts {
		ss[i] = t.String()
	}
	sort.Strings(ss)
	return ss
}

func assertSameMultiset(t *testing.T, want, got []Triple) {
	t.Helper()
	assert.Equal(t, tripleStrings(want), tripleStrings(got))
}

const rdfxmlNS = `xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"`
const exNS = `xmlns:ex="http://example.org/stuff/1.0/"`
const dcNS = `xmlns:dc="http://purl.org/dc/elements/1.1/"`

func TestEmptyDocumentEmitsNoTriples(t *testing.T) {
	ts := decodeAll(t, `<rdf:RDF `+rdfxmlNS+`/>`)
	assert.Empty(t, ts)
}

// Scenario 1: typed datatype literal.
func TestScenarioTypedDatatypeLiteral(t *testing.T) {
	doc := `<rdf:RDF ` + rdfxmlNS + ` ` + exNS + `>
		<rdf:Description rdf:about="http://example.org/item01">
			<ex:size rdf:datatype="http://www.w3.org/2001/XMLSchema#int">123</ex:size>
		</rdf:Description>
	</rdf:RDF>`

	ts := decodeAll(t, doc)
	require.Len(t, ts, 1)

	f := NewFactory()
	want := Triple{
		Subject:   f.MustIRI("http://example.org/item01"),
		Predicate: f.MustIRI("http://example.org/stuff/1.0/size"),
		Object:    f.NewTypedLiteral("123", f.MustIRI("http://www.w3.org/2001/XMLSchema#int")),
	}
	assert.True(t, want.Subject.Equal(ts[0].Subject))
	assert.True(t, want.Predicate.Equal(ts[0].Predicate))
	assert.True(t, want.Object.Equal(ts[0].Object))
}

// Scenario 2: language inheritance from an enclosing node element's xml:lang.
func TestScenarioLanguageInheritance(t *testing.T) {
	doc := `<rdf:RDF ` + rdfxmlNS + ` ` + dcNS + `>
		<rdf:Description rdf:about="http://example.org/desk" xml:lang="de">
			<dc:title>Der Baum</dc:title>
		</rdf:Description>
	</rdf:RDF>`

	ts := decodeAll(t, doc)
	require.Len(t, ts, 1)

	f := NewFactory()
	lang, err := f.NewLangLiteral("Der Baum", "de")
	require.NoError(t, err)
	want := Triple{
		Subject:   f.MustIRI("http://example.org/desk"),
		Predicate: f.MustIRI("http://purl.org/dc/elements/1.1/title"),
		Object:    lang,
	}
	assert.True(t, want.Subject.Equal(ts[0].Subject))
	assert.True(t, want.Predicate.Equal(ts[0].Predicate))
	assert.True(t, want.Object.Equal(ts[0].Object))
}

// Scenario 3: typed node element.
func TestScenarioTypedNodeElement(t *testing.T) {
	doc := `<rdf:RDF ` + rdfxmlNS + ` ` + exNS + ` ` + dcNS + `>
		<ex:Document rdf:about="http://example.org/thing">
			<dc:title>A marvelous thing</dc:title>
		</ex:Document>
	</rdf:RDF>`

	ts := decodeAll(t, doc)
	require.Len(t, ts, 2)

	f := NewFactory()
	thing := f.MustIRI("http://example.org/thing")
	want := []Triple{
		{Subject: thing, Predicate: f.MustIRI(vocab.RDFType), Object: f.MustIRI("http://example.org/stuff/1.0/Document")},
		{Subject: thing, Predicate: f.MustIRI("http://purl.org/dc/elements/1.1/title"), Object: f.NewSimpleLiteral("A marvelous thing")},
	}
	assertSameMultiset(t, want, ts)
}

// Scenario 4: two rdf:nodeID="abc" node elements share a single blank node.
func TestScenarioUserBlankNodeSharing(t *testing.T) {
	doc := `<rdf:RDF ` + rdfxmlNS + ` ` + exNS + `>
		<rdf:Description rdf:nodeID="abc">
			<ex:prop1>1</ex:prop1>
		</rdf:Description>
		<rdf:Description rdf:nodeID="abc">
			<ex:prop2>2</ex:prop2>
		</rdf:Description>
	</rdf:RDF>`

	ts := decodeAll(t, doc)
	require.Len(t, ts, 2)
	assert.True(t, ts[0].Subject.Equal(ts[1].Subject))

	blank, ok := ts[0].Subject.(Blank)
	require.True(t, ok)
	assert.Equal(t, "oabc", blank.Label())
}

// Scenario 5: a nested node element as the object of a predicate.
func TestScenarioNestedResourceAsObject(t *testing.T) {
	doc := `<rdf:RDF ` + rdfxmlNS + ` ` + exNS + `>
		<rdf:Description rdf:about="http://www.w3.org/TR/REC-rdf-syntax/">
			<ex:editor>
				<rdf:Description ex:fullName="Dave Beckett">
					<ex:homePage rdf:resource="http://purl.org/net/dajobe/"/>
				</rdf:Description>
			</ex:editor>
		</rdf:Description>
	</rdf:RDF>`

	ts := decodeAll(t, doc)
	require.Len(t, ts, 3)

	f := NewFactory()
	doc1 := f.MustIRI("http://www.w3.org/TR/REC-rdf-syntax/")
	editor := f.MustIRI("http://example.org/stuff/1.0/editor")
	fullName := f.MustIRI("http://example.org/stuff/1.0/fullName")
	homePage := f.MustIRI("http://example.org/stuff/1.0/homePage")

	var editorTriple, fullNameTriple, homePageTriple Triple
	for _, tr := range ts {
		switch {
		case tr.Predicate.Equal(editor):
			editorTriple = tr
		case tr.Predicate.Equal(fullName):
			fullNameTriple = tr
		case tr.Predicate.Equal(homePage):
			homePageTriple = tr
		}
	}

	require.NotNil(t, editorTriple.Object)
	assert.True(t, editorTriple.Subject.Equal(doc1))
	blank, ok := editorTriple.Object.(Subject)
	require.True(t, ok)

	assert.True(t, fullNameTriple.Subject.Equal(blank))
	assert.True(t, fullNameTriple.Object.Equal(f.NewSimpleLiteral("Dave Beckett")))

	assert.True(t, homePageTriple.Subject.Equal(blank))
	assert.True(t, homePageTriple.Object.Equal(f.MustIRI("http://purl.org/net/dajobe/")))

	// No spurious rdf:type triple for the plain rdf:Description blank node.
	for _, tr := range ts {
		assert.False(t, tr.Predicate.Equal(f.MustIRI(vocab.RDFType)))
	}
}

// Scenario 6: RDF container shorthand (rdf:_1, rdf:_2, ...).
func TestScenarioRDFContainerShorthand(t *testing.T) {
	doc := `<rdf:RDF ` + rdfxmlNS + ` ` + exNS + `>
		<rdf:Seq rdf:about="http://example.org/favourite-fruit">
			<rdf:_1 rdf:resource="http://example.org/banana"/>
			<rdf:_2 rdf:resource="http://example.org/apple"/>
		</rdf:Seq>
	</rdf:RDF>`

	ts := decodeAll(t, doc)
	require.Len(t, ts, 3)

	f := NewFactory()
	fruit := f.MustIRI("http://example.org/favourite-fruit")
	want := []Triple{
		{Subject: fruit, Predicate: f.MustIRI(vocab.RDFType), Object: f.MustIRI("http://www.w3.org/1999/02/22-rdf-syntax-ns#Seq")},
		{Subject: fruit, Predicate: f.MustIRI("http://www.w3.org/1999/02/22-rdf-syntax-ns#_1"), Object: f.MustIRI("http://example.org/banana")},
		{Subject: fruit, Predicate: f.MustIRI("http://www.w3.org/1999/02/22-rdf-syntax-ns#_2"), Object: f.MustIRI("http://example.org/apple")},
	}
	assertSameMultiset(t, want, ts)
}

// Attribute order on an element must not affect the emitted triples.
func TestAttributeOrderIndependence(t *testing.T) {
	docA := `<rdf:RDF ` + rdfxmlNS + ` ` + exNS + `>
		<rdf:Description rdf:about="http://example.org/x" ex:a="1" ex:b="2"/>
	</rdf:RDF>`
	docB := `<rdf:RDF ` + rdfxmlNS + ` ` + exNS + `>
		<rdf:Description ex:b="2" rdf:about="http://example.org/x" ex:a="1"/>
	</rdf:RDF>`

	assertSameMultiset(t, decodeAll(t, docA), decodeAll(t, docB))
}

// Insignificant whitespace between property elements must not affect the
// emitted triples.
func TestInsignificantWhitespaceIndependence(t *testing.T) {
	docA := `<rdf:RDF ` + rdfxmlNS + ` ` + exNS + `><rdf:Description rdf:about="http://example.org/x"><ex:p>v</ex:p></rdf:Description></rdf:RDF>`
	docB := "<rdf:RDF " + rdfxmlNS + " " + exNS + ">\n  <rdf:Description rdf:about=\"http://example.org/x\">\n\n    <ex:p>v</ex:p>\n\n  </rdf:Description>\n</rdf:RDF>\n"

	assertSameMultiset(t, decodeAll(t, docA), decodeAll(t, docB))
}

func TestParentsStackStripingInvariant(t *testing.T) {
	doc := `<rdf:RDF ` + rdfxmlNS + ` ` + exNS + `>
		<rdf:Description rdf:about="http://example.org/x">
			<ex:editor>
				<rdf:Description rdf:about="http://example.org/y"/>
			</ex:editor>
		</rdf:Description>
	</rdf:RDF>`

	dec := NewDecoder(strings.NewReader(doc))
	for {
		_, err := dec.Decode()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		for i, entry := range dec.parents {
			if i%2 == 0 {
				_, ok := entry.term.(Subject)
				assert.True(t, ok, "parents[%d] must be a subject term", i)
				assert.Nil(t, entry.text)
			} else {
				_, ok := entry.term.(IRI)
				assert.True(t, ok, "parents[%d] must be a predicate IRI", i)
				assert.NotNil(t, entry.text)
			}
		}
	}
	assert.Empty(t, dec.parents)
}

func TestRDFDescriptionEmitsNoTypeTriple(t *testing.T) {
	doc := `<rdf:RDF ` + rdfxmlNS + `>
		<rdf:Description rdf:about="http://example.org/x"/>
	</rdf:RDF>`
	ts := decodeAll(t, doc)
	assert.Empty(t, ts)
}

func TestAbsentSubjectMarkingAttributeProducesFreshBlankNode(t *testing.T) {
	doc := `<rdf:RDF ` + rdfxmlNS + ` ` + exNS + `>
		<rdf:Description><ex:p>a</ex:p></rdf:Description>
		<rdf:Description><ex:p>b</ex:p></rdf:Description>
	</rdf:RDF>`
	ts := decodeAll(t, doc)
	require.Len(t, ts, 2)
	assert.False(t, ts[0].Subject.Equal(ts[1].Subject))
}

func TestEmptyPropertyElementWithNoAttributesIsEmptyStringLiteral(t *testing.T) {
	doc := `<rdf:RDF ` + rdfxmlNS + ` ` + exNS + `>
		<rdf:Description rdf:about="http://example.org/x"><ex:p/></rdf:Description>
	</rdf:RDF>`
	ts := decodeAll(t, doc)
	require.Len(t, ts, 1)
	lit, ok := ts[0].Object.(Literal)
	require.True(t, ok)
	assert.Equal(t, "", lit.Lexical())
	assert.Equal(t, LiteralSimple, lit.LiteralKind())
}

func TestNotImplementedFeaturesSurfaceTypedError(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{
			name: "rdf:ID",
			doc: `<rdf:RDF ` + rdfxmlNS + `><rdf:Description rdf:ID="x"/></rdf:RDF>`,
		},
		{
			name: "rdf:parseType",
			doc: `<rdf:RDF ` + rdfxmlNS + ` ` + exNS + `><rdf:Description rdf:about="http://example.org/x"><ex:p rdf:parseType="Resource"/></rdf:Description></rdf:RDF>`,
		},
		{
			name: "rdf:li",
			doc: `<rdf:RDF ` + rdfxmlNS + `><rdf:Bag rdf:about="http://example.org/x"><rdf:li rdf:resource="http://example.org/a"/></rdf:Bag></rdf:RDF>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dec := NewDecoder(strings.NewReader(tt.doc))
			_, err := dec.DecodeAll()
			require.Error(t, err)
			var e *Error
			require.ErrorAs(t, err, &e)
			assert.Equal(t, ErrNotImplemented, e.Kind)
		})
	}
}

func TestUnexpectedEOFWhenElementsStillOpen(t *testing.T) {
	dec := NewDecoder(strings.NewReader(`<rdf:RDF ` + rdfxmlNS + `><rdf:Description rdf:about="http://example.org/x">`))
	_, err := dec.DecodeAll()
	require.Error(t, err)
	var e *Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, ErrUnexpectedEOF, e.Kind)
}

func TestRDFTypeAsAttributeProducesIRIValuedTriple(t *testing.T) {
	doc := `<rdf:RDF ` + rdfxmlNS + ` ` + exNS + `>
		<rdf:Description rdf:about="http://example.org/x" rdf:type="http://example.org/stuff/1.0/Document"/>
	</rdf:RDF>`
	ts := decodeAll(t, doc)
	require.Len(t, ts, 1)
	_, ok := ts[0].Object.(IRI)
	assert.True(t, ok, "rdf:type attribute must produce an IRI-valued object, not a literal")
}
