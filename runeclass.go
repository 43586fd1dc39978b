package rdfxml

import "strings"

// badIRIRunes lists characters never legal, unescaped, inside an IRI
// reference — the same table the teacher's rune.go keeps for Turtle/
// N-Triples IRI checking, trimmed to the subset that still matters once
// this parser only has to validate IRIs, not tokenize them.
var badIRIRunes = [...]rune{' ', '<', '>', '"', '{', '}', '|', '^', '`'}

func isAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isAlphaOrDigit(r rune) bool {
	return isAlpha(r) || isDigit(r)
}

func isWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\r', '\n':
		return true
	default:
		return false
	}
}

// escapeLiteral escapes a literal's lexical form for the canonical
// N-Triples rendering used by String() (and so by the test suite's
// string-based triple comparisons), lifted from the teacher's rune.go.
func escapeLiteral(l string) string {
	var b strings.Builder
	for _, r := range l {
		switch r {
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
