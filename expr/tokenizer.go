package expr

import (
	"fmt"
	"strings"
)

var keywords = [...]struct {
	word string
	typ  TokenType
}{
	{"AND", TAnd},
	{"OR", TOr},
	{"NOT", TNot},
}

// isBoundary reports whether b can delimit a keyword: whitespace, a paren,
// or (via the caller's bounds check) the start/end of the string.
func isBoundary(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '(', ')':
		return true
	default:
		return false
	}
}

func matchKeyword(s string, i int) (TokenType, int, bool) {
	for _, kw := range keywords {
		l := len(kw.word)
		if i+l > len(s) {
			continue
		}
		if !strings.EqualFold(s[i:i+l], kw.word) {
			continue
		}
		if i > 0 && !isBoundary(s[i-1]) {
			continue
		}
		if i+l < len(s) && !isBoundary(s[i+l]) {
			continue
		}
		return kw.typ, l, true
	}
	return 0, 0, false
}

// Tokenize splits a guard string into the token sequence described in
// spec §4.1. Parentheses nested inside an atom (e.g. the value side of
// `L_T1 <= (PU1_LowLevel + Htol)`) are tracked by depth and never close the
// atom; only a depth-zero AND/OR/NOT keyword or an unmatched ')' does.
func Tokenize(s string) ([]Token, error) {
	var toks []Token
	var atom strings.Builder
	atomStart := -1
	atomDepth := 0

	flush := func(endPos int) {
		if atom.Len() == 0 {
			return
		}
		text := strings.TrimSpace(atom.String())
		atom.Reset()
		if text == "" {
			atomStart = -1
			return
		}
		toks = append(toks, Token{Type: TAtom, Text: text, Pos: atomStart})
		atomStart = -1
	}

	n := len(s)
	for i := 0; i < n; {
		c := s[i]
		switch {
		case c == '(' && atomDepth == 0 && strings.TrimSpace(atom.String()) == "":
			toks = append(toks, Token{Type: TLParen, Pos: i})
			atom.Reset()
			atomStart = -1
			i++

		case c == '(':
			if atomStart == -1 {
				atomStart = i
			}
			atomDepth++
			atom.WriteByte(c)
			i++

		case c == ')' && atomDepth > 0:
			atomDepth--
			atom.WriteByte(c)
			i++

		case c == ')':
			flush(i)
			toks = append(toks, Token{Type: TRParen, Pos: i})
			i++

		case atomDepth == 0:
			if typ, l, ok := matchKeyword(s, i); ok {
				flush(i)
				toks = append(toks, Token{Type: typ, Pos: i})
				i += l
				continue
			}
			if c == ' ' || c == '\t' || c == '\n' || c == '\r' {
				atom.WriteByte(c)
				i++
				continue
			}
			if atomStart == -1 {
				atomStart = i
			}
			atom.WriteByte(c)
			i++

		default:
			atom.WriteByte(c)
			i++
		}
	}
	if atomDepth != 0 {
		return nil, fmt.Errorf("%w: unterminated atom at %d: %q", ErrTokenize, atomStart, s)
	}
	flush(n)
	return toks, nil
}
