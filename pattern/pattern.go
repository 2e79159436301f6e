package pattern

import (
	"strings"
)

// Pattern is a validated, immutable pattern.
//
// Tokens are addressed by index 0…Len()-1. A point is a gap between tokens:
// point i sits immediately before token i, point Len() is the end of the
// pattern.
type Pattern struct {
	source     string
	tokens     []Token
	match      []int         // index of the matching bracket, or -1
	enclosing  []int         // index of the innermost enclosing opening bracket, or -1
	occurrence []int         // literal occurrence number, or -1
	alts       map[int][]int // alternation tokens, by enclosing opening bracket (-1 = top level)
	literals   int
	tree       *Node
}

// Parse validates a pattern and, if it is well-formed, returns its Pattern.
// Errors are of type *ValidationError.
func Parse(p string) (*Pattern, error) {
	tokens, err := tokenize(p)
	if err != nil {
		return nil, err
	}
	pat := &Pattern{
		source:     p,
		tokens:     tokens,
		match:      make([]int, len(tokens)),
		enclosing:  make([]int, len(tokens)),
		occurrence: make([]int, len(tokens)),
		alts:       make(map[int][]int),
	}
	stack := []int{-1}
	for i, t := range tokens {
		pat.match[i], pat.occurrence[i] = -1, -1
		top := stack[len(stack)-1]
		switch {
		case t.IsOpening():
			pat.enclosing[i] = top
			stack = append(stack, i)
		case t.IsClosing():
			stack = stack[:len(stack)-1]
			pat.enclosing[i] = stack[len(stack)-1]
			pat.match[i], pat.match[top] = top, i
		case t.Type == Alternation:
			pat.enclosing[i] = top
			pat.alts[top] = append(pat.alts[top], i)
		default:
			pat.enclosing[i] = top
			pat.occurrence[i] = pat.literals
			pat.literals++
		}
	}
	pat.tree = buildTree(pat)
	tracer().Debugf("parsed pattern %q with %d literals", p, pat.literals)
	return pat, nil
}

// MustParse is like Parse, but panics on invalid patterns.
func MustParse(p string) *Pattern {
	pat, err := Parse(p)
	if err != nil {
		panic(err)
	}
	return pat
}

// Source returns the pattern as a string.
func (p *Pattern) Source() string {
	return p.source
}

func (p *Pattern) String() string {
	return p.source
}

// Len returns the number of tokens.
func (p *Pattern) Len() int {
	return len(p.tokens)
}

// Token returns token i.
func (p *Pattern) Token(i int) Token {
	return p.tokens[i]
}

// Match returns the index of the bracket matching the bracket at index i,
// or -1 if token i is not a bracket.
func (p *Pattern) Match(i int) int {
	return p.match[i]
}

// Enclosing returns the index of the innermost opening bracket enclosing
// token i, or -1 for top-level tokens.
func (p *Pattern) Enclosing(i int) int {
	return p.enclosing[i]
}

// Occurrence returns the literal occurrence number of token i, or -1 if
// token i is not a literal. Occurrences are numbered from left to right,
// starting at 0.
func (p *Pattern) Occurrence(i int) int {
	return p.occurrence[i]
}

// Alternations returns the indices of the alternation tokens directly inside
// the bracket opened at index open. For open = -1, the top-level alternations
// are returned.
func (p *Pattern) Alternations(open int) []int {
	return p.alts[open]
}

// LiteralCount returns the number of literal occurrences.
func (p *Pattern) LiteralCount() int {
	return p.literals
}

// Symbols returns the distinct literal symbols of the pattern, in order of
// first occurrence.
func (p *Pattern) Symbols() []rune {
	var syms []rune
	seen := make(map[rune]bool)
	for _, t := range p.tokens {
		if t.IsLiteral() && !seen[t.Char] {
			seen[t.Char] = true
			syms = append(syms, t.Char)
		}
	}
	return syms
}

// Tree returns the parse tree of the pattern.
func (p *Pattern) Tree() *Node {
	return p.tree
}

// Mark renders the pattern with a marker string inserted at every point for
// which marked returns true.
func (p *Pattern) Mark(marker string, marked func(point int) bool) string {
	var b strings.Builder
	for i, t := range p.tokens {
		if marked(i) {
			b.WriteString(marker)
		}
		b.WriteRune(t.Char)
	}
	if marked(len(p.tokens)) {
		b.WriteString(marker)
	}
	return b.String()
}
