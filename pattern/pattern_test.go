package pattern

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestValidateAccepts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "railtrack.pattern")
	defer teardown()
	//
	for _, p := range []string{"a", "ab", "(a|b)c", "{a}b", "[a]", "a|", "|", "(|a)", "{a|b{abc|aghl}}abc|ab[abc]", "Z9"} {
		if err := Validate(p); err != nil {
			t.Errorf("expected %q to be valid, have %v", p, err)
		}
	}
}

func TestValidateRejects(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "railtrack.pattern")
	defer teardown()
	//
	var inputs = []struct {
		pattern  string
		kind     ErrorKind
		sentinel error
		index    int
	}{
		{"", EmptyPattern, ErrEmptyPattern, 0},
		{"a$b", InvalidCharacter, ErrInvalidCharacter, 1},
		{"a b", InvalidCharacter, ErrInvalidCharacter, 1},
		{"()", EmptyGroup, ErrEmptyGroup, 0},
		{"a[]", EmptyGroup, ErrEmptyGroup, 1},
		{"({})", EmptyGroup, ErrEmptyGroup, 1},
		{"[ab", UnbalancedBrackets, ErrUnbalancedBrackets, 0},
		{"ab)", UnbalancedBrackets, ErrUnbalancedBrackets, 2},
		{"(a]", UnbalancedBrackets, ErrUnbalancedBrackets, 2},
		{"(a$)", InvalidCharacter, ErrInvalidCharacter, 2},
		{"[]$", InvalidCharacter, ErrInvalidCharacter, 2},
	}
	for _, input := range inputs {
		err := Validate(input.pattern)
		if err == nil {
			t.Errorf("expected %q to be rejected", input.pattern)
			continue
		}
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("expected ValidationError for %q, is %T", input.pattern, err)
			continue
		}
		if verr.Kind != input.kind {
			t.Errorf("expected %q to fail with %v, is %v", input.pattern, input.kind, verr.Kind)
		}
		if !errors.Is(err, input.sentinel) {
			t.Errorf("expected errors.Is(%v, %v) for %q", err, input.sentinel, input.pattern)
		}
		if verr.Index != input.index {
			t.Errorf("expected error index %d for %q, is %d", input.index, input.pattern, verr.Index)
		}
	}
}

func TestValidateFields(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "railtrack.pattern")
	defer teardown()
	//
	err := Validate("a$b").(*ValidationError)
	if err.Char != '$' {
		t.Errorf("expected offending character '$', is %q", err.Char)
	}
	err = Validate("(a]").(*ValidationError)
	if err.Bracket != ']' || err.Expected != ')' {
		t.Errorf("expected found ']' and expected ')', is %q and %q", err.Bracket, err.Expected)
	}
	err = Validate("[ab").(*ValidationError)
	if err.Bracket != '[' || err.Expected != ']' {
		t.Errorf("expected unclosed '[' missing ']', is %q and %q", err.Bracket, err.Expected)
	}
	err = Validate("x{}").(*ValidationError)
	if err.Bracket != '{' {
		t.Errorf("expected empty pair of '{', is %q", err.Bracket)
	}
	t.Logf("error message: %v", err)
}

func TestParseTables(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "railtrack.pattern")
	defer teardown()
	//
	p := MustParse("(a|b)c|{d}")
	if p.Len() != 10 {
		t.Errorf("expected 10 tokens, have %d", p.Len())
	}
	if p.LiteralCount() != 4 {
		t.Errorf("expected 4 literals, have %d", p.LiteralCount())
	}
	if p.Match(0) != 4 || p.Match(4) != 0 || p.Match(7) != 9 {
		t.Errorf("bracket matching is broken: %d, %d, %d", p.Match(0), p.Match(4), p.Match(7))
	}
	if p.Enclosing(8) != 7 || p.Enclosing(5) != -1 {
		t.Errorf("expected enclosing brackets 7 and -1, are %d and %d", p.Enclosing(8), p.Enclosing(5))
	}
	if alts := p.Alternations(0); len(alts) != 1 || alts[0] != 2 {
		t.Errorf("expected alternation at 2 inside group, have %v", alts)
	}
	if alts := p.Alternations(-1); len(alts) != 1 || alts[0] != 6 {
		t.Errorf("expected top-level alternation at 6, have %v", alts)
	}
	if p.Occurrence(8) != 3 || p.Occurrence(2) != -1 {
		t.Errorf("expected occurrences 3 and -1, are %d and %d", p.Occurrence(8), p.Occurrence(2))
	}
	if syms := string(p.Symbols()); syms != "abcd" {
		t.Errorf("expected symbols 'abcd', have %q", syms)
	}
}

func TestParseTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "railtrack.pattern")
	defer teardown()
	//
	var inputs = []struct {
		pattern, tree string
	}{
		{"ab", "Sequence(a b)"},
		{"(a|b)c", "Sequence(Group(Choice(Sequence(a) Sequence(b))) c)"},
		{"{a}b", "Sequence(Repeat(Sequence(a)) b)"},
		{"a|", "Choice(Sequence(a) Sequence())"},
		{"[a[b]]", "Sequence(Optional(Sequence(a Optional(Sequence(b)))))"},
	}
	for _, input := range inputs {
		tree := MustParse(input.pattern).Tree().String()
		if tree != input.tree {
			t.Errorf("expected tree of %q to be %s, is %s", input.pattern, input.tree, tree)
		}
	}
}

func TestMark(t *testing.T) {
	p := MustParse("{a}b")
	s := p.Mark(".", func(point int) bool { return point == 1 || point == 3 })
	if s != "{.a}.b" {
		t.Errorf("expected {.a}.b, is %s", s)
	}
}

func TestGrammar(t *testing.T) {
	g, err := Grammar()
	if err != nil {
		t.Fatalf("grammar does not verify: %v", err)
	}
	if _, ok := g["Alternatives"]; !ok {
		t.Errorf("expected grammar to contain production Alternatives")
	}
}
