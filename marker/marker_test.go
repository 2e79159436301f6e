package marker

import (
	"errors"
	"testing"

	"github.com/npillmayer/railtrack"
	"github.com/npillmayer/railtrack/automaton"
	"github.com/npillmayer/railtrack/pattern"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func initial(t *testing.T, p string) *Expression {
	pat, err := pattern.Parse(p)
	if err != nil {
		t.Fatalf("cannot parse %q: %v", p, err)
	}
	return Normalize(Initial(automaton.New(pat)))
}

func TestStringForms(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "railtrack.marker")
	defer teardown()
	//
	var inputs = []struct {
		pattern, initial, unnormalized string
	}{
		{"ab", ".ab", ".ab"},
		{"(a|b)c", "(.a|.b)c", ".(a|b)c"},
		{"{a}b", "{.a}.b", ".{a}b"},
		{"a|b", ".a|.b", ".a|.b"},
		{"a|", ".a|.", ".a|."},
		{"[a]", "[.a].", ".[a]"},
	}
	for _, input := range inputs {
		x := initial(t, input.pattern)
		if x.String() != input.initial {
			t.Errorf("expected initial expression %s, is %s", input.initial, x)
		}
		u := Initial(x.Automaton())
		if u.String() != input.unnormalized {
			t.Errorf("expected initial marking %s, is %s", input.unnormalized, u)
		}
	}
}

func TestParseMarked(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "railtrack.marker")
	defer teardown()
	//
	x, err := Parse("{..a}.b")
	if err != nil {
		t.Fatal(err)
	}
	if x.String() != "{.a}.b" {
		t.Errorf("expected {.a}.b, is %s", x)
	}
	if pts := x.Points(); len(pts) != 2 || pts[0] != 1 || pts[1] != 3 {
		t.Errorf("expected points [1 3], have %v", pts)
	}
	if !x.IsNormal() {
		t.Errorf("expected %s to be normal", x)
	}
	y, _ := Parse(".{a}b")
	if y.IsNormal() {
		t.Errorf("expected %s not to be normal", y)
	}
	if !Normalize(y).Equals(x) {
		t.Errorf("expected normalized %s to equal %s, is %s", y, x, Normalize(y))
	}
	if _, err = Parse("(.)"); !errors.Is(err, pattern.ErrEmptyGroup) {
		t.Errorf("expected empty group error, have %v", err)
	}
}

func TestMoveAndStep(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "railtrack.marker")
	defer teardown()
	//
	var inputs = []struct {
		marked string
		sym    rune
		moved  string
		step   string
	}{
		{".ab", 'a', "a.b", "a.b"},
		{"(.a|.b)c", 'a', "(a.|b)c", "(a|b).c"},
		{"(.a|.b)c", 'x', "(a|b)c", "(a|b)c"},
		{"{.a}.b", 'a', "{a.}b", "{.a}.b"},
		{"{.a}.b", 'b', "{a}b.", "{a}b."},
		{"ab.", 'a', "ab", "ab"},
		{".(a)", 'a', "(a)", "(a)"},
	}
	for _, input := range inputs {
		x, err := Parse(input.marked)
		if err != nil {
			t.Fatal(err)
		}
		if m := Move(x, input.sym); m.String() != input.moved {
			t.Errorf("expected move(%s, %c) = %s, is %s", input.marked, input.sym, input.moved, m)
		}
		if s := Step(x, input.sym); s.String() != input.step {
			t.Errorf("expected step(%s, %c) = %s, is %s", input.marked, input.sym, input.step, s)
		}
	}
}

func TestScenarios(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "railtrack.marker")
	defer teardown()
	//
	var inputs = []struct {
		pattern string
		ids     []int
		input   string
		active  [][]railtrack.Position // initial, then one per symbol
	}{
		{"ab", []int{1, 2}, "ab", [][]railtrack.Position{
			{railtrack.Literal(1)},
			{railtrack.Literal(2)},
			{railtrack.Accept},
		}},
		{"(a|b)c", []int{1, 2, 3}, "ax", [][]railtrack.Position{
			{railtrack.Literal(1), railtrack.Literal(2)},
			{railtrack.Literal(3)},
			{},
		}},
		{"{a}b", []int{1, 2}, "a", [][]railtrack.Position{
			{railtrack.Literal(1), railtrack.Literal(2)},
			{railtrack.Literal(1), railtrack.Literal(2)},
		}},
	}
	for _, input := range inputs {
		x := initial(t, input.pattern)
		check := func(step int) {
			active, err := ResolveIDs(x, input.ids)
			if err != nil {
				t.Fatal(err)
			}
			if !samePositions(active, input.active[step]) {
				t.Errorf("%q, step %d: expected active %v, is %v", input.pattern, step, input.active[step], active)
			}
		}
		check(0)
		for i, sym := range input.input {
			x = Step(x, sym)
			check(i + 1)
		}
	}
}

func TestResolveIDsMismatch(t *testing.T) {
	x := initial(t, "(a|b)c")
	_, err := ResolveIDs(x, []int{1, 2})
	if !errors.Is(err, ErrIdentifierCount) {
		t.Fatalf("expected identifier count error, have %v", err)
	}
	var cerr *IdentifierCountError
	if errors.As(err, &cerr) && (cerr.Want != 3 || cerr.Have != 2) {
		t.Errorf("expected want=3, have=2, is %d and %d", cerr.Want, cerr.Have)
	}
}

func TestResolveIDsAcceptIsDistinct(t *testing.T) {
	x, _ := Parse("a.|.b")
	x = Normalize(x)
	active, _ := ResolveIDs(x, []int{100, 101})
	if len(active) != 2 {
		t.Fatalf("expected 2 active positions, have %v", active)
	}
	if active[0].IsAccept() {
		t.Errorf("expected identifier 101 not to be taken as accept")
	}
	if !active[1].IsAccept() {
		t.Errorf("expected second position to be accept, is %v", active[1])
	}
}

func TestEnabledSymbols(t *testing.T) {
	x := initial(t, "{c|a}b|d")
	if syms := string(EnabledSymbols(x)); syms != "abcd" {
		t.Errorf("expected enabled symbols 'abcd', have %q", syms)
	}
	for _, sym := range "abcdx" {
		enabled := false
		for _, e := range EnabledSymbols(x) {
			enabled = enabled || e == sym
		}
		if Step(x, sym).Markers().Empty() == enabled {
			t.Errorf("expected step over %c to be non-empty iff %c is enabled", sym, sym)
		}
	}
}

// walk visits every expression reachable from the initial expression of p,
// up to depth steps.
func walk(x *Expression, depth int, visit func(*Expression)) {
	visit(x)
	if depth == 0 {
		return
	}
	for _, sym := range EnabledSymbols(x) {
		walk(Step(x, sym), depth-1, visit)
	}
}

var properties = []string{
	"ab", "(a|b)c", "{a}b", "a|", "{a|b{abc|aghl}}abc|ab[abc]", "[a[b[c]]]d", "({a}|[b])c|{d}",
}

func TestNormalizeIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "railtrack.marker")
	defer teardown()
	//
	for _, p := range properties {
		walk(initial(t, p), 4, func(x *Expression) {
			if !Normalize(x).Equals(x) {
				t.Errorf("expected %s to be a fixpoint of normalization, is %s", x, Normalize(x))
			}
			if !x.IsNormal() {
				t.Errorf("expected reachable expression %s to be normal", x)
			}
		})
	}
}

func TestLiteralCountPreserved(t *testing.T) {
	for _, p := range properties {
		pat := pattern.MustParse(p)
		walk(initial(t, p), 3, func(x *Expression) {
			if x.LiteralCount() != pat.LiteralCount() {
				t.Errorf("expected literal count %d for %s, is %d", pat.LiteralCount(), x, x.LiteralCount())
			}
		})
	}
}

func TestMoveNeverGrows(t *testing.T) {
	for _, p := range properties {
		walk(initial(t, p), 3, func(x *Expression) {
			for _, sym := range "abcdghlx" {
				for _, q := range Move(x, sym).Points() {
					if !x.marks.Contains(q - 1) {
						t.Errorf("move(%s, %c) introduced marker at %d", x, sym, q)
					}
				}
			}
		})
	}
}

func samePositions(a, b []railtrack.Position) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
