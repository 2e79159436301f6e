package automaton

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/railtrack/pattern"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func build(t *testing.T, p string) *Automaton {
	pat, err := pattern.Parse(p)
	if err != nil {
		t.Fatalf("cannot parse %q: %v", p, err)
	}
	return New(pat)
}

func TestStart(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "railtrack.automaton")
	defer teardown()
	//
	var inputs = []struct {
		pattern, start string
	}{
		{"ab", "{0}"},
		{"(a|b)c", "{1,3}"},
		{"{a}b", "{1,3}"},
		{"[a]b", "{1,3}"},
		{"a|", "{0,2}"},
		{"|", "{1}"},
		{"{a|b}c", "{1,3,5}"},
		{"({a})", "{2,5}"},
		{"[a][b]", "{1,4,6}"},
	}
	for _, input := range inputs {
		a := build(t, input.pattern)
		if s := a.Start().String(); s != input.start {
			t.Errorf("expected start of %q to be %s, is %s", input.pattern, input.start, s)
		}
	}
}

func TestStep(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "railtrack.automaton")
	defer teardown()
	//
	var inputs = []struct {
		pattern, input string
		result         []string
	}{
		{"ab", "ab", []string{"{1}", "{2}"}},
		{"(a|b)c", "ax", []string{"{5}", "{}"}},
		{"{a}b", "aab", []string{"{1,3}", "{1,3}", "{4}"}},
		{"{a|b}c", "bac", []string{"{1,3,5}", "{1,3,5}", "{6}"}},
		{"a|", "a", []string{"{2}"}},
		{"(a[b]|c)d", "abd", []string{"{3,8}", "{8}", "{9}"}},
	}
	for _, input := range inputs {
		a := build(t, input.pattern)
		S := a.Start()
		for i, sym := range input.input {
			S = a.Step(S, sym)
			if S.String() != input.result[i] {
				t.Errorf("%q: expected step #%d over %c to yield %s, is %s",
					input.pattern, i, sym, input.result[i], S)
			}
		}
	}
}

func TestClosureIsTerminal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "railtrack.automaton")
	defer teardown()
	//
	a := build(t, "{a|b{abc|aghl}}abc|ab[abc]")
	for point := 0; point <= a.End(); point++ {
		for _, p := range a.Closure(point).Points() {
			if !a.IsTerminal(p) {
				t.Errorf("closure of %d contains non-terminal point %d", point, p)
			}
		}
	}
}

func TestEnabled(t *testing.T) {
	a := build(t, "(b|a)c|b")
	syms := a.Enabled(a.Start())
	if string(syms) != "ab" {
		t.Errorf("expected enabled symbols 'ab', have %q", string(syms))
	}
}

func TestEdges(t *testing.T) {
	a := build(t, "{a|b}")
	edges := a.Edges(4)
	if len(edges) != 3 {
		t.Fatalf("expected 3 edges leaving '}', have %d", len(edges))
	}
	kinds := map[EdgeKind]int{}
	for _, e := range edges {
		kinds[e.Kind]++
	}
	if kinds[Exit] != 1 || kinds[Loop] != 2 {
		t.Errorf("expected 1 exit and 2 loop edges, have %v", kinds)
	}
}

func TestGraphViz(t *testing.T) {
	a := build(t, "(a|b)c")
	var buf bytes.Buffer
	if err := a.ToGraphViz(&buf, a.Start()); err != nil {
		t.Fatal(err)
	}
	dot := buf.String()
	if !strings.HasPrefix(dot, "digraph {") {
		t.Errorf("expected output to be a digraph")
	}
	if !strings.Contains(dot, `p001 -> p002 [label="a"]`) {
		t.Errorf("expected literal edge for 'a' in output")
	}
	if !strings.Contains(dot, `p002 -> p004 [style=dashed label="fallthrough"]`) {
		t.Errorf("expected fallthrough edge in output")
	}
}
