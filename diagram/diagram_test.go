package diagram

import (
	"testing"

	"github.com/npillmayer/railtrack/pattern"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestBuild(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "railtrack.diagram")
	defer teardown()
	//
	var inputs = []struct {
		pattern, diagram string
	}{
		{"a", "Terminal(a#1)"},
		{"ab", "Sequence(Terminal(a#1), Terminal(b#2))"},
		{"(a|b)c", "Sequence(Choice(Terminal(a#1), Terminal(b#2)), Terminal(c#3))"},
		{"{a}b", "Sequence(ZeroOrMore(Terminal(a#1)), Terminal(b#2))"},
		{"[ab]", "Optional(Sequence(Terminal(a#1), Terminal(b#2)))"},
		{"a|", "Choice(Terminal(a#1), Skip())"},
	}
	for _, input := range inputs {
		d := Build(pattern.MustParse(input.pattern))
		if d.String() != input.diagram {
			t.Errorf("expected diagram for %q to be %s, is %s", input.pattern, input.diagram, d)
		}
	}
}

func TestTerminalIDs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "railtrack.diagram")
	defer teardown()
	//
	p := pattern.MustParse("{a|b{abc|aghl}}abc|ab[abc]")
	ids := Build(p, FirstID(100)).TerminalIDs()
	if len(ids) != p.LiteralCount() {
		t.Fatalf("expected %d terminal ids, have %d", p.LiteralCount(), len(ids))
	}
	for i, id := range ids {
		if id != 100+i {
			t.Errorf("expected terminal #%d to have id %d, has %d", i, 100+i, id)
		}
	}
}

func TestIDBaseFromConfig(t *testing.T) {
	gconf.Initialize(testconfig.Conf{"diagram-id-base": 7})
	defer gconf.Initialize(testconfig.Conf{})
	ids := Build(pattern.MustParse("xy")).TerminalIDs()
	if len(ids) != 2 || ids[0] != 7 || ids[1] != 8 {
		t.Errorf("expected ids [7 8], have %v", ids)
	}
}

func TestOutline(t *testing.T) {
	d := Build(pattern.MustParse("(a|b)c"))
	lines := d.Outline()
	if len(lines) != 5 {
		t.Fatalf("expected 5 outline lines, have %d", len(lines))
	}
	if lines[0].Text != "sequence" || lines[2].Level != 2 || lines[2].Text != "a  #1" {
		t.Errorf("unexpected outline %v", lines)
	}
}
