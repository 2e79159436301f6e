package diagram

import (
	"fmt"
	"strings"

	"github.com/npillmayer/railtrack/pattern"
	"github.com/npillmayer/schuko/gconf"
)

// Item is an element of a railroad diagram.
type Item interface {
	Children() []Item
	String() string
}

// Terminal is a literal symbol, carrying a serial identifier.
type Terminal struct {
	Text string
	ID   int
}

// Sequence is a run of items.
type Sequence struct {
	Items []Item
}

// Choice is a set of alternative items.
type Choice struct {
	Items []Item
}

// Optional is an item which may be skipped.
type Optional struct {
	Item Item
}

// ZeroOrMore is an item which may be skipped or repeated.
type ZeroOrMore struct {
	Item Item
}

// Skip is an empty path, i.e. an empty alternative.
type Skip struct{}

func (t *Terminal) Children() []Item   { return nil }
func (s *Sequence) Children() []Item   { return s.Items }
func (c *Choice) Children() []Item     { return c.Items }
func (o *Optional) Children() []Item   { return []Item{o.Item} }
func (z *ZeroOrMore) Children() []Item { return []Item{z.Item} }
func (s Skip) Children() []Item        { return nil }

func (t *Terminal) String() string   { return fmt.Sprintf("Terminal(%s#%d)", t.Text, t.ID) }
func (s *Sequence) String() string   { return "Sequence(" + join(s.Items) + ")" }
func (c *Choice) String() string     { return "Choice(" + join(c.Items) + ")" }
func (o *Optional) String() string   { return "Optional(" + o.Item.String() + ")" }
func (z *ZeroOrMore) String() string { return "ZeroOrMore(" + z.Item.String() + ")" }
func (s Skip) String() string        { return "Skip()" }

func join(items []Item) string {
	s := make([]string, len(items))
	for i, item := range items {
		s[i] = item.String()
	}
	return strings.Join(s, ", ")
}

// Diagram is a railroad diagram for a pattern.
type Diagram struct {
	Pattern *pattern.Pattern
	Root    Item
}

// Option configures diagram construction.
type Option func(b *builder)

// FirstID sets the identifier of the leftmost terminal. Identifiers of
// subsequent terminals are counted up from there.
func FirstID(id int) Option {
	return func(b *builder) {
		b.next = id
	}
}

type builder struct {
	next int
}

// Build creates the railroad diagram for a pattern. Terminal identifiers
// start at configuration value "diagram-id-base", or at 1 if not set.
func Build(p *pattern.Pattern, opts ...Option) *Diagram {
	b := &builder{next: 1}
	if gconf.IsSet("diagram-id-base") {
		b.next = gconf.GetInt("diagram-id-base")
	}
	for _, opt := range opts {
		opt(b)
	}
	d := &Diagram{Pattern: p, Root: b.item(p.Tree())}
	tracer().Debugf("diagram for %q: %v", p.Source(), d.Root)
	return d
}

func (b *builder) item(n *pattern.Node) Item {
	switch n.Kind {
	case pattern.LiteralNode:
		t := &Terminal{Text: string(n.Symbol), ID: b.next}
		b.next++
		return t
	case pattern.SequenceNode:
		if len(n.Children) == 0 {
			return Skip{}
		}
		if len(n.Children) == 1 {
			return b.item(n.Children[0])
		}
		return &Sequence{Items: b.items(n.Children)}
	case pattern.ChoiceNode:
		return &Choice{Items: b.items(n.Children)}
	case pattern.GroupNode:
		return b.item(n.Children[0])
	case pattern.OptionalNode:
		return &Optional{Item: b.item(n.Children[0])}
	case pattern.RepeatNode:
		return &ZeroOrMore{Item: b.item(n.Children[0])}
	}
	panic(fmt.Sprintf("unknown pattern node kind %v", n.Kind))
}

func (b *builder) items(nodes []*pattern.Node) []Item {
	items := make([]Item, len(nodes))
	for i, n := range nodes {
		items[i] = b.item(n)
	}
	return items
}

// Walk visits every item of the diagram in pre-order, passing its nesting level.
func (d *Diagram) Walk(visit func(item Item, level int)) {
	var walk func(Item, int)
	walk = func(item Item, level int) {
		visit(item, level)
		for _, ch := range item.Children() {
			walk(ch, level+1)
		}
	}
	walk(d.Root, 0)
}

// TerminalIDs returns the identifiers of all terminals, left to right.
func (d *Diagram) TerminalIDs() []int {
	var ids []int
	d.Walk(func(item Item, _ int) {
		if t, ok := item.(*Terminal); ok {
			ids = append(ids, t.ID)
		}
	})
	return ids
}

// Line is a line of a diagram outline.
type Line struct {
	Level int
	Text  string
}

// Outline returns an indented outline of the diagram, one line per item.
func (d *Diagram) Outline() []Line {
	var lines []Line
	d.Walk(func(item Item, level int) {
		var text string
		switch it := item.(type) {
		case *Terminal:
			text = fmt.Sprintf("%s  #%d", it.Text, it.ID)
		case *Sequence:
			text = "sequence"
		case *Choice:
			text = "choice"
		case *Optional:
			text = "optional"
		case *ZeroOrMore:
			text = "zero or more"
		case Skip:
			text = "skip"
		}
		lines = append(lines, Line{Level: level, Text: text})
	})
	return lines
}

func (d *Diagram) String() string {
	return d.Root.String()
}
