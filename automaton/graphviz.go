package automaton

import (
	"bufio"
	"fmt"
	"io"
)

// ToGraphViz exports an automaton to the Graphviz Dot format.
// Every point is a node, labeled with the pattern marked at that point.
// Literal transitions are solid edges, epsilon edges are dashed.
// If highlight is non-nil, its points are filled.
func (a *Automaton) ToGraphViz(w io.Writer, highlight *StateSet) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(`digraph {
graph [splines=true, rankdir=LR, fontname=Helvetica, fontsize=10];
node [shape=box, style="rounded,filled", fontname=Courier, fontsize=10];
edge [fontname=Helvetica, fontsize=10];

`)
	for point := 0; point <= a.End(); point++ {
		label := a.pattern.Mark("•", func(p int) bool { return p == point })
		bw.WriteString(fmt.Sprintf("p%03d [fillcolor=%s peripheries=%d label=\"%s\"]\n",
			point, nodecolor(a, point, highlight), peripheries(a, point), label))
	}
	for point := 0; point < a.End(); point++ {
		if sym, ok := a.Symbol(point); ok {
			bw.WriteString(fmt.Sprintf("p%03d -> p%03d [label=\"%c\"]\n", point, point+1, sym))
			continue
		}
		for _, e := range a.Edges(point) {
			bw.WriteString(fmt.Sprintf("p%03d -> p%03d [style=dashed label=\"%s\"]\n", e.From, e.To, e.Kind))
		}
	}
	bw.WriteString("}\n")
	return bw.Flush()
}

func nodecolor(a *Automaton, point int, highlight *StateSet) string {
	if highlight != nil && highlight.Contains(point) {
		return "lightblue"
	}
	if a.IsTerminal(point) {
		return "white"
	}
	return "lightgray"
}

func peripheries(a *Automaton, point int) int {
	if point == a.End() {
		return 2
	}
	return 1
}
