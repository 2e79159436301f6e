package automaton

import (
	"fmt"
	"sort"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/npillmayer/railtrack/automaton/sparse"
	"github.com/npillmayer/railtrack/pattern"
)

// EdgeKind labels an epsilon edge.
type EdgeKind int32

// Kinds of epsilon edges
const (
	Enter       EdgeKind = iota + 1 // into a bracket
	Skip                            // over an optional or repeated bracket
	Exit                            // behind a closing bracket
	Loop                            // from the end of a repetition back into it
	Fallthrough                     // from the end of an alternative to the enclosing close
)

func (k EdgeKind) String() string {
	switch k {
	case Enter:
		return "enter"
	case Skip:
		return "skip"
	case Exit:
		return "exit"
	case Loop:
		return "loop"
	case Fallthrough:
		return "fallthrough"
	}
	return fmt.Sprintf("EdgeKind(%d)", int32(k))
}

// Edge is an epsilon edge between two points.
type Edge struct {
	From, To int
	Kind     EdgeKind
}

// Automaton is the position automaton of a pattern. It is immutable after
// creation and may be shared.
type Automaton struct {
	pattern *pattern.Pattern
	edges   *sparse.IntMatrix // epsilon edges, point × point
	closure []*StateSet       // epsilon closure for every point
	start   *StateSet
}

// New creates the automaton for a pattern, including all epsilon closures.
func New(p *pattern.Pattern) *Automaton {
	n := p.Len()
	a := &Automaton{
		pattern: p,
		edges:   sparse.NewIntMatrix(n+1, n+1, sparse.DefaultNullValue),
		closure: make([]*StateSet, n+1),
	}
	tracer().Debugf("=== build automaton for %q ===========================", p.Source())
	for point := 0; point < n; point++ {
		a.addEdges(point)
	}
	for point := 0; point <= n; point++ {
		a.closure[point] = a.closureOf(point)
		tracer().Debugf("closure(%d) = %v", point, a.closure[point])
	}
	initial := []int{0}
	for _, alt := range p.Alternations(-1) {
		initial = append(initial, alt+1)
	}
	a.start = a.Closure(initial...)
	tracer().Debugf("start = %v", a.start)
	return a
}

func (a *Automaton) addEdge(from, to int, kind EdgeKind) {
	a.edges.Add(from, to, int32(kind))
}

// addEdges creates the epsilon edges leaving point.
func (a *Automaton) addEdges(point int) {
	p := a.pattern
	t := p.Token(point)
	switch {
	case t.IsLiteral():
		// terminal
	case t.IsOpening():
		for _, target := range a.entries(point) {
			a.addEdge(point, target, Enter)
		}
		if t.Type != pattern.GroupOpen {
			a.addEdge(point, p.Match(point)+1, Skip)
		}
	case t.IsClosing():
		a.addEdge(point, point+1, Exit)
		if t.Type == pattern.RepeatClose {
			for _, target := range a.entries(p.Match(point)) {
				a.addEdge(point, target, Loop)
			}
		}
	case t.Type == pattern.Alternation:
		if open := p.Enclosing(point); open < 0 {
			a.addEdge(point, p.Len(), Fallthrough)
		} else {
			a.addEdge(point, p.Match(open), Fallthrough)
		}
	}
}

// entries returns the start points of all alternatives inside the bracket
// opened at index open.
func (a *Automaton) entries(open int) []int {
	targets := []int{open + 1}
	for _, alt := range a.pattern.Alternations(open) {
		targets = append(targets, alt+1)
	}
	return targets
}

// closureOf collects the terminal points reachable from point over epsilon
// edges, using a worklist.
func (a *Automaton) closureOf(point int) *StateSet {
	visited := treeset.NewWithIntComparator()
	visited.Add(point)
	work := arraylist.New()
	work.Add(point)
	for !work.Empty() {
		x, _ := work.Get(work.Size() - 1)
		work.Remove(work.Size() - 1)
		a.edges.EachInRow(x.(int), func(to int, _, _ int32) {
			if !visited.Contains(to) {
				visited.Add(to)
				work.Add(to)
			}
		})
	}
	C := NewStateSet()
	it := visited.Iterator()
	for it.Next() {
		if p := it.Value().(int); a.IsTerminal(p) {
			C.Add(p)
		}
	}
	return C
}

// Pattern returns the pattern this automaton has been built for.
func (a *Automaton) Pattern() *pattern.Pattern {
	return a.pattern
}

// End returns the end point, i.e. the point of acceptance.
func (a *Automaton) End() int {
	return a.pattern.Len()
}

// IsTerminal is true for points before a literal and for the end point.
func (a *Automaton) IsTerminal(point int) bool {
	return point == a.End() || a.pattern.Token(point).IsLiteral()
}

// Symbol returns the literal symbol following point, if any.
func (a *Automaton) Symbol(point int) (rune, bool) {
	if point >= a.End() || !a.pattern.Token(point).IsLiteral() {
		return 0, false
	}
	return a.pattern.Token(point).Char, true
}

// Start returns the initial state set: the closure of the start of the
// pattern and of the start of every top-level alternative.
func (a *Automaton) Start() *StateSet {
	return a.start.Copy()
}

// Closure returns the union of the epsilon closures of points.
func (a *Automaton) Closure(points ...int) *StateSet {
	C := NewStateSet()
	for _, p := range points {
		C.Union(a.closure[p])
	}
	return C
}

// Step advances every point of S which is followed by a literal sym and
// returns the closure of the advanced points. Points which are not followed
// by sym are dropped.
func (a *Automaton) Step(S *StateSet, sym rune) *StateSet {
	T := NewStateSet()
	for _, p := range S.Points() {
		if s, ok := a.Symbol(p); ok && s == sym {
			T.Union(a.closure[p+1])
		}
	}
	tracer().Debugf("step %v --%c--> %v", S, sym, T)
	return T
}

// Enabled returns the distinct symbols following the points of S,
// in ascending order.
func (a *Automaton) Enabled(S *StateSet) []rune {
	seen := make(map[rune]bool)
	syms := []rune{}
	for _, p := range S.Points() {
		if s, ok := a.Symbol(p); ok && !seen[s] {
			seen[s] = true
			syms = append(syms, s)
		}
	}
	sort.Slice(syms, func(i, j int) bool { return syms[i] < syms[j] })
	return syms
}

// Edges returns the epsilon edges leaving point.
func (a *Automaton) Edges(point int) []Edge {
	var edges []Edge
	a.edges.EachInRow(point, func(to int, k1, k2 int32) {
		edges = append(edges, Edge{From: point, To: to, Kind: EdgeKind(k1)})
		if k2 != a.edges.NullValue() {
			edges = append(edges, Edge{From: point, To: to, Kind: EdgeKind(k2)})
		}
	})
	return edges
}
