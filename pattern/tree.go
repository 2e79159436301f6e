package pattern

import (
	"fmt"
	"strings"

	"github.com/npillmayer/railtrack"
)

// NodeKind is the category of a parse tree node.
type NodeKind int

// Kinds of parse tree nodes
const (
	LiteralNode  NodeKind = iota // a literal occurrence
	SequenceNode                 // concatenation, possibly empty
	ChoiceNode                   // alternatives, each a SequenceNode
	GroupNode                    // ( … )
	OptionalNode                 // [ … ]
	RepeatNode                   // { … }
)

func (k NodeKind) String() string {
	switch k {
	case LiteralNode:
		return "Literal"
	case SequenceNode:
		return "Sequence"
	case ChoiceNode:
		return "Choice"
	case GroupNode:
		return "Group"
	case OptionalNode:
		return "Optional"
	case RepeatNode:
		return "Repeat"
	}
	return fmt.Sprintf("NodeKind(%d)", int(k))
}

// Node is a node of a pattern's parse tree. Bracket nodes have exactly one
// child, which is either a SequenceNode or a ChoiceNode.
type Node struct {
	Kind       NodeKind
	Symbol     rune    // for literals
	Occurrence int     // literal occurrence number, for literals
	At         int     // token index of the literal or the opening bracket; -1 otherwise
	Children   []*Node // sub-nodes
}

func (n *Node) String() string {
	var b strings.Builder
	n.dump(&b)
	return b.String()
}

func (n *Node) dump(b *strings.Builder) {
	if n.Kind == LiteralNode {
		b.WriteRune(n.Symbol)
		return
	}
	b.WriteString(n.Kind.String())
	b.WriteByte('(')
	for i, ch := range n.Children {
		if i > 0 {
			b.WriteByte(' ')
		}
		ch.dump(b)
	}
	b.WriteByte(')')
}

// Walk visits n and all of its descendants in pre-order.
func (n *Node) Walk(visit func(*Node)) {
	visit(n)
	for _, ch := range n.Children {
		ch.Walk(visit)
	}
}

// buildTree creates the parse tree for a validated pattern.
func buildTree(p *Pattern) *Node {
	node, _ := buildAlternatives(p, 0)
	return node
}

// buildAlternatives parses alternatives starting at token i, up to a closing
// bracket or the end of the pattern. It returns the node and the index of the
// token where it stopped.
func buildAlternatives(p *Pattern, i int) (*Node, int) {
	var alts []*Node
	seq := &Node{Kind: SequenceNode, At: -1}
	for i < len(p.tokens) {
		t := p.tokens[i]
		switch {
		case t.IsClosing():
			return choiceOf(append(alts, seq)), i
		case t.Type == Alternation:
			alts = append(alts, seq)
			seq = &Node{Kind: SequenceNode, At: -1}
			i++
		case t.IsOpening():
			inner, end := buildAlternatives(p, i+1)
			node := &Node{Kind: bracketKind(t.Type), At: i, Children: []*Node{inner}}
			seq.Children = append(seq.Children, node)
			i = end + 1
		default:
			seq.Children = append(seq.Children, &Node{
				Kind:       LiteralNode,
				Symbol:     t.Char,
				Occurrence: p.occurrence[i],
				At:         i,
			})
			i++
		}
	}
	return choiceOf(append(alts, seq)), i
}

func choiceOf(alts []*Node) *Node {
	if len(alts) == 1 {
		return alts[0]
	}
	return &Node{Kind: ChoiceNode, At: -1, Children: alts}
}

func bracketKind(t railtrack.TokType) NodeKind {
	switch t {
	case GroupOpen:
		return GroupNode
	case OptionalOpen:
		return OptionalNode
	}
	return RepeatNode
}
