// Package expand — arena-backed derivation trees.

package expand

// NodeKind classifies a derivation tree node.
type NodeKind uint8

const (
	// KindTerminal is literal text emitted into the output.
	KindTerminal NodeKind = iota
	// KindNonTerminal is an expanded rule; its children are the elements of
	// the chosen production.
	KindNonTerminal
	// KindUndefined marks a referenced symbol with no rules.
	KindUndefined
	// KindRecursionLimit marks a branch abandoned at the depth bound.
	KindRecursionLimit
)

// String names the kind for diagnostics.
func (k NodeKind) String() string {
	switch k {
	case KindTerminal:
		return "terminal"
	case KindNonTerminal:
		return "non-terminal"
	case KindUndefined:
		return "undefined"
	case KindRecursionLimit:
		return "recursion-limit"
	default:
		return "unknown"
	}
}

// NodeID indexes a node inside its Tree arena.
type NodeID int

// NoNode is the nil NodeID (parent of the root, result of failed lookups).
const NoNode NodeID = -1

// Node is one derivation step. Value holds the terminal text for
// KindTerminal and the symbol name for the other kinds. Children are ordered
// left to right and exclusively owned: the tree is a strict hierarchy with
// no sharing and no back-references beyond Parent.
type Node struct {
	Kind     NodeKind
	Value    string
	Parent   NodeID
	Children []NodeID
}

// Tree is a flat growable arena of derivation nodes. Node 0, when present,
// is the root (the start symbol). Integer links keep the structure compact
// and trivially serializable.
type Tree struct {
	nodes []Node
}

// Root returns the root node ID, or NoNode for an empty tree.
func (t *Tree) Root() NodeID {
	if len(t.nodes) == 0 {
		return NoNode
	}

	return 0
}

// Node returns the node stored under id. The Children slice is shared with
// the arena; treat it as read-only.
func (t *Tree) Node(id NodeID) Node {
	return t.nodes[id]
}

// Len returns the number of nodes in the arena.
func (t *Tree) Len() int { return len(t.nodes) }

// add appends a node and links it into parent's child list.
func (t *Tree) add(kind NodeKind, value string, parent NodeID) NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, Node{Kind: kind, Value: value, Parent: parent})
	if parent != NoNode {
		t.nodes[parent].Children = append(t.nodes[parent].Children, id)
	}

	return id
}

// Walk visits every node reachable from id in depth-first pre-order.
func (t *Tree) Walk(id NodeID, fn func(id NodeID, n Node)) {
	if id == NoNode || int(id) >= len(t.nodes) {
		return
	}
	n := t.nodes[id]
	fn(id, n)
	for _, child := range n.Children {
		t.Walk(child, fn)
	}
}
