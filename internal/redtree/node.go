// Package redtree implements the positioned (red) view over a green tree:
// a read-only cursor that knows its parent and absolute offset, computed
// on demand by walking the shared green node it wraps. It stores nothing
// the green tree doesn't already hold — no independent text, no mutation,
// no caching beyond what's needed for one cursor's own parent chain — and
// implements exactly the consumer-facing slice of the red-tree concept
// that SPEC_FULL.md's core scope carves out (§1, §6): Parent, Offset, and
// Children.
package redtree

import "github.com/pogor-dev/trustpdf/internal/green"

// Node is a positioned cursor over a green node: the shared, immutable
// green.Node plus this particular occurrence's parent and absolute
// offset. Two Nodes can wrap the same green.Node (it may appear identical
// and interned in several places in the tree) yet have different parents
// and offsets — that's the entire reason this layer exists on top of the
// green tree instead of being folded into it.
type Node struct {
	green  green.Node
	parent *Node
	offset uint32
}

// Root wraps g as the root of a positioned view: no parent, offset zero.
func Root(g green.Node) *Node {
	return &Node{green: g, offset: 0}
}

// Green returns the underlying green node this cursor positions.
func (n *Node) Green() green.Node { return n.green }

// Parent returns this node's positioned parent, or nil at the root.
func (n *Node) Parent() *Node { return n.parent }

// Offset returns this node's absolute byte offset from the start of the
// root's text.
func (n *Node) Offset() uint32 { return n.offset }

// Kind returns the underlying green node's syntactic kind.
func (n *Node) Kind() green.Kind { return n.green.Kind() }

// FullWidth returns the underlying green node's full width, including its
// own leading/trailing trivia.
func (n *Node) FullWidth() uint32 { return n.green.FullWidth() }

// Child is one positioned slot: either a child Node, or a leaf (token or
// trivia) element with its absolute offset, depending on what the
// underlying green slot holds.
type Child struct {
	Node    *Node
	Element green.Element // valid when Node == nil
	Offset  uint32
}

// Children returns this node's immediate children as positioned slots,
// computed from the green node's relative offsets plus n's own absolute
// offset. Node slots are wrapped as positioned child Nodes (parented to
// n); token and trivia slots are returned as leaf elements with their
// resolved absolute offset.
func (n *Node) Children() []Child {
	slots := n.green.Slots()
	out := make([]Child, len(slots))
	for i, slot := range slots {
		abs := n.offset + slot.RelativeOffset
		if childGreen, ok := slot.Element.AsNode(); ok {
			out[i] = Child{
				Node:   &Node{green: childGreen, parent: n, offset: abs},
				Offset: abs,
			}
			continue
		}
		out[i] = Child{Element: slot.Element, Offset: abs}
	}
	return out
}

// FirstToken returns the positioned offset of the underlying node's first
// token, by delegating width accounting to the green node and resolving
// the result against n's own absolute offset.
func (n *Node) FirstToken() (green.Token, uint32, bool) {
	tok, ok := n.green.FirstToken()
	if !ok {
		return green.Token{}, 0, false
	}
	return tok, n.offset, true
}

// Text returns the full source text this node's subtree covers, including
// its own leading and trailing trivia.
func (n *Node) Text() []byte { return n.green.FullText() }
