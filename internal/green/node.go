package green

import (
	"bytes"
	"fmt"
)

// maxSlotCount is the u16 ceiling the core specification calls for: slot
// counts are kept small enough that typical nodes fit in a couple of cache
// lines, and overflowing the type is a loud failure rather than a wrap.
const maxSlotCount = 1<<16 - 1

type nodeData struct {
	kind      Kind
	fullWidth uint32
	slots     []Slot
	// owner lets a finished Node answer Diagnostics() without threading a
	// cache parameter through every call site, mirroring the arena
	// back-reference the reference implementation's green node carries.
	// It is not a tree parent pointer: it never participates in content
	// hashing, equality, or traversal, so it cannot break interning.
	owner *Cache
}

// Node is an immutable interior tree node: a kind plus a packed, ordered
// array of slots (node, token, or trivia children).
type Node struct {
	b *box[nodeData]
}

func newNode(kind Kind, slots []Slot, owner *Cache) Node {
	if len(slots) > maxSlotCount {
		panic(fmt.Sprintf("green: node has %d slots, exceeds u16 capacity %d", len(slots), maxSlotCount))
	}
	var fw uint64
	for _, s := range slots {
		fw += uint64(s.Element.FullWidth())
	}
	if fw > 1<<32-1 {
		panic(fmt.Sprintf("green: node full width %d overflows u32", fw))
	}
	return Node{b: newBox(nodeData{kind: kind, fullWidth: uint32(fw), slots: slots, owner: owner})}
}

func (n Node) IsZero() bool { return n.b == nil }

func (n Node) Kind() Kind {
	if n.IsZero() {
		return 0
	}
	return n.b.value.kind
}

func (n Node) FullWidth() uint32 {
	if n.IsZero() {
		return 0
	}
	return n.b.value.fullWidth
}

// SlotCount is a u16 by contract; len(slots) is checked against the
// ceiling at construction, so the conversion here never narrows silently.
func (n Node) SlotCount() uint16 {
	if n.IsZero() {
		return 0
	}
	return uint16(len(n.b.value.slots))
}

// Slot returns the i-th slot in O(1).
func (n Node) Slot(i int) Slot {
	return n.b.value.slots[i]
}

// Slots returns the node's slots. Callers must not mutate the returned
// slice; it is the node's own immutable backing array.
func (n Node) Slots() []Slot {
	if n.IsZero() {
		return nil
	}
	return n.b.value.slots
}

func (n Node) Clone() Node {
	if n.IsZero() {
		return n
	}
	n.b.clone()
	return n
}

func (n Node) Release() bool {
	if n.IsZero() {
		return false
	}
	return n.b.release()
}

func (n Node) PtrEq(o Node) bool { return n.b == o.b }

// Equal compares kind, full width, and slot sequence; slots are compared
// by pointer identity first (the cache's canonicalization guarantee), with
// content equality as the fallback for non-canonical children.
func (n Node) Equal(o Node) bool {
	if n.PtrEq(o) {
		return true
	}
	if n.IsZero() || o.IsZero() {
		return n.IsZero() == o.IsZero()
	}
	if n.Kind() != o.Kind() || n.FullWidth() != o.FullWidth() {
		return false
	}
	sa, sb := n.Slots(), o.Slots()
	if len(sa) != len(sb) {
		return false
	}
	for i := range sa {
		if sa[i].RelativeOffset != sb[i].RelativeOffset {
			return false
		}
		if !sa[i].Element.Equal(sb[i].Element) {
			return false
		}
	}
	return true
}

// Diagnostics returns the diagnostics the builder attached to this exact
// node, looked up through the cache-owned side table. Two structurally
// equal nodes that were built with different diagnostics remain distinct
// Go values returned from different builder runs unless a cache dedup made
// them pointer-equal — and the side table is keyed by that same pointer
// identity, so a deduplicated node keeps only the first diagnostics it was
// assigned (see the diagnostic-independence property in the top-level
// tests and DESIGN.md).
func (n Node) Diagnostics() []Diagnostic {
	if n.IsZero() || n.b.value.owner == nil {
		return nil
	}
	return n.b.value.owner.diagnosticsFor(n.b)
}

// FullText serializes every byte supplied to the builder under this node,
// including all trivia.
func (n Node) FullText() []byte {
	var buf bytes.Buffer
	buf.Grow(int(n.FullWidth()))
	n.writeTo(&buf, true, true)
	return buf.Bytes()
}

// Text serializes this node excluding the first token's leading trivia and
// the last token's trailing trivia.
func (n Node) Text() []byte {
	var buf bytes.Buffer
	buf.Grow(int(n.FullWidth()))
	n.writeTo(&buf, false, false)
	return buf.Bytes()
}

// Width is FullWidth minus the leading trivia of the first token and the
// trailing trivia of the last token.
func (n Node) Width() uint32 {
	fw := n.FullWidth()
	if ft, ok := n.FirstToken(); ok {
		fw -= ft.Leading().FullWidth()
	}
	if lt, ok := n.LastToken(); ok {
		fw -= lt.Trailing().FullWidth()
	}
	return fw
}

// FirstToken descends through the first slot of each node, skipping
// trivia-only slots, until it reaches a token. It is iterative (a straight
// descent, not a general walk) so pathologically deep trees cannot
// overflow the call stack.
func (n Node) FirstToken() (Token, bool) {
	cur := n
	for {
		if cur.IsZero() {
			return Token{}, false
		}
		slots := cur.Slots()
		found := false
		for _, s := range slots {
			switch s.Element.Kind() {
			case ElementToken:
				return s.Element.token, true
			case ElementNode:
				cur = s.Element.node
				found = true
			}
			if found {
				break
			}
		}
		if !found {
			return Token{}, false
		}
	}
}

// LastToken is the mirror of FirstToken, descending through the last
// non-trivia-bearing slot of each node.
func (n Node) LastToken() (Token, bool) {
	cur := n
	for {
		if cur.IsZero() {
			return Token{}, false
		}
		slots := cur.Slots()
		found := false
		for i := len(slots) - 1; i >= 0; i-- {
			s := slots[i]
			switch s.Element.Kind() {
			case ElementToken:
				return s.Element.token, true
			case ElementNode:
				cur = s.Element.node
				found = true
			}
			if found {
				break
			}
		}
		if !found {
			return Token{}, false
		}
	}
}

// writeFrame is one entry of the explicit stack writeTo uses in place of
// recursion.
type writeFrame struct {
	elem            Element
	includeLeading  bool
	includeTrailing bool
}

// writeTo serializes n into buf using an explicit heap-backed stack rather
// than recursion, per the round-trip serialization policy: PDFs nest
// deeply enough that a recursive walk is not safe. Children are visited in
// index order; for each child, leading trivia is included iff
// includeLeading is set for the whole call or the child is not first, and
// trailing trivia iff includeTrailing is set or the child is not last.
func (n Node) writeTo(buf *bytes.Buffer, includeLeading, includeTrailing bool) {
	stack := []writeFrame{{elem: NodeElement(n), includeLeading: includeLeading, includeTrailing: includeTrailing}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		nd, isNode := top.elem.AsNode()
		if !isNode {
			top.elem.writeLeafTo(buf, top.includeLeading, top.includeTrailing)
			continue
		}
		slots := nd.Slots()
		last := len(slots) - 1
		// Pushed in reverse so the stack pops them back in index order.
		for i := last; i >= 0; i-- {
			stack = append(stack, writeFrame{
				elem:            slots[i].Element,
				includeLeading:  top.includeLeading || i != 0,
				includeTrailing: top.includeTrailing || i != last,
			})
		}
	}
}

func (n Node) String() string {
	if n.IsZero() {
		return "Node(<nil>)"
	}
	return fmt.Sprintf("Node(%s, width=%d, slots=%d)", n.Kind(), n.FullWidth(), n.SlotCount())
}
