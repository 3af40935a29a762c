package green

import (
	"bytes"
	"fmt"
)

// ElementKind discriminates what a Slot (or any other child position)
// actually holds.
type ElementKind uint8

const (
	ElementNode ElementKind = iota
	ElementToken
	ElementTrivia
)

func (k ElementKind) String() string {
	switch k {
	case ElementNode:
		return "Node"
	case ElementToken:
		return "Token"
	case ElementTrivia:
		return "Trivia"
	default:
		return fmt.Sprintf("ElementKind(%d)", uint8(k))
	}
}

// Element is a tagged union over the three things a node slot can hold.
// It is a value type (not a handle itself): cloning/releasing an Element
// clones/releases whichever concrete handle it wraps.
type Element struct {
	kind   ElementKind
	node   Node
	token  Token
	trivia Trivia
}

func NodeElement(n Node) Element     { return Element{kind: ElementNode, node: n} }
func TokenElement(t Token) Element   { return Element{kind: ElementToken, token: t} }
func TriviaElement(t Trivia) Element { return Element{kind: ElementTrivia, trivia: t} }

func (e Element) Kind() ElementKind { return e.kind }

func (e Element) AsNode() (Node, bool) {
	if e.kind != ElementNode {
		return Node{}, false
	}
	return e.node, true
}

func (e Element) AsToken() (Token, bool) {
	if e.kind != ElementToken {
		return Token{}, false
	}
	return e.token, true
}

func (e Element) AsTrivia() (Trivia, bool) {
	if e.kind != ElementTrivia {
		return Trivia{}, false
	}
	return e.trivia, true
}

func (e Element) FullWidth() uint32 {
	switch e.kind {
	case ElementNode:
		return e.node.FullWidth()
	case ElementToken:
		return e.token.FullWidth()
	case ElementTrivia:
		return e.trivia.Width()
	default:
		panic(fmt.Sprintf("green: element with invalid kind %d", e.kind))
	}
}

func (e Element) Clone() Element {
	switch e.kind {
	case ElementNode:
		e.node = e.node.Clone()
	case ElementToken:
		e.token = e.token.Clone()
	case ElementTrivia:
		e.trivia = e.trivia.Clone()
	}
	return e
}

func (e Element) Release() bool {
	switch e.kind {
	case ElementNode:
		return e.node.Release()
	case ElementToken:
		return e.token.Release()
	case ElementTrivia:
		return e.trivia.Release()
	default:
		return false
	}
}

// PtrEq is the cache's fast path for comparing children: all children are
// canonical post-interning, so pointer identity is the expected case.
func (e Element) PtrEq(o Element) bool {
	if e.kind != o.kind {
		return false
	}
	switch e.kind {
	case ElementNode:
		return e.node.PtrEq(o.node)
	case ElementToken:
		return e.token.PtrEq(o.token)
	case ElementTrivia:
		return e.trivia.PtrEq(o.trivia)
	default:
		return false
	}
}

// Equal falls back to content equality when PtrEq does not hold — the path
// taken at leaves, and for any non-canonical (hash-0) child.
func (e Element) Equal(o Element) bool {
	if e.PtrEq(o) {
		return true
	}
	if e.kind != o.kind {
		return false
	}
	switch e.kind {
	case ElementNode:
		return e.node.Equal(o.node)
	case ElementToken:
		return e.token.Equal(o.token)
	case ElementTrivia:
		return e.trivia.Equal(o.trivia)
	default:
		return false
	}
}

// writeLeafTo serializes a Token or Trivia element directly. Node elements
// are never passed here: Node.writeTo expands them via its own explicit
// stack instead of recursing, which is what keeps arbitrarily deep trees
// from overflowing the call stack.
func (e Element) writeLeafTo(buf *bytes.Buffer, includeLeading, includeTrailing bool) {
	switch e.kind {
	case ElementToken:
		e.token.WriteTo(buf, includeLeading, includeTrailing)
	case ElementTrivia:
		buf.Write(e.trivia.Text())
	default:
		panic("green: writeLeafTo called with a Node element")
	}
}

// Slot is a child position within a Node: the child's relative byte offset
// from the start of the owning node, plus the child itself.
type Slot struct {
	RelativeOffset uint32
	Element        Element
}
