package builder

import (
	"github.com/pogor-dev/trustpdf/internal/green"
)

type queuedNodeDiag struct {
	code     uint16
	severity green.Severity
	message  string
}

type openParent struct {
	kind        green.Kind
	childStart  int    // index into the children buffer where this node's slots begin
	byteOffset  uint32 // running offset when this node was opened
	diagFence   int    // see (Builder).pending split rule in FinishNode
	retroactive bool   // true iff this parent was pushed by StartNodeAt
}

// Builder is the tree builder: a stack machine that drives a green.Cache to
// construct an immutable tree. It is not safe for concurrent use — a
// Builder and the Cache it drives are a single construction session.
type Builder struct {
	cache    *green.Cache
	parents  []openParent
	children []green.ChildSlot
	offset   uint32

	// pending holds diagnostics queued by Diagnostic(...) for whichever
	// node is currently innermost. See FinishNode for how entries are
	// split between the closing node and its enclosing ancestors.
	pending []queuedNodeDiag

	// collapses records every range FinishNode has replaced with a single
	// node, so StartNodeAt can detect a Checkpoint that now points inside
	// an already-collapsed run rather than at a real boundary.
	collapses []collapse

	diagnostics []green.Diagnostic
	finished    bool
}

// New creates a builder over a fresh node cache.
func New() *Builder {
	return &Builder{cache: green.NewCache()}
}

// NewWithCache creates a builder over an existing cache, letting a caller
// amortize interning across several independent builder sessions that are
// expected to share structure (e.g. re-parsing siblings of a known-common
// shape). The cache must not be used by any other builder concurrently.
func NewWithCache(cache *green.Cache) *Builder {
	return &Builder{cache: cache}
}

// Cache returns the node cache this builder is driving.
func (b *Builder) Cache() *green.Cache { return b.cache }

func (b *Builder) requireNotFinished() {
	if b.finished {
		fail("builder: operation called after finish()")
	}
}

// StartNode pushes a new open parent onto the stack.
func (b *Builder) StartNode(kind green.Kind) {
	b.requireNotFinished()
	b.parents = append(b.parents, openParent{
		kind:       kind,
		childStart: len(b.children),
		byteOffset: b.offset,
		diagFence:  len(b.pending),
	})
}

// FinishNode pops the innermost open parent, interns a node from the
// children appended since it was opened, and pushes the result. Pending
// diagnostics are drained and attached to the new node, spanning
// [byteOffset-at-open, current offset).
//
// The split between "this node's diagnostics" and "diagnostics that roll
// up to an ancestor" depends on how the parent was opened:
//   - opened by StartNode: diagnostics queued since the open belong to
//     this node (pending[fence:]); anything queued earlier is left for an
//     ancestor (pending[:fence]).
//   - opened by StartNodeAt (a retroactive wrap): the decision recorded in
//     DESIGN.md is the opposite — diagnostics queued *before* the wrap
//     belong to the node the wrap creates (pending[:fence]); diagnostics
//     queued *after* belong to whatever encloses it (pending[fence:]).
func (b *Builder) FinishNode() {
	b.requireNotFinished()
	if len(b.parents) == 0 {
		fail("builder: finish_node() with no matching start_node()")
	}
	top := b.parents[len(b.parents)-1]
	b.parents = b.parents[:len(b.parents)-1]

	var mine, rest []queuedNodeDiag
	if top.retroactive {
		mine = append([]queuedNodeDiag(nil), b.pending[:top.diagFence]...)
		rest = append([]queuedNodeDiag(nil), b.pending[top.diagFence:]...)
	} else {
		mine = append([]queuedNodeDiag(nil), b.pending[top.diagFence:]...)
		rest = append([]queuedNodeDiag(nil), b.pending[:top.diagFence]...)
	}
	b.pending = rest

	childStart := top.childStart
	run := b.children[childStart:]
	runLen := len(run)
	hash, node := b.cache.Node(top.kind, run)
	b.children = append(b.children[:childStart], green.ChildSlot{Hash: hash, Elem: green.NodeElement(node)})

	if runLen > 0 {
		b.collapses = append(b.collapses, collapse{start: childStart, end: childStart + runLen})
	}

	if len(mine) > 0 {
		resolved := make([]green.Diagnostic, len(mine))
		for i, qd := range mine {
			resolved[i] = green.Diagnostic{
				Code:     qd.code,
				Severity: qd.severity,
				Offset:   top.byteOffset,
				Length:   b.offset - top.byteOffset,
				Message:  qd.message,
			}
		}
		b.diagnostics = append(b.diagnostics, resolved...)
		b.cache.RecordDiagnostics(node, resolved)
	}
}

// Token interns a token with no trivia and pushes it, advancing the byte
// offset by len(text). It is shorthand for the common case; use
// TokenBuilder when leading/trailing trivia or token-scoped diagnostics
// are needed.
func (b *Builder) Token(kind green.Kind, text []byte) {
	b.requireNotFinished()
	hash, tok := b.cache.Token(kind, text, green.TriviaList{}, green.TriviaList{})
	b.children = append(b.children, green.ChildSlot{Hash: hash, Elem: green.TokenElement(tok)})
	b.offset += uint32(len(text))
}

// TokenBuilder opens a fluent builder for a token with leading/trailing
// trivia and, optionally, token-scoped diagnostics. Call Commit to push
// the finished token, exactly as Token does.
func (b *Builder) TokenBuilder(kind green.Kind) *TokenBuilder {
	b.requireNotFinished()
	return &TokenBuilder{
		parent:      b,
		kind:        kind,
		startOffset: b.offset,
		curOffset:   b.offset,
	}
}

// Checkpoint captures the current children-buffer length as an opaque,
// later-consumable position.
func (b *Builder) Checkpoint() Checkpoint {
	b.requireNotFinished()
	return Checkpoint{index: uint32(len(b.children)) + 1}
}

// StartNodeAt validates c and pushes a retroactive parent so that the next
// matching FinishNode wraps everything appended to the children buffer
// since c was captured. A checkpoint that reaches below the start of the
// innermost currently-open parent is rejected.
func (b *Builder) StartNodeAt(c Checkpoint, kind green.Kind) {
	b.requireNotFinished()
	if !c.valid() {
		fail("builder: start_node_at() called with an unset Checkpoint")
	}
	idx := int(c.index) - 1
	if idx < 0 || idx > len(b.children) {
		fail("builder: start_node_at() checkpoint %d is out of range (children length %d)", idx, len(b.children))
	}
	if len(b.parents) > 0 {
		innermostStart := b.parents[len(b.parents)-1].childStart
		if idx < innermostStart {
			fail("builder: start_node_at() checkpoint %d is below the innermost open parent's start %d", idx, innermostStart)
		}
	}
	for _, cl := range b.collapses {
		if cl.start < idx && idx < cl.end {
			fail("builder: start_node_at() checkpoint %d was invalidated by an intervening finish_node", idx)
		}
	}

	var offsetAtC uint32
	if idx == len(b.children) {
		offsetAtC = b.offset
	} else {
		offsetAtC = b.offsetAtChildIndex(idx)
	}

	b.parents = append(b.parents, openParent{
		kind:        kind,
		childStart:  idx,
		byteOffset:  offsetAtC,
		diagFence:   len(b.pending),
		retroactive: true,
	})
}

// offsetAtChildIndex recomputes the byte offset at which child i begins by
// summing the widths of every child before it. The children buffer does
// not itself carry absolute offsets (only nodes' internal slots do, via
// RelativeOffset), so this is a linear scan over whatever is currently
// buffered — bounded by how many siblings a single parent can accumulate
// before being closed or wrapped, which in practice is small.
func (b *Builder) offsetAtChildIndex(i int) uint32 {
	var off uint32
	if len(b.parents) > 0 {
		top := b.parents[len(b.parents)-1]
		off = top.byteOffset
		for j := top.childStart; j < i; j++ {
			off += b.children[j].Elem.FullWidth()
		}
		return off
	}
	for j := 0; j < i; j++ {
		off += b.children[j].Elem.FullWidth()
	}
	return off
}

// Diagnostic queues code/severity/message to attach to whichever node is
// currently being constructed; see FinishNode for exactly how "currently
// being constructed" is resolved against StartNodeAt's retroactive wraps.
func (b *Builder) Diagnostic(code uint16, severity green.Severity, message string) {
	b.requireNotFinished()
	b.pending = append(b.pending, queuedNodeDiag{code: code, severity: severity, message: message})
}

// Finish asserts the builder is balanced (no open parents, exactly one
// remaining child, and that child is a node) and returns it along with
// every diagnostic collected during construction. The builder must not be
// used again afterward.
func (b *Builder) Finish() (green.Node, []green.Diagnostic) {
	b.requireNotFinished()
	if len(b.parents) != 0 {
		fail("builder: finish() called with %d unbalanced start_node() call(s)", len(b.parents))
	}
	if len(b.children) != 1 {
		fail("builder: finish() expects exactly one remaining handle, found %d", len(b.children))
	}
	node, ok := b.children[0].Elem.AsNode()
	if !ok {
		fail("builder: finish() expects the remaining handle to be a node")
	}
	b.finished = true
	return node, b.diagnostics
}
