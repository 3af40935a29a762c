package green

import "bytes"

// maxCacheableChildren caps node interning to small nodes: beyond this the
// cost of the equality probe outweighs the benefit of deduplication, so
// wider nodes are built but never cached.
const maxCacheableChildren = 3

// Cache is the node cache (interner): it returns canonical handles for
// leaves and interior nodes so structurally-equal subtrees across one
// construction session share one allocation.
//
// A Cache is single-writer and belongs to exactly one Builder for the
// lifetime of a parse (see DESIGN.md for the strong-vs-weak-entries
// decision): every interned value is kept alive by the cache's own
// reference for as long as the cache itself is reachable, which is the
// short-lived, builder-per-parse case the specification explicitly
// permits.
type Cache struct {
	trivia      map[uint64][]Trivia
	triviaLists map[uint64][]TriviaList
	tokens      map[uint64][]Token
	nodes       map[uint64][]Node
	diagnostics map[*box[nodeData]][]Diagnostic
}

// NewCache creates an empty node cache.
func NewCache() *Cache {
	return &Cache{
		trivia:      make(map[uint64][]Trivia),
		triviaLists: make(map[uint64][]TriviaList),
		tokens:      make(map[uint64][]Token),
		nodes:       make(map[uint64][]Node),
		diagnostics: make(map[*box[nodeData]][]Diagnostic),
	}
}

// Trivia interns a trivia leaf keyed by (kind, text).
func (c *Cache) Trivia(kind Kind, text []byte) (uint64, Trivia) {
	h := hashKindText(kind, text)
	for _, cand := range c.trivia[h] {
		if cand.Kind() == kind && bytes.Equal(cand.Text(), text) {
			return h, cand.Clone()
		}
	}
	owned := append([]byte(nil), text...)
	t := newTrivia(kind, owned)
	c.trivia[h] = append(c.trivia[h], t.Clone())
	return h, t
}

// TriviaList interns a run of trivia leaves. pieces must already be
// cache-owned handles (obtained from Trivia); ownership of each piece
// passes to TriviaList, which either composes them into a new canonical
// list or — on a cache hit — releases them and returns a clone of the
// existing one.
func (c *Cache) TriviaList(pieces []Trivia) (uint64, TriviaList) {
	if len(pieces) == 0 {
		return noHash, TriviaList{}
	}
	h := hashTriviaList(pieces)
	for _, cand := range c.triviaLists[h] {
		if triviaPiecesEqual(cand.Pieces(), pieces) {
			for _, p := range pieces {
				p.Release()
			}
			return h, cand.Clone()
		}
	}
	var fw uint64
	for _, p := range pieces {
		fw += uint64(p.Width())
	}
	l := newTriviaList(pieces, uint32(fw))
	c.triviaLists[h] = append(c.triviaLists[h], l.Clone())
	return h, l
}

func triviaPiecesEqual(a, b []Trivia) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// Token interns a token keyed on (kind, text) only for the hash probe;
// trivia are folded into the full-equality comparison on a bucket hit, per
// the decision recorded in SPEC_FULL.md §9 / DESIGN.md. leading and
// trailing are consumed: ownership transfers into the returned token on a
// miss, or is released on a hit once the canonical token has been cloned.
func (c *Cache) Token(kind Kind, text []byte, leading, trailing TriviaList) (uint64, Token) {
	h := hashKindText(kind, text)
	for _, cand := range c.tokens[h] {
		if cand.Kind() == kind && bytes.Equal(cand.Text(), text) &&
			cand.Leading().Equal(leading) && cand.Trailing().Equal(trailing) {
			leading.Release()
			trailing.Release()
			return h, cand.Clone()
		}
	}
	owned := append([]byte(nil), text...)
	t := newToken(kind, owned, leading, trailing)
	c.tokens[h] = append(c.tokens[h], t.Clone())
	return h, t
}

// ChildSlot is one entry of the builder's flat children buffer: the hash
// computed when the child was interned (or noHash if it was not
// cacheable), plus the child element itself.
type ChildSlot struct {
	Hash uint64
	Elem Element
}

// Node interns an interior node from children[0:], which it drains (takes
// ownership of every element in the slice). Node caching is skipped when
// there are more than maxCacheableChildren children, or when any child's
// hash is the noHash sentinel; in both cases a fresh, uncached node is
// still returned (construction always succeeds — see §4.4's failure
// semantics) and noHash is returned as its hash so callers that nest this
// node as a child of another propagate the sentinel correctly.
func (c *Cache) Node(kind Kind, children []ChildSlot) (uint64, Node) {
	slots := make([]Slot, len(children))
	var offset uint64
	for i, ch := range children {
		slots[i] = Slot{RelativeOffset: uint32(offset), Element: ch.Elem}
		offset += uint64(ch.Elem.FullWidth())
	}

	cacheable := len(children) <= maxCacheableChildren
	var h uint64
	if cacheable {
		hashes := make([]uint64, len(children))
		for i, ch := range children {
			hashes[i] = ch.Hash
		}
		h = combineNodeHash(kind, hashes)
		if h == noHash {
			cacheable = false
		}
	}

	if cacheable {
		for _, cand := range c.nodes[h] {
			if nodeMatchesSlots(cand, kind, slots) {
				for _, s := range slots {
					s.Element.Release()
				}
				return h, cand.Clone()
			}
		}
	}

	n := newNode(kind, slots, c)
	if cacheable {
		c.nodes[h] = append(c.nodes[h], n.Clone())
	} else {
		h = noHash
	}
	return h, n
}

func nodeMatchesSlots(cand Node, kind Kind, slots []Slot) bool {
	if cand.Kind() != kind {
		return false
	}
	candSlots := cand.Slots()
	if len(candSlots) != len(slots) {
		return false
	}
	for i := range slots {
		if candSlots[i].RelativeOffset != slots[i].RelativeOffset {
			return false
		}
		if !candSlots[i].Element.Equal(slots[i].Element) {
			return false
		}
	}
	return true
}

// RecordDiagnostics attaches diags to node in the cache-owned side table.
// If node was already present (a dedup hit produced it on an earlier call
// to finish_node), its diagnostics are left untouched: identity is
// established once, at first interning, and diagnostics never flow back
// into content hashing.
//
// Builders call this directly after interning a node, rather than the
// cache doing it internally during Node(), because only the builder knows
// which pending diagnostics belong to the node being closed.
func (c *Cache) RecordDiagnostics(n Node, diags []Diagnostic) {
	if len(diags) == 0 || n.IsZero() {
		return
	}
	if _, exists := c.diagnostics[n.b]; exists {
		return
	}
	c.diagnostics[n.b] = diags
}

func (c *Cache) diagnosticsFor(b *box[nodeData]) []Diagnostic {
	return c.diagnostics[b]
}
