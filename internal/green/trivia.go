package green

import "bytes"

type triviaData struct {
	kind Kind
	text []byte
}

// Trivia is an immutable leaf carrying lexically insignificant bytes
// (whitespace, comments, line endings). Two Trivia leaves with equal
// (kind, text) are interchangeable; the cache guarantees pointer identity
// for any pair produced from the same session.
type Trivia struct {
	b *box[triviaData]
}

func newTrivia(kind Kind, text []byte) Trivia {
	return Trivia{b: newBox(triviaData{kind: kind, text: text})}
}

// IsZero reports whether t is the absent-trivia zero value.
func (t Trivia) IsZero() bool { return t.b == nil }

func (t Trivia) Kind() Kind {
	if t.IsZero() {
		return 0
	}
	return t.b.value.kind
}

func (t Trivia) Text() []byte {
	if t.IsZero() {
		return nil
	}
	return t.b.value.text
}

// Width is the byte length of the trivia's text.
func (t Trivia) Width() uint32 {
	if t.IsZero() {
		return 0
	}
	return uint32(len(t.b.value.text))
}

// Clone records a new strong reference and returns it.
func (t Trivia) Clone() Trivia {
	if t.IsZero() {
		return t
	}
	t.b.clone()
	return t
}

// Release drops a strong reference, reporting whether it was the last one.
func (t Trivia) Release() bool {
	if t.IsZero() {
		return false
	}
	return t.b.release()
}

// PtrEq reports whether a and b are handles to the very same allocation.
func (t Trivia) PtrEq(o Trivia) bool { return t.b == o.b }

// Equal compares by (kind, text), falling back to content only when the
// pointer-equality fast path does not apply.
func (t Trivia) Equal(o Trivia) bool {
	if t.PtrEq(o) {
		return true
	}
	if t.IsZero() || o.IsZero() {
		return t.IsZero() == o.IsZero()
	}
	return t.Kind() == o.Kind() && bytes.Equal(t.Text(), o.Text())
}

func (t Trivia) String() string {
	if t.IsZero() {
		return "Trivia(<nil>)"
	}
	return "Trivia(" + t.Kind().String() + ", " + string(t.Text()) + ")"
}

type triviaListData struct {
	pieces    []Trivia
	fullWidth uint32
}

// TriviaList is an interned run of trivia leaves, carried by a Token as its
// optional leading or trailing trivia. It is itself a handle: identical
// runs produced by one cache share one allocation.
type TriviaList struct {
	b *box[triviaListData]
}

func newTriviaList(pieces []Trivia, fullWidth uint32) TriviaList {
	return TriviaList{b: newBox(triviaListData{pieces: pieces, fullWidth: fullWidth})}
}

func (l TriviaList) IsZero() bool { return l.b == nil }

func (l TriviaList) Pieces() []Trivia {
	if l.IsZero() {
		return nil
	}
	return l.b.value.pieces
}

func (l TriviaList) Len() int {
	if l.IsZero() {
		return 0
	}
	return len(l.b.value.pieces)
}

func (l TriviaList) FullWidth() uint32 {
	if l.IsZero() {
		return 0
	}
	return l.b.value.fullWidth
}

// FullText concatenates every piece's bytes in order. Trivia lists are
// flat (a list of leaves, never of lists), so no explicit traversal stack
// is needed here the way it is for node serialization.
func (l TriviaList) FullText() []byte {
	if l.IsZero() {
		return nil
	}
	out := make([]byte, 0, l.FullWidth())
	for _, p := range l.Pieces() {
		out = append(out, p.Text()...)
	}
	return out
}

func (l TriviaList) Clone() TriviaList {
	if l.IsZero() {
		return l
	}
	l.b.clone()
	return l
}

func (l TriviaList) Release() bool {
	if l.IsZero() {
		return false
	}
	return l.b.release()
}

func (l TriviaList) PtrEq(o TriviaList) bool { return l.b == o.b }

func (l TriviaList) Equal(o TriviaList) bool {
	if l.PtrEq(o) {
		return true
	}
	if l.IsZero() || o.IsZero() {
		return l.IsZero() == o.IsZero()
	}
	pa, pb := l.Pieces(), o.Pieces()
	if len(pa) != len(pb) {
		return false
	}
	for i := range pa {
		if !pa[i].Equal(pb[i]) {
			return false
		}
	}
	return true
}
