package green

import "bytes"

type tokenData struct {
	kind      Kind
	text      []byte
	leading   TriviaList
	trailing  TriviaList
	fullWidth uint32
}

// Token is an immutable terminal leaf: a kind, its own bytes, and optional
// leading/trailing trivia. A Token owns the strong references to its
// leading and trailing trivia lists; nothing else may release them once
// ownership has been transferred into the token by the cache.
type Token struct {
	b *box[tokenData]
}

func newToken(kind Kind, text []byte, leading, trailing TriviaList) Token {
	fw := uint64(len(text)) + uint64(leading.FullWidth()) + uint64(trailing.FullWidth())
	if fw > 1<<32-1 {
		panic("green: token full width overflows u32")
	}
	return Token{b: newBox(tokenData{
		kind:      kind,
		text:      text,
		leading:   leading,
		trailing:  trailing,
		fullWidth: uint32(fw),
	})}
}

func (t Token) IsZero() bool { return t.b == nil }

func (t Token) Kind() Kind {
	if t.IsZero() {
		return 0
	}
	return t.b.value.kind
}

func (t Token) Text() []byte {
	if t.IsZero() {
		return nil
	}
	return t.b.value.text
}

func (t Token) Leading() TriviaList {
	if t.IsZero() {
		return TriviaList{}
	}
	return t.b.value.leading
}

func (t Token) Trailing() TriviaList {
	if t.IsZero() {
		return TriviaList{}
	}
	return t.b.value.trailing
}

// Width excludes surrounding trivia: it is len(text()) only.
func (t Token) Width() uint32 {
	if t.IsZero() {
		return 0
	}
	return uint32(len(t.b.value.text))
}

// FullWidth is leading.full_width + len(text) + trailing.full_width.
func (t Token) FullWidth() uint32 {
	if t.IsZero() {
		return 0
	}
	return t.b.value.fullWidth
}

// FullText returns leading ++ text ++ trailing, in that order.
func (t Token) FullText() []byte {
	if t.IsZero() {
		return nil
	}
	out := make([]byte, 0, t.FullWidth())
	out = append(out, t.Leading().FullText()...)
	out = append(out, t.Text()...)
	out = append(out, t.Trailing().FullText()...)
	return out
}

// WriteTo appends this token's serialization to buf, conditionally
// including the leading and/or trailing trivia. Used by Node.writeTo so
// that full_text / text differ only in which edge trivia is included.
func (t Token) WriteTo(buf *bytes.Buffer, includeLeading, includeTrailing bool) {
	if t.IsZero() {
		return
	}
	if includeLeading {
		buf.Write(t.Leading().FullText())
	}
	buf.Write(t.Text())
	if includeTrailing {
		buf.Write(t.Trailing().FullText())
	}
}

func (t Token) Clone() Token {
	if t.IsZero() {
		return t
	}
	t.b.clone()
	return t
}

func (t Token) Release() bool {
	if t.IsZero() {
		return false
	}
	return t.b.release()
}

func (t Token) PtrEq(o Token) bool { return t.b == o.b }

// Equal compares (kind, text, leading, trailing) elementwise.
func (t Token) Equal(o Token) bool {
	if t.PtrEq(o) {
		return true
	}
	if t.IsZero() || o.IsZero() {
		return t.IsZero() == o.IsZero()
	}
	return t.Kind() == o.Kind() &&
		bytes.Equal(t.Text(), o.Text()) &&
		t.Leading().Equal(o.Leading()) &&
		t.Trailing().Equal(o.Trailing())
}

func (t Token) String() string {
	if t.IsZero() {
		return "Token(<nil>)"
	}
	return "Token(" + t.Kind().String() + ", " + string(t.Text()) + ")"
}
