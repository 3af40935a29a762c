package green

import "testing"

const (
	kindRoot  Kind = 100
	kindInner Kind = 101
)

func tok(text string, leadWS bool) Token {
	var leading TriviaList
	if leadWS {
		p := newTrivia(kindWhitespace, []byte(" "))
		leading = newTriviaList([]Trivia{p}, p.Width())
	}
	return newToken(kindIdent, []byte(text), leading, TriviaList{})
}

func TestNodeRoundTripAndWidth(t *testing.T) {
	t.Parallel()

	innerTok := tok("abc", false)
	inner := newNode(kindInner, []Slot{
		{RelativeOffset: 0, Element: TokenElement(innerTok)},
	}, nil)

	outerTok := tok("def", true) // " def"
	root := newNode(kindRoot, []Slot{
		{RelativeOffset: 0, Element: NodeElement(inner)},
		{RelativeOffset: 3, Element: TokenElement(outerTok)},
	}, nil)

	if got, want := string(root.FullText()), "abc def"; got != want {
		t.Fatalf("FullText() = %q, want %q", got, want)
	}
	if got, want := root.FullWidth(), uint32(7); got != want {
		t.Fatalf("FullWidth() = %d, want %d", got, want)
	}
	// Width excludes the first token's leading trivia (none here, "abc" has
	// none) and the last token's trailing trivia (none here either), so it
	// equals FullWidth.
	if got, want := root.Width(), uint32(7); got != want {
		t.Fatalf("Width() = %d, want %d", got, want)
	}

	ft, ok := root.FirstToken()
	if !ok || string(ft.Text()) != "abc" {
		t.Fatalf("FirstToken() = %v, %v, want abc token", ft, ok)
	}
	lt, ok := root.LastToken()
	if !ok || string(lt.Text()) != "def" {
		t.Fatalf("LastToken() = %v, %v, want def token", lt, ok)
	}
}

func TestNodeTextExcludesEdgeTrivia(t *testing.T) {
	t.Parallel()

	first := tok("abc", true)  // " abc"
	last := tok("def", true)   // " def"
	root := newNode(kindRoot, []Slot{
		{RelativeOffset: 0, Element: TokenElement(first)},
		{RelativeOffset: 4, Element: TokenElement(last)},
	}, nil)

	if got, want := string(root.FullText()), " abc def"; got != want {
		t.Fatalf("FullText() = %q, want %q", got, want)
	}
	// Text() drops the first token's leading trivia only (there is no
	// trailing trivia on the last token here to drop).
	if got, want := string(root.Text()), "abc def"; got != want {
		t.Fatalf("Text() = %q, want %q", got, want)
	}
}

func TestNodeEqualityPrefersPointerIdentity(t *testing.T) {
	t.Parallel()

	a := newNode(kindRoot, []Slot{{RelativeOffset: 0, Element: TokenElement(tok("x", false))}}, nil)
	if !a.Equal(a) {
		t.Fatal("a node should always equal itself")
	}

	b := newNode(kindRoot, []Slot{{RelativeOffset: 0, Element: TokenElement(tok("x", false))}}, nil)
	if !a.Equal(b) {
		t.Fatal("structurally identical nodes should compare equal via content fallback")
	}

	c := newNode(kindRoot, []Slot{{RelativeOffset: 0, Element: TokenElement(tok("y", false))}}, nil)
	if a.Equal(c) {
		t.Fatal("structurally different nodes should not compare equal")
	}
}

func TestNodeZeroValue(t *testing.T) {
	t.Parallel()

	var z Node
	if !z.IsZero() {
		t.Fatal("zero Node should report IsZero")
	}
	if z.FullWidth() != 0 || z.SlotCount() != 0 {
		t.Fatal("zero Node should have zero width and slot count")
	}
	if z.Diagnostics() != nil {
		t.Fatal("zero Node should have no diagnostics")
	}
	if _, ok := z.FirstToken(); ok {
		t.Fatal("zero Node should have no first token")
	}
}

func TestNodeSlotCountOverflowPanics(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on slot count overflow")
		}
	}()

	slots := make([]Slot, maxSlotCount+1)
	for i := range slots {
		slots[i] = Slot{Element: TriviaElement(newTrivia(kindWhitespace, nil))}
	}
	newNode(kindRoot, slots, nil)
}
