package green

import "testing"

const (
	kindWhitespace Kind = 1
	kindComment    Kind = 2
)

func TestTriviaEqualAndText(t *testing.T) {
	t.Parallel()

	a := newTrivia(kindWhitespace, []byte("  "))
	b := newTrivia(kindWhitespace, []byte("  "))
	c := newTrivia(kindWhitespace, []byte(" "))
	d := newTrivia(kindComment, []byte("  "))

	if !a.Equal(b) {
		t.Fatal("equal (kind, text) trivia should compare equal")
	}
	if a.Equal(c) {
		t.Fatal("different text should not compare equal")
	}
	if a.Equal(d) {
		t.Fatal("different kind should not compare equal")
	}
	if a.PtrEq(b) {
		t.Fatal("distinct allocations should not be PtrEq before interning")
	}
	if got := string(a.Text()); got != "  " {
		t.Fatalf("Text() = %q, want %q", got, "  ")
	}
	if got := a.Width(); got != 2 {
		t.Fatalf("Width() = %d, want 2", got)
	}
}

func TestTriviaZeroValue(t *testing.T) {
	t.Parallel()

	var z Trivia
	if !z.IsZero() {
		t.Fatal("zero Trivia should report IsZero")
	}
	if z.Text() != nil {
		t.Fatal("zero Trivia should have nil Text")
	}
	if z.Width() != 0 {
		t.Fatal("zero Trivia should have zero Width")
	}
	if !z.Equal(Trivia{}) {
		t.Fatal("two zero Trivia values should be equal")
	}
}

func TestTriviaListFullTextAndEqual(t *testing.T) {
	t.Parallel()

	p1 := newTrivia(kindWhitespace, []byte(" "))
	p2 := newTrivia(kindComment, []byte("%c"))
	l1 := newTriviaList([]Trivia{p1, p2}, p1.Width()+p2.Width())

	q1 := newTrivia(kindWhitespace, []byte(" "))
	q2 := newTrivia(kindComment, []byte("%c"))
	l2 := newTriviaList([]Trivia{q1, q2}, q1.Width()+q2.Width())

	if !l1.Equal(l2) {
		t.Fatal("structurally identical trivia lists should be equal")
	}
	if got, want := string(l1.FullText()), " %c"; got != want {
		t.Fatalf("FullText() = %q, want %q", got, want)
	}
	if l1.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", l1.Len())
	}
	if l1.FullWidth() != 3 {
		t.Fatalf("FullWidth() = %d, want 3", l1.FullWidth())
	}
}

func TestTriviaListZeroValue(t *testing.T) {
	t.Parallel()

	var z TriviaList
	if !z.IsZero() {
		t.Fatal("zero TriviaList should report IsZero")
	}
	if z.FullText() != nil {
		t.Fatal("zero TriviaList should have nil FullText")
	}
	if z.Len() != 0 || z.FullWidth() != 0 {
		t.Fatal("zero TriviaList should have zero length and width")
	}
}
