package green

import "testing"

const kindIdent Kind = 10

func TestTokenFullTextAndWidth(t *testing.T) {
	t.Parallel()

	leadPiece := newTrivia(kindWhitespace, []byte(" "))
	leading := newTriviaList([]Trivia{leadPiece}, leadPiece.Width())
	trailPiece := newTrivia(kindWhitespace, []byte("\n"))
	trailing := newTriviaList([]Trivia{trailPiece}, trailPiece.Width())

	tok := newToken(kindIdent, []byte("abc"), leading, trailing)

	if got := tok.Width(); got != 3 {
		t.Fatalf("Width() = %d, want 3", got)
	}
	if got := tok.FullWidth(); got != 5 {
		t.Fatalf("FullWidth() = %d, want 5", got)
	}
	if got, want := string(tok.FullText()), " abc\n"; got != want {
		t.Fatalf("FullText() = %q, want %q", got, want)
	}
	if got, want := string(tok.Text()), "abc"; got != want {
		t.Fatalf("Text() = %q, want %q", got, want)
	}
}

func TestTokenEqual(t *testing.T) {
	t.Parallel()

	mkToken := func() Token {
		p := newTrivia(kindWhitespace, []byte(" "))
		l := newTriviaList([]Trivia{p}, p.Width())
		return newToken(kindIdent, []byte("x"), l, TriviaList{})
	}

	a := mkToken()
	b := mkToken()
	if !a.Equal(b) {
		t.Fatal("structurally identical tokens should be equal")
	}

	c := newToken(kindIdent, []byte("y"), TriviaList{}, TriviaList{})
	if a.Equal(c) {
		t.Fatal("tokens with different text should not be equal")
	}
}

func TestTokenZeroValue(t *testing.T) {
	t.Parallel()

	var z Token
	if !z.IsZero() {
		t.Fatal("zero Token should report IsZero")
	}
	if z.FullText() != nil || z.Text() != nil {
		t.Fatal("zero Token should serialize to nil")
	}
	if z.Width() != 0 || z.FullWidth() != 0 {
		t.Fatal("zero Token should have zero width")
	}
}
