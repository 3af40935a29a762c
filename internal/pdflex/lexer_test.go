package pdflex

import (
	"bytes"
	"testing"

	"github.com/pogor-dev/trustpdf/internal/green"
)

const rootKind green.Kind = 1000

func TestS8DemonstrativeLexerRoundTrip(t *testing.T) {
	t.Parallel()

	src := []byte("  %comment\n/Name1 42 -3.14 (lit(eral)\\)) <48656C6C6F> << /K [1 2] >> {1 2} ")

	root, diags := Build(src, rootKind)

	if len(diags) != 0 {
		t.Fatalf("diagnostics = %v, want none for well-formed input", diags)
	}
	if got := root.FullText(); !bytes.Equal(got, src) {
		t.Fatalf("FullText() round-trip mismatch:\n got: %q\nwant: %q", got, src)
	}
	if got, want := root.FullWidth(), uint32(len(src)); got != want {
		t.Fatalf("FullWidth() = %d, want %d", got, want)
	}
}

func TestS8LexerReportsUnterminatedLiteralString(t *testing.T) {
	t.Parallel()

	src := []byte("(unterminated")
	root, diags := Build(src, rootKind)

	if len(diags) != 1 {
		t.Fatalf("diagnostics = %v, want exactly 1", diags)
	}
	if diags[0].Message == "" {
		t.Fatal("expected a non-empty diagnostic message")
	}
	if got := root.FullText(); !bytes.Equal(got, src) {
		t.Fatalf("FullText() round-trip mismatch even on malformed input:\n got: %q\nwant: %q", got, src)
	}
}

func TestS8LexerReportsUnterminatedHexString(t *testing.T) {
	t.Parallel()

	src := []byte("<48656C6C6F")
	root, diags := Build(src, rootKind)

	if len(diags) != 1 {
		t.Fatalf("diagnostics = %v, want exactly 1", diags)
	}
	if got := root.FullText(); !bytes.Equal(got, src) {
		t.Fatalf("FullText() round-trip mismatch:\n got: %q\nwant: %q", got, src)
	}
}

func TestS8LexerPreservesTrailingWhitespace(t *testing.T) {
	t.Parallel()

	src := []byte("42   ")
	root, _ := Build(src, rootKind)

	if got := root.FullText(); !bytes.Equal(got, src) {
		t.Fatalf("FullText() = %q, want %q (trailing whitespace dropped)", got, src)
	}
}

func TestS8LexerReportsInvalidByte(t *testing.T) {
	t.Parallel()

	src := []byte{'4', '2', ' ', 0x80}
	root, diags := Build(src, rootKind)

	if len(diags) != 1 {
		t.Fatalf("diagnostics = %v, want exactly 1", diags)
	}
	if got, want := diags[0].Code, diagnosticCodes[DiagnosticInvalidByte]; got != want {
		t.Fatalf("diagnostic code = %d, want %d (DiagnosticInvalidByte)", got, want)
	}
	if got := root.FullText(); !bytes.Equal(got, src) {
		t.Fatalf("FullText() round-trip mismatch:\n got: %q\nwant: %q", got, src)
	}
}

func TestS8LexEmptyInput(t *testing.T) {
	t.Parallel()

	root, diags := Build(nil, rootKind)

	if len(diags) != 0 {
		t.Fatalf("diagnostics = %v, want none", diags)
	}
	if got := root.FullWidth(); got != 0 {
		t.Fatalf("FullWidth() = %d, want 0", got)
	}
}
