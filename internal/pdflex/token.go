package pdflex

import (
	"github.com/pogor-dev/trustpdf/internal/green"
	"github.com/pogor-dev/trustpdf/internal/text"
)

// DiagnosticCode identifies lexer diagnostic categories, following the
// teacher's string-constant idiom rather than numeric-only codes at this
// boundary (SPEC_FULL.md §7). Builder.Diagnostic's uint16 wire-shaped code
// is a separate, later-assigned concern.
type DiagnosticCode string

const (
	DiagnosticInvalidByte           DiagnosticCode = "LEX_INVALID_BYTE"
	DiagnosticUnterminatedString    DiagnosticCode = "LEX_UNTERMINATED_STRING"
	DiagnosticUnterminatedHexString DiagnosticCode = "LEX_UNTERMINATED_HEX_STRING"
	DiagnosticUnknownCharacter      DiagnosticCode = "LEX_UNKNOWN_CHARACTER"
)

// Diagnostic is a lexer-level issue with source location.
type Diagnostic struct {
	Code    DiagnosticCode
	Message string
	Span    text.Span
}

// Trivia is whitespace/comment material attached as a Token's leading
// trivia, referenced by span rather than carrying its own bytes.
type Trivia struct {
	Kind green.Kind
	Span text.Span
}

// Bytes returns the trivia's source bytes.
func (t Trivia) Bytes(src []byte) []byte { return bytesForSpan(src, t.Span) }

// Token is a lexed token with a source span and leading trivia. Trailing
// trivia is not tracked here: per the teacher's lossless-lexer convention,
// whitespace/comments are always attached as the *leading* trivia of the
// following token (or of the EOF token, for trailing input).
type Token struct {
	Kind    green.Kind
	Span    text.Span
	Leading []Trivia
}

// Bytes returns the token's source bytes.
func (t Token) Bytes(src []byte) []byte { return bytesForSpan(src, t.Span) }

func bytesForSpan(src []byte, sp text.Span) []byte {
	if !sp.IsValid() {
		return nil
	}
	if sp.End > text.ByteOffset(len(src)) {
		return nil
	}
	return src[sp.Start:sp.End]
}
