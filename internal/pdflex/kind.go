// Package pdflex is a minimal, explicitly non-grammar PDF-flavored
// tokenizer. It exists only to drive internal/green/builder.Builder with a
// realistic byte stream — numbers, names, delimiters, comment/whitespace
// trivia, and opaque string/hex-string runs — so the tree layer's
// round-trip fidelity can be exercised end to end. It has no notion of
// objects, dictionaries, xref tables, or any other PDF document
// structure: that lexical grammar is out of scope (see SPEC_FULL.md §1).
package pdflex

import (
	"fmt"

	"github.com/pogor-dev/trustpdf/internal/green"
)

// Kind values are green.Kind constants: pdflex is itself the "external
// collaborator" the core tree package expects to define them, so tokens
// it produces plug directly into Builder.Token/TokenBuilder without
// translation.
const (
	KindError green.Kind = iota
	KindEOF
	KindNumber
	KindName
	KindStringLiteral
	KindHexString
	KindLBrace
	KindRBrace
	KindLBracket
	KindRBracket
	KindLDoubleAngle
	KindRDoubleAngle

	TriviaWhitespace
	TriviaComment
)

func KindString(k green.Kind) string {
	switch k {
	case KindError:
		return "Error"
	case KindEOF:
		return "EOF"
	case KindNumber:
		return "Number"
	case KindName:
		return "Name"
	case KindStringLiteral:
		return "StringLiteral"
	case KindHexString:
		return "HexString"
	case KindLBrace:
		return "LBrace"
	case KindRBrace:
		return "RBrace"
	case KindLBracket:
		return "LBracket"
	case KindRBracket:
		return "RBracket"
	case KindLDoubleAngle:
		return "LDoubleAngle"
	case KindRDoubleAngle:
		return "RDoubleAngle"
	case TriviaWhitespace:
		return "Whitespace"
	case TriviaComment:
		return "Comment"
	default:
		return fmt.Sprintf("Kind(%d)", uint16(k))
	}
}
