package pdflex

import (
	"github.com/pogor-dev/trustpdf/internal/green"
	"github.com/pogor-dev/trustpdf/internal/green/builder"
)

// diagnosticCodes assigns the uint16 wire-shaped code (SPEC_FULL.md §3.6)
// each lexer DiagnosticCode maps to when it crosses into a green.Diagnostic.
var diagnosticCodes = map[DiagnosticCode]uint16{
	DiagnosticInvalidByte:           1,
	DiagnosticUnterminatedString:    2,
	DiagnosticUnterminatedHexString: 3,
	DiagnosticUnknownCharacter:      4,
}

// Build lexes src and drives a fresh Builder with the resulting token
// stream, wrapping every token (with its leading trivia) directly under a
// single root node of kind rootKind. Lexer diagnostics are queued against
// the root before it closes, so they end up attached to it exactly like
// any other Builder.Diagnostic call would.
//
// It is a demonstration of the collaborator contract Builder expects, not
// a parser: it builds no structure beyond the flat root, since recognizing
// PDF object/array/dictionary syntax is explicitly out of scope.
func Build(src []byte, rootKind green.Kind) (green.Node, []green.Diagnostic) {
	result := Lex(src)

	b := builder.New()
	b.StartNode(rootKind)

	for _, diag := range result.Diagnostics {
		b.Diagnostic(diagnosticCodes[diag.Code], green.Error, diag.Message)
	}

	for _, tok := range result.Tokens {
		if tok.Kind == KindEOF && len(tok.Leading) == 0 {
			continue
		}
		tb := b.TokenBuilder(tok.Kind)
		for _, triv := range tok.Leading {
			tb.Trivia(triv.Kind, triv.Bytes(src))
		}
		tb.Text(tok.Bytes(src))
		tb.Commit()
	}

	b.FinishNode()
	return b.Finish()
}
