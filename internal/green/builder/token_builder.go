package builder

import "github.com/pogor-dev/trustpdf/internal/green"

type tokenDiagScope int

const (
	// scopeWholeToken: queued before Text() is called. Covers the token's
	// final full width once leading trivia, text, and trailing trivia are
	// all known, i.e. it is resolved lazily at Commit.
	scopeWholeToken tokenDiagScope = iota
	// scopeTextOnly: queued after Text(), before any trailing trivia.
	// Covers exactly the token's text bytes.
	scopeTextOnly
	// scopeTrailingPiece: queued after a trailing trivia piece. Covers
	// exactly that piece's byte range, already known at queue time.
	scopeTrailingPiece
)

type queuedTokenDiag struct {
	code     uint16
	severity green.Severity
	message  string
	scope    tokenDiagScope
	offset   uint32 // meaningful only for scopeTrailingPiece
	length   uint32 // meaningful only for scopeTrailingPiece
}

// TokenBuilder assembles one token's leading trivia, text, and trailing
// trivia in strict order: every Trivia call before the first Text call
// contributes leading trivia, every Trivia call after contributes
// trailing trivia. Diagnostic may be interleaved anywhere in that
// sequence; where it lands determines what byte range it ends up
// covering once Commit resolves it — see the tokenDiagScope constants.
type TokenBuilder struct {
	parent *Builder
	kind   green.Kind

	leading  []green.Trivia
	trailing []green.Trivia

	textSet bool
	text    []byte

	startOffset uint32 // b.offset when this TokenBuilder was created
	textOffset  uint32 // offset where Text's bytes begin
	curOffset   uint32 // running offset as pieces/text are appended

	lastTrailingOffset uint32
	lastTrailingLength uint32

	diags     []queuedTokenDiag
	committed bool
}

func (tb *TokenBuilder) requireOpen() {
	if tb.committed {
		fail("token_builder: operation called after commit()")
	}
}

// Trivia appends a trivia piece: leading if called before Text, trailing
// if called after.
func (tb *TokenBuilder) Trivia(kind green.Kind, text []byte) *TokenBuilder {
	tb.requireOpen()
	_, piece := tb.parent.cache.Trivia(kind, text)
	n := uint32(len(text))
	if !tb.textSet {
		tb.leading = append(tb.leading, piece)
	} else {
		tb.trailing = append(tb.trailing, piece)
		tb.lastTrailingOffset = tb.curOffset
		tb.lastTrailingLength = n
	}
	tb.curOffset += n
	return tb
}

// Text sets the token's text. It must be called exactly once, after any
// leading trivia and before any trailing trivia.
func (tb *TokenBuilder) Text(text []byte) *TokenBuilder {
	tb.requireOpen()
	if tb.textSet {
		fail("token_builder: text() called more than once")
	}
	tb.textOffset = tb.curOffset
	tb.text = append([]byte(nil), text...)
	tb.textSet = true
	tb.curOffset += uint32(len(text))
	return tb
}

// Diagnostic queues a diagnostic whose byte range is resolved at Commit
// time from the builder's current position in the leading/text/trailing
// sequence — see the tokenDiagScope constants.
func (tb *TokenBuilder) Diagnostic(code uint16, severity green.Severity, message string) *TokenBuilder {
	tb.requireOpen()
	qd := queuedTokenDiag{code: code, severity: severity, message: message}
	switch {
	case !tb.textSet:
		qd.scope = scopeWholeToken
	case len(tb.trailing) == 0:
		qd.scope = scopeTextOnly
	default:
		qd.scope = scopeTrailingPiece
		qd.offset = tb.lastTrailingOffset
		qd.length = tb.lastTrailingLength
	}
	tb.diags = append(tb.diags, qd)
	return tb
}

// Commit interns the token's leading/trailing trivia lists and the token
// itself, appends it to the parent builder's children buffer, advances
// the parent's offset, and resolves every queued diagnostic into the
// parent's final diagnostic vector.
func (tb *TokenBuilder) Commit() {
	tb.requireOpen()
	if !tb.textSet {
		fail("token_builder: commit() called before text()")
	}

	_, leading := tb.parent.cache.TriviaList(tb.leading)
	_, trailing := tb.parent.cache.TriviaList(tb.trailing)

	hash, tok := tb.parent.cache.Token(tb.kind, tb.text, leading, trailing)
	tb.parent.children = append(tb.parent.children, green.ChildSlot{Hash: hash, Elem: green.TokenElement(tok)})
	tb.parent.offset = tb.curOffset

	if len(tb.diags) > 0 {
		resolved := make([]green.Diagnostic, len(tb.diags))
		for i, qd := range tb.diags {
			var off, length uint32
			switch qd.scope {
			case scopeWholeToken:
				off, length = tb.startOffset, tb.curOffset-tb.startOffset
			case scopeTextOnly:
				off, length = tb.textOffset, uint32(len(tb.text))
			case scopeTrailingPiece:
				off, length = qd.offset, qd.length
			}
			resolved[i] = green.Diagnostic{
				Code:     qd.code,
				Severity: qd.severity,
				Offset:   off,
				Length:   length,
				Message:  qd.message,
			}
		}
		tb.parent.diagnostics = append(tb.parent.diagnostics, resolved...)
	}

	tb.committed = true
}
