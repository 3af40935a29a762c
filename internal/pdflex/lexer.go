package pdflex

import (
	"fmt"

	"github.com/pogor-dev/trustpdf/internal/text"
)

// Result is the output of lexing source bytes.
type Result struct {
	Tokens      []Token
	Diagnostics []Diagnostic
}

// Lex tokenizes src into a lossless token stream with leading trivia.
// It implements only enough of PDF's lexical surface — numbers, names,
// delimiters, literal/hex strings treated as opaque runs, and
// comment/whitespace trivia — to drive Builder with a realistic byte
// stream; see the package doc comment for what is deliberately absent.
func Lex(src []byte) Result {
	s := scanner{src: src}
	s.run()
	return Result{Tokens: s.tokens, Diagnostics: s.diagnostics}
}

type scanner struct {
	src         []byte
	i           int
	tokens      []Token
	diagnostics []Diagnostic
}

func (s *scanner) run() {
	for {
		leading := s.scanLeadingTrivia()

		if s.eof() {
			s.tokens = append(s.tokens, Token{
				Kind:    KindEOF,
				Span:    span(len(s.src), len(s.src)),
				Leading: leading,
			})
			return
		}

		tok := s.scanToken()
		tok.Leading = leading
		s.tokens = append(s.tokens, tok)
	}
}

func (s *scanner) scanLeadingTrivia() []Trivia {
	var out []Trivia

	for !s.eof() {
		start := s.i
		switch b := s.src[s.i]; b {
		case ' ', '\t', '\n', '\r', '\f', 0:
			for !s.eof() && isWhitespace(s.src[s.i]) {
				s.i++
			}
			out = append(out, Trivia{Kind: TriviaWhitespace, Span: span(start, s.i)})
		case '%':
			for !s.eof() && s.src[s.i] != '\n' && s.src[s.i] != '\r' {
				s.i++
			}
			out = append(out, Trivia{Kind: TriviaComment, Span: span(start, s.i)})
		default:
			return out
		}
	}

	return out
}

func (s *scanner) scanToken() Token {
	start := s.i
	b := s.src[s.i]

	switch {
	case isDigit(b) || ((b == '+' || b == '-' || b == '.') && isDigit(s.peekByte(1))):
		return s.scanNumber()
	case b == '/':
		return s.scanName()
	case b == '(':
		return s.scanLiteralString()
	case b == '<':
		if s.peekByte(1) == '<' {
			s.i += 2
			return Token{Kind: KindLDoubleAngle, Span: span(start, s.i)}
		}
		return s.scanHexString()
	case b == '>':
		if s.peekByte(1) == '>' {
			s.i += 2
			return Token{Kind: KindRDoubleAngle, Span: span(start, s.i)}
		}
		s.i++
		return *s.makeErrorToken(start, s.i, DiagnosticUnknownCharacter, "unmatched '>'")
	case b == '[':
		s.i++
		return Token{Kind: KindLBracket, Span: span(start, s.i)}
	case b == ']':
		s.i++
		return Token{Kind: KindRBracket, Span: span(start, s.i)}
	case b == '{':
		s.i++
		return Token{Kind: KindLBrace, Span: span(start, s.i)}
	case b == '}':
		s.i++
		return Token{Kind: KindRBrace, Span: span(start, s.i)}
	case b >= 0x80:
		s.i++
		return *s.makeErrorToken(start, s.i, DiagnosticInvalidByte, fmt.Sprintf("invalid byte 0x%02X outside string content", b))
	default:
		s.i++
		return *s.makeErrorToken(start, s.i, DiagnosticUnknownCharacter, fmt.Sprintf("unknown character %q", b))
	}
}

func (s *scanner) scanNumber() Token {
	start := s.i
	if s.src[s.i] == '+' || s.src[s.i] == '-' {
		s.i++
	}
	for !s.eof() && isDigit(s.src[s.i]) {
		s.i++
	}
	if !s.eof() && s.src[s.i] == '.' {
		s.i++
		for !s.eof() && isDigit(s.src[s.i]) {
			s.i++
		}
	}
	return Token{Kind: KindNumber, Span: span(start, s.i)}
}

func (s *scanner) scanName() Token {
	start := s.i
	s.i++ // '/'
	for !s.eof() && isRegular(s.src[s.i]) {
		if s.src[s.i] == '#' && isHexDigit(s.peekByte(1)) && isHexDigit(s.peekByte(2)) {
			s.i += 3
			continue
		}
		s.i++
	}
	return Token{Kind: KindName, Span: span(start, s.i)}
}

// scanLiteralString scans a balanced-parenthesis literal string, treating
// its whole contents as an opaque byte run (no escape decoding: the PDF
// string-object grammar itself is out of scope).
func (s *scanner) scanLiteralString() Token {
	start := s.i
	s.i++ // '('
	depth := 1

	for !s.eof() {
		switch s.src[s.i] {
		case '\\':
			s.i++
			if !s.eof() {
				s.i++
			}
		case '(':
			depth++
			s.i++
		case ')':
			depth--
			s.i++
			if depth == 0 {
				return Token{Kind: KindStringLiteral, Span: span(start, s.i)}
			}
		default:
			s.i++
		}
	}

	return *s.makeErrorToken(start, s.i, DiagnosticUnterminatedString, "unterminated literal string")
}

func (s *scanner) scanHexString() Token {
	start := s.i
	s.i++ // '<'

	for !s.eof() {
		switch s.src[s.i] {
		case '>':
			s.i++
			return Token{Kind: KindHexString, Span: span(start, s.i)}
		case '\n', '\r':
			return *s.makeErrorToken(start, s.i, DiagnosticUnterminatedHexString, "unterminated hex string")
		default:
			s.i++
		}
	}

	return *s.makeErrorToken(start, s.i, DiagnosticUnterminatedHexString, "unterminated hex string")
}

func (s *scanner) makeErrorToken(start, end int, code DiagnosticCode, msg string) *Token {
	sp := span(start, end)
	s.diagnostics = append(s.diagnostics, Diagnostic{Code: code, Message: msg, Span: sp})
	return &Token{Kind: KindError, Span: sp}
}

func (s *scanner) eof() bool { return s.i >= len(s.src) }

func (s *scanner) peekByte(delta int) byte {
	j := s.i + delta
	if j < 0 || j >= len(s.src) {
		return 0
	}
	return s.src[j]
}

func span(start, end int) text.Span {
	return text.Span{Start: text.ByteOffset(start), End: text.ByteOffset(end)}
}

func isWhitespace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\f', 0:
		return true
	default:
		return false
	}
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isHexDigit(b byte) bool {
	return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func isDelimiter(b byte) bool {
	switch b {
	case '(', ')', '<', '>', '[', ']', '{', '}', '/', '%':
		return true
	default:
		return false
	}
}

func isRegular(b byte) bool {
	return !isWhitespace(b) && !isDelimiter(b)
}
