package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pogor-dev/trustpdf/internal/green"
	"github.com/pogor-dev/trustpdf/internal/pdflex"
	"github.com/pogor-dev/trustpdf/internal/text"
)

const (
	exitOK       = 0
	exitInternal = 1
)

// rootKind is the single synthetic node kind pdfcst wraps its flat token
// stream in; it carries no PDF object-model meaning of its own.
const rootKind green.Kind = 1000

type cliOptions struct {
	stdin       bool
	debugTokens bool
	debugCST    bool
	debugDiags  bool
	assumePath  string
	path        string
}

func run(ctx context.Context, stdin io.Reader, stdout, stderr io.Writer, args []string) int {
	_ = ctx
	opts, usage, err := parseArgs(args)
	if err != nil {
		writef(stderr, "pdfcst: %v\n\n%s", err, usage)
		return exitInternal
	}

	src, path, err := readInput(stdin, opts)
	if err != nil {
		writef(stderr, "pdfcst: %v\n", err)
		return exitInternal
	}

	if opts.debugTokens {
		dumpTokens(stdout, src)
	}

	root, diags := pdflex.Build(src, rootKind)

	if opts.debugCST {
		dumpCST(stdout, root, 0)
	}

	if opts.debugDiags || (!opts.debugTokens && !opts.debugCST) {
		dumpDiagnostics(stdout, path, src, diags)
	}

	full := root.FullText()
	if !bytes.Equal(full, src) {
		writef(stderr, "pdfcst: round-trip mismatch: got %d bytes, want %d\n", len(full), len(src))
		return exitInternal
	}

	return exitOK
}

func parseArgs(args []string) (cliOptions, string, error) {
	var opts cliOptions
	fs := flag.NewFlagSet("pdfcst", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.BoolVar(&opts.stdin, "stdin", false, "read input from stdin")
	fs.BoolVar(&opts.debugTokens, "debug-tokens", false, "dump lexer tokens")
	fs.BoolVar(&opts.debugCST, "debug-cst", false, "dump the built green tree")
	fs.BoolVar(&opts.debugDiags, "debug-diagnostics", false, "dump diagnostics even when other dumps are requested")
	fs.StringVar(&opts.assumePath, "assume-filename", "", "filename used in diagnostic output when reading stdin")

	usage := cliUsage(fs)
	if err := fs.Parse(args); err != nil {
		return cliOptions{}, usage, err
	}

	rest := fs.Args()
	switch {
	case opts.stdin && len(rest) > 0:
		return cliOptions{}, usage, errors.New("positional file path is not allowed with --stdin")
	case !opts.stdin && len(rest) != 1:
		return cliOptions{}, usage, errors.New("exactly one input file path is required (or use --stdin)")
	}
	if !opts.stdin {
		opts.path = rest[0]
	}
	return opts, usage, nil
}

func cliUsage(fs *flag.FlagSet) string {
	var b strings.Builder
	b.WriteString("Usage:\n")
	b.WriteString("  pdfcst [flags] path/to/file.pdf\n")
	b.WriteString("  pdfcst --stdin [--assume-filename foo.pdf] [flags]\n\n")
	b.WriteString("Flags:\n")
	fs.VisitAll(func(f *flag.Flag) {
		writef(&b, "  --%s\t%s\n", f.Name, f.Usage)
	})
	return b.String()
}

func readInput(stdin io.Reader, opts cliOptions) ([]byte, string, error) {
	if opts.stdin {
		src, err := io.ReadAll(stdin)
		if err != nil {
			return nil, "", fmt.Errorf("read stdin: %w", err)
		}
		path := opts.assumePath
		if path == "" {
			path = "stdin.pdf"
		}
		return src, path, nil
	}
	//nolint:gosec // CLI intentionally reads user-provided file paths.
	src, err := os.ReadFile(opts.path)
	if err != nil {
		return nil, "", fmt.Errorf("read %s: %w", opts.path, err)
	}
	return src, opts.path, nil
}

func dumpTokens(w io.Writer, src []byte) {
	writeln(w, "TOKENS")
	result := pdflex.Lex(src)
	for i, tok := range result.Tokens {
		writef(w, "[%d] kind=%s span=%s text=%q", i, pdflex.KindString(tok.Kind), tok.Span, tok.Bytes(src))
		if len(tok.Leading) > 0 {
			writeString(w, " leading=[")
			for j, tr := range tok.Leading {
				if j > 0 {
					writeString(w, ", ")
				}
				writef(w, "%s@%s:%q", pdflex.KindString(tr.Kind), tr.Span, tr.Bytes(src))
			}
			writeString(w, "]")
		}
		writeln(w)
	}
}

func dumpCST(w io.Writer, n green.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	writef(w, "%s%s width=%d\n", indent, pdflex.KindString(n.Kind()), n.FullWidth())
	for _, slot := range n.Slots() {
		if child, ok := slot.Element.AsNode(); ok {
			dumpCST(w, child, depth+1)
			continue
		}
		if tok, ok := slot.Element.AsToken(); ok {
			dumpTrivia(w, indent, "leading", tok.Leading())
			writef(w, "%s  %s %q\n", indent, pdflex.KindString(tok.Kind()), tok.Text())
			dumpTrivia(w, indent, "trailing", tok.Trailing())
			continue
		}
		if triv, ok := slot.Element.AsTrivia(); ok {
			writef(w, "%s  trivia:%s %q\n", indent, pdflex.KindString(triv.Kind()), triv.Text())
		}
	}
}

func dumpTrivia(w io.Writer, indent, side string, list green.TriviaList) {
	for _, triv := range list.Pieces() {
		writef(w, "%s  %s-trivia:%s %q\n", indent, side, pdflex.KindString(triv.Kind()), triv.Text())
	}
}

func dumpDiagnostics(w io.Writer, path string, src []byte, diags []green.Diagnostic) {
	if len(diags) == 0 {
		return
	}
	for _, d := range diags {
		pt := text.PointOf(src, text.ByteOffset(d.Offset))
		writef(w, "%s:%s: %s [%d,%d)\n", path, pt, d.String(), d.Offset, d.Offset+d.Length)
	}
}

func writef(w io.Writer, format string, args ...any) {
	//nolint:gosec // Terminal/debug output helper; format strings are internal callsite constants.
	_, _ = io.WriteString(w, fmt.Sprintf(format, args...))
}

func writeln(w io.Writer, args ...any) {
	_, _ = fmt.Fprintln(w, args...)
}

func writeString(w io.Writer, s string) {
	_, _ = io.WriteString(w, s)
}
