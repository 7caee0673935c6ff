// Package format implements the bidirectional print/parse engine that
// turns calendar field snapshots into text and back.
//
// A compiled pattern is a tree of printer-parser nodes: numeric fields
// with width and sign-style rules, verbatim literals, value↔text fields,
// and composite sequences that may be marked optional.  Patterns are
// assembled with [Builder] (or compiled from a layout string by the
// pattern package) and bound to a locale's symbol table in an immutable,
// goroutine-safe [Formatter].
//
// # Parse position encoding
//
// Node-level parsing communicates success and failure through a single
// signed integer: a non-negative result is the new cursor position, a
// negative result encodes the failure index as its bitwise complement
// (^index).  An ordinary mismatch therefore costs no allocation; error
// values are reserved for resolution conflicts and for the facade's
// public API.
package format

import (
	"fmt"
	"strings"

	"github.com/TsubasaBE/go-dtfmt/calfield"
	"github.com/TsubasaBE/go-dtfmt/symbols"
)

// printerParser is one node of a compiled pattern.  Implementations are
// immutable after construction and safe for concurrent use.
type printerParser interface {
	// print appends the node's output for cal to sb, translating glyphs
	// through sym.  The builder is append-only; on error the caller
	// discards any partial output.
	print(cal calfield.Calendrical, sym *symbols.Symbols, sb *strings.Builder) error

	// parse matches the node against text starting at pos, recording any
	// field values into ctx.  It returns the new position on success or
	// ^index on failure (see the package doc).
	parse(ctx *parseContext, text string, pos int) int

	// printDataAvailable reports whether cal holds (directly or by
	// derivation) everything the node needs to print.  Optional
	// composites use it to decide whether to skip their section.
	printDataAvailable(cal calfield.Calendrical) bool

	// String returns the node's canonical description; the format is a
	// stable contract.
	fmt.Stringer
}

// checkParsePosition panics when pos lies outside text.  The facade
// validates caller-supplied positions; a node receiving a bad position is
// a programmer error, not a parse failure.
func checkParsePosition(text string, pos int) {
	if pos < 0 || pos > len(text) {
		panic(fmt.Sprintf("format: parse position %d out of range [0,%d]", pos, len(text)))
	}
}

// ── literal ───────────────────────────────────────────────────────────────────

// literalPrinterParser prints a fixed string verbatim and parses it by
// exact prefix match.
type literalPrinterParser string

func (l literalPrinterParser) print(_ calfield.Calendrical, _ *symbols.Symbols, sb *strings.Builder) error {
	sb.WriteString(string(l))
	return nil
}

func (l literalPrinterParser) parse(_ *parseContext, text string, pos int) int {
	checkParsePosition(text, pos)
	if !strings.HasPrefix(text[pos:], string(l)) {
		return ^pos
	}
	return pos + len(l)
}

func (l literalPrinterParser) printDataAvailable(calfield.Calendrical) bool { return true }

func (l literalPrinterParser) String() string {
	return "'" + strings.ReplaceAll(string(l), "'", "''") + "'"
}

// ── composite ─────────────────────────────────────────────────────────────────

// compositePrinterParser sequences child nodes.  When optional, a parse
// failure anywhere in the sequence is absorbed: the context is rolled
// back and the entry position returned unchanged, and printing skips the
// whole section when any child's data is unavailable.
//
// Optionality is carried by a copied wrapper (withOptional), never by
// in-place mutation, so node trees stay shareable.
type compositePrinterParser struct {
	printerParsers []printerParser
	optional       bool
}

func (cp *compositePrinterParser) withOptional(optional bool) *compositePrinterParser {
	if optional == cp.optional {
		return cp
	}
	return &compositePrinterParser{printerParsers: cp.printerParsers, optional: optional}
}

func (cp *compositePrinterParser) print(cal calfield.Calendrical, sym *symbols.Symbols, sb *strings.Builder) error {
	if cp.optional && !cp.printDataAvailable(cal) {
		return nil
	}
	for _, pp := range cp.printerParsers {
		if err := pp.print(cal, sym, sb); err != nil {
			return err
		}
	}
	return nil
}

func (cp *compositePrinterParser) parse(ctx *parseContext, text string, pos int) int {
	checkParsePosition(text, pos)
	if cp.optional {
		cpMark := ctx.checkpoint()
		p := pos
		for _, pp := range cp.printerParsers {
			p = pp.parse(ctx, text, p)
			if p < 0 {
				ctx.rollback(cpMark)
				return pos
			}
		}
		return p
	}
	for _, pp := range cp.printerParsers {
		pos = pp.parse(ctx, text, pos)
		if pos < 0 {
			return pos
		}
	}
	return pos
}

func (cp *compositePrinterParser) printDataAvailable(cal calfield.Calendrical) bool {
	for _, pp := range cp.printerParsers {
		if !pp.printDataAvailable(cal) {
			return false
		}
	}
	return true
}

func (cp *compositePrinterParser) String() string {
	var sb strings.Builder
	if cp.optional {
		sb.WriteByte('[')
	} else {
		sb.WriteByte('(')
	}
	for _, pp := range cp.printerParsers {
		sb.WriteString(pp.String())
	}
	if cp.optional {
		sb.WriteByte(']')
	} else {
		sb.WriteByte(')')
	}
	return sb.String()
}
