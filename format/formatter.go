package format

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/language"

	"github.com/TsubasaBE/go-dtfmt/calfield"
	"github.com/TsubasaBE/go-dtfmt/symbols"
)

// Formatter binds one compiled pattern to one locale's symbol table.
// It is immutable and safe for concurrent use; every print and parse
// call works on fresh per-call state.
type Formatter struct {
	printerParser *compositePrinterParser
	symbols       *symbols.Symbols
	canPrint      bool
	canParse      bool
}

// Locale returns the locale whose symbols the formatter uses.
func (f *Formatter) Locale() language.Tag {
	return f.symbols.Locale()
}

// WithLocale returns a formatter sharing this one's pattern but using
// the symbol table of the given locale.  The receiver is unchanged; when
// the locale already matches, the receiver itself is returned.
func (f *Formatter) WithLocale(locale language.Tag) *Formatter {
	if locale == f.symbols.Locale() {
		return f
	}
	copied := *f
	copied.symbols = symbols.ForLocale(locale)
	return &copied
}

// IsPrintSupported reports whether the formatter can print.
func (f *Formatter) IsPrintSupported() bool { return f.canPrint }

// IsParseSupported reports whether the formatter can parse.
func (f *Formatter) IsParseSupported() bool { return f.canParse }

// Print renders the snapshot to a string.
//
// It returns [ErrPrintNotSupported] when the formatter cannot print, a
// [FieldUnavailableError] when a field of the pattern is neither stored
// in nor derivable from cal, and a [FieldValueError] when a value cannot
// be represented under the pattern's width and sign rules.
func (f *Formatter) Print(cal calfield.Calendrical) (string, error) {
	if !f.canPrint {
		return "", ErrPrintNotSupported
	}
	var sb strings.Builder
	sb.Grow(32)
	if err := f.printerParser.print(cal, f.symbols, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// PrintTo renders the snapshot and writes it to w.  A failure of w is
// wrapped in a [WriteError]; nothing is written when rendering itself
// fails.
func (f *Formatter) PrintTo(w io.Writer, cal calfield.Calendrical) error {
	s, err := f.Print(cal)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, s); err != nil {
		return &WriteError{Err: err}
	}
	return nil
}

// Parse parses the entire text into a snapshot.  Trailing unparsed text
// is an error carrying the index of the first unconsumed character.
//
// The result may hold out-of-range raw values such as a month of 65;
// validating them is the concern of the calendar layer (see
// [calfield.Rule.CheckValue]).
func (f *Formatter) Parse(text string) (calfield.Calendrical, error) {
	if !f.canParse {
		return calfield.Calendrical{}, ErrParseNotSupported
	}
	ctx := newParseContext(f.symbols)
	pos := f.printerParser.parse(ctx, text, 0)
	if pos < 0 {
		return calfield.Calendrical{}, &ParseError{Text: text, Index: ^pos}
	}
	if pos < len(text) {
		return calfield.Calendrical{}, &ParseError{Text: text, Index: pos, Trailing: true}
	}
	return ctx.resolve()
}

// ParsePartial parses from pos without requiring full consumption and
// returns the snapshot together with the new cursor position.  On a
// mismatch the returned position is the failure index and the error is a
// [ParseError]; a conflicting duplicate field assignment surfaces as a
// [FieldConflictError] with the position still advanced.  A pos outside
// [0,len(text)] panics.
func (f *Formatter) ParsePartial(text string, pos int) (calfield.Calendrical, int, error) {
	if !f.canParse {
		return calfield.Calendrical{}, pos, ErrParseNotSupported
	}
	if pos < 0 || pos > len(text) {
		panic(fmt.Sprintf("format: ParsePartial: position %d out of range [0,%d]", pos, len(text)))
	}
	ctx := newParseContext(f.symbols)
	newPos := f.printerParser.parse(ctx, text, pos)
	if newPos < 0 {
		return calfield.Calendrical{}, ^newPos, &ParseError{Text: text, Index: ^newPos}
	}
	cal, err := ctx.resolve()
	if err != nil {
		return calfield.Calendrical{}, newPos, err
	}
	return cal, newPos, nil
}

// String returns the pattern description.  The outer grouping of the
// top-level sequence is implementation detail and stripped, unless the
// whole pattern is a single optional section.
func (f *Formatter) String() string {
	pattern := f.printerParser.String()
	if strings.HasPrefix(pattern, "[") {
		return pattern
	}
	return pattern[1 : len(pattern)-1]
}
