package format

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/TsubasaBE/go-dtfmt/calfield"
	"github.com/TsubasaBE/go-dtfmt/internal/digits"
	"github.com/TsubasaBE/go-dtfmt/symbols"
)

// maxNumberWidth is the widest numeric field the engine supports: ten
// decimal digits, enough to carry the full 32-bit integer range.
const maxNumberWidth = 10

// numberPrinterParser prints and parses one field's integer value as a
// run of decimal digits, optionally signed, zero-padded on the left to
// minWidth and never wider than maxWidth digits.
//
// Invariant (enforced by Builder): 1 ≤ minWidth ≤ maxWidth ≤ 10.
type numberPrinterParser struct {
	rule      *calfield.Rule
	minWidth  int
	maxWidth  int
	signStyle SignStyle
}

func (pp *numberPrinterParser) print(cal calfield.Calendrical, sym *symbols.Symbols, sb *strings.Builder) error {
	value, ok := pp.rule.Value(cal)
	if !ok {
		return &FieldUnavailableError{Rule: pp.rule}
	}

	// Magnitude extraction is overflow-safe for the most negative value.
	abs := digits.Abs(value)
	if len(abs) > pp.maxWidth {
		return &FieldValueError{Rule: pp.rule, Value: value, Reason: ReasonWidthExceeded}
	}

	switch pp.signStyle {
	case SignNormal:
		if value < 0 {
			sb.WriteRune(sym.MinusSign())
		}
	case SignAlways:
		if value < 0 {
			sb.WriteRune(sym.MinusSign())
		} else {
			sb.WriteRune(sym.PlusSign())
		}
	case SignExceedsPad:
		if value < 0 {
			sb.WriteRune(sym.MinusSign())
		} else if len(abs) > pp.minWidth {
			sb.WriteRune(sym.PlusSign())
		}
	case SignNotNegative:
		if value < 0 {
			return &FieldValueError{Rule: pp.rule, Value: value, Reason: ReasonNegativeNotAllowed}
		}
	case SignNever:
		// A negative value under SignNever is a configuration fault: the
		// field's range should have made it impossible.
		if value < 0 {
			return &FieldValueError{Rule: pp.rule, Value: value, Reason: ReasonWidthExceeded}
		}
	}

	for i := len(abs); i < pp.minWidth; i++ {
		sb.WriteRune(sym.Digit(0))
	}
	for i := 0; i < len(abs); i++ {
		sb.WriteRune(sym.Digit(int(abs[i] - '0')))
	}
	return nil
}

func (pp *numberPrinterParser) parse(ctx *parseContext, text string, pos int) int {
	checkParsePosition(text, pos)
	start := pos
	if pos == len(text) {
		return ^pos
	}
	sym := ctx.symbols

	// Sign acceptance mirrors the print-side policy: styles that never
	// print a sign accept none.
	negative := false
	r, size := utf8.DecodeRuneInString(text[pos:])
	switch pp.signStyle {
	case SignNormal:
		if r == sym.MinusSign() {
			negative = true
			pos += size
		}
	case SignAlways, SignExceedsPad:
		switch r {
		case sym.MinusSign():
			negative = true
			pos += size
		case sym.PlusSign():
			pos += size
		}
	}

	// Greedy digit consumption, at most maxWidth digits.  The running
	// total is widened so ten 9s cannot wrap a 32-bit intermediate.
	var total int64
	count := 0
	for pos < len(text) && count < pp.maxWidth {
		r, size := utf8.DecodeRuneInString(text[pos:])
		d := sym.DigitValue(r)
		if d < 0 {
			break
		}
		total = total*10 + int64(d)
		pos += size
		count++
	}
	if count == 0 || count < pp.minWidth {
		return ^start
	}
	if negative {
		total = -total
	}
	ctx.setParsed(pp.rule, int(total))
	return pos
}

func (pp *numberPrinterParser) printDataAvailable(cal calfield.Calendrical) bool {
	_, ok := pp.rule.Value(cal)
	return ok
}

// String returns the canonical description.  The three forms are a
// stable contract:
//
//	Value(ISO.HourOfDay)                    defaults: 1, 10, NORMAL
//	Value(ISO.HourOfDay,2)                  fixed width, NOT_NEGATIVE
//	Value(ISO.HourOfDay,1,2,NOT_NEGATIVE)   everything else
func (pp *numberPrinterParser) String() string {
	if pp.minWidth == 1 && pp.maxWidth == maxNumberWidth && pp.signStyle == SignNormal {
		return fmt.Sprintf("Value(%s)", pp.rule.Name())
	}
	if pp.minWidth == pp.maxWidth && pp.signStyle == SignNotNegative {
		return fmt.Sprintf("Value(%s,%d)", pp.rule.Name(), pp.minWidth)
	}
	return fmt.Sprintf("Value(%s,%d,%d,%s)", pp.rule.Name(), pp.minWidth, pp.maxWidth, pp.signStyle)
}
