// Package pattern compiles Excel-style date/time layout strings into
// [format.Formatter] values.
//
// Layout strings use the familiar spreadsheet date tokens:
//
//	yyyy  year, four digits (wider years print at natural length)
//	yy    year of century, two digits
//	mm m  month — or minutes when the token follows an hour token
//	dd d  day of month
//	hh h  hour of day (12-hour clock when the layout contains AM/PM)
//	ss s  second of minute
//	AM/PM, A/P  half-day text
//
// All layout-string tokenisation is delegated to [github.com/xuri/nfp];
// this package only maps the resulting token stream onto printer-parser
// nodes.  Anything the engine cannot parse back — text months, weekday
// names, elapsed-time tokens — is rejected at compile time rather than
// silently skipped, so every compiled formatter both prints and parses.
//
// The m/mm ambiguity is resolved positionally: a month token directly
// after an hour token means minutes, and literal separators (the ":" in
// "hh:mm") do not break that adjacency.
package pattern

import (
	"fmt"
	"strings"

	"github.com/xuri/nfp"
	"golang.org/x/text/language"

	"github.com/TsubasaBE/go-dtfmt/calfield"
	"github.com/TsubasaBE/go-dtfmt/format"
)

// Predefined layouts for common interchange formats.  Pass them to
// [Compile] or use the pre-compiled formatters in the root dtfmt package.
const (
	ISODate     = "yyyy-mm-dd"
	ISOTime     = "hh:mm:ss"
	ISODateTime = "yyyy-mm-dd hh:mm:ss"
	Clock12     = "h:mm AM/PM"
)

// Compile compiles layout into a formatter bound to English symbols.
func Compile(layout string) (*format.Formatter, error) {
	return CompileForLocale(layout, language.English)
}

// CompileForLocale compiles layout into a formatter bound to the symbol
// table of the given locale.
func CompileForLocale(layout string, locale language.Tag) (*format.Formatter, error) {
	if layout == "" {
		return nil, fmt.Errorf("pattern: empty layout")
	}
	ps := nfp.NumberFormatParser()
	sections := ps.Parse(layout)
	if len(sections) == 0 {
		return nil, fmt.Errorf("pattern: layout %q contains no tokens", layout)
	}
	if len(sections) > 1 {
		return nil, fmt.Errorf("pattern: layout %q has %d sections; multi-section layouts are not supported", layout, len(sections))
	}
	sec := sections[0]

	// Pre-scan for an AM/PM token: its presence switches hour tokens to
	// the 12-hour clock rules.
	hasAmPm := false
	for _, tok := range sec.Items {
		if tok.TType == nfp.TokenTypeDateTimes {
			upper := strings.ToUpper(tok.TValue)
			if upper == "AM/PM" || upper == "A/P" {
				hasAmPm = true
				break
			}
		}
	}

	b := format.NewBuilder()
	appended := 0
	lastWasHour := false

	for _, tok := range sec.Items {
		switch tok.TType {

		case nfp.TokenTypeDateTimes:
			upper := strings.ToUpper(tok.TValue)
			if err := appendDateToken(b, upper, hasAmPm, lastWasHour); err != nil {
				return nil, err
			}
			appended++
			lastWasHour = upper == "H" || upper == "HH"

		case nfp.TokenTypeLiteral:
			// A literal separator (e.g. ":") between an hour token and a
			// following m/mm must not break the minute-vs-month
			// disambiguation, so lastWasHour is left untouched.
			b.AppendLiteral(tok.TValue)
			appended++

		case nfp.TokenTypeElapsedDateTimes:
			return nil, fmt.Errorf("pattern: elapsed-time token [%s] is not supported: the engine has no duration fields", tok.TValue)

		default:
			return nil, fmt.Errorf("pattern: unsupported token %q (%s)", tok.TValue, tok.TType)
		}
	}

	if appended == 0 {
		return nil, fmt.Errorf("pattern: layout %q contains no tokens", layout)
	}
	return b.ToFormatter(locale), nil
}

// MustCompile is like [Compile] but panics on error.  It is intended for
// package-level formatter variables built from known-good layouts.
func MustCompile(layout string) *format.Formatter {
	f, err := Compile(layout)
	if err != nil {
		panic(err)
	}
	return f
}

// appendDateToken appends the node for one upper-cased date token.
func appendDateToken(b *format.Builder, upper string, hasAmPm, lastWasHour bool) error {
	hourRule := calfield.HourOfDay
	if hasAmPm {
		hourRule = calfield.ClockHourOfAmPm
	}

	switch upper {
	case "YYYY":
		// Years wider than four digits print at natural length with an
		// explicit plus sign, so "12345" can never be mistaken for a
		// four-digit year with trailing garbage.
		b.AppendValueStyled(calfield.Year, 4, 10, format.SignExceedsPad)
	case "YY":
		b.AppendValueFixed(calfield.YearOfCentury, 2)

	case "MM":
		if lastWasHour {
			b.AppendValueFixed(calfield.MinuteOfHour, 2)
		} else {
			b.AppendValueFixed(calfield.MonthOfYear, 2)
		}
	case "M":
		if lastWasHour {
			b.AppendValueStyled(calfield.MinuteOfHour, 1, 2, format.SignNotNegative)
		} else {
			b.AppendValueStyled(calfield.MonthOfYear, 1, 2, format.SignNotNegative)
		}

	case "DD":
		b.AppendValueFixed(calfield.DayOfMonth, 2)
	case "D":
		b.AppendValueStyled(calfield.DayOfMonth, 1, 2, format.SignNotNegative)

	case "HH":
		b.AppendValueFixed(hourRule, 2)
	case "H":
		b.AppendValueStyled(hourRule, 1, 2, format.SignNotNegative)

	case "SS":
		b.AppendValueFixed(calfield.SecondOfMinute, 2)
	case "S":
		b.AppendValueStyled(calfield.SecondOfMinute, 1, 2, format.SignNotNegative)

	case "AM/PM":
		b.AppendText(calfield.AmPmOfDay, map[int]string{0: "AM", 1: "PM"})
	case "A/P":
		b.AppendText(calfield.AmPmOfDay, map[int]string{0: "A", 1: "P"})

	case "MMM", "MMMM", "DDD", "DDDD":
		return fmt.Errorf("pattern: text token %q is not supported: month and weekday names need locale text resources", upper)

	default:
		return fmt.Errorf("pattern: unsupported date token %q", upper)
	}
	return nil
}
