// Package dtfmt provides a composable print/parse engine for date and
// time field values.  No cgo is required.
//
// # Quick start
//
//	f, err := dtfmt.Compile("yyyy-mm-dd")
//	if err != nil { ... }
//
//	out, err := f.Print(dtfmt.DateOf(2026, 8, 25))
//	// out == "2026-08-25"
//
//	cal, err := f.Parse("2026-08-25")
//	// cal.Get(calfield.MonthOfYear) == 8, true
//
// Pre-compiled formatters for the common interchange layouts are
// available as [ISODate], [ISOTime] and [ISODateTime].
//
// # Building patterns directly
//
// Layout strings cover the common cases; full control over widths and
// sign display lives in [format.Builder]:
//
//	f := format.NewBuilder().
//		AppendValueStyled(calfield.Year, 4, 10, format.SignExceedsPad).
//		AppendLiteral("-").
//		AppendValueFixed(calfield.DayOfYear, 3).
//		ToFormatter(language.English)
//
// # Snapshots and derived fields
//
// Printing consumes and parsing produces a [calfield.Calendrical]: an
// immutable snapshot of field values.  Fields a pattern needs but the
// snapshot does not store directly are derived when possible — a
// snapshot holding only hour-of-day 13 prints "01" through an
// hour-of-am-pm pattern.  [FromTime] bridges a [time.Time] into a
// snapshot; [DateOf], [TimeOf] and [DateTimeOf] build snapshots from
// plain integers.
//
// # Locales
//
// Formatters are bound to a locale's digit and sign glyphs and can be
// rebound without recompilation:
//
//	arabic := f.WithLocale(language.Arabic)
//
// Formatters, rules and symbol tables are immutable and safe for
// concurrent use.
package dtfmt

import (
	"time"

	"golang.org/x/text/language"

	"github.com/TsubasaBE/go-dtfmt/calfield"
	"github.com/TsubasaBE/go-dtfmt/format"
	"github.com/TsubasaBE/go-dtfmt/pattern"
)

// Version is the current version of the go-dtfmt library.
const Version = "1.0.0"

// Pre-compiled formatters for the predefined layouts in the pattern
// package.  They are bound to English symbols; use WithLocale to rebind.
var (
	ISODate     = pattern.MustCompile(pattern.ISODate)
	ISOTime     = pattern.MustCompile(pattern.ISOTime)
	ISODateTime = pattern.MustCompile(pattern.ISODateTime)
)

// Compile compiles an Excel-style layout string (see the pattern
// package) into a formatter bound to English symbols.
func Compile(layout string) (*format.Formatter, error) {
	return pattern.Compile(layout)
}

// CompileForLocale compiles a layout string into a formatter bound to
// the given locale's symbols.
func CompileForLocale(layout string, locale language.Tag) (*format.Formatter, error) {
	return pattern.CompileForLocale(layout, locale)
}

// MustCompile is like [Compile] but panics on error.
func MustCompile(layout string) *format.Formatter {
	return pattern.MustCompile(layout)
}

// DateOf returns a snapshot holding the three date fields.  Values are
// stored raw; see [calfield.Rule.CheckValue] for validation.
func DateOf(year, month, day int) calfield.Calendrical {
	return calfield.New(
		calfield.Of(calfield.Year, year),
		calfield.Of(calfield.MonthOfYear, month),
		calfield.Of(calfield.DayOfMonth, day),
	)
}

// TimeOf returns a snapshot holding the three time fields.
func TimeOf(hour, minute, second int) calfield.Calendrical {
	return calfield.New(
		calfield.Of(calfield.HourOfDay, hour),
		calfield.Of(calfield.MinuteOfHour, minute),
		calfield.Of(calfield.SecondOfMinute, second),
	)
}

// DateTimeOf returns a snapshot holding the six date and time fields.
func DateTimeOf(year, month, day, hour, minute, second int) calfield.Calendrical {
	return calfield.New(
		calfield.Of(calfield.Year, year),
		calfield.Of(calfield.MonthOfYear, month),
		calfield.Of(calfield.DayOfMonth, day),
		calfield.Of(calfield.HourOfDay, hour),
		calfield.Of(calfield.MinuteOfHour, minute),
		calfield.Of(calfield.SecondOfMinute, second),
	)
}

// FromTime converts a [time.Time] into a snapshot of its date and time
// fields, including day-of-year.  The time's location is respected; no
// timezone field is recorded.
func FromTime(t time.Time) calfield.Calendrical {
	return calfield.New(
		calfield.Of(calfield.Year, t.Year()),
		calfield.Of(calfield.MonthOfYear, int(t.Month())),
		calfield.Of(calfield.DayOfMonth, t.Day()),
		calfield.Of(calfield.DayOfYear, t.YearDay()),
		calfield.Of(calfield.HourOfDay, t.Hour()),
		calfield.Of(calfield.MinuteOfHour, t.Minute()),
		calfield.Of(calfield.SecondOfMinute, t.Second()),
	)
}
