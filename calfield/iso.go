package calfield

import "math"

// Built-in rules of the ISO calendar system.  The set covers the fields
// the format engine and the pattern compiler need; derived rules obtain
// their value from a more granular field when not stored directly.
//
// Rule names follow the "ISO.<FieldName>" convention; the name is part of
// the printer-parser description contract (see the format package) and
// must remain stable.
var (
	// Year is the proleptic ISO year.  The range is the full 32-bit
	// integer range: ten decimal digits, the widest field the engine's
	// number printer-parser can carry.
	Year = NewRule("ISO.Year", math.MinInt32, math.MaxInt32)

	// YearOfCentury is the low two digits of the year, 0–99, derived
	// from Year when not stored directly.
	YearOfCentury = NewDerivedRule("ISO.YearOfCentury", 0, 99,
		func(c Calendrical) (int, bool) {
			y, ok := Year.Value(c)
			if !ok {
				return 0, false
			}
			return ((y % 100) + 100) % 100, true
		})

	// MonthOfYear is the month, January=1 through December=12.
	MonthOfYear = NewRule("ISO.MonthOfYear", 1, 12)

	// QuarterOfYear is the quarter, 1–4, derived from MonthOfYear.
	QuarterOfYear = NewDerivedRule("ISO.QuarterOfYear", 1, 4,
		func(c Calendrical) (int, bool) {
			m, ok := MonthOfYear.Value(c)
			if !ok {
				return 0, false
			}
			return (m-1)/3 + 1, true
		})

	// DayOfMonth is the day within the month, 1–31.  Whether 31 is valid
	// for a particular month is a calendar-arithmetic question outside
	// this library.
	DayOfMonth = NewRule("ISO.DayOfMonth", 1, 31)

	// DayOfYear is the day within the year, 1–366.
	DayOfYear = NewRule("ISO.DayOfYear", 1, 366)

	// HourOfDay is the hour on the 24-hour clock, 0–23.
	HourOfDay = NewRule("ISO.HourOfDay", 0, 23)

	// HourOfAmPm is the hour within the half-day, 0–11, derived from
	// HourOfDay.
	HourOfAmPm = NewDerivedRule("ISO.HourOfAmPm", 0, 11,
		func(c Calendrical) (int, bool) {
			h, ok := HourOfDay.Value(c)
			if !ok {
				return 0, false
			}
			return h % 12, true
		})

	// ClockHourOfAmPm is the hour as displayed on a 12-hour clock face,
	// 1–12, derived from HourOfDay (0 and 12 both display as 12).
	ClockHourOfAmPm = NewDerivedRule("ISO.ClockHourOfAmPm", 1, 12,
		func(c Calendrical) (int, bool) {
			h, ok := HourOfDay.Value(c)
			if !ok {
				return 0, false
			}
			h %= 12
			if h == 0 {
				h = 12
			}
			return h, true
		})

	// AmPmOfDay is the half-day indicator, AM=0 / PM=1, derived from
	// HourOfDay.
	AmPmOfDay = NewDerivedRule("ISO.AmPmOfDay", 0, 1,
		func(c Calendrical) (int, bool) {
			h, ok := HourOfDay.Value(c)
			if !ok {
				return 0, false
			}
			return h / 12, true
		})

	// MinuteOfHour is the minute within the hour, 0–59.
	MinuteOfHour = NewRule("ISO.MinuteOfHour", 0, 59)

	// SecondOfMinute is the second within the minute, 0–59.
	SecondOfMinute = NewRule("ISO.SecondOfMinute", 0, 59)
)
