package pattern_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/language"

	"github.com/TsubasaBE/go-dtfmt/calfield"
	"github.com/TsubasaBE/go-dtfmt/pattern"
)

// fields flattens a snapshot into a name→value map for go-cmp diffs.
func fields(cal calfield.Calendrical) map[string]int {
	m := map[string]int{}
	for _, r := range cal.Rules() {
		v, _ := cal.Get(r)
		m[r.Name()] = v
	}
	return m
}

func TestCompileDescriptions(t *testing.T) {
	tests := []struct {
		layout string
		want   string
	}{
		{
			layout: "yyyy-mm-dd",
			want:   "Value(ISO.Year,4,10,EXCEEDS_PAD)'-'Value(ISO.MonthOfYear,2)'-'Value(ISO.DayOfMonth,2)",
		},
		{
			layout: "hh:mm:ss",
			want:   "Value(ISO.HourOfDay,2)':'Value(ISO.MinuteOfHour,2)':'Value(ISO.SecondOfMinute,2)",
		},
		{
			layout: "h:mm AM/PM",
			want:   "Value(ISO.ClockHourOfAmPm,1,2,NOT_NEGATIVE)':'Value(ISO.MinuteOfHour,2)' 'Text(ISO.AmPmOfDay)",
		},
		{
			layout: "yy/m/d",
			want:   "Value(ISO.YearOfCentury,2)'/'Value(ISO.MonthOfYear,1,2,NOT_NEGATIVE)'/'Value(ISO.DayOfMonth,1,2,NOT_NEGATIVE)",
		},
	}
	for _, tc := range tests {
		t.Run(tc.layout, func(t *testing.T) {
			f, err := pattern.Compile(tc.layout)
			if err != nil {
				t.Fatalf("Compile(%q): %v", tc.layout, err)
			}
			if got := f.String(); got != tc.want {
				t.Errorf("description = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestCompilePrint(t *testing.T) {
	tests := []struct {
		layout string
		cal    calfield.Calendrical
		want   string
	}{
		{
			layout: "yyyy-mm-dd",
			cal: calfield.New(
				calfield.Of(calfield.Year, 2026),
				calfield.Of(calfield.MonthOfYear, 8),
				calfield.Of(calfield.DayOfMonth, 25),
			),
			want: "2026-08-25",
		},
		{
			// Five-digit years print at natural length with a plus sign.
			layout: "yyyy-mm-dd",
			cal: calfield.New(
				calfield.Of(calfield.Year, 12345),
				calfield.Of(calfield.MonthOfYear, 1),
				calfield.Of(calfield.DayOfMonth, 2),
			),
			want: "+12345-01-02",
		},
		{
			layout: "h:mm AM/PM",
			cal: calfield.New(
				calfield.Of(calfield.HourOfDay, 13),
				calfield.Of(calfield.MinuteOfHour, 5),
			),
			want: "1:05 PM",
		},
		{
			layout: "h:mm AM/PM",
			cal: calfield.New(
				calfield.Of(calfield.HourOfDay, 0),
				calfield.Of(calfield.MinuteOfHour, 30),
			),
			want: "12:30 AM",
		},
		{
			layout: "yy/m/d",
			cal: calfield.New(
				calfield.Of(calfield.Year, 2026),
				calfield.Of(calfield.MonthOfYear, 8),
				calfield.Of(calfield.DayOfMonth, 5),
			),
			want: "26/8/5",
		},
	}
	for _, tc := range tests {
		t.Run(tc.layout+"_"+tc.want, func(t *testing.T) {
			f, err := pattern.Compile(tc.layout)
			if err != nil {
				t.Fatalf("Compile(%q): %v", tc.layout, err)
			}
			got, err := f.Print(tc.cal)
			if err != nil {
				t.Fatalf("Print: %v", err)
			}
			if got != tc.want {
				t.Errorf("Print = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestCompileParse(t *testing.T) {
	tests := []struct {
		layout string
		text   string
		want   map[string]int
	}{
		{
			layout: "yyyy-mm-dd",
			text:   "2026-08-25",
			want: map[string]int{
				"ISO.Year":        2026,
				"ISO.MonthOfYear": 8,
				"ISO.DayOfMonth":  25,
			},
		},
		{
			layout: "hh:mm:ss",
			text:   "13:05:30",
			want: map[string]int{
				"ISO.HourOfDay":      13,
				"ISO.MinuteOfHour":   5,
				"ISO.SecondOfMinute": 30,
			},
		},
		{
			layout: "h:mm AM/PM",
			text:   "1:05 pm",
			want: map[string]int{
				"ISO.ClockHourOfAmPm": 1,
				"ISO.MinuteOfHour":    5,
				"ISO.AmPmOfDay":       1,
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.text, func(t *testing.T) {
			f, err := pattern.Compile(tc.layout)
			if err != nil {
				t.Fatalf("Compile(%q): %v", tc.layout, err)
			}
			cal, err := f.Parse(tc.text)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tc.text, err)
			}
			if diff := cmp.Diff(tc.want, fields(cal)); diff != "" {
				t.Errorf("parsed fields mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMinuteMonthDisambiguation(t *testing.T) {
	// In "yyyy-mm-dd hh:mm" the first mm is the month and the second,
	// following an hour token across a ":" literal, is minutes.
	f, err := pattern.Compile("yyyy-mm-dd hh:mm")
	if err != nil {
		t.Fatal(err)
	}
	cal, err := f.Parse("2026-08-25 13:05")
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]int{
		"ISO.Year":         2026,
		"ISO.MonthOfYear":  8,
		"ISO.DayOfMonth":   25,
		"ISO.HourOfDay":    13,
		"ISO.MinuteOfHour": 5,
	}
	if diff := cmp.Diff(want, fields(cal)); diff != "" {
		t.Errorf("parsed fields mismatch (-want +got):\n%s", diff)
	}
}

func TestCompileForLocale(t *testing.T) {
	f, err := pattern.CompileForLocale("yyyy-mm-dd", language.Arabic)
	if err != nil {
		t.Fatal(err)
	}
	cal := calfield.New(
		calfield.Of(calfield.Year, 2026),
		calfield.Of(calfield.MonthOfYear, 8),
		calfield.Of(calfield.DayOfMonth, 25),
	)
	got, err := f.Print(cal)
	if err != nil {
		t.Fatal(err)
	}
	if want := "٢٠٢٦-٠٨-٢٥"; got != want {
		t.Errorf("Print = %q, want %q", got, want)
	}
}

func TestCompileErrors(t *testing.T) {
	tests := []struct {
		name    string
		layout  string
		errPart string
	}{
		{"empty layout", "", "empty layout"},
		{"text month", "d-mmm-yy", "month and weekday names"},
		{"weekday", "dddd", "month and weekday names"},
		{"elapsed hours", "[h]:mm", "elapsed-time token"},
		{"multiple sections", "yyyy;yyyy", "sections"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := pattern.Compile(tc.layout)
			if err == nil {
				t.Fatalf("Compile(%q): expected error", tc.layout)
			}
			if !strings.Contains(err.Error(), tc.errPart) {
				t.Errorf("error %q does not mention %q", err, tc.errPart)
			}
		})
	}
}

func TestMustCompile(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustCompile with a bad layout must panic")
		}
	}()
	pattern.MustCompile("dddd")
}

func TestPredefinedLayoutsRoundTrip(t *testing.T) {
	layouts := []string{pattern.ISODate, pattern.ISOTime, pattern.ISODateTime, pattern.Clock12}
	cal := calfield.New(
		calfield.Of(calfield.Year, 2026),
		calfield.Of(calfield.MonthOfYear, 8),
		calfield.Of(calfield.DayOfMonth, 25),
		calfield.Of(calfield.HourOfDay, 13),
		calfield.Of(calfield.MinuteOfHour, 5),
		calfield.Of(calfield.SecondOfMinute, 30),
	)
	for _, layout := range layouts {
		f, err := pattern.Compile(layout)
		if err != nil {
			t.Fatalf("Compile(%q): %v", layout, err)
		}
		out, err := f.Print(cal)
		if err != nil {
			t.Fatalf("Print(%q): %v", layout, err)
		}
		if _, err := f.Parse(out); err != nil {
			t.Errorf("Parse(%q) of own output %q: %v", layout, out, err)
		}
	}
}
