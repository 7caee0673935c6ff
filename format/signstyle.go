package format

// SignStyle controls whether and when a sign glyph is printed before a
// numeric field, and which sign glyphs the parser accepts.  The print and
// parse rules for each style are deliberately symmetric so that printing
// a value and parsing its own output round-trips.
type SignStyle int

const (
	// SignNormal prints a minus sign for negative values and nothing
	// otherwise; parsing accepts an optional minus sign.
	SignNormal SignStyle = iota

	// SignAlways prints a plus or minus sign for every value; parsing
	// accepts an optional plus or minus sign.
	SignAlways

	// SignNever never prints a sign and rejects negative values; parsing
	// accepts no sign glyph.
	SignNever

	// SignNotNegative never prints a sign and rejects negative values;
	// parsing accepts no sign glyph.  It differs from SignNever in the
	// error it surfaces for a negative value and in its role in the
	// description contract (fixed-width fields describe as
	// "Value(rule,width)" only under SignNotNegative).
	SignNotNegative

	// SignExceedsPad prints a minus sign for negative values and a plus
	// sign for non-negative values whose unpadded digit count exceeds the
	// minimum width; parsing accepts an optional plus or minus sign.
	SignExceedsPad
)

// String returns the stable upper-case name used in printer-parser
// descriptions: NORMAL, ALWAYS, NEVER, NOT_NEGATIVE or EXCEEDS_PAD.
func (s SignStyle) String() string {
	switch s {
	case SignNormal:
		return "NORMAL"
	case SignAlways:
		return "ALWAYS"
	case SignNever:
		return "NEVER"
	case SignNotNegative:
		return "NOT_NEGATIVE"
	case SignExceedsPad:
		return "EXCEEDS_PAD"
	}
	return "UNKNOWN"
}

// valid reports whether s is one of the five defined styles.
func (s SignStyle) valid() bool {
	return s >= SignNormal && s <= SignExceedsPad
}
