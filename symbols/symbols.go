// Package symbols provides the per-locale glyph tables the format engine
// uses to translate between field values and text: the zero digit of the
// locale's numbering system and the plus/minus sign glyphs.
//
// Locales are identified by [golang.org/x/text/language.Tag].  Resolution
// is deliberately small: the base language selects a decimal numbering
// system (Latin by default), mirroring at miniature scale how
// golang.org/x/text maps languages to default numbering systems.  A
// [Symbols] value is immutable and may be shared freely.
package symbols

import "golang.org/x/text/language"

// Symbols is an immutable glyph table for one locale.
type Symbols struct {
	locale    language.Tag
	zeroDigit rune
	plusSign  rune
	minusSign rune
}

// Zero digits of the decimal numbering systems recognised by ForLocale.
// All recognised systems use ten consecutive code points for 0–9.
const (
	zeroLatn    = '0'
	zeroArab    = '٠' // ٠  Arabic-Indic
	zeroArabExt = '۰' // ۰  Extended Arabic-Indic (Persian)
	zeroBeng    = '০' // ০  Bengali
	zeroDeva    = '०' // ०  Devanagari
)

// defaultNumberingZero maps a base language to the zero digit of its
// default decimal numbering system.  Languages not listed use Latin
// digits.  The table only needs the handful of languages whose default
// system is non-Latin; everything else falls through.
var defaultNumberingZero = map[string]rune{
	"ar": zeroArab,
	"fa": zeroArabExt,
	"ps": zeroArabExt,
	"bn": zeroBeng,
	"mr": zeroDeva,
	"ne": zeroDeva,
}

// ForLocale returns the symbol table for the given locale tag.
// Construction is cheap; no process-wide cache is kept.
func ForLocale(tag language.Tag) *Symbols {
	zero := rune(zeroLatn)
	if base, conf := tag.Base(); conf != language.No {
		if z, ok := defaultNumberingZero[base.String()]; ok {
			zero = z
		}
	}
	return &Symbols{
		locale:    tag,
		zeroDigit: zero,
		plusSign:  '+',
		minusSign: '-',
	}
}

// Default returns the symbol table for [language.English]: Latin digits
// and ASCII signs.
func Default() *Symbols {
	return ForLocale(language.English)
}

// Locale returns the locale tag the table was built for.
func (s *Symbols) Locale() language.Tag { return s.locale }

// ZeroDigit returns the glyph for the digit zero.
func (s *Symbols) ZeroDigit() rune { return s.zeroDigit }

// Digit returns the glyph for decimal digit d.  d must be in 0–9; the
// engine only ever passes single decimal digits.
func (s *Symbols) Digit(d int) rune {
	return s.zeroDigit + rune(d)
}

// DigitValue returns the decimal value of glyph r in this locale's
// numbering system, or -1 when r is not a digit.
func (s *Symbols) DigitValue(r rune) int {
	d := int(r - s.zeroDigit)
	if d < 0 || d > 9 {
		return -1
	}
	return d
}

// PlusSign returns the positive-sign glyph.
func (s *Symbols) PlusSign() rune { return s.plusSign }

// MinusSign returns the negative-sign glyph.
func (s *Symbols) MinusSign() rune { return s.minusSign }
