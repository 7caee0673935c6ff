package format

import (
	"fmt"

	"golang.org/x/text/language"

	"github.com/TsubasaBE/go-dtfmt/calfield"
	"github.com/TsubasaBE/go-dtfmt/symbols"
)

// Builder assembles a pattern from printer-parser nodes and produces an
// immutable [Formatter].  Methods chain:
//
//	f := format.NewBuilder().
//		AppendValueFixed(calfield.HourOfDay, 2).
//		AppendLiteral(":").
//		AppendValueFixed(calfield.MinuteOfHour, 2).
//		OptionalStart().
//		AppendLiteral(":").
//		AppendValueFixed(calfield.SecondOfMinute, 2).
//		ToFormatter(language.English)
//
// Invalid construction arguments (nil rules, widths outside 1–10,
// minWidth greater than maxWidth, unbalanced OptionalEnd) are programmer
// errors and panic.  A Builder is not safe for concurrent use; the
// formatters it produces are.
type Builder struct {
	frames []*builderFrame
}

// builderFrame collects the nodes of one (possibly optional) section.
type builderFrame struct {
	nodes    []printerParser
	optional bool
}

// NewBuilder returns an empty pattern builder.
func NewBuilder() *Builder {
	return &Builder{frames: []*builderFrame{{}}}
}

func (b *Builder) current() *builderFrame {
	return b.frames[len(b.frames)-1]
}

func (b *Builder) append(pp printerParser) *Builder {
	f := b.current()
	f.nodes = append(f.nodes, pp)
	return b
}

// AppendValue appends a numeric field with the default configuration:
// minimum width 1, maximum width 10, SignNormal.
func (b *Builder) AppendValue(rule *calfield.Rule) *Builder {
	return b.AppendValueStyled(rule, 1, maxNumberWidth, SignNormal)
}

// AppendValueFixed appends a numeric field printed at exactly width
// digits (zero-padded) with SignNotNegative.
func (b *Builder) AppendValueFixed(rule *calfield.Rule, width int) *Builder {
	return b.AppendValueStyled(rule, width, width, SignNotNegative)
}

// AppendValueStyled appends a numeric field with explicit widths and
// sign style.  It panics unless 1 ≤ minWidth ≤ maxWidth ≤ 10 and style
// is one of the five defined sign styles.
func (b *Builder) AppendValueStyled(rule *calfield.Rule, minWidth, maxWidth int, style SignStyle) *Builder {
	if rule == nil {
		panic("format: AppendValue: nil rule")
	}
	if minWidth < 1 || minWidth > maxNumberWidth {
		panic(fmt.Sprintf("format: AppendValue(%s): minWidth %d outside [1,%d]", rule.Name(), minWidth, maxNumberWidth))
	}
	if maxWidth < 1 || maxWidth > maxNumberWidth {
		panic(fmt.Sprintf("format: AppendValue(%s): maxWidth %d outside [1,%d]", rule.Name(), maxWidth, maxNumberWidth))
	}
	if minWidth > maxWidth {
		panic(fmt.Sprintf("format: AppendValue(%s): minWidth %d greater than maxWidth %d", rule.Name(), minWidth, maxWidth))
	}
	if !style.valid() {
		panic(fmt.Sprintf("format: AppendValue(%s): invalid sign style %d", rule.Name(), int(style)))
	}
	return b.append(&numberPrinterParser{rule: rule, minWidth: minWidth, maxWidth: maxWidth, signStyle: style})
}

// AppendLiteral appends text printed verbatim and matched exactly during
// parsing.  Appending an empty string is a no-op.
func (b *Builder) AppendLiteral(text string) *Builder {
	if text == "" {
		return b
	}
	return b.append(literalPrinterParser(text))
}

// AppendText appends a field rendered through a fixed value↔text
// mapping, e.g.
//
//	b.AppendText(calfield.AmPmOfDay, map[int]string{0: "AM", 1: "PM"})
//
// It panics on a nil rule, an empty mapping, or an empty text.
func (b *Builder) AppendText(rule *calfield.Rule, mapping map[int]string) *Builder {
	if rule == nil {
		panic("format: AppendText: nil rule")
	}
	if len(mapping) == 0 {
		panic(fmt.Sprintf("format: AppendText(%s): empty mapping", rule.Name()))
	}
	for v, t := range mapping {
		if t == "" {
			panic(fmt.Sprintf("format: AppendText(%s): empty text for value %d", rule.Name(), v))
		}
	}
	return b.append(newTextPrinterParser(rule, mapping))
}

// Append appends another formatter's whole pattern as a required
// sub-sequence.
func (b *Builder) Append(f *Formatter) *Builder {
	if f == nil {
		panic("format: Append: nil formatter")
	}
	return b.append(f.printerParser.withOptional(false))
}

// AppendOptional appends another formatter's whole pattern as an
// optional section: during parsing a failure inside it is absorbed as
// zero consumption, and during printing it is skipped when its data is
// unavailable.
func (b *Builder) AppendOptional(f *Formatter) *Builder {
	if f == nil {
		panic("format: AppendOptional: nil formatter")
	}
	return b.append(f.printerParser.withOptional(true))
}

// OptionalStart opens an optional section; every node appended until the
// matching [Builder.OptionalEnd] belongs to it.  Sections nest.
func (b *Builder) OptionalStart() *Builder {
	b.frames = append(b.frames, &builderFrame{optional: true})
	return b
}

// OptionalEnd closes the innermost optional section.  It panics when no
// section is open.  An empty optional section is dropped.
func (b *Builder) OptionalEnd() *Builder {
	if len(b.frames) == 1 {
		panic("format: OptionalEnd without matching OptionalStart")
	}
	f := b.current()
	b.frames = b.frames[:len(b.frames)-1]
	if len(f.nodes) > 0 {
		b.append(&compositePrinterParser{printerParsers: f.nodes, optional: true})
	}
	return b
}

// ToFormatter completes any open optional sections and binds the pattern
// to the symbol table of the given locale.  The returned formatter is
// immutable; the builder may continue to be used afterwards.
func (b *Builder) ToFormatter(locale language.Tag) *Formatter {
	for len(b.frames) > 1 {
		b.OptionalEnd()
	}
	nodes := make([]printerParser, len(b.current().nodes))
	copy(nodes, b.current().nodes)
	return &Formatter{
		printerParser: &compositePrinterParser{printerParsers: nodes},
		symbols:       symbols.ForLocale(locale),
		canPrint:      true,
		canParse:      true,
	}
}
