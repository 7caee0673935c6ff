package format

import (
	"fmt"
	"sort"
	"strings"

	"github.com/TsubasaBE/go-dtfmt/calfield"
	"github.com/TsubasaBE/go-dtfmt/symbols"
)

// textEntry maps one field value to its textual representation.
type textEntry struct {
	value int
	text  string
}

// textPrinterParser prints and parses a field through a fixed value↔text
// mapping, e.g. AM/PM.  It carries its own texts rather than consulting a
// locale resource; locale text loading is outside this library.
//
// Entries are held longest-text-first so parsing always takes the longest
// match ("AM" before "A").  Matching is case-insensitive.
type textPrinterParser struct {
	rule    *calfield.Rule
	entries []textEntry
}

func newTextPrinterParser(rule *calfield.Rule, mapping map[int]string) *textPrinterParser {
	entries := make([]textEntry, 0, len(mapping))
	for v, t := range mapping {
		entries = append(entries, textEntry{value: v, text: t})
	}
	sort.Slice(entries, func(i, j int) bool {
		if len(entries[i].text) != len(entries[j].text) {
			return len(entries[i].text) > len(entries[j].text)
		}
		return entries[i].value < entries[j].value
	})
	return &textPrinterParser{rule: rule, entries: entries}
}

func (pp *textPrinterParser) print(cal calfield.Calendrical, _ *symbols.Symbols, sb *strings.Builder) error {
	value, ok := pp.rule.Value(cal)
	if !ok {
		return &FieldUnavailableError{Rule: pp.rule}
	}
	for _, e := range pp.entries {
		if e.value == value {
			sb.WriteString(e.text)
			return nil
		}
	}
	return &FieldValueError{Rule: pp.rule, Value: value, Reason: ReasonNoTextMapping}
}

func (pp *textPrinterParser) parse(ctx *parseContext, text string, pos int) int {
	checkParsePosition(text, pos)
	for _, e := range pp.entries {
		end := pos + len(e.text)
		if end <= len(text) && strings.EqualFold(text[pos:end], e.text) {
			ctx.setParsed(pp.rule, e.value)
			return end
		}
	}
	return ^pos
}

func (pp *textPrinterParser) printDataAvailable(cal calfield.Calendrical) bool {
	_, ok := pp.rule.Value(cal)
	return ok
}

func (pp *textPrinterParser) String() string {
	return fmt.Sprintf("Text(%s)", pp.rule.Name())
}
