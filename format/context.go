package format

import (
	"github.com/TsubasaBE/go-dtfmt/calfield"
	"github.com/TsubasaBE/go-dtfmt/symbols"
)

// parsedField is one raw field/value pair recorded during a parse pass.
type parsedField struct {
	rule  *calfield.Rule
	value int
}

// parseContext accumulates the raw field values discovered during one
// parse pass.  It is mutable, single-use, and never shared between calls.
//
// Entries are kept in recording order rather than folded into a map so
// that optional sections can be rolled back by truncation and so that
// duplicate assignments survive until resolve, where conflicts are
// detected.
type parseContext struct {
	symbols *symbols.Symbols
	parsed  []parsedField
}

func newParseContext(sym *symbols.Symbols) *parseContext {
	return &parseContext{symbols: sym}
}

// setParsed records a raw field/value pair.  Conflicting assignments are
// deliberately not detected here: an optional section that later rolls
// back may be the source of the duplicate, so judgment is deferred to
// resolve.
func (c *parseContext) setParsed(rule *calfield.Rule, value int) {
	c.parsed = append(c.parsed, parsedField{rule: rule, value: value})
}

// checkpoint marks the current recording position so a failed optional
// section can be undone.
func (c *parseContext) checkpoint() int {
	return len(c.parsed)
}

// rollback discards every entry recorded after the checkpoint.
func (c *parseContext) rollback(cp int) {
	c.parsed = c.parsed[:cp]
}

// resolve folds the recorded entries into an immutable snapshot.
// Recording the same rule twice with the same value is idempotent;
// two different values for one rule is a conflict.
func (c *parseContext) resolve() (calfield.Calendrical, error) {
	pairs := make([]calfield.FieldValue, 0, len(c.parsed))
	seen := make(map[*calfield.Rule]int, len(c.parsed))
	for _, p := range c.parsed {
		if prev, ok := seen[p.rule]; ok {
			if prev != p.value {
				return calfield.Calendrical{}, &FieldConflictError{Rule: p.rule, First: prev, Second: p.value}
			}
			continue
		}
		seen[p.rule] = p.value
		pairs = append(pairs, calfield.Of(p.rule, p.value))
	}
	return calfield.New(pairs...), nil
}
