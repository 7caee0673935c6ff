// Package calfield defines the calendar field rules and the immutable
// field-value snapshot ([Calendrical]) that the format engine prints from
// and parses into.
//
// A [Rule] identifies one calendar quantity (hour-of-day, day-of-month,
// …), declares its inclusive value range, and may carry a derivation
// function that computes the field from a more granular field already
// present in a snapshot — hour-of-am-pm, for example, is derived from
// hour-of-day.  Rules are compared by pointer identity: two rules are the
// same field if and only if they are the same *Rule.
//
// Rules and snapshots are immutable after construction and may be shared
// freely across goroutines.
package calfield

import (
	"fmt"
	"sort"
	"strings"
)

// DeriveFunc computes a field value from other fields in a snapshot.
// It returns false when the snapshot holds nothing the field can be
// derived from.  Implementations must be pure.
type DeriveFunc func(Calendrical) (int, bool)

// Rule identifies one calendar field: a name, an inclusive value range,
// and an optional derivation capability.
type Rule struct {
	name     string
	min, max int
	derive   DeriveFunc
}

// NewRule returns a rule for a directly stored field with the given name
// and inclusive range.  It panics if name is empty or min > max; rule
// construction happens at program start-up and a bad range is a
// programmer error, not a runtime condition.
func NewRule(name string, min, max int) *Rule {
	if name == "" {
		panic("calfield: NewRule: empty rule name")
	}
	if min > max {
		panic(fmt.Sprintf("calfield: NewRule(%s): min %d greater than max %d", name, min, max))
	}
	return &Rule{name: name, min: min, max: max}
}

// NewDerivedRule returns a rule that, when not stored directly, derives
// its value through derive.  Same panics as [NewRule], plus a nil derive
// check.
func NewDerivedRule(name string, min, max int, derive DeriveFunc) *Rule {
	if derive == nil {
		panic(fmt.Sprintf("calfield: NewDerivedRule(%s): nil derive func", name))
	}
	r := NewRule(name, min, max)
	r.derive = derive
	return r
}

// Name returns the rule's identifier, e.g. "ISO.HourOfDay".
func (r *Rule) Name() string { return r.name }

// MinValue returns the smallest valid value for the field.
func (r *Rule) MinValue() int { return r.min }

// MaxValue returns the largest valid value for the field.
func (r *Rule) MaxValue() int { return r.max }

// Value obtains the field's value from the snapshot: the directly stored
// value when present, otherwise the derived value when the rule has a
// derivation and the snapshot can support it.  The boolean result
// distinguishes "absent" from "present but zero".
func (r *Rule) Value(c Calendrical) (int, bool) {
	if v, ok := c.Get(r); ok {
		return v, true
	}
	if r.derive != nil {
		return r.derive(c)
	}
	return 0, false
}

// CheckValue reports whether v lies within the rule's declared range.
// Snapshots are not range-checked on construction — a parse may
// legitimately produce raw out-of-range values such as a month of 65 —
// so callers that need validated values run them through CheckValue.
func (r *Rule) CheckValue(v int) error {
	if v < r.min || v > r.max {
		return fmt.Errorf("calfield: value %d for %s out of range [%d,%d]", v, r.name, r.min, r.max)
	}
	return nil
}

// String returns the rule name.
func (r *Rule) String() string { return r.name }

// ── snapshot ──────────────────────────────────────────────────────────────────

// FieldValue pairs a rule with a raw value for snapshot construction.
type FieldValue struct {
	Rule  *Rule
	Value int
}

// Of is a convenience constructor for a [FieldValue] pair.
func Of(rule *Rule, value int) FieldValue {
	return FieldValue{Rule: rule, Value: value}
}

// Calendrical is an immutable snapshot of field values: a mapping from
// rule identity to a raw integer value.  The zero value is an empty
// snapshot.  A snapshot is produced by parsing and consumed by printing;
// it is never mutated after construction.
type Calendrical struct {
	values map[*Rule]int
}

// New builds a snapshot from the given field/value pairs.  A nil rule
// panics.  Assigning the same rule twice keeps the last value; values are
// stored raw, without range validation (see [Rule.CheckValue]).
func New(pairs ...FieldValue) Calendrical {
	if len(pairs) == 0 {
		return Calendrical{}
	}
	m := make(map[*Rule]int, len(pairs))
	for _, p := range pairs {
		if p.Rule == nil {
			panic("calfield: New: nil rule")
		}
		m[p.Rule] = p.Value
	}
	return Calendrical{values: m}
}

// Get returns the directly stored value for rule.  It does not derive;
// use [Rule.Value] for derivation-aware access.
func (c Calendrical) Get(rule *Rule) (int, bool) {
	v, ok := c.values[rule]
	return v, ok
}

// Has reports whether rule is directly stored in the snapshot.
func (c Calendrical) Has(rule *Rule) bool {
	_, ok := c.values[rule]
	return ok
}

// Len returns the number of directly stored fields.
func (c Calendrical) Len() int { return len(c.values) }

// Rules returns the directly stored rules sorted by name, so iteration
// over a snapshot is deterministic.
func (c Calendrical) Rules() []*Rule {
	rules := make([]*Rule, 0, len(c.values))
	for r := range c.values {
		rules = append(rules, r)
	}
	sort.Slice(rules, func(i, j int) bool { return rules[i].name < rules[j].name })
	return rules
}

// String renders the snapshot as "{ISO.HourOfDay=13, ISO.MinuteOfHour=5}".
func (c Calendrical) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, r := range c.Rules() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s=%d", r.name, c.values[r])
	}
	sb.WriteByte('}')
	return sb.String()
}
