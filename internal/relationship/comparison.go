// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package relationship

import "fmt"

// Comparison is the closed set of operators a relationship may declare.
// Keeping this an enum (rather than dispatching on the raw string) makes the
// unsupported-comparison path a single parse failure instead of a default
// branch scattered through evaluation.
type Comparison int

const (
	ComparisonInvalid Comparison = iota
	Equals
	NotEquals
	GreaterThan
	LessThan
	GreaterThanOrEqual
	LessThanOrEqual
)

// DefaultComparison is applied when a declaration omits the comparison field.
const DefaultComparison = Equals

var comparisonNames = map[Comparison]string{
	Equals:             "equals",
	NotEquals:          "not_equals",
	GreaterThan:        "greater_than",
	LessThan:           "less_than",
	GreaterThanOrEqual: "greater_than_or_equal_to",
	LessThanOrEqual:    "less_than_or_equal_to",
}

func (c Comparison) String() string {
	if name, ok := comparisonNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Comparison(%d)", int(c))
}

// Ordered reports whether the operator requires an ordering of its operands
// (everything except equals/not_equals).
func (c Comparison) Ordered() bool {
	switch c {
	case Equals, NotEquals:
		return false
	default:
		return true
	}
}

// ParseComparison maps a declared comparison name to its enum value. The
// empty string selects DefaultComparison. Both the `_to`-suffixed spellings
// and the shorter `greater_than_or_equal` forms are accepted.
func ParseComparison(name string) (Comparison, error) {
	switch name {
	case "":
		return DefaultComparison, nil
	case "equals":
		return Equals, nil
	case "not_equals":
		return NotEquals, nil
	case "greater_than":
		return GreaterThan, nil
	case "less_than":
		return LessThan, nil
	case "greater_than_or_equal_to", "greater_than_or_equal":
		return GreaterThanOrEqual, nil
	case "less_than_or_equal_to", "less_than_or_equal":
		return LessThanOrEqual, nil
	default:
		return ComparisonInvalid, fmt.Errorf("unsupported comparison type: %s", name)
	}
}
