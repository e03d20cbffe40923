// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package evaluator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/yudai/gojsondiff"
	"github.com/yudai/gojsondiff/formatter"

	"github.com/relcheck/relcheck/internal/relationship"
)

// Options control evaluation policy.
type Options struct {
	// NullPasses preserves the permissive default: a relationship whose
	// source or target resolves to null passes regardless of the declared
	// comparison, so references to currently-unset optional parameters do
	// not block validation. When disabled, equality operators compare null
	// as a value and ordering operators reject null operands.
	NullPasses bool
}

// DefaultOptions matches the documented permissive behavior.
var DefaultOptions = Options{NullPasses: true}

// orderedHolds maps each ordering operator to its test over a three-way
// comparison result (-1, 0, 1). The map is total over Comparison values for
// which Ordered() is true; equality operators never reach it.
var orderedHolds = map[relationship.Comparison]func(int) bool{
	relationship.GreaterThan:        func(c int) bool { return c > 0 },
	relationship.LessThan:           func(c int) bool { return c < 0 },
	relationship.GreaterThanOrEqual: func(c int) bool { return c >= 0 },
	relationship.LessThanOrEqual:    func(c int) bool { return c <= 0 },
}

// Evaluate applies the declared comparison to the resolved source and target
// values. The declaration is assumed structurally valid; only its comparison
// name is still interpreted here, so an unsupported name yields a
// DeclarationError independent of the values.
func Evaluate(decl relationship.Declaration, src, tgt gjson.Result, opts Options) Verdict {
	comparison, err := relationship.ParseComparison(decl.Comparison)
	if err != nil {
		return Verdict{Outcome: DeclarationError, Detail: err.Error()}
	}

	srcNull := src.Type == gjson.Null
	tgtNull := tgt.Type == gjson.Null
	if opts.NullPasses && (srcNull || tgtNull) {
		return Verdict{
			Outcome: Pass,
			Detail:  fmt.Sprintf("one or more values are null (source: %s, target: %s), passing permissively", display(src), display(tgt)),
		}
	}

	if !comparison.Ordered() {
		return evaluateEquality(comparison, src, tgt)
	}

	if srcNull || tgtNull {
		return Verdict{
			Outcome: ComparisonTypeError,
			Detail:  fmt.Sprintf("cannot apply %s to a null value (source: %s, target: %s)", comparison, display(src), display(tgt)),
		}
	}

	return evaluateOrdered(comparison, src, tgt)
}

// evaluateEquality handles equals/not_equals over any two value shapes using
// deep structural equality of the normalized trees. Values of different
// underlying types are simply unequal, never a type error.
func evaluateEquality(comparison relationship.Comparison, src, tgt gjson.Result) Verdict {
	equal := reflect.DeepEqual(src.Value(), tgt.Value())

	holds := equal
	if comparison == relationship.NotEquals {
		holds = !equal
	}

	if holds {
		return Verdict{Outcome: Pass}
	}

	detail := fmt.Sprintf("%s(%s, %s) does not hold", comparison, display(src), display(tgt))
	if comparison == relationship.Equals && src.IsObject() && tgt.IsObject() {
		if delta := structuralDelta(src, tgt); delta != "" {
			detail += "\n" + delta
		}
	}
	return Verdict{Outcome: Fail, Detail: detail}
}

// evaluateOrdered handles the four ordering operators over two scalars of
// the same underlying kind.
func evaluateOrdered(comparison relationship.Comparison, src, tgt gjson.Result) Verdict {
	srcKind, tgtKind := kind(src), kind(tgt)
	if srcKind != tgtKind || srcKind == kindStructured {
		return Verdict{
			Outcome: ComparisonTypeError,
			Detail: fmt.Sprintf("cannot compare %s value %s with %s value %s under %s",
				srcKind, display(src), tgtKind, display(tgt), comparison),
		}
	}

	var cmp int
	switch srcKind {
	case kindNumber:
		switch {
		case src.Num < tgt.Num:
			cmp = -1
		case src.Num > tgt.Num:
			cmp = 1
		}
	case kindString:
		cmp = strings.Compare(src.Str, tgt.Str)
	case kindBool:
		cmp = boolAsInt(src.Bool()) - boolAsInt(tgt.Bool())
	}

	if orderedHolds[comparison](cmp) {
		return Verdict{Outcome: Pass}
	}
	return Verdict{
		Outcome: Fail,
		Detail:  fmt.Sprintf("%s(%s, %s) does not hold", comparison, display(src), display(tgt)),
	}
}

// structuralDelta renders a gojsondiff ascii delta between two mapping
// values for the fail diagnostic. Best effort: an empty string is returned
// when the delta cannot be computed.
func structuralDelta(src, tgt gjson.Result) string {
	delta, err := gojsondiff.New().Compare([]byte(src.Raw), []byte(tgt.Raw))
	if err != nil || !delta.Modified() {
		return ""
	}

	left, ok := src.Value().(map[string]interface{})
	if !ok {
		return ""
	}

	text, err := formatter.NewAsciiFormatter(left, formatter.AsciiFormatterConfig{
		ShowArrayIndex: false,
		Coloring:       false,
	}).Format(delta)
	if err != nil {
		return ""
	}
	return strings.TrimRight(text, "\n")
}

type valueKind int

const (
	kindNumber valueKind = iota
	kindString
	kindBool
	kindStructured
)

func (k valueKind) String() string {
	switch k {
	case kindNumber:
		return "number"
	case kindString:
		return "string"
	case kindBool:
		return "boolean"
	default:
		return "structured"
	}
}

func kind(v gjson.Result) valueKind {
	switch v.Type {
	case gjson.Number:
		return kindNumber
	case gjson.String:
		return kindString
	case gjson.True, gjson.False:
		return kindBool
	default:
		return kindStructured
	}
}

func boolAsInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// display renders a resolved value for diagnostics. Raw JSON keeps strings
// quoted so `"8080"` and `8080` stay distinguishable in fail lines.
func display(v gjson.Result) string {
	if v.Raw == "" {
		return "null"
	}
	return v.Raw
}
