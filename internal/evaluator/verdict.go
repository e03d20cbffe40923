// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package evaluator

// Outcome classifies a single relationship evaluation.
type Outcome int

const (
	// Pass: the comparison held (or a null side passed permissively).
	Pass Outcome = iota
	// Fail: both values resolved and compared, and the comparison is false.
	Fail
	// DeclarationError: the relationship record itself is invalid (missing
	// mandatory fields or an unsupported comparison name).
	DeclarationError
	// LookupError: the named document or a dotted-path segment could not be
	// resolved.
	LookupError
	// ComparisonTypeError: the resolved values are not comparable under the
	// declared operator.
	ComparisonTypeError
)

func (o Outcome) String() string {
	switch o {
	case Pass:
		return "pass"
	case Fail:
		return "fail"
	case DeclarationError:
		return "declaration error"
	case LookupError:
		return "lookup error"
	case ComparisonTypeError:
		return "comparison type error"
	default:
		return "unknown"
	}
}

// Verdict is the per-relationship result: an outcome plus diagnostic detail
// for anything other than a clean pass.
type Verdict struct {
	Outcome Outcome
	Detail  string
}

// Passed reports whether the relationship counts toward an overall-pass run.
func (v Verdict) Passed() bool {
	return v.Outcome == Pass
}
