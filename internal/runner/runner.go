// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package runner

import (
	"context"

	"github.com/relcheck/relcheck/internal/document"
	"github.com/relcheck/relcheck/internal/evaluator"
	"github.com/relcheck/relcheck/internal/log"
	"github.com/relcheck/relcheck/internal/relationship"
	"github.com/relcheck/relcheck/internal/resolver"
)

// Options configure a single validation run.
type Options struct {
	ConfigPaths      []string
	RelationshipPath string
	Evaluator        evaluator.Options
	Color            bool
}

// Result pairs a declaration with its verdict.
type Result struct {
	Declaration relationship.Declaration
	Verdict     evaluator.Verdict
}

// Report aggregates all per-relationship results of one run.
type Report struct {
	Results []Result
}

// Passed reports overall success: every relationship passed.
func (r *Report) Passed() bool {
	for _, res := range r.Results {
		if !res.Verdict.Passed() {
			return false
		}
	}
	return true
}

// Failed counts relationships that did not pass.
func (r *Report) Failed() int {
	n := 0
	for _, res := range r.Results {
		if !res.Verdict.Passed() {
			n++
		}
	}
	return n
}

// ExitCode maps overall success to the process exit status.
func (r *Report) ExitCode() int {
	if r.Passed() {
		return 0
	}
	return 1
}

// Run executes a full validation pass. A nil Report with an error means the
// run aborted during loading and nothing was evaluated.
func Run(ctx context.Context, opts Options) (*Report, error) {
	log.Infof("starting configuration relationship validation")

	declarations, err := relationship.LoadSet(ctx, opts.RelationshipPath)
	if err != nil {
		log.Errorf("failed to load relationships file: %v", err)
		return nil, err
	}

	set, err := document.NewSet(ctx, opts.ConfigPaths)
	if err != nil {
		log.Errorf("failed to load configuration file: %v", err)
		return nil, err
	}

	report := &Report{Results: make([]Result, 0, len(declarations))}
	for _, decl := range declarations {
		verdict := check(decl, set, opts.Evaluator)
		report.Results = append(report.Results, Result{Declaration: decl, Verdict: verdict})
		emit(decl, verdict, opts.Color)
	}

	if report.Passed() {
		log.Infof("%s all %d relationships validated successfully",
			marker(true, opts.Color), len(report.Results))
	} else {
		log.Errorf("%s %d of %d relationship validations failed",
			marker(false, opts.Color), report.Failed(), len(report.Results))
	}

	return report, nil
}

// check produces the verdict for one declaration. Structural validation
// happens first so no lookup is ever attempted for an invalid record; lookup
// failures are folded into the verdict rather than propagated.
func check(decl relationship.Declaration, set document.Set, opts evaluator.Options) evaluator.Verdict {
	if err := decl.Validate(); err != nil {
		return evaluator.Verdict{Outcome: evaluator.DeclarationError, Detail: err.Error()}
	}

	src, err := resolver.Resolve(set, decl.SourceFile, decl.SourceParam)
	if err != nil {
		return evaluator.Verdict{Outcome: evaluator.LookupError, Detail: err.Error()}
	}

	tgt, err := resolver.Resolve(set, decl.TargetFile, decl.TargetParam)
	if err != nil {
		return evaluator.Verdict{Outcome: evaluator.LookupError, Detail: err.Error()}
	}

	return evaluator.Evaluate(decl, src, tgt, opts)
}

// emit writes the one-line outcome for a relationship, echoing the full
// declaration. Permissive null passes keep their explanatory detail at Warn
// so they stand out without failing the run.
func emit(decl relationship.Declaration, verdict evaluator.Verdict, color bool) {
	switch {
	case verdict.Passed() && verdict.Detail != "":
		log.Warnf("%s relationship %s: %s", marker(true, color), decl, verdict.Detail)
	case verdict.Passed():
		log.Infof("%s relationship %s", marker(true, color), decl)
	default:
		log.Errorf("%s relationship %s: %s: %s", marker(false, color), decl, verdict.Outcome, verdict.Detail)
	}
}
