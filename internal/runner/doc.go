// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package runner drives a validation run: load the relationship set, load
// every configuration document, evaluate each relationship in declared
// order, and aggregate an overall pass/fail. Loading failures abort the run
// before any relationship is evaluated; per-relationship failures are
// collected and reported without stopping the run.
package runner
