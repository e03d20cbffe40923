// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package evaluator applies a relationship's declared comparison to the two
// resolved parameter values and classifies the outcome. Equality operators
// use deep structural equality over the normalized value trees; ordering
// operators require two scalars of the same underlying kind (numeric order,
// lexical string order, booleans as 0/1).
package evaluator
