// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package relationship models declared cross-references between
// configuration parameters: "this parameter in file A must compare this way
// against that parameter in file B". Declarations are loaded from a JSON
// (or YAML) sequence and evaluated in declared order.
package relationship
