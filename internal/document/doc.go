// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package document loads configuration files into a format-agnostic value
// tree. YAML (.yaml/.yml) and JSON (.json) sources are recognized purely by
// extension suffix; once parsed, both normalize to a compact JSON rendering
// with a pre-parsed gjson root so downstream path resolution and comparison
// never care about the source serialization.
package document
