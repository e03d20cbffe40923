// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package resolver navigates a loaded document set using dotted parameter
// paths (e.g. "server.port"). Descent is over mapping keys only; sequence
// indexing is deliberately outside the contract. A failed lookup names the
// document, the full path, and the first segment that could not be resolved.
package resolver
