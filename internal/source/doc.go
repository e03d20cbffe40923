// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package source reads raw document bytes from a path. Plain paths are read
// from the local filesystem; paths of the form s3://bucket/key are fetched
// from S3 using the ambient AWS credential chain. Either way a missing
// document surfaces as ErrNotExist so callers can classify it uniformly.
package source
