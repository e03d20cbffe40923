// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package document

import "fmt"

// NotFoundError reports that a declared document path does not exist. Fatal
// to the run.
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("configuration file not found: %s", e.Path)
}

func (e *NotFoundError) Unwrap() error { return e.Err }

// FormatError reports that a document exists but its content fails to parse
// under the format its extension declares. The underlying parser error is
// carried for diagnostics. Fatal to the run.
type FormatError struct {
	Path   string
	Format Format
	Err    error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid %s file: %s. Error: %v", e.Format, e.Path, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// UnsupportedFormatError reports that a path's extension is neither of the
// recognized serializations. Fatal to the run.
type UnsupportedFormatError struct {
	Path string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file format: %s. Must be YAML or JSON", e.Path)
}
