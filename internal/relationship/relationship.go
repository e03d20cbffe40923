// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package relationship

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/relcheck/relcheck/internal/document"
	"github.com/relcheck/relcheck/internal/log"
	"github.com/relcheck/relcheck/internal/source"
)

// Declaration is one declared cross-reference. The four identifying fields
// are mandatory; Comparison may be empty, selecting DefaultComparison at
// evaluation time.
type Declaration struct {
	SourceFile  string `json:"source_file"`
	SourceParam string `json:"source_param"`
	TargetFile  string `json:"target_file"`
	TargetParam string `json:"target_param"`
	Comparison  string `json:"comparison,omitempty"`
}

// String echoes the full declaration in diagnostic lines.
func (d Declaration) String() string {
	comparison := d.Comparison
	if comparison == "" {
		comparison = DefaultComparison.String()
	}
	return fmt.Sprintf("{source_file: %s, source_param: %s, target_file: %s, target_param: %s, comparison: %s}",
		d.SourceFile, d.SourceParam, d.TargetFile, d.TargetParam, comparison)
}

// Validate checks the four mandatory fields. A structurally invalid
// declaration never reaches lookup or comparison.
func (d Declaration) Validate() error {
	var missing []string
	if d.SourceFile == "" {
		missing = append(missing, "source_file")
	}
	if d.SourceParam == "" {
		missing = append(missing, "source_param")
	}
	if d.TargetFile == "" {
		missing = append(missing, "target_file")
	}
	if d.TargetParam == "" {
		missing = append(missing, "target_param")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required fields: %s", strings.Join(missing, ", "))
	}
	return nil
}

// LoadSet reads the relationship file into an ordered declaration sequence.
// JSON is the documented format; a .yaml/.yml extension switches the parser,
// any other extension is read as JSON. Any failure here is fatal to the run:
// no partial validation happens against a half-loaded relationship set.
func LoadSet(ctx context.Context, path string) ([]Declaration, error) {
	format := document.FormatJSON
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		format = document.FormatYAML
	}

	data, err := source.Fetch(ctx, path)
	if err != nil {
		if errors.Is(err, source.ErrNotExist) {
			return nil, fmt.Errorf("relationships file not found: %s", path)
		}
		return nil, err
	}

	doc, err := document.Parse(path, format, data)
	if err != nil {
		return nil, err
	}

	if !doc.Root.IsArray() {
		return nil, fmt.Errorf("relationships file %s must contain a sequence of relationship records", path)
	}

	var declarations []Declaration
	if err := json.Unmarshal(doc.JSON, &declarations); err != nil {
		return nil, &document.FormatError{Path: path, Format: format, Err: err}
	}

	log.Debugf("loaded %d relationship declarations from %s", len(declarations), path)
	return declarations, nil
}
