// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package document

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"

	"github.com/relcheck/relcheck/internal/log"
	"github.com/relcheck/relcheck/internal/source"
)

// Format identifies a recognized source serialization.
type Format int

const (
	FormatUnknown Format = iota
	FormatYAML
	FormatJSON
)

func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "YAML"
	case FormatJSON:
		return "JSON"
	default:
		return "unknown"
	}
}

// Document is one loaded configuration file. JSON holds the normalized
// compact rendering of the parsed content regardless of source format; Root
// is the pre-parsed gjson view of it. Both are immutable after load.
type Document struct {
	ID     string
	Path   string
	Format Format
	JSON   []byte
	Root   gjson.Result
}

// Set maps document identifiers (path basenames) to loaded documents. Built
// once per run and read-only thereafter.
type Set map[string]*Document

// DetectFormat selects the serialization by extension suffix alone, never by
// content sniffing.
func DetectFormat(path string) (Format, error) {
	switch {
	case strings.HasSuffix(path, ".yaml"), strings.HasSuffix(path, ".yml"):
		return FormatYAML, nil
	case strings.HasSuffix(path, ".json"):
		return FormatJSON, nil
	default:
		return FormatUnknown, &UnsupportedFormatError{Path: path}
	}
}

// ID derives the document identifier for a path: its basename, extension
// included. S3 URIs use the basename of the object key.
func ID(path string) string {
	return filepath.Base(strings.TrimPrefix(path, "s3://"))
}

// Load reads and parses one configuration file. It fails with NotFoundError,
// FormatError or UnsupportedFormatError per the path and its content.
func Load(ctx context.Context, path string) (*Document, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	data, err := source.Fetch(ctx, path)
	if err != nil {
		if errors.Is(err, source.ErrNotExist) {
			return nil, &NotFoundError{Path: path, Err: err}
		}
		return nil, err
	}

	doc, err := Parse(path, format, data)
	if err != nil {
		return nil, err
	}

	log.Debugf("loaded %s as %s document %q", path, format, doc.ID)
	return doc, nil
}

// Parse builds a Document from raw bytes already known to be in the given
// format. The content is decoded with the format's native parser and then
// re-marshaled to compact JSON so both formats share one value tree
// representation.
func Parse(path string, format Format, data []byte) (*Document, error) {
	var tree any

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &tree); err != nil {
			return nil, &FormatError{Path: path, Format: format, Err: err}
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &tree); err != nil {
			return nil, &FormatError{Path: path, Format: format, Err: err}
		}
	default:
		return nil, &UnsupportedFormatError{Path: path}
	}

	normalized, err := json.Marshal(tree)
	if err != nil {
		// YAML allows shapes JSON cannot carry (e.g. non-string keys).
		return nil, &FormatError{Path: path, Format: format, Err: err}
	}

	return &Document{
		ID:     ID(path),
		Path:   path,
		Format: format,
		JSON:   normalized,
		Root:   gjson.ParseBytes(normalized),
	}, nil
}

// NewSet loads every path into a Set keyed by document identifier. Loading
// is fail-fast: the first error aborts and no partial set is returned.
// Duplicate identifiers are rejected since lookups by basename would be
// ambiguous.
func NewSet(ctx context.Context, paths []string) (Set, error) {
	set := make(Set, len(paths))
	for _, path := range paths {
		doc, err := Load(ctx, path)
		if err != nil {
			return nil, err
		}
		if _, dup := set[doc.ID]; dup {
			return nil, fmt.Errorf("duplicate document identifier %q (from %s)", doc.ID, path)
		}
		set[doc.ID] = doc
	}
	return set, nil
}
