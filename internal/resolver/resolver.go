// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package resolver

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/relcheck/relcheck/internal/document"
)

// LookupError reports a failed dotted-path resolution. Document is always
// set; Segment is empty when the document itself was not in the set.
type LookupError struct {
	Document string
	Path     string
	Segment  string
}

func (e *LookupError) Error() string {
	if e.Segment == "" && e.Path == "" {
		return fmt.Sprintf("file %q not found in configuration data", e.Document)
	}
	return fmt.Sprintf("parameter %q not found in file %q (segment %q unresolved)",
		e.Path, e.Document, e.Segment)
}

// Resolve descends the value tree of the named document one dotted segment
// at a time. Every step requires the current node to be a mapping containing
// the segment key. The result may be any node shape, including an explicit
// null, which is a legitimate terminal value and not an error.
func Resolve(set document.Set, documentID string, dottedPath string) (gjson.Result, error) {
	doc, ok := set[documentID]
	if !ok {
		return gjson.Result{}, &LookupError{Document: documentID}
	}

	current := doc.Root
	for _, segment := range strings.Split(dottedPath, ".") {
		// Keys are literal here; gjson's own path syntax (wildcards,
		// array access, modifiers) must not apply, so look the segment
		// up in the materialized mapping instead of using Get.
		if !current.IsObject() {
			return gjson.Result{}, &LookupError{Document: documentID, Path: dottedPath, Segment: segment}
		}
		next, ok := current.Map()[segment]
		if !ok {
			return gjson.Result{}, &LookupError{Document: documentID, Path: dottedPath, Segment: segment}
		}
		current = next
	}

	return current, nil
}
