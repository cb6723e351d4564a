// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Precision Solutions Tech
// Source: github.com/precisionsolutionstech-netizen/api-catalog

package catalog

// ConversionRequest is the wire envelope sent to the converter service.
//
// The envelope itself is always JSON regardless of source format; non-JSON
// source documents travel as text inside Payload.
type ConversionRequest struct {
	SourceFormat FormatID       `json:"sourceFormat"`
	TargetFormat FormatID       `json:"targetFormat"`
	Payload      any            `json:"payload"`
	Options      map[string]any `json:"options,omitempty"`
}

// RequestEntry is one named example request for a source and target pair.
type RequestEntry struct {
	// Name is unique across the matrix, "source → target".
	Name    string
	Source  FormatID
	Target  FormatID
	Accept  string
	Request ConversionRequest
}

// RequestGroup collects every entry sharing one source format.
type RequestGroup struct {
	Source  FormatID
	Entries []RequestEntry
}

// RequestMatrix is the ordered, grouped collection of all example requests.
type RequestMatrix struct {
	Groups []RequestGroup
}

// Len returns the total number of entries across all groups.
func (matrix RequestMatrix) Len() int {
	total := 0
	for _, group := range matrix.Groups {
		total += len(group.Entries)
	}

	return total
}

// Entries returns all entries flattened in matrix order.
func (matrix RequestMatrix) Entries() []RequestEntry {
	out := make([]RequestEntry, 0, matrix.Len())
	for _, group := range matrix.Groups {
		out = append(out, group.Entries...)
	}

	return out
}

// BuildRequestMatrix produces one example request per source and target pair.
//
// Sources iterate in input order and targets in output order, so the matrix
// covers every pair exactly once, self-conversions included. Entry payloads
// are isolated copies; mutating one never leaks into another entry or into
// the registry samples.
func (registry *Registry) BuildRequestMatrix() RequestMatrix {
	groups := make([]RequestGroup, 0, len(registry.inputFormats))

	for _, source := range registry.inputFormats {
		group := RequestGroup{
			Source:  source,
			Entries: make([]RequestEntry, 0, len(registry.outputFormats)),
		}

		payload := registry.demoPayload(source)

		for _, target := range registry.outputFormats {
			group.Entries = append(group.Entries, RequestEntry{
				Name:   entryName(source, target),
				Source: source,
				Target: target,
				Accept: registry.AcceptHeader(target),
				Request: ConversionRequest{
					SourceFormat: source,
					TargetFormat: target,
					Payload:      cloneJSONValue(payload),
					Options:      registry.requiredOutputDefaults(target),
				},
			})
		}

		groups = append(groups, group)
	}

	return RequestMatrix{Groups: groups}
}

// demoPayload selects the example payload for one source format.
//
// A structured single-record sample becomes a two-record batch, showing that
// the converter accepts record sequences and not only single documents.
func (registry *Registry) demoPayload(source FormatID) any {
	sample := registry.samples[source]
	if record, ok := sample.(map[string]any); ok {
		return []any{record, variantRecord()}
	}

	return sample
}

// requiredOutputDefaults collects defaults for the required output options of target.
//
// Only targets with required output options get an explicit options block;
// every other target relies on defaults applied by the service.
func (registry *Registry) requiredOutputDefaults(target FormatID) map[string]any {
	set, ok := registry.sets[optionSetKey{Format: target, Direction: DirectionOutput}]
	if !ok {
		return nil
	}

	var out map[string]any

	for _, descriptor := range set.Descriptors {
		if !descriptor.Required {
			continue
		}

		if out == nil {
			out = make(map[string]any)
		}

		out[descriptor.Key] = descriptor.Default
	}

	return out
}

// entryName renders the unique human-readable name for one conversion pair.
func entryName(source, target FormatID) string {
	return string(source) + " → " + string(target)
}
