// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Precision Solutions Tech
// Source: github.com/precisionsolutionstech-netizen/api-catalog

package catalog

import (
	"fmt"
	"slices"
	"strings"
)

// FormatID identifies one supported data format by its kebab-case wire id.
type FormatID string

// Wire identifiers of the formats the converter service understands.
const (
	FormatCSV       FormatID = "csv"
	FormatJSON      FormatID = "json"
	FormatXML       FormatID = "xml"
	FormatYAML      FormatID = "yaml"
	FormatTSV       FormatID = "tsv"
	FormatXLSX      FormatID = "xlsx"
	FormatSQLInsert FormatID = "sql-insert"
)

// Direction selects the reading or writing side of a conversion.
type Direction string

const (
	// DirectionInput addresses options applied while reading a source payload.
	DirectionInput Direction = "input"
	// DirectionOutput addresses options applied while writing a target payload.
	DirectionOutput Direction = "output"
)

// Negotiated media types for conversion targets.
const (
	MediaTypeCSV  = "text/csv"
	MediaTypeJSON = "application/json"
	MediaTypeXML  = "application/xml"
	MediaTypeYAML = "application/yaml"
	MediaTypeTSV  = "text/tab-separated-values"
	MediaTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	// MediaTypePlain is the Accept fallback for targets without a negotiated media type.
	MediaTypePlain = "text/plain"
)

// InputFormats returns formats the service reads, in declared order.
func (registry *Registry) InputFormats() []FormatID {
	return slices.Clone(registry.inputFormats)
}

// OutputFormats returns formats the service writes, in declared order.
func (registry *Registry) OutputFormats() []FormatID {
	return slices.Clone(registry.outputFormats)
}

// SinkOnlyFormat returns the single output format that is never a source.
func (registry *Registry) SinkOnlyFormat() FormatID {
	return registry.sinkOnly
}

// Contains reports whether format is registered as input or output.
func (registry *Registry) Contains(format FormatID) bool {
	_, ok := registry.groupKeys[normalizeFormatValue(format)]
	return ok
}

// NormalizeFormatID maps a wire-level format id to its camelCase option-group key.
//
// Lookup is strict: unrecognized ids fail instead of passing through, so
// display and validation paths agree on the supported vocabulary.
func (registry *Registry) NormalizeFormatID(format FormatID) (string, error) {
	groupKey, ok := registry.groupKeys[normalizeFormatValue(format)]
	if !ok {
		return "", fmt.Errorf("%w %q", ErrUnknownFormat, format)
	}

	return groupKey, nil
}

// FormatIDForGroupKey resolves a camelCase option-group key back to its wire id.
func (registry *Registry) FormatIDForGroupKey(groupKey string) (FormatID, error) {
	format, ok := registry.wireIDs[strings.TrimSpace(groupKey)]
	if !ok {
		return "", fmt.Errorf("%w %q", ErrUnknownFormat, groupKey)
	}

	return format, nil
}

// MediaType returns the negotiated media type for format when one is declared.
func (registry *Registry) MediaType(format FormatID) (string, bool) {
	mediaType, ok := registry.mediaTypes[normalizeFormatValue(format)]
	return mediaType, ok
}

// AcceptHeader returns the Accept value for a conversion target.
//
// Targets without a declared media type fall back to plain text.
func (registry *Registry) AcceptHeader(target FormatID) string {
	if mediaType, ok := registry.MediaType(target); ok {
		return mediaType
	}

	return MediaTypePlain
}

// normalizeFormatValue trims and lowercases a wire-level format id.
func normalizeFormatValue(format FormatID) FormatID {
	return FormatID(strings.ToLower(strings.TrimSpace(string(format))))
}

// normalizeDirection validates and normalizes caller direction value.
func normalizeDirection(direction Direction) (Direction, error) {
	normalized := Direction(strings.ToLower(strings.TrimSpace(string(direction))))
	switch normalized {
	case DirectionInput, DirectionOutput:
		return normalized, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownDirection, direction)
	}
}

// formatGroupKey converts a kebab-case wire id into its camelCase option-group key.
func formatGroupKey(format FormatID) string {
	parts := strings.Split(string(format), "-")

	var out strings.Builder
	out.Grow(len(format))

	for _, part := range parts {
		if part == "" {
			continue
		}

		if out.Len() == 0 {
			out.WriteString(part)
			continue
		}

		out.WriteString(strings.ToUpper(part[:1]) + part[1:])
	}

	return out.String()
}
