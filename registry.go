// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Precision Solutions Tech
// Source: github.com/precisionsolutionstech-netizen/api-catalog

package catalog

import (
	"fmt"
	"slices"
	"strings"
)

// OptionKind enumerates the value kinds an option descriptor can declare.
type OptionKind string

const (
	KindBoolean OptionKind = "boolean"
	KindNumber  OptionKind = "number"
	KindString  OptionKind = "string"
	KindEnum    OptionKind = "enum"
)

// OptionDescriptor describes one configurable behavior of reading or writing a format.
type OptionDescriptor struct {
	// Key is the option name, unique within its option set.
	Key string `json:"key"`
	// Kind declares the runtime kind accepted for option values.
	Kind OptionKind `json:"kind"`
	// Default is applied when a caller omits the option.
	Default any `json:"default"`
	// AllowedValues lists permitted values for enum kinds, in display order.
	AllowedValues []string `json:"allowedValues,omitempty"`
	// Required marks options a caller must supply explicitly.
	Required bool `json:"required,omitempty"`
	// Description is free text shown on documentation pages.
	Description string `json:"description"`
}

// OptionSet is the ordered option collection for one format and direction.
type OptionSet struct {
	Format      FormatID
	Direction   Direction
	Descriptors []OptionDescriptor
}

// Descriptor returns the descriptor stored under key.
func (set OptionSet) Descriptor(key string) (OptionDescriptor, bool) {
	for _, descriptor := range set.Descriptors {
		if descriptor.Key == key {
			return descriptor, true
		}
	}

	return OptionDescriptor{}, false
}

// Keys returns descriptor keys in declared order.
func (set OptionSet) Keys() []string {
	out := make([]string, 0, len(set.Descriptors))
	for _, descriptor := range set.Descriptors {
		out = append(out, descriptor.Key)
	}

	return out
}

// Defaults returns a fresh mapping of every descriptor default.
func (set OptionSet) Defaults() map[string]any {
	out := make(map[string]any, len(set.Descriptors))
	for _, descriptor := range set.Descriptors {
		out[descriptor.Key] = descriptor.Default
	}

	return out
}

// clone returns a defensive copy so callers cannot mutate registry state.
func (set OptionSet) clone() OptionSet {
	descriptors := make([]OptionDescriptor, len(set.Descriptors))
	for index, descriptor := range set.Descriptors {
		descriptor.AllowedValues = slices.Clone(descriptor.AllowedValues)
		descriptors[index] = descriptor
	}

	set.Descriptors = descriptors

	return set
}

// RegistryConfig declares the full static configuration of one Registry.
type RegistryConfig struct {
	// InputFormats lists formats the service reads, in declared order.
	InputFormats []FormatID
	// OutputFormats lists formats the service writes, in declared order.
	OutputFormats []FormatID
	// MediaTypes maps target formats to negotiated response media types.
	MediaTypes map[FormatID]string
	// Samples maps every input format to its demonstration payload.
	Samples map[FormatID]any
	// OptionSets declares option descriptors per format and direction.
	OptionSets []OptionSet
}

// Registry owns the canonical definition of formats, options, samples and media types.
//
// A registry is immutable after construction; every accessor returns copies.
type Registry struct {
	inputFormats  []FormatID
	outputFormats []FormatID
	sinkOnly      FormatID
	sets          map[optionSetKey]OptionSet
	samples       map[FormatID]any
	mediaTypes    map[FormatID]string
	groupKeys     map[FormatID]string
	wireIDs       map[string]FormatID
}

// optionSetKey addresses one option set by format and direction.
type optionSetKey struct {
	Format    FormatID
	Direction Direction
}

// NewRegistry validates configuration once and builds an immutable registry.
//
// Construction fails on the first defect found, so a non-nil registry never
// needs consistency checks at lookup time.
func NewRegistry(config RegistryConfig) (*Registry, error) {
	inputFormats, err := normalizeFormatList(config.InputFormats, "input")
	if err != nil {
		return nil, err
	}

	outputFormats, err := normalizeFormatList(config.OutputFormats, "output")
	if err != nil {
		return nil, err
	}

	for _, format := range inputFormats {
		if !slices.Contains(outputFormats, format) {
			return nil, fmt.Errorf("%w: input format %q is not an output format", ErrInvalidRegistry, format)
		}
	}

	sinkOnly := FormatID("")

	for _, format := range outputFormats {
		if slices.Contains(inputFormats, format) {
			continue
		}

		if sinkOnly != "" {
			return nil, fmt.Errorf(
				"%w: more than one sink-only output format (%q, %q)",
				ErrInvalidRegistry, sinkOnly, format,
			)
		}

		sinkOnly = format
	}

	if sinkOnly == "" {
		return nil, fmt.Errorf("%w: no sink-only output format declared", ErrInvalidRegistry)
	}

	registry := &Registry{
		inputFormats:  inputFormats,
		outputFormats: outputFormats,
		sinkOnly:      sinkOnly,
		sets:          make(map[optionSetKey]OptionSet, len(config.OptionSets)),
		samples:       make(map[FormatID]any, len(config.Samples)),
		mediaTypes:    make(map[FormatID]string, len(config.MediaTypes)),
		groupKeys:     make(map[FormatID]string, len(outputFormats)),
		wireIDs:       make(map[string]FormatID, len(outputFormats)),
	}

	for _, format := range outputFormats {
		groupKey := formatGroupKey(format)
		if existing, ok := registry.wireIDs[groupKey]; ok {
			return nil, fmt.Errorf(
				"%w: formats %q and %q share group key %q",
				ErrInvalidRegistry, existing, format, groupKey,
			)
		}

		registry.groupKeys[format] = groupKey
		registry.wireIDs[groupKey] = format
	}

	if err := registry.registerOptionSets(config.OptionSets); err != nil {
		return nil, err
	}

	if err := registry.registerSamples(config.Samples); err != nil {
		return nil, err
	}

	if err := registry.registerMediaTypes(config.MediaTypes); err != nil {
		return nil, err
	}

	return registry, nil
}

// Default returns the shared registry describing the converter service.
func Default() *Registry {
	return defaultRegistry
}

var defaultRegistry = mustDefaultRegistry()

// mustDefaultRegistry builds the built-in registry and treats defects as startup failures.
func mustDefaultRegistry() *Registry {
	registry, err := NewRegistry(DefaultConfig())
	if err != nil {
		panic(fmt.Sprintf("built-in registry: %v", err))
	}

	return registry
}

// OptionSet returns a copy of the option set registered for format and direction.
func (registry *Registry) OptionSet(format FormatID, direction Direction) (OptionSet, error) {
	normalizedDirection, err := normalizeDirection(direction)
	if err != nil {
		return OptionSet{}, err
	}

	set, ok := registry.sets[optionSetKey{
		Format:    normalizeFormatValue(format),
		Direction: normalizedDirection,
	}]
	if !ok {
		return OptionSet{}, fmt.Errorf("%w %q for %s options", ErrUnknownFormat, format, normalizedDirection)
	}

	return set.clone(), nil
}

// normalizeFormatList trims, lowercases and checks a declared format list.
func normalizeFormatList(formats []FormatID, role string) ([]FormatID, error) {
	if len(formats) == 0 {
		return nil, fmt.Errorf("%w: empty %s format list", ErrInvalidRegistry, role)
	}

	out := make([]FormatID, 0, len(formats))

	for _, format := range formats {
		normalized := normalizeFormatValue(format)
		if normalized == "" {
			return nil, fmt.Errorf("%w: empty format id in %s format list", ErrInvalidRegistry, role)
		}

		if slices.Contains(out, normalized) {
			return nil, fmt.Errorf("%w: duplicate %s format %q", ErrInvalidRegistry, role, normalized)
		}

		out = append(out, normalized)
	}

	return out, nil
}

// registerOptionSets validates and indexes every declared option set.
func (registry *Registry) registerOptionSets(sets []OptionSet) error {
	for _, set := range sets {
		format := normalizeFormatValue(set.Format)

		direction, err := normalizeDirection(set.Direction)
		if err != nil {
			return fmt.Errorf("%w: option set for %q: %w", ErrInvalidRegistry, set.Format, err)
		}

		if !registry.registeredFor(format, direction) {
			return fmt.Errorf("%w: option set for unregistered pair %s/%s", ErrInvalidRegistry, format, direction)
		}

		key := optionSetKey{Format: format, Direction: direction}
		if _, ok := registry.sets[key]; ok {
			return fmt.Errorf("%w: duplicate option set %s/%s", ErrInvalidRegistry, format, direction)
		}

		if err := validateDescriptors(format, direction, set.Descriptors); err != nil {
			return err
		}

		set.Format = format
		set.Direction = direction
		registry.sets[key] = set.clone()
	}

	for _, format := range registry.inputFormats {
		if _, ok := registry.sets[optionSetKey{Format: format, Direction: DirectionInput}]; !ok {
			return fmt.Errorf("%w: no input option set for %q", ErrInvalidRegistry, format)
		}
	}

	for _, format := range registry.outputFormats {
		if _, ok := registry.sets[optionSetKey{Format: format, Direction: DirectionOutput}]; !ok {
			return fmt.Errorf("%w: no output option set for %q", ErrInvalidRegistry, format)
		}
	}

	return nil
}

// registeredFor reports whether a format participates in the given direction.
func (registry *Registry) registeredFor(format FormatID, direction Direction) bool {
	if direction == DirectionInput {
		return slices.Contains(registry.inputFormats, format)
	}

	return slices.Contains(registry.outputFormats, format)
}

// validateDescriptors checks key uniqueness and per-descriptor consistency for one set.
func validateDescriptors(format FormatID, direction Direction, descriptors []OptionDescriptor) error {
	if len(descriptors) == 0 {
		return fmt.Errorf("%w: empty option set %s/%s", ErrInvalidRegistry, format, direction)
	}

	seen := make(map[string]struct{}, len(descriptors))

	for _, descriptor := range descriptors {
		if descriptor.Key == "" || strings.TrimSpace(descriptor.Key) != descriptor.Key {
			return fmt.Errorf(
				"%w: option set %s/%s: blank or padded option key %q",
				ErrInvalidRegistry, format, direction, descriptor.Key,
			)
		}

		if _, ok := seen[descriptor.Key]; ok {
			return fmt.Errorf(
				"%w: option set %s/%s: duplicate key %q",
				ErrInvalidRegistry, format, direction, descriptor.Key,
			)
		}

		seen[descriptor.Key] = struct{}{}

		if err := validateDescriptor(format, direction, descriptor); err != nil {
			return err
		}
	}

	return nil
}

// validateDescriptor checks one descriptor's kind, default and enum consistency.
func validateDescriptor(format FormatID, direction Direction, descriptor OptionDescriptor) error {
	switch descriptor.Kind {
	case KindBoolean, KindNumber, KindString:
		if len(descriptor.AllowedValues) > 0 {
			return fmt.Errorf(
				"%w: option %s/%s/%s: allowed values declared for %s kind",
				ErrInvalidRegistry, format, direction, descriptor.Key, descriptor.Kind,
			)
		}
	case KindEnum:
		if len(descriptor.AllowedValues) == 0 {
			return fmt.Errorf(
				"%w: option %s/%s/%s: enum kind without allowed values",
				ErrInvalidRegistry, format, direction, descriptor.Key,
			)
		}
	default:
		return fmt.Errorf(
			"%w: option %s/%s/%s: unknown kind %q",
			ErrInvalidRegistry, format, direction, descriptor.Key, descriptor.Kind,
		)
	}

	if descriptor.Default == nil {
		return fmt.Errorf(
			"%w: option %s/%s/%s: missing default value",
			ErrInvalidRegistry, format, direction, descriptor.Key,
		)
	}

	if descriptor.Kind == KindEnum {
		text, ok := descriptor.Default.(string)
		if !ok || !slices.Contains(descriptor.AllowedValues, text) {
			return fmt.Errorf(
				"%w: option %s/%s/%s: default %v is not an allowed value",
				ErrInvalidRegistry, format, direction, descriptor.Key, descriptor.Default,
			)
		}

		return nil
	}

	if !matchesKind(descriptor.Kind, descriptor.Default) {
		return fmt.Errorf(
			"%w: option %s/%s/%s: default %v does not match kind %s",
			ErrInvalidRegistry, format, direction, descriptor.Key, descriptor.Default, descriptor.Kind,
		)
	}

	return nil
}

// registerSamples checks sample coverage for every input format.
func (registry *Registry) registerSamples(samples map[FormatID]any) error {
	for format, sample := range samples {
		normalized := normalizeFormatValue(format)
		if !slices.Contains(registry.inputFormats, normalized) {
			return fmt.Errorf("%w: sample declared for non-input format %q", ErrInvalidRegistry, format)
		}

		if sample == nil {
			return fmt.Errorf("%w: nil sample for input format %q", ErrInvalidRegistry, format)
		}

		registry.samples[normalized] = sample
	}

	for _, format := range registry.inputFormats {
		if _, ok := registry.samples[format]; !ok {
			return fmt.Errorf("%w: no sample payload for input format %q", ErrInvalidRegistry, format)
		}
	}

	return nil
}

// registerMediaTypes checks that media types reference registered output formats.
func (registry *Registry) registerMediaTypes(mediaTypes map[FormatID]string) error {
	for format, mediaType := range mediaTypes {
		normalized := normalizeFormatValue(format)
		if !slices.Contains(registry.outputFormats, normalized) {
			return fmt.Errorf("%w: media type declared for unregistered format %q", ErrInvalidRegistry, format)
		}

		if strings.TrimSpace(mediaType) == "" {
			return fmt.Errorf("%w: empty media type for format %q", ErrInvalidRegistry, format)
		}

		registry.mediaTypes[normalized] = mediaType
	}

	return nil
}
