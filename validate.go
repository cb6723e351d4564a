// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Precision Solutions Tech
// Source: github.com/precisionsolutionstech-netizen/api-catalog

package catalog

import (
	"encoding/json"
	"fmt"
	"slices"
	"sort"
	"strings"
)

// ViolationCode classifies one option validation problem.
type ViolationCode string

const (
	// ViolationUnknownOption marks a supplied key absent from the option set.
	ViolationUnknownOption ViolationCode = "unknown-option"
	// ViolationTypeMismatch marks a supplied value whose kind differs from the descriptor kind.
	ViolationTypeMismatch ViolationCode = "type-mismatch"
	// ViolationInvalidEnumValue marks an enum value outside the allowed set.
	ViolationInvalidEnumValue ViolationCode = "invalid-enum-value"
	// ViolationMissingRequiredOption marks a required descriptor the caller did not supply.
	ViolationMissingRequiredOption ViolationCode = "missing-required-option"
)

// Violation describes one option validation problem as data.
type Violation struct {
	Code    ViolationCode `json:"code"`
	Key     string        `json:"key"`
	Message string        `json:"message"`
}

// ValidationResult carries the fully defaulted option mapping and every recorded violation.
type ValidationResult struct {
	Format    FormatID
	Direction Direction
	// Options maps every descriptor key to an accepted or default value.
	Options map[string]any
	// Violations lists every problem found, in deterministic order.
	Violations []Violation
}

// Valid reports whether validation recorded no violations.
func (result ValidationResult) Valid() bool {
	return len(result.Violations) == 0
}

// Err returns an aggregate validation error, or nil when the result is valid.
func (result ValidationResult) Err() error {
	if result.Valid() {
		return nil
	}

	return &ValidationError{
		Format:     result.Format,
		Direction:  result.Direction,
		Violations: slices.Clone(result.Violations),
	}
}

// ValidationError aggregates every violation recorded for one validate call.
type ValidationError struct {
	Format     FormatID
	Direction  Direction
	Violations []Violation
}

// Error joins all violation messages into one line.
func (err *ValidationError) Error() string {
	messages := make([]string, 0, len(err.Violations))
	for _, violation := range err.Violations {
		messages = append(messages, violation.Message)
	}

	return fmt.Sprintf("%s for %s %s: %s", ErrInvalidOptions, err.Format, err.Direction, strings.Join(messages, "; "))
}

// Unwrap exposes the ErrInvalidOptions sentinel for errors.Is matching.
func (err *ValidationError) Unwrap() error {
	return ErrInvalidOptions
}

// ValidateOptions checks user options against the registered option set and fills defaults.
//
// Unknown formats and directions fail hard. Every other problem is recorded
// as a violation while the returned mapping falls back to descriptor
// defaults, so callers always get a usable option set plus the complete
// violation list. Feeding the returned mapping back in yields no violations.
func (registry *Registry) ValidateOptions(
	format FormatID,
	direction Direction,
	userOptions map[string]any,
) (ValidationResult, error) {
	set, err := registry.OptionSet(format, direction)
	if err != nil {
		return ValidationResult{}, err
	}

	result := ValidationResult{
		Format:    set.Format,
		Direction: set.Direction,
		Options:   make(map[string]any, len(set.Descriptors)),
	}

	for _, descriptor := range set.Descriptors {
		value, supplied := userOptions[descriptor.Key]
		if !supplied {
			result.Options[descriptor.Key] = descriptor.Default
			if descriptor.Required {
				result.Violations = append(result.Violations, missingRequiredViolation(descriptor))
			}

			continue
		}

		if violation, bad := descriptorViolation(descriptor, value); bad {
			result.Violations = append(result.Violations, violation)
			result.Options[descriptor.Key] = descriptor.Default

			continue
		}

		result.Options[descriptor.Key] = value
	}

	for _, key := range sortedOptionKeys(userOptions) {
		if _, known := set.Descriptor(key); known {
			continue
		}

		result.Violations = append(result.Violations, unknownOptionViolation(key))
	}

	return result, nil
}

// descriptorViolation checks one supplied value against its descriptor.
func descriptorViolation(descriptor OptionDescriptor, value any) (Violation, bool) {
	if descriptor.Kind == KindEnum {
		text, ok := value.(string)
		if !ok {
			return typeMismatchViolation(descriptor, value), true
		}

		if !slices.Contains(descriptor.AllowedValues, text) {
			return Violation{
				Code: ViolationInvalidEnumValue,
				Key:  descriptor.Key,
				Message: fmt.Sprintf(
					"option %q value %q is not one of: %s",
					descriptor.Key, text, strings.Join(descriptor.AllowedValues, ", "),
				),
			}, true
		}

		return Violation{}, false
	}

	if !matchesKind(descriptor.Kind, value) {
		return typeMismatchViolation(descriptor, value), true
	}

	return Violation{}, false
}

// typeMismatchViolation builds the violation for a wrong-kind value.
func typeMismatchViolation(descriptor OptionDescriptor, value any) Violation {
	expected := string(descriptor.Kind)
	if descriptor.Kind == KindEnum {
		expected = string(KindString)
	}

	return Violation{
		Code: ViolationTypeMismatch,
		Key:  descriptor.Key,
		Message: fmt.Sprintf(
			"option %q expects %s value, got %s",
			descriptor.Key, expected, valueKindName(value),
		),
	}
}

// missingRequiredViolation builds the violation for an absent required option.
func missingRequiredViolation(descriptor OptionDescriptor) Violation {
	return Violation{
		Code:    ViolationMissingRequiredOption,
		Key:     descriptor.Key,
		Message: fmt.Sprintf("required option %q is missing", descriptor.Key),
	}
}

// unknownOptionViolation builds the violation for a key outside the option set.
func unknownOptionViolation(key string) Violation {
	return Violation{
		Code:    ViolationUnknownOption,
		Key:     key,
		Message: fmt.Sprintf("unknown option %q", key),
	}
}

// matchesKind reports whether a runtime value satisfies the descriptor kind.
func matchesKind(kind OptionKind, value any) bool {
	switch kind {
	case KindBoolean:
		_, ok := value.(bool)
		return ok
	case KindNumber:
		return isNumericValue(value)
	case KindString, KindEnum:
		_, ok := value.(string)
		return ok
	default:
		return false
	}
}

// isNumericValue reports whether value carries any supported numeric representation.
func isNumericValue(value any) bool {
	switch value.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64, json.Number:
		return true
	default:
		return false
	}
}

// valueKindName names the runtime kind of a user-supplied value for violation messages.
func valueKindName(value any) string {
	switch value.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case string:
		return "string"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	default:
		if isNumericValue(value) {
			return "number"
		}

		return fmt.Sprintf("%T", value)
	}
}

// sortedOptionKeys returns map keys sorted for deterministic violation order.
func sortedOptionKeys(options map[string]any) []string {
	out := make([]string, 0, len(options))
	for key := range options {
		out = append(out, key)
	}

	sort.Strings(out)

	return out
}
