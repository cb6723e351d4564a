// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 Precision Solutions Tech
// Source: github.com/precisionsolutionstech-netizen/api-catalog

package catalog

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

func TestValidateOptionsFillsAllDefaults(t *testing.T) {
	t.Parallel()

	registry := Default()
	result, err := registry.ValidateOptions(FormatCSV, DirectionOutput, nil)
	if err != nil {
		t.Fatalf("ValidateOptions: %v", err)
	}

	if !result.Valid() {
		t.Fatalf("unexpected violations: %+v", result.Violations)
	}

	set, err := registry.OptionSet(FormatCSV, DirectionOutput)
	if err != nil {
		t.Fatalf("OptionSet: %v", err)
	}

	if !reflect.DeepEqual(result.Options, set.Defaults()) {
		t.Fatalf("options = %v, want %v", result.Options, set.Defaults())
	}
}

func TestValidateOptionsMissingRequired(t *testing.T) {
	t.Parallel()

	result, err := Default().ValidateOptions(FormatSQLInsert, DirectionOutput, map[string]any{})
	if err != nil {
		t.Fatalf("ValidateOptions: %v", err)
	}

	if len(result.Violations) != 1 {
		t.Fatalf("violations = %+v, want exactly one", result.Violations)
	}

	violation := result.Violations[0]
	if violation.Code != ViolationMissingRequiredOption || violation.Key != "tableName" {
		t.Fatalf("unexpected violation: %+v", violation)
	}

	assertContains(t, violation.Message, `required option "tableName" is missing`)

	want := map[string]any{"tableName": "users", "dialect": "postgres", "batchSize": 1}
	if !reflect.DeepEqual(result.Options, want) {
		t.Fatalf("options = %v, want %v", result.Options, want)
	}
}

func TestValidateOptionsInvalidEnumValue(t *testing.T) {
	t.Parallel()

	result, err := Default().ValidateOptions(FormatSQLInsert, DirectionOutput, map[string]any{
		"tableName": "orders",
		"dialect":   "oracle",
	})
	if err != nil {
		t.Fatalf("ValidateOptions: %v", err)
	}

	if len(result.Violations) != 1 {
		t.Fatalf("violations = %+v, want exactly one", result.Violations)
	}

	violation := result.Violations[0]
	if violation.Code != ViolationInvalidEnumValue || violation.Key != "dialect" {
		t.Fatalf("unexpected violation: %+v", violation)
	}

	assertContains(t, violation.Message, `option "dialect" value "oracle" is not one of: postgres, mysql, sqlite, mssql`)

	want := map[string]any{"tableName": "orders", "dialect": "postgres", "batchSize": 1}
	if !reflect.DeepEqual(result.Options, want) {
		t.Fatalf("options = %v, want %v", result.Options, want)
	}
}

func TestValidateOptionsRevalidationIsClean(t *testing.T) {
	t.Parallel()

	registry := Default()
	first, err := registry.ValidateOptions(FormatSQLInsert, DirectionOutput, map[string]any{
		"dialect": "oracle",
	})
	if err != nil {
		t.Fatalf("ValidateOptions: %v", err)
	}

	if first.Valid() {
		t.Fatal("expected violations on first pass")
	}

	second, err := registry.ValidateOptions(FormatSQLInsert, DirectionOutput, first.Options)
	if err != nil {
		t.Fatalf("ValidateOptions: %v", err)
	}

	if !second.Valid() {
		t.Fatalf("revalidation violations: %+v", second.Violations)
	}

	if !reflect.DeepEqual(second.Options, first.Options) {
		t.Fatalf("revalidation changed options: %v != %v", second.Options, first.Options)
	}
}

func TestValidateOptionsUnknownOption(t *testing.T) {
	t.Parallel()

	result, err := Default().ValidateOptions(FormatCSV, DirectionOutput, map[string]any{
		"compress": true,
	})
	if err != nil {
		t.Fatalf("ValidateOptions: %v", err)
	}

	if len(result.Violations) != 1 {
		t.Fatalf("violations = %+v, want exactly one", result.Violations)
	}

	violation := result.Violations[0]
	if violation.Code != ViolationUnknownOption || violation.Key != "compress" {
		t.Fatalf("unexpected violation: %+v", violation)
	}

	assertContains(t, violation.Message, `unknown option "compress"`)

	if _, leaked := result.Options["compress"]; leaked {
		t.Fatalf("unknown option leaked into mapping: %v", result.Options)
	}

	if len(result.Options) != 3 {
		t.Fatalf("options = %v, want the three csv output defaults", result.Options)
	}
}

func TestValidateOptionsTypeMismatch(t *testing.T) {
	t.Parallel()

	result, err := Default().ValidateOptions(FormatCSV, DirectionOutput, map[string]any{
		"includeHeader": "yes",
	})
	if err != nil {
		t.Fatalf("ValidateOptions: %v", err)
	}

	if len(result.Violations) != 1 {
		t.Fatalf("violations = %+v, want exactly one", result.Violations)
	}

	violation := result.Violations[0]
	if violation.Code != ViolationTypeMismatch || violation.Key != "includeHeader" {
		t.Fatalf("unexpected violation: %+v", violation)
	}

	assertContains(t, violation.Message, `option "includeHeader" expects boolean value, got string`)

	if result.Options["includeHeader"] != true {
		t.Fatalf("rejected value should fall back to default: %v", result.Options)
	}
}

func TestValidateOptionsEnumRejectsNonString(t *testing.T) {
	t.Parallel()

	result, err := Default().ValidateOptions(FormatSQLInsert, DirectionOutput, map[string]any{
		"tableName": "orders",
		"dialect":   5,
	})
	if err != nil {
		t.Fatalf("ValidateOptions: %v", err)
	}

	if len(result.Violations) != 1 {
		t.Fatalf("violations = %+v, want exactly one", result.Violations)
	}

	violation := result.Violations[0]
	if violation.Code != ViolationTypeMismatch || violation.Key != "dialect" {
		t.Fatalf("unexpected violation: %+v", violation)
	}

	assertContains(t, violation.Message, `option "dialect" expects string value, got number`)
}

func TestValidateOptionsAcceptsJSONNumbers(t *testing.T) {
	t.Parallel()

	result, err := Default().ValidateOptions(FormatJSON, DirectionOutput, map[string]any{
		"indent": json.Number("4"),
	})
	if err != nil {
		t.Fatalf("ValidateOptions: %v", err)
	}

	if !result.Valid() {
		t.Fatalf("unexpected violations: %+v", result.Violations)
	}

	if result.Options["indent"] != json.Number("4") {
		t.Fatalf("indent = %v, want json.Number 4", result.Options["indent"])
	}
}

func TestValidateOptionsKeepsSuppliedValues(t *testing.T) {
	t.Parallel()

	result, err := Default().ValidateOptions(FormatCSV, DirectionOutput, map[string]any{
		"delimiter": ";",
	})
	if err != nil {
		t.Fatalf("ValidateOptions: %v", err)
	}

	if !result.Valid() {
		t.Fatalf("unexpected violations: %+v", result.Violations)
	}

	want := map[string]any{"delimiter": ";", "includeHeader": true, "lineEnding": "lf"}
	if !reflect.DeepEqual(result.Options, want) {
		t.Fatalf("options = %v, want %v", result.Options, want)
	}
}

func TestValidateOptionsViolationOrder(t *testing.T) {
	t.Parallel()

	result, err := Default().ValidateOptions(FormatSQLInsert, DirectionOutput, map[string]any{
		"dialect": "oracle",
		"zzz":     1,
		"aaa":     2,
	})
	if err != nil {
		t.Fatalf("ValidateOptions: %v", err)
	}

	codes := make([]ViolationCode, 0, len(result.Violations))
	keys := make([]string, 0, len(result.Violations))
	for _, violation := range result.Violations {
		codes = append(codes, violation.Code)
		keys = append(keys, violation.Key)
	}

	wantCodes := []ViolationCode{
		ViolationMissingRequiredOption,
		ViolationInvalidEnumValue,
		ViolationUnknownOption,
		ViolationUnknownOption,
	}
	if !reflect.DeepEqual(codes, wantCodes) {
		t.Fatalf("violation codes = %v, want %v", codes, wantCodes)
	}

	wantKeys := []string{"tableName", "dialect", "aaa", "zzz"}
	if !reflect.DeepEqual(keys, wantKeys) {
		t.Fatalf("violation keys = %v, want %v", keys, wantKeys)
	}
}

func TestValidateOptionsUnknownFormatAndDirection(t *testing.T) {
	t.Parallel()

	registry := Default()

	if _, err := registry.ValidateOptions("parquet", DirectionOutput, nil); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("unknown format: expected ErrUnknownFormat, got %v", err)
	}

	if _, err := registry.ValidateOptions(FormatSQLInsert, DirectionInput, nil); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("sink input: expected ErrUnknownFormat, got %v", err)
	}

	if _, err := registry.ValidateOptions(FormatCSV, "sideways", nil); !errors.Is(err, ErrUnknownDirection) {
		t.Fatalf("bad direction: expected ErrUnknownDirection, got %v", err)
	}
}

func TestValidationResultErr(t *testing.T) {
	t.Parallel()

	registry := Default()

	valid, err := registry.ValidateOptions(FormatCSV, DirectionOutput, nil)
	if err != nil {
		t.Fatalf("ValidateOptions: %v", err)
	}

	if valid.Err() != nil {
		t.Fatalf("valid result should have nil Err, got %v", valid.Err())
	}

	invalid, err := registry.ValidateOptions(FormatSQLInsert, DirectionOutput, map[string]any{})
	if err != nil {
		t.Fatalf("ValidateOptions: %v", err)
	}

	aggregate := invalid.Err()
	if aggregate == nil {
		t.Fatal("invalid result should have non-nil Err")
	}

	if !errors.Is(aggregate, ErrInvalidOptions) {
		t.Fatalf("expected ErrInvalidOptions, got %v", aggregate)
	}

	assertContains(t, aggregate.Error(), "invalid options for sql-insert output")
	assertContains(t, aggregate.Error(), `required option "tableName" is missing`)

	var validationErr *ValidationError
	if !errors.As(aggregate, &validationErr) {
		t.Fatalf("expected *ValidationError, got %T", aggregate)
	}

	if len(validationErr.Violations) != 1 {
		t.Fatalf("aggregate violations = %+v, want exactly one", validationErr.Violations)
	}
}
