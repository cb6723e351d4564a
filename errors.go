// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Precision Solutions Tech
// Source: github.com/precisionsolutionstech-netizen/api-catalog

package catalog

import "errors"

var (
	// ErrUnknownFormat is returned when a format id has no registration for the requested use.
	ErrUnknownFormat = errors.New("unknown format")
	// ErrUnknownDirection is returned when a direction is neither input nor output.
	ErrUnknownDirection = errors.New("unknown direction")
	// ErrInvalidRegistry is returned when registry configuration fails construction-time validation.
	ErrInvalidRegistry = errors.New("invalid registry configuration")
	// ErrInvalidOptions is returned when option validation records at least one violation.
	ErrInvalidOptions = errors.New("invalid options")
	// ErrExecuteMarkdownTemplate is returned when markdown template execution fails.
	ErrExecuteMarkdownTemplate = errors.New("execute markdown template")
	// ErrUnknownBuiltinTemplate is returned when requested built-in template name is not registered.
	ErrUnknownBuiltinTemplate = errors.New("unknown built-in template")
	// ErrReadBuiltinTemplate is returned when built-in template file loading fails.
	ErrReadBuiltinTemplate = errors.New("read built-in template")
	// ErrParseBuiltinTemplate is returned when built-in template parsing fails.
	ErrParseBuiltinTemplate = errors.New("parse built-in template")
	// ErrEncodeRequestBody is returned when conversion request envelope encoding fails.
	ErrEncodeRequestBody = errors.New("encode request body")
	// ErrEncodeCollection is returned when Postman collection JSON encoding fails.
	ErrEncodeCollection = errors.New("encode collection json")
	// ErrEncodeRegistryYAML is returned when registry YAML export encoding fails.
	ErrEncodeRegistryYAML = errors.New("encode registry yaml")
	// ErrEncodeRegistryJSON is returned when registry JSON export encoding fails.
	ErrEncodeRegistryJSON = errors.New("encode registry json")
)
