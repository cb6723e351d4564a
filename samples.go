// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Precision Solutions Tech
// Source: github.com/precisionsolutionstech-netizen/api-catalog

package catalog

import "fmt"

// XLSXPayloadPlaceholder marks where callers substitute base64-encoded workbook bytes.
//
// Spreadsheet content cannot be inlined as readable text, so generated
// artifacts carry this marker instead of a real workbook.
const XLSXPayloadPlaceholder = "BASE64_ENCODED_XLSX_CONTENT"

// canonicalRecord returns the primary demo row shared by every format sample.
func canonicalRecord() map[string]any {
	return map[string]any{
		"id":     1,
		"name":   "Alice Johnson",
		"email":  "alice@example.com",
		"active": true,
	}
}

// variantRecord returns the second demo row used to demonstrate batch conversion.
func variantRecord() map[string]any {
	return map[string]any{
		"id":     2,
		"name":   "Bob Smith",
		"email":  "bob@example.com",
		"active": false,
	}
}

// defaultSamples returns the demonstration payload for every input format.
//
// Text formats carry both demo rows pre-rendered; the JSON sample stays
// structured so the request matrix can reshape it into a batch.
func defaultSamples() map[FormatID]any {
	return map[FormatID]any{
		FormatCSV: "id,name,email,active\n" +
			"1,Alice Johnson,alice@example.com,true\n" +
			"2,Bob Smith,bob@example.com,false",
		FormatJSON: canonicalRecord(),
		FormatXML: "<records>\n" +
			"  <record>\n" +
			"    <id>1</id>\n" +
			"    <name>Alice Johnson</name>\n" +
			"    <email>alice@example.com</email>\n" +
			"    <active>true</active>\n" +
			"  </record>\n" +
			"  <record>\n" +
			"    <id>2</id>\n" +
			"    <name>Bob Smith</name>\n" +
			"    <email>bob@example.com</email>\n" +
			"    <active>false</active>\n" +
			"  </record>\n" +
			"</records>",
		FormatYAML: "- id: 1\n" +
			"  name: Alice Johnson\n" +
			"  email: alice@example.com\n" +
			"  active: true\n" +
			"- id: 2\n" +
			"  name: Bob Smith\n" +
			"  email: bob@example.com\n" +
			"  active: false",
		FormatTSV: "id\tname\temail\tactive\n" +
			"1\tAlice Johnson\talice@example.com\ttrue\n" +
			"2\tBob Smith\tbob@example.com\tfalse",
		FormatXLSX: XLSXPayloadPlaceholder,
	}
}

// SamplePayload returns a copy of the demonstration payload for an input format.
func (registry *Registry) SamplePayload(format FormatID) (any, error) {
	sample, ok := registry.samples[normalizeFormatValue(format)]
	if !ok {
		return nil, fmt.Errorf("%w %q for sample payload", ErrUnknownFormat, format)
	}

	return cloneJSONValue(sample), nil
}

// cloneJSONValue deep-copies maps and slices so callers cannot mutate shared payloads.
func cloneJSONValue(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(typed))
		for key, item := range typed {
			out[key] = cloneJSONValue(item)
		}

		return out
	case []any:
		out := make([]any, len(typed))
		for index, item := range typed {
			out[index] = cloneJSONValue(item)
		}

		return out
	default:
		return typed
	}
}
