// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Precision Solutions Tech
// Source: github.com/precisionsolutionstech-netizen/api-catalog

package catalog

// DefaultConfig returns the declarative configuration of the converter service registry.
//
// The sql-insert format is the single sink-only member: the service renders
// INSERT statements but never parses them back.
func DefaultConfig() RegistryConfig {
	return RegistryConfig{
		InputFormats: []FormatID{
			FormatCSV,
			FormatJSON,
			FormatXML,
			FormatYAML,
			FormatTSV,
			FormatXLSX,
		},
		OutputFormats: []FormatID{
			FormatCSV,
			FormatJSON,
			FormatXML,
			FormatYAML,
			FormatTSV,
			FormatXLSX,
			FormatSQLInsert,
		},
		MediaTypes: map[FormatID]string{
			FormatCSV:  MediaTypeCSV,
			FormatJSON: MediaTypeJSON,
			FormatXML:  MediaTypeXML,
			FormatYAML: MediaTypeYAML,
			FormatTSV:  MediaTypeTSV,
			FormatXLSX: MediaTypeXLSX,
		},
		Samples:    defaultSamples(),
		OptionSets: defaultOptionSets(),
	}
}

// defaultOptionSets declares every option descriptor shown on documentation pages.
func defaultOptionSets() []OptionSet {
	return []OptionSet{
		{Format: FormatCSV, Direction: DirectionInput, Descriptors: []OptionDescriptor{
			{
				Key:         "delimiter",
				Kind:        KindString,
				Default:     ",",
				Description: "Field delimiter between values in one record.",
			},
			{
				Key:         "hasHeader",
				Kind:        KindBoolean,
				Default:     true,
				Description: "Treat the first row as a header row with column names.",
			},
			{
				Key:         "trimFields",
				Kind:        KindBoolean,
				Default:     false,
				Description: "Strip surrounding whitespace from every field value before type detection.",
			},
		}},
		{Format: FormatCSV, Direction: DirectionOutput, Descriptors: []OptionDescriptor{
			{
				Key:         "delimiter",
				Kind:        KindString,
				Default:     ",",
				Description: "Field delimiter between values in one record.",
			},
			{
				Key:         "includeHeader",
				Kind:        KindBoolean,
				Default:     true,
				Description: "Write a header row with column names before the data rows.",
			},
			{
				Key:           "lineEnding",
				Kind:          KindEnum,
				Default:       "lf",
				AllowedValues: []string{"lf", "crlf"},
				Description:   "Line ending sequence terminating each record.",
			},
		}},
		{Format: FormatJSON, Direction: DirectionInput, Descriptors: []OptionDescriptor{
			{
				Key:         "rootPath",
				Kind:        KindString,
				Default:     "",
				Description: "Dot-separated path to the record array inside the document, empty for the document root.",
			},
		}},
		{Format: FormatJSON, Direction: DirectionOutput, Descriptors: []OptionDescriptor{
			{
				Key:         "pretty",
				Kind:        KindBoolean,
				Default:     true,
				Description: "Indent the output document instead of writing compact JSON.",
			},
			{
				Key:         "indent",
				Kind:        KindNumber,
				Default:     2,
				Description: "Number of spaces per indentation level when pretty printing.",
			},
		}},
		{Format: FormatXML, Direction: DirectionInput, Descriptors: []OptionDescriptor{
			{
				Key:         "recordElement",
				Kind:        KindString,
				Default:     "record",
				Description: "Element name treated as one record of the document.",
			},
			{
				Key:         "ignoreAttributes",
				Kind:        KindBoolean,
				Default:     false,
				Description: "Drop element attributes instead of mapping them to record fields.",
			},
		}},
		{Format: FormatXML, Direction: DirectionOutput, Descriptors: []OptionDescriptor{
			{
				Key:         "rootElement",
				Kind:        KindString,
				Default:     "records",
				Description: "Name of the document root element wrapping all records.",
			},
			{
				Key:         "recordElement",
				Kind:        KindString,
				Default:     "record",
				Description: "Element name written for each record.",
			},
			{
				Key:         "declaration",
				Kind:        KindBoolean,
				Default:     true,
				Description: "Write the XML declaration line before the document root.",
			},
		}},
		{Format: FormatYAML, Direction: DirectionInput, Descriptors: []OptionDescriptor{
			{
				Key:         "rootPath",
				Kind:        KindString,
				Default:     "",
				Description: "Dot-separated path to the record sequence inside the document, empty for the document root.",
			},
		}},
		{Format: FormatYAML, Direction: DirectionOutput, Descriptors: []OptionDescriptor{
			{
				Key:         "indent",
				Kind:        KindNumber,
				Default:     2,
				Description: "Number of spaces per indentation level.",
			},
		}},
		{Format: FormatTSV, Direction: DirectionInput, Descriptors: []OptionDescriptor{
			{
				Key:         "hasHeader",
				Kind:        KindBoolean,
				Default:     true,
				Description: "Treat the first row as a header row with column names.",
			},
			{
				Key:         "trimFields",
				Kind:        KindBoolean,
				Default:     false,
				Description: "Strip surrounding whitespace from every field value before type detection.",
			},
		}},
		{Format: FormatTSV, Direction: DirectionOutput, Descriptors: []OptionDescriptor{
			{
				Key:         "includeHeader",
				Kind:        KindBoolean,
				Default:     true,
				Description: "Write a header row with column names before the data rows.",
			},
		}},
		{Format: FormatXLSX, Direction: DirectionInput, Descriptors: []OptionDescriptor{
			{
				Key:         "sheetName",
				Kind:        KindString,
				Default:     "Sheet1",
				Description: "Name of the worksheet read from the workbook.",
			},
			{
				Key:         "hasHeader",
				Kind:        KindBoolean,
				Default:     true,
				Description: "Treat the first worksheet row as a header row with column names.",
			},
		}},
		{Format: FormatXLSX, Direction: DirectionOutput, Descriptors: []OptionDescriptor{
			{
				Key:         "sheetName",
				Kind:        KindString,
				Default:     "Sheet1",
				Description: "Name of the worksheet written into the workbook.",
			},
			{
				Key:         "includeHeader",
				Kind:        KindBoolean,
				Default:     true,
				Description: "Write a header row with column names before the data rows.",
			},
		}},
		{Format: FormatSQLInsert, Direction: DirectionOutput, Descriptors: []OptionDescriptor{
			{
				Key:         "tableName",
				Kind:        KindString,
				Default:     "users",
				Required:    true,
				Description: "Name of the table targeted by the generated INSERT statements.",
			},
			{
				Key:           "dialect",
				Kind:          KindEnum,
				Default:       "postgres",
				AllowedValues: []string{"postgres", "mysql", "sqlite", "mssql"},
				Description:   "SQL dialect controlling identifier quoting and literal syntax.",
			},
			{
				Key:         "batchSize",
				Kind:        KindNumber,
				Default:     1,
				Description: "Number of rows combined into one multi-row INSERT statement.",
			},
		}},
	}
}
