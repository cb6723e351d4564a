// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Precision Solutions Tech
// Source: github.com/precisionsolutionstech-netizen/api-catalog

/*
Package catalog describes the request surface of a data format conversion
service: the formats it reads and writes, the options each format accepts in
each direction, and the complete example request matrix covering every source
and target pair.

The package focuses on deterministic generated artifacts. The same registry
always yields the same markdown pages, the same Postman collection bytes and
the same validation outcomes.

Look up option sets from the built-in registry:

	registry := catalog.Default()

	set, err := registry.OptionSet(catalog.FormatCSV, catalog.DirectionOutput)
	if err != nil {
		return err
	}

	for _, descriptor := range set.Descriptors {
		fmt.Println(descriptor.Key, descriptor.Kind)
	}

Validate user-supplied conversion options:

	result, err := registry.ValidateOptions(catalog.FormatSQLInsert, catalog.DirectionOutput, map[string]any{
		"tableName": "orders",
		"dialect":   "mysql",
	})
	if err != nil {
		return err
	}

	if !result.Valid() {
		return result.Err()
	}

	fmt.Println(result.Options)

Build the request matrix and the Postman collection artifact:

	matrix := registry.BuildRequestMatrix()
	fmt.Println(matrix.Len())

	collection, err := catalog.BuildPostmanCollection(matrix, catalog.CollectionOptions{
		Name: "Data Format Converter API",
	})
	if err != nil {
		return err
	}

	data, err := catalog.EncodeCollectionJSON(collection)
	if err != nil {
		return err
	}

	fmt.Println(len(data) > 0)

Render markdown documentation pages:

	markdown, err := catalog.RenderOptionsDoc(registry, catalog.Options{
		Title:     "Format option reference",
		WrapWidth: 100,
	})
	if err != nil {
		return err
	}

	fmt.Println(markdown)

Use built-in templates:

	names := catalog.BuiltinTemplateNames()
	fmt.Println(strings.Join(names, ", "))

	tpl, err := catalog.BuiltinTemplate("matrix")
	if err != nil {
		return err
	}

	fmt.Println(len(tpl) > 0)
*/
package catalog
