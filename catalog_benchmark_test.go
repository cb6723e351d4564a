// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 Precision Solutions Tech
// Source: github.com/precisionsolutionstech-netizen/api-catalog

package catalog

import "testing"

// BenchmarkBuildRequestMatrix measures matrix assembly and payload copying cost.
func BenchmarkBuildRequestMatrix(b *testing.B) {
	registry := Default()

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		matrix := registry.BuildRequestMatrix()
		if matrix.Len() == 0 {
			b.Fatal("empty matrix")
		}
	}
}

// BenchmarkValidateOptions measures option checking and defaulting cost.
func BenchmarkValidateOptions(b *testing.B) {
	registry := Default()
	userOptions := map[string]any{"tableName": "orders", "dialect": "oracle"}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		result, err := registry.ValidateOptions(FormatSQLInsert, DirectionOutput, userOptions)
		if err != nil {
			b.Fatalf("ValidateOptions: %v", err)
		}

		if result.Valid() {
			b.Fatal("expected violations")
		}
	}
}

// BenchmarkEncodePostmanCollection measures full collection build and encode flow.
func BenchmarkEncodePostmanCollection(b *testing.B) {
	matrix := Default().BuildRequestMatrix()

	collection, err := BuildPostmanCollection(matrix, CollectionOptions{})
	if err != nil {
		b.Fatalf("BuildPostmanCollection: %v", err)
	}

	data, err := EncodeCollectionJSON(collection)
	if err != nil {
		b.Fatalf("EncodeCollectionJSON: %v", err)
	}

	b.ReportAllocs()
	b.SetBytes(int64(len(data)))

	for i := 0; i < b.N; i++ {
		if _, err := EncodeCollectionJSON(collection); err != nil {
			b.Fatalf("EncodeCollectionJSON: %v", err)
		}
	}
}

// BenchmarkRenderOptionsDoc measures full in-memory render flow for the option reference.
func BenchmarkRenderOptionsDoc(b *testing.B) {
	benchmarkRenderDoc(b, RenderOptionsDoc)
}

// BenchmarkRenderMatrixDoc measures full in-memory render flow for the matrix document.
func BenchmarkRenderMatrixDoc(b *testing.B) {
	benchmarkRenderDoc(b, RenderMatrixDoc)
}

// benchmarkRenderDoc runs common render benchmark for one document renderer.
func benchmarkRenderDoc(b *testing.B, render func(*Registry, Options) (string, error)) {
	b.Helper()

	registry := Default()

	rendered, err := render(registry, Options{})
	if err != nil {
		b.Fatalf("render: %v", err)
	}

	b.ReportAllocs()
	b.SetBytes(int64(len(rendered)))

	for i := 0; i < b.N; i++ {
		if _, err := render(registry, Options{}); err != nil {
			b.Fatalf("render: %v", err)
		}
	}
}
