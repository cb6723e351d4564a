// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 Precision Solutions Tech
// Source: github.com/precisionsolutionstech-netizen/api-catalog

package catalog

import (
	"errors"
	"regexp"
	"strings"
	"testing"
)

func TestRenderOptionsDocHeadings(t *testing.T) {
	t.Parallel()

	rendered, err := RenderOptionsDoc(Default(), Options{})
	if err != nil {
		t.Fatalf("RenderOptionsDoc: %v", err)
	}

	assertContains(t, rendered, "# Format option reference")
	assertContains(t, rendered, "## csv")
	assertContains(t, rendered, "### csv input options")
	assertContains(t, rendered, "### csv output options")
	assertContains(t, rendered, "#### csv.output.delimiter")
	assertContains(t, rendered, "#### sql-insert.output.dialect")
}

func TestRenderOptionsDocContents(t *testing.T) {
	t.Parallel()

	rendered, err := RenderOptionsDoc(Default(), Options{})
	if err != nil {
		t.Fatalf("RenderOptionsDoc: %v", err)
	}

	assertContains(t, rendered, "## Contents")
	assertContains(t, rendered, "* [csv](#csv)")
	assertContains(t, rendered, "* [sql-insert](#sql-insert)")
}

func TestRenderOptionsDocFormatMetadata(t *testing.T) {
	t.Parallel()

	rendered, err := RenderOptionsDoc(Default(), Options{})
	if err != nil {
		t.Fatalf("RenderOptionsDoc: %v", err)
	}

	assertContains(t, rendered, "* Group key: `sqlInsert`")
	assertContains(t, rendered, "* Roles: input, output")
	assertContains(t, rendered, "* Roles: output only")
	assertContains(t, rendered, "* Media type: `text/csv`")
	assertContains(t, rendered, "* Media type: `text/plain`")
}

func TestRenderOptionsDocDescriptorAttributes(t *testing.T) {
	t.Parallel()

	rendered, err := RenderOptionsDoc(Default(), Options{})
	if err != nil {
		t.Fatalf("RenderOptionsDoc: %v", err)
	}

	assertContains(t, rendered, "* Kind: `string`")
	assertContains(t, rendered, "* Kind: `enum`")
	assertContains(t, rendered, "* Required: yes")
	assertContains(t, rendered, "* Default: `\",\"`")
	assertContains(t, rendered, "* Default: `\"users\"`")
	assertContains(t, rendered, "* Default: `true`")
	assertContains(t, rendered, "* Default: `2`")
	assertContains(t, rendered, "* Allowed values: `postgres`, `mysql`, `sqlite`, `mssql`")
}

func TestRenderOptionsDocInputSectionBeforeOutput(t *testing.T) {
	t.Parallel()

	rendered, err := RenderOptionsDoc(Default(), Options{})
	if err != nil {
		t.Fatalf("RenderOptionsDoc: %v", err)
	}

	inputIndex := strings.Index(rendered, "### csv input options")
	outputIndex := strings.Index(rendered, "### csv output options")
	if inputIndex < 0 || outputIndex < 0 || inputIndex > outputIndex {
		t.Fatalf("direction sections out of order: input=%d output=%d", inputIndex, outputIndex)
	}
}

func TestRenderOptionsDocCustomTitle(t *testing.T) {
	t.Parallel()

	rendered, err := RenderOptionsDoc(Default(), Options{Title: "Converter options"})
	if err != nil {
		t.Fatalf("RenderOptionsDoc: %v", err)
	}

	assertContains(t, rendered, "# Converter options")
	assertNotContains(t, rendered, "# Format option reference")
}

func TestRenderOptionsDocListMarker(t *testing.T) {
	t.Parallel()

	rendered, err := RenderOptionsDoc(Default(), Options{ListMarker: "-"})
	if err != nil {
		t.Fatalf("RenderOptionsDoc: %v", err)
	}

	assertContains(t, rendered, "- Kind: `string`")
	assertNotContains(t, rendered, "* Kind: `string`")
}

func TestRenderOptionsDocWrapWidth(t *testing.T) {
	t.Parallel()

	rendered, err := RenderOptionsDoc(Default(), Options{WrapWidth: 30})
	if err != nil {
		t.Fatalf("RenderOptionsDoc: %v", err)
	}

	assertContains(t, rendered, "Strip surrounding whitespace\nfrom every field value before\ntype detection.")
}

func TestRenderOptionsDocCustomTemplate(t *testing.T) {
	t.Parallel()

	rendered, err := RenderOptionsDoc(Default(), Options{
		TemplateText: "# {{ .Title }}\n{{ range .Formats }}- {{ .Name }}\n{{ end }}\n",
	})
	if err != nil {
		t.Fatalf("RenderOptionsDoc: %v", err)
	}

	want := "# Format option reference\n" +
		"- csv\n- json\n- xml\n- yaml\n- tsv\n- xlsx\n- sql-insert\n"
	if rendered != want {
		t.Fatalf("custom template output = %q, want %q", rendered, want)
	}
}

func TestRenderOptionsDocNoDoubleBlankAfterHeadings(t *testing.T) {
	t.Parallel()

	rendered, err := RenderOptionsDoc(Default(), Options{})
	if err != nil {
		t.Fatalf("RenderOptionsDoc: %v", err)
	}

	headingGapPattern := regexp.MustCompile(`(?m)^#### .*\n\n\n+`)
	if headingGapPattern.MatchString(rendered) {
		t.Fatalf("rendered markdown contains multiple blank lines after #### heading")
	}
}

func TestRenderMatrixDocHeadings(t *testing.T) {
	t.Parallel()

	rendered, err := RenderMatrixDoc(Default(), Options{})
	if err != nil {
		t.Fatalf("RenderMatrixDoc: %v", err)
	}

	assertContains(t, rendered, "# Conversion request matrix")
	assertContains(t, rendered, "* Method: `POST`")
	assertContains(t, rendered, "* Endpoint: `https://data-format-converter-api.p.rapidapi.com/convert`")
	assertContains(t, rendered, "* Requests: 42")
	assertContains(t, rendered, "## csv")
	assertContains(t, rendered, "### csv → json")
	assertContains(t, rendered, "### csv → csv")
}

func TestRenderMatrixDocEntries(t *testing.T) {
	t.Parallel()

	rendered, err := RenderMatrixDoc(Default(), Options{})
	if err != nil {
		t.Fatalf("RenderMatrixDoc: %v", err)
	}

	assertContains(t, rendered, "* Accept: `application/json`")
	assertContains(t, rendered, "* Options: `{\"tableName\":\"users\"}`")
	assertContains(t, rendered, "```bash")
	assertContains(t, rendered, "curl --request POST \\")
	assertContains(t, rendered, "--url https://data-format-converter-api.p.rapidapi.com/convert \\")
	assertContains(t, rendered, "--header 'x-rapidapi-key: YOUR_RAPIDAPI_KEY' \\")
	assertContains(t, rendered, "--header 'x-rapidapi-host: data-format-converter-api.p.rapidapi.com' \\")
	assertContains(t, rendered, `--data '{"sourceFormat":"csv","targetFormat":"csv"`)
	assertContains(t, rendered, "<records>")
	assertNotContains(t, rendered, `<`)
}

func TestRenderMatrixDocEndpointOverride(t *testing.T) {
	t.Parallel()

	rendered, err := RenderMatrixDoc(Default(), Options{Host: "example.test", Path: "v2/convert"})
	if err != nil {
		t.Fatalf("RenderMatrixDoc: %v", err)
	}

	assertContains(t, rendered, "* Endpoint: `https://example.test/v2/convert`")
	assertContains(t, rendered, "--url https://example.test/v2/convert \\")
	assertContains(t, rendered, "--header 'x-rapidapi-host: example.test' \\")
	assertNotContains(t, rendered, "data-format-converter-api.p.rapidapi.com")
}

func TestRenderMatrixDocCustomTemplate(t *testing.T) {
	t.Parallel()

	rendered, err := RenderMatrixDoc(Default(), Options{
		TemplateText: "{{ .EntryCount }} requests\n",
	})
	if err != nil {
		t.Fatalf("RenderMatrixDoc: %v", err)
	}

	if rendered != "42 requests\n" {
		t.Fatalf("custom template output = %q, want %q", rendered, "42 requests\n")
	}
}

func TestRenderDocsDeterministic(t *testing.T) {
	t.Parallel()

	first, err := RenderOptionsDoc(Default(), Options{})
	if err != nil {
		t.Fatalf("RenderOptionsDoc: %v", err)
	}

	second, err := RenderOptionsDoc(Default(), Options{})
	if err != nil {
		t.Fatalf("RenderOptionsDoc: %v", err)
	}

	if first != second {
		t.Fatal("option reference output is not deterministic")
	}

	firstMatrix, err := RenderMatrixDoc(Default(), Options{})
	if err != nil {
		t.Fatalf("RenderMatrixDoc: %v", err)
	}

	secondMatrix, err := RenderMatrixDoc(Default(), Options{})
	if err != nil {
		t.Fatalf("RenderMatrixDoc: %v", err)
	}

	if firstMatrix != secondMatrix {
		t.Fatal("matrix output is not deterministic")
	}
}

func TestBuiltinTemplates(t *testing.T) {
	t.Parallel()

	names := BuiltinTemplateNames()
	if strings.Join(names, ",") != "matrix,options" {
		t.Fatalf("unexpected template names: %v", names)
	}

	if _, err := BuiltinTemplate("missing"); !errors.Is(err, ErrUnknownBuiltinTemplate) {
		t.Fatalf("expected ErrUnknownBuiltinTemplate, got %v", err)
	}

	tpl, err := BuiltinTemplate("matrix")
	if err != nil {
		t.Fatalf("BuiltinTemplate: %v", err)
	}

	assertContains(t, tpl, "```bash")
}

func TestMarkdownHeadingAnchor(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"csv":           "csv",
		"sql-insert":    "sql-insert",
		"  Mixed Case ": "mixed-case",
		"a__b":          "a-b",
	}

	for input, want := range cases {
		if got := markdownHeadingAnchor(input); got != want {
			t.Fatalf("markdownHeadingAnchor(%q) = %q, want %q", input, got, want)
		}
	}
}

func assertContains(t *testing.T, haystack, needle string) {
	t.Helper()

	if !strings.Contains(haystack, needle) {
		t.Fatalf("missing substring %q in:\n%s", needle, haystack)
	}
}

func assertNotContains(t *testing.T, haystack, needle string) {
	t.Helper()

	if strings.Contains(haystack, needle) {
		t.Fatalf("unexpected substring %q in:\n%s", needle, haystack)
	}
}
