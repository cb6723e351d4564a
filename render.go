// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Precision Solutions Tech
// Source: github.com/precisionsolutionstech-netizen/api-catalog

package catalog

import (
	"fmt"
	"sort"
	"strings"
)

const (
	// defaultOptionsTitle is used when caller does not title the option reference.
	defaultOptionsTitle = "Format option reference"
	// defaultMatrixTitle is used when caller does not title the matrix document.
	defaultMatrixTitle = "Conversion request matrix"
	// defaultWrapWidth wraps plain description paragraphs at this width.
	defaultWrapWidth = 80
	// defaultListMarker is used when caller does not provide list marker style.
	defaultListMarker = "*"
)

const (
	templateOptionsName = "options"
	templateMatrixName  = "matrix"
)

// Options configures markdown document rendering.
type Options struct {
	// Title overrides the document heading.
	Title string
	// TemplateText overrides the built-in template when non-empty.
	TemplateText string
	// WrapWidth wraps descriptor descriptions; zero selects the default width.
	WrapWidth int
	// ListMarker selects the unordered list marker, "*" or "-".
	ListMarker string
	// Host overrides the converter service host in endpoint and snippet lines.
	Host string
	// Path overrides the conversion endpoint path.
	Path string
}

// RenderOptionsDoc renders the option reference for every registered format.
func RenderOptionsDoc(registry *Registry, opt Options) (string, error) {
	return executeDocTemplate(templateOptionsName, opt.TemplateText, buildOptionsDocView(registry, opt))
}

// RenderMatrixDoc renders the full conversion request matrix walkthrough.
func RenderMatrixDoc(registry *Registry, opt Options) (string, error) {
	return executeDocTemplate(templateMatrixName, opt.TemplateText, buildMatrixDocView(registry, opt))
}

// executeDocTemplate resolves the template and renders a normalized markdown document.
func executeDocTemplate(templateName, customText string, view any) (string, error) {
	markdownTemplate, err := resolveTemplate(templateName, customText)
	if err != nil {
		return "", err
	}

	var out strings.Builder
	if err := markdownTemplate.Execute(&out, view); err != nil {
		return "", fmt.Errorf("%w: %w", ErrExecuteMarkdownTemplate, err)
	}

	return ensureTrailingNewline(normalizeMarkdownOutput(out.String())), nil
}

// BuiltinTemplateNames returns all available built-in template names.
func BuiltinTemplateNames() []string {
	names := make([]string, 0, len(builtInTemplateFiles))
	for name := range builtInTemplateFiles {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

// BuiltinTemplate returns one built-in template by name.
func BuiltinTemplate(name string) (string, error) {
	name = normalizeTemplateName(name)
	path, ok := builtInTemplateFiles[name]
	if !ok {
		return "", fmt.Errorf("%w %q", ErrUnknownBuiltinTemplate, name)
	}

	data, err := templateFS.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadBuiltinTemplate, err)
	}

	return string(data), nil
}
