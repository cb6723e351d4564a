// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Precision Solutions Tech
// Source: github.com/precisionsolutionstech-netizen/api-catalog

package catalog

import (
	"slices"
	"strings"
)

// attributeView is a single rendered name/value metadata item.
type attributeView struct {
	Name  string
	Value string
}

// optionsDocView is the root view model for the option reference template.
type optionsDocView struct {
	Title      string
	ListMarker string
	Formats    []formatView
}

// formatView represents one format section in the option reference.
type formatView struct {
	Name       string
	GroupKey   string
	Roles      string
	MediaType  string
	Directions []directionView
}

// directionView represents the option listing for one direction of a format.
type directionView struct {
	Heading string
	Options []optionView
}

// optionView represents one descriptor section.
type optionView struct {
	Heading     string
	Key         string
	Description string
	Attributes  []attributeView
}

// matrixDocView is the root view model for the matrix template.
type matrixDocView struct {
	Title      string
	ListMarker string
	Endpoint   string
	EntryCount int
	Groups     []matrixGroupView
}

// matrixGroupView represents all requests sharing one source format.
type matrixGroupView struct {
	Heading string
	Entries []matrixEntryView
}

// matrixEntryView represents one conversion pair with its ready-to-run snippet.
type matrixEntryView struct {
	Heading    string
	Accept     string
	HasOptions bool
	Options    string
	Curl       string
}

// buildOptionsDocView prepares data for the option reference template.
func buildOptionsDocView(registry *Registry, opt Options) optionsDocView {
	title := strings.TrimSpace(opt.Title)
	if title == "" {
		title = defaultOptionsTitle
	}

	wrapWidth := normalizeWrapWidth(opt.WrapWidth)
	listMarker := normalizeListMarker(opt.ListMarker)

	view := optionsDocView{
		Title:      sanitizeText(title),
		ListMarker: listMarker,
		Formats:    make([]formatView, 0, len(registry.outputFormats)),
	}

	for _, format := range registry.outputFormats {
		section := formatView{
			Name:      escapeInline(string(format)),
			GroupKey:  escapeInline(registry.groupKeys[format]),
			Roles:     formatRoles(slices.Contains(registry.inputFormats, format)),
			MediaType: escapeInline(registry.AcceptHeader(format)),
		}

		for _, direction := range []Direction{DirectionInput, DirectionOutput} {
			set, ok := registry.sets[optionSetKey{Format: format, Direction: direction}]
			if !ok {
				continue
			}

			listing := directionView{
				Heading: escapeInline(string(format) + " " + string(direction) + " options"),
				Options: make([]optionView, 0, len(set.Descriptors)),
			}

			for _, descriptor := range set.Descriptors {
				listing.Options = append(listing.Options, optionView{
					Heading:     escapeInline(string(format) + "." + string(direction) + "." + descriptor.Key),
					Key:         escapeInline(descriptor.Key),
					Description: formatDescription(descriptor.Description, wrapWidth),
					Attributes:  descriptorAttributes(descriptor),
				})
			}

			section.Directions = append(section.Directions, listing)
		}

		view.Formats = append(view.Formats, section)
	}

	return view
}

// buildMatrixDocView prepares data for the matrix template.
func buildMatrixDocView(registry *Registry, opt Options) matrixDocView {
	title := strings.TrimSpace(opt.Title)
	if title == "" {
		title = defaultMatrixTitle
	}

	listMarker := normalizeListMarker(opt.ListMarker)
	host, path := normalizeEndpoint(opt.Host, opt.Path)
	matrix := registry.BuildRequestMatrix()

	view := matrixDocView{
		Title:      sanitizeText(title),
		ListMarker: listMarker,
		Endpoint:   escapeInline("https://" + host + path),
		EntryCount: matrix.Len(),
		Groups:     make([]matrixGroupView, 0, len(matrix.Groups)),
	}

	for _, group := range matrix.Groups {
		section := matrixGroupView{
			Heading: escapeInline(string(group.Source)),
			Entries: make([]matrixEntryView, 0, len(group.Entries)),
		}

		for _, entry := range group.Entries {
			item := matrixEntryView{
				Heading: escapeInline(entry.Name),
				Accept:  escapeInline(entry.Accept),
				Curl:    curlSnippet(entry, host, path),
			}

			if len(entry.Request.Options) > 0 {
				item.HasOptions = true
				item.Options = escapeInline(mustJSONInline(entry.Request.Options))
			}

			section.Entries = append(section.Entries, item)
		}

		view.Groups = append(view.Groups, section)
	}

	return view
}

// formatRoles renders the conversion roles line for one format.
func formatRoles(isInput bool) string {
	if isInput {
		return "input, output"
	}

	return "output only"
}

// descriptorAttributes renders the flat attribute list for one descriptor.
func descriptorAttributes(descriptor OptionDescriptor) []attributeView {
	out := make([]attributeView, 0, 4)

	out = append(out, attributeView{
		Name:  "Kind",
		Value: "`" + escapeInline(string(descriptor.Kind)) + "`",
	})
	out = append(out, attributeView{
		Name:  "Required",
		Value: yesNo(descriptor.Required),
	})
	out = append(out, attributeView{
		Name:  "Default",
		Value: "`" + escapeInline(mustJSONInline(descriptor.Default)) + "`",
	})

	if len(descriptor.AllowedValues) > 0 {
		out = append(out, attributeView{
			Name:  "Allowed values",
			Value: inlineCodeList(descriptor.AllowedValues),
		})
	}

	return out
}

// curlSnippet renders a ready-to-run request for one matrix entry.
func curlSnippet(entry RequestEntry, host, path string) string {
	var out strings.Builder

	out.WriteString("curl --request POST \\\n")
	out.WriteString("  --url https://" + host + path + " \\\n")
	out.WriteString("  --header 'Content-Type: " + envelopeMediaType + "' \\\n")
	out.WriteString("  --header 'Accept: " + entry.Accept + "' \\\n")
	out.WriteString("  --header 'x-rapidapi-key: " + apiKeyPlaceholder + "' \\\n")
	out.WriteString("  --header 'x-rapidapi-host: " + host + "' \\\n")
	out.WriteString("  --data '" + mustJSONInline(entry.Request) + "'")

	return out.String()
}
