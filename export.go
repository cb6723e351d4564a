// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Precision Solutions Tech
// Source: github.com/precisionsolutionstech-netizen/api-catalog

package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// FormatExport is the machine-readable option listing for one format.
type FormatExport struct {
	ID        FormatID           `json:"id"`
	GroupKey  string             `json:"groupKey"`
	MediaType string             `json:"mediaType,omitempty"`
	Input     []OptionDescriptor `json:"input,omitempty"`
	Output    []OptionDescriptor `json:"output"`
}

// RegistryExport is the ordered machine-readable registry dump.
type RegistryExport struct {
	Formats []FormatExport `json:"formats"`
}

// EncodeRegistryYAML renders every option set as YAML with descriptor defaults.
//
// Option keys carry descriptions, required markers and allowed values as
// comments, so the dump doubles as human-readable reference configuration.
func EncodeRegistryYAML(registry *Registry) ([]byte, error) {
	root := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

	for _, format := range registry.outputFormats {
		formatNode := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

		for _, direction := range []Direction{DirectionInput, DirectionOutput} {
			set, ok := registry.sets[optionSetKey{Format: format, Direction: direction}]
			if !ok {
				continue
			}

			directionNode := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

			for _, descriptor := range set.Descriptors {
				keyNode := yamlScalarNode("!!str", descriptor.Key)
				keyNode.HeadComment = descriptorComment(descriptor)

				valueNode, err := yamlValueNode(descriptor.Default)
				if err != nil {
					return nil, fmt.Errorf("%w: option %s/%s/%s: %w",
						ErrEncodeRegistryYAML, format, direction, descriptor.Key, err)
				}

				directionNode.Content = append(directionNode.Content, keyNode, valueNode)
			}

			formatNode.Content = append(formatNode.Content,
				yamlScalarNode("!!str", string(direction)), directionNode)
		}

		root.Content = append(root.Content, yamlScalarNode("!!str", string(format)), formatNode)
	}

	document := &yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{root}}

	var out bytes.Buffer

	encoder := yaml.NewEncoder(&out)
	encoder.SetIndent(2)

	if err := encoder.Encode(document); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodeRegistryYAML, err)
	}

	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodeRegistryYAML, err)
	}

	return out.Bytes(), nil
}

// EncodeRegistryJSON renders the ordered registry dump as pretty JSON.
func EncodeRegistryJSON(registry *Registry) ([]byte, error) {
	var out bytes.Buffer

	encoder := json.NewEncoder(&out)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(buildRegistryExport(registry)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodeRegistryJSON, err)
	}

	return out.Bytes(), nil
}

// buildRegistryExport assembles the export view in declared format order.
func buildRegistryExport(registry *Registry) RegistryExport {
	formats := make([]FormatExport, 0, len(registry.outputFormats))

	for _, format := range registry.outputFormats {
		export := FormatExport{
			ID:       format,
			GroupKey: registry.groupKeys[format],
		}

		if mediaType, ok := registry.mediaTypes[format]; ok {
			export.MediaType = mediaType
		}

		if set, ok := registry.sets[optionSetKey{Format: format, Direction: DirectionInput}]; ok {
			export.Input = set.clone().Descriptors
		}

		if set, ok := registry.sets[optionSetKey{Format: format, Direction: DirectionOutput}]; ok {
			export.Output = set.clone().Descriptors
		}

		formats = append(formats, export)
	}

	return RegistryExport{Formats: formats}
}

// descriptorComment builds the YAML key comment for one descriptor.
func descriptorComment(descriptor OptionDescriptor) string {
	lines := make([]string, 0, 3)

	if text := strings.TrimSpace(descriptor.Description); text != "" {
		lines = append(lines, text)
	}

	if descriptor.Required {
		lines = append(lines, "Required.")
	}

	if len(descriptor.AllowedValues) > 0 {
		lines = append(lines, "Allowed values: "+strings.Join(descriptor.AllowedValues, ", ")+".")
	}

	return strings.Join(lines, "\n")
}

// yamlValueNode builds a typed scalar node for one descriptor default.
func yamlValueNode(value any) (*yaml.Node, error) {
	switch typed := value.(type) {
	case nil:
		return yamlScalarNode("!!null", "null"), nil
	case bool:
		return yamlScalarNode("!!bool", strconv.FormatBool(typed)), nil
	case string:
		return yamlScalarNode("!!str", typed), nil
	case int:
		return yamlScalarNode("!!int", strconv.Itoa(typed)), nil
	case int64:
		return yamlScalarNode("!!int", strconv.FormatInt(typed, 10)), nil
	case float64:
		return yamlScalarNode("!!float", strconv.FormatFloat(typed, 'g', -1, 64)), nil
	default:
		return nil, fmt.Errorf("unsupported default value type %T", value)
	}
}

// yamlScalarNode creates one scalar yaml.Node with an explicit tag.
func yamlScalarNode(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}
