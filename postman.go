// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Precision Solutions Tech
// Source: github.com/precisionsolutionstech-netizen/api-catalog

package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const (
	// CollectionSchemaURL declares the Postman collection format version of generated artifacts.
	CollectionSchemaURL = "https://schema.getpostman.com/json/collection/v2.1.0/collection.json"
	// DefaultServiceHost is the RapidAPI host of the converter service.
	DefaultServiceHost = "data-format-converter-api.p.rapidapi.com"
	// DefaultConvertPath is the conversion endpoint path.
	DefaultConvertPath = "/convert"
)

const (
	// defaultCollectionName names the generated collection when callers give none.
	defaultCollectionName = "Data Format Converter API"
	// defaultCollectionDescription summarizes the artifact for collection consumers.
	defaultCollectionDescription = "Example requests covering every supported source and target format pair."
	// apiKeyVariable is the single substitutable collection variable.
	apiKeyVariable = "rapidApiKey"
	// apiKeyPlaceholder is the value subscribers replace with a real RapidAPI key.
	apiKeyPlaceholder = "YOUR_RAPIDAPI_KEY"
	// envelopeMediaType is the fixed encoding of the request envelope.
	envelopeMediaType = "application/json"
)

// CollectionOptions configures Postman collection metadata and endpoint routing.
type CollectionOptions struct {
	// Name overrides the collection display name.
	Name string
	// Description overrides the collection description.
	Description string
	// Host overrides the service host used in headers and request URLs.
	Host string
	// Path overrides the conversion endpoint path.
	Path string
}

// PostmanCollection is the root document of a Postman v2.1.0 collection.
type PostmanCollection struct {
	Info      PostmanInfo       `json:"info"`
	Items     []PostmanFolder   `json:"item"`
	Variables []PostmanVariable `json:"variable"`
}

// PostmanInfo carries collection identity and schema metadata.
type PostmanInfo struct {
	ID          string `json:"_postman_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Schema      string `json:"schema"`
}

// PostmanFolder groups requests sharing one source format.
type PostmanFolder struct {
	Name  string        `json:"name"`
	Items []PostmanItem `json:"item"`
}

// PostmanItem is one named request inside a folder.
type PostmanItem struct {
	Name    string         `json:"name"`
	Request PostmanRequest `json:"request"`
}

// PostmanRequest describes method, headers, body and URL of one request.
type PostmanRequest struct {
	Method string          `json:"method"`
	Header []PostmanHeader `json:"header"`
	Body   PostmanBody     `json:"body"`
	URL    PostmanURL      `json:"url"`
}

// PostmanHeader is one request header pair.
type PostmanHeader struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// PostmanBody carries the raw request body and its editor hints.
type PostmanBody struct {
	Mode    string              `json:"mode"`
	Raw     string              `json:"raw"`
	Options *PostmanBodyOptions `json:"options,omitempty"`
}

// PostmanBodyOptions wraps raw body editor settings.
type PostmanBodyOptions struct {
	Raw PostmanRawBodyOptions `json:"raw"`
}

// PostmanRawBodyOptions selects the editor language for raw bodies.
type PostmanRawBodyOptions struct {
	Language string `json:"language"`
}

// PostmanURL is the split URL representation Postman expects.
type PostmanURL struct {
	Raw      string   `json:"raw"`
	Protocol string   `json:"protocol"`
	Host     []string `json:"host"`
	Path     []string `json:"path"`
}

// PostmanVariable is one substitutable collection variable.
type PostmanVariable struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// BuildPostmanCollection renders the request matrix as a Postman v2.1.0 collection.
//
// One folder per source format, one item per matrix entry. The collection id
// is derived from endpoint and name, so regenerating an unchanged matrix
// yields a byte-identical artifact.
func BuildPostmanCollection(matrix RequestMatrix, opt CollectionOptions) (PostmanCollection, error) {
	opt = normalizeCollectionOptions(opt)
	requestURL := buildRequestURL(opt.Host, opt.Path)

	collection := PostmanCollection{
		Info: PostmanInfo{
			ID:          collectionID(opt),
			Name:        opt.Name,
			Description: opt.Description,
			Schema:      CollectionSchemaURL,
		},
		Items: make([]PostmanFolder, 0, len(matrix.Groups)),
		Variables: []PostmanVariable{
			{Key: apiKeyVariable, Value: apiKeyPlaceholder},
		},
	}

	for _, group := range matrix.Groups {
		folder := PostmanFolder{
			Name:  string(group.Source),
			Items: make([]PostmanItem, 0, len(group.Entries)),
		}

		for _, entry := range group.Entries {
			body, err := marshalEnvelopeJSON(entry.Request)
			if err != nil {
				return PostmanCollection{}, fmt.Errorf("%w for %q: %w", ErrEncodeRequestBody, entry.Name, err)
			}

			folder.Items = append(folder.Items, PostmanItem{
				Name: entry.Name,
				Request: PostmanRequest{
					Method: "POST",
					Header: requestHeaders(entry.Accept, opt.Host),
					Body: PostmanBody{
						Mode:    "raw",
						Raw:     string(body),
						Options: &PostmanBodyOptions{Raw: PostmanRawBodyOptions{Language: "json"}},
					},
					URL: requestURL,
				},
			})
		}

		collection.Items = append(collection.Items, folder)
	}

	return collection, nil
}

// EncodeCollectionJSON serializes the collection with stable two-space formatting.
func EncodeCollectionJSON(collection PostmanCollection) ([]byte, error) {
	var out bytes.Buffer

	encoder := json.NewEncoder(&out)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(collection); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodeCollection, err)
	}

	return out.Bytes(), nil
}

// normalizeCollectionOptions applies artifact defaults for empty fields.
func normalizeCollectionOptions(opt CollectionOptions) CollectionOptions {
	opt.Name = strings.TrimSpace(opt.Name)
	if opt.Name == "" {
		opt.Name = defaultCollectionName
	}

	opt.Description = strings.TrimSpace(opt.Description)
	if opt.Description == "" {
		opt.Description = defaultCollectionDescription
	}

	opt.Host, opt.Path = normalizeEndpoint(opt.Host, opt.Path)

	return opt
}

// normalizeEndpoint applies service defaults to host and path overrides.
func normalizeEndpoint(host, path string) (string, string) {
	host = strings.TrimSpace(host)
	if host == "" {
		host = DefaultServiceHost
	}

	path = strings.TrimSpace(path)
	if path == "" {
		path = DefaultConvertPath
	}

	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	return host, path
}

// collectionID derives a stable v5 UUID from endpoint and collection name.
func collectionID(opt CollectionOptions) string {
	seed := "https://" + opt.Host + opt.Path + "#" + opt.Name
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(seed)).String()
}

// requestHeaders builds the fixed header set for one matrix entry.
func requestHeaders(accept, host string) []PostmanHeader {
	return []PostmanHeader{
		{Key: "Content-Type", Value: envelopeMediaType},
		{Key: "Accept", Value: accept},
		{Key: "x-rapidapi-key", Value: "{{" + apiKeyVariable + "}}"},
		{Key: "x-rapidapi-host", Value: host},
	}
}

// buildRequestURL splits the endpoint into Postman's raw, protocol, host and path shape.
func buildRequestURL(host, path string) PostmanURL {
	return PostmanURL{
		Raw:      "https://" + host + path,
		Protocol: "https",
		Host:     strings.Split(host, "."),
		Path:     splitPathSegments(path),
	}
}

// splitPathSegments returns the non-empty segments of an endpoint path.
func splitPathSegments(path string) []string {
	parts := strings.Split(strings.Trim(path, "/"), "/")

	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			continue
		}

		out = append(out, part)
	}

	return out
}

// marshalEnvelopeJSON serializes one request envelope as pretty JSON without a trailing newline.
func marshalEnvelopeJSON(request ConversionRequest) ([]byte, error) {
	var out bytes.Buffer

	encoder := json.NewEncoder(&out)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(request); err != nil {
		return nil, err
	}

	return bytes.TrimRight(out.Bytes(), "\n"), nil
}
