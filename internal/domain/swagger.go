// Package domain provides core models and interfaces for the Swagger to TypeScript generator.
package domain

import (
	"slices"

	"github.com/go-json-experiment/json"
)

// Document represents the subset of a Swagger 2 document the generator consumes.
type Document struct {
	Swagger     string                 `json:"swagger"`
	Info        Info                   `json:"info"`
	Tags        []Tag                  `json:"tags"`
	Paths       *OrderedMap[*PathItem] `json:"paths"`
	Definitions map[string]*Schema     `json:"definitions"`
}

// Info holds the document metadata.
type Info struct {
	Title       string `json:"title"`
	Version     string `json:"version"`
	Description string `json:"description"`
}

// Tag represents a Swagger tag. The description names the output file.
type Tag struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// PathItem holds the operations of a single path. Only POST is generated.
type PathItem struct {
	Post *Operation `json:"post"`
}

// Operation represents a Swagger operation.
type Operation struct {
	Tags        []string             `json:"tags"`
	Summary     string               `json:"summary"`
	Description string               `json:"description"`
	OperationID string               `json:"operationId"`
	Parameters  []Parameter          `json:"parameters"`
	Responses   map[string]*Response `json:"responses"`
}

// Parameter represents an operation parameter. Body parameters carry a schema.
type Parameter struct {
	Name     string  `json:"name"`
	In       string  `json:"in"`
	Required bool    `json:"required"`
	Schema   *Schema `json:"schema"`
}

// Response represents a single status code entry of an operation.
type Response struct {
	Description string  `json:"description"`
	Schema      *Schema `json:"schema"`
}

// Schema is a raw Swagger schema, used both for definitions and for property types.
type Schema struct {
	Type        string               `json:"type"`
	Format      string               `json:"format"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	OriginalRef string               `json:"originalRef"`
	Ref         string               `json:"$ref"`
	Items       *Schema              `json:"items"`
	Properties  *OrderedMap[*Schema] `json:"properties"`
	// Required is nil when the schema has no required list at all.
	Required []string `json:"required"`
}

// swaggerVersion is the document version the generator understands.
const swaggerVersion = "2.0"

// SupportedVersion reports whether the document declares Swagger 2.0.
func (d *Document) SupportedVersion() bool {
	return d.Swagger == swaggerVersion
}

// IsRequired reports whether the named property renders as required.
// Without a required list every property is required; with one, only listed
// properties are.
func (s *Schema) IsRequired(name string) bool {
	if s == nil || s.Required == nil {
		return true
	}

	return slices.Contains(s.Required, name)
}

// ParseDocument decodes a Swagger JSON document keeping paths and properties in
// document order. Only malformed JSON fails; members of an unexpected shape
// are ignored and fall back to their zero value.
func ParseDocument(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc, decodeOptions); err != nil {
		return nil, &ParseError{Err: err}
	}

	return &doc, nil
}
