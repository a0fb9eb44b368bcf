package domain

import (
	"errors"
	"testing"

	"github.com/go-json-experiment/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const orderedDoc = `{
  "swagger": "2.0",
  "info": {"title": "Shop", "version": "1.2.0"},
  "tags": [{"name": "order", "description": "Order Api"}],
  "paths": {
    "/z/last": {"post": {"tags": ["order"], "operationId": "zLast"}},
    "/a/first": {"post": {"tags": ["order"], "operationId": "aFirst"}},
    "/m/get-only": {"get": {"tags": ["order"]}}
  },
  "definitions": {
    "Order": {
      "type": "object",
      "required": ["id"],
      "properties": {
        "zeta": {"type": "string"},
        "id": {"type": "integer", "format": "int64"},
        "alpha": {"type": "array", "items": {"originalRef": "Line", "$ref": "#/definitions/Line"}}
      }
    },
    "Line": {"type": "object"}
  }
}`

func TestParseDocument_KeepsDocumentOrder(t *testing.T) {
	doc, err := ParseDocument([]byte(orderedDoc))
	require.NoError(t, err)

	assert.Equal(t, "2.0", doc.Swagger)
	assert.Equal(t, "Shop", doc.Info.Title)
	assert.Equal(t, []string{"/z/last", "/a/first", "/m/get-only"}, doc.Paths.Keys())

	item, ok := doc.Paths.Get("/m/get-only")
	require.True(t, ok)
	assert.Nil(t, item.Post)

	order := doc.Definitions["Order"]
	require.NotNil(t, order)
	assert.Equal(t, []string{"zeta", "id", "alpha"}, order.Properties.Keys())
	assert.Equal(t, []string{"id"}, order.Required)
	assert.Nil(t, doc.Definitions["Line"].Properties)
}

func TestParseDocument_InvalidJSON(t *testing.T) {
	_, err := ParseDocument([]byte(`{"swagger": "2.0",`))
	require.Error(t, err)

	var parseErr *ParseError
	assert.True(t, errors.As(err, &parseErr))
}

func TestParseDocument_NotAnObject(t *testing.T) {
	_, err := ParseDocument([]byte(`["swagger"]`))

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestParseDocument_ToleratesMalformedMembers(t *testing.T) {
	doc, err := ParseDocument([]byte("{\n" +
		`"swagger": "2.0",` +
		`"info": {"title": 7, "version": "1.0"},` +
		`"tags": [{"name": "order", "description": "Order Api"}, 5],` +
		`"paths": {` +
		`  "/order/create": {"post": {"tags": ["order"], "summary": ["x"], "operationId": "create",` +
		`    "parameters": [{"in": "body", "required": "yes", "schema": {"originalRef": "Order"}}]}},` +
		`  "/broken": 42` +
		`},` +
		`"definitions": {` +
		`  "Order": {` +
		`    "type": "object",` +
		`    "required": ["id"],` +
		`    "properties": {` +
		`      "id": {"type": "integer", "required": false},` +
		`      "note": {"type": "string", "description": 5},` +
		`      "kind": {"type": "integer", "type": "string"},` +
		"      \"label\": {\"type\": \"string\", \"title\": \"bad \xff byte\"}" +
		`    }` +
		`  },` +
		`  "Flags": {"type": "object", "properties": "none", "required": [1, 2]}` +
		`}` +
		"}"))
	require.NoError(t, err)

	assert.Empty(t, doc.Info.Title)
	assert.Equal(t, "1.0", doc.Info.Version)
	require.Len(t, doc.Tags, 2)
	assert.Equal(t, Tag{Name: "order", Description: "Order Api"}, doc.Tags[0])
	assert.Equal(t, Tag{}, doc.Tags[1])

	item, ok := doc.Paths.Get("/order/create")
	require.True(t, ok)
	require.NotNil(t, item.Post)
	assert.Empty(t, item.Post.Summary)
	assert.Equal(t, "create", item.Post.OperationID)
	require.Len(t, item.Post.Parameters, 1)
	assert.False(t, item.Post.Parameters[0].Required)
	assert.Equal(t, "Order", item.Post.Parameters[0].Schema.RefName())

	broken, ok := doc.Paths.Get("/broken")
	require.True(t, ok)
	assert.Nil(t, broken.Post)

	order := doc.Definitions["Order"]
	require.NotNil(t, order)
	assert.Equal(t, []string{"id", "note", "kind", "label"}, order.Properties.Keys())

	id, _ := order.Properties.Get("id")
	assert.Equal(t, "integer", id.Type)
	assert.Nil(t, id.Required)

	note, _ := order.Properties.Get("note")
	assert.Equal(t, "string", note.Type)
	assert.Empty(t, note.Description)

	kind, _ := order.Properties.Get("kind")
	assert.Equal(t, "string", kind.Type)

	label, _ := order.Properties.Get("label")
	assert.Equal(t, "bad \uFFFD byte", label.Title)

	flags := doc.Definitions["Flags"]
	require.NotNil(t, flags)
	assert.Nil(t, flags.Properties)
	assert.Nil(t, flags.Required)
}

func TestSchema_PropertyType(t *testing.T) {
	tests := []struct {
		name   string
		schema *Schema
		want   PropertyType
	}{
		{"nil schema", nil, Primitive{}},
		{"string", &Schema{Type: "string"}, Primitive{Type: "string"}},
		{"integer", &Schema{Type: "integer"}, Primitive{Type: "integer"}},
		{"original ref", &Schema{OriginalRef: "Bar"}, Reference{Name: "Bar"}},
		{"dollar ref", &Schema{Ref: "#/definitions/Bar"}, Reference{Name: "Bar"}},
		{"array of refs", &Schema{Type: "array", Items: &Schema{OriginalRef: "Foo"}}, ArrayOf{Items: Reference{Name: "Foo"}}},
		{"array without items", &Schema{Type: "array"}, ArrayOf{Items: Primitive{}}},
		{"nested arrays", &Schema{Type: "array", Items: &Schema{Type: "array", Items: &Schema{Type: "integer"}}}, ArrayOf{Items: ArrayOf{Items: Primitive{Type: "integer"}}}},
		{"object ref", &Schema{Type: "object", OriginalRef: "Baz"}, Reference{Name: "Baz"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.schema.PropertyType())
		})
	}
}

func TestSchema_RefName(t *testing.T) {
	assert.Equal(t, "Result«Foo»", (&Schema{OriginalRef: "Result«Foo»", Ref: "#/definitions/Result%C2%ABFoo%C2%BB"}).RefName())
	assert.Equal(t, "Result«Foo»", (&Schema{Ref: "#/definitions/Result%C2%ABFoo%C2%BB"}).RefName())
	assert.Equal(t, "a/b", (&Schema{Ref: "#/definitions/a~1b"}).RefName())
	assert.Empty(t, (&Schema{Ref: "http://example.com/schema.json"}).RefName())
}

func TestNestedRef(t *testing.T) {
	assert.Equal(t, "Foo", NestedRef(Reference{Name: "Foo"}))
	assert.Equal(t, "Foo", NestedRef(ArrayOf{Items: ArrayOf{Items: Reference{Name: "Foo"}}}))
	assert.Empty(t, NestedRef(Primitive{Type: "string"}))
	assert.Empty(t, NestedRef(nil))
}

func TestSchema_IsRequired(t *testing.T) {
	noList := &Schema{}
	assert.True(t, noList.IsRequired("id"))

	withList := &Schema{Required: []string{"id"}}
	assert.True(t, withList.IsRequired("id"))
	assert.False(t, withList.IsRequired("name"))

	emptyList := &Schema{Required: []string{}}
	assert.False(t, emptyList.IsRequired("id"))
}

func TestOrderedMap_SetKeepsPosition(t *testing.T) {
	m := NewOrderedMap[int]()
	m.Set("b", 1)
	m.Set("a", 2)
	m.Set("b", 3)

	assert.Equal(t, []string{"b", "a"}, m.Keys())
	v, ok := m.Get("b")
	assert.True(t, ok)
	assert.Equal(t, 3, v)
	assert.Equal(t, 2, m.Len())

	var nilMap *OrderedMap[int]
	assert.Zero(t, nilMap.Len())
	assert.Nil(t, nilMap.Keys())
}

func TestOrderedMap_DropsMalformedMembers(t *testing.T) {
	var m OrderedMap[int]
	require.NoError(t, json.Unmarshal([]byte(`{"a": 1, "b": "two", "c": 3, "a": 4}`), &m, decodeOptions))

	assert.Equal(t, []string{"a", "c"}, m.Keys())
	v, _ := m.Get("a")
	assert.Equal(t, 4, v)
}

func TestDocument_SupportedVersion(t *testing.T) {
	assert.True(t, (&Document{Swagger: "2.0"}).SupportedVersion())
	assert.False(t, (&Document{Swagger: "3.0.1"}).SupportedVersion())
	assert.False(t, (&Document{}).SupportedVersion())
}
