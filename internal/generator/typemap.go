// Package generator turns a Swagger document into TypeScript declarations and
// request functions, one file per tag.
package generator

import (
	"strings"

	"github.com/GabrielNunesIT/swagger-ts-gen/internal/domain"
)

// typeSuffix is appended to every definition name to form its TypeScript type name.
const typeSuffix = "Type"

// fallbackType is rendered wherever the document gives no usable type.
const fallbackType = "any"

// StripSpace removes every whitespace character from s.
func StripSpace(s string) string {
	return strings.Join(strings.Fields(s), "")
}

// TypeName returns the TypeScript type name for a definition name.
func TypeName(ref string) string {
	return StripSpace(ref) + typeSuffix
}

// MapType converts a property type into a TypeScript type expression.
// Primitives other than integer pass through verbatim, so the result is empty
// when the document declares no type.
func MapType(pt domain.PropertyType) string {
	switch t := pt.(type) {
	case domain.Primitive:
		if t.Type == "integer" {
			return "number"
		}
		return t.Type
	case domain.ArrayOf:
		return orAny(MapType(t.Items)) + "[]"
	case domain.Reference:
		return TypeName(t.Name)
	default:
		return ""
	}
}

// tsType is MapType with the empty result replaced by any.
func tsType(pt domain.PropertyType) string {
	return orAny(MapType(pt))
}

func orAny(ts string) string {
	if ts == "" {
		return fallbackType
	}

	return ts
}
