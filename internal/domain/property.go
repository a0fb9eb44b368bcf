package domain

import (
	"net/url"
	"strings"
)

const definitionsPrefix = "#/definitions/"

// PropertyType is the shape of a property: a Primitive, an ArrayOf or a Reference.
type PropertyType interface {
	isPropertyType()
}

// Primitive is a scalar Swagger type such as "string" or "integer".
// Type may be empty when the schema declares nothing usable.
type Primitive struct {
	Type string
}

// ArrayOf is an array whose element shape is Items.
type ArrayOf struct {
	Items PropertyType
}

// Reference points at another definition by name.
type Reference struct {
	Name string
}

func (Primitive) isPropertyType() {}
func (ArrayOf) isPropertyType()   {}
func (Reference) isPropertyType() {}

// PropertyType classifies the schema. Arrays win over references, and integer
// wins over references, which matches how springfox output is consumed.
func (s *Schema) PropertyType() PropertyType {
	if s == nil {
		return Primitive{}
	}

	switch {
	case s.Type == "array":
		if s.Items == nil {
			return ArrayOf{Items: Primitive{}}
		}
		return ArrayOf{Items: s.Items.PropertyType()}
	case s.Type == "integer":
		return Primitive{Type: s.Type}
	}

	if name := s.RefName(); name != "" {
		return Reference{Name: name}
	}

	return Primitive{Type: s.Type}
}

// RefName returns the referenced definition name. originalRef is preferred;
// a local "#/definitions/..." $ref is used when it is missing.
func (s *Schema) RefName() string {
	if s == nil {
		return ""
	}
	if s.OriginalRef != "" {
		return s.OriginalRef
	}
	if !strings.HasPrefix(s.Ref, definitionsPrefix) {
		return ""
	}

	name := strings.TrimPrefix(s.Ref, definitionsPrefix)
	if unescaped, err := url.PathUnescape(name); err == nil {
		name = unescaped
	}

	return strings.NewReplacer("~1", "/", "~0", "~").Replace(name)
}

// NestedRef returns the definition a property type depends on, looking
// through any number of array levels. Empty when there is none.
func NestedRef(pt PropertyType) string {
	switch t := pt.(type) {
	case Reference:
		return t.Name
	case ArrayOf:
		return NestedRef(t.Items)
	default:
		return ""
	}
}
