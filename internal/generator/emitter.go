package generator

import (
	"github.com/GabrielNunesIT/swagger-ts-gen/internal/domain"
)

// Emitter expands definitions into declaration nodes for a target file,
// consulting the Registry so every definition is declared exactly once across
// all files and imported everywhere else.
type Emitter struct {
	definitions map[string]*domain.Schema
	registry    *Registry
}

// NewEmitter creates an Emitter over the document definitions.
func NewEmitter(definitions map[string]*domain.Schema, registry *Registry) *Emitter {
	return &Emitter{
		definitions: definitions,
		registry:    registry,
	}
}

// Emit returns the nodes file needs for ref: its dependencies first, then its
// own declaration. A ref declared elsewhere yields a single import the first
// time file asks for it and nothing afterwards. The registry also breaks
// reference cycles, since a ref is registered before its properties are walked.
func (e *Emitter) Emit(ref, file string) []Node {
	if ref == "" {
		return nil
	}

	if e.registry.Known(ref) {
		if !e.registry.RecordImport(ref, file) {
			return nil
		}

		return []Node{ImportNode{Name: TypeName(ref), From: e.registry.Owner(ref)}}
	}

	e.registry.Register(ref, file)

	def := e.definitions[ref]
	if def == nil {
		def = &domain.Schema{}
	}

	if def.Properties == nil {
		return []Node{AliasNode{
			Name:        TypeName(ref),
			Type:        orAny(def.Type),
			Description: def.Description,
		}}
	}

	var nodes []Node

	decl := InterfaceNode{
		Name:        TypeName(ref),
		Description: def.Description,
	}

	for _, name := range def.Properties.Keys() {
		prop, _ := def.Properties.Get(name)
		pt := prop.PropertyType()

		decl.Fields = append(decl.Fields, Field{
			Name:        name,
			Type:        tsType(pt),
			Description: description(prop),
			Required:    def.IsRequired(name),
		})

		nodes = append(nodes, e.Emit(domain.NestedRef(pt), file)...)
	}

	return append(nodes, decl)
}

func description(s *domain.Schema) string {
	if s == nil {
		return ""
	}

	return s.Description
}
