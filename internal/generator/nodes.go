package generator

import (
	"fmt"
	"strings"
)

// Node is one top-level declaration of a generated file.
type Node interface {
	// TypeName returns the TypeScript name the node declares or imports.
	TypeName() string

	render(sb *strings.Builder)
}

// ImportNode imports a type declared in another generated file.
type ImportNode struct {
	Name string
	From string
}

// AliasNode declares a type alias for a definition without properties.
type AliasNode struct {
	Name        string
	Type        string
	Description string
}

// InterfaceNode declares an interface for a definition with properties.
type InterfaceNode struct {
	Name        string
	Description string
	Fields      []Field
}

// Field is one interface member.
type Field struct {
	Name        string
	Type        string
	Description string
	Required    bool
}

func (n ImportNode) TypeName() string    { return n.Name }
func (n AliasNode) TypeName() string     { return n.Name }
func (n InterfaceNode) TypeName() string { return n.Name }

func (n ImportNode) render(sb *strings.Builder) {
	fmt.Fprintf(sb, "import { %s } from './%s';\n", n.Name, n.From)
}

func (n AliasNode) render(sb *strings.Builder) {
	sb.WriteString(jsDoc(n.Description, ""))
	fmt.Fprintf(sb, "export type %s = %s;\n", n.Name, n.Type)
}

func (n InterfaceNode) render(sb *strings.Builder) {
	sb.WriteString(jsDoc(n.Description, ""))
	fmt.Fprintf(sb, "export interface %s {\n", n.Name)

	for _, f := range n.Fields {
		sb.WriteString(jsDoc(f.Description, "  "))

		sep := "?:"
		if f.Required {
			sep = ":"
		}

		fmt.Fprintf(sb, "  %s%s %s;\n", propertyKey(f.Name), sep, f.Type)
	}

	sb.WriteString("}\n")
}

// RenderNodes serializes declarations in order, separated by blank lines.
func RenderNodes(nodes []Node) string {
	var sb strings.Builder

	for i, n := range nodes {
		if i > 0 {
			sb.WriteString("\n")
		}
		n.render(&sb)
	}

	return sb.String()
}

// jsDoc renders a doc comment at the given indentation, or nothing for an
// empty description.
func jsDoc(description, indent string) string {
	description = strings.TrimSpace(description)
	if description == "" {
		return ""
	}

	description = strings.ReplaceAll(description, "*/", `*\/`)
	lines := strings.Split(description, "\n")

	if len(lines) == 1 {
		return fmt.Sprintf("%s/** %s */\n", indent, lines[0])
	}

	var sb strings.Builder
	sb.WriteString(indent + "/**\n")

	for _, line := range lines {
		line = strings.TrimRight(line, " \t\r")
		if line == "" {
			sb.WriteString(indent + " *\n")
		} else {
			fmt.Fprintf(&sb, "%s * %s\n", indent, line)
		}
	}

	sb.WriteString(indent + " */\n")

	return sb.String()
}

// propertyKey quotes property names that are not valid identifiers.
func propertyKey(name string) string {
	if name == "" {
		return `""`
	}

	for i, r := range name {
		letter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_' || r == '$'
		digit := r >= '0' && r <= '9'

		if !letter && (i == 0 || !digit) {
			return fmt.Sprintf("%q", name)
		}
	}

	return name
}
