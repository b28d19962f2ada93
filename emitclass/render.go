package emitclass

import "strings"

// Render produces the PHP source text for the class.
func (c *Class) Render() string {
	var b strings.Builder

	b.WriteString("<?php\n\n")
	b.WriteString("namespace ")
	b.WriteString(c.Namespace)
	b.WriteString(";\n\n")

	for _, imp := range c.Imports {
		b.WriteString("use ")
		b.WriteString(imp)
		b.WriteString(";\n")
	}
	if len(c.Imports) > 0 {
		b.WriteString("\n")
	}

	if c.Doc != "" {
		writeDocBlock(&b, c.Doc)
	}

	b.WriteString("class ")
	b.WriteString(c.Name)
	if c.BaseClass != "" {
		b.WriteString(" extends ")
		b.WriteString(c.BaseClass)
	}
	if len(c.Interfaces) > 0 {
		b.WriteString(" implements ")
		b.WriteString(strings.Join(c.Interfaces, ", "))
	}
	b.WriteString("\n{\n")

	for _, trait := range c.Traits {
		b.WriteString("    use ")
		b.WriteString(trait)
		b.WriteString(";\n")
	}
	if len(c.Traits) > 0 {
		b.WriteString("\n")
	}

	for i, p := range c.properties {
		writeProperty(&b, p)
		if i < len(c.properties)-1 {
			b.WriteString("\n")
		}
	}
	if len(c.properties) > 0 {
		b.WriteString("\n")
	}

	for i, m := range c.methods {
		writeMethod(&b, m)
		if i < len(c.methods)-1 {
			b.WriteString("\n")
		}
	}

	b.WriteString("}\n")
	return b.String()
}

func writeDocBlock(b *strings.Builder, doc string) {
	b.WriteString("/**\n")
	for _, line := range strings.Split(doc, "\n") {
		b.WriteString(" * ")
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString(" */\n")
}

func writeProperty(b *strings.Builder, p Property) {
	indentedDoc(b, p.Doc, "    ")
	b.WriteString("    ")
	b.WriteString(p.Visibility.String())
	b.WriteString(" $")
	b.WriteString(p.Name)
	if p.HasDefault {
		b.WriteString(" = ")
		b.WriteString(p.Default)
	}
	b.WriteString(";\n")
}

func writeMethod(b *strings.Builder, m Method) {
	indentedDoc(b, m.Doc, "    ")
	b.WriteString("    ")
	b.WriteString(m.Visibility.String())
	if m.Static {
		b.WriteString(" static")
	}
	b.WriteString(" function ")
	b.WriteString(m.Name)
	b.WriteString("(")
	for i, p := range m.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		if p.Type != "" {
			if p.Nullable {
				b.WriteString("?")
			}
			b.WriteString(p.Type)
			b.WriteString(" ")
		}
		b.WriteString("$")
		b.WriteString(p.Name)
		if p.HasDefault {
			b.WriteString(" = ")
			b.WriteString(p.Default)
		}
	}
	b.WriteString(")")
	if m.ReturnType != "" {
		b.WriteString(": ")
		if m.Nullable {
			b.WriteString("?")
		}
		b.WriteString(m.ReturnType)
	}
	b.WriteString("\n    {\n")
	for _, line := range strings.Split(m.Body, "\n") {
		if line == "" {
			b.WriteString("\n")
			continue
		}
		b.WriteString("        ")
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("    }\n")
}

func indentedDoc(b *strings.Builder, doc, indent string) {
	if doc == "" {
		return
	}
	b.WriteString(indent)
	b.WriteString("/**\n")
	for _, line := range strings.Split(doc, "\n") {
		b.WriteString(indent)
		b.WriteString(" * ")
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString(indent)
	b.WriteString(" */\n")
}
