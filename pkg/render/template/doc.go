// Package template exposes the field formatter to template engines. Call
// implements the shared "acf_field(key, args, item)" calling convention,
// FuncMap wires it into html/template, and the gotemplate subpackage wires it
// into a pongo2 engine behind the TemplateRenderer seam.
package template
