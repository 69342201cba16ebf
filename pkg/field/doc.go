// Package field defines the typed configuration, raw value helpers and
// collaborator contracts shared by the formatter, the template adapters and the
// in-memory store. A Config mirrors the host's argument bag (type, label,
// link_text, image_size, ...) as explicit struct fields; Defaults and Merge
// replace the dynamic "parse args onto defaults" step, while ParseArgs accepts
// the loose map or query-string forms template authors are used to writing.
package field
