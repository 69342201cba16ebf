// Package formatter renders a single custom field as an HTML fragment. A
// Formatter fetches the raw value from a field.Store, resolves the effective
// configuration (built-in defaults, WithDefaults, theme tokens, presets, then
// caller overrides) and dispatches on the declared type: text, url, link,
// email, image, date, post_list, term, term_link, or a caller-defined type
// handled by the extension hook. Missing values and failed term lookups yield
// no output rather than an error.
package formatter
