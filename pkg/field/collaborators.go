package field

import "context"

// Value is the untyped raw value returned by a Store. Its shape depends on the
// declared field type and is interpreted by the formatter.
type Value = any

// Store retrieves raw field values.
type Store interface {
	// Field returns the value stored under key for the given item.
	Field(ctx context.Context, key string, item ItemID) (Value, error)
	// SubField returns key from the current repeater/group row.
	SubField(ctx context.Context, key string) (Value, error)
}

// Attachments renders attachment images as HTML.
type Attachments interface {
	Image(ctx context.Context, id ItemID, size string, attrs map[string]string) (string, error)
}

// Taxonomy resolves terms. Implementations return an error (ErrTermNotFound or
// otherwise) when the lookup fails.
type Taxonomy interface {
	Term(ctx context.Context, id ItemID, taxonomy string) (Term, error)
	TermLink(ctx context.Context, id ItemID, taxonomy string) (string, error)
}

// Content resolves content-item metadata.
type Content interface {
	Permalink(ctx context.Context, id ItemID) (string, error)
	Title(ctx context.Context, id ItemID) (string, error)
}

// Obfuscator encodes e-mail addresses to make harvesting harder.
type Obfuscator interface {
	Obfuscate(email string) string
}

// ObfuscatorFunc adapts a plain function to Obfuscator.
type ObfuscatorFunc func(email string) string

// Obfuscate calls fn.
func (fn ObfuscatorFunc) Obfuscate(email string) string {
	return fn(email)
}

// Hook renders caller-defined field types. It receives the caller's original
// overrides (not merged with defaults). ok=false means no output.
type Hook func(ctx context.Context, fieldType string, cfg Config) (output string, ok bool)
