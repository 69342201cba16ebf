package formatter

import (
	"log/slog"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-acfield/pkg/field"
	"github.com/goliatone/go-acfield/pkg/hooks"
	"github.com/goliatone/go-acfield/pkg/presets"
)

// Option customises a Formatter.
type Option func(*Formatter)

// WithStore sets the field store. Without one every call renders nothing.
func WithStore(store field.Store) Option {
	return func(f *Formatter) {
		f.store = store
	}
}

// WithAttachments sets the image renderer used by the image type.
func WithAttachments(attachments field.Attachments) Option {
	return func(f *Formatter) {
		f.attachments = attachments
	}
}

// WithTaxonomy sets the term resolver used by term and term_link.
func WithTaxonomy(taxonomy field.Taxonomy) Option {
	return func(f *Formatter) {
		f.taxonomy = taxonomy
	}
}

// WithContent sets the content-item resolver used by post lists.
func WithContent(content field.Content) Option {
	return func(f *Formatter) {
		f.content = content
	}
}

// WithObfuscator overrides the e-mail encoder.
func WithObfuscator(obfuscator field.Obfuscator) Option {
	return func(f *Formatter) {
		if obfuscator != nil {
			f.obfuscator = obfuscator
		}
	}
}

// WithHook sets the callback used for caller-defined field types.
func WithHook(hook field.Hook) Option {
	return func(f *Formatter) {
		f.hook = hook
	}
}

// WithHooks routes caller-defined field types through a filter registry.
func WithHooks(registry *hooks.Registry) Option {
	return func(f *Formatter) {
		if registry != nil {
			f.hook = registry.Hook()
		}
	}
}

// WithDefaults overlays site-wide defaults on top of the built-in ones.
func WithDefaults(cfg field.Config) Option {
	return func(f *Formatter) {
		f.siteDefaults = field.Merge(f.siteDefaults, cfg)
	}
}

// WithPresets supplies per-field presets applied beneath caller overrides.
func WithPresets(store *presets.Store) Option {
	return func(f *Formatter) {
		f.presets = store
	}
}

// WithSanitizer runs every built-in branch's output through policy.
func WithSanitizer(policy *bluemonday.Policy) Option {
	return func(f *Formatter) {
		f.sanitizer = policy
	}
}

// WithLogger sets the logger used for debug traces of silent exits.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Formatter) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// WithLocation sets the zone stored date values are interpreted in.
func WithLocation(loc *time.Location) Option {
	return func(f *Formatter) {
		if loc != nil {
			f.location = loc
		}
	}
}
