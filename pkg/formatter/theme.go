package formatter

import (
	"fmt"
	"maps"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-acfield/pkg/field"
)

// ThemeTokenPrefix namespaces the theme tokens read as field defaults, e.g.
// "acf.image_size" or "acf.date_format".
const ThemeTokenPrefix = "acf."

// WithThemeSelection reads field defaults from the selected theme's tokens,
// letting variant tokens override the manifest's.
func WithThemeSelection(selection *theme.Selection) Option {
	return func(f *Formatter) {
		cfg, err := ThemeDefaults(selection)
		if err != nil {
			f.initErr = err
			return
		}
		f.themeDefaults = cfg
	}
}

// WithThemeSelector resolves name/variant through selector when the Formatter
// is built. Selection failures surface from every Format call.
func WithThemeSelector(selector theme.ThemeSelector, name, variant string) Option {
	return func(f *Formatter) {
		if selector == nil {
			return
		}
		selection, err := selector.Select(name, variant)
		if err != nil {
			f.initErr = fmt.Errorf("formatter: select theme %q/%q: %w", name, variant, err)
			return
		}
		WithThemeSelection(selection)(f)
	}
}

// ThemeDefaults converts the "acf."-prefixed tokens of selection into a
// Config.
func ThemeDefaults(selection *theme.Selection) (field.Config, error) {
	if selection == nil || selection.Manifest == nil {
		return field.Config{}, nil
	}

	tokens := make(map[string]string, len(selection.Manifest.Tokens))
	maps.Copy(tokens, selection.Manifest.Tokens)
	if variant, ok := selection.Manifest.Variants[selection.Variant]; ok {
		maps.Copy(tokens, variant.Tokens)
	}

	args := make(map[string]string)
	for key, value := range tokens {
		if name, ok := strings.CutPrefix(key, ThemeTokenPrefix); ok && name != "" {
			args[name] = value
		}
	}
	if len(args) == 0 {
		return field.Config{}, nil
	}

	cfg, err := field.ParseArgs(args)
	if err != nil {
		return field.Config{}, fmt.Errorf("formatter: theme %q tokens: %w", selection.Theme, err)
	}
	return cfg, nil
}
