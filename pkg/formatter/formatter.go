package formatter

import (
	"context"
	"fmt"
	"html"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-acfield/pkg/antispam"
	"github.com/goliatone/go-acfield/pkg/dateformat"
	"github.com/goliatone/go-acfield/pkg/field"
	"github.com/goliatone/go-acfield/pkg/presets"
	"github.com/goliatone/go-acfield/pkg/sanitize"
)

// Formatter renders fields. It is immutable after New and safe for concurrent
// use as long as its collaborators are.
type Formatter struct {
	store       field.Store
	attachments field.Attachments
	taxonomy    field.Taxonomy
	content     field.Content
	obfuscator  field.Obfuscator
	hook        field.Hook

	siteDefaults  field.Config
	themeDefaults field.Config
	presets       *presets.Store

	sanitizer *bluemonday.Policy
	logger    *slog.Logger
	location  *time.Location
	initErr   error
}

// New constructs a Formatter. Collaborators are optional; branches that need a
// missing collaborator render nothing.
func New(options ...Option) *Formatter {
	f := &Formatter{
		obfuscator: antispam.Encoder{},
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		location:   time.UTC,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(f)
	}
	return f
}

// Format renders fieldKey for item. overrides holds only the options the caller
// set; the empty string with a nil error means there is nothing to render.
func (f *Formatter) Format(ctx context.Context, fieldKey string, overrides field.Config, item field.ItemID) (string, error) {
	if f == nil {
		return "", nil
	}
	if f.initErr != nil {
		return "", f.initErr
	}

	key := strings.TrimSpace(fieldKey)
	if key == "" || f.store == nil {
		f.logger.DebugContext(ctx, "field skipped: no key or store", slog.String("field", key))
		return "", nil
	}

	cfg := f.Resolve(key, overrides)
	fieldType := cfg.FieldType()

	raw, err := f.fetch(ctx, key, cfg, item)
	if err != nil {
		return "", fmt.Errorf("formatter: fetch %q: %w", key, err)
	}
	if field.IsEmpty(raw) {
		f.logger.DebugContext(ctx, "field skipped: no value",
			slog.String("field", key), slog.String("type", string(fieldType)))
		return "", nil
	}

	if !fieldType.Builtin() {
		return f.custom(ctx, key, fieldType, overrides), nil
	}

	output, ok, err := f.render(ctx, key, fieldType, cfg, raw)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", nil
	}

	out := cfg.Before + labelMarkup(key, cfg.Label) + output + cfg.After
	if f.sanitizer != nil {
		out = sanitize.HTML(f.sanitizer, out)
	}
	return out, nil
}

// Write renders fieldKey and writes the result to w.
func (f *Formatter) Write(ctx context.Context, w io.Writer, fieldKey string, overrides field.Config, item field.ItemID) error {
	out, err := f.Format(ctx, fieldKey, overrides, item)
	if err != nil {
		return err
	}
	if out == "" {
		return nil
	}
	_, err = io.WriteString(w, out)
	return err
}

// Resolve returns the effective configuration for fieldKey: built-in defaults,
// then WithDefaults, theme tokens, preset defaults, the field preset and
// finally overrides.
func (f *Formatter) Resolve(fieldKey string, overrides field.Config) field.Config {
	layers := []field.Config{f.siteDefaults, f.themeDefaults}
	if f.presets != nil {
		layers = append(layers, f.presets.Defaults())
		if preset, ok := f.presets.Config(fieldKey); ok {
			layers = append(layers, preset)
		}
	}
	layers = append(layers, overrides)
	return field.Merge(field.Defaults(), layers...)
}

func (f *Formatter) fetch(ctx context.Context, key string, cfg field.Config, item field.ItemID) (field.Value, error) {
	if cfg.SubField {
		return f.store.SubField(ctx, key)
	}
	return f.store.Field(ctx, key, item)
}

func (f *Formatter) custom(ctx context.Context, key string, fieldType field.Type, overrides field.Config) string {
	if f.hook == nil {
		f.logger.DebugContext(ctx, "field skipped: unknown type",
			slog.String("field", key), slog.String("type", string(fieldType)))
		return ""
	}
	out, ok := f.hook(ctx, string(fieldType), overrides.Clone())
	if !ok {
		return ""
	}
	return out
}

func (f *Formatter) render(ctx context.Context, key string, fieldType field.Type, cfg field.Config, raw field.Value) (string, bool, error) {
	switch fieldType {
	case field.TypeText:
		value := field.Stringify(raw)
		if cfg.ItemProp != "" {
			return "<span" + itempropAttr(cfg.ItemProp) + ">" + value + "</span>", true, nil
		}
		return value, true, nil

	case field.TypeURL:
		value := field.Stringify(raw)
		if value == field.URLPlaceholder {
			return "", false, nil
		}
		return value, true, nil

	case field.TypeLink:
		value := field.Stringify(raw)
		if value == field.URLPlaceholder {
			return "", false, nil
		}
		text := cfg.LinkText
		if text == "" {
			text = value
		}
		return fmt.Sprintf(`<a href="%s"%s>%s</a>`, html.EscapeString(value), itempropAttr(cfg.ItemProp), text), true, nil

	case field.TypeEmail:
		encoded := f.obfuscator.Obfuscate(field.Stringify(raw))
		text := cfg.LinkText
		if text == "" {
			text = encoded
		}
		return fmt.Sprintf(`<a href="mailto:%s"%s>%s</a>`, encoded, itempropAttr(cfg.ItemProp), text), true, nil

	case field.TypeImage:
		return f.image(ctx, key, cfg, raw)

	case field.TypeDate:
		value := field.Stringify(raw)
		t, err := dateformat.Parse(field.DateInputPattern, value, f.location)
		if err != nil {
			return "", false, fmt.Errorf("formatter: field %q: %w: %v", key, field.ErrInvalidDate, err)
		}
		return dateformat.Format(t, cfg.DateFormat), true, nil

	case field.TypePostList:
		if f.content == nil {
			f.logger.DebugContext(ctx, "field skipped: no content resolver", slog.String("field", key))
			return "", false, nil
		}
		out, err := f.RenderPostList(ctx, raw, cfg.Separator(), "", "", cfg.Links(), cfg.Shape())
		if err != nil {
			return "", false, fmt.Errorf("formatter: field %q: %w", key, err)
		}
		if out == "" {
			f.logger.DebugContext(ctx, "field skipped: no list entries", slog.String("field", key))
			return "", false, nil
		}
		return out, true, nil

	case field.TypeTerm, field.TypeTermLink:
		return f.term(ctx, key, fieldType, cfg, raw)
	}
	return "", false, nil
}

func (f *Formatter) image(ctx context.Context, key string, cfg field.Config, raw field.Value) (string, bool, error) {
	if f.attachments == nil {
		f.logger.DebugContext(ctx, "field skipped: no attachment renderer", slog.String("field", key))
		return "", false, nil
	}
	id, ok := field.ItemIDFrom(raw)
	if !ok {
		f.logger.DebugContext(ctx, "field skipped: value is not an attachment id", slog.String("field", key))
		return "", false, nil
	}

	attrs := map[string]string{"class": key + cfg.ImageClass}
	if cfg.ItemProp != "" {
		attrs["itemprop"] = cfg.ItemProp
	}
	out, err := f.attachments.Image(ctx, id, cfg.ImageSize, attrs)
	if err != nil {
		return "", false, fmt.Errorf("formatter: field %q: render attachment %q: %w", key, id, err)
	}
	return out, true, nil
}

func (f *Formatter) term(ctx context.Context, key string, fieldType field.Type, cfg field.Config, raw field.Value) (string, bool, error) {
	if f.taxonomy == nil {
		f.logger.DebugContext(ctx, "field skipped: no taxonomy resolver", slog.String("field", key))
		return "", false, nil
	}
	first, _ := field.First(raw)
	id, ok := field.ItemIDFrom(first)
	if !ok {
		return "", false, nil
	}

	var (
		out string
		err error
	)
	if fieldType == field.TypeTerm {
		var term field.Term
		term, err = f.taxonomy.Term(ctx, id, cfg.Taxonomy)
		out = term.Name
	} else {
		out, err = f.taxonomy.TermLink(ctx, id, cfg.Taxonomy)
	}
	if err != nil {
		f.logger.DebugContext(ctx, "field skipped: term lookup failed",
			slog.String("field", key),
			slog.String("type", string(fieldType)),
			slog.String("taxonomy", cfg.Taxonomy),
			slog.Any("error", err))
		return "", false, nil
	}
	return out, true, nil
}

func labelMarkup(key, label string) string {
	if label == "" {
		return ""
	}
	return `<span class="acf-label acf-label-` + html.EscapeString(key) + `">` + label + `:</span> `
}

func itempropAttr(itemprop string) string {
	if itemprop == "" {
		return ""
	}
	return ` itemprop="` + html.EscapeString(itemprop) + `"`
}
