package formatter_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/goliatone/go-acfield/pkg/field"
	"github.com/goliatone/go-acfield/pkg/formatter"
	"github.com/goliatone/go-acfield/pkg/hooks"
	"github.com/goliatone/go-acfield/pkg/presets"
	"github.com/goliatone/go-acfield/pkg/sanitize"
	"github.com/goliatone/go-acfield/pkg/store/memory"
)

func newSite() *memory.Site {
	site := memory.New()
	site.SetCurrent("42")
	site.PutItem("42", memory.Item{
		Title:     "Home",
		Permalink: "https://example.com/",
		Fields: map[string]any{
			"name":        "Ada Lovelace",
			"website":     "https://example.com/docs?a=1&b=2",
			"placeholder": "http://",
			"email":       "a@b.com",
			"logo":        9,
			"opening":     "20230115",
			"broken_date": "2023-01-15",
			"related":     []field.Post{{ID: "1"}, {ID: "2"}, {ID: "3"}},
			"related_ids": []any{1, 2},
			"category":    []any{7},
			"missing_cat": []any{99},
			"rating":      "4",
			"zero":        "0",
		},
	})
	site.PutItem("1", memory.Item{Title: "First & Best", Permalink: "https://example.com/first/"})
	site.PutItem("2", memory.Item{Title: "Second", Permalink: "https://example.com/second/"})
	site.PutItem("3", memory.Item{Title: "Third", Permalink: "https://example.com/third/"})
	site.PutItem("77", memory.Item{Fields: map[string]any{"name": "Grace Hopper"}})
	site.SetField(field.ItemOption, "phone", "555-0100")
	site.SetRow(map[string]any{"caption": "Row caption"})
	site.PutTerm("category", field.Term{ID: "7", Name: "News", Slug: "news"})
	site.PutAttachment("9", memory.Attachment{
		Alt: "Logo",
		Sizes: map[string]memory.Image{
			"medium": {URL: "/logo-300.png", Width: 300, Height: 200},
			"full":   {URL: "/logo.png", Width: 1200, Height: 800},
		},
	})
	return site
}

func newFormatter(site *memory.Site, opts ...formatter.Option) *formatter.Formatter {
	base := []formatter.Option{
		formatter.WithStore(site),
		formatter.WithAttachments(site),
		formatter.WithTaxonomy(site),
		formatter.WithContent(site),
	}
	return formatter.New(append(base, opts...)...)
}

func TestFormatBranches(t *testing.T) {
	ctx := context.Background()
	f := newFormatter(newSite())

	cases := []struct {
		name string
		key  string
		cfg  field.Config
		item field.ItemID
		want string
	}{
		{name: "text", key: "name", want: "Ada Lovelace"},
		{name: "text itemprop", key: "name", cfg: field.Config{ItemProp: "name"}, want: `<span itemprop="name">Ada Lovelace</span>`},
		{name: "text label and wrappers", key: "name", cfg: field.Config{Label: "Name", Before: "<p>", After: "</p>"},
			want: `<p><span class="acf-label acf-label-name">Name:</span> Ada Lovelace</p>`},
		{name: "explicit item", key: "name", item: "77", want: "Grace Hopper"},
		{name: "option scope", key: "phone", item: field.ItemOption, want: "555-0100"},
		{name: "sub field", key: "caption", cfg: field.Config{SubField: true}, want: "Row caption"},
		{name: "url", key: "website", cfg: field.Config{Type: field.TypeURL}, want: "https://example.com/docs?a=1&b=2"},
		{name: "link", key: "website", cfg: field.Config{Type: field.TypeLink, LinkText: "Docs", ItemProp: "url"},
			want: `<a href="https://example.com/docs?a=1&amp;b=2" itemprop="url">Docs</a>`},
		{name: "link default text", key: "website", cfg: field.Config{Type: field.TypeLink},
			want: `<a href="https://example.com/docs?a=1&amp;b=2">https://example.com/docs?a=1&b=2</a>`},
		{name: "email", key: "email", cfg: field.Config{Type: field.TypeEmail},
			want: `<a href="mailto:&#97;&#64;&#98;&#46;&#99;o&#109;">&#97;&#64;&#98;&#46;&#99;o&#109;</a>`},
		{name: "email link text", key: "email", cfg: field.Config{Type: field.TypeEmail, LinkText: "Write us"},
			want: `<a href="mailto:&#97;&#64;&#98;&#46;&#99;o&#109;">Write us</a>`},
		{name: "image", key: "logo", cfg: field.Config{Type: field.TypeImage, ImageClass: " hero", ItemProp: "image"},
			want: `<img width="300" height="200" src="/logo-300.png" class="logo hero" alt="Logo" itemprop="image" />`},
		{name: "image size", key: "logo", cfg: field.Config{Type: field.TypeImage, ImageSize: "full"},
			want: `<img width="1200" height="800" src="/logo.png" class="logo" alt="Logo" />`},
		{name: "date", key: "opening", cfg: field.Config{Type: field.TypeDate}, want: "January 15, 2023"},
		{name: "date pattern", key: "opening", cfg: field.Config{Type: field.TypeDate, DateFormat: "d/m/Y"}, want: "15/01/2023"},
		{name: "post list", key: "related", cfg: field.Config{Type: field.TypePostList},
			want: `<a href="https://example.com/first/">First &amp; Best</a>, <a href="https://example.com/second/">Second</a>, <a href="https://example.com/third/">Third</a>`},
		{name: "post list plain", key: "related", cfg: field.Config{Type: field.TypePostList, ListLinks: field.Bool(false), ListSep: field.String(" | ")},
			want: "First &amp; Best | Second | Third"},
		{name: "post list ids", key: "related_ids", cfg: field.Config{Type: field.TypePostList, ListType: field.ListIDs, ListLinks: field.Bool(false)},
			want: "First &amp; Best, Second"},
		{name: "term", key: "category", cfg: field.Config{Type: field.TypeTerm, Taxonomy: "category"}, want: "News"},
		{name: "term link", key: "category", cfg: field.Config{Type: field.TypeTermLink, Taxonomy: "category", Label: "Filed under"},
			want: `<span class="acf-label acf-label-category">Filed under:</span> /category/news/`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := f.Format(ctx, tc.key, tc.cfg, tc.item)
			if err != nil {
				t.Fatalf("format: %v", err)
			}
			if got != tc.want {
				t.Fatalf("output mismatch\nwant: %s\n got: %s", tc.want, got)
			}
		})
	}
}

func TestFormatRendersNothing(t *testing.T) {
	ctx := context.Background()
	site := newSite()
	f := newFormatter(site)

	cases := []struct {
		name string
		f    *formatter.Formatter
		key  string
		cfg  field.Config
	}{
		{name: "empty key", f: f, key: "  "},
		{name: "no store", f: formatter.New(), key: "name"},
		{name: "nil formatter", f: nil, key: "name"},
		{name: "missing field", f: f, key: "nope"},
		{name: "falsy value", f: f, key: "zero"},
		{name: "url placeholder", f: f, key: "placeholder", cfg: field.Config{Type: field.TypeURL, Label: "Site"}},
		{name: "link placeholder", f: f, key: "placeholder", cfg: field.Config{Type: field.TypeLink, Before: "<p>"}},
		{name: "term lookup error", f: f, key: "missing_cat", cfg: field.Config{Type: field.TypeTerm, Taxonomy: "category"}},
		{name: "term link lookup error", f: f, key: "category", cfg: field.Config{Type: field.TypeTermLink, Taxonomy: "tag"}},
		{name: "unknown type without hook", f: f, key: "rating", cfg: field.Config{Type: "foo"}},
		{name: "no attachments", f: formatter.New(formatter.WithStore(site)), key: "logo", cfg: field.Config{Type: field.TypeImage}},
		{name: "no taxonomy", f: formatter.New(formatter.WithStore(site)), key: "category", cfg: field.Config{Type: field.TypeTerm}},
		{name: "no content", f: formatter.New(formatter.WithStore(site)), key: "related", cfg: field.Config{Type: field.TypePostList}},
		{name: "sub field without row value", f: f, key: "name", cfg: field.Config{SubField: true}},
		{name: "bare ids with objects shape", f: f, key: "related_ids", cfg: field.Config{Type: field.TypePostList, Label: "Rel", Before: "<p>", After: "</p>"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.f.Format(ctx, tc.key, tc.cfg, field.ItemCurrent)
			if err != nil {
				t.Fatalf("format: %v", err)
			}
			if got != "" {
				t.Fatalf("expected no output, got %q", got)
			}
		})
	}
}

func TestFormatEmailIsStable(t *testing.T) {
	f := newFormatter(newSite())
	cfg := field.Config{Type: field.TypeEmail}

	first, err := f.Format(context.Background(), "email", cfg, field.ItemCurrent)
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	second, _ := f.Format(context.Background(), "email", cfg, field.ItemCurrent)
	if first != second {
		t.Fatalf("expected identical output, got %q and %q", first, second)
	}
	if !strings.HasPrefix(first, `<a href="mailto:`) || strings.Contains(first, "a@b.com") {
		t.Fatalf("expected obfuscated mailto anchor, got %q", first)
	}
}

func TestFormatInvalidDate(t *testing.T) {
	f := newFormatter(newSite())
	_, err := f.Format(context.Background(), "broken_date", field.Config{Type: field.TypeDate}, field.ItemCurrent)
	if !errors.Is(err, field.ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestFormatCustomTypeUsesHook(t *testing.T) {
	var (
		gotType string
		gotCfg  field.Config
	)
	hook := func(_ context.Context, fieldType string, cfg field.Config) (string, bool) {
		gotType = fieldType
		gotCfg = cfg
		return "<b>custom</b>", true
	}
	f := newFormatter(newSite(), formatter.WithHook(hook))

	overrides := field.Config{Type: "foo", Label: "ignored", Before: "<p>", Extra: map[string]string{"stars": "5"}}
	got, err := f.Format(context.Background(), "rating", overrides, field.ItemCurrent)
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	if got != "<b>custom</b>" {
		t.Fatalf("expected raw hook output, got %q", got)
	}
	if gotType != "foo" {
		t.Fatalf("hook type mismatch: %q", gotType)
	}
	if gotCfg.ImageSize != "" || gotCfg.Extra["stars"] != "5" {
		t.Fatalf("expected original overrides passed to hook, got %#v", gotCfg)
	}
}

func TestFormatCustomTypeSkipsHookWithoutValue(t *testing.T) {
	called := false
	hook := func(context.Context, string, field.Config) (string, bool) {
		called = true
		return "x", true
	}
	f := newFormatter(newSite(), formatter.WithHook(hook))
	got, err := f.Format(context.Background(), "nope", field.Config{Type: "foo"}, field.ItemCurrent)
	if err != nil || got != "" || called {
		t.Fatalf("expected no hook call and no output, got %q (called=%v, err=%v)", got, called, err)
	}
}

func TestFormatCustomTypeWithRegistry(t *testing.T) {
	reg := hooks.New()
	reg.Add("stars", hooks.DefaultPriority, hooks.ForType("rating", func(_ context.Context, cfg field.Config) (string, bool) {
		return strings.Repeat("*", len(cfg.Extra["max"])), true
	}))
	f := newFormatter(newSite(), formatter.WithHooks(reg))

	got, err := f.Format(context.Background(), "rating", field.Config{Type: "rating", Extra: map[string]string{"max": "abc"}}, field.ItemCurrent)
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	if got != "***" {
		t.Fatalf("unexpected registry output %q", got)
	}

	if got, _ := f.Format(context.Background(), "rating", field.Config{Type: "other"}, field.ItemCurrent); got != "" {
		t.Fatalf("expected unhandled type to render nothing, got %q", got)
	}
}

func TestFormatStoreErrorIsReturned(t *testing.T) {
	boom := errors.New("boom")
	f := formatter.New(formatter.WithStore(failingStore{err: boom}))
	_, err := f.Format(context.Background(), "name", field.Config{}, field.ItemCurrent)
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped store error, got %v", err)
	}
}

func TestFormatAttachmentErrorIsReturned(t *testing.T) {
	boom := errors.New("boom")
	site := newSite()
	f := formatter.New(formatter.WithStore(site), formatter.WithAttachments(failingAttachments{err: boom}))
	_, err := f.Format(context.Background(), "logo", field.Config{Type: field.TypeImage}, field.ItemCurrent)
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped attachment error, got %v", err)
	}
}

func TestFormatMergeOrder(t *testing.T) {
	store, err := presets.Parse([]byte(`
defaults:
  date_format: "Y"
fields:
  opening:
    type: date
    date_format: "d.m.Y"
  name:
    label: Preset
`), "inline.yaml")
	if err != nil {
		t.Fatalf("presets: %v", err)
	}

	f := newFormatter(newSite(),
		formatter.WithDefaults(field.Config{DateFormat: "F", Before: "["}),
		formatter.WithPresets(store),
	)

	got, err := f.Format(context.Background(), "opening", field.Config{}, field.ItemCurrent)
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	if got != "[15.01.2023" {
		t.Fatalf("expected field preset to win over defaults, got %q", got)
	}

	got, _ = f.Format(context.Background(), "opening", field.Config{DateFormat: "n/j"}, field.ItemCurrent)
	if got != "[1/15" {
		t.Fatalf("expected caller override to win, got %q", got)
	}

	got, _ = f.Format(context.Background(), "name", field.Config{Label: "Caller"}, field.ItemCurrent)
	if got != `[<span class="acf-label acf-label-name">Caller:</span> Ada Lovelace` {
		t.Fatalf("unexpected label override output %q", got)
	}

	resolved := f.Resolve("name", field.Config{})
	if resolved.DateFormat != "Y" || resolved.Label != "Preset" || resolved.ImageSize != field.DefaultImageSize {
		t.Fatalf("unexpected resolved config %#v", resolved)
	}

	rowStore, err := presets.Parse([]byte(`
fields:
  name:
    before: "<b>"
    sub_field: true
`), "row.yaml")
	if err != nil {
		t.Fatalf("presets: %v", err)
	}
	rowFormatter := newFormatter(newSite(), formatter.WithPresets(rowStore))

	got, err = rowFormatter.Format(context.Background(), "name", field.Config{}, field.ItemCurrent)
	if err != nil || got != "" {
		t.Fatalf("expected preset row lookup to find nothing, got %q (err=%v)", got, err)
	}

	cleared, err := field.ParseArgs("before=&sub_field=0")
	if err != nil {
		t.Fatalf("parse args: %v", err)
	}
	for _, overrides := range []field.Config{cleared, field.Config{}.Without(field.OptBefore, field.OptSubField)} {
		got, err = rowFormatter.Format(context.Background(), "name", overrides, field.ItemCurrent)
		if err != nil {
			t.Fatalf("format: %v", err)
		}
		if got != "Ada Lovelace" {
			t.Fatalf("expected caller to clear preset before/sub_field, got %q", got)
		}
	}
}

func TestFormatSanitizer(t *testing.T) {
	site := newSite()
	site.SetField("42", "bio", `Hi <script>alert(1)</script><em>there</em>`)
	f := newFormatter(site, formatter.WithSanitizer(sanitize.FieldPolicy()))

	got, err := f.Format(context.Background(), "bio", field.Config{ItemProp: "description"}, field.ItemCurrent)
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	if strings.Contains(got, "script") {
		t.Fatalf("expected script removed, got %q", got)
	}
	if !strings.Contains(got, `<span itemprop="description">`) || !strings.Contains(got, "<em>there</em>") {
		t.Fatalf("expected safe markup kept, got %q", got)
	}
}

func TestWrite(t *testing.T) {
	f := newFormatter(newSite())
	var buf bytes.Buffer
	if err := f.Write(context.Background(), &buf, "name", field.Config{Before: "<h1>", After: "</h1>"}, field.ItemCurrent); err != nil {
		t.Fatalf("write: %v", err)
	}
	if buf.String() != "<h1>Ada Lovelace</h1>" {
		t.Fatalf("unexpected written output %q", buf.String())
	}

	buf.Reset()
	if err := f.Write(context.Background(), &buf, "nope", field.Config{}, field.ItemCurrent); err != nil {
		t.Fatalf("write: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected nothing written, got %q", buf.String())
	}
}

type failingStore struct {
	err error
}

func (s failingStore) Field(context.Context, string, field.ItemID) (field.Value, error) {
	return nil, s.err
}

func (s failingStore) SubField(context.Context, string) (field.Value, error) {
	return nil, s.err
}

type failingAttachments struct {
	err error
}

func (a failingAttachments) Image(context.Context, field.ItemID, string, map[string]string) (string, error) {
	return "", a.err
}
