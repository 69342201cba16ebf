// Package memory provides an in-memory implementation of every collaborator the
// formatter consumes: field storage, repeater rows, content items, taxonomies
// and attachment images. Sites load from YAML fixtures, which makes the package
// the backing store for the CLI and for tests.
package memory

import (
	"context"
	"fmt"
	"html"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/goliatone/go-acfield/pkg/field"
)

// Item is a content item with its custom fields.
type Item struct {
	Title     string         `yaml:"title"`
	Permalink string         `yaml:"permalink"`
	Fields    map[string]any `yaml:"fields"`
}

// Image is one rendered size of an attachment.
type Image struct {
	URL    string `yaml:"url"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// Attachment is an image attachment with named sizes. The "full" size is used
// when a requested size is missing.
type Attachment struct {
	Alt   string           `yaml:"alt"`
	Sizes map[string]Image `yaml:"sizes"`
}

// Site is a goroutine-safe in-memory content store.
type Site struct {
	mu          sync.RWMutex
	current     field.ItemID
	items       map[field.ItemID]Item
	options     map[string]any
	row         map[string]any
	taxonomies  map[string]map[field.ItemID]field.Term
	attachments map[field.ItemID]Attachment
}

var (
	_ field.Store       = (*Site)(nil)
	_ field.Attachments = (*Site)(nil)
	_ field.Taxonomy    = (*Site)(nil)
	_ field.Content     = (*Site)(nil)
)

// New returns an empty site.
func New() *Site {
	return &Site{
		items:       make(map[field.ItemID]Item),
		options:     make(map[string]any),
		taxonomies:  make(map[string]map[field.ItemID]field.Term),
		attachments: make(map[field.ItemID]Attachment),
	}
}

// SetCurrent selects the item used when callers pass field.ItemCurrent.
func (s *Site) SetCurrent(id field.ItemID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = id
}

// Current returns the current item id.
func (s *Site) Current() field.ItemID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// PutItem stores or replaces a content item.
func (s *Site) PutItem(id field.ItemID, item Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[id] = item
}

// SetField stores a single field value on an item (or on site options when id
// is field.ItemOption).
func (s *Site) SetField(id field.ItemID, key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id == field.ItemOption {
		s.options[key] = value
		return
	}
	item := s.items[id]
	if item.Fields == nil {
		item.Fields = make(map[string]any)
	}
	item.Fields[key] = value
	s.items[id] = item
}

// SetRow replaces the active repeater/group row used by SubField. Pass nil to
// leave the row context.
func (s *Site) SetRow(row map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.row = row
}

// PutTerm registers a term under taxonomy.
func (s *Site) PutTerm(taxonomy string, term field.Term) {
	s.mu.Lock()
	defer s.mu.Unlock()
	terms := s.taxonomies[taxonomy]
	if terms == nil {
		terms = make(map[field.ItemID]field.Term)
		s.taxonomies[taxonomy] = terms
	}
	term.Taxonomy = taxonomy
	terms[term.ID] = term
}

// PutAttachment registers an attachment.
func (s *Site) PutAttachment(id field.ItemID, attachment Attachment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attachments[id] = attachment
}

// Field implements field.Store. Unknown items yield no value.
func (s *Site) Field(_ context.Context, key string, item field.ItemID) (field.Value, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if item == field.ItemOption {
		return s.options[key], nil
	}
	if item.IsCurrent() {
		item = s.current
	}
	entry, ok := s.items[item]
	if !ok {
		return nil, nil
	}
	return entry.Fields[key], nil
}

// SubField implements field.Store using the active row.
func (s *Site) SubField(_ context.Context, key string) (field.Value, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.row == nil {
		return nil, nil
	}
	return s.row[key], nil
}

// Permalink implements field.Content.
func (s *Site) Permalink(_ context.Context, id field.ItemID) (string, error) {
	item, err := s.item(id)
	if err != nil {
		return "", err
	}
	return item.Permalink, nil
}

// Title implements field.Content.
func (s *Site) Title(_ context.Context, id field.ItemID) (string, error) {
	item, err := s.item(id)
	if err != nil {
		return "", err
	}
	return item.Title, nil
}

func (s *Site) item(id field.ItemID) (Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if id.IsCurrent() {
		id = s.current
	}
	item, ok := s.items[id]
	if !ok {
		return Item{}, fmt.Errorf("memory: item %q: %w", id, field.ErrItemNotFound)
	}
	return item, nil
}

// Term implements field.Taxonomy.
func (s *Site) Term(_ context.Context, id field.ItemID, taxonomy string) (field.Term, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if strings.TrimSpace(taxonomy) == "" {
		return field.Term{}, fmt.Errorf("memory: taxonomy is required: %w", field.ErrTermNotFound)
	}
	terms, ok := s.taxonomies[taxonomy]
	if !ok {
		return field.Term{}, fmt.Errorf("memory: invalid taxonomy %q: %w", taxonomy, field.ErrTermNotFound)
	}
	term, ok := terms[id]
	if !ok {
		return field.Term{}, fmt.Errorf("memory: term %q in %q: %w", id, taxonomy, field.ErrTermNotFound)
	}
	return term, nil
}

// TermLink implements field.Taxonomy. Terms without an explicit link get
// "/<taxonomy>/<slug>/".
func (s *Site) TermLink(ctx context.Context, id field.ItemID, taxonomy string) (string, error) {
	term, err := s.Term(ctx, id, taxonomy)
	if err != nil {
		return "", err
	}
	if term.Link != "" {
		return term.Link, nil
	}
	slug := term.Slug
	if slug == "" {
		slug = string(term.ID)
	}
	return "/" + taxonomy + "/" + slug + "/", nil
}

// Image implements field.Attachments, rendering an <img> tag. Unknown
// attachments render nothing.
func (s *Site) Image(_ context.Context, id field.ItemID, size string, attrs map[string]string) (string, error) {
	s.mu.RLock()
	attachment, ok := s.attachments[id]
	s.mu.RUnlock()
	if !ok {
		return "", nil
	}

	img, ok := attachment.Sizes[size]
	if !ok {
		img, ok = attachment.Sizes["full"]
	}
	if !ok || img.URL == "" {
		return "", nil
	}

	merged := map[string]string{
		"class": "attachment-" + size + " size-" + size,
		"alt":   attachment.Alt,
	}
	for key, value := range attrs {
		merged[key] = value
	}

	var b strings.Builder
	b.WriteString("<img")
	if img.Width > 0 {
		writeAttr(&b, "width", strconv.Itoa(img.Width))
	}
	if img.Height > 0 {
		writeAttr(&b, "height", strconv.Itoa(img.Height))
	}
	writeAttr(&b, "src", img.URL)
	writeAttr(&b, "class", merged["class"])
	writeAttr(&b, "alt", merged["alt"])

	rest := make([]string, 0, len(merged))
	for key := range merged {
		if key == "class" || key == "alt" || key == "src" {
			continue
		}
		rest = append(rest, key)
	}
	sort.Strings(rest)
	for _, key := range rest {
		writeAttr(&b, key, merged[key])
	}
	b.WriteString(" />")
	return b.String(), nil
}

func writeAttr(b *strings.Builder, name, value string) {
	b.WriteByte(' ')
	b.WriteString(name)
	b.WriteString(`="`)
	b.WriteString(html.EscapeString(value))
	b.WriteByte('"')
}
