package memory

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-acfield/pkg/field"
)

type fixtureFile struct {
	Current     string                           `yaml:"current"`
	Items       map[string]Item                  `yaml:"items"`
	Options     map[string]any                   `yaml:"options"`
	Row         map[string]any                   `yaml:"row"`
	Taxonomies  map[string]map[string]field.Term `yaml:"taxonomies"`
	Attachments map[string]Attachment            `yaml:"attachments"`
}

// Load decodes a YAML site fixture:
//
//	current: "42"
//	items:
//	  "42":
//	    title: Hello
//	    permalink: https://example.com/hello/
//	    fields: {website: https://example.com}
//	options: {phone: "555-0100"}
//	taxonomies:
//	  category:
//	    "7": {name: News, slug: news}
//	attachments:
//	  "9": {alt: Logo, sizes: {medium: {url: /logo-300.png, width: 300, height: 200}}}
func Load(r io.Reader) (*Site, error) {
	var doc fixtureFile
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return New(), nil
		}
		return nil, fmt.Errorf("memory: decode fixture: %w", err)
	}

	site := New()
	site.current = field.ItemID(doc.Current)
	for id, item := range doc.Items {
		site.items[field.ItemID(id)] = item
	}
	for key, value := range doc.Options {
		site.options[key] = value
	}
	site.row = doc.Row
	for taxonomy, terms := range doc.Taxonomies {
		for id, term := range terms {
			if term.ID == "" {
				term.ID = field.ItemID(id)
			}
			site.PutTerm(taxonomy, term)
		}
	}
	for id, attachment := range doc.Attachments {
		site.attachments[field.ItemID(id)] = attachment
	}
	return site, nil
}

// LoadFile reads a YAML fixture from disk.
func LoadFile(path string) (*Site, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("memory: open fixture: %w", err)
	}
	defer f.Close()
	return Load(f)
}
