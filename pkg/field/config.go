package field

import (
	"maps"
	"slices"
	"strings"
)

const (
	DefaultImageSize  = "medium"
	DefaultDateFormat = "F j, Y"
	DefaultListSep    = ", "
	// DateInputPattern is the fixed pattern date fields are stored with.
	DateInputPattern = "Ymd"
	// URLPlaceholder is the stock default value of url/link fields. It is
	// treated as unset.
	URLPlaceholder = "http://"
)

// Config describes how a single field is rendered. Zero-valued fields mean
// "not set" and are filled in by Merge; ListSep and ListLinks are pointers
// because their empty values are meaningful. Clear names the options the
// caller explicitly emptied, see Clearable.
type Config struct {
	Type       Type              `json:"type,omitempty" yaml:"type,omitempty"`
	Label      string            `json:"label,omitempty" yaml:"label,omitempty"`
	LinkText   string            `json:"link_text,omitempty" yaml:"link_text,omitempty"`
	ImageSize  string            `json:"image_size,omitempty" yaml:"image_size,omitempty"`
	ImageClass string            `json:"image_class,omitempty" yaml:"image_class,omitempty"`
	ItemProp   string            `json:"itemprop,omitempty" yaml:"itemprop,omitempty"`
	DateFormat string            `json:"date_format,omitempty" yaml:"date_format,omitempty"`
	Before     string            `json:"before,omitempty" yaml:"before,omitempty"`
	After      string            `json:"after,omitempty" yaml:"after,omitempty"`
	SubField   bool              `json:"sub_field,omitempty" yaml:"sub_field,omitempty"`
	ListSep    *string           `json:"list_sep,omitempty" yaml:"list_sep,omitempty"`
	ListLinks  *bool             `json:"list_links,omitempty" yaml:"list_links,omitempty"`
	ListType   ListShape         `json:"list_type,omitempty" yaml:"list_type,omitempty"`
	Taxonomy   string            `json:"taxonomy,omitempty" yaml:"taxonomy,omitempty"`
	Extra      map[string]string `json:"extra,omitempty" yaml:"extra,omitempty"`
	Clear      []string          `json:"clear,omitempty" yaml:"clear,omitempty"`
}

// Options whose empty value is meaningful and can therefore be cleared by a
// later layer. Options with a built-in default (type, image_size,
// date_format, list_type) fall back to it when left empty instead.
const (
	OptLabel      = "label"
	OptLinkText   = "link_text"
	OptImageClass = "image_class"
	OptItemProp   = "itemprop"
	OptBefore     = "before"
	OptAfter      = "after"
	OptSubField   = "sub_field"
	OptTaxonomy   = "taxonomy"
)

// Clearable reports whether option can be listed in Config.Clear.
func Clearable(option string) bool {
	switch option {
	case OptLabel, OptLinkText, OptImageClass, OptItemProp,
		OptBefore, OptAfter, OptSubField, OptTaxonomy:
		return true
	default:
		return false
	}
}

// Without returns a copy of c that clears options when merged over earlier
// layers.
func (c Config) Without(options ...string) Config {
	out := c.Clone()
	for _, option := range options {
		if Clearable(option) && !slices.Contains(out.Clear, option) {
			out.Clear = append(out.Clear, option)
		}
	}
	return out
}

// Defaults returns the built-in configuration every call starts from.
func Defaults() Config {
	return Config{
		Type:       TypeText,
		ImageSize:  DefaultImageSize,
		DateFormat: DefaultDateFormat,
		ListSep:    String(DefaultListSep),
		ListLinks:  Bool(true),
		ListType:   ListObjects,
	}
}

// Merge overlays the set fields of each override onto base, left to right.
// Options an override lists in Clear are reset before its set fields apply.
// Extra maps are merged key by key. The result has no Clear list.
func Merge(base Config, overrides ...Config) Config {
	out := base.Clone()
	out.Clear = nil
	for _, o := range overrides {
		for _, option := range o.Clear {
			out.reset(option)
		}
		if o.Type != "" {
			out.Type = o.Type
		}
		if o.Label != "" {
			out.Label = o.Label
		}
		if o.LinkText != "" {
			out.LinkText = o.LinkText
		}
		if o.ImageSize != "" {
			out.ImageSize = o.ImageSize
		}
		if o.ImageClass != "" {
			out.ImageClass = o.ImageClass
		}
		if o.ItemProp != "" {
			out.ItemProp = o.ItemProp
		}
		if o.DateFormat != "" {
			out.DateFormat = o.DateFormat
		}
		if o.Before != "" {
			out.Before = o.Before
		}
		if o.After != "" {
			out.After = o.After
		}
		if o.SubField {
			out.SubField = true
		}
		if o.ListSep != nil {
			out.ListSep = String(*o.ListSep)
		}
		if o.ListLinks != nil {
			out.ListLinks = Bool(*o.ListLinks)
		}
		if o.ListType != "" {
			out.ListType = o.ListType
		}
		if o.Taxonomy != "" {
			out.Taxonomy = o.Taxonomy
		}
		if len(o.Extra) > 0 {
			if out.Extra == nil {
				out.Extra = make(map[string]string, len(o.Extra))
			}
			maps.Copy(out.Extra, o.Extra)
		}
	}
	return out
}

func (c *Config) reset(option string) {
	switch option {
	case OptLabel:
		c.Label = ""
	case OptLinkText:
		c.LinkText = ""
	case OptImageClass:
		c.ImageClass = ""
	case OptItemProp:
		c.ItemProp = ""
	case OptBefore:
		c.Before = ""
	case OptAfter:
		c.After = ""
	case OptSubField:
		c.SubField = false
	case OptTaxonomy:
		c.Taxonomy = ""
	}
}

// Clone returns a copy that shares no pointers or maps with c.
func (c Config) Clone() Config {
	out := c
	if c.ListSep != nil {
		out.ListSep = String(*c.ListSep)
	}
	if c.ListLinks != nil {
		out.ListLinks = Bool(*c.ListLinks)
	}
	if c.Extra != nil {
		out.Extra = maps.Clone(c.Extra)
	}
	if c.Clear != nil {
		out.Clear = slices.Clone(c.Clear)
	}
	return out
}

// FieldType returns the normalised type, defaulting to text.
func (c Config) FieldType() Type {
	t := Type(strings.TrimSpace(string(c.Type)))
	if t == "" {
		return TypeText
	}
	return t
}

// Separator returns the post_list separator, falling back to the default.
func (c Config) Separator() string {
	if c.ListSep == nil {
		return DefaultListSep
	}
	return *c.ListSep
}

// Links reports whether post_list titles are linked.
func (c Config) Links() bool {
	if c.ListLinks == nil {
		return true
	}
	return *c.ListLinks
}

// Shape returns the post_list element shape, defaulting to objects.
func (c Config) Shape() ListShape {
	if c.ListType == "" {
		return ListObjects
	}
	return c.ListType
}

// String returns a pointer to s.
func String(s string) *string {
	return &s
}

// Bool returns a pointer to b.
func Bool(b bool) *bool {
	return &b
}
