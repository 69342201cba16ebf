package field

import "strings"

// Type selects the formatting branch used for a field.
type Type string

const (
	TypeText     Type = "text"
	TypeURL      Type = "url"
	TypeLink     Type = "link"
	TypeEmail    Type = "email"
	TypeImage    Type = "image"
	TypeDate     Type = "date"
	TypePostList Type = "post_list"
	TypeTerm     Type = "term"
	TypeTermLink Type = "term_link"
)

// Builtins lists the types the formatter renders itself, in display order.
func Builtins() []Type {
	return []Type{
		TypeText, TypeURL, TypeLink, TypeEmail, TypeImage, TypeDate,
		TypePostList, TypeTerm, TypeTermLink,
	}
}

// Builtin reports whether t is handled by the formatter itself rather than the
// extension hook.
func (t Type) Builtin() bool {
	switch t {
	case TypeText, TypeURL, TypeLink, TypeEmail, TypeImage, TypeDate,
		TypePostList, TypeTerm, TypeTermLink:
		return true
	default:
		return false
	}
}

// ListShape describes the elements of a post_list value.
type ListShape string

const (
	// ListObjects means the value holds content-item records carrying an ID.
	ListObjects ListShape = "objects"
	// ListIDs means the value holds bare identifiers.
	ListIDs ListShape = "ids"
)

// ItemID identifies a content item. The zero value targets the store's current
// item and ItemOption targets site-wide option fields.
type ItemID string

const (
	ItemCurrent ItemID = ""
	ItemOption  ItemID = "option"
)

// String implements fmt.Stringer.
func (id ItemID) String() string {
	return string(id)
}

// IsCurrent reports whether the identifier targets the current item.
func (id ItemID) IsCurrent() bool {
	return strings.TrimSpace(string(id)) == ""
}

// Post is the minimal content-item record used by post_list values.
type Post struct {
	ID        ItemID `json:"ID" yaml:"id"`
	Title     string `json:"post_title,omitempty" yaml:"title,omitempty"`
	Permalink string `json:"permalink,omitempty" yaml:"permalink,omitempty"`
}

// ItemID satisfies the Identified contract.
func (p Post) ItemID() ItemID {
	return p.ID
}

// Identified is implemented by records that expose their content-item ID.
type Identified interface {
	ItemID() ItemID
}

// Term is a single classification value within a taxonomy.
type Term struct {
	ID       ItemID `json:"term_id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Slug     string `json:"slug,omitempty" yaml:"slug,omitempty"`
	Taxonomy string `json:"taxonomy,omitempty" yaml:"taxonomy,omitempty"`
	Link     string `json:"link,omitempty" yaml:"link,omitempty"`
}

// ItemID satisfies the Identified contract.
func (t Term) ItemID() ItemID {
	return t.ID
}
