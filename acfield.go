package acfield

import (
	"context"
	"fmt"
	"io"

	"github.com/goliatone/go-acfield/pkg/field"
	"github.com/goliatone/go-acfield/pkg/formatter"
)

// Config aliases field.Config for callers building overrides directly.
type Config = field.Config

// ItemID aliases field.ItemID; the zero value targets the current item.
type ItemID = field.ItemID

// Formatter aliases formatter.Formatter so the quick start needs one import.
type Formatter = formatter.Formatter

// Option aliases formatter.Option.
type Option = formatter.Option

// Item identifiers with special meaning.
const (
	Current = field.ItemCurrent
	Options = field.ItemOption
)

// New exposes the formatter constructor from the top-level module.
func New(options ...Option) *Formatter {
	return formatter.New(options...)
}

// Field parses args (query string, map or Config), then formats key for item
// using a formatter built from options. item accepts anything field.ItemIDFrom
// understands; nil targets the current item.
func Field(ctx context.Context, key string, args any, item any, options ...Option) (string, error) {
	return FieldWith(ctx, formatter.New(options...), key, args, item)
}

// FieldWith is Field for a formatter the caller already built.
func FieldWith(ctx context.Context, f *Formatter, key string, args any, item any) (string, error) {
	cfg, err := field.ParseArgs(args)
	if err != nil {
		return "", fmt.Errorf("acfield: field %q: %w", key, err)
	}
	id, err := itemID(item)
	if err != nil {
		return "", fmt.Errorf("acfield: field %q: %w", key, err)
	}
	return f.Format(ctx, key, cfg, id)
}

// Print writes the formatted field to w, writing nothing when the field has
// no output.
func Print(ctx context.Context, w io.Writer, key string, args any, item any, options ...Option) error {
	out, err := Field(ctx, key, args, item, options...)
	if err != nil {
		return err
	}
	if out == "" {
		return nil
	}
	_, err = io.WriteString(w, out)
	return err
}

func itemID(item any) (ItemID, error) {
	if item == nil {
		return Current, nil
	}
	if id, ok := item.(ItemID); ok {
		return id, nil
	}
	id, ok := field.ItemIDFrom(item)
	if !ok {
		return "", fmt.Errorf("%w: unsupported item %v", field.ErrInvalidArgs, item)
	}
	return id, nil
}
