package prompt

import (
	"context"
	"errors"
	"strings"

	"github.com/goliatone/go-acfield/pkg/field"
)

// Request is the field call assembled by the wizard.
type Request struct {
	Key  string
	Args field.Config
	Item field.ItemID
}

// Configured returns the options already configured for a field key outside
// the request, such as presets.
type Configured func(key string) field.Config

// Complete asks for whatever req is missing: the field key, its type and the
// options that type reads, an optional label and the target item. Options the
// caller set, or that configured supplies for the key, are left alone.
func Complete(ctx context.Context, d Driver, req Request, configured Configured) (Request, error) {
	if strings.TrimSpace(req.Key) == "" {
		key, err := d.Input(ctx, InputConfig{
			Message:   "Field key",
			Help:      "Name of the custom field to render.",
			Validator: required,
		})
		if err != nil {
			return req, err
		}
		req.Key = strings.TrimSpace(key)
	}

	known := req.Args
	if configured != nil {
		known = field.Merge(configured(req.Key), req.Args)
	}

	if known.Type == "" {
		types := field.Builtins()
		options := make([]string, len(types))
		for i, t := range types {
			options[i] = string(t)
		}
		idx, err := d.Select(ctx, SelectConfig{Message: "Field type", Options: options})
		if err != nil {
			return req, err
		}
		if idx >= 0 && idx < len(types) {
			req.Args.Type = types[idx]
			known.Type = types[idx]
		}
	}

	if err := askTypeOptions(ctx, d, known, &req.Args); err != nil {
		return req, err
	}

	if known.Label == "" {
		withLabel, err := d.Confirm(ctx, ConfirmConfig{Message: "Add a label?"})
		if err != nil {
			return req, err
		}
		if withLabel {
			label, err := d.Input(ctx, InputConfig{Message: "Label", Validator: required})
			if err != nil {
				return req, err
			}
			req.Args.Label = strings.TrimSpace(label)
		}
	}

	if req.Item.IsCurrent() {
		item, err := d.Input(ctx, InputConfig{
			Message: "Item",
			Help:    `Blank for the current item, "option" for site options.`,
		})
		if err != nil {
			return req, err
		}
		req.Item = field.ItemID(strings.TrimSpace(item))
	}
	return req, nil
}

// askTypeOptions prompts for the options known's type reads and that known
// does not hold yet, writing answers into args.
func askTypeOptions(ctx context.Context, d Driver, known field.Config, args *field.Config) error {
	var err error
	switch known.FieldType() {
	case field.TypeLink, field.TypeEmail:
		if known.LinkText == "" {
			args.LinkText, err = d.Input(ctx, InputConfig{Message: "Link text", Help: "Blank to show the value."})
		}
	case field.TypeImage:
		if known.ImageSize == "" {
			args.ImageSize, err = d.Input(ctx, InputConfig{Message: "Image size", Default: field.DefaultImageSize})
		}
	case field.TypeDate:
		if known.DateFormat == "" {
			args.DateFormat, err = d.Input(ctx, InputConfig{Message: "Date format", Default: field.DefaultDateFormat})
		}
	case field.TypeTerm, field.TypeTermLink:
		if known.Taxonomy == "" {
			args.Taxonomy, err = d.Input(ctx, InputConfig{Message: "Taxonomy", Validator: required})
		}
	case field.TypePostList:
		if known.ListType == "" {
			var idx int
			idx, err = d.Select(ctx, SelectConfig{
				Message: "List holds",
				Options: []string{string(field.ListObjects), string(field.ListIDs)},
			})
			if err == nil && idx == 1 {
				args.ListType = field.ListIDs
			}
		}
	}
	return err
}

func required(value string) error {
	if strings.TrimSpace(value) == "" {
		return errors.New("value is required")
	}
	return nil
}
