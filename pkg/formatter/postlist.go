package formatter

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"strings"

	"github.com/goliatone/go-acfield/pkg/field"
)

// RenderPostList renders items as sep-joined titles wrapped in before and
// after. With links set each title is wrapped in an anchor to the item's
// permalink. shape tells whether items are records carrying an ID (objects) or
// bare identifiers (ids); records without an ID are skipped. An empty list
// renders nothing.
func (f *Formatter) RenderPostList(ctx context.Context, items field.Value, sep, before, after string, links bool, shape field.ListShape) (string, error) {
	if field.IsEmpty(items) {
		return "", nil
	}
	if f == nil || f.content == nil {
		if f != nil {
			f.logger.DebugContext(ctx, "post list skipped: no content resolver")
		}
		return "", nil
	}

	ids := f.listIDs(ctx, field.Items(items), shape)
	rendered := make([]string, 0, len(ids))
	for _, id := range ids {
		title, err := f.content.Title(ctx, id)
		if err != nil {
			return "", fmt.Errorf("post list: title %q: %w", id, err)
		}
		if !links {
			rendered = append(rendered, html.EscapeString(title))
			continue
		}
		permalink, err := f.content.Permalink(ctx, id)
		if err != nil {
			return "", fmt.Errorf("post list: permalink %q: %w", id, err)
		}
		rendered = append(rendered, `<a href="`+html.EscapeString(permalink)+`">`+html.EscapeString(title)+`</a>`)
	}

	return before + strings.Join(rendered, sep) + after, nil
}

func (f *Formatter) listIDs(ctx context.Context, items []field.Value, shape field.ListShape) []field.ItemID {
	ids := make([]field.ItemID, 0, len(items))
	for idx, item := range items {
		var (
			id field.ItemID
			ok bool
		)
		if shape == field.ListIDs {
			id, ok = field.ItemIDFrom(item)
		} else {
			id, ok = pluckID(item)
		}
		if !ok {
			f.logger.DebugContext(ctx, "post list entry skipped",
				slog.Int("index", idx), slog.String("list_type", string(shape)))
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

// pluckID reads the ID of a record, refusing bare scalars.
func pluckID(item field.Value) (field.ItemID, bool) {
	switch item.(type) {
	case nil, string, field.ItemID, int, int32, int64, uint, uint32, uint64, float64:
		return "", false
	}
	return field.ItemIDFrom(item)
}
