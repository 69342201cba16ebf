package template

import (
	"context"
	"fmt"

	"github.com/goliatone/go-acfield/pkg/field"
	"github.com/goliatone/go-acfield/pkg/formatter"
)

// FuncName is the name templates use to render a field.
const FuncName = "acf_field"

// Call renders key with the optional trailing arguments used by template
// helpers: rest[0] holds the args (query string, map or field.Config) and
// rest[1] the content item.
func Call(ctx context.Context, f *formatter.Formatter, key string, rest ...any) (string, error) {
	if len(rest) > 2 {
		return "", fmt.Errorf("template: %s accepts at most 3 arguments, got %d", FuncName, len(rest)+1)
	}

	var (
		rawArgs any
		item    field.ItemID
	)
	if len(rest) > 0 {
		rawArgs = rest[0]
	}
	if len(rest) > 1 && rest[1] != nil {
		id, ok := field.ItemIDFrom(rest[1])
		if !ok {
			return "", fmt.Errorf("template: %s: invalid item %v", FuncName, rest[1])
		}
		item = id
	}

	cfg, err := field.ParseArgs(rawArgs)
	if err != nil {
		return "", fmt.Errorf("template: %s %q: %w", FuncName, key, err)
	}
	return f.Format(ctx, key, cfg, item)
}
