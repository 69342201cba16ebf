package template

import (
	"context"
	htmltemplate "html/template"

	"github.com/goliatone/go-acfield/pkg/formatter"
)

// FuncMap returns html/template helpers backed by f:
//
//	{{ acfField "website" "type=link&link_text=Visit" }}
//	{{ acfField "name" "" .PostID }}
//
// Output is trusted markup, matching the formatter's contract.
func FuncMap(f *formatter.Formatter) htmltemplate.FuncMap {
	return htmltemplate.FuncMap{
		"acfField": func(key string, rest ...any) (htmltemplate.HTML, error) {
			out, err := Call(context.Background(), f, key, rest...)
			if err != nil {
				return "", err
			}
			return htmltemplate.HTML(out), nil
		},
	}
}
