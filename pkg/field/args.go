package field

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// ParseArgs converts the loose argument forms accepted by template helpers into
// a Config holding only the options the caller set. Supported inputs are nil,
// Config, *Config, map[string]any, map[string]string, url.Values and query
// strings such as "type=link&label=Website". Unknown keys are kept in Extra so
// caller-defined types can read them.
func ParseArgs(raw any) (Config, error) {
	switch v := raw.(type) {
	case nil:
		return Config{}, nil
	case Config:
		return v.Clone(), nil
	case *Config:
		if v == nil {
			return Config{}, nil
		}
		return v.Clone(), nil
	case string:
		trimmed := strings.TrimPrefix(strings.TrimSpace(v), "?")
		if trimmed == "" {
			return Config{}, nil
		}
		values, err := url.ParseQuery(trimmed)
		if err != nil {
			return Config{}, fmt.Errorf("%w: parse query %q: %v", ErrInvalidArgs, v, err)
		}
		return fromValues(values)
	case url.Values:
		return fromValues(v)
	case map[string]string:
		values := make(map[string]any, len(v))
		for key, value := range v {
			values[key] = value
		}
		return fromMap(values)
	case map[string]any:
		return fromMap(v)
	default:
		return Config{}, fmt.Errorf("%w: unsupported type %T", ErrInvalidArgs, raw)
	}
}

func fromValues(values url.Values) (Config, error) {
	flat := make(map[string]any, len(values))
	for key, list := range values {
		if len(list) == 0 {
			continue
		}
		flat[key] = list[len(list)-1]
	}
	return fromMap(flat)
}

func fromMap(values map[string]any) (Config, error) {
	var cfg Config

	// Sorted so error messages are stable.
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, rawKey := range keys {
		key := strings.ToLower(strings.TrimSpace(rawKey))
		value := values[rawKey]
		if key == "" {
			continue
		}

		switch key {
		case "type":
			cfg.Type = Type(Stringify(value))
		case OptLabel:
			cfg.Label = optionalString(value)
		case OptLinkText:
			cfg.LinkText = optionalString(value)
		case "image_size":
			cfg.ImageSize = Stringify(value)
		case OptImageClass:
			cfg.ImageClass = optionalString(value)
		case OptItemProp:
			cfg.ItemProp = optionalString(value)
		case "date_format":
			cfg.DateFormat = Stringify(value)
		case OptBefore:
			cfg.Before = Stringify(value)
		case OptAfter:
			cfg.After = Stringify(value)
		case OptSubField:
			b, err := parseBool(value)
			if err != nil {
				return Config{}, fmt.Errorf("%w: sub_field: %v", ErrInvalidArgs, err)
			}
			cfg.SubField = b
		case "list_sep":
			cfg.ListSep = String(Stringify(value))
		case "list_links":
			b, err := parseBool(value)
			if err != nil {
				return Config{}, fmt.Errorf("%w: list_links: %v", ErrInvalidArgs, err)
			}
			cfg.ListLinks = Bool(b)
		case "list_type":
			cfg.ListType = ListShape(Stringify(value))
		case OptTaxonomy:
			cfg.Taxonomy = optionalString(value)
		default:
			if cfg.Extra == nil {
				cfg.Extra = make(map[string]string)
			}
			cfg.Extra[key] = Stringify(value)
			continue
		}
		if Clearable(key) && cfg.isEmpty(key) {
			cfg = cfg.Without(key)
		}
	}
	return cfg, nil
}

// isEmpty reports whether a clearable option holds its zero value.
func (c Config) isEmpty(option string) bool {
	if option == OptSubField {
		return !c.SubField
	}
	return optionValue(c, option) == ""
}

func optionValue(c Config, option string) string {
	switch option {
	case OptLabel:
		return c.Label
	case OptLinkText:
		return c.LinkText
	case OptImageClass:
		return c.ImageClass
	case OptItemProp:
		return c.ItemProp
	case OptBefore:
		return c.Before
	case OptAfter:
		return c.After
	case OptTaxonomy:
		return c.Taxonomy
	}
	return ""
}

// optionalString maps the host's "false means unset" convention onto the empty
// string.
func optionalString(value any) string {
	if b, ok := value.(bool); ok && !b {
		return ""
	}
	s := Stringify(value)
	if strings.EqualFold(s, "false") {
		return ""
	}
	return s
}

func parseBool(value any) (bool, error) {
	switch v := value.(type) {
	case nil:
		return false, nil
	case bool:
		return v, nil
	case int:
		return v != 0, nil
	case int64:
		return v != 0, nil
	case float64:
		return v != 0, nil
	}

	s := strings.ToLower(strings.TrimSpace(Stringify(value)))
	switch s {
	case "", "0", "false", "no", "off":
		return false, nil
	case "1", "true", "yes", "on":
		return true, nil
	}
	if _, err := strconv.ParseFloat(s, 64); err == nil {
		return true, nil
	}
	return false, fmt.Errorf("cannot parse %q as boolean", s)
}
