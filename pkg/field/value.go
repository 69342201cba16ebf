package field

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// IsEmpty follows the host's notion of a falsy value: nil, false, "", "0",
// numeric zero and empty collections carry no field value.
func IsEmpty(v Value) bool {
	switch val := v.(type) {
	case nil:
		return true
	case bool:
		return !val
	case string:
		return val == "" || val == "0"
	case ItemID:
		return val == "" || val == "0"
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() == 0
	case reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() == 0
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return true
		}
		return IsEmpty(rv.Elem().Interface())
	}
	return false
}

// Stringify renders scalar values the way they would be interpolated into
// markup.
func Stringify(v Value) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case ItemID:
		return string(val)
	case bool:
		if val {
			return "1"
		}
		return ""
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case []byte:
		return string(val)
	case fmt.Stringer:
		return val.String()
	}
	return fmt.Sprint(v)
}

// ItemIDFrom extracts a content-item identifier from ids, numbers, records
// implementing Identified and maps carrying an "ID", "id" or "term_id" key.
func ItemIDFrom(v Value) (ItemID, bool) {
	switch val := v.(type) {
	case nil:
		return "", false
	case ItemID:
		return val, val != ""
	case *Post:
		if val == nil {
			return "", false
		}
		return val.ID, val.ID != ""
	case Identified:
		id := val.ItemID()
		return id, id != ""
	case string:
		trimmed := strings.TrimSpace(val)
		return ItemID(trimmed), trimmed != ""
	case map[string]any:
		for _, key := range idKeys {
			if raw, ok := val[key]; ok {
				return ItemIDFrom(raw)
			}
		}
		return "", false
	case map[string]string:
		for _, key := range idKeys {
			if raw, ok := val[key]; ok {
				return ItemIDFrom(raw)
			}
		}
		return "", false
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return ItemID(strconv.FormatInt(rv.Int(), 10)), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return ItemID(strconv.FormatUint(rv.Uint(), 10)), true
	case reflect.Float32, reflect.Float64:
		return ItemID(strconv.FormatFloat(rv.Float(), 'f', -1, 64)), true
	}
	return "", false
}

var idKeys = []string{"ID", "id", "term_id"}

// Items flattens a slice-like value into its elements. Scalars become a single
// element slice; empty values yield nil.
func Items(v Value) []Value {
	if IsEmpty(v) {
		return nil
	}
	switch val := v.(type) {
	case []Value:
		return val
	case string, ItemID, map[string]any, map[string]string:
		return []Value{val}
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return []Value{v}
	}
	out := make([]Value, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		out = append(out, rv.Index(i).Interface())
	}
	return out
}

// First returns the first element of a slice-like value, or the value itself
// when it is a scalar.
func First(v Value) (Value, bool) {
	items := Items(v)
	if len(items) == 0 {
		return nil, false
	}
	return items[0], true
}
