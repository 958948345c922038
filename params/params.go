// params/params.go
// Package params normalizes loosely typed request parameters into the fixed form and
// query encodings the Mondo API expects.
package params

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Params is a loosely typed parameter set, as produced by CLI flag parsing or by callers
// using the alias tolerant request constructors.
type Params map[string]any

// Clone returns a shallow copy of p.
func (p Params) Clone() Params {
	out := make(Params, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Has reports whether key is present with a non-nil value.
func (p Params) Has(key string) bool {
	v, ok := p[key]
	return ok && v != nil
}

// String returns the value for key rendered as a string. Dates are rendered in ISO-8601.
func (p Params) String(key string) string {
	v, ok := p[key]
	if !ok || v == nil {
		return ""
	}
	return stringify(v)
}

// Int returns the value for key as an int. Strings are parsed; anything unparsable yields 0.
func (p Params) Int(key string) int {
	switch v := p[key].(type) {
	case int:
		return v
	case int32:
		return int(v)
	case int64:
		return int(v)
	case float32:
		return int(v)
	case float64:
		return int(v)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

// Bool returns the value for key as a bool. Any non-empty string other than "false" and
// "0" counts as true, so `--expand merchant` and `--expand` both enable expansion.
func (p Params) Bool(key string) bool {
	switch v := p[key].(type) {
	case bool:
		return v
	case string:
		s := strings.TrimSpace(strings.ToLower(v))
		return s != "" && s != "false" && s != "0"
	case int:
		return v != 0
	case float64:
		return v != 0
	default:
		return false
	}
}

// Map returns the value for key as a map. String maps from flag parsing are widened.
func (p Params) Map(key string) map[string]any {
	switch v := p[key].(type) {
	case map[string]any:
		return v
	case Params:
		return v
	case map[string]string:
		out := make(map[string]any, len(v))
		for k, s := range v {
			out[k] = s
		}
		return out
	default:
		return nil
	}
}

// Strings returns the value for key as a string slice. A single string is treated as a
// one element slice.
func (p Params) Strings(key string) []string {
	switch v := p[key].(type) {
	case []string:
		return v
	case string:
		if v == "" {
			return nil
		}
		return []string{v}
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if item != nil {
				out = append(out, stringify(item))
			}
		}
		return out
	default:
		return nil
	}
}

// Values converts the scalar entries of p to url.Values, in sorted key order. Nil and empty
// values are skipped, maps are left to Bracketify, and dates are rendered with FormatDate.
func Values(p Params) url.Values {
	values := url.Values{}
	for _, key := range sortedKeys(p) {
		switch v := p[key].(type) {
		case nil:
		case map[string]any, Params, map[string]string:
		case []string:
			for _, s := range v {
				values.Add(key, s)
			}
		case []any:
			for _, item := range v {
				if item != nil {
					values.Add(key, stringify(item))
				}
			}
		default:
			if s := stringify(v); s != "" {
				values.Set(key, s)
			}
		}
	}
	return values
}

func stringify(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case time.Time:
		s, _ := FormatDate(v)
		return s
	case *time.Time:
		if v == nil {
			return ""
		}
		s, _ := FormatDate(*v)
		return s
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

func sortedKeys[M ~map[string]V, V any](m M) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
