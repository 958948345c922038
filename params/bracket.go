// params/bracket.go
package params

import (
	"net/url"
)

// Bracketify flattens obj into form keys of the shape prefix[key]. Nested maps recurse into
// prefix[key][sub] and slices are emitted as repeated prefix[key][] entries. Keys are visited
// in sorted order so the same object always yields the same encoding.
func Bracketify(obj map[string]any, prefix string) url.Values {
	values := url.Values{}
	bracketifyInto(values, obj, prefix)
	return values
}

func bracketifyInto(values url.Values, obj map[string]any, prefix string) {
	for _, key := range sortedKeys(obj) {
		name := key
		if prefix != "" {
			name = prefix + "[" + key + "]"
		}
		switch v := obj[key].(type) {
		case nil:
			values.Add(name, "")
		case map[string]any:
			bracketifyInto(values, v, name)
		case Params:
			bracketifyInto(values, v, name)
		case map[string]string:
			nested := make(map[string]any, len(v))
			for k, s := range v {
				nested[k] = s
			}
			bracketifyInto(values, nested, name)
		case []string:
			for _, s := range v {
				values.Add(name+"[]", s)
			}
		case []any:
			for _, item := range v {
				values.Add(name+"[]", stringify(item))
			}
		default:
			values.Add(name, stringify(v))
		}
	}
}

// Merge adds every value of extra to form.
func Merge(form url.Values, extra url.Values) url.Values {
	if form == nil {
		form = url.Values{}
	}
	for key, vals := range extra {
		for _, v := range vals {
			form.Add(key, v)
		}
	}
	return form
}
