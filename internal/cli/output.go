// internal/cli/output.go
package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"

	"github.com/deploymenttheory/go-api-sdk-mondo/mondo"
	"github.com/deploymenttheory/go-api-sdk-mondo/response"
)

// OutputOptions control how a response is printed.
type OutputOptions struct {
	Properties []string // one property prints the bare value, several print objects
	Response   bool     // print the response as received, without unwrapping or projection
	Length     bool     // print the number of items instead of the items
	Space      int      // JSON indentation
}

// Shape decodes raw and applies opts. An empty body shapes to an empty object.
func Shape(raw json.RawMessage, opts OutputOptions) (any, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return map[string]any{}, nil
	}

	var v any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}

	if opts.Response {
		return v, nil
	}

	if obj, ok := v.(map[string]any); ok && len(obj) == 1 {
		for _, inner := range obj {
			v = inner
		}
	}

	if opts.Length {
		return count(v), nil
	}
	if len(opts.Properties) > 0 {
		return project(v, opts.Properties), nil
	}
	return v, nil
}

func count(v any) int {
	switch v := v.(type) {
	case []any:
		return len(v)
	case map[string]any:
		return len(v)
	case nil:
		return 0
	default:
		return 1
	}
}

// project picks properties out of an object, or out of every object in a list.
func project(v any, properties []string) any {
	pick := func(item any) any {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil
		}
		if len(properties) == 1 {
			return obj[properties[0]]
		}
		out := make(map[string]any, len(properties))
		for _, prop := range properties {
			if value, exists := obj[prop]; exists {
				out[prop] = value
			}
		}
		return out
	}

	list, ok := v.([]any)
	if !ok {
		return pick(v)
	}
	out := make([]any, len(list))
	for i, item := range list {
		out[i] = pick(item)
	}
	return out
}

// Render writes v as JSON indented by space spaces. A space of zero prints compact JSON.
func Render(w io.Writer, v any, space int) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if space > 0 {
		enc.SetIndent("", strings.Repeat(" ", space))
	}
	return enc.Encode(v)
}

// errorOutput is printed for failures that did not come from the API.
type errorOutput struct {
	Error     string   `json:"error"`
	Operation string   `json:"operation,omitempty"`
	Fields    []string `json:"fields,omitempty"`
}

// RenderError writes err as JSON. API errors print their status, code and message.
func RenderError(w io.Writer, err error, space int) error {
	if apiErr, ok := response.AsAPIError(err); ok {
		return Render(w, apiErr, space)
	}

	out := errorOutput{Error: err.Error()}
	var validationErr *mondo.ValidationError
	if errors.As(err, &validationErr) {
		out.Operation = validationErr.Operation
		for _, fe := range validationErr.Errors {
			out.Fields = append(out.Fields, fe.Field())
		}
	}
	return Render(w, out, space)
}
