// response/parse.go
package response

import "strings"

// parseHeader splits a header such as Content-Type or Content-Disposition into its main value
// and its key=value parameters. Quoted parameter values are unquoted.
func parseHeader(header string) (string, map[string]string) {
	value, rest, _ := strings.Cut(header, ";")

	params := make(map[string]string)
	for _, part := range strings.Split(rest, ";") {
		key, v, ok := strings.Cut(part, "=")
		if !ok {
			continue
		}
		params[strings.TrimSpace(key)] = strings.Trim(strings.TrimSpace(v), "\"")
	}
	return strings.TrimSpace(value), params
}
