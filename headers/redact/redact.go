// headers/redact/redact.go
package redact

import (
	"bytes"
	"encoding/json"
	"net/url"
)

const redacted = "REDACTED"

// sensitiveHeaderKeys are header names whose values must not reach the logs.
var sensitiveHeaderKeys = map[string]bool{
	"AccessToken":   true,
	"Authorization": true,
}

// sensitiveFormKeys are form fields carrying credentials.
var sensitiveFormKeys = map[string]bool{
	"access_token":  true,
	"client_secret": true,
	"password":      true,
	"refresh_token": true,
}

// RedactSensitiveHeaderData redacts sensitive data based on the hideSensitiveData flag.
func RedactSensitiveHeaderData(hideSensitiveData bool, key, value string) string {
	if hideSensitiveData && sensitiveHeaderKeys[key] {
		return redacted
	}
	return value
}

// RedactSensitiveFormData returns an encoded copy of the form with credential values replaced.
func RedactSensitiveFormData(hideSensitiveData bool, form url.Values) string {
	if !hideSensitiveData {
		return form.Encode()
	}
	out := make(url.Values, len(form))
	for key, values := range form {
		if sensitiveFormKeys[key] {
			out[key] = []string{redacted}
			continue
		}
		out[key] = values
	}
	return out.Encode()
}

// RedactSensitiveJSON returns body with the values of credential keys replaced at any depth.
// Bodies that are not JSON are returned unchanged.
func RedactSensitiveJSON(hideSensitiveData bool, body []byte) string {
	if !hideSensitiveData {
		return string(body)
	}
	var v any
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return string(body)
	}
	out, err := json.Marshal(redactValue(v))
	if err != nil {
		return string(body)
	}
	return string(out)
}

func redactValue(v any) any {
	switch v := v.(type) {
	case map[string]any:
		for key, inner := range v {
			if sensitiveFormKeys[key] {
				v[key] = redacted
				continue
			}
			v[key] = redactValue(inner)
		}
	case []any:
		for i, inner := range v {
			v[i] = redactValue(inner)
		}
	}
	return v
}
