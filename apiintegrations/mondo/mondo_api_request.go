// mondo_api_request.go
package mondo

import (
	"net/url"

	"github.com/deploymenttheory/go-api-sdk-mondo/headers/redact"
	"go.uber.org/zap"
)

// MarshalRequest encodes form as application/x-www-form-urlencoded. Keys are emitted in sorted
// order so identical forms always produce identical bodies.
func (m *Integration) MarshalRequest(form url.Values, method string, endpoint string) ([]byte, error) {
	if len(form) == 0 {
		return nil, nil
	}

	data := []byte(form.Encode())

	m.log().Debug("Form Request Body",
		zap.String("method", method),
		zap.String("endpoint", endpoint),
		zap.String("Body", redact.RedactSensitiveFormData(m.HideSensitiveData, form)),
	)

	return data, nil
}
