// mondo_api_headers.go
package mondo

import (
	"net/http"

	"github.com/deploymenttheory/go-api-sdk-mondo/headers"
	"github.com/deploymenttheory/go-api-sdk-mondo/version"
)

const (
	ContentTypeForm = "application/x-www-form-urlencoded"
	ContentTypeJSON = "application/json"
)

// GetContentTypeHeader returns the Content-Type for a request body sent with method. Bodyless
// methods get none.
func (m *Integration) GetContentTypeHeader(method string) string {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		return ContentTypeForm
	default:
		return ""
	}
}

// GetAcceptHeader returns the Accept header. Every Mondo endpoint answers with JSON.
func (m *Integration) GetAcceptHeader() string {
	return ContentTypeJSON
}

// SetRequestHeaders applies the headers every Mondo request carries: the SDK identification
// header, content negotiation, and the bearer token when one is supplied.
func (m *Integration) SetRequestHeaders(req *http.Request, accessToken string) {
	headers.SetCustomHeader(req, headers.ClientHeader, version.GetClientHeader())
	headers.SetUserAgent(req, version.GetUserAgentHeader())
	headers.SetAccept(req, m.GetAcceptHeader())

	if contentType := m.GetContentTypeHeader(req.Method); contentType != "" {
		headers.SetContentType(req, contentType)
	}

	if accessToken != "" {
		headers.SetAuthorization(req, accessToken)
	}
}
