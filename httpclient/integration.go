// httpclient/integration.go
package httpclient

import (
	"net/http"
	"net/url"
)

// APIIntegration describes the API specific half of the client: where requests go, how they are
// authenticated, and how form bodies are encoded.
type APIIntegration interface {
	Domain() string
	SetRequestHeaders(req *http.Request, accessToken string)

	// Utilities
	MarshalRequest(form url.Values, method string, endpoint string) ([]byte, error)
	GetContentTypeHeader(method string) string
	GetAcceptHeader() string

	// Info
	AuthMethodDescriptor() string
}
