// headers/headers.go
package headers

import (
	"net/http"
	"strings"

	"github.com/deploymenttheory/go-api-sdk-mondo/headers/redact"
	"github.com/deploymenttheory/go-api-sdk-mondo/logger"
	"go.uber.org/zap"
)

// ClientHeader is the request header the Mondo API uses to identify the calling SDK.
const ClientHeader = "client"

// SetAuthorization sets the Authorization header for the request using the bearer scheme.
// A token that already carries the "Bearer " prefix is used as is.
func SetAuthorization(req *http.Request, token string) {
	if !strings.HasPrefix(token, "Bearer ") {
		token = "Bearer " + token
	}
	req.Header.Set("Authorization", token)
}

// SetContentType sets the Content-Type header for the request.
func SetContentType(req *http.Request, contentType string) {
	req.Header.Set("Content-Type", contentType)
}

// SetAccept sets the Accept header for the request.
func SetAccept(req *http.Request, acceptHeader string) {
	req.Header.Set("Accept", acceptHeader)
}

// SetUserAgent sets the User-Agent header for the request.
func SetUserAgent(req *http.Request, userAgent string) {
	req.Header.Set("User-Agent", userAgent)
}

// SetCustomHeader sets a custom header for an HTTP request.
func SetCustomHeader(req *http.Request, headerName, headerValue string) {
	req.Header.Set(headerName, headerValue)
}

// RedactHeaders returns a copy of the headers with sensitive values replaced when hideSensitiveData is set.
func RedactHeaders(h http.Header, hideSensitiveData bool) map[string][]string {
	redacted := make(map[string][]string, len(h))
	for name, values := range h {
		out := make([]string, len(values))
		for i, v := range values {
			out[i] = redact.RedactSensitiveHeaderData(hideSensitiveData, name, v)
		}
		redacted[name] = out
	}
	return redacted
}

// CheckDeprecationHeader checks the response headers for the Deprecation header and logs a warning if present.
func CheckDeprecationHeader(resp *http.Response, log logger.Logger) {
	deprecationHeader := resp.Header.Get("Deprecation")
	if deprecationHeader != "" && resp.Request != nil {
		log.Warn("API endpoint is deprecated",
			zap.String("Date", deprecationHeader),
			zap.String("Endpoint", resp.Request.URL.String()),
		)
	}
}
