// headers/headers_test.go
package headers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/deploymenttheory/go-api-sdk-mondo/mocklogger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSetAuthorization(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		expected string
	}{
		{"bare token", "test-token", "Bearer test-token"},
		{"prefixed token", "Bearer test-token", "Bearer test-token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "http://example.com", nil)
			SetAuthorization(req, tt.token)
			assert.Equal(t, tt.expected, req.Header.Get("Authorization"), "Authorization header should be correctly set")
		})
	}
}

func TestSetContentTypeAndAccept(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "http://example.com", nil)

	SetContentType(req, "application/x-www-form-urlencoded")
	SetAccept(req, "application/json")
	SetCustomHeader(req, ClientHeader, "GoMondo-v0.1.0")

	assert.Equal(t, "application/x-www-form-urlencoded", req.Header.Get("Content-Type"))
	assert.Equal(t, "application/json", req.Header.Get("Accept"))
	assert.Equal(t, "GoMondo-v0.1.0", req.Header.Get("client"))
}

func TestRedactHeaders(t *testing.T) {
	h := http.Header{}
	h.Set("Authorization", "Bearer secret")
	h.Set("Accept", "application/json")

	redacted := RedactHeaders(h, true)
	assert.Equal(t, []string{"REDACTED"}, redacted["Authorization"])
	assert.Equal(t, []string{"application/json"}, redacted["Accept"])

	visible := RedactHeaders(h, false)
	assert.Equal(t, []string{"Bearer secret"}, visible["Authorization"])
}

func TestCheckDeprecationHeader(t *testing.T) {
	mockLog := mocklogger.NewMockLogger()
	mockLog.On("Warn", "API endpoint is deprecated", mock.Anything).Once()

	resp := &http.Response{
		Header:  http.Header{"Deprecation": []string{"Sat, 01 Jan 2022 00:00:00 GMT"}},
		Request: &http.Request{URL: &url.URL{Scheme: "https", Host: "example.com", Path: "/accounts"}},
	}
	CheckDeprecationHeader(resp, mockLog)

	mockLog.AssertExpectations(t)
}
