// status_test.go
package status

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslateStatusCode(t *testing.T) {
	tests := []struct {
		name     string
		resp     *http.Response
		expected string
	}{
		{"nil response", nil, "No response received"},
		{"documented code", &http.Response{StatusCode: http.StatusUnauthorized}, "Unauthorized: the request is not authenticated"},
		{"undocumented code", &http.Response{StatusCode: http.StatusTeapot}, "418 I'm a teapot"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TranslateStatusCode(tt.resp))
		})
	}
}

func TestStatusClassification(t *testing.T) {
	assert.True(t, IsSuccessStatusCode(http.StatusOK))
	assert.True(t, IsSuccessStatusCode(http.StatusNoContent))
	assert.False(t, IsSuccessStatusCode(http.StatusFound))

	assert.True(t, IsRedirectStatusCode(http.StatusSeeOther))
	assert.False(t, IsRedirectStatusCode(http.StatusNotModified))
	assert.True(t, IsPermanentRedirect(http.StatusPermanentRedirect))
	assert.False(t, IsPermanentRedirect(http.StatusFound))

	assert.True(t, IsAuthError(http.StatusUnauthorized))
	assert.True(t, IsAuthError(http.StatusForbidden))
	assert.False(t, IsAuthError(http.StatusNotFound))

	assert.True(t, IsClientError(http.StatusBadRequest))
	assert.False(t, IsClientError(http.StatusInternalServerError))
	assert.True(t, IsServerError(http.StatusGatewayTimeout))
}
