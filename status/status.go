// status.go
// This package provides utility functions for categorizing HTTP status codes returned by the Mondo API.
package status

import (
	"fmt"
	"net/http"
)

// apiStatusMessages documents what each error status means when returned by the Mondo API.
var apiStatusMessages = map[int]string{
	http.StatusBadRequest:          "Bad Request: the request has missing arguments or is malformed",
	http.StatusUnauthorized:        "Unauthorized: the request is not authenticated",
	http.StatusForbidden:           "Forbidden: the request is authenticated but has insufficient permissions",
	http.StatusNotFound:            "Not Found: the endpoint requested does not exist",
	http.StatusMethodNotAllowed:    "Method Not Allowed: the wrong HTTP verb was used for this endpoint",
	http.StatusNotAcceptable:       "Not Acceptable: the application does not accept the content format returned",
	http.StatusTooManyRequests:     "Too Many Requests: the application is exceeding its rate limit",
	http.StatusInternalServerError: "Internal Server Error: something is wrong on the API side",
	http.StatusGatewayTimeout:      "Gateway Timeout: something has timed out on the API side",
}

// TranslateStatusCode returns a human readable explanation of the response status.
func TranslateStatusCode(resp *http.Response) string {
	if resp == nil {
		return "No response received"
	}
	if message, ok := apiStatusMessages[resp.StatusCode]; ok {
		return message
	}
	return fmt.Sprintf("%d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
}

// IsSuccessStatusCode reports whether the status code is in the 2xx range.
func IsSuccessStatusCode(statusCode int) bool {
	return statusCode >= 200 && statusCode < 300
}

// IsRedirectStatusCode checks if the provided HTTP status code is one of the redirect codes.
// Redirect status codes instruct the client to make a new request to the URI in the Location header.
func IsRedirectStatusCode(statusCode int) bool {
	switch statusCode {
	case http.StatusMovedPermanently,
		http.StatusFound,
		http.StatusSeeOther,
		http.StatusTemporaryRedirect,
		http.StatusPermanentRedirect:
		return true
	default:
		return false
	}
}

// IsPermanentRedirect checks if the provided HTTP status code is one of the permanent redirect codes.
func IsPermanentRedirect(statusCode int) bool {
	switch statusCode {
	case http.StatusMovedPermanently,
		http.StatusPermanentRedirect:
		return true
	default:
		return false
	}
}

// IsAuthError reports whether the status code means the access token was missing, invalid or insufficient.
func IsAuthError(statusCode int) bool {
	return statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden
}

// IsClientError reports whether the status code is in the 4xx range.
func IsClientError(statusCode int) bool {
	return statusCode >= 400 && statusCode < 500
}

// IsServerError reports whether the status code is in the 5xx range.
func IsServerError(statusCode int) bool {
	return statusCode >= 500 && statusCode < 600
}
