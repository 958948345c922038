// httpclient/methods.go
package httpclient

import "net/http"

// supportedMethods lists the verbs the dispatcher will send.
var supportedMethods = map[string]bool{
	http.MethodGet:    true,
	http.MethodPost:   true,
	http.MethodPut:    true,
	http.MethodPatch:  true,
	http.MethodDelete: true,
	http.MethodHead:   true,
}

// IsSupportedHTTPMethod reports whether method can be dispatched.
func IsSupportedHTTPMethod(method string) bool {
	return supportedMethods[method]
}

// MethodHasBody reports whether requests with this method carry a form body.
func MethodHasBody(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		return true
	default:
		return false
	}
}
