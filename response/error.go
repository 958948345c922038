// response/error.go
// This package provides utility functions and structures for handling successful and failed Mondo API responses.
package response

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/deploymenttheory/go-api-sdk-mondo/logger"
	"github.com/deploymenttheory/go-api-sdk-mondo/status"
	"golang.org/x/net/html"
)

// APIError represents an API error response. Mondo reports failures as
// {"code": "...", "message": "...", "params": {...}}; other bodies (proxies, gateways)
// are reduced to a message and kept raw.
type APIError struct {
	StatusCode  int            `json:"status_code"`            // HTTP status code
	Method      string         `json:"method"`                 // HTTP method used for the request
	URL         string         `json:"url"`                    // The URL of the HTTP request
	Code        string         `json:"code,omitempty"`         // Mondo error code, e.g. "unauthorized.bad_access_token"
	Message     string         `json:"message"`                // Summary of the error
	Params      map[string]any `json:"params,omitempty"`       // Parameters echoed back by the API
	RawResponse string         `json:"raw_response,omitempty"` // Raw response body for debugging
}

// mondoErrorBody is the JSON error envelope returned by the Mondo API.
type mondoErrorBody struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Params  map[string]any `json:"params"`
	Error   any            `json:"error"`
}

// Error returns a string representation of the APIError, making it compatible with the error interface.
func (e *APIError) Error() string {
	message := e.Message
	if message == "" {
		message = http.StatusText(e.StatusCode)
	}
	if e.Code != "" {
		return fmt.Sprintf("API Error: StatusCode=%d, Code=%s, Message=%s", e.StatusCode, e.Code, message)
	}
	return fmt.Sprintf("API Error: StatusCode=%d, Message=%s", e.StatusCode, message)
}

// AsAPIError unwraps err into an *APIError when possible.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// HandleAPIErrorResponse builds an APIError from a non-success HTTP response and logs it.
func HandleAPIErrorResponse(resp *http.Response, log logger.Logger) *APIError {
	apiError := &APIError{
		StatusCode: resp.StatusCode,
		Message:    status.TranslateStatusCode(resp),
	}
	if resp.Request != nil {
		apiError.Method = resp.Request.Method
		apiError.URL = resp.Request.URL.String()
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		apiError.RawResponse = "Failed to read response body"
		log.LogError("request_error", apiError.Method, apiError.URL, apiError.StatusCode, resp.Status, err, apiError.RawResponse)
		return apiError
	}

	mimeType, _ := parseHeader(resp.Header.Get("Content-Type"))
	switch mimeType {
	case "application/json":
		parseJSONResponse(bodyBytes, apiError)
	case "application/xml", "text/xml":
		parseXMLResponse(bodyBytes, apiError)
	case "text/html":
		parseHTMLResponse(bodyBytes, apiError)
	case "text/plain":
		parseTextResponse(bodyBytes, apiError)
	default:
		if json.Valid(bodyBytes) {
			parseJSONResponse(bodyBytes, apiError)
		} else {
			apiError.RawResponse = string(bodyBytes)
		}
	}

	log.LogError("request_error", apiError.Method, apiError.URL, apiError.StatusCode, resp.Status, apiError, apiError.RawResponse)
	return apiError
}

// parseJSONResponse attempts to parse the Mondo JSON error envelope and update the APIError structure.
func parseJSONResponse(bodyBytes []byte, apiError *APIError) {
	apiError.RawResponse = string(bodyBytes)

	var body mondoErrorBody
	if err := json.Unmarshal(bodyBytes, &body); err != nil {
		return
	}
	apiError.Code = body.Code
	apiError.Params = body.Params
	if body.Message != "" {
		apiError.Message = body.Message
	} else if s, ok := body.Error.(string); ok && s != "" {
		apiError.Message = s
	}
}

// parseXMLResponse dynamically parses XML error responses and accumulates potential error messages.
func parseXMLResponse(bodyBytes []byte, apiError *APIError) {
	apiError.RawResponse = string(bodyBytes)

	doc, err := xmlquery.Parse(bytes.NewReader(bodyBytes))
	if err != nil {
		return
	}

	var messages []string
	var traverse func(*xmlquery.Node)
	traverse = func(n *xmlquery.Node) {
		if n.Type == xmlquery.TextNode && strings.TrimSpace(n.Data) != "" {
			messages = append(messages, strings.TrimSpace(n.Data))
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			traverse(c)
		}
	}

	traverse(doc)

	if len(messages) > 0 {
		apiError.Message = strings.Join(messages, "; ")
	}
}

// parseTextResponse updates the APIError structure based on a plain text error response.
func parseTextResponse(bodyBytes []byte, apiError *APIError) {
	bodyText := strings.TrimSpace(string(bodyBytes))
	apiError.RawResponse = string(bodyBytes)
	if bodyText != "" {
		apiError.Message = bodyText
	}
}

// parseHTMLResponse extracts meaningful information from an HTML error response,
// concatenating the text of the <title> and all <p> tags.
func parseHTMLResponse(bodyBytes []byte, apiError *APIError) {
	apiError.RawResponse = string(bodyBytes)

	doc, err := html.Parse(bytes.NewReader(bodyBytes))
	if err != nil {
		return
	}

	var messages []string
	var parse func(*html.Node)
	parse = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "p" || n.Data == "title") {
			if text := strings.Join(strings.Fields(nodeText(n)), " "); text != "" {
				messages = append(messages, text)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			parse(c)
		}
	}

	parse(doc)

	if len(messages) > 0 {
		apiError.Message = strings.Join(messages, "; ")
	}
}

// nodeText concatenates the text content below n.
func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(c *html.Node) {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
			sb.WriteString(" ")
		}
		for child := c.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return sb.String()
}
