// httpclient/request.go
package httpclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/deploymenttheory/go-api-sdk-mondo/headers"
	"github.com/deploymenttheory/go-api-sdk-mondo/logger"
	"github.com/deploymenttheory/go-api-sdk-mondo/response"
	"github.com/deploymenttheory/go-api-sdk-mondo/status"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Request describes a single API call.
type Request struct {
	Method      string     // HTTP verb, GET when empty
	Endpoint    string     // path relative to the integration domain, or an absolute URL
	Query       url.Values // appended to the URL
	Form        url.Values // form body, only sent for POST, PUT and PATCH
	AccessToken string     // bearer token; empty for unauthenticated calls
}

// DoRequest sends r once and decodes a 2xx response body into out (which may be nil).
// Any other status is returned as a *response.APIError together with the response.
// The response body has already been consumed and closed when DoRequest returns.
//
// Example:
//
//	var balance Balance
//	_, err := client.DoRequest(ctx, &httpclient.Request{
//		Endpoint:    "/balance",
//		Query:       url.Values{"account_id": {accountID}},
//		AccessToken: token,
//	}, &balance)
func (c *Client) DoRequest(ctx context.Context, r *Request, out any) (*http.Response, error) {
	log := c.Logger

	method := strings.ToUpper(r.Method)
	if method == "" {
		method = http.MethodGet
	}
	if !IsSupportedHTTPMethod(method) {
		return nil, log.Error("HTTP method not supported", zap.String("method", method))
	}

	requestURL, err := c.buildURL(r.Endpoint, r.Query)
	if err != nil {
		return nil, log.Error("Invalid request URL", zap.String("endpoint", r.Endpoint), zap.Error(err))
	}

	var body io.Reader
	if MethodHasBody(method) {
		data, err := c.Integration.MarshalRequest(r.Form, method, r.Endpoint)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body for %s %s: %w", method, r.Endpoint, err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, body)
	if err != nil {
		return nil, log.Error("Failed to create HTTP request", zap.String("method", method), zap.String("url", requestURL), zap.Error(err))
	}

	c.Integration.SetRequestHeaders(req, r.AccessToken)

	requestID := uuid.NewString()
	log.LogRequestStart(requestID, method, requestURL, headers.RedactHeaders(req.Header, c.hideSensitiveData()))

	startTime := time.Now()
	resp, err := c.httpClient().Do(req)
	if err != nil {
		log.Error("Failed to send request",
			zap.String("request_id", requestID),
			zap.String("method", method),
			zap.String("endpoint", r.Endpoint),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%s %s: %w", method, r.Endpoint, err)
	}
	defer resp.Body.Close()

	log.LogRequestEnd(requestID, method, requestURL, resp.StatusCode, time.Since(startTime))
	headers.CheckDeprecationHeader(resp, log)

	if status.IsSuccessStatusCode(resp.StatusCode) {
		return resp, response.HandleAPISuccessResponse(resp, out, log, c.hideSensitiveData())
	}

	if status.IsRedirectStatusCode(resp.StatusCode) {
		log.Warn("Redirect response received",
			zap.Int("status_code", resp.StatusCode),
			zap.Bool("permanent", status.IsPermanentRedirect(resp.StatusCode)),
			zap.String("location", resp.Header.Get("Location")),
		)
	}

	apiErr := response.HandleAPIErrorResponse(resp, log)
	logErrorClass(log, requestID, apiErr)
	return resp, apiErr
}

// logErrorClass records what kind of failure the API reported, so token problems stand out from
// rejected requests and server faults.
func logErrorClass(log logger.Logger, requestID string, apiErr *response.APIError) {
	fields := []zap.Field{
		zap.String("request_id", requestID),
		zap.Int("status_code", apiErr.StatusCode),
		zap.String("code", apiErr.Code),
	}
	switch {
	case status.IsAuthError(apiErr.StatusCode):
		log.Warn("Access token rejected, refresh it or request a new one", fields...)
	case status.IsServerError(apiErr.StatusCode):
		log.Warn("Mondo API server error", fields...)
	case status.IsClientError(apiErr.StatusCode):
		log.Info("Request rejected by the Mondo API", fields...)
	}
}

// buildURL joins endpoint onto the integration domain unless it is already absolute, then
// merges query into any query string the endpoint carries.
func (c *Client) buildURL(endpoint string, query url.Values) (string, error) {
	raw := endpoint
	if !strings.Contains(endpoint, "://") {
		raw = strings.TrimRight(c.Integration.Domain(), "/") + "/" + strings.TrimLeft(endpoint, "/")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	if len(query) > 0 {
		merged := u.Query()
		for key, values := range query {
			for _, v := range values {
				merged.Add(key, v)
			}
		}
		u.RawQuery = merged.Encode()
	}

	return u.String(), nil
}
