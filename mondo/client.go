// mondo/client.go
// Package mondo is a typed client for the Mondo banking API. Every endpoint has a request struct
// and a method on Client; the loosely typed Call entry point maps parameter sets (as produced by
// the command line) onto the same methods.
package mondo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"reflect"
	"strings"
	"sync"

	mondoapi "github.com/deploymenttheory/go-api-sdk-mondo/apiintegrations/mondo"
	"github.com/deploymenttheory/go-api-sdk-mondo/httpclient"
	"github.com/deploymenttheory/go-api-sdk-mondo/logger"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// ErrMissingAccessToken is returned by authenticated endpoints called without a token.
var ErrMissingAccessToken = errors.New("access token is required")

// Client is a Mondo API client. It is safe for concurrent use.
type Client struct {
	HTTP        *httpclient.Client
	Integration *mondoapi.Integration

	validate *validator.Validate

	credMu       sync.RWMutex
	clientID     string
	clientSecret string
}

// NewClient builds a client from config. The integration is created here; any integration set
// on config is replaced.
func NewClient(config httpclient.ClientConfig) (*Client, error) {
	httpclient.SetDefaultValuesClientConfig(&config)

	integration := mondoapi.NewIntegration(nil, *config.HideSensitiveData)
	config.Integration = integration

	httpClient, err := httpclient.BuildClient(config, false)
	if err != nil {
		return nil, err
	}
	integration.Logger = httpClient.Logger

	return &Client{
		HTTP:        httpClient,
		Integration: integration,
		validate:    newValidator(),
	}, nil
}

// Logger returns the client's logger.
func (c *Client) Logger() logger.Logger {
	return c.HTTP.Logger
}

// SetHost points the client at another API host.
func (c *Client) SetHost(host string) {
	c.Integration.SetBaseDomain(host)
}

// Host returns the API host requests are sent to.
func (c *Client) Host() string {
	return c.Integration.Domain()
}

// SetClientCredentials sets the OAuth client id and secret used by Token and RefreshToken when a
// request does not carry its own.
func (c *Client) SetClientCredentials(clientID, clientSecret string) {
	c.credMu.Lock()
	defer c.credMu.Unlock()
	c.clientID = clientID
	c.clientSecret = clientSecret
}

// ClientCredentials returns the remembered OAuth client id and secret.
func (c *Client) ClientCredentials() (clientID, clientSecret string) {
	c.credMu.RLock()
	defer c.credMu.RUnlock()
	return c.clientID, c.clientSecret
}

// rememberCredentials keeps the client credentials of any form that carries both.
func (c *Client) rememberCredentials(form url.Values) {
	clientID, clientSecret := form.Get("client_id"), form.Get("client_secret")
	if clientID != "" && clientSecret != "" {
		c.SetClientCredentials(clientID, clientSecret)
	}
}

// newValidator reports fields by their wire names.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateRequest runs struct validation before any traffic is sent.
func (c *Client) validateRequest(name string, req any) error {
	if v := reflect.ValueOf(req); req == nil || (v.Kind() == reflect.Pointer && v.IsNil()) {
		return fmt.Errorf("%s: request is required", name)
	}
	if err := c.validate.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			return &ValidationError{Operation: name, Errors: validationErrors}
		}
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// rawResponseKey carries a *json.RawMessage that receives the undecoded response body.
type rawResponseKey struct{}

// do dispatches r and decodes the response into out, which may be nil.
func (c *Client) do(ctx context.Context, name string, r *httpclient.Request, out any) error {
	c.rememberCredentials(r.Form)

	c.HTTP.Logger.Debug("Dispatching API operation",
		zap.String("operation", name),
		zap.String("method", r.Method),
		zap.String("endpoint", r.Endpoint),
	)

	var raw json.RawMessage
	if _, err := c.HTTP.DoRequest(ctx, r, &raw); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	if sink, ok := ctx.Value(rawResponseKey{}).(*json.RawMessage); ok {
		*sink = raw
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("%s: decoding response: %w", name, err)
		}
	}
	return nil
}

// authenticated builds an authenticated request, failing fast when the token is missing.
func authenticated(accessToken, method, endpoint string) (*httpclient.Request, error) {
	if accessToken == "" {
		return nil, ErrMissingAccessToken
	}
	if method == "" {
		method = http.MethodGet
	}
	return &httpclient.Request{Method: method, Endpoint: endpoint, AccessToken: accessToken}, nil
}

// ValidationError reports request fields that failed validation.
type ValidationError struct {
	Operation string
	Errors    validator.ValidationErrors
}

func (e *ValidationError) Error() string {
	msg := e.Operation + ": invalid request:"
	for i, fe := range e.Errors {
		if i > 0 {
			msg += ","
		}
		msg += fmt.Sprintf(" %s failed %q", fe.Field(), fe.Tag())
	}
	return msg
}

// Unwrap exposes the underlying validator errors.
func (e *ValidationError) Unwrap() error {
	return e.Errors
}
