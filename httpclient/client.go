// httpclient/client.go
/* Package httpclient provides the request dispatcher shared by every endpoint of the SDK. A Client pairs
an APIIntegration (base host, authentication headers, body encoding) with a configured net/http client,
a structured logger and an optional redirect policy. Requests are sent exactly once: there is no retry,
backoff or pagination, and non-2xx responses are returned as *response.APIError. */
package httpclient

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/deploymenttheory/go-api-sdk-mondo/logger"
	"github.com/deploymenttheory/go-api-sdk-mondo/proxy"
	"github.com/deploymenttheory/go-api-sdk-mondo/redirecthandler"
	"go.uber.org/zap"
)

// Client is the dispatcher used by the typed SDK.
type Client struct {
	// Private
	config ClientConfig
	http   *http.Client
	lock   sync.RWMutex

	// Exported
	Logger      logger.Logger
	Integration APIIntegration
}

// ClientConfig holds the options of a Client. Fields carry envconfig tags so the whole struct can be
// loaded with LoadConfigFromEnv.
type ClientConfig struct {
	Integration APIIntegration `ignored:"true"`

	// Log
	LogLevel            string `envconfig:"LOG_LEVEL"`             // "LogLevelDebug" ... "LogLevelFatal", or "LogLevelNone"
	LogOutputFormat     string `envconfig:"LOG_OUTPUT_FORMAT"`     // "json" or "pretty"
	LogConsoleSeparator string `envconfig:"LOG_CONSOLE_SEPARATOR"` // separator used by the pretty format
	ExportLogs          bool   `envconfig:"EXPORT_LOGS"`
	LogExportPath       string `envconfig:"LOG_EXPORT_PATH"`
	HideSensitiveData   *bool  `envconfig:"HIDE_SENSITIVE_DATA"` // nil means the default (redact)

	// Misc
	CustomTimeout   time.Duration `envconfig:"CUSTOM_TIMEOUT"`
	FollowRedirects bool          `envconfig:"FOLLOW_REDIRECTS"`
	MaxRedirects    int           `envconfig:"MAX_REDIRECTS"`

	// Proxy
	ProxyURL      string `envconfig:"PROXY_URL"` // http, https or socks5; empty means direct
	ProxyUsername string `envconfig:"PROXY_USERNAME"`
	ProxyPassword string `envconfig:"PROXY_PASSWORD"`
}

// BuildClient creates a new HTTP client with the provided configuration.
func BuildClient(config ClientConfig, populateDefaultValues bool) (*Client, error) {
	if populateDefaultValues {
		SetDefaultValuesClientConfig(&config)
	}

	if err := validateClientConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	//region Logging

	parsedLogLevel := logger.ParseLogLevelFromString(config.LogLevel)

	exportPath := ""
	if config.ExportLogs {
		exportPath = config.LogExportPath
	}

	log, err := logger.BuildLogger(parsedLogLevel, config.LogOutputFormat, config.LogConsoleSeparator, exportPath)
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	//endregion

	//region HTTP

	httpClient := &http.Client{
		Timeout: config.CustomTimeout,
	}

	if err := redirecthandler.SetupRedirectHandler(httpClient, config.FollowRedirects, config.MaxRedirects, log); err != nil {
		return nil, fmt.Errorf("failed to set up redirect handler: %w", err)
	}

	if err := proxy.ConfigureProxy(httpClient, config.ProxyURL, config.ProxyUsername, config.ProxyPassword, log); err != nil {
		return nil, fmt.Errorf("failed to configure proxy: %w", err)
	}

	//endregion

	client := &Client{
		Integration: config.Integration,
		http:        httpClient,
		config:      config,
		Logger:      log,
	}

	log.Debug("New API client initialized",
		zap.String("Domain", config.Integration.Domain()),
		zap.String("Authentication Method", config.Integration.AuthMethodDescriptor()),
		zap.String("Logging Level", config.LogLevel),
		zap.String("Log Encoding Format", config.LogOutputFormat),
		zap.Bool("Hide Sensitive Data In Logs", client.hideSensitiveData()),
		zap.Bool("Follow Redirects", config.FollowRedirects),
		zap.Int("Max Redirects", config.MaxRedirects),
		zap.Duration("Custom Timeout", config.CustomTimeout),
		zap.Bool("Proxy", config.ProxyURL != ""),
	)

	return client, nil
}

// SetHTTPClient replaces the underlying net/http client, e.g. with an httptest server's client.
func (c *Client) SetHTTPClient(httpClient *http.Client) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.http = httpClient
}

// SetTimeout modifies the HTTP timeout.
func (c *Client) SetTimeout(timeout time.Duration) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.http.Timeout = timeout
}

// Config returns a copy of the configuration the client was built with.
func (c *Client) Config() ClientConfig {
	return c.config
}

func (c *Client) httpClient() *http.Client {
	c.lock.RLock()
	defer c.lock.RUnlock()
	return c.http
}

func (c *Client) hideSensitiveData() bool {
	if c.config.HideSensitiveData == nil {
		return DefaultHideSensitiveData
	}
	return *c.config.HideSensitiveData
}
