// proxy/proxy.go
package proxy

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/deploymenttheory/go-api-sdk-mondo/logger"
	"go.uber.org/zap"
)

// ConfigureProxy routes httpClient through proxyURL. Credentials given separately replace any
// user info embedded in the URL. An empty proxyURL leaves the client untouched.
func ConfigureProxy(httpClient *http.Client, proxyURL, username, password string, log logger.Logger) error {
	if proxyURL == "" {
		return nil
	}

	parsed, err := url.Parse(proxyURL)
	if err != nil {
		return log.Error("Failed to parse proxy URL", zap.Error(err))
	}
	switch parsed.Scheme {
	case "http", "https", "socks5":
	default:
		return log.Error("Unsupported proxy scheme", zap.String("Scheme", parsed.Scheme))
	}
	if parsed.Host == "" {
		return log.Error("Proxy URL has no host", zap.String("ProxyURL", parsed.Redacted()))
	}

	if username != "" {
		parsed.User = url.UserPassword(username, password)
	}

	transport, ok := http.DefaultTransport.(*http.Transport)
	if !ok {
		return fmt.Errorf("default transport is %T, not *http.Transport", http.DefaultTransport)
	}
	transport = transport.Clone()
	transport.Proxy = http.ProxyURL(parsed)
	httpClient.Transport = transport

	log.Info("Proxy configured", zap.String("ProxyURL", parsed.Redacted()))
	return nil
}
