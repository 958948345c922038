// httpclient/config_test.go
package httpclient

import (
	"testing"
	"time"

	"github.com/deploymenttheory/go-api-sdk-mondo/apiintegrations/mondo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetDefaultValuesClientConfig(t *testing.T) {
	var config ClientConfig
	SetDefaultValuesClientConfig(&config)

	assert.Equal(t, DefaultLogLevelString, config.LogLevel)
	assert.Equal(t, DefaultLogOutputFormatString, config.LogOutputFormat)
	assert.Equal(t, DefaultLogConsoleSeparator, config.LogConsoleSeparator)
	assert.Equal(t, DefaultCustomTimeout, config.CustomTimeout)
	assert.Equal(t, DefaultMaxRedirects, config.MaxRedirects)
	require.NotNil(t, config.HideSensitiveData)
	assert.True(t, *config.HideSensitiveData)

	show := false
	custom := ClientConfig{LogLevel: "LogLevelDebug", CustomTimeout: time.Minute, HideSensitiveData: &show}
	SetDefaultValuesClientConfig(&custom)
	assert.Equal(t, "LogLevelDebug", custom.LogLevel)
	assert.Equal(t, time.Minute, custom.CustomTimeout)
	assert.False(t, *custom.HideSensitiveData)
}

func TestValidateClientConfig(t *testing.T) {
	valid := func() ClientConfig {
		config := ClientConfig{Integration: mondo.NewIntegration(nil, true)}
		SetDefaultValuesClientConfig(&config)
		return config
	}

	tests := []struct {
		name    string
		mutate  func(*ClientConfig)
		wantErr string
	}{
		{name: "valid", mutate: func(*ClientConfig) {}},
		{name: "no integration", mutate: func(c *ClientConfig) { c.Integration = nil }, wantErr: "no api integration supplied"},
		{name: "bad level", mutate: func(c *ClientConfig) { c.LogLevel = "verbose" }, wantErr: "invalid log level: verbose"},
		{name: "bad format", mutate: func(c *ClientConfig) { c.LogOutputFormat = "xml" }, wantErr: "invalid log output format: xml"},
		{name: "export without path", mutate: func(c *ClientConfig) { c.ExportLogs = true }, wantErr: "log export enabled without a log export path"},
		{name: "negative timeout", mutate: func(c *ClientConfig) { c.CustomTimeout = -time.Second }, wantErr: "timeout cannot be less than 0 seconds"},
		{name: "redirects without limit", mutate: func(c *ClientConfig) { c.FollowRedirects = true; c.MaxRedirects = 0 }, wantErr: "max redirects cannot be less than 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := valid()
			tt.mutate(&config)
			err := validateClientConfig(config)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tt.wantErr)
			}
		})
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("MONDO_HTTP_LOG_LEVEL", "LogLevelDebug")
	t.Setenv("MONDO_HTTP_LOG_OUTPUT_FORMAT", "json")
	t.Setenv("MONDO_HTTP_CUSTOM_TIMEOUT", "30s")
	t.Setenv("MONDO_HTTP_HIDE_SENSITIVE_DATA", "false")
	t.Setenv("MONDO_HTTP_FOLLOW_REDIRECTS", "true")

	config, err := LoadConfigFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "LogLevelDebug", config.LogLevel)
	assert.Equal(t, "json", config.LogOutputFormat)
	assert.Equal(t, 30*time.Second, config.CustomTimeout)
	require.NotNil(t, config.HideSensitiveData)
	assert.False(t, *config.HideSensitiveData)
	assert.True(t, config.FollowRedirects)
	assert.Equal(t, DefaultMaxRedirects, config.MaxRedirects)
	assert.Nil(t, config.Integration)
}

func TestLoadConfigFromEnvInvalid(t *testing.T) {
	t.Setenv("MONDO_HTTP_CUSTOM_TIMEOUT", "soon")

	_, err := LoadConfigFromEnv()
	assert.Error(t, err)
}

func TestBuildClient(t *testing.T) {
	client, err := BuildClient(ClientConfig{
		Integration: mondo.NewIntegration(nil, true),
		LogLevel:    "LogLevelNone",
	}, true)
	require.NoError(t, err)
	assert.Equal(t, DefaultCustomTimeout, client.httpClient().Timeout)
	assert.NotNil(t, client.httpClient().CheckRedirect)

	client.SetTimeout(time.Second)
	assert.Equal(t, time.Second, client.httpClient().Timeout)

	_, err = BuildClient(ClientConfig{}, true)
	assert.ErrorContains(t, err, "invalid configuration")
}

func TestBuildClientProxy(t *testing.T) {
	client, err := BuildClient(ClientConfig{
		Integration: mondo.NewIntegration(nil, true),
		LogLevel:    "LogLevelNone",
		ProxyURL:    "http://proxy.local:3128",
	}, true)
	require.NoError(t, err)
	assert.NotNil(t, client.httpClient().Transport)

	_, err = BuildClient(ClientConfig{
		Integration: mondo.NewIntegration(nil, true),
		LogLevel:    "LogLevelNone",
		ProxyURL:    "gopher://proxy.local",
	}, true)
	assert.ErrorContains(t, err, "failed to configure proxy")
}
