// httpclient/config.go
// Description: defaults, validation and environment loading for ClientConfig.
package httpclient

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/deploymenttheory/go-api-sdk-mondo/logger"
	"github.com/kelseyhightower/envconfig"
)

const (
	DefaultLogLevelString        = "LogLevelWarn"
	DefaultLogOutputFormatString = logger.LogOutputHumanReadable
	DefaultLogConsoleSeparator   = "	"
	DefaultHideSensitiveData     = true
	DefaultCustomTimeout         = 10 * time.Second
	DefaultFollowRedirects       = false
	DefaultMaxRedirects          = 5

	// EnvPrefix prefixes every environment variable read by LoadConfigFromEnv.
	EnvPrefix = "MONDO_HTTP"
)

var validLogLevels = []string{
	"LogLevelDebug",
	"LogLevelInfo",
	"LogLevelWarn",
	"LogLevelError",
	"LogLevelDPanic",
	"LogLevelPanic",
	"LogLevelFatal",
	"LogLevelNone",
}

var validLogFormats = []string{
	logger.LogOutputJSON,
	logger.LogOutputHumanReadable,
}

// LoadConfigFromEnv loads HTTP client configuration settings from MONDO_HTTP_* environment
// variables, e.g. MONDO_HTTP_LOG_LEVEL or MONDO_HTTP_CUSTOM_TIMEOUT=30s. Unset values are
// filled from the defaults. The integration is left for the caller to supply.
func LoadConfigFromEnv() (*ClientConfig, error) {
	var config ClientConfig
	if err := envconfig.Process(EnvPrefix, &config); err != nil {
		return nil, fmt.Errorf("could not load client configuration from environment: %w", err)
	}
	SetDefaultValuesClientConfig(&config)
	return &config, nil
}

// validateClientConfig checks a fully populated configuration.
func validateClientConfig(config ClientConfig) error {
	if config.Integration == nil {
		return errors.New("no api integration supplied")
	}

	if !slices.Contains(validLogLevels, config.LogLevel) {
		return fmt.Errorf("invalid log level: %s", config.LogLevel)
	}

	if !slices.Contains(validLogFormats, config.LogOutputFormat) {
		return fmt.Errorf("invalid log output format: %s", config.LogOutputFormat)
	}

	if config.ExportLogs && config.LogExportPath == "" {
		return errors.New("log export enabled without a log export path")
	}

	if config.CustomTimeout < 0 {
		return errors.New("timeout cannot be less than 0 seconds")
	}

	if config.FollowRedirects && config.MaxRedirects < 1 {
		return errors.New("max redirects cannot be less than 1")
	}

	return nil
}

// SetDefaultValuesClientConfig sets default values for unset fields of the client configuration.
func SetDefaultValuesClientConfig(config *ClientConfig) {
	setDefaultString(&config.LogLevel, DefaultLogLevelString)
	setDefaultString(&config.LogOutputFormat, DefaultLogOutputFormatString)
	setDefaultString(&config.LogConsoleSeparator, DefaultLogConsoleSeparator)
	setDefaultDuration(&config.CustomTimeout, DefaultCustomTimeout)
	setDefaultInt(&config.MaxRedirects, DefaultMaxRedirects, 1)
	if config.HideSensitiveData == nil {
		hide := DefaultHideSensitiveData
		config.HideSensitiveData = &hide
	}
}

func setDefaultString(field *string, defaultValue string) {
	if *field == "" {
		*field = defaultValue
	}
}

// setDefaultInt replaces values below minValue.
func setDefaultInt(field *int, defaultValue, minValue int) {
	if *field < minValue {
		*field = defaultValue
	}
}

func setDefaultDuration(field *time.Duration, defaultValue time.Duration) {
	if *field == 0 {
		*field = defaultValue
	}
}
