// internal/cli/config.go
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/deploymenttheory/go-api-sdk-mondo/httpclient"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix prefixes every environment variable the command line reads.
const EnvPrefix = "MONDO"

// Config holds the command line defaults read from the environment.
//
// Any parameter can also be defaulted with MONDO_<PARAM>, e.g. MONDO_LIMIT=5. Defaults holds
// further values keyed by parameter or by command.parameter, e.g.
// MONDO_DEFAULTS="transactions.limit:3,output_space:0".
type Config struct {
	AccessToken  string            `envconfig:"ACCESS_TOKEN"`
	RefreshToken string            `envconfig:"REFRESH_TOKEN"`
	AccountID    string            `envconfig:"ACCOUNT_ID"`
	ClientID     string            `envconfig:"CLIENT_ID"`
	ClientSecret string            `envconfig:"CLIENT_SECRET"`
	Host         string            `envconfig:"HOST"`
	Defaults     map[string]string `envconfig:"DEFAULTS"`

	HTTP httpclient.ClientConfig `ignored:"true"`
}

// LoadConfig reads the command line configuration and the HTTP client configuration
// (MONDO_HTTP_*) from the environment.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}

	httpConfig, err := httpclient.LoadConfigFromEnv()
	if err != nil {
		return nil, fmt.Errorf("loading http configuration: %w", err)
	}
	cfg.HTTP = *httpConfig
	return &cfg, nil
}

// Default returns the default value of param for command. An environment variable named after
// the parameter wins, then the well-known fields, then command.param and param entries of Defaults.
func (c *Config) Default(command, param string) (string, bool) {
	if v, ok := os.LookupEnv(envName(param)); ok {
		return v, true
	}

	if v := c.wellKnown(param); v != "" {
		return v, true
	}

	if v, ok := c.Defaults[command+"."+param]; ok {
		return v, true
	}
	if v, ok := c.Defaults[param]; ok {
		return v, true
	}
	return "", false
}

func (c *Config) wellKnown(param string) string {
	switch param {
	case "access_token":
		return c.AccessToken
	case "refresh_token":
		return c.RefreshToken
	case "account_id":
		return c.AccountID
	case "client_id":
		return c.ClientID
	case "client_secret":
		return c.ClientSecret
	default:
		return ""
	}
}

func envName(param string) string {
	name := strings.ToUpper(strings.NewReplacer(".", "_", "-", "_").Replace(param))
	return EnvPrefix + "_" + name
}
