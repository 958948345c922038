// mondo_api_handler.go
package mondo

import (
	"sync"

	"github.com/deploymenttheory/go-api-sdk-mondo/logger"
)

const (
	APIName           = "mondo"                          // APIName: represents the name of the API.
	DefaultBaseDomain = "https://production-api.gmon.io" // DefaultBaseDomain: production host of the API.
	AuthMethod        = "bearer"                         // AuthMethod: the only authentication scheme the API accepts.
)

// Integration implements the httpclient.APIIntegration interface for the Mondo API.
type Integration struct {
	BaseDomain        string        // BaseDomain overrides DefaultBaseDomain when set.
	HideSensitiveData bool          // HideSensitiveData redacts credentials in debug logs.
	Logger            logger.Logger // Logger is the structured logger used for logging.

	mu sync.RWMutex
}

// NewIntegration returns an Integration pointed at DefaultBaseDomain.
func NewIntegration(log logger.Logger, hideSensitiveData bool) *Integration {
	if log == nil {
		log = logger.NewNopLogger()
	}
	return &Integration{Logger: log, HideSensitiveData: hideSensitiveData}
}

// AuthMethodDescriptor returns a string representation of the authentication method.
func (m *Integration) AuthMethodDescriptor() string {
	return AuthMethod
}

func (m *Integration) log() logger.Logger {
	if m.Logger == nil {
		return logger.NewNopLogger()
	}
	return m.Logger
}
