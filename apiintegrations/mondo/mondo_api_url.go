// mondo_api_url.go
package mondo

import (
	"strings"

	"go.uber.org/zap"
)

// Domain returns the base URL requests are sent to.
func (m *Integration) Domain() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.BaseDomain != "" {
		return m.BaseDomain
	}
	return DefaultBaseDomain
}

// SetBaseDomain points the integration at another host, e.g. a staging API. A host without a
// scheme is assumed to be https; an empty host restores DefaultBaseDomain.
func (m *Integration) SetBaseDomain(host string) {
	host = strings.TrimRight(strings.TrimSpace(host), "/")
	if host != "" && !strings.Contains(host, "://") {
		host = "https://" + host
	}

	m.mu.Lock()
	m.BaseDomain = host
	m.mu.Unlock()

	m.log().Debug("Base domain set", zap.String("api", APIName), zap.String("domain", m.Domain()))
}
