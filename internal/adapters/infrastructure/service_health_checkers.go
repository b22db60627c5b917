package infrastructure

import (
	"context"

	"mailmerge.app/internal/ports"
)

// EndpointResolver maps a service name to its SMTP address
type EndpointResolver interface {
	ResolveAddr(provider ports.Provider) (string, error)
}

// MailHealthChecker reports whether the configured sender account can be used.
// It never opens a connection.
type MailHealthChecker struct {
	provider    ports.Provider
	credentials ports.Credentials
	resolver    EndpointResolver
	validate    func(ports.Credentials) error
}

// MailHealthCheckerConfig holds the configuration for creating a mail health checker
type MailHealthCheckerConfig struct {
	Provider    ports.Provider
	Credentials ports.Credentials
	Resolver    EndpointResolver
	Validate    func(ports.Credentials) error
}

// NewMailHealthChecker creates a new mail health checker
func NewMailHealthChecker(config MailHealthCheckerConfig) *MailHealthChecker {
	return &MailHealthChecker{
		provider:    config.Provider,
		credentials: config.Credentials,
		resolver:    config.Resolver,
		validate:    config.Validate,
	}
}

// Check verifies the service resolves and the credentials are complete
func (m *MailHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "smtp",
		Status:    ports.StatusHealthy,
		Details: map[string]interface{}{
			"service": m.provider.String(),
			"login":   m.credentials.Login(),
		},
	}

	if m.resolver != nil {
		addr, err := m.resolver.ResolveAddr(m.provider)
		if err != nil {
			status.Status = ports.StatusUnhealthy
			status.Error = err.Error()
			return status
		}
		status.Details["address"] = addr
	}

	if m.validate != nil {
		if err := m.validate(m.credentials); err != nil {
			status.Status = ports.StatusUnhealthy
			status.Error = err.Error()
		}
	}
	return status
}
