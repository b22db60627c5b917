package infrastructure

import (
	"context"

	"mailmerge.app/internal/ports"
)

// SystemHealthChecker aggregates all health checks
type SystemHealthChecker struct {
	checkers []ports.HealthChecker
}

// NewSystemHealthChecker creates a checker over the given components, skipping nil ones
func NewSystemHealthChecker(checkers ...ports.HealthChecker) *SystemHealthChecker {
	s := &SystemHealthChecker{}
	for _, c := range checkers {
		if c != nil {
			s.checkers = append(s.checkers, c)
		}
	}
	return s
}

// CheckAll performs health checks on all components, keyed by component name
func (s *SystemHealthChecker) CheckAll(ctx context.Context) map[string]ports.HealthStatus {
	results := make(map[string]ports.HealthStatus, len(s.checkers))
	for _, c := range s.checkers {
		status := c.Check(ctx)
		results[status.Component] = status
	}
	return results
}

// Healthy reports whether no component is unhealthy
func Healthy(results map[string]ports.HealthStatus) bool {
	for _, status := range results {
		if status.Status == ports.StatusUnhealthy {
			return false
		}
	}
	return true
}
