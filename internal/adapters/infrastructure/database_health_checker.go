package infrastructure

import (
	"context"

	"gorm.io/gorm"
	"mailmerge.app/internal/ports"
)

// DatabaseHealthChecker reports whether the delivery journal database answers.
// A nil db means the journal is turned off.
type DatabaseHealthChecker struct {
	db *gorm.DB
}

// NewDatabaseHealthChecker creates a new database health checker
func NewDatabaseHealthChecker(db *gorm.DB) *DatabaseHealthChecker {
	return &DatabaseHealthChecker{db: db}
}

// Check pings the journal database
func (d *DatabaseHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "journal",
		Details:   make(map[string]interface{}),
	}

	if d.db == nil {
		status.Status = ports.StatusDisabled
		return status
	}

	sqlDB, err := d.db.DB()
	if err != nil {
		status.Status = ports.StatusUnhealthy
		status.Error = "failed to get underlying database connection"
		return status
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		status.Status = ports.StatusUnhealthy
		status.Error = err.Error()
		return status
	}

	status.Status = ports.StatusHealthy
	status.Details["connected"] = true
	status.Details["open_connections"] = sqlDB.Stats().OpenConnections
	return status
}
