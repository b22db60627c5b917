package ports

import "time"

// Logger defines the contract for structured logging
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field represents a log field
type Field struct {
	Key   string
	Value interface{}
}

// F creates a log field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Delivery outcomes as reported to metrics.
const (
	OutcomeSent    = "sent"
	OutcomeFailed  = "failed"
	OutcomeSkipped = "skipped"
)

// Run results as reported to metrics.
const (
	RunCompleted = "completed"
	RunAborted   = "aborted"
)

// MergeMetrics defines the contract for merge metrics collection
type MergeMetrics interface {
	RecordDelivery(outcome string, duration time.Duration)
	RecordRun(result string)
}
