package ports

import (
	"context"
	"time"
)

// Run statuses stored in the journal
const (
	RunStatusRunning   = "running"
	RunStatusCompleted = "completed"
	RunStatusAborted   = "aborted"
)

// RunData represents one merge run as stored in the journal
type RunData struct {
	ID           string
	TemplatePath string
	Source       string
	Provider     string
	Format       string
	Status       string
	Error        string
	Sent         int
	Failed       int
	Skipped      int
	StartedAt    time.Time
	FinishedAt   *time.Time
}

// DeliveryData represents one recipient outcome as stored in the journal
type DeliveryData struct {
	ID        uint
	RunID     string
	Position  int
	Email     string
	Status    string
	Detail    string
	CreatedAt time.Time
}

// DeliveryJournal records runs and their per-recipient outcomes
type DeliveryJournal interface {
	StartRun(ctx context.Context, run *RunData) error
	RecordDelivery(ctx context.Context, delivery *DeliveryData) error
	FinishRun(ctx context.Context, run *RunData) error
	FindRun(ctx context.Context, id string) (*RunData, []*DeliveryData, error)
}
