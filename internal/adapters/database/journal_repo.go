package database

import (
	"context"
	stderrors "errors"
	"time"

	"gorm.io/gorm"
	"mailmerge.app/internal/ports"
	"mailmerge.app/pkg/errors"
)

// RunModel represents the database model for one merge run
type RunModel struct {
	ID           string `gorm:"primaryKey;size:36"`
	TemplatePath string `gorm:"not null"`
	Source       string `gorm:"not null"`
	Provider     string `gorm:"size:16;not null"`
	Format       string `gorm:"size:8;not null"`
	Status       string `gorm:"size:16;index;not null"`
	Error        string
	Sent         int `gorm:"default:0"`
	Failed       int `gorm:"default:0"`
	Skipped      int `gorm:"default:0"`
	StartedAt    time.Time
	FinishedAt   *time.Time
}

func (RunModel) TableName() string {
	return "merge_runs"
}

// DeliveryModel represents the database model for one recipient outcome
type DeliveryModel struct {
	ID        uint   `gorm:"primaryKey"`
	RunID     string `gorm:"size:36;index;not null"`
	Position  int    `gorm:"not null"`
	Email     string `gorm:"index;not null"`
	Status    string `gorm:"size:16;not null"`
	Detail    string
	CreatedAt time.Time
}

func (DeliveryModel) TableName() string {
	return "deliveries"
}

// JournalRepositoryAdapter implements the DeliveryJournal port using GORM
type JournalRepositoryAdapter struct {
	db *gorm.DB
}

// NewJournalRepositoryAdapter creates a new journal repository adapter
func NewJournalRepositoryAdapter(db *gorm.DB) *JournalRepositoryAdapter {
	return &JournalRepositoryAdapter{db: db}
}

// StartRun inserts the run row
func (r *JournalRepositoryAdapter) StartRun(ctx context.Context, run *ports.RunData) error {
	if run == nil {
		return errors.NewValidationError("run cannot be nil")
	}
	if run.ID == "" {
		return errors.NewValidationError("run ID cannot be empty")
	}

	if err := r.db.WithContext(ctx).Create(runToModel(run)).Error; err != nil {
		return errors.NewDatabaseError("failed to save merge run", err)
	}
	return nil
}

// RecordDelivery appends one recipient outcome
func (r *JournalRepositoryAdapter) RecordDelivery(ctx context.Context, delivery *ports.DeliveryData) error {
	if delivery == nil {
		return errors.NewValidationError("delivery cannot be nil")
	}
	if delivery.RunID == "" {
		return errors.NewValidationError("delivery run ID cannot be empty")
	}

	model := &DeliveryModel{
		RunID:     delivery.RunID,
		Position:  delivery.Position,
		Email:     delivery.Email,
		Status:    delivery.Status,
		Detail:    delivery.Detail,
		CreatedAt: delivery.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return errors.NewDatabaseError("failed to save delivery", err)
	}
	delivery.ID = model.ID
	return nil
}

// FinishRun stores the final status and counts, creating the row if StartRun never succeeded
func (r *JournalRepositoryAdapter) FinishRun(ctx context.Context, run *ports.RunData) error {
	if run == nil {
		return errors.NewValidationError("run cannot be nil")
	}
	if run.ID == "" {
		return errors.NewValidationError("run ID cannot be empty")
	}

	if err := r.db.WithContext(ctx).Save(runToModel(run)).Error; err != nil {
		return errors.NewDatabaseError("failed to update merge run", err)
	}
	return nil
}

// FindRun returns a run and its deliveries in recipient order
func (r *JournalRepositoryAdapter) FindRun(ctx context.Context, id string) (*ports.RunData, []*ports.DeliveryData, error) {
	if id == "" {
		return nil, nil, errors.NewValidationError("run ID cannot be empty")
	}

	var model RunModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&model)
	if result.Error != nil {
		if stderrors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil, errors.NewNotFoundError("merge run not found", nil)
		}
		return nil, nil, errors.NewDatabaseError("failed to find merge run", result.Error)
	}

	var models []DeliveryModel
	if err := r.db.WithContext(ctx).Where("run_id = ?", id).Order("position ASC").Find(&models).Error; err != nil {
		return nil, nil, errors.NewDatabaseError("failed to find deliveries", err)
	}

	deliveries := make([]*ports.DeliveryData, len(models))
	for i, m := range models {
		deliveries[i] = &ports.DeliveryData{
			ID:        m.ID,
			RunID:     m.RunID,
			Position:  m.Position,
			Email:     m.Email,
			Status:    m.Status,
			Detail:    m.Detail,
			CreatedAt: m.CreatedAt,
		}
	}

	return modelToRun(&model), deliveries, nil
}

func runToModel(run *ports.RunData) *RunModel {
	return &RunModel{
		ID:           run.ID,
		TemplatePath: run.TemplatePath,
		Source:       run.Source,
		Provider:     run.Provider,
		Format:       run.Format,
		Status:       run.Status,
		Error:        run.Error,
		Sent:         run.Sent,
		Failed:       run.Failed,
		Skipped:      run.Skipped,
		StartedAt:    run.StartedAt,
		FinishedAt:   run.FinishedAt,
	}
}

func modelToRun(model *RunModel) *ports.RunData {
	return &ports.RunData{
		ID:           model.ID,
		TemplatePath: model.TemplatePath,
		Source:       model.Source,
		Provider:     model.Provider,
		Format:       model.Format,
		Status:       model.Status,
		Error:        model.Error,
		Sent:         model.Sent,
		Failed:       model.Failed,
		Skipped:      model.Skipped,
		StartedAt:    model.StartedAt,
		FinishedAt:   model.FinishedAt,
	}
}
