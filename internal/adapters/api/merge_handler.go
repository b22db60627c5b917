package api

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"mailmerge.app/internal/core/merge"
	"mailmerge.app/internal/ports"
	"mailmerge.app/pkg/errors"
)

// MergeRequest represents the HTTP request for starting a merge with inline data
type MergeRequest struct {
	Template   string              `json:"template" binding:"required"`
	Recipients []map[string]string `json:"recipients" binding:"required"`
	Service    string              `json:"service"`
	HTML       *bool               `json:"html"`
}

// MergeResponse represents the outcome of a merge run
type MergeResponse struct {
	RunID      string           `json:"run_id"`
	Total      int              `json:"total"`
	Sent       int              `json:"sent"`
	Failed     int              `json:"failed"`
	Skipped    int              `json:"skipped"`
	Duration   string           `json:"duration"`
	Deliveries []merge.Delivery `json:"deliveries"`
}

// RunResponse represents a journaled run
type RunResponse struct {
	ID         string             `json:"id"`
	Template   string             `json:"template"`
	Source     string             `json:"source"`
	Service    string             `json:"service"`
	Format     string             `json:"format"`
	Status     string             `json:"status"`
	Error      string             `json:"error,omitempty"`
	Sent       int                `json:"sent"`
	Failed     int                `json:"failed"`
	Skipped    int                `json:"skipped"`
	StartedAt  time.Time          `json:"started_at"`
	FinishedAt *time.Time         `json:"finished_at,omitempty"`
	Deliveries []DeliveryResponse `json:"deliveries"`
}

// DeliveryResponse represents one journaled recipient outcome
type DeliveryResponse struct {
	Position int    `json:"position"`
	Email    string `json:"email"`
	Status   string `json:"status"`
	Detail   string `json:"detail"`
}

// createMerge handles POST /api/merges requests
func (s *HTTPServerAdapter) createMerge(c *gin.Context) {
	var httpReq MergeRequest
	if err := c.ShouldBindJSON(&httpReq); err != nil {
		slog.Error("Request binding error", "error", err)
		s.handleError(c, errors.NewValidationError("Invalid request format"))
		return
	}

	req := merge.MergeRequest{
		TemplatePath: "inline",
		TemplateText: httpReq.Template,
		Source:       ports.InMemory{Records: toRecipients(httpReq.Recipients)},
		Provider:     s.defaults.Provider,
		Credentials:  s.defaults.Credentials,
		Format:       s.defaults.Format,
	}
	if service := strings.TrimSpace(httpReq.Service); service != "" {
		req.Provider = ports.Provider(strings.ToLower(service))
	}
	if httpReq.HTML != nil {
		req.Format = ports.FormatFromHTMLFlag(*httpReq.HTML)
	}

	slog.Debug("Merge request received", "recipients", len(httpReq.Recipients), "service", req.Provider)

	s.runMu.Lock()
	report, err := s.mergeUseCase.Run(c.Request.Context(), req)
	s.runMu.Unlock()

	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, MergeResponse{
		RunID:      report.RunID,
		Total:      report.Total(),
		Sent:       report.Sent,
		Failed:     report.Failed,
		Skipped:    report.Skipped,
		Duration:   report.Duration.String(),
		Deliveries: report.Deliveries,
	})
}

// getMerge handles GET /api/merges/:id requests
func (s *HTTPServerAdapter) getMerge(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		s.handleError(c, errors.NewValidationError("run id is required"))
		return
	}

	run, deliveries, err := s.runs.FindRun(c.Request.Context(), id)
	if err != nil {
		s.handleError(c, err)
		return
	}

	resp := RunResponse{
		ID:         run.ID,
		Template:   run.TemplatePath,
		Source:     run.Source,
		Service:    run.Provider,
		Format:     run.Format,
		Status:     run.Status,
		Error:      run.Error,
		Sent:       run.Sent,
		Failed:     run.Failed,
		Skipped:    run.Skipped,
		StartedAt:  run.StartedAt,
		FinishedAt: run.FinishedAt,
		Deliveries: make([]DeliveryResponse, len(deliveries)),
	}
	for i, d := range deliveries {
		resp.Deliveries[i] = DeliveryResponse{
			Position: d.Position,
			Email:    d.Email,
			Status:   d.Status,
			Detail:   d.Detail,
		}
	}

	c.JSON(http.StatusOK, resp)
}

// getStats handles GET /api/stats requests
func (s *HTTPServerAdapter) getStats(c *gin.Context) {
	c.JSON(http.StatusOK, s.stats.GetStats())
}

// getHealth handles GET /health requests
func (s *HTTPServerAdapter) getHealth(c *gin.Context) {
	results := s.health.CheckAll(c.Request.Context())

	status := http.StatusOK
	overall := ports.StatusHealthy
	for _, r := range results {
		if r.Status == ports.StatusUnhealthy {
			status = http.StatusServiceUnavailable
			overall = ports.StatusUnhealthy
			break
		}
	}

	c.JSON(status, gin.H{
		"status":     overall,
		"components": results,
	})
}

func toRecipients(records []map[string]string) []ports.Recipient {
	out := make([]ports.Recipient, len(records))
	for i, r := range records {
		out[i] = ports.Recipient(r)
	}
	return out
}
