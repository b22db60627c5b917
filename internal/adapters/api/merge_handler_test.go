package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"mailmerge.app/internal/adapters/database"
	"mailmerge.app/internal/adapters/filesystem"
	"mailmerge.app/internal/adapters/infrastructure"
	"mailmerge.app/internal/core/merge"
	"mailmerge.app/internal/mocks"
	"mailmerge.app/internal/ports"
	"mailmerge.app/pkg/errors"
)

type testServer struct {
	router    *gin.Engine
	transport *mocks.MailTransport
	session   *mocks.MailSession
	metrics   *infrastructure.MergeMetricsCollector
}

func setupMergeTestServer(t *testing.T) *testServer {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))
	journal := database.NewJournalRepositoryAdapter(db)

	registry := prometheus.NewRegistry()
	metrics := infrastructure.NewMergeMetricsCollector(registry)
	transport := mocks.NewMailTransport(t)
	session := mocks.NewMailSession(t)

	useCase, err := merge.NewUseCase(merge.UseCaseDependencies{
		TemplateLoader:  filesystem.NewTemplateLoaderAdapter(),
		RecipientLoader: filesystem.NewRecipientLoaderAdapter(),
		Transport:       transport,
		Journal:         journal,
		Metrics:         metrics,
		Logger:          infrastructure.NewSlogLoggerAdapter(slog.New(slog.NewTextHandler(io.Discard, nil))),
	})
	require.NoError(t, err)

	server, err := NewHTTPServerAdapter(ServerOptions{
		Config:       ServerConfig{Port: 8080},
		MergeUseCase: useCase,
		Runs:         journal,
		Stats:        metrics,
		Health: infrastructure.NewSystemHealthChecker(
			infrastructure.NewDatabaseHealthChecker(db),
		),
		Gatherer: registry,
		Defaults: MergeDefaults{
			Provider:    ports.ProviderGmail,
			Credentials: ports.Credentials{Email: "sender@gmail.com", Password: "pw"},
			Format:      ports.FormatPlain,
		},
	})
	require.NoError(t, err)

	return &testServer{router: server.GetRouter(), transport: transport, session: session, metrics: metrics}
}

func (s *testServer) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func TestMergeHandler_CreateAndFetch(t *testing.T) {
	srv := setupMergeTestServer(t)

	srv.transport.EXPECT().Open(mock.Anything, ports.ProviderOutlook, mock.Anything).Return(srv.session, nil)
	srv.session.EXPECT().Send(mock.Anything, ports.OutgoingMessage{
		To: "ann@x.com", Subject: "Hi", Body: "<b>Ann</b>", Format: ports.FormatHTML,
	}).Return(nil)
	srv.session.EXPECT().Close().Return(nil)

	html := true
	w := srv.do(t, http.MethodPost, "/api/merges", MergeRequest{
		Template: "<b>{{name}}</b>",
		Recipients: []map[string]string{
			{"email": "ann@x.com", "name": "Ann", "subject": "Hi"},
			{"email": "bo@x.com"},
		},
		Service: "Outlook",
		HTML:    &html,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var created struct {
		RunID      string `json:"run_id"`
		Total      int    `json:"total"`
		Sent       int    `json:"sent"`
		Skipped    int    `json:"skipped"`
		Deliveries []struct {
			Email   string   `json:"email"`
			Status  string   `json:"status"`
			Missing []string `json:"missing"`
		} `json:"deliveries"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotEmpty(t, created.RunID)
	assert.Equal(t, 2, created.Total)
	assert.Equal(t, 1, created.Sent)
	assert.Equal(t, 1, created.Skipped)
	require.Len(t, created.Deliveries, 2)
	assert.Equal(t, "success", created.Deliveries[0].Status)
	assert.Equal(t, "skipped", created.Deliveries[1].Status)
	assert.Equal(t, []string{"name"}, created.Deliveries[1].Missing)

	w = srv.do(t, http.MethodGet, "/api/merges/"+created.RunID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var run RunResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &run))
	assert.Equal(t, ports.RunStatusCompleted, run.Status)
	assert.Equal(t, "inline", run.Template)
	assert.Equal(t, "memory", run.Source)
	assert.Equal(t, "outlook", run.Service)
	assert.Equal(t, "html", run.Format)
	require.Len(t, run.Deliveries, 2)
	assert.Equal(t, "success", run.Deliveries[0].Status)
	assert.Equal(t, "skipped", run.Deliveries[1].Status)

	w = srv.do(t, http.MethodGet, "/api/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var stats map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, float64(1), stats["sent"])
	assert.Equal(t, float64(1), stats["completed"])
}

func TestMergeHandler_InvalidBody(t *testing.T) {
	srv := setupMergeTestServer(t)

	w := srv.do(t, http.MethodPost, "/api/merges", map[string]interface{}{"recipients": []interface{}{}})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var response ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Invalid request format", response.Error)
}

func TestMergeHandler_UnsupportedService(t *testing.T) {
	srv := setupMergeTestServer(t)

	w := srv.do(t, http.MethodPost, "/api/merges", MergeRequest{
		Template:   "Hi",
		Recipients: []map[string]string{{"email": "a@x.com"}},
		Service:    "yahoo",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var response ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "CONFIGURATION_ERROR", response.Type)
	assert.Contains(t, response.Error, "unsupported email service")
}

func TestMergeHandler_ConnectionFailure(t *testing.T) {
	srv := setupMergeTestServer(t)
	srv.transport.EXPECT().Open(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.NewConnectionError("failed to authenticate", nil))

	w := srv.do(t, http.MethodPost, "/api/merges", MergeRequest{
		Template:   "Hi",
		Recipients: []map[string]string{{"email": "a@x.com"}},
	})

	assert.Equal(t, http.StatusBadGateway, w.Code)
	var response ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "CONNECTION_ERROR", response.Type)
}

func TestMergeHandler_RunNotFound(t *testing.T) {
	srv := setupMergeTestServer(t)

	w := srv.do(t, http.MethodGet, "/api/merges/does-not-exist", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	var response ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "merge run not found", response.Error)
}

func TestHealthAndMetricsEndpoints(t *testing.T) {
	srv := setupMergeTestServer(t)
	srv.metrics.RecordRun(ports.RunCompleted)

	w := srv.do(t, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var health map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &health))
	assert.Equal(t, "healthy", health["status"])

	w = srv.do(t, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `mailmerge_runs_total{result="completed"} 1`)
}

func TestNewHTTPServerAdapter_RequiresDependencies(t *testing.T) {
	server, err := NewHTTPServerAdapter(ServerOptions{})
	assert.Nil(t, server)
	assert.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}
