package routes

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"portal_posvenda/internal/adapter/http/handlers"
	"portal_posvenda/internal/adapter/persistence/repository"
	"portal_posvenda/internal/domain/entities"
	"portal_posvenda/internal/infrastructure/metrics"
	"portal_posvenda/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

func newTestRouter(t *testing.T, readiness map[string]ReadinessCheck) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	configs := usecase.NewSLAConfigStore(nil, entities.DefaultSLAConfigs())
	calc := usecase.NewSLACalculator(configs)
	flow := usecase.NewWarrantyFlowUseCase(configs, calc, nil, nil, m)
	clients := usecase.NewClientStageUseCase(nil)
	notifications := usecase.NewNotificationUseCase(repository.NewNotificationMemoryRepository(), nil)
	audit := usecase.NewAuditLogUseCase(repository.NewAuditLogMemoryRepository(), nil)
	automation := usecase.NewWarrantyAutomationUseCase(flow, calc, notifications, audit, clients,
		repository.NewSLAAlertMemoryLedger(), usecase.AutomationOptions{AdminRecipientID: "admin"}, nil, m)

	return NewRouter(Handlers{
		Warranty:  handlers.NewWarrantyHandler(flow, automation, nil),
		SLAConfig: handlers.NewSLAConfigHandler(configs),
		Client:    handlers.NewClientHandler(clients, automation, notifications, nil),
		AuditLog:  handlers.NewAuditLogHandler(audit),
	}, nil, Options{Gatherer: reg, Readiness: readiness})
}

func serve(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRouter_Probes(t *testing.T) {
	t.Run("ping and liveness", func(t *testing.T) {
		r := newTestRouter(t, nil)
		if w := serve(r, http.MethodGet, "/v1/ping", ""); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		w := serve(r, http.MethodGet, "/health/live", "")
		if w.Code != http.StatusOK || w.Header().Get(requestIDHeader) == "" {
			t.Fatalf("unexpected liveness response: %d %v", w.Code, w.Header())
		}
	})

	t.Run("readiness reports failing check", func(t *testing.T) {
		r := newTestRouter(t, map[string]ReadinessCheck{
			"redis": func(context.Context) error { return errors.New("connection refused") },
		})
		if w := serve(r, http.MethodGet, "/health/ready", ""); w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("metrics exposes transition counter", func(t *testing.T) {
		r := newTestRouter(t, nil)
		w := serve(r, http.MethodGet, "/metrics", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

// TestRouter_WarrantyLifecycle drives a claim from registration to completion over HTTP.
func TestRouter_WarrantyLifecycle(t *testing.T) {
	r := newTestRouter(t, nil)

	steps := []struct {
		method, path, body string
		want               int
	}{
		{http.MethodPost, "/v1/clients", `{"id":"c1","name":"Maria","stage":"inspection_enabled"}`, http.StatusCreated},
		{http.MethodPost, "/v1/warranties", `{"client_id":"c1","property_id":"p1","title":"Vazamento","category":"Elétrica"}`, http.StatusForbidden},
		{http.MethodPost, "/v1/clients/c1/inspections/insp-1/accept", ``, http.StatusOK},
	}
	for _, s := range steps {
		if w := serve(r, s.method, s.path, s.body); w.Code != s.want {
			t.Fatalf("%s %s: expected %d, got %d (%s)", s.method, s.path, s.want, w.Code, w.Body.String())
		}
	}

	w := serve(r, http.MethodPost, "/v1/warranties", `{"client_id":"c1","property_id":"p1","title":"Vazamento","category":"Elétrica"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%s)", w.Code, w.Body.String())
	}
	id := extractRequestID(t, w.Body.String())

	flow := []struct {
		method, path, body string
		want               int
	}{
		{http.MethodPatch, "/v1/warranties/" + id + "/stage", `{"stage":"completed","changed_by":"admin"}`, http.StatusConflict},
		{http.MethodPatch, "/v1/warranties/" + id + "/stage", `{"stage":"bogus","changed_by":"admin"}`, http.StatusBadRequest},
		{http.MethodPatch, "/v1/warranties/" + id + "/stage", `{"stage":"in_analysis","from_stage":"nowhere","changed_by":"admin"}`, http.StatusBadRequest},
		{http.MethodPatch, "/v1/warranties/" + id + "/stage", `{"stage":"in_analysis","from_stage":"opened","changed_by":"admin"}`, http.StatusOK},
		{http.MethodPost, "/v1/warranties/" + id + "/inspection/schedule", `{"inspection_date":"2030-01-10T14:00:00Z","technician_id":"t1","scheduled_by":"admin"}`, http.StatusOK},
		{http.MethodPost, "/v1/warranties/" + id + "/inspection/complete", `{"performed_by":"t1"}`, http.StatusOK},
		{http.MethodPost, "/v1/warranties/" + id + "/approve", `{"performed_by":"admin"}`, http.StatusOK},
		{http.MethodPost, "/v1/warranties/" + id + "/execution/start", `{"performed_by":"admin"}`, http.StatusOK},
		{http.MethodPost, "/v1/warranties/" + id + "/complete", `{"performed_by":"admin"}`, http.StatusOK},
		{http.MethodPost, "/v1/warranties/" + id + "/approve", `{"performed_by":"admin"}`, http.StatusConflict},
		{http.MethodGet, "/v1/warranties/" + id + "/timeline", ``, http.StatusOK},
		{http.MethodGet, "/v1/warranties/kanban", ``, http.StatusOK},
		{http.MethodGet, "/v1/warranties/metrics", ``, http.StatusOK},
		{http.MethodGet, "/v1/clients/c1/notifications", ``, http.StatusOK},
		{http.MethodGet, "/v1/audit-logs?entity_type=warranty&entity_id=" + id, ``, http.StatusOK},
	}
	for _, s := range flow {
		if w := serve(r, s.method, s.path, s.body); w.Code != s.want {
			t.Fatalf("%s %s: expected %d, got %d (%s)", s.method, s.path, s.want, w.Code, w.Body.String())
		}
	}
}

func extractRequestID(t *testing.T, body string) string {
	t.Helper()
	const marker = `"request":{"id":"`
	i := strings.Index(body, marker)
	if i < 0 {
		t.Fatalf("request id not found in %s", body)
	}
	rest := body[i+len(marker):]
	return rest[:strings.Index(rest, `"`)]
}
