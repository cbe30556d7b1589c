package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"portal_posvenda/internal/adapter/http/handlers/mocks"
	"portal_posvenda/internal/domain/entities"
	"portal_posvenda/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

type warrantyFixture struct {
	flow       *mocks.MockIWarrantyFlowUseCase
	automation *mocks.MockIWarrantyAutomationUseCase
	router     *gin.Engine
}

func newWarrantyFixture(t *testing.T) warrantyFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	f := warrantyFixture{
		flow:       mocks.NewMockIWarrantyFlowUseCase(ctrl),
		automation: mocks.NewMockIWarrantyAutomationUseCase(ctrl),
		router:     gin.New(),
	}
	h := NewWarrantyHandler(f.flow, f.automation, nil)
	f.router.POST("/v1/warranties", h.CreateWarranty)
	f.router.GET("/v1/warranties", h.ListWarranties)
	f.router.GET("/v1/warranties/:id", h.GetWarranty)
	f.router.GET("/v1/warranties/:id/sla", h.SLAInfo)
	f.router.PATCH("/v1/warranties/:id/stage", h.ChangeStage)
	f.router.POST("/v1/warranties/:id/approve", h.ApproveWarranty)
	f.router.POST("/v1/warranties/:id/reject", h.RejectWarranty)
	f.router.POST("/v1/warranties/:id/inspection/schedule", h.ScheduleInspection)
	return f
}

func (f warrantyFixture) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body %q: %v", w.Body.String(), err)
	}
	return body
}

func TestWarrantyHandler_CreateWarranty(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		f := newWarrantyFixture(t)
		if w := f.do(http.MethodPost, "/v1/warranties", "{"); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing required fields", func(t *testing.T) {
		f := newWarrantyFixture(t)
		if w := f.do(http.MethodPost, "/v1/warranties", `{"client_id":"client-1"}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("warranty not enabled", func(t *testing.T) {
		f := newWarrantyFixture(t)
		f.automation.EXPECT().RequestWarranty(gomock.Any(), gomock.Any()).
			Return(entities.WarrantyRequestFlow{}, entities.AutomationResult{}, usecase.ErrWarrantyNotEnabled)

		w := f.do(http.MethodPost, "/v1/warranties", `{"client_id":"client-1","property_id":"prop-1","title":"Vazamento","category":"Elétrica"}`)
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		f := newWarrantyFixture(t)
		f.automation.EXPECT().RequestWarranty(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, in entities.NewWarrantyRequestInput) (entities.WarrantyRequestFlow, entities.AutomationResult, error) {
				if in.ClientID != "client-1" || in.Priority != entities.PriorityHigh {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.WarrantyRequestFlow{ID: "req-1", ClientID: in.ClientID, CurrentStage: entities.WarrantyStageOpened},
					entities.AutomationResult{Success: true, Actions: []string{"notification_sent"}}, nil
			})

		w := f.do(http.MethodPost, "/v1/warranties", `{"client_id":"client-1","property_id":"prop-1","title":"Vazamento","category":"Elétrica","priority":"high"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		body := decodeBody(t, w)
		req, _ := body["request"].(map[string]any)
		if req["id"] != "req-1" || req["current_stage"] != "opened" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestWarrantyHandler_ChangeStage(t *testing.T) {
	t.Run("plain change goes through change status", func(t *testing.T) {
		f := newWarrantyFixture(t)
		f.automation.EXPECT().ChangeStatus(gomock.Any(), "req-1", entities.WarrantyStageInAnalysis, "admin", "triagem").
			Return(entities.WarrantyRequestFlow{ID: "req-1", CurrentStage: entities.WarrantyStageInAnalysis}, entities.AutomationResult{Success: true}, nil)

		w := f.do(http.MethodPatch, "/v1/warranties/req-1/stage", `{"stage":"in_analysis","changed_by":"admin","notes":"triagem"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("from stage marks a kanban drop", func(t *testing.T) {
		f := newWarrantyFixture(t)
		f.automation.EXPECT().OnKanbanDrop(gomock.Any(), "req-1", entities.WarrantyStageOpened, entities.WarrantyStageInAnalysis, "admin").
			Return(entities.WarrantyRequestFlow{ID: "req-1", CurrentStage: entities.WarrantyStageInAnalysis}, entities.AutomationResult{Success: true}, nil)

		w := f.do(http.MethodPatch, "/v1/warranties/req-1/stage", `{"stage":"in_analysis","from_stage":"opened","changed_by":"admin"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("invalid transition is localized", func(t *testing.T) {
		f := newWarrantyFixture(t)
		err := fmt.Errorf("change status: %w", &usecase.TransitionError{From: entities.WarrantyStageOpened, To: entities.WarrantyStageCompleted})
		f.automation.EXPECT().ChangeStatus(gomock.Any(), "req-1", entities.WarrantyStageCompleted, "admin", "").
			Return(entities.WarrantyRequestFlow{}, entities.AutomationResult{}, err)

		w := f.do(http.MethodPatch, "/v1/warranties/req-1/stage", `{"stage":"completed","changed_by":"admin"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if msg := decodeBody(t, w)["message"]; msg != "Transição inválida de Solicitação Aberta para Finalizada" {
			t.Fatalf("unexpected message: %v", msg)
		}
	})

	t.Run("unknown stage is a bad request", func(t *testing.T) {
		f := newWarrantyFixture(t)
		f.automation.EXPECT().ChangeStatus(gomock.Any(), "req-1", entities.WarrantyStage("bogus"), "admin", "").
			Return(entities.WarrantyRequestFlow{}, entities.AutomationResult{}, fmt.Errorf("%w: %q", usecase.ErrInvalidStage, "bogus"))

		w := f.do(http.MethodPatch, "/v1/warranties/req-1/stage", `{"stage":"bogus","changed_by":"admin"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["code"] != "INVALID_STAGE" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("unknown origin on kanban drop is a bad request", func(t *testing.T) {
		f := newWarrantyFixture(t)
		f.automation.EXPECT().OnKanbanDrop(gomock.Any(), "req-1", entities.WarrantyStage("nowhere"), entities.WarrantyStageInAnalysis, "admin").
			Return(entities.WarrantyRequestFlow{}, entities.AutomationResult{}, fmt.Errorf("%w: %q", usecase.ErrInvalidStage, "nowhere"))

		w := f.do(http.MethodPatch, "/v1/warranties/req-1/stage", `{"stage":"in_analysis","from_stage":"nowhere","changed_by":"admin"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("final request", func(t *testing.T) {
		f := newWarrantyFixture(t)
		f.automation.EXPECT().ChangeStatus(gomock.Any(), "req-1", entities.WarrantyStageInAnalysis, "admin", "").
			Return(entities.WarrantyRequestFlow{}, entities.AutomationResult{}, usecase.ErrRequestAlreadyFinal)

		w := f.do(http.MethodPatch, "/v1/warranties/req-1/stage", `{"stage":"in_analysis","changed_by":"admin"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if msg := decodeBody(t, w)["message"]; msg != "Não é possível alterar uma solicitação finalizada" {
			t.Fatalf("unexpected message: %v", msg)
		}
	})
}

func TestWarrantyHandler_Transitions(t *testing.T) {
	t.Run("approve passes notes and actor", func(t *testing.T) {
		f := newWarrantyFixture(t)
		f.automation.EXPECT().ApproveWarranty(gomock.Any(), "req-1", "coberto", "admin").
			Return(entities.WarrantyRequestFlow{ID: "req-1", CurrentStage: entities.WarrantyStageApproved}, entities.AutomationResult{Success: true}, nil)

		if w := f.do(http.MethodPost, "/v1/warranties/req-1/approve", `{"notes":"coberto","performed_by":"admin"}`); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("reject requires reason", func(t *testing.T) {
		f := newWarrantyFixture(t)
		if w := f.do(http.MethodPost, "/v1/warranties/req-1/reject", `{"rejected_by":"admin"}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("schedule inspection parses date", func(t *testing.T) {
		f := newWarrantyFixture(t)
		want := time.Date(2025, 1, 10, 14, 0, 0, 0, time.UTC)
		f.automation.EXPECT().ScheduleInspection(gomock.Any(), "req-1", want, "tech-1", "Carlos", "admin").
			Return(entities.WarrantyRequestFlow{ID: "req-1"}, entities.AutomationResult{Success: true}, nil)

		w := f.do(http.MethodPost, "/v1/warranties/req-1/inspection/schedule",
			`{"inspection_date":"2025-01-10T14:00:00Z","technician_id":"tech-1","technician_name":"Carlos","scheduled_by":"admin"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("unknown request", func(t *testing.T) {
		f := newWarrantyFixture(t)
		f.automation.EXPECT().ApproveWarranty(gomock.Any(), "ghost", "", "admin").
			Return(entities.WarrantyRequestFlow{}, entities.AutomationResult{}, usecase.ErrWarrantyRequestNotFound)

		if w := f.do(http.MethodPost, "/v1/warranties/ghost/approve", `{"performed_by":"admin"}`); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestWarrantyHandler_Reads(t *testing.T) {
	t.Run("list binds filters", func(t *testing.T) {
		f := newWarrantyFixture(t)
		f.flow.EXPECT().List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, filters entities.WarrantyFilters) []entities.WarrantyRequestFlow {
				if filters.Category != "Elétrica" || filters.SLAStatus != entities.SLAStatusWarning || filters.DateFrom == nil {
					t.Fatalf("unexpected filters: %+v", filters)
				}
				return []entities.WarrantyRequestFlow{{ID: "req-1"}}
			})

		w := f.do(http.MethodGet, "/v1/warranties?category=El%C3%A9trica&sla_status=warning&date_from=2025-01-01", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("list rejects bad date", func(t *testing.T) {
		f := newWarrantyFixture(t)
		if w := f.do(http.MethodGet, "/v1/warranties?date_from=ontem", ""); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("get not found", func(t *testing.T) {
		f := newWarrantyFixture(t)
		f.flow.EXPECT().GetByID(gomock.Any(), "ghost").Return(entities.WarrantyRequestFlow{}, usecase.ErrWarrantyRequestNotFound)

		w := f.do(http.MethodGet, "/v1/warranties/ghost", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if msg := decodeBody(t, w)["message"]; msg != "Solicitação não encontrada" {
			t.Fatalf("unexpected message: %v", msg)
		}
	})

	t.Run("sla info", func(t *testing.T) {
		f := newWarrantyFixture(t)
		f.flow.EXPECT().SLAInfo(gomock.Any(), "req-1").
			Return(entities.SLADeadlineInfo{Stage: entities.WarrantyStageInAnalysis, HoursRemaining: 9, Status: entities.SLAStatusWarning}, nil)

		w := f.do(http.MethodGet, "/v1/warranties/req-1/sla", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["status"] != "warning" || body["hours_remaining"] != float64(9) {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}
