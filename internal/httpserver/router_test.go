package httpserver

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"roastery-admin/internal/domain"
	adminsvc "roastery-admin/internal/service/admin"
	dashboardsvc "roastery-admin/internal/service/dashboard"
	ordersvc "roastery-admin/internal/service/order"

	"github.com/gin-gonic/gin"
)

func logDiscard() *log.Logger {
	return log.New(io.Discard, "", 0)
}

type stubOrderSvc struct {
	createResult *ordersvc.CreateResult
	createErr    error
	getResult    *domain.Order
	getErr       error
	updateErr    error
	lastStatusID string
	lastStatus   domain.OrderStatus
	lastTracking string
}

func (s *stubOrderSvc) Create(_ context.Context, _ ordersvc.CreateInput) (*ordersvc.CreateResult, error) {
	return s.createResult, s.createErr
}

func (s *stubOrderSvc) Get(_ context.Context, _ string) (*domain.Order, error) {
	return s.getResult, s.getErr
}

func (s *stubOrderSvc) UpdateStatus(_ context.Context, id string, status domain.OrderStatus, trackingID string) error {
	s.lastStatusID = id
	s.lastStatus = status
	s.lastTracking = trackingID
	return s.updateErr
}

type stubDashboardSvc struct {
	snap dashboardsvc.Snapshot
}

func (s *stubDashboardSvc) Refresh(_ context.Context) dashboardsvc.Snapshot {
	return s.snap
}

type stubAdminSvc struct {
	admin *domain.Admin
	err   error
}

func (s *stubAdminSvc) Create(_ context.Context, _ adminsvc.CreateInput) (*domain.Admin, error) {
	return s.admin, s.err
}

type stubWebhookRepo struct {
	events []domain.WebhookEvent
	err    error
}

func (s *stubWebhookRepo) Create(_ context.Context, e domain.WebhookEvent) (*domain.WebhookEvent, error) {
	if s.err != nil {
		return nil, s.err
	}
	saved := e
	saved.ID = "evt-1"
	s.events = append(s.events, saved)
	return &saved, nil
}

func testDeps() (Deps, *stubOrderSvc, *stubWebhookRepo) {
	orderSvc := &stubOrderSvc{}
	webhookRepo := &stubWebhookRepo{}
	deps := Deps{
		OrderSvc:     orderSvc,
		DashboardSvc: &stubDashboardSvc{},
		AdminSvc:     &stubAdminSvc{},
		WebhookRepo:  webhookRepo,
	}
	return deps, orderSvc, webhookRepo
}

func serve(t *testing.T, deps Deps, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := buildRouter(logDiscard(), nil, deps, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	deps, _, _ := testDeps()
	rec := serve(t, deps, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestWebhook_RejectsNonPost(t *testing.T) {
	deps, _, repo := testDeps()
	rec := serve(t, deps, httptest.NewRequest(http.MethodGet, "/webhook/test", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
	if len(repo.events) != 0 {
		t.Fatalf("nothing should be persisted for GET")
	}
}

func TestWebhook_PersistsAndAcknowledges(t *testing.T) {
	deps, _, repo := testDeps()
	req := httptest.NewRequest(http.MethodPost, "/webhook/test", strings.NewReader(`{"ping":true}`))
	req.Header.Set("X-Test-Header", "abc")
	rec := serve(t, deps, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if len(repo.events) != 1 {
		t.Fatalf("expected event persisted, got %d", len(repo.events))
	}
	evt := repo.events[0]
	if evt.Body != `{"ping":true}` {
		t.Fatalf("unexpected body %q", evt.Body)
	}
	if got := evt.Headers["X-Test-Header"]; len(got) != 1 || got[0] != "abc" {
		t.Fatalf("headers not captured: %+v", evt.Headers)
	}
}

// The webhook endpoint always acknowledges, even when the store write fails.
func TestWebhook_StoreFailureStill200(t *testing.T) {
	deps, _, repo := testDeps()
	repo.err = context.DeadlineExceeded
	rec := serve(t, deps, httptest.NewRequest(http.MethodPost, "/webhook/test", strings.NewReader("x")))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 despite store failure, got %d", rec.Code)
	}
}
