package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/templateshub/demos-backend/internal"
	"github.com/templateshub/demos-backend/internal/provider"
	"github.com/templateshub/demos-backend/internal/ratelimit"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func fixedNow() time.Time {
	return time.Date(2026, time.March, 16, 12, 0, 0, 0, time.UTC)
}

type failingProvider struct{ err error }

func (p failingProvider) Model() string { return "failing" }

func (p failingProvider) Complete(ctx context.Context, turns []internal.Turn, tools []mcp.Tool) (internal.Turn, error) {
	return internal.Turn{}, p.err
}

func newTestRouter(p provider.ChatProvider) *gin.Engine {
	return New(Config{Provider: p, Now: fixedNow})
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func body(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON response: %v\n%s", err, w.Body.String())
	}
	return out
}

func TestHealth(t *testing.T) {
	w := do(newTestRouter(provider.MockProvider{}), http.MethodGet, "/health", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if body(t, w)["ok"] != true {
		t.Error("health must report ok")
	}
}

func TestModelEndpoint(t *testing.T) {
	w := do(newTestRouter(provider.MockProvider{}), http.MethodGet, "/api/model", "")
	if got := body(t, w)["model"]; got != "mock" {
		t.Errorf("model = %v", got)
	}

	w = do(newTestRouter(nil), http.MethodGet, "/api/model", "")
	if got := body(t, w)["model"]; got != "unconfigured" {
		t.Errorf("model = %v", got)
	}
}

func TestChatUnconfiguredProvider(t *testing.T) {
	w := do(newTestRouter(nil), http.MethodPost, "/api/restaurant/chat",
		`{"messages":[{"role":"user","content":"hi"}]}`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	if got := body(t, w)["error"]; got != "Server misconfiguration: missing OPENAI_API_KEY." {
		t.Errorf("error = %v", got)
	}
}

func TestChatInvalidJSON(t *testing.T) {
	w := do(newTestRouter(provider.MockProvider{}), http.MethodPost, "/api/salon/chat", `{not json`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if got := body(t, w)["error"]; got != "Invalid JSON body." {
		t.Errorf("error = %v", got)
	}
}

func TestChatValidationError(t *testing.T) {
	w := do(newTestRouter(provider.MockProvider{}), http.MethodPost, "/api/dental/chat",
		`{"messages":[{"role":"system","content":"hi"}]}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if got := body(t, w)["error"]; got != `messages[0].role must be "user" or "assistant".` {
		t.Errorf("error = %v", got)
	}
}

func TestChatHappyPath(t *testing.T) {
	w := do(newTestRouter(provider.MockProvider{}), http.MethodPost, "/api/restaurant/chat",
		`{"messages":[{"role":"user","content":"when do you open?"}]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200\n%s", w.Code, w.Body.String())
	}
	got := body(t, w)
	if got["role"] != "assistant" {
		t.Errorf("role = %v", got["role"])
	}
	if !strings.Contains(got["content"].(string), "when do you open?") {
		t.Errorf("content = %v", got["content"])
	}
}

func TestChatRateLimit(t *testing.T) {
	r := New(Config{
		Provider: provider.MockProvider{},
		Limiter:  ratelimit.New(1, time.Minute),
		Now:      fixedNow,
	})
	good := `{"messages":[{"role":"user","content":"hi"}]}`

	if w := do(r, http.MethodPost, "/api/salon/chat", good); w.Code != http.StatusOK {
		t.Fatalf("first request status = %d", w.Code)
	}
	w := do(r, http.MethodPost, "/api/salon/chat", good)
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("second request status = %d, want 429", w.Code)
	}
	if got := body(t, w)["error"]; got != "Rate limit exceeded. Please wait a moment and try again." {
		t.Errorf("error = %v", got)
	}
}

func TestChatProviderFailure(t *testing.T) {
	r := newTestRouter(failingProvider{err: context.DeadlineExceeded})
	w := do(r, http.MethodPost, "/api/restaurant/chat",
		`{"messages":[{"role":"user","content":"hi"}]}`)
	if w.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", w.Code)
	}
	if got := body(t, w)["error"]; got != "Something went wrong while generating a response." {
		t.Errorf("error = %v", got)
	}
}

func TestChatProviderOverloaded(t *testing.T) {
	r := newTestRouter(failingProvider{err: provider.ErrOverloaded})
	w := do(r, http.MethodPost, "/api/dental/chat",
		`{"messages":[{"role":"user","content":"hi"}]}`)
	if w.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", w.Code)
	}
	if got := body(t, w)["error"]; got != "Our AI service is busy. Please try again in a moment." {
		t.Errorf("error = %v", got)
	}
}

func TestRequestIDHeader(t *testing.T) {
	w := do(newTestRouter(provider.MockProvider{}), http.MethodGet, "/health", "")
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("missing X-Request-ID header")
	}

	r := newTestRouter(provider.MockProvider{})
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Header().Get("X-Request-ID") != "abc-123" {
		t.Error("caller-supplied request id must be echoed")
	}
}

func TestReserveValid(t *testing.T) {
	w := do(newTestRouter(nil), http.MethodPost, "/api/restaurant/reserve",
		`{"name":"Alex Tanaka","phone":"+1 555 111 2222","partySize":4,"date":"2026-04-01","time":"19:00","seating":"Table"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d\n%s", w.Code, w.Body.String())
	}
	got := body(t, w)
	if got["ok"] != true {
		t.Errorf("ok = %v", got["ok"])
	}
}

func TestReserveCollectsAllErrors(t *testing.T) {
	w := do(newTestRouter(nil), http.MethodPost, "/api/restaurant/reserve",
		`{"name":"A","phone":"123","partySize":20,"date":"2026-01-01","time":"","seating":"Bar"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	errs := body(t, w)["errors"].([]any)
	if len(errs) != 6 {
		t.Errorf("got %d errors, want 6: %v", len(errs), errs)
	}
}

func TestReservePastDateRejected(t *testing.T) {
	w := do(newTestRouter(nil), http.MethodPost, "/api/restaurant/reserve",
		`{"name":"Alex Tanaka","phone":"+1 555 111 2222","partySize":2,"date":"2026-03-15","time":"19:00","seating":"Counter"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	errs := body(t, w)["errors"].([]any)
	if len(errs) != 1 || errs[0] != "Date cannot be in the past." {
		t.Errorf("errors = %v", errs)
	}
}

func TestContactFieldErrors(t *testing.T) {
	w := do(newTestRouter(nil), http.MethodPost, "/api/salon/contact",
		`{"name":"J","phone":"nope","email":"not-an-email","message":"short"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	errs := body(t, w)["errors"].(map[string]any)
	for _, field := range []string{"name", "phone", "email", "message"} {
		if _, ok := errs[field]; !ok {
			t.Errorf("missing %s error", field)
		}
	}
}

func TestContactValid(t *testing.T) {
	w := do(newTestRouter(nil), http.MethodPost, "/api/salon/contact",
		`{"name":"Jamie","phone":"(555) 123-4567","email":"jamie@example.com","message":"I'd like to book a balayage consultation."}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d\n%s", w.Code, w.Body.String())
	}
	if body(t, w)["success"] != true {
		t.Error("expected success")
	}
}

func TestLeadFieldErrorsAnswer422(t *testing.T) {
	w := do(newTestRouter(nil), http.MethodPost, "/api/dental/lead",
		`{"name":"","phone":"12","treatment":"botox"}`)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", w.Code)
	}
	errs := body(t, w)["errors"].(map[string]any)
	if errs["name"] != "Full name is required." {
		t.Errorf("name error = %v", errs["name"])
	}
	if errs["treatment"] != "Invalid treatment selection." {
		t.Errorf("treatment error = %v", errs["treatment"])
	}
}

func TestLeadMalformedBodyAnswers400(t *testing.T) {
	w := do(newTestRouter(nil), http.MethodPost, "/api/dental/lead", `{{`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	errs := body(t, w)["errors"].(map[string]any)
	if errs["_form"] != "Invalid request body." {
		t.Errorf("_form error = %v", errs["_form"])
	}
}

func TestLeadValidWithOptionalFields(t *testing.T) {
	w := do(newTestRouter(nil), http.MethodPost, "/api/dental/lead",
		`{"name":"Marie Weber","phone":"+352 123 456 789","email":"marie@example.lu","treatment":"Orthodontics"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d\n%s", w.Code, w.Body.String())
	}
	if body(t, w)["ok"] != true {
		t.Error("expected ok")
	}
}
