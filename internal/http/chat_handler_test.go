package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fitmate/internal/llm"
	"fitmate/internal/repository"
	"fitmate/internal/service"
)

var errTest = errors.New("llm http error: status=502")

type denyAllLimiter struct{}

func (denyAllLimiter) Allow(string) bool { return false }

func setupRouter(t *testing.T, mock *llm.MockClient, limiter service.ChatRateLimiter) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()
	chatSvc := service.NewChatService(mock, repository.NewDisabledMessageRepository(), logger, time.Second)
	handler := NewChatHandler(logger, chatSvc, limiter)
	return NewRouter(logger, handler)
}

func postChat(t *testing.T, router *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	return body
}

func TestHealthEndpoint(t *testing.T) {
	router := setupRouter(t, &llm.MockClient{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["status"] != "ok" {
		t.Fatalf("unexpected health body: %v", body)
	}
}

func TestPostChatEmptyMessageReturns400(t *testing.T) {
	mock := &llm.MockClient{Response: "unused"}
	router := setupRouter(t, mock, nil)

	for _, payload := range []string{
		`{"message":"","personality":"goal_finisher","daysUsingApp":1,"lifestyle":{"steps":0,"exerciseMinutes":0,"sleepHours":0}}`,
		`{"personality":"goal_finisher","daysUsingApp":1}`,
		`{"message":123}`,
		`not json at all`,
	} {
		rec := postChat(t, router, payload)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("payload %q: expected 400, got %d", payload, rec.Code)
			continue
		}
		body := decodeBody(t, rec)
		if body["success"] != false || body["error"] != "Message is required" {
			t.Errorf("payload %q: unexpected body %v", payload, body)
		}
	}

	if mock.Calls != 0 {
		t.Fatalf("validation failures must not reach the gateway, got %d calls", mock.Calls)
	}
}

func TestPostChatMedicalQueryRefusedWithoutGatewayCall(t *testing.T) {
	mock := &llm.MockClient{Response: "unused"}
	router := setupRouter(t, mock, nil)

	rec := postChat(t, router, `{
		"message": "I have diabetes, what should I eat?",
		"personality": "goal_finisher",
		"daysUsingApp": 10,
		"lifestyle": {"steps": 1000, "exerciseMinutes": 20, "sleepHours": 6}
	}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("refusal travels as 200, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["success"] != true {
		t.Fatalf("expected success true, got %v", body)
	}
	if body["aiBehavior"] != "Safety Refusal" {
		t.Fatalf("expected Safety Refusal behavior, got %v", body["aiBehavior"])
	}
	reply, _ := body["reply"].(string)
	if !strings.Contains(reply, "medical advice") {
		t.Fatalf("expected refusal text, got %q", reply)
	}
	if _, present := body["suggestions"]; present {
		t.Fatal("suggestions key must be omitted on refusal")
	}
	if mock.Calls != 0 {
		t.Fatalf("gateway must not be invoked on refusal, got %d calls", mock.Calls)
	}
}

func TestPostChatValidMessageFlowsThroughPipeline(t *testing.T) {
	mock := &llm.MockClient{Response: "Let's ease back in.|||Tell me more|I want a plan|Sounds good|||"}
	router := setupRouter(t, mock, nil)

	rec := postChat(t, router, `{
		"message": "I want to get back into running",
		"personality": "encouragement_seeker",
		"daysUsingApp": 2,
		"lifestyle": {"steps": 4500, "exerciseMinutes": 15, "sleepHours": 7}
	}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["success"] != true || body["reply"] != "Let's ease back in." {
		t.Fatalf("unexpected body: %v", body)
	}
	if body["aiBehavior"] != "Grounded & Empathetic" {
		t.Fatalf("expected Grounded & Empathetic for 2 days, got %v", body["aiBehavior"])
	}
	suggestions, ok := body["suggestions"].([]interface{})
	if !ok || len(suggestions) != 3 {
		t.Fatalf("expected 3 suggestions, got %v", body["suggestions"])
	}

	// El system prompt que viajó al gateway lleva los fragmentos de
	// personalidad y etapa tal cual.
	if !strings.Contains(mock.LastSystemPrompt, "grounded, empathetic, and patient") {
		t.Error("system prompt missing behavior fragment")
	}
	if !strings.Contains(mock.LastSystemPrompt, "easily demotivated") {
		t.Error("system prompt missing personality fragment")
	}
}

func TestPostChatDegradedGatewayStillReturns200(t *testing.T) {
	mock := &llm.MockClient{Err: errTest}
	router := setupRouter(t, mock, nil)

	rec := postChat(t, router, `{"message":"suggest a routine","personality":"creative_explorer","daysUsingApp":5}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 on degraded gateway, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	reply, _ := body["reply"].(string)
	if body["success"] != true || !strings.HasPrefix(reply, "AI Error: ") {
		t.Fatalf("unexpected degraded body: %v", body)
	}
}

func TestPostChatRateLimited(t *testing.T) {
	mock := &llm.MockClient{Response: "unused"}
	router := setupRouter(t, mock, denyAllLimiter{})

	rec := postChat(t, router, `{"message":"hello","personality":"goal_finisher","daysUsingApp":1}`)

	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["success"] != false || body["error"] != "Too many requests" {
		t.Fatalf("unexpected body: %v", body)
	}
	if mock.Calls != 0 {
		t.Fatalf("limited requests must not reach the gateway, got %d calls", mock.Calls)
	}
}
