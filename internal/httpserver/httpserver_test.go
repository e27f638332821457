package httpserver_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"edubot/internal/chat"
	"edubot/internal/chat/usecase"
	"edubot/internal/httpserver"
	"edubot/internal/model"
	"edubot/pkg/log"
)

type readyUseCase struct{}

func (readyUseCase) HandleQuery(context.Context, chat.QueryInput) (chat.QueryOutput, error) {
	return chat.QueryOutput{Label: "greeting", Confidence: 0.9, Reply: "Hello!"}, nil
}
func (readyUseCase) ListIntents(context.Context) (chat.ListIntentsOutput, error) {
	return chat.ListIntentsOutput{}, nil
}
func (readyUseCase) Ready() error { return nil }

type panickingUseCase struct{ readyUseCase }

func (panickingUseCase) HandleQuery(context.Context, chat.QueryInput) (chat.QueryOutput, error) {
	panic("matcher exploded")
}

func newServer(t *testing.T, uc chat.UseCase) *httpserver.HTTPServer {
	t.Helper()
	srv, err := httpserver.New(log.NewNop(), httpserver.Config{
		Port:        8080,
		Mode:        "test",
		Environment: string(model.EnvironmentDevelopment),
		ChatUseCase: uc,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return srv
}

func get(srv *httpserver.HTTPServer, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestNewValidation(t *testing.T) {
	cases := map[string]httpserver.Config{
		"Missing Port":     {Mode: "test", ChatUseCase: readyUseCase{}},
		"Missing Mode":     {Port: 8080, ChatUseCase: readyUseCase{}},
		"Missing Use Case": {Port: 8080, Mode: "test"},
	}
	for name, cfg := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := httpserver.New(log.NewNop(), cfg); err == nil {
				t.Errorf("expected validation error")
			}
		})
	}
}

func TestProbes(t *testing.T) {
	t.Run("Ready", func(t *testing.T) {
		srv := newServer(t, readyUseCase{})
		for _, path := range []string{"/health", "/live", "/ready"} {
			if w := get(srv, path); w.Code != http.StatusOK {
				t.Errorf("%s: expected 200, got %d", path, w.Code)
			}
		}
		if w := get(srv, "/health"); !strings.Contains(w.Body.String(), `"service":"edubot"`) {
			t.Errorf("unexpected health body: %s", w.Body.String())
		}
	})

	t.Run("Not Ready", func(t *testing.T) {
		srv := newServer(t, usecase.NewNotReady(model.NewLoadError("data/intents.json", errors.New("missing tag"))))

		w := get(srv, "/ready")
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "data/intents.json") {
			t.Errorf("expected load error in body, got %s", w.Body.String())
		}
		if w := get(srv, "/live"); w.Code != http.StatusOK {
			t.Errorf("liveness must not depend on readiness, got %d", w.Code)
		}
	})
}

func TestRoutesAndRequestID(t *testing.T) {
	srv := newServer(t, readyUseCase{})

	w := get(srv, "/")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "EduBot API is running") {
		t.Errorf("unexpected banner: %d %s", w.Code, w.Body.String())
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Errorf("expected request id header")
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", strings.NewReader(`{"message":"hello"}`))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"reply":"Hello!"`) {
		t.Errorf("unexpected chat response: %d %s", w.Code, w.Body.String())
	}
}

func TestRootChatIsFlat(t *testing.T) {
	srv := newServer(t, readyUseCase{})

	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"message":"hello"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["intent"] != "greeting" || body["reply"] != "Hello!" {
		t.Errorf("expected top-level intent and reply, got %s", w.Body.String())
	}
	if _, wrapped := body["data"]; wrapped {
		t.Errorf("root /chat must not use the envelope: %s", w.Body.String())
	}
}

func TestPanicRecovery(t *testing.T) {
	srv := newServer(t, panickingUseCase{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", strings.NewReader(`{"message":"hello"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"error_code":500`) || strings.Contains(w.Body.String(), "exploded") {
		t.Errorf("unexpected recovery body: %s", w.Body.String())
	}
}

func TestRunShutsDownOnCancel(t *testing.T) {
	srv, err := httpserver.New(log.NewNop(), httpserver.Config{
		Port:            18089,
		Mode:            "test",
		ShutdownTimeout: time.Second,
		ChatUseCase:     readyUseCase{},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("expected clean shutdown, got %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
}
