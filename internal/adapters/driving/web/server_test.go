package web

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prime-labs/prime-cli/internal/core/domain"
)

// mockAssistant implements driving.AssistantService for testing.
type mockAssistant struct {
	action     *domain.ActionResult
	result     *domain.QueryResult
	processErr error
	spoken     []string
	speakErr   error
	status     domain.Status
	auth       domain.AuthResult
	authSet    bool
	authErr    error
}

func (m *mockAssistant) ProcessCommand(_ context.Context, _ string) (*domain.ActionResult, *domain.QueryResult, error) {
	if m.processErr != nil {
		return nil, nil, m.processErr
	}
	return m.action, m.result, nil
}

func (m *mockAssistant) Speak(_ context.Context, text string) error {
	if m.speakErr != nil {
		return m.speakErr
	}
	m.spoken = append(m.spoken, text)
	return nil
}

func (m *mockAssistant) Status(_ context.Context) domain.Status {
	return m.status
}

func (m *mockAssistant) Authenticate(_ context.Context) (domain.AuthResult, error) {
	if m.authErr != nil {
		return domain.AuthResult{}, m.authErr
	}
	if m.authSet {
		return m.auth, nil
	}
	return domain.AuthResult{Authenticated: true}, nil
}

func TestHandleIndex(t *testing.T) {
	server := NewServer(&mockAssistant{})

	rec := httptest.NewRecorder()
	server.handleIndex(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "prime")
}

func TestHandleIndex_UnknownPathIs404(t *testing.T) {
	server := NewServer(&mockAssistant{})

	rec := httptest.NewRecorder()
	server.handleIndex(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleInit(t *testing.T) {
	assistant := &mockAssistant{
		status:  domain.Status{AssistantName: "prime", Version: "1.0.0"},
		auth:    domain.AuthResult{Authenticated: true, UserName: "Ada", Confidence: 1.0},
		authSet: true,
	}
	server := NewServer(assistant)

	rec := httptest.NewRecorder()
	server.handleInit(rec, httptest.NewRequest(http.MethodPost, "/api/init", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		Ready    bool              `json:"ready"`
		Greeting string            `json:"greeting"`
		Auth     domain.AuthResult `json:"auth"`
		Status   domain.Status     `json:"status"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.True(t, payload.Ready)
	assert.Equal(t, "Hello Ada, I am prime. How can I help you?", payload.Greeting)
	assert.True(t, payload.Auth.Authenticated)
	assert.Equal(t, "prime", payload.Status.AssistantName)
	// The greeting is spoken as part of init.
	assert.Equal(t, []string{payload.Greeting}, assistant.spoken)
}

func TestHandleInit_GreetingWithoutUserName(t *testing.T) {
	server := NewServer(&mockAssistant{
		status: domain.Status{AssistantName: "prime"},
	})

	rec := httptest.NewRecorder()
	server.handleInit(rec, httptest.NewRequest(http.MethodPost, "/api/init", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Hello, I am prime.")
}

func TestHandleInit_AuthFailure(t *testing.T) {
	server := NewServer(&mockAssistant{authErr: domain.ErrAuthFailed})

	rec := httptest.NewRecorder()
	server.handleInit(rec, httptest.NewRequest(http.MethodPost, "/api/init", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "authentication failed")
}

func TestHandleInit_NotAuthenticated(t *testing.T) {
	server := NewServer(&mockAssistant{
		auth:    domain.AuthResult{Authenticated: false},
		authSet: true,
	})

	rec := httptest.NewRecorder()
	server.handleInit(rec, httptest.NewRequest(http.MethodPost, "/api/init", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandleInit_SpeakFailureStillReady(t *testing.T) {
	server := NewServer(&mockAssistant{
		status:   domain.Status{AssistantName: "prime"},
		speakErr: domain.ErrSynthesizerUnavailable,
	})

	rec := httptest.NewRecorder()
	server.handleInit(rec, httptest.NewRequest(http.MethodPost, "/api/init", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ready":true`)
}

func TestHandleInit_RequiresPost(t *testing.T) {
	server := NewServer(&mockAssistant{})

	rec := httptest.NewRecorder()
	server.handleInit(rec, httptest.NewRequest(http.MethodGet, "/api/init", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHandleCommand(t *testing.T) {
	server := NewServer(&mockAssistant{
		action: &domain.ActionResult{Success: true, Message: "Opening chrome"},
		result: &domain.QueryResult{
			Intent:     domain.IntentOpenApp,
			Confidence: 0.75,
			Entities:   map[string]string{"app_name": "chrome"},
		},
	})

	body := strings.NewReader(`{"command": "open chrome"}`)
	rec := httptest.NewRecorder()
	server.handleCommand(rec, httptest.NewRequest(http.MethodPost, "/api/command", body))

	require.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		Action domain.ActionResult `json:"action"`
		Query  domain.QueryResult  `json:"query"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.True(t, payload.Action.Success)
	assert.Equal(t, "Opening chrome", payload.Action.Message)
	assert.Equal(t, domain.IntentOpenApp, payload.Query.Intent)
	assert.Equal(t, "chrome", payload.Query.Entities["app_name"])
}

func TestHandleCommand_BadBody(t *testing.T) {
	server := NewServer(&mockAssistant{})

	body := strings.NewReader(`{not json`)
	rec := httptest.NewRecorder()
	server.handleCommand(rec, httptest.NewRequest(http.MethodPost, "/api/command", body))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleCommand_ProcessError(t *testing.T) {
	server := NewServer(&mockAssistant{processErr: errors.New("pipeline broken")})

	body := strings.NewReader(`{"command": "open chrome"}`)
	rec := httptest.NewRecorder()
	server.handleCommand(rec, httptest.NewRequest(http.MethodPost, "/api/command", body))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	// Internal details never leak to the page.
	assert.NotContains(t, rec.Body.String(), "pipeline broken")
}

func TestHandleStatus(t *testing.T) {
	server := NewServer(&mockAssistant{
		status: domain.Status{
			AssistantName: "prime",
			Annotator:     "prose",
			Features:      map[string]bool{"weather": true},
		},
	})

	rec := httptest.NewRecorder()
	server.handleStatus(rec, httptest.NewRequest(http.MethodGet, "/api/status", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var status domain.Status
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, "prose", status.Annotator)
	assert.True(t, status.Features["weather"])
}

func TestHandleSpeak(t *testing.T) {
	assistant := &mockAssistant{}
	server := NewServer(assistant)

	body := strings.NewReader(`{"text": "hello"}`)
	rec := httptest.NewRecorder()
	server.handleSpeak(rec, httptest.NewRequest(http.MethodPost, "/api/speak", body))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"hello"}, assistant.spoken)
}

func TestHandleSpeak_EmptyText(t *testing.T) {
	server := NewServer(&mockAssistant{})

	body := strings.NewReader(`{"text": ""}`)
	rec := httptest.NewRecorder()
	server.handleSpeak(rec, httptest.NewRequest(http.MethodPost, "/api/speak", body))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleSpeak_SynthesizerUnavailable(t *testing.T) {
	server := NewServer(&mockAssistant{speakErr: domain.ErrSynthesizerUnavailable})

	body := strings.NewReader(`{"text": "hello"}`)
	rec := httptest.NewRecorder()
	server.handleSpeak(rec, httptest.NewRequest(http.MethodPost, "/api/speak", body))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestRun_ServesAndShutsDown(t *testing.T) {
	server := NewServer(&mockAssistant{
		status: domain.Status{AssistantName: "prime"},
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- server.Run(ctx, 0)
	}()

	// Wait for the listener to come up.
	var port int
	for i := 0; i < 100; i++ {
		if port = server.Port(); port != 0 {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	require.NotZero(t, port)

	cancel()
	err := <-done
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_RequiresAssistant(t *testing.T) {
	server := NewServer(nil)
	err := server.Run(context.Background(), 0)
	require.Error(t, err)
}
