// Package web provides the local web UI. It serves an embedded
// single-page interface and a small JSON API over loopback; the page
// sends commands and renders the assistant's replies.
package web

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/prime-labs/prime-cli/internal/core/domain"
	"github.com/prime-labs/prime-cli/internal/core/ports/driving"
	"github.com/prime-labs/prime-cli/internal/logger"
)

//go:embed index.html
var indexHTML []byte

// shutdownTimeout bounds graceful shutdown when the context ends.
const shutdownTimeout = 5 * time.Second

// Server exposes the assistant over a loopback HTTP API.
type Server struct {
	mu        sync.Mutex
	assistant driving.AssistantService
	port      int
	server    *http.Server
	listener  net.Listener
}

// NewServer creates a web server for the assistant service.
func NewServer(assistant driving.AssistantService) *Server {
	return &Server{assistant: assistant}
}

// Run starts the server on 127.0.0.1:port and blocks until the context
// is cancelled or the server fails. Port 0 picks a free port.
func (s *Server) Run(ctx context.Context, port int) error {
	if s.assistant == nil {
		return errors.New("web server requires an assistant service")
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/api/init", s.handleInit)
	mux.HandleFunc("/api/command", s.handleCommand)
	mux.HandleFunc("/api/status", s.handleStatus)
	mux.HandleFunc("/api/speak", s.handleSpeak)

	s.mu.Lock()
	s.server = &http.Server{
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	// Loopback only: the UI is a local surface, never a network one.
	addr := fmt.Sprintf("127.0.0.1:%d", port)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		s.mu.Unlock()
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	s.listener = listener
	if tcpAddr, ok := listener.Addr().(*net.TCPAddr); ok {
		s.port = tcpAddr.Port
	}
	s.mu.Unlock()

	logger.Info("Web UI listening on http://%s", listener.Addr())

	errChan := make(chan error, 1)
	go func() {
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return ctx.Err()
	}
}

// Port returns the bound port, valid once Run has started listening.
func (s *Server) Port() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.port
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(indexHTML)
}

// handleInit runs face authentication and returns the greeting plus
// the assistant status, so the page can render capabilities before the
// first command. The greeting is spoken best-effort.
func (s *Server) handleInit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}

	auth, err := s.assistant.Authenticate(r.Context())
	if err != nil || !auth.Authenticated {
		logger.Warn("Authentication failed: %v", err)
		writeError(w, http.StatusUnauthorized, "authentication failed")
		return
	}

	status := s.assistant.Status(r.Context())
	greeting := fmt.Sprintf("Hello, I am %s. How can I help you?", status.AssistantName)
	if auth.UserName != "" {
		greeting = fmt.Sprintf("Hello %s, I am %s. How can I help you?", auth.UserName, status.AssistantName)
	}

	if err := s.assistant.Speak(r.Context(), greeting); err != nil {
		logger.Debug("Greeting not spoken: %v", err)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"ready":    true,
		"greeting": greeting,
		"auth":     auth,
		"status":   status,
	})
}

type commandRequest struct {
	Command string `json:"command"`
}

func (s *Server) handleCommand(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}

	var req commandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	action, result, err := s.assistant.ProcessCommand(r.Context(), req.Command)
	if err != nil {
		logger.Error("Command processing failed: %v", err)
		writeError(w, http.StatusInternalServerError, "command processing failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"action": action,
		"query":  result,
	})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}

	writeJSON(w, http.StatusOK, s.assistant.Status(r.Context()))
}

type speakRequest struct {
	Text string `json:"text"`
}

func (s *Server) handleSpeak(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}

	var req speakRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Text == "" {
		writeError(w, http.StatusBadRequest, "text required")
		return
	}

	if err := s.assistant.Speak(r.Context(), req.Text); err != nil {
		if errors.Is(err, domain.ErrSynthesizerUnavailable) {
			writeError(w, http.StatusServiceUnavailable, "speech synthesis not available")
			return
		}
		logger.Error("Speech failed: %v", err)
		writeError(w, http.StatusInternalServerError, "speech failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Warn("Writing response failed: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
