// Package lmstudiotest provides an in-process fake of the LM Studio HTTP API.
package lmstudiotest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"lmnode/internal/lmstudio"
)

// ReplyFunc answers a chat completion with a status code and a raw body.
type ReplyFunc func(req lmstudio.ChatRequest) (int, string)

// Server is a fake LM Studio. The zero configuration lists no models and
// answers every chat with Completion("test-model", "hi").
type Server struct {
	URL string

	srv *httptest.Server

	mu          sync.Mutex
	models      []lmstudio.ModelInfo
	modelsCode  int
	reply       ReplyFunc
	chats       []lmstudio.ChatRequest
	authHeaders []string
}

// New starts a fake server that is closed when the test ends.
func New(t testing.TB) *Server {
	t.Helper()
	s := &Server{modelsCode: http.StatusOK}
	mux := http.NewServeMux()
	mux.HandleFunc(lmstudio.ModelsPath, s.handleModels)
	mux.HandleFunc(lmstudio.ChatCompletionsPath, s.handleChat)
	s.srv = httptest.NewServer(mux)
	s.URL = s.srv.URL
	t.Cleanup(s.srv.Close)
	return s
}

// SetModels replaces the model list served by GET /api/v0/models.
func (s *Server) SetModels(models ...lmstudio.ModelInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.models = append([]lmstudio.ModelInfo(nil), models...)
}

// FailModels makes the models endpoint answer with the given status.
func (s *Server) FailModels(code int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modelsCode = code
}

// SetReply installs a custom chat completion handler.
func (s *Server) SetReply(fn ReplyFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reply = fn
}

// ReplyContent answers every chat with a successful completion carrying content.
func (s *Server) ReplyContent(model, content string) {
	s.SetReply(func(lmstudio.ChatRequest) (int, string) {
		return http.StatusOK, Completion(model, content)
	})
}

// ChatRequests returns the decoded chat payloads received so far.
func (s *Server) ChatRequests() []lmstudio.ChatRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]lmstudio.ChatRequest(nil), s.chats...)
}

// AuthHeaders returns the Authorization header of every request received.
func (s *Server) AuthHeaders() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.authHeaders...)
}

// Completion renders a minimal successful chat completion body.
func Completion(model, content string) string {
	resp := lmstudio.ChatResponse{
		ID:      "chatcmpl-test",
		Object:  "chat.completion",
		Created: 1700000000,
		Model:   model,
		Choices: []lmstudio.Choice{{
			Index:        0,
			Message:      &lmstudio.Message{Role: "assistant", Content: content},
			FinishReason: "stop",
		}},
		Usage: &lmstudio.Usage{PromptTokens: 12, CompletionTokens: 3, TotalTokens: 15},
	}
	b, _ := json.Marshal(resp)
	return string(b)
}

func (s *Server) handleModels(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.authHeaders = append(s.authHeaders, r.Header.Get("Authorization"))
	code := s.modelsCode
	body := lmstudio.ModelsResponse{Object: "list", Data: append([]lmstudio.ModelInfo{}, s.models...)}
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if code != http.StatusOK {
		w.WriteHeader(code)
		_, _ = w.Write([]byte(`{"error":"models unavailable"}`))
		return
	}
	_ = json.NewEncoder(w).Encode(body)
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var req lmstudio.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"message":"invalid JSON body"}}`))
		return
	}
	s.mu.Lock()
	s.chats = append(s.chats, req)
	s.authHeaders = append(s.authHeaders, r.Header.Get("Authorization"))
	reply := s.reply
	s.mu.Unlock()

	code, body := http.StatusOK, Completion("test-model", "hi")
	if reply != nil {
		code, body = reply(req)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write([]byte(body))
}
