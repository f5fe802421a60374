package httpapi

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"lmnode/internal/node"
	"lmnode/pkg/types"
)

// blockService blocks until the context is done; used to exercise timeout paths.
type blockService struct{ mockService }

func (b *blockService) Execute(ctx context.Context, items []types.Item, p node.Params) ([]types.Item, error) {
	<-ctx.Done()
	return nil, &node.ItemError{Index: 0, Err: node.ErrRequestTimedOut(p.TimeoutSeconds, ctx.Err())}
}

func TestExecuteLogsWithZerolog(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(zerolog.New(&buf))
	defer SetLogger(zerolog.Nop())

	req := httptest.NewRequest(http.MethodPost, "/execute?log=debug", bytes.NewBufferString(`{"params":{"model":"m","message":"hi"}}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	NewMux(&mockService{}).ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with debug logging, got %d", rec.Code)
	}
	out := buf.String()
	for _, want := range []string{`"message":"execute start"`, `"message":"execute params"`, `"message":"execute end"`, `"request_id"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %s in log output: %s", want, out)
		}
	}
}

func TestExecuteLogOffSuppressesRequestLogs(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(zerolog.New(&buf))
	defer SetLogger(zerolog.Nop())

	req := httptest.NewRequest(http.MethodPost, "/execute", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Log-Level", "off")
	NewMux(&mockService{}).ServeHTTP(httptest.NewRecorder(), req)
	if buf.Len() != 0 {
		t.Fatalf("expected no log output, got %s", buf.String())
	}
}

func TestCORSAndSecurityHeaders(t *testing.T) {
	SetCORSOptions(true, []string{"*"}, []string{"GET", "POST", "OPTIONS"}, []string{"Content-Type"})
	defer SetCORSOptions(false, nil, nil, nil)

	h := NewMux(&mockService{ready: true})
	req := httptest.NewRequest(http.MethodGet, "/models", nil)
	req.Header.Set("Origin", "http://example.com")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Fatalf("expected X-Content-Type-Options=nosniff, got %q", got)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got == "" {
		t.Fatalf("expected CORS header Access-Control-Allow-Origin to be set, got empty")
	}
}

func TestExecuteBatchTimeoutReturns504(t *testing.T) {
	defer SetExecuteTimeoutSeconds(0)
	SetExecuteTimeoutSeconds(1)

	w := postExecute(t, NewMux(&blockService{}), `{"params":{"model":"m","message":"x"}}`)
	if w.Code != http.StatusGatewayTimeout {
		t.Fatalf("expected 504 on timeout, got %d", w.Code)
	}
}

func TestExecuteClientGoneWritesNothing(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest(http.MethodPost, "/execute", bytes.NewBufferString(`{}`)).WithContext(ctx)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	NewMux(&blockService{}).ServeHTTP(rec, req)
	if rec.Body.Len() != 0 {
		t.Fatalf("expected empty body after client disconnect, got %q", rec.Body.String())
	}
}

func TestContentTypeCaseInsensitive(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/execute", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "Application/JSON; charset=utf-8")
	NewMux(&mockService{}).ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with mixed-case content-type, got %d", rec.Code)
	}
}
