package e2e

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"lmnode/internal/httpapi"
	"lmnode/internal/lmstudio"
	"lmnode/internal/lmstudio/lmstudiotest"
	"lmnode/internal/node"
)

// newStack wires a fake LM Studio, the lmstudio client, the node and the
// HTTP API together and returns the API server.
func newStack(t *testing.T, apiKey string) (*httptest.Server, *lmstudiotest.Server) {
	t.Helper()
	fake := lmstudiotest.New(t)
	client := lmstudio.NewClient(lmstudio.Credentials{Host: fake.URL, APIKey: apiKey})
	srv := httptest.NewServer(httpapi.NewMux(node.New(client)))
	t.Cleanup(srv.Close)
	return srv, fake
}

func httpGet(t *testing.T, url string) (*http.Response, []byte) {
	t.Helper()
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, url, nil)
	if err != nil {
		t.Fatalf("new req: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do req: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	return resp, body
}

func httpPostJSON(t *testing.T, url string, payload []byte) (*http.Response, []byte) {
	t.Helper()
	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("new req: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do req: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	return resp, body
}
