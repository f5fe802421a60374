package e2e

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"lmnode/internal/httpapi"
	"lmnode/internal/lmstudio"
	"lmnode/internal/node"
)

// TestLive_SayHi talks to a real LM Studio.
// Skips unless LMNODE_LIVE_HOST and LMNODE_LIVE_MODEL are set.
func TestLive_SayHi(t *testing.T) {
	host := strings.TrimSpace(os.Getenv("LMNODE_LIVE_HOST"))
	model := strings.TrimSpace(os.Getenv("LMNODE_LIVE_MODEL"))
	if host == "" || model == "" {
		t.Skip("LMNODE_LIVE_HOST/LMNODE_LIVE_MODEL not set; skipping live LM Studio test")
	}
	client := lmstudio.NewClient(lmstudio.Credentials{Host: host, APIKey: os.Getenv("LMNODE_LIVE_API_KEY")})
	srv := httptest.NewServer(httpapi.NewMux(node.New(client)))
	defer srv.Close()

	payload := `{"params":{"model":` + jsonString(model) + `,"message":"Say hi in one word.","temperature":0.1,"max_tokens":50,"timeout_seconds":120}}`
	resp, body := httpPostJSON(t, srv.URL+"/execute", []byte(payload))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("/execute %d %s", resp.StatusCode, body)
	}
	items := decodeItems(t, body)
	if s, _ := items[0].JSON.Response.(string); s == "" || items[0].JSON.Metadata == nil || items[0].JSON.Metadata.Usage == nil {
		t.Fatalf("unexpected live response: %s", body)
	}
	t.Logf("live response: %v", items[0].JSON.Response)
}

func jsonString(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}
