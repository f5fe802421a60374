package lmstudio

import (
	"io"
	"strings"
	"testing"
)

func stringsReader(s string) io.Reader { return strings.NewReader(s) }

func TestNormalizeBaseURL(t *testing.T) {
	cases := []struct{ in, want string }{
		{"", DefaultHost},
		{"   ", DefaultHost},
		{"localhost:1234", "http://localhost:1234"},
		{"localhost:1234/", "http://localhost:1234"},
		{"http://10.0.0.5:1234///", "http://10.0.0.5:1234"},
		{"https://studio.example.com/", "https://studio.example.com"},
		{" 192.168.1.2:1234 ", "http://192.168.1.2:1234"},
	}
	for _, c := range cases {
		if got := NormalizeBaseURL(c.in); got != c.want {
			t.Fatalf("NormalizeBaseURL(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestExtractErrorMessage(t *testing.T) {
	cases := map[string]string{
		`{"error":{"message":"boom"}}`: "boom",
		`{"error":"plain"}`:            "plain",
		"upstream exploded\n":          "upstream exploded",
		"":                             "",
	}
	for body, want := range cases {
		if got := extractErrorMessage(stringsReader(body)); got != want {
			t.Fatalf("extractErrorMessage(%q) = %q, want %q", body, got, want)
		}
	}
}
