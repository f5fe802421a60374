package cli

import (
	"strings"
	"testing"
)

func TestReadItems(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"array", `[{"t":"a"},{"t":"b"}]`, []string{"a", "b"}},
		{"ndjson", "{\"t\":\"a\"}\n{\"t\":\"b\"}\n", []string{"a", "b"}},
		{"leading space", "\n  [{\"t\":\"a\"}]", []string{"a"}},
		{"concatenated", `{"t":"a"} {"t":"b"}`, []string{"a", "b"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			items, err := readItems(strings.NewReader(tc.in))
			if err != nil {
				t.Fatalf("readItems: %v", err)
			}
			if len(items) != len(tc.want) {
				t.Fatalf("got %d items", len(items))
			}
			for i, w := range tc.want {
				if items[i].JSON["t"] != w || items[i].PairedItem != i {
					t.Fatalf("item %d = %+v", i, items[i])
				}
			}
		})
	}
}

func TestReadItems_Errors(t *testing.T) {
	for _, in := range []string{`[{"t":1}`, "{\"t\":1}\nnot json"} {
		if _, err := readItems(strings.NewReader(in)); err == nil {
			t.Fatalf("expected error for %q", in)
		}
	}
}

func TestReadItems_BlankInput(t *testing.T) {
	for _, in := range []string{"", "   \n", "[]"} {
		items, err := readItems(strings.NewReader(in))
		if err != nil || len(items) != 0 {
			t.Fatalf("readItems(%q) = %v, %v; want no items", in, items, err)
		}
	}
}

func TestSplitCSV(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"a,b,c", []string{"a", "b", "c"}},
		{" a , b , c ", []string{"a", "b", "c"}},
		{"a,,c", []string{"a", "c"}},
		{"", nil},
	}
	for _, c := range cases {
		got := splitCSV(c.in)
		if len(got) != len(c.want) {
			t.Fatalf("%q -> %v, want %v", c.in, got, c.want)
		}
		for i := range got {
			if got[i] != c.want[i] {
				t.Fatalf("%q -> %v, want %v", c.in, got, c.want)
			}
		}
	}
}
