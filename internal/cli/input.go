package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"lmnode/pkg/types"
)

// readItems decodes input items from either a JSON array of objects or a
// stream of JSON objects (NDJSON). Each object becomes one item's JSON.
// Blank input yields no items.
func readItems(r io.Reader) ([]types.Item, error) {
	br := bufio.NewReader(r)
	first, err := peekNonSpace(br)
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(br)
	var objs []map[string]any
	if first == '[' {
		if err := dec.Decode(&objs); err != nil {
			return nil, fmt.Errorf("decode items array: %w", err)
		}
	} else {
		for {
			var obj map[string]any
			if err := dec.Decode(&obj); err == io.EOF {
				break
			} else if err != nil {
				return nil, fmt.Errorf("decode item %d: %w", len(objs), err)
			}
			objs = append(objs, obj)
		}
	}
	items := make([]types.Item, len(objs))
	for i, obj := range objs {
		if obj == nil {
			obj = map[string]any{}
		}
		items[i] = types.Item{JSON: obj, PairedItem: i}
	}
	return items, nil
}

func peekNonSpace(br *bufio.Reader) (byte, error) {
	for {
		b, err := br.ReadByte()
		if err != nil {
			return 0, err
		}
		if b == ' ' || b == '\t' || b == '\n' || b == '\r' {
			continue
		}
		return b, br.UnreadByte()
	}
}

// splitCSV splits a comma-separated flag value, dropping blanks.
func splitCSV(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
