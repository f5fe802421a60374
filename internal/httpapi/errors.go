package httpapi

import (
	"encoding/json"
	"net/http"

	"lmnode/internal/node"
	"lmnode/pkg/types"
)

// writeJSONError writes a consistent JSON error payload.
func writeJSONError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, types.ErrorResponse{Error: msg, Code: status})
}

// writeExecuteError writes a node failure including its kind and, for
// per-item failures, the index of the item that aborted the batch.
func writeExecuteError(w http.ResponseWriter, status int, err error) {
	resp := types.ErrorResponse{Error: err.Error(), Code: status, Kind: string(node.KindOf(err))}
	if idx, ok := node.ItemIndex(err); ok {
		resp.ItemIndex = &idx
	}
	writeJSON(w, status, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// statusForError maps node error kinds to HTTP status codes. Problems with
// the caller's parameters are 400s; LM Studio failures are reported as a bad
// or slow upstream.
func statusForError(err error) int {
	switch node.KindOf(err) {
	case node.KindInvalidSchema, node.KindInvalidParameter:
		return http.StatusBadRequest
	case node.KindRequestTimedOut:
		return http.StatusGatewayTimeout
	case node.KindRequestFailed, node.KindInvalidResponseStructure, node.KindNoContent, node.KindContentParseFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
