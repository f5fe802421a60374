package node

import (
	"context"
	"fmt"
	"testing"
)

func TestKindOf_SeesThroughWrapping(t *testing.T) {
	base := ErrRequestTimedOut(30, context.DeadlineExceeded)
	wrapped := fmt.Errorf("execute: %w", &ItemError{Index: 3, Err: base})
	if KindOf(wrapped) != KindRequestTimedOut || !IsRequestTimedOut(wrapped) {
		t.Fatalf("kind lost through wrapping: %v", KindOf(wrapped))
	}
	if idx, ok := ItemIndex(wrapped); !ok || idx != 3 {
		t.Fatalf("index=%d ok=%v", idx, ok)
	}
	if KindOf(fmt.Errorf("plain")) != "" {
		t.Fatalf("plain errors carry no kind")
	}
	if _, ok := ItemIndex(base); ok {
		t.Fatalf("unexpected item index on bare error")
	}
}

func TestErrorMessages(t *testing.T) {
	cases := map[string]error{
		"Request timed out after 30 seconds":                    ErrRequestTimedOut(30, nil),
		"LM Studio request failed: connection refused":          ErrRequestFailed(fmt.Errorf("connection refused")),
		"Invalid response structure from LM Studio":             ErrInvalidResponseStructure(""),
		"No content in response from LM Studio":                 ErrNoContent(),
		"Failed to parse JSON response: bad. Raw content: {oops": ErrContentParseFailed(fmt.Errorf("bad"), "{oops"),
		"item 2: No content in response from LM Studio":         &ItemError{Index: 2, Err: ErrNoContent()},
	}
	for want, err := range cases {
		if err.Error() != want {
			t.Fatalf("got %q, want %q", err.Error(), want)
		}
	}
}

func TestPredicates_MatchOnlyTheirKind(t *testing.T) {
	preds := map[string]func(error) bool{
		"schema":    IsInvalidSchema,
		"parameter": IsInvalidParameter,
		"failed":    IsRequestFailed,
		"timeout":   IsRequestTimedOut,
		"structure": IsInvalidResponseStructure,
		"empty":     IsNoContent,
		"parse":     IsContentParseFailed,
	}
	errs := map[string]error{
		"schema":    ErrInvalidSchema(fmt.Errorf("x")),
		"parameter": ErrInvalidParameter("temperature", fmt.Errorf("x")),
		"failed":    ErrRequestFailed(fmt.Errorf("x")),
		"timeout":   ErrRequestTimedOut(5, nil),
		"structure": ErrInvalidResponseStructure(""),
		"empty":     ErrNoContent(),
		"parse":     ErrContentParseFailed(fmt.Errorf("x"), "raw"),
	}
	for name, err := range errs {
		for predName, pred := range preds {
			if got, want := pred(err), predName == name; got != want {
				t.Fatalf("%s predicate on %s error: got %v, want %v", predName, name, got, want)
			}
		}
	}
}
