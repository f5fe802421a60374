package node

import (
	"errors"
	"fmt"
)

// Kind classifies a per-item failure.
type Kind string

const (
	KindInvalidSchema            Kind = "invalid_schema"
	KindInvalidParameter         Kind = "invalid_parameter"
	KindRequestFailed            Kind = "request_failed"
	KindRequestTimedOut          Kind = "request_timed_out"
	KindInvalidResponseStructure Kind = "invalid_response_structure"
	KindNoContent                Kind = "no_content"
	KindContentParseFailed       Kind = "content_parse_failed"
)

// nodeError is the single concrete error type behind every Kind.
type nodeError struct {
	kind Kind
	msg  string
	err  error
}

func (e *nodeError) Error() string { return e.msg }
func (e *nodeError) Unwrap() error { return e.err }

func newError(kind Kind, err error, format string, a ...any) error {
	return &nodeError{kind: kind, msg: fmt.Sprintf(format, a...), err: err}
}

// ErrInvalidSchema reports JSON Schema text that is not a JSON object.
func ErrInvalidSchema(err error) error {
	return newError(KindInvalidSchema, err, "Invalid JSON Schema: %v", err)
}

// ErrInvalidParameter reports a parameter that could not be evaluated for an item.
func ErrInvalidParameter(name string, err error) error {
	return newError(KindInvalidParameter, err, "Invalid parameter %q: %v", name, err)
}

// ErrRequestFailed reports a non-timeout transport or HTTP failure.
func ErrRequestFailed(err error) error {
	return newError(KindRequestFailed, err, "LM Studio request failed: %v", err)
}

// ErrRequestTimedOut reports a request aborted by the timeout or by cancellation.
// timeoutSeconds is the configured timeout; zero means the caller aborted.
func ErrRequestTimedOut(timeoutSeconds int, err error) error {
	if timeoutSeconds > 0 {
		return newError(KindRequestTimedOut, err, "Request timed out after %d seconds", timeoutSeconds)
	}
	return newError(KindRequestTimedOut, err, "Request was aborted before LM Studio answered")
}

// ErrInvalidResponseStructure reports a body without choices[0].message.
func ErrInvalidResponseStructure(detail string) error {
	if detail == "" {
		return newError(KindInvalidResponseStructure, nil, "Invalid response structure from LM Studio")
	}
	return newError(KindInvalidResponseStructure, nil, "Invalid response structure from LM Studio: %s", detail)
}

// ErrNoContent reports an empty message content.
func ErrNoContent() error {
	return newError(KindNoContent, nil, "No content in response from LM Studio")
}

// ErrContentParseFailed reports structured content that is not valid JSON,
// or that does not satisfy the requested schema.
func ErrContentParseFailed(err error, raw string) error {
	return newError(KindContentParseFailed, err, "Failed to parse JSON response: %v. Raw content: %s", err, raw)
}

// KindOf returns the Kind carried by err, or "" if err is not a node error.
func KindOf(err error) Kind {
	var ne *nodeError
	if errors.As(err, &ne) {
		return ne.kind
	}
	return ""
}

// IsInvalidSchema reports whether err indicates unparseable or non-object schema text.
func IsInvalidSchema(err error) bool { return KindOf(err) == KindInvalidSchema }

// IsInvalidParameter reports whether err indicates an out-of-range or unrenderable parameter.
func IsInvalidParameter(err error) bool { return KindOf(err) == KindInvalidParameter }

// IsRequestFailed reports whether err indicates a transport or HTTP failure talking to LM Studio.
func IsRequestFailed(err error) bool { return KindOf(err) == KindRequestFailed }

// IsRequestTimedOut reports whether err indicates the request hit its timeout or was aborted.
func IsRequestTimedOut(err error) bool { return KindOf(err) == KindRequestTimedOut }

// IsInvalidResponseStructure reports whether err indicates a completion without choices[0].message.
func IsInvalidResponseStructure(err error) bool {
	return KindOf(err) == KindInvalidResponseStructure
}

// IsNoContent reports whether err indicates an empty completion.
func IsNoContent(err error) bool { return KindOf(err) == KindNoContent }

// IsContentParseFailed reports whether err indicates structured content that was not valid JSON
// or did not match the schema.
func IsContentParseFailed(err error) bool { return KindOf(err) == KindContentParseFailed }

// ItemError tags a failure with the index of the input item that caused it.
type ItemError struct {
	Index int
	Err   error
}

func (e *ItemError) Error() string { return fmt.Sprintf("item %d: %v", e.Index, e.Err) }
func (e *ItemError) Unwrap() error { return e.Err }

// ItemIndex returns the failing item index carried by err, if any.
func ItemIndex(err error) (int, bool) {
	var ie *ItemError
	if errors.As(err, &ie) {
		return ie.Index, true
	}
	return 0, false
}
