// Package node implements the LM Studio chat action. It is structured into
// small files by concern:
//
//   - node.go: Node type, Execute/ExecuteItem and transport error translation.
//   - params.go: Params and their defaults and range checks.
//   - request.go: JSON Schema parsing and chat payload construction.
//   - response.go: response shape validation and the {response, _metadata} envelope.
//   - models.go: model dropdown options.
//   - template.go: per-item evaluation of Model and Message.
//   - errors.go: error kinds, predicates and ItemError.
//
// Items are processed sequentially; the only suspension point is the HTTP
// call, which honours the caller's context and the per-item timeout.
package node
