package node

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/rs/zerolog"

	"lmnode/internal/lmstudio"
	"lmnode/pkg/types"
)

// ChatClient is the subset of the LM Studio client the node depends on.
type ChatClient interface {
	ListModels(ctx context.Context) ([]lmstudio.ModelInfo, error)
	ChatCompletion(ctx context.Context, req lmstudio.ChatRequest) (*lmstudio.ChatResponse, error)
}

// Node executes the LM Studio chat action over batches of items.
type Node struct {
	client ChatClient
	logger zerolog.Logger
}

// Option configures a Node.
type Option func(*Node)

// WithLogger installs a structured logger. The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(n *Node) { n.logger = l }
}

// New constructs a Node over client.
func New(client ChatClient, opts ...Option) *Node {
	n := &Node{client: client, logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Ready reports whether LM Studio answers the models endpoint.
func (n *Node) Ready(ctx context.Context) bool {
	_, err := n.client.ListModels(ctx)
	return err == nil
}

// Execute runs the chat action once per item, strictly in order. With
// ContinueOnFail a failing item becomes {"error": msg}; otherwise the first
// failure aborts the batch and is returned as an *ItemError.
func (n *Node) Execute(ctx context.Context, items []types.Item, p Params) ([]types.Item, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	out := make([]types.Item, 0, len(items))
	for i, item := range items {
		res, err := n.ExecuteItem(ctx, item, p)
		if err != nil {
			if p.ContinueOnFail {
				n.logger.Warn().Int("item", i).Str("kind", string(KindOf(err))).Err(err).Msg("item failed, continuing")
				out = append(out, types.Item{JSON: map[string]any{"error": err.Error()}, PairedItem: i})
				continue
			}
			return nil, &ItemError{Index: i, Err: err}
		}
		out = append(out, types.Item{JSON: res.JSON(), PairedItem: i})
	}
	return out, nil
}

// ExecuteItem runs the chat action for a single item.
func (n *Node) ExecuteItem(ctx context.Context, item types.Item, p Params) (Result, error) {
	model, err := render("model", p.Model, item.JSON)
	if err != nil {
		return Result{}, err
	}
	message, err := render("message", p.Message, item.JSON)
	if err != nil {
		return Result{}, err
	}
	req, err := BuildChatRequest(model, message, p)
	if err != nil {
		return Result{}, err
	}
	schema := requestedSchema(req)

	callCtx := ctx
	if p.TimeoutSeconds > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, time.Duration(p.TimeoutSeconds)*time.Second)
		defer cancel()
	}

	start := time.Now()
	n.logger.Debug().Str("model", model).Bool("structured", schema != nil).Msg("chat request")
	resp, err := n.client.ChatCompletion(callCtx, req)
	if err != nil {
		return Result{}, translateError(callCtx, err, p.TimeoutSeconds)
	}
	n.logger.Debug().Str("model", resp.Model).Str("id", resp.ID).Dur("dur", time.Since(start)).Msg("chat response")
	return MapResponse(resp, schema, p.ValidateResponse)
}

// translateError maps client failures onto node error kinds.
func translateError(ctx context.Context, err error, timeoutSeconds int) error {
	switch {
	case lmstudio.IsStatusError(err):
		return ErrRequestFailed(err)
	case errors.Is(err, lmstudio.ErrMalformedResponse):
		return ErrInvalidResponseStructure(err.Error())
	case isTimeout(ctx, err):
		return ErrRequestTimedOut(timeoutSeconds, err)
	default:
		return ErrRequestFailed(err)
	}
}

func isTimeout(ctx context.Context, err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return true
	}
	return ctx.Err() != nil
}
