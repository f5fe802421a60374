package node

import (
	"context"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"lmnode/internal/lmstudio"
	"lmnode/pkg/types"
)

// NoModelsOption is returned in place of an error when models cannot be listed.
var NoModelsOption = types.ModelOption{
	Name:  "No models found - check LM Studio connection",
	Value: "",
}

// ModelOptions lists chat-capable models for the model dropdown. It never
// fails: any listing problem yields the single NoModelsOption entry.
func (n *Node) ModelOptions(ctx context.Context) []types.ModelOption {
	models, err := n.client.ListModels(ctx)
	if err != nil {
		n.logger.Warn().Err(err).Msg("list models failed")
		return []types.ModelOption{NoModelsOption}
	}
	opts := BuildModelOptions(models)
	if len(opts) == 0 {
		return []types.ModelOption{NoModelsOption}
	}
	return opts
}

// BuildModelOptions keeps llm and vlm entries, decorates loaded ones and
// sorts by display name with English collation.
func BuildModelOptions(models []lmstudio.ModelInfo) []types.ModelOption {
	opts := make([]types.ModelOption, 0, len(models))
	for _, m := range models {
		if m.Type != lmstudio.ModelTypeLLM && m.Type != lmstudio.ModelTypeVLM {
			continue
		}
		name := m.ID
		if m.Loaded() {
			name += " (loaded)"
		}
		opt := types.ModelOption{Name: name, Value: m.ID}
		if m.Quantization != "" {
			opt.Description = "Quantization: " + m.Quantization
		}
		opts = append(opts, opt)
	}
	// Collators keep internal buffers; one per call.
	coll := collate.New(language.English)
	sort.SliceStable(opts, func(i, j int) bool {
		return coll.CompareString(opts[i].Name, opts[j].Name) < 0
	})
	return opts
}
