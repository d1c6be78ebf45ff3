// Package registry holds the static model registry and the publisher
// derivation rules. The registry is built once at startup and never mutated.
package registry

import (
	"fmt"
	"os"
	"strings"

	"modelgate/internal/core"
	"modelgate/internal/util"
)

// publisherRule maps a model ID prefix to its publisher label.
type publisherRule struct {
	Prefix    string
	Publisher string
}

// publisherRules is evaluated in order; the first matching prefix wins.
// Matching is case-sensitive against the upstream catalog's exact IDs.
var publisherRules = []publisherRule{
	{"gpt-", core.PublisherOpenAI},
	{"Meta-Llama", core.PublisherMeta},
	{"Mistral", core.PublisherMistral},
	{"Phi-", core.PublisherMicrosoft},
	{"Cohere", core.PublisherCohere},
	{"AI21", core.PublisherAI21},
	{"Qwen", core.PublisherQwen},
}

// defaultModelIDs is the built-in catalog, used unless a models config file
// replaces it.
var defaultModelIDs = []string{
	"gpt-4o",
	"gpt-4o-mini",
	"Meta-Llama-3.1-405B-Instruct",
	"Meta-Llama-3.1-8B-Instruct",
	"Mistral-Large-2411",
	"Mistral-Nemo",
	"Phi-3.5-MoE-instruct",
	"Phi-4",
	"Cohere-command-r-plus-08-2024",
	"AI21-Jamba-1.5-Large",
	"Qwen2.5-72B-Instruct",
}

// PublisherFor derives the publisher label for a model ID. Pure and total:
// IDs matching no rule map to Unknown.
func PublisherFor(modelID string) string {
	for _, rule := range publisherRules {
		if strings.HasPrefix(modelID, rule.Prefix) {
			return rule.Publisher
		}
	}
	return core.PublisherUnknown
}

// Registry is the immutable ordered set of supported model IDs.
type Registry struct {
	ids     []string
	members map[string]struct{}
}

// New builds a registry from the given ordered ID list.
func New(ids []string) *Registry {
	members := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		members[id] = struct{}{}
	}
	return &Registry{
		ids:     append([]string(nil), ids...),
		members: members,
	}
}

// NewDefault builds a registry from the built-in catalog.
func NewDefault() *Registry {
	return New(defaultModelIDs)
}

// LoadFromFile builds a registry from a JSON array of model IDs.
func LoadFromFile(path string, logger core.Logger) (*Registry, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path from config, not user input
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var ids []string
	if err := util.UnmarshalJSON(data, &ids); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("%s contains no model IDs", path)
	}

	logger.Info("Loaded %d models from %s", len(ids), path)
	return New(ids), nil
}

// Load builds the registry, preferring the config file when a path is given.
func Load(path string, logger core.Logger) (*Registry, error) {
	if path == "" {
		logger.Info("Using built-in model catalog (%d models)", len(defaultModelIDs))
		return NewDefault(), nil
	}
	return LoadFromFile(path, logger)
}

// IDs returns the ordered model ID list.
func (r *Registry) IDs() []string {
	return append([]string(nil), r.ids...)
}

// Len returns the number of registered models.
func (r *Registry) Len() int {
	return len(r.ids)
}

// Contains reports whether the model ID is registered.
func (r *Registry) Contains(id string) bool {
	_, ok := r.members[id]
	return ok
}

// Invalid returns every ID from the given list that is not registered,
// preserving input order.
func (r *Registry) Invalid(ids []string) []string {
	var invalid []string
	for _, id := range ids {
		if !r.Contains(id) {
			invalid = append(invalid, id)
		}
	}
	return invalid
}

// Entries returns the decorated model list for the models endpoint.
func (r *Registry) Entries() []core.ModelEntry {
	entries := make([]core.ModelEntry, 0, len(r.ids))
	for _, id := range r.ids {
		entries = append(entries, core.ModelEntry{
			ID:        id,
			Name:      id,
			Endpoint:  fmt.Sprintf("/api/models/%s/chat", id),
			Publisher: PublisherFor(id),
			Available: true,
		})
	}
	return entries
}
