package model

import "time"

// Resolution methods reported to callers
const (
	ResolutionExactAlias   = "exact_alias"
	ResolutionExactCatalog = "exact_catalog"
	ResolutionFuzzy        = "fuzzy_match"
	ResolutionNone         = "no_confident_match"
)

// ResolutionResult is the outcome of resolving a free-text service name.
// Confidence 1.0 means an exact alias or catalog hit; 0.0 means no match
// met the threshold and ResolvedName is the original input.
type ResolutionResult struct {
	Input        string   `json:"original_input"`
	ResolvedName string   `json:"resolved_name"`
	Confidence   float64  `json:"confidence"`
	Alternatives []string `json:"suggestions"`
	Method       string   `json:"resolution_method"`
}

// AutoApply reports whether the caller can substitute the resolved name
// without flagging it
func (r ResolutionResult) AutoApply(threshold float64) bool {
	return r.Confidence >= threshold
}

// Suggestion is one partial-name match with its relevance score
type Suggestion struct {
	Service string  `json:"service_name"`
	Score   float64 `json:"relevance_score"`
}

// CatalogRecord is the persisted shape of the service catalog cache.
// Missing or corrupt content is treated as an empty cache.
type CatalogRecord struct {
	CachedAt time.Time `json:"cached_at"`
	Services []string  `json:"services"`
}
