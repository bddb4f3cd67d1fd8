package resolver

import (
	"context"

	"github.com/elC0mpa/aws-costpilot/model"
	"github.com/elC0mpa/aws-costpilot/service/catalog"
	"github.com/rs/zerolog"
)

// Scoring policy. Word-level hits are discounted against whole-string
// hits, and alias-word hits rank above catalog-word hits, so a literal
// catalog match always wins a constructed one.
const (
	// ConfidenceThreshold is the minimum fuzzy score accepted as a match
	ConfidenceThreshold = 0.6
	// AutoApplyThreshold is the confidence above which callers may
	// substitute the resolved name without flagging it
	AutoApplyThreshold = 0.8
	// AliasWordPenalty discounts matches against single words of an alias
	// canonical name
	AliasWordPenalty = 0.9
	// CatalogWordPenalty discounts matches against single words of a
	// catalog entry
	CatalogWordPenalty = 0.8
)

// maxAlternatives caps the "did you mean" list
const maxAlternatives = 5

// minWordLength skips words too short to carry signal in word-level
// comparison
const minWordLength = 3

type service struct {
	catalog catalog.CatalogService
	logger  zerolog.Logger
}

// ResolverService maps free-text service names to canonical Cost Explorer
// names
type ResolverService interface {
	Resolve(ctx context.Context, input string) (*model.ResolutionResult, error)
	Suggest(ctx context.Context, partial string, limit int) ([]model.Suggestion, error)
	AllServices(ctx context.Context) ([]string, error)
}
