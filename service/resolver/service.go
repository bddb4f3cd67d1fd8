package resolver

import (
	"context"
	"sort"
	"strings"

	"github.com/agext/levenshtein"
	"github.com/elC0mpa/aws-costpilot/service/catalog"
	"github.com/rs/zerolog"

	"github.com/elC0mpa/aws-costpilot/model"
)

type match struct {
	name  string
	score float64
}

func NewService(catalogService catalog.CatalogService, logger zerolog.Logger) *service {
	return &service{
		catalog: catalogService,
		logger:  logger.With().Str("service", "resolver").Logger(),
	}
}

// Resolve maps a free-text service name to a canonical name. The first
// confident strategy wins: exact alias, exact catalog entry, then merged
// fuzzy matching. "No match" is a normal result with confidence zero; an
// error means resolution was impossible altogether.
func (s *service) Resolve(ctx context.Context, input string) (*model.ResolutionResult, error) {
	clean := strings.ToLower(strings.TrimSpace(input))

	if canonical, ok := serviceAliases[clean]; ok {
		return &model.ResolutionResult{
			Input:        input,
			ResolvedName: canonical,
			Confidence:   1.0,
			Alternatives: []string{},
			Method:       model.ResolutionExactAlias,
		}, nil
	}

	services, err := s.catalog.Get(ctx)
	if err != nil {
		return nil, err
	}

	for _, name := range services {
		if strings.ToLower(name) == clean {
			return &model.ResolutionResult{
				Input:        input,
				ResolvedName: name,
				Confidence:   1.0,
				Alternatives: []string{},
				Method:       model.ResolutionExactCatalog,
			}, nil
		}
	}

	candidates := mergeMatches(append(fuzzyAliasMatches(clean), fuzzyCatalogMatches(clean, services)...))
	if len(candidates) == 0 {
		return &model.ResolutionResult{
			Input:        input,
			ResolvedName: input,
			Confidence:   0,
			Alternatives: []string{},
			Method:       model.ResolutionNone,
		}, nil
	}

	best := candidates[0]
	if best.score >= ConfidenceThreshold {
		s.logger.Debug().Str("input", input).Str("resolved", best.name).Float64("confidence", best.score).Msg("fuzzy match")
		return &model.ResolutionResult{
			Input:        input,
			ResolvedName: best.name,
			Confidence:   best.score,
			Alternatives: alternativeNames(candidates[1:]),
			Method:       model.ResolutionFuzzy,
		}, nil
	}

	// no confident winner: keep the original input and surface every
	// candidate as a suggestion
	return &model.ResolutionResult{
		Input:        input,
		ResolvedName: input,
		Confidence:   0,
		Alternatives: alternativeNames(candidates),
		Method:       model.ResolutionNone,
	}, nil
}

// Suggest returns services whose names contain the partial input, scored
// by how much of the name the input covers
func (s *service) Suggest(ctx context.Context, partial string, limit int) ([]model.Suggestion, error) {
	if limit <= 0 {
		limit = maxAlternatives
	}

	services, err := s.AllServices(ctx)
	if err != nil {
		return nil, err
	}

	clean := strings.ToLower(strings.TrimSpace(partial))
	suggestions := []model.Suggestion{}
	for _, name := range services {
		if clean == "" || !strings.Contains(strings.ToLower(name), clean) {
			continue
		}
		suggestions = append(suggestions, model.Suggestion{
			Service: name,
			Score:   float64(len(clean)) / float64(len(name)),
		})
	}

	sort.Slice(suggestions, func(i, j int) bool {
		if suggestions[i].Score != suggestions[j].Score {
			return suggestions[i].Score > suggestions[j].Score
		}
		return suggestions[i].Service < suggestions[j].Service
	})

	if len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	return suggestions, nil
}

// AllServices returns the union of alias canonical names and the account
// catalog, sorted and deduplicated
func (s *service) AllServices(ctx context.Context) ([]string, error) {
	services, err := s.catalog.Get(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	all := []string{}
	for _, name := range append(AliasCanonicalNames(), services...) {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		all = append(all, name)
	}
	sort.Strings(all)
	return all, nil
}

func fuzzyAliasMatches(input string) []match {
	matches := []match{}

	for key, canonical := range serviceAliases {
		if score := similarity(input, key); score >= ConfidenceThreshold {
			matches = append(matches, match{name: canonical, score: score})
		}
		for _, word := range significantWords(canonical) {
			if score := similarity(input, word); score >= ConfidenceThreshold {
				matches = append(matches, match{name: canonical, score: score * AliasWordPenalty})
			}
		}
	}

	return matches
}

func fuzzyCatalogMatches(input string, services []string) []match {
	matches := []match{}

	for _, name := range services {
		if score := similarity(input, strings.ToLower(name)); score >= ConfidenceThreshold {
			matches = append(matches, match{name: name, score: score})
		}
		for _, word := range significantWords(name) {
			if score := similarity(input, word); score >= ConfidenceThreshold {
				matches = append(matches, match{name: name, score: score * CatalogWordPenalty})
			}
		}
	}

	return matches
}

// mergeMatches deduplicates by canonical name keeping the highest score,
// then orders by score descending with a lexicographic tie-break
func mergeMatches(matches []match) []match {
	best := make(map[string]float64)
	for _, m := range matches {
		if score, ok := best[m.name]; !ok || m.score > score {
			best[m.name] = m.score
		}
	}

	merged := make([]match, 0, len(best))
	for name, score := range best {
		merged = append(merged, match{name: name, score: score})
	}
	sort.Slice(merged, func(i, j int) bool {
		if merged[i].score != merged[j].score {
			return merged[i].score > merged[j].score
		}
		return merged[i].name < merged[j].name
	})

	return merged
}

func alternativeNames(matches []match) []string {
	names := []string{}
	for _, m := range matches {
		if len(names) == maxAlternatives {
			break
		}
		names = append(names, m.name)
	}
	return names
}

func similarity(a, b string) float64 {
	return levenshtein.Similarity(a, b, nil)
}

func significantWords(name string) []string {
	words := []string{}
	for _, word := range strings.Fields(strings.ToLower(name)) {
		if len(word) >= minWordLength {
			words = append(words, word)
		}
	}
	return words
}
