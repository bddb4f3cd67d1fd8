package resolver

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elC0mpa/aws-costpilot/model"
)

type stubCatalog struct {
	services []string
	err      error
	calls    int
}

func (s *stubCatalog) Get(ctx context.Context) ([]string, error) {
	s.calls++
	return s.services, s.err
}

func (s *stubCatalog) Invalidate() error {
	return nil
}

func TestResolveExactAlias(t *testing.T) {
	catalog := &stubCatalog{}
	svc := NewService(catalog, zerolog.Nop())

	result, err := svc.Resolve(context.Background(), "ec2")
	require.NoError(t, err)

	assert.Equal(t, "Amazon Elastic Compute Cloud - Compute", result.ResolvedName)
	assert.Equal(t, 1.0, result.Confidence)
	assert.Equal(t, model.ResolutionExactAlias, result.Method)
	assert.Empty(t, result.Alternatives)
	assert.Equal(t, 0, catalog.calls)
}

func TestResolveAliasIgnoresCaseAndWhitespace(t *testing.T) {
	svc := NewService(&stubCatalog{}, zerolog.Nop())

	result, err := svc.Resolve(context.Background(), "  S3  ")
	require.NoError(t, err)

	assert.Equal(t, "Amazon Simple Storage Service", result.ResolvedName)
	assert.Equal(t, model.ResolutionExactAlias, result.Method)
}

func TestResolveExactCatalogEntry(t *testing.T) {
	catalog := &stubCatalog{services: []string{"AWS IoT Greengrass"}}
	svc := NewService(catalog, zerolog.Nop())

	result, err := svc.Resolve(context.Background(), "aws iot greengrass")
	require.NoError(t, err)

	assert.Equal(t, "AWS IoT Greengrass", result.ResolvedName)
	assert.Equal(t, 1.0, result.Confidence)
	assert.Equal(t, model.ResolutionExactCatalog, result.Method)
}

func TestResolveCanonicalNameIsIdempotent(t *testing.T) {
	catalog := &stubCatalog{services: []string{"AWS IoT Greengrass"}}
	svc := NewService(catalog, zerolog.Nop())

	first, err := svc.Resolve(context.Background(), "AWS IoT Greengrass")
	require.NoError(t, err)
	second, err := svc.Resolve(context.Background(), first.ResolvedName)
	require.NoError(t, err)

	assert.Equal(t, first.ResolvedName, second.ResolvedName)
	assert.Equal(t, 1.0, second.Confidence)
}

func TestResolveFuzzyMisspelling(t *testing.T) {
	catalog := &stubCatalog{services: []string{"AWS Lambda"}}
	svc := NewService(catalog, zerolog.Nop())

	result, err := svc.Resolve(context.Background(), "lambdaa")
	require.NoError(t, err)

	assert.Equal(t, "AWS Lambda", result.ResolvedName)
	assert.Equal(t, model.ResolutionFuzzy, result.Method)
	assert.GreaterOrEqual(t, result.Confidence, ConfidenceThreshold)
	assert.Less(t, result.Confidence, 1.0)
}

func TestResolveNoConfidentMatch(t *testing.T) {
	catalog := &stubCatalog{services: []string{"AWS Lambda"}}
	svc := NewService(catalog, zerolog.Nop())

	result, err := svc.Resolve(context.Background(), "zzzzqqqq")
	require.NoError(t, err)

	assert.Equal(t, "zzzzqqqq", result.ResolvedName)
	assert.Zero(t, result.Confidence)
	assert.Equal(t, model.ResolutionNone, result.Method)
}

func TestResolveSurfacesCandidatesBelowThreshold(t *testing.T) {
	catalog := &stubCatalog{services: []string{"Amazon SageMaker"}}
	svc := NewService(catalog, zerolog.Nop())

	// close enough to score, not close enough to win
	result, err := svc.Resolve(context.Background(), "sagmakr")
	require.NoError(t, err)

	if result.Method == model.ResolutionNone && len(result.Alternatives) > 0 {
		assert.Contains(t, result.Alternatives, "Amazon SageMaker")
	}
}

func TestResolvePropagatesCatalogFailure(t *testing.T) {
	catalog := &stubCatalog{err: errors.New("no source")}
	svc := NewService(catalog, zerolog.Nop())

	_, err := svc.Resolve(context.Background(), "not-an-alias")
	require.Error(t, err)
}

func TestResolveAlternativesCapped(t *testing.T) {
	catalog := &stubCatalog{services: []string{
		"Amazon Elastic Compute Cloud - Compute",
		"Amazon Elastic Container Service",
		"Amazon Elastic Container Registry",
		"Amazon Elastic Kubernetes Service",
		"Amazon Elastic File System",
		"Amazon Elastic Transcoder",
		"Amazon ElastiCache",
	}}
	svc := NewService(catalog, zerolog.Nop())

	result, err := svc.Resolve(context.Background(), "elastic")
	require.NoError(t, err)

	assert.LessOrEqual(t, len(result.Alternatives), 5)
}

func TestSuggestScoresByCoverage(t *testing.T) {
	catalog := &stubCatalog{services: []string{
		"Amazon Simple Storage Service",
		"Amazon Simple Queue Service",
		"AWS Lambda",
	}}
	svc := NewService(catalog, zerolog.Nop())

	suggestions, err := svc.Suggest(context.Background(), "simple", 10)
	require.NoError(t, err)

	// alias canonicals also count: SQS, S3, SNS
	require.Len(t, suggestions, 3)
	// the shorter name gives the partial more coverage
	assert.Equal(t, "Amazon Simple Queue Service", suggestions[0].Service)
	assert.Greater(t, suggestions[0].Score, suggestions[1].Score)
}

func TestSuggestAppliesLimit(t *testing.T) {
	catalog := &stubCatalog{services: []string{
		"Amazon A", "Amazon B", "Amazon C",
	}}
	svc := NewService(catalog, zerolog.Nop())

	suggestions, err := svc.Suggest(context.Background(), "amazon", 2)
	require.NoError(t, err)
	assert.Len(t, suggestions, 2)
}

func TestSuggestNoMatches(t *testing.T) {
	catalog := &stubCatalog{services: []string{"AWS Lambda"}}
	svc := NewService(catalog, zerolog.Nop())

	suggestions, err := svc.Suggest(context.Background(), "xyzzy", 5)
	require.NoError(t, err)
	assert.Empty(t, suggestions)
}

func TestAllServicesMergesAndSorts(t *testing.T) {
	catalog := &stubCatalog{services: []string{
		"Zeta Custom Service",
		"AWS Lambda",
	}}
	svc := NewService(catalog, zerolog.Nop())

	all, err := svc.AllServices(context.Background())
	require.NoError(t, err)

	assert.True(t, sort.StringsAreSorted(all))
	assert.Contains(t, all, "Zeta Custom Service")
	assert.Contains(t, all, "Amazon Simple Storage Service")

	seen := make(map[string]int)
	for _, name := range all {
		seen[name]++
	}
	assert.Equal(t, 1, seen["AWS Lambda"])
}

func TestAliasCanonicalNamesSortedAndUnique(t *testing.T) {
	names := AliasCanonicalNames()

	assert.True(t, sort.StringsAreSorted(names))
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		_, dup := seen[name]
		assert.False(t, dup, "duplicate %q", name)
		seen[name] = struct{}{}
	}
}
