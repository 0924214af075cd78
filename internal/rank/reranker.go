package rank

import (
	"context"
	"fmt"
	"sort"

	"github.com/sitecrew/estimator/internal/domain"
	"github.com/sitecrew/estimator/internal/logging"
	"github.com/sitecrew/estimator/internal/query"
)

// Defaults applied when the caller leaves options zero.
const (
	DefaultTopK          = 7
	DefaultMinConfidence = 0.25

	sparseQueryTokens = 3
	maxRelaxations    = 2
)

// Relaxation steps for the man-hours filter, applied in order when the
// strict threshold eliminates every candidate.
var relaxationFactors = [maxRelaxations]float64{1.25, 1.5}

// Filters are hard constraints applied before scoring.
type Filters struct {
	Division   string   // restrict to a two-digit CSI division
	ManHoursLT *float64 // keep items with man_hours below this threshold
}

// Options tune a rerank call. Zero values fall back to defaults.
type Options struct {
	TopK          int
	MinConfidence float64
	Unit          string // target unit for the unit component
}

// Output is the ranked result set plus everything the caller needs to
// explain an empty one. Relaxations counts how often the man-hours filter
// was widened; it is diagnostic for the caller's metrics, not part of the
// wire response.
type Output struct {
	Results           []domain.ScoredCandidate `json:"results"`
	Warnings          []string                 `json:"warnings"`
	Suggestions       []string                 `json:"suggestions"`
	DataSourceMissing bool                     `json:"data_source_missing"`
	Relaxations       int                      `json:"-"`
}

// Reranker scores candidate sets. Stateless; safe for concurrent use.
type Reranker struct {
	logger logging.Logger
}

func NewReranker(logger logging.Logger) *Reranker {
	return &Reranker{logger: logger}
}

// Rerank filters, scores and orders candidates for a query. A nil candidate
// slice means the backing catalog was unavailable and is reported through
// DataSourceMissing; an empty slice is a legitimate zero-candidate set.
// The same inputs always produce the same ranked order.
func (r *Reranker) Rerank(ctx context.Context, rawQuery string, candidates []domain.LineItem, filters Filters, opts Options) Output {
	_ = ctx

	var out Output

	if candidates == nil {
		out.DataSourceMissing = true
		out.Warnings = append(out.Warnings, "data source missing: no catalog available")
		return out
	}

	parsed := query.Parse(rawQuery)
	if parsed.Normalized == "" {
		out.Warnings = append(out.Warnings, "empty query")
		return out
	}

	topK := opts.TopK
	if topK <= 0 {
		topK = DefaultTopK
	}
	minConfidence := opts.MinConfidence
	if minConfidence <= 0 {
		minConfidence = DefaultMinConfidence
	}

	pool := excludeHeaders(candidates)
	pool = filterDivision(pool, filters.Division)
	pool, relaxWarnings, relaxations := filterManHours(pool, filters.ManHoursLT)
	out.Warnings = append(out.Warnings, relaxWarnings...)
	out.Relaxations = relaxations

	scored := make([]domain.ScoredCandidate, 0, len(pool))
	for i := range pool {
		score, components, explanation := scoreItem(parsed, &pool[i], opts.Unit)
		if score < minConfidence {
			continue
		}
		scored = append(scored, domain.ScoredCandidate{
			Item:        pool[i],
			Score:       score,
			Components:  components,
			Explanation: explanation,
		})
	}

	sortCandidates(scored)

	if len(scored) > topK {
		scored = scored[:topK]
	}
	for i := range scored {
		scored[i].Rank = i + 1
	}
	out.Results = scored

	if len(scored) == 0 && len(parsed.Tokens) <= sparseQueryTokens {
		out.Suggestions = sparseSuggestions(parsed.Language)
	}

	r.logger.Debug("rerank complete",
		logging.Int("candidates", len(candidates)),
		logging.Int("results", len(out.Results)),
		logging.Int("warnings", len(out.Warnings)))

	return out
}

func excludeHeaders(items []domain.LineItem) []domain.LineItem {
	kept := make([]domain.LineItem, 0, len(items))
	for i := range items {
		if !items[i].IsHeader() {
			kept = append(kept, items[i])
		}
	}
	return kept
}

func filterDivision(items []domain.LineItem, division string) []domain.LineItem {
	if division == "" {
		return items
	}
	kept := make([]domain.LineItem, 0, len(items))
	for i := range items {
		if items[i].Division() == division {
			kept = append(kept, items[i])
		}
	}
	return kept
}

// filterManHours applies the man-hours ceiling, relaxing it progressively
// when the strict threshold eliminates everything. Each relaxation is
// recorded as a warning; after the last step an empty set is returned as
// is, never fabricated around.
func filterManHours(items []domain.LineItem, threshold *float64) ([]domain.LineItem, []string, int) {
	if threshold == nil {
		return items, nil, 0
	}

	below := func(limit float64) []domain.LineItem {
		kept := make([]domain.LineItem, 0, len(items))
		for i := range items {
			if items[i].ManHours != nil && *items[i].ManHours < limit {
				kept = append(kept, items[i])
			}
		}
		return kept
	}

	kept := below(*threshold)
	if len(kept) > 0 {
		return kept, nil, 0
	}

	var warnings []string
	for n, factor := range relaxationFactors {
		relaxed := *threshold * factor
		warnings = append(warnings,
			fmt.Sprintf("man_hours filter relaxed to < %.2f (%.2fx)", relaxed, factor))
		kept = below(relaxed)
		if len(kept) > 0 {
			return kept, warnings, n + 1
		}
	}

	warnings = append(warnings, "man_hours filter yielded no candidates even after relaxation")
	return kept, warnings, maxRelaxations
}

// sortCandidates orders descending by score, then exact code match, then
// semantic similarity, then daily output, with the item code as the final
// tie-break so equal items always rank identically.
func sortCandidates(scored []domain.ScoredCandidate) {
	sort.SliceStable(scored, func(i, j int) bool {
		a, b := &scored[i], &scored[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		ae := a.Explanation.CodeMatch == domain.CodeMatchExact
		be := b.Explanation.CodeMatch == domain.CodeMatchExact
		if ae != be {
			return ae
		}
		if a.Components.SemanticSim != b.Components.SemanticSim {
			return a.Components.SemanticSim > b.Components.SemanticSim
		}
		ao, bo := outputOf(&a.Item), outputOf(&b.Item)
		if ao != bo {
			return ao > bo
		}
		return a.Item.FullCode < b.Item.FullCode
	})
}

func outputOf(item *domain.LineItem) float64 {
	if item.DailyOutput == nil {
		return 0
	}
	return *item.DailyOutput
}

func sparseSuggestions(lang domain.Language) []string {
	if lang == domain.LanguageArabic {
		return []string{
			"حدد مرحلة العمل (نجارة، حدادة، صب)",
			"حدد وحدة القياس (م3، م2)",
			"اذكر نوع العنصر الإنشائي",
		}
	}
	return []string{
		"add a work stage (formwork, reinforcement, casting)",
		"specify the unit (m3, m2)",
		"name the structural element",
	}
}
