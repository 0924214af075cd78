// Package rank scores and orders catalog candidates against a query. The
// score is a weighted sum of five bounded components so every ranking is
// explainable from its breakdown alone.
package rank

import (
	"sort"
	"strings"

	"github.com/sitecrew/estimator/internal/domain"
	"github.com/sitecrew/estimator/internal/query"
	"github.com/sitecrew/estimator/internal/taxonomy"
)

// Component weights. They sum to 1.0 so the total stays in [0,1].
const (
	weightCodeMatch   = 0.35
	weightSemanticSim = 0.30
	weightTitleMatch  = 0.15
	weightFieldMatch  = 0.10
	weightUnitMatch   = 0.10
)

const (
	codeMatchExactScore    = 1.0
	codeMatchDivisionScore = 0.7
	neutralScore           = 0.5
	unitFamilyScore        = 0.5
)

// scoreItem computes the weighted score and its breakdown for one candidate.
// targetUnit may be empty (unit unspecified, neutral).
func scoreItem(parsed query.Parsed, item *domain.LineItem, targetUnit string) (float64, domain.ComponentScores, domain.MatchExplanation) {
	var (
		components  domain.ComponentScores
		explanation domain.MatchExplanation
	)

	components.CodeMatch, explanation.CodeMatch = codeMatch(parsed, item)
	components.SemanticSim = semanticSim(parsed, item)
	components.TitleMatch, explanation.MatchedTokens = titleMatch(parsed, item)
	components.FieldMatch, explanation.FieldMatches = fieldMatch(parsed, item)
	components.UnitMatch = unitMatch(targetUnit, item.Unit)

	explanation.SemanticSimilarity = components.SemanticSim

	score := weightCodeMatch*components.CodeMatch +
		weightSemanticSim*components.SemanticSim +
		weightTitleMatch*components.TitleMatch +
		weightFieldMatch*components.FieldMatch +
		weightUnitMatch*components.UnitMatch

	return score, components, explanation
}

// codeMatch scores 1.0 when the query and the normalized item code contain
// one another, 0.7 when the query mentions the item's two-digit division,
// and 0 otherwise.
func codeMatch(parsed query.Parsed, item *domain.LineItem) (float64, string) {
	code := query.Normalize(item.FullCode)
	q := parsed.Normalized

	if code != "" && q != "" &&
		(strings.Contains(q, code) || strings.Contains(code, q)) {
		return codeMatchExactScore, domain.CodeMatchExact
	}

	if div := item.Division(); div != "" {
		for _, tok := range parsed.Tokens {
			if tok == div {
				return codeMatchDivisionScore, domain.CodeMatchSameDivision
			}
		}
	}

	return 0, domain.CodeMatchNone
}

// semanticSim uses the upstream embedding similarity when supplied,
// falling back to a character-sequence ratio against the item title. The
// fallback is a degraded mode, not the primary signal.
func semanticSim(parsed query.Parsed, item *domain.LineItem) float64 {
	if item.EmbeddingSimilarity > 0 {
		return clamp01(item.EmbeddingSimilarity)
	}

	title := query.Normalize(item.Description)
	if item.DescriptionAr != "" && parsed.Language == domain.LanguageArabic {
		title = query.Normalize(item.DescriptionAr)
	}
	return sequenceRatio(parsed.Normalized, title)
}

// titleMatch is the fraction of query tokens found, directly or through a
// synonym, in the item title's token set.
func titleMatch(parsed query.Parsed, item *domain.LineItem) (float64, []string) {
	if len(parsed.Tokens) == 0 {
		return 0, nil
	}

	titleTokens := append(
		strings.Fields(query.Normalize(item.Description)),
		strings.Fields(query.Normalize(item.DescriptionAr))...)

	matched := make([]string, 0, len(parsed.Tokens))
	for _, tok := range parsed.Tokens {
		if tokenMatchesTitle(tok, titleTokens) {
			matched = append(matched, tok)
		}
	}
	sort.Strings(matched)

	fraction := float64(len(matched)) / float64(len(parsed.Tokens))
	if fraction > 1 {
		fraction = 1
	}
	return fraction, matched
}

func tokenMatchesTitle(tok string, titleTokens []string) bool {
	if tokenInSet(tok, titleTokens) {
		return true
	}
	for expanded := range taxonomy.ExpandTokens([]string{tok}) {
		if tokenInSet(expanded, titleTokens) {
			return true
		}
	}
	return false
}

// tokenInSet accepts exact hits plus simple inflections: "footing" counts
// against "footings". The 4-rune floor keeps short tokens from matching
// everything.
func tokenInSet(tok string, titleTokens []string) bool {
	const minPrefixRunes = 4

	for _, tt := range titleTokens {
		if tok == tt {
			return true
		}
		if len([]rune(tok)) < minPrefixRunes || len([]rune(tt)) < minPrefixRunes {
			continue
		}
		if strings.HasPrefix(tt, tok) || strings.HasPrefix(tok, tt) {
			return true
		}
	}
	return false
}

// fieldMatch runs the auxiliary metadata checks that apply to this item and
// returns the fraction that passed. With nothing to check it stays neutral.
func fieldMatch(parsed query.Parsed, item *domain.LineItem) (float64, []string) {
	var applicable, passed int
	var matches []string

	if item.Unit != "" {
		applicable++
		if queryMentionsUnit(parsed, item.Unit) {
			passed++
			matches = append(matches, "unit")
		}
	}

	if len(item.CrewRoles) > 0 {
		applicable++
		if crewOverlap(parsed, item.CrewRoles) {
			passed++
			matches = append(matches, "crew")
		}
	}

	if applicable == 0 {
		return neutralScore, nil
	}
	return float64(passed) / float64(applicable), matches
}

func queryMentionsUnit(parsed query.Parsed, itemUnit string) bool {
	if parsed.Unit != "" && taxonomy.UnitsCompatible(parsed.Unit, itemUnit) {
		return true
	}
	normalized := query.Normalize(itemUnit)
	return normalized != "" && strings.Contains(parsed.Normalized, normalized)
}

func crewOverlap(parsed query.Parsed, roles []domain.CrewRole) bool {
	for _, role := range roles {
		for _, tok := range strings.Fields(query.Normalize(role.Description)) {
			if len(tok) < 3 {
				continue
			}
			if strings.Contains(parsed.Normalized, tok) {
				return true
			}
		}
	}
	return false
}

// unitMatch scores the target unit against the item unit: exact 1.0, same
// family 0.5, incompatible 0, neutral 0.5 when no target was given.
func unitMatch(targetUnit, itemUnit string) float64 {
	if targetUnit == "" || itemUnit == "" {
		return neutralScore
	}

	a := strings.ToUpper(strings.TrimSpace(targetUnit))
	b := strings.ToUpper(strings.TrimSpace(itemUnit))
	if a == b {
		return 1.0
	}
	if taxonomy.UnitsCompatible(a, b) {
		return unitFamilyScore
	}
	return 0
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
