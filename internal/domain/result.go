package domain

// Code match types recorded in a MatchExplanation.
const (
	CodeMatchExact        = "exact"
	CodeMatchSameDivision = "same_division"
	CodeMatchNone         = "none"
)

// ComponentScores holds the five weighted sub-scores, each in [0,1].
type ComponentScores struct {
	CodeMatch   float64 `json:"code_match"`
	SemanticSim float64 `json:"semantic_sim"`
	TitleMatch  float64 `json:"title_match"`
	FieldMatch  float64 `json:"field_match"`
	UnitMatch   float64 `json:"unit_match"`
}

// MatchExplanation records why a candidate scored the way it did.
type MatchExplanation struct {
	MatchedTokens      []string `json:"matched_tokens"`
	SemanticSimilarity float64  `json:"semantic_similarity"`
	CodeMatch          string   `json:"code_match"`
	FieldMatches       []string `json:"field_matches"`
}

// ScoredCandidate is a line item with its relevance score and explanation.
// Ephemeral: produced per query, never persisted.
type ScoredCandidate struct {
	Rank        int              `json:"rank"`
	Item        LineItem         `json:"item"`
	Score       float64          `json:"score"`
	Components  ComponentScores  `json:"component_scores"`
	Explanation MatchExplanation `json:"match_explanation"`
}

// ProductivityEstimate is the crew/duration output computed for a selected
// line item and quantity.
type ProductivityEstimate struct {
	ItemCode      string  `json:"item_code"`
	Description   string  `json:"description"`
	Quantity      float64 `json:"quantity"`
	Unit          string  `json:"unit"`
	DailyOutput   float64 `json:"daily_output"`
	Crews         int     `json:"num_crews"`
	DurationDays  int     `json:"duration_days"`
	TotalManHours float64 `json:"total_man_hours"`
	CrewStructure string  `json:"crew_structure,omitempty"`
}
