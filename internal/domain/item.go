// Package domain defines the core types shared across the estimator service.
package domain

// MaxCrewRoles is the maximum number of (count, role) pairs a line item
// carries in the source catalog.
const MaxCrewRoles = 13

// LineItem is a single priced work item from the CSI MasterFormat catalog.
// Identity is FullCode (main division / subdivision1 / subdivision2 / item).
// DailyOutput and ManHours are either both present or the item is a
// non-productivity header row.
type LineItem struct {
	FullCode      string     `db:"full_code"      json:"full_code"`
	Description   string     `db:"description"    json:"description"`
	DescriptionAr string     `db:"description_ar" json:"description_ar,omitempty"`
	DivisionName  string     `db:"main_div_name"  json:"division,omitempty"`
	Unit          string     `db:"unit"           json:"unit"`
	DailyOutput   *float64   `db:"daily_output"   json:"daily_output,omitempty"`
	ManHours      *float64   `db:"man_hours"      json:"man_hours,omitempty"`
	EquipHours    *float64   `db:"equip_hours"    json:"equip_hours,omitempty"`
	CrewStructure string     `db:"crew_structure" json:"crew_structure,omitempty"`
	CrewRoles     []CrewRole `db:"-"              json:"crew_roles,omitempty"`

	// EmbeddingSimilarity is an optional precomputed similarity supplied by
	// an upstream retriever. Zero means not provided.
	EmbeddingSimilarity float64 `db:"-" json:"embedding_similarity,omitempty"`
}

// CrewRole is one (headcount, role) pair of a crew structure.
type CrewRole struct {
	Count       float64 `json:"count"`
	Description string  `json:"description"`
}

// IsHeader reports whether the item is a non-productivity header row.
// Header rows are excluded from candidate sets and calculations.
func (li *LineItem) IsHeader() bool {
	return li.DailyOutput == nil && li.ManHours == nil
}

// Division returns the two-digit CSI division prefix of the item code,
// or an empty string when the code carries no leading digits.
func (li *LineItem) Division() string {
	digits := make([]byte, 0, 2)
	for i := 0; i < len(li.FullCode) && len(digits) < 2; i++ {
		c := li.FullCode[i]
		if c < '0' || c > '9' {
			break
		}
		digits = append(digits, c)
	}
	if len(digits) < 2 {
		return ""
	}
	return string(digits)
}
