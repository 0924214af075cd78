package api

import (
	"github.com/sitecrew/estimator/internal/domain"
	"github.com/sitecrew/estimator/internal/rank"
)

// RerankRequest reranks a candidate pool against a query. Candidates may be
// omitted to rank against the whole catalog.
type RerankRequest struct {
	Query         string            `json:"query" binding:"required"`
	Candidates    []domain.LineItem `json:"candidates,omitempty"`
	Filters       RerankFilters     `json:"filters,omitempty"`
	Unit          string            `json:"unit,omitempty"`
	TopK          int               `json:"top_k,omitempty"`
	MinConfidence float64           `json:"min_confidence,omitempty"`
}

// RerankFilters mirrors rank.Filters on the wire.
type RerankFilters struct {
	Division   string   `json:"division,omitempty"`
	ManHoursLT *float64 `json:"man_hours_lt,omitempty"`
}

func (f RerankFilters) toRank() rank.Filters {
	return rank.Filters{Division: f.Division, ManHoursLT: f.ManHoursLT}
}

// EstimateRequest computes productivity for a known item code.
type EstimateRequest struct {
	Code     string  `json:"code" binding:"required"`
	Quantity float64 `json:"quantity" binding:"required,gt=0"`
	Crews    int     `json:"num_crews,omitempty"`
}

// ItemsResponse is a description-search result list.
type ItemsResponse struct {
	Items []domain.LineItem `json:"items"`
	Total int               `json:"total"`
}
