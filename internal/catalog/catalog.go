// Package catalog provides read-only access to the priced line-item
// catalog. Implementations exist for SQLite, PostgreSQL, Elasticsearch and
// an in-memory snapshot; the rest of the service only sees the Catalog
// interface.
package catalog

import (
	"context"
	"errors"

	"github.com/sitecrew/estimator/internal/domain"
)

// ErrNotFound is returned by LookupByCode when no item carries the code.
var ErrNotFound = errors.New("catalog: item not found")

// CandidateQuery selects a candidate pool for reranking. Terms are OR'd
// against descriptions; CodePrefix restricts by CSI code. Header rows are
// always excluded.
type CandidateQuery struct {
	Terms      []string
	CodePrefix string
	Limit      int
}

// Catalog is the read-only line-item store consumed by the ranking and
// assistant layers.
type Catalog interface {
	// LookupByCode returns the item with the exact full code.
	LookupByCode(ctx context.Context, code string) (*domain.LineItem, error)

	// SearchByDescription returns items whose description contains the
	// substring, case-insensitively, in either language.
	SearchByDescription(ctx context.Context, substring string) ([]domain.LineItem, error)

	// SearchCandidates returns the candidate pool for a query.
	SearchCandidates(ctx context.Context, q CandidateQuery) ([]domain.LineItem, error)

	// AllItems returns every item, header rows included.
	AllItems(ctx context.Context) ([]domain.LineItem, error)
}
