package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	es "github.com/elastic/go-elasticsearch/v8"

	"github.com/sitecrew/estimator/internal/domain"
)

const (
	defaultESIndex  = "csi_items"
	esAllItemsLimit = 10000
)

// Elasticsearch reads the catalog from a search index. Relevance scores
// from the engine are carried into each item as its embedding similarity so
// the reranker can use them as the primary semantic signal.
type Elasticsearch struct {
	client *es.Client
	index  string
}

// NewElasticsearch wraps an Elasticsearch client. An empty index name falls
// back to the default.
func NewElasticsearch(client *es.Client, index string) *Elasticsearch {
	if index == "" {
		index = defaultESIndex
	}
	return &Elasticsearch{client: client, index: index}
}

func (e *Elasticsearch) LookupByCode(ctx context.Context, code string) (*domain.LineItem, error) {
	query := map[string]interface{}{
		"query": map[string]interface{}{
			"term": map[string]interface{}{
				"full_code": code,
			},
		},
		"size": 1,
	}

	items, err := e.search(ctx, query, false)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrNotFound
	}
	return &items[0], nil
}

func (e *Elasticsearch) SearchByDescription(ctx context.Context, substring string) ([]domain.LineItem, error) {
	query := map[string]interface{}{
		"query": map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":  substring,
				"fields": []string{"description", "description_ar"},
			},
		},
		"size": esAllItemsLimit,
	}
	return e.search(ctx, query, true)
}

func (e *Elasticsearch) SearchCandidates(ctx context.Context, q CandidateQuery) ([]domain.LineItem, error) {
	bq := map[string]interface{}{
		"must": []map[string]interface{}{
			{"exists": map[string]interface{}{"field": "daily_output"}},
			{"exists": map[string]interface{}{"field": "man_hours"}},
		},
	}

	if q.CodePrefix != "" {
		bq["filter"] = []map[string]interface{}{
			{"prefix": map[string]interface{}{"full_code": q.CodePrefix}},
		}
	}

	if len(q.Terms) > 0 {
		should := make([]map[string]interface{}, 0, len(q.Terms))
		for _, term := range q.Terms {
			should = append(should, map[string]interface{}{
				"multi_match": map[string]interface{}{
					"query":  term,
					"fields": []string{"description", "description_ar"},
				},
			})
		}
		bq["should"] = should
		bq["minimum_should_match"] = 1
	}

	size := q.Limit
	if size <= 0 {
		size = esAllItemsLimit
	}

	query := map[string]interface{}{
		"query": map[string]interface{}{"bool": bq},
		"size":  size,
	}
	return e.search(ctx, query, true)
}

func (e *Elasticsearch) AllItems(ctx context.Context) ([]domain.LineItem, error) {
	query := map[string]interface{}{
		"query": map[string]interface{}{"match_all": map[string]interface{}{}},
		"size":  esAllItemsLimit,
		"sort":  []map[string]interface{}{{"full_code": map[string]interface{}{"order": "asc"}}},
	}
	return e.search(ctx, query, false)
}

// search runs a query and decodes hits. With carryScores set, each hit's
// relevance score is normalized by the best score of the response and
// stored as the item's embedding similarity.
func (e *Elasticsearch) search(ctx context.Context, query map[string]interface{}, carryScores bool) ([]domain.LineItem, error) {
	queryBytes, err := json.Marshal(query)
	if err != nil {
		return nil, fmt.Errorf("marshal query: %w", err)
	}

	res, err := e.client.Search(
		e.client.Search.WithContext(ctx),
		e.client.Search.WithIndex(e.index),
		e.client.Search.WithBody(bytes.NewReader(queryBytes)),
	)
	if err != nil {
		return nil, fmt.Errorf("search catalog index: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("catalog index search failed: %s", res.String())
	}

	var searchResult struct {
		Hits struct {
			MaxScore float64 `json:"max_score"`
			Hits     []struct {
				Score  float64         `json:"_score"`
				Source domain.LineItem `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}

	if decodeErr := json.NewDecoder(res.Body).Decode(&searchResult); decodeErr != nil {
		return nil, fmt.Errorf("decode search response: %w", decodeErr)
	}

	items := make([]domain.LineItem, 0, len(searchResult.Hits.Hits))
	for _, hit := range searchResult.Hits.Hits {
		item := hit.Source
		if carryScores && searchResult.Hits.MaxScore > 0 {
			item.EmbeddingSimilarity = hit.Score / searchResult.Hits.MaxScore
		}
		items = append(items, item)
	}
	return items, nil
}
