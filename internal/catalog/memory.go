package catalog

import (
	"context"
	"strings"

	"github.com/sitecrew/estimator/internal/domain"
)

// Memory is an immutable in-memory catalog snapshot. Built once at startup
// (or in tests); concurrent readers never block.
type Memory struct {
	items  []domain.LineItem
	byCode map[string]int
}

// NewMemory builds a snapshot from a fixed item slice. The slice is copied
// so later mutations by the caller cannot leak in.
func NewMemory(items []domain.LineItem) *Memory {
	m := &Memory{
		items:  make([]domain.LineItem, len(items)),
		byCode: make(map[string]int, len(items)),
	}
	copy(m.items, items)
	for i := range m.items {
		m.byCode[m.items[i].FullCode] = i
	}
	return m
}

func (m *Memory) LookupByCode(_ context.Context, code string) (*domain.LineItem, error) {
	idx, ok := m.byCode[code]
	if !ok {
		return nil, ErrNotFound
	}
	item := m.items[idx]
	return &item, nil
}

func (m *Memory) SearchByDescription(_ context.Context, substring string) ([]domain.LineItem, error) {
	needle := strings.ToLower(substring)
	var found []domain.LineItem
	for i := range m.items {
		if strings.Contains(strings.ToLower(m.items[i].Description), needle) ||
			strings.Contains(m.items[i].DescriptionAr, substring) {
			found = append(found, m.items[i])
		}
	}
	return found, nil
}

func (m *Memory) SearchCandidates(_ context.Context, q CandidateQuery) ([]domain.LineItem, error) {
	var found []domain.LineItem
	for i := range m.items {
		item := &m.items[i]
		if item.IsHeader() {
			continue
		}
		if q.CodePrefix != "" && !strings.HasPrefix(item.FullCode, q.CodePrefix) {
			continue
		}
		if len(q.Terms) > 0 && !matchesAnyTerm(item, q.Terms) {
			continue
		}
		found = append(found, *item)
		if q.Limit > 0 && len(found) >= q.Limit {
			break
		}
	}
	return found, nil
}

func (m *Memory) AllItems(_ context.Context) ([]domain.LineItem, error) {
	items := make([]domain.LineItem, len(m.items))
	copy(items, m.items)
	return items, nil
}

func matchesAnyTerm(item *domain.LineItem, terms []string) bool {
	desc := strings.ToLower(item.Description)
	for _, term := range terms {
		t := strings.TrimSpace(term)
		if t == "" {
			continue
		}
		if strings.Contains(desc, strings.ToLower(t)) ||
			strings.Contains(item.DescriptionAr, t) {
			return true
		}
	}
	return false
}
