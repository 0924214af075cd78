package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/sitecrew/estimator/internal/domain"
)

func fptr(v float64) *float64 { return &v }

func seedItems() []domain.LineItem {
	return []domain.LineItem{
		{FullCode: "030000000000", Description: "concrete"},
		{
			FullCode:    "031113400100",
			Description: "Forms in place spread footings",
			Unit:        "SFCA",
			DailyOutput: fptr(305), ManHours: fptr(0.105),
		},
		{
			FullCode:      "033113350400",
			Description:   "Structural concrete mat foundations",
			DescriptionAr: "لبشة خرسانية",
			Unit:          "C.Y.",
			DailyOutput:   fptr(125), ManHours: fptr(0.448),
		},
	}
}

func TestMemory_LookupByCode(t *testing.T) {
	m := NewMemory(seedItems())
	ctx := context.Background()

	item, err := m.LookupByCode(ctx, "031113400100")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.Unit != "SFCA" {
		t.Errorf("unit = %q, want SFCA", item.Unit)
	}

	if _, err := m.LookupByCode(ctx, "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing code error = %v, want ErrNotFound", err)
	}
}

func TestMemory_SearchByDescription(t *testing.T) {
	m := NewMemory(seedItems())
	ctx := context.Background()

	english, err := m.SearchByDescription(ctx, "FOOTINGS")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(english) != 1 || english[0].FullCode != "031113400100" {
		t.Errorf("english search = %v", english)
	}

	arabic, err := m.SearchByDescription(ctx, "لبشة")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(arabic) != 1 || arabic[0].FullCode != "033113350400" {
		t.Errorf("arabic search = %v", arabic)
	}
}

func TestMemory_SearchCandidates(t *testing.T) {
	m := NewMemory(seedItems())
	ctx := context.Background()

	testCases := []struct {
		name  string
		query CandidateQuery
		want  []string
	}{
		{
			name:  "code prefix excludes other stages",
			query: CandidateQuery{CodePrefix: "031"},
			want:  []string{"031113400100"},
		},
		{
			name:  "terms match either language",
			query: CandidateQuery{Terms: []string{"mat foundations", "قواعد"}},
			want:  []string{"033113350400"},
		},
		{
			name:  "header rows always excluded",
			query: CandidateQuery{Terms: []string{"concrete"}},
			want:  []string{"033113350400"},
		},
		{
			name:  "limit caps the pool",
			query: CandidateQuery{Limit: 1},
			want:  []string{"031113400100"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := m.SearchCandidates(ctx, tc.query)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("got %d items, want %d", len(got), len(tc.want))
			}
			for i := range tc.want {
				if got[i].FullCode != tc.want[i] {
					t.Errorf("item %d = %s, want %s", i, got[i].FullCode, tc.want[i])
				}
			}
		})
	}
}

func TestMemory_AllItemsIsACopy(t *testing.T) {
	m := NewMemory(seedItems())

	items, err := m.AllItems(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("items = %d, want 3", len(items))
	}

	items[0].Description = "mutated"
	again, _ := m.AllItems(context.Background())
	if again[0].Description == "mutated" {
		t.Error("AllItems must return a copy, not the backing slice")
	}
}
