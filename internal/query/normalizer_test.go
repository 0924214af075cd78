package query

import (
	"reflect"
	"testing"

	"github.com/sitecrew/estimator/internal/domain"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"lowercases", "Concrete SLAB", "concrete slab"},
		{"collapses punctuation", "forms, in place: footings!", "forms in place footings"},
		{"squeezes whitespace", "  spread   footing \t 50 ", "spread footing 50"},
		{"strips arabic diacritics", "عَمُود", "عمود"},
		{"folds arabic indic numerals", "٥٠ م٣", "50 م3"},
		{"keeps decimal point", "output 13.84", "output 13.84"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.raw)
			if got != tt.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tt.raw, got, tt.want)
			}
			if again := Normalize(got); again != got {
				t.Fatalf("Normalize not idempotent: %q -> %q", got, again)
			}
		})
	}
}

func TestParse_Quantity(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		wantQty  float64
		wantUnit string
	}{
		{"number then unit", "concrete footings 50 m3", 50, "m3"},
		{"fused number and unit", "footings 50m3", 50, "m3"},
		{"arabic unit", "اعمدة 120 م3", 120, "م3"},
		{"typographic arabic unit", "لبشة 300 م³", 300, "م3"},
		{"spelled out unit", "slab 75 cubic meters", 75, "m3"},
		{"bare number no unit", "خرسانة قواعد 200", 200, ""},
		{"decimal quantity", "plaster 12.5 m2", 12.5, "m2"},
		{"ton unit", "rebar 40 ton", 40, "ton"},
		{"arabic indic quantity with unit", "٥٠ م3", 50, "م3"},
		{"bare arabic indic quantity", "٥٠", 50, ""},
		{"arabic indic quantity and unit numeral", "لبشة ١٢٠ م٣", 120, "م3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Parse(tt.raw)
			if p.Quantity == nil {
				t.Fatalf("Parse(%q): quantity = nil, want %v", tt.raw, tt.wantQty)
			}
			if *p.Quantity != tt.wantQty {
				t.Errorf("quantity = %v, want %v", *p.Quantity, tt.wantQty)
			}
			if p.Unit != tt.wantUnit {
				t.Errorf("unit = %q, want %q", p.Unit, tt.wantUnit)
			}
		})
	}
}

func TestParse_NoQuantity(t *testing.T) {
	// A unit token with no number next to it must not surrender its own
	// digit as a quantity.
	for _, raw := range []string{"concrete spread footings", "نجارة لبشة", "م3", "cost per m3", ""} {
		p := Parse(raw)
		if p.Quantity != nil {
			t.Errorf("Parse(%q): quantity = %v, want nil", raw, *p.Quantity)
		}
		if p.Unit != "" {
			t.Errorf("Parse(%q): unit = %q, want empty", raw, p.Unit)
		}
	}
}

func TestParse_Tokens(t *testing.T) {
	p := Parse("Forms In Place, Spread Footings")
	want := []string{"forms", "in", "place", "spread", "footings"}
	if !reflect.DeepEqual(p.Tokens, want) {
		t.Fatalf("tokens = %v, want %v", p.Tokens, want)
	}
	if p.Normalized != "forms in place spread footings" {
		t.Fatalf("normalized = %q", p.Normalized)
	}
}

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		raw  string
		want domain.Language
	}{
		{"concrete slab", domain.LanguageEnglish},
		{"لبشة", domain.LanguageArabic},
		{"slab لبشة mixed", domain.LanguageArabic},
		{"", domain.LanguageEnglish},
		{"120", domain.LanguageEnglish},
	}
	for _, tt := range tests {
		if got := DetectLanguage(tt.raw); got != tt.want {
			t.Errorf("DetectLanguage(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}
