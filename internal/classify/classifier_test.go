package classify_test

import (
	"testing"

	"github.com/sitecrew/estimator/internal/classify"
	"github.com/sitecrew/estimator/internal/domain"
	"github.com/sitecrew/estimator/internal/logging"
	"github.com/sitecrew/estimator/internal/taxonomy"
)

func newClassifier() *classify.Classifier {
	return classify.New(logging.NewNop())
}

func TestClassifier_Classify(t *testing.T) {
	c := newClassifier()

	testCases := []struct {
		name     string
		query    string
		element  taxonomy.ElementKey
		subtype  taxonomy.SubtypeKey
		stage    taxonomy.WorkStage
		language domain.Language
	}{
		{
			name:     "english full query",
			query:    "isolated footing reinforcement 50 m3",
			element:  taxonomy.ElementFooting,
			subtype:  taxonomy.SubtypeIsolated,
			stage:    taxonomy.StageReinforcement,
			language: domain.LanguageEnglish,
		},
		{
			name:     "arabic raft via subtype keyword",
			query:    "لبشة",
			element:  taxonomy.ElementFooting,
			subtype:  taxonomy.SubtypeRaft,
			language: domain.LanguageArabic,
		},
		{
			name:     "arabic column with casting stage",
			query:    "صب اعمدة",
			element:  taxonomy.ElementColumn,
			stage:    taxonomy.StageCasting,
			language: domain.LanguageArabic,
		},
		{
			name:     "element only no stage",
			query:    "flat slab",
			element:  taxonomy.ElementSlab,
			subtype:  taxonomy.SubtypeFlat,
			language: domain.LanguageEnglish,
		},
		{
			name:     "slab wins over wall by precedence",
			query:    "slab wall",
			element:  taxonomy.ElementSlab,
			language: domain.LanguageEnglish,
		},
		{
			name:     "beam wins over footing by precedence",
			query:    "grade beam footing",
			element:  taxonomy.ElementBeam,
			subtype:  taxonomy.SubtypeGrade,
			language: domain.LanguageEnglish,
		},
		{
			name:     "stage keyword without element",
			query:    "formwork",
			stage:    taxonomy.StageFormwork,
			language: domain.LanguageEnglish,
		},
		{
			name:     "diacritics stripped before matching",
			query:    "عَمُود",
			element:  taxonomy.ElementColumn,
			language: domain.LanguageArabic,
		},
		{
			name:     "no match",
			query:    "hello there",
			language: domain.LanguageEnglish,
		},
		{
			name:     "empty query",
			query:    "",
			language: domain.LanguageEnglish,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := c.Classify(tc.query)

			if result.Element != tc.element {
				t.Errorf("element = %q, want %q", result.Element, tc.element)
			}
			if result.Subtype != tc.subtype {
				t.Errorf("subtype = %q, want %q", result.Subtype, tc.subtype)
			}
			if result.Stage != tc.stage {
				t.Errorf("stage = %q, want %q", result.Stage, tc.stage)
			}
			if result.Language != tc.language {
				t.Errorf("language = %q, want %q", result.Language, tc.language)
			}
		})
	}
}

func TestClassifier_Classify_MatchedKeywords(t *testing.T) {
	c := newClassifier()

	result := c.Classify("isolated footing reinforcement")
	if result.Element != taxonomy.ElementFooting {
		t.Fatalf("element = %q, want footing", result.Element)
	}
	if len(result.Matched) == 0 {
		t.Error("expected matched keywords for footing hit")
	}
	for _, kw := range result.Matched {
		if kw == "" {
			t.Error("matched keyword should not be empty")
		}
	}
}

func TestClassifier_Classify_Deterministic(t *testing.T) {
	c := newClassifier()

	first := c.Classify("isolated footing reinforcement 50 m3")
	for i := 0; i < 20; i++ {
		got := c.Classify("isolated footing reinforcement 50 m3")
		if got.Element != first.Element || got.Subtype != first.Subtype || got.Stage != first.Stage {
			t.Fatalf("classification changed between runs: %+v vs %+v", got, first)
		}
		if len(got.Matched) != len(first.Matched) {
			t.Fatalf("matched keywords changed between runs")
		}
		for j := range got.Matched {
			if got.Matched[j] != first.Matched[j] {
				t.Fatalf("matched keyword order changed between runs")
			}
		}
	}
}

func TestClassifier_DetectSubtype(t *testing.T) {
	c := newClassifier()

	testCases := []struct {
		name    string
		element taxonomy.ElementKey
		input   string
		want    taxonomy.SubtypeKey
		ok      bool
	}{
		{"isolated footing", taxonomy.ElementFooting, "isolated", taxonomy.SubtypeIsolated, true},
		{"arabic raft", taxonomy.ElementFooting, "لبشة", taxonomy.SubtypeRaft, true},
		{"round column", taxonomy.ElementColumn, "round please", taxonomy.SubtypeRound, true},
		{"unknown word", taxonomy.ElementFooting, "banana", "", false},
		{"subtype of other element", taxonomy.ElementColumn, "raft", "", false},
		{"element without subtypes", taxonomy.ElementPile, "anything", "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := c.DetectSubtype(tc.element, tc.input)
			if ok != tc.ok || got != tc.want {
				t.Errorf("DetectSubtype(%q, %q) = (%q, %v), want (%q, %v)",
					tc.element, tc.input, got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestClassifier_DetectStage(t *testing.T) {
	c := newClassifier()

	testCases := []struct {
		name  string
		input string
		want  taxonomy.WorkStage
		ok    bool
	}{
		{"formwork keyword", "formwork", taxonomy.StageFormwork, true},
		{"arabic reinforcement", "حدادة", taxonomy.StageReinforcement, true},
		{"concrete implies casting", "concrete", taxonomy.StageCasting, true},
		{"ordinal one", "1", taxonomy.StageFormwork, true},
		{"ordinal two", "2", taxonomy.StageReinforcement, true},
		{"ordinal three", "3", taxonomy.StageCasting, true},
		{"ordinal four", "4", taxonomy.StageAll, true},
		{"ordinal out of range", "5", "", false},
		{"no stage", "column", "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := c.DetectStage(tc.input)
			if ok != tc.ok || got != tc.want {
				t.Errorf("DetectStage(%q) = (%q, %v), want (%q, %v)",
					tc.input, got, ok, tc.want, tc.ok)
			}
		})
	}
}
