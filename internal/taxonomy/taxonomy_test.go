package taxonomy

import "testing"

func TestUnitsCompatible(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"CUM", "M3", true},
		{"C.Y.", "m3", true},
		{"SQM", "SF", true},
		{"m2", "SQ.M", true},
		{"SQM", "CUM", false},
		{"EA", "عدد", true},
		{"MET. TON", "طن", true},
		{"", "M3", false},
		{"M3", "", false},
		{"bogus", "M3", false},
	}
	for _, tt := range tests {
		if got := UnitsCompatible(tt.a, tt.b); got != tt.want {
			t.Errorf("UnitsCompatible(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestUnitFamily(t *testing.T) {
	family := UnitFamily("cy")
	if family == nil {
		t.Fatal("UnitFamily(cy) = nil")
	}
	found := false
	for _, m := range family {
		if m == "CUM" {
			found = true
		}
	}
	if !found {
		t.Errorf("family %v missing head CUM", family)
	}

	if got := UnitFamily("furlong"); got != nil {
		t.Errorf("UnitFamily(furlong) = %v, want nil", got)
	}
}

func TestExpandQuery(t *testing.T) {
	expanded := ExpandQuery("نجارة لبشة")
	if expanded[0] != "نجارة لبشة" {
		t.Fatalf("first entry = %q, want the original query", expanded[0])
	}
	for _, want := range []string{"raft foundation", "mat foundation", "formwork", "shuttering"} {
		if !containsString(expanded, want) {
			t.Errorf("expansion missing %q: %v", want, expanded)
		}
	}
}

func TestExpandQuery_NoSynonyms(t *testing.T) {
	expanded := ExpandQuery("excavation backfill")
	if len(expanded) != 1 || expanded[0] != "excavation backfill" {
		t.Fatalf("expansion = %v, want only the original query", expanded)
	}
}

func TestExpandTokens(t *testing.T) {
	set := ExpandTokens([]string{"نجارة", "raft"})
	for _, want := range []string{"formwork", "forms", "shuttering", "mat", "foundation", "لبشة"} {
		if !set[want] {
			t.Errorf("expanded set missing %q", want)
		}
	}
	if set["column"] {
		t.Error("expanded set leaked an unrelated group")
	}
}

func TestElements_PrecedenceOrder(t *testing.T) {
	want := []ElementKey{ElementSlab, ElementBeam, ElementColumn, ElementPile, ElementFooting, ElementWall}
	elems := Elements()
	if len(elems) != len(want) {
		t.Fatalf("len(Elements()) = %d, want %d", len(elems), len(want))
	}
	for i, e := range elems {
		if e.Key != want[i] {
			t.Errorf("Elements()[%d] = %q, want %q", i, e.Key, want[i])
		}
	}
}

func TestElement_SubtypeLookup(t *testing.T) {
	footing, ok := Element(ElementFooting)
	if !ok {
		t.Fatal("footing element not declared")
	}
	raft, ok := footing.Subtype(SubtypeRaft)
	if !ok {
		t.Fatal("raft subtype not declared")
	}
	if raft.DisplayEn != "Raft/Mat Foundation" {
		t.Errorf("raft DisplayEn = %q", raft.DisplayEn)
	}
	if _, ok := footing.Subtype(SubtypeShear); ok {
		t.Error("footing should not declare a shear subtype")
	}

	pile, _ := Element(ElementPile)
	if len(pile.Subtypes) != 0 {
		t.Errorf("pile declares %d subtypes, want none", len(pile.Subtypes))
	}
}

func TestStageByOrdinal(t *testing.T) {
	tests := []struct {
		n    int
		want WorkStage
		ok   bool
	}{
		{1, StageFormwork, true},
		{2, StageReinforcement, true},
		{3, StageCasting, true},
		{4, StageAll, true},
		{0, "", false},
		{5, "", false},
	}
	for _, tt := range tests {
		got, ok := StageByOrdinal(tt.n)
		if got != tt.want || ok != tt.ok {
			t.Errorf("StageByOrdinal(%d) = %q, %v; want %q, %v", tt.n, got, ok, tt.want, tt.ok)
		}
	}
}

func TestStage_CodePrefixes(t *testing.T) {
	prefixes := map[WorkStage]string{
		StageFormwork:      "031",
		StageReinforcement: "032",
		StageCasting:       "033",
		StageAll:           "",
	}
	for stage, prefix := range prefixes {
		def, ok := Stage(stage)
		if !ok {
			t.Fatalf("stage %q not declared", stage)
		}
		if def.CodePrefix != prefix {
			t.Errorf("stage %q prefix = %q, want %q", stage, def.CodePrefix, prefix)
		}
	}
}

func containsString(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
