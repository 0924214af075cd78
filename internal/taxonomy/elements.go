// Package taxonomy holds the static construction vocabulary: element and
// work-stage definitions, concept keywords, synonyms and unit families.
// All tables are bilingual (Arabic/English) and immutable after startup.
package taxonomy

// ElementKey identifies a concrete construction element.
type ElementKey string

// Known elements.
const (
	ElementSlab    ElementKey = "slab"
	ElementBeam    ElementKey = "beam"
	ElementColumn  ElementKey = "column"
	ElementPile    ElementKey = "pile"
	ElementFooting ElementKey = "footing"
	ElementWall    ElementKey = "wall"
)

// SubtypeKey identifies a subtype of an element.
type SubtypeKey string

// Footing subtypes.
const (
	SubtypeIsolated SubtypeKey = "isolated"
	SubtypeStrip    SubtypeKey = "strip"
	SubtypeRaft     SubtypeKey = "raft"
)

// Column subtypes.
const (
	SubtypeSquare      SubtypeKey = "square"
	SubtypeRectangular SubtypeKey = "rectangular"
	SubtypeRound       SubtypeKey = "round"
)

// Beam subtypes.
const (
	SubtypeInterior SubtypeKey = "interior"
	SubtypeSpandrel SubtypeKey = "spandrel"
	SubtypeGrade    SubtypeKey = "grade"
)

// Slab subtypes.
const (
	SubtypeFlat     SubtypeKey = "flat"
	SubtypeSolid    SubtypeKey = "solid"
	SubtypeOnGrade  SubtypeKey = "on_grade"
	SubtypeElevated SubtypeKey = "elevated"
)

// Wall subtypes.
const (
	SubtypeShear     SubtypeKey = "shear"
	SubtypeRetaining SubtypeKey = "retaining"
)

// SubtypeDefinition is one subtype of an element with its own keyword sets.
type SubtypeDefinition struct {
	Key         SubtypeKey
	DisplayAr   string
	DisplayEn   string
	KeywordsAr  []string
	KeywordsEn  []string
	SearchTerms []string
}

// ElementDefinition describes a construction element: bilingual keywords,
// an ordered subtype list, and the description terms used to pull catalog
// candidates for it.
type ElementDefinition struct {
	Key         ElementKey
	DisplayAr   string
	DisplayEn   string
	KeywordsAr  []string
	KeywordsEn  []string
	Subtypes    []SubtypeDefinition
	SearchTerms []string
	DefaultUnit string
}

// Subtype returns the subtype definition for key, if declared.
func (e *ElementDefinition) Subtype(key SubtypeKey) (SubtypeDefinition, bool) {
	for _, s := range e.Subtypes {
		if s.Key == key {
			return s, true
		}
	}
	return SubtypeDefinition{}, false
}

// Elements returns all element definitions in detection precedence order.
// Overlapping keywords (e.g. "foundation" vs "raft") resolve to the first
// element whose keyword set hits, so the order is part of the contract:
// slab, beam, column, pile, footing, wall. Subtype keywords count as hits
// for their parent element, which is how a bare "لبشة" resolves to a raft
// footing without mentioning footings at all.
func Elements() []ElementDefinition {
	return elementDefinitions
}

// Element returns the definition for key.
func Element(key ElementKey) (ElementDefinition, bool) {
	for _, e := range elementDefinitions {
		if e.Key == key {
			return e, true
		}
	}
	return ElementDefinition{}, false
}

var elementDefinitions = []ElementDefinition{
	{
		Key:        ElementSlab,
		DisplayAr:  "أسقف / بلاطات",
		DisplayEn:  "Slabs",
		KeywordsAr: []string{"سقف", "بلاطة", "سلاب", "اسقف", "أسقف", "بلاطه", "بلاطات"},
		KeywordsEn: []string{"slab", "slabs", "elevated slab", "roof slab"},
		Subtypes: []SubtypeDefinition{
			{
				Key: SubtypeFlat, DisplayAr: "سقف مسطح (فلات سلاب)", DisplayEn: "Flat Slab",
				KeywordsAr:  []string{"مسطح", "فلات"},
				KeywordsEn:  []string{"flat", "flat slab"},
				SearchTerms: []string{"flat slab"},
			},
			{
				Key: SubtypeSolid, DisplayAr: "سقف صلب", DisplayEn: "Solid Slab",
				KeywordsAr:  []string{"صلب", "صلبة"},
				KeywordsEn:  []string{"solid"},
				SearchTerms: []string{"solid slab"},
			},
			{
				Key: SubtypeOnGrade, DisplayAr: "أرضية خرسانية", DisplayEn: "Slab on Grade",
				KeywordsAr:  []string{"أرضية", "ارضيه", "على التربة"},
				KeywordsEn:  []string{"on grade", "ground slab", "floor slab"},
				SearchTerms: []string{"slab on grade"},
			},
			{
				Key: SubtypeElevated, DisplayAr: "سقف علوي", DisplayEn: "Elevated Slab",
				KeywordsAr:  []string{"علوي", "مرتفع"},
				KeywordsEn:  []string{"elevated", "suspended"},
				SearchTerms: []string{"elevated slab"},
			},
		},
		SearchTerms: []string{"slab"},
		DefaultUnit: "m3",
	},
	{
		Key:        ElementBeam,
		DisplayAr:  "كمرات",
		DisplayEn:  "Beams",
		KeywordsAr: []string{"كمرة", "كمرات", "بيم", "كمره", "جسر", "جسور"},
		KeywordsEn: []string{"beam", "beams", "girder", "girders"},
		Subtypes: []SubtypeDefinition{
			{
				Key: SubtypeInterior, DisplayAr: "كمرة داخلية", DisplayEn: "Interior Beam",
				KeywordsAr:  []string{"داخلية", "داخليه"},
				KeywordsEn:  []string{"interior", "internal"},
				SearchTerms: []string{"interior beam"},
			},
			{
				Key: SubtypeSpandrel, DisplayAr: "كمرة خارجية / ساقطة", DisplayEn: "Spandrel/External Beam",
				KeywordsAr:  []string{"خارجية", "ساقطة", "ساقطه"},
				KeywordsEn:  []string{"spandrel", "external", "exterior"},
				SearchTerms: []string{"spandrel beam"},
			},
			{
				Key: SubtypeGrade, DisplayAr: "سمل / ميدة", DisplayEn: "Grade Beam / Tie Beam",
				KeywordsAr:  []string{"سمل", "ميدة", "ميده", "رباط", "سملات"},
				KeywordsEn:  []string{"grade beam", "tie beam", "strap"},
				SearchTerms: []string{"grade beam"},
			},
		},
		SearchTerms: []string{"beam", "girder"},
		DefaultUnit: "m3",
	},
	{
		Key:         ElementColumn,
		DisplayAr:   "أعمدة",
		DisplayEn:   "Columns",
		KeywordsAr:  []string{"عمود", "أعمدة", "كولون", "اعمده", "اعمدة", "عامود"},
		KeywordsEn:  []string{"column", "columns"},
		Subtypes: []SubtypeDefinition{
			{
				Key: SubtypeSquare, DisplayAr: "عمود مربع", DisplayEn: "Square Column",
				KeywordsAr:  []string{"مربع", "مربعة"},
				KeywordsEn:  []string{"square"},
				SearchTerms: []string{"square column"},
			},
			{
				Key: SubtypeRectangular, DisplayAr: "عمود مستطيل", DisplayEn: "Rectangular Column",
				KeywordsAr:  []string{"مستطيل", "مستطيلة"},
				KeywordsEn:  []string{"rectangular", "rectangle"},
				SearchTerms: []string{"rectangular column"},
			},
			{
				Key: SubtypeRound, DisplayAr: "عمود دائري", DisplayEn: "Round/Circular Column",
				KeywordsAr:  []string{"دائري", "دائرية", "مستدير"},
				KeywordsEn:  []string{"round", "circular"},
				SearchTerms: []string{"round column"},
			},
		},
		SearchTerms: []string{"column"},
		DefaultUnit: "m3",
	},
	{
		Key:         ElementPile,
		DisplayAr:   "خوازيق",
		DisplayEn:   "Piles",
		KeywordsAr:  []string{"خازوق", "خوازيق", "اوتاد"},
		KeywordsEn:  []string{"pile", "piles", "caisson"},
		SearchTerms: []string{"pile"},
		DefaultUnit: "each",
	},
	{
		Key:        ElementFooting,
		DisplayAr:  "قواعد / أساسات",
		DisplayEn:  "Footings / Foundations",
		KeywordsAr: []string{"قاعدة", "قواعد", "أساس", "أساسات", "اساسات", "فوتنج", "قاعده"},
		KeywordsEn: []string{"footing", "foundation", "spread footing", "isolated footing", "pad footing"},
		Subtypes: []SubtypeDefinition{
			{
				Key: SubtypeIsolated, DisplayAr: "قاعدة منفصلة", DisplayEn: "Isolated/Spread Footing",
				KeywordsAr:  []string{"منفصلة", "منفصله", "منفصل", "سبريد"},
				KeywordsEn:  []string{"isolated", "spread", "pad"},
				SearchTerms: []string{"spread footing", "isolated footing"},
			},
			{
				Key: SubtypeStrip, DisplayAr: "قاعدة شريطية", DisplayEn: "Strip/Continuous Footing",
				KeywordsAr:  []string{"شريطية", "شريطيه", "شريطي", "مستمرة"},
				KeywordsEn:  []string{"strip", "continuous", "wall footing"},
				SearchTerms: []string{"strip footing"},
			},
			{
				Key: SubtypeRaft, DisplayAr: "لبشة / حصيرة", DisplayEn: "Raft/Mat Foundation",
				KeywordsAr:  []string{"لبشة", "لبشه", "حصيرة", "مات", "رافت"},
				KeywordsEn:  []string{"raft", "mat", "mat foundation"},
				SearchTerms: []string{"mat foundation"},
			},
		},
		SearchTerms: []string{"footing", "foundation"},
		DefaultUnit: "m3",
	},
	{
		Key:        ElementWall,
		DisplayAr:  "حوائط خرسانية",
		DisplayEn:  "Concrete Walls",
		KeywordsAr: []string{"حائط", "جدار", "حوائط", "جدران"},
		KeywordsEn: []string{"wall", "walls", "shear wall"},
		Subtypes: []SubtypeDefinition{
			{
				Key: SubtypeShear, DisplayAr: "حائط قص", DisplayEn: "Shear Wall",
				KeywordsAr:  []string{"قص", "قصي"},
				KeywordsEn:  []string{"shear"},
				SearchTerms: []string{"shear wall"},
			},
			{
				Key: SubtypeRetaining, DisplayAr: "حائط استنادي", DisplayEn: "Retaining Wall",
				KeywordsAr:  []string{"استنادي", "استناديه", "ساند"},
				KeywordsEn:  []string{"retaining", "retention"},
				SearchTerms: []string{"retaining wall"},
			},
		},
		SearchTerms: []string{"wall"},
		DefaultUnit: "m3",
	},
}
