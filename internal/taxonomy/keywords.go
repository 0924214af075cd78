package taxonomy

// KeywordEntry maps a canonical concept key to its bilingual keyword sets,
// a CSI division hint, the catalog description term used to search for it,
// and a default unit of measure.
type KeywordEntry struct {
	Key        string
	KeywordsAr []string
	KeywordsEn []string
	Division   string
	SearchTerm string
	Unit       string
}

// KeywordEntries returns the concept keyword table in match order.
func KeywordEntries() []KeywordEntry {
	return keywordEntries
}

var keywordEntries = []KeywordEntry{
	// Foundations (Division 03)
	{
		Key:        "foundations",
		KeywordsAr: []string{"قواعد", "أساسات", "اساسات", "قاعدة", "أساس"},
		KeywordsEn: []string{"foundation", "foundations", "footing", "footings"},
		Division:   "03", SearchTerm: "footing", Unit: "m3",
	},
	{
		Key:        "isolated_foundation",
		KeywordsAr: []string{"قواعد منفصلة", "قاعدة منفصلة", "منفصلة", "منفصل"},
		KeywordsEn: []string{"isolated", "pad", "pad footing"},
		Division:   "03", SearchTerm: "footing isolated", Unit: "m3",
	},
	{
		Key:        "strip_foundation",
		KeywordsAr: []string{"قواعد شريطية", "شريطي", "شريطية", "سملات", "سمل"},
		KeywordsEn: []string{"strip", "continuous", "strip footing"},
		Division:   "03", SearchTerm: "strip footing", Unit: "m3",
	},
	{
		Key:        "raft_foundation",
		KeywordsAr: []string{"لبشة", "لبشه", "حصيرة", "رافت"},
		KeywordsEn: []string{"raft", "mat", "mat foundation"},
		Division:   "03", SearchTerm: "mat foundation", Unit: "m3",
	},
	{
		Key:        "piles",
		KeywordsAr: []string{"خوازيق", "خازوق", "اوتاد"},
		KeywordsEn: []string{"pile", "piles", "caisson"},
		Division:   "03", SearchTerm: "pile", Unit: "each",
	},

	// Structural elements (Division 03)
	{
		Key:        "columns",
		KeywordsAr: []string{"اعمدة", "أعمدة", "عمود"},
		KeywordsEn: []string{"column", "columns"},
		Division:   "03", SearchTerm: "column concrete", Unit: "m3",
	},
	{
		Key:        "beams",
		KeywordsAr: []string{"كمرات", "كمرة", "جسور", "جسر"},
		KeywordsEn: []string{"beam", "beams"},
		Division:   "03", SearchTerm: "beam concrete", Unit: "m3",
	},
	{
		Key:        "slabs",
		KeywordsAr: []string{"بلاطة", "بلاطات", "سقف", "أسقف", "اسقف"},
		KeywordsEn: []string{"slab", "slabs", "floor"},
		Division:   "03", SearchTerm: "slab concrete", Unit: "m3",
	},
	{
		Key:        "tie_beams",
		KeywordsAr: []string{"سملات", "سمل", "ميدة", "ميد"},
		KeywordsEn: []string{"tie beam", "grade beam", "strap beam"},
		Division:   "03", SearchTerm: "grade beam", Unit: "m3",
	},
	{
		Key:        "stairs",
		KeywordsAr: []string{"سلالم", "سلم", "درج"},
		KeywordsEn: []string{"stairs", "stair", "steps", "landing"},
		Division:   "03", SearchTerm: "stair concrete", Unit: "m3",
	},
	{
		Key:        "walls",
		KeywordsAr: []string{"حوائط", "جدران", "جدار", "حائط"},
		KeywordsEn: []string{"wall", "walls"},
		Division:   "03", SearchTerm: "wall concrete", Unit: "m3",
	},

	// Formwork (Division 03)
	{
		Key:        "formwork",
		KeywordsAr: []string{"شدة", "شدات", "نجارة مسلحة"},
		KeywordsEn: []string{"formwork", "form", "forms", "shuttering"},
		Division:   "03", SearchTerm: "formwork", Unit: "m2",
	},

	// Waterproofing and insulation (Division 07)
	{
		Key:        "waterproofing",
		KeywordsAr: []string{"عزل مائي", "عزل", "عازل"},
		KeywordsEn: []string{"waterproofing", "waterproof", "damp proof"},
		Division:   "07", SearchTerm: "waterproofing membrane", Unit: "m2",
	},
	{
		Key:        "bituminous",
		KeywordsAr: []string{"بيتوميني", "زفتي", "بيتومين"},
		KeywordsEn: []string{"bituminous", "bitumen", "asphalt"},
		Division:   "07", SearchTerm: "bituminous membrane", Unit: "m2",
	},
	{
		Key:        "thermal_insulation",
		KeywordsAr: []string{"عزل حراري", "فوم", "بوليسترين"},
		KeywordsEn: []string{"thermal insulation", "insulation", "eps", "xps"},
		Division:   "07", SearchTerm: "thermal insulation", Unit: "m2",
	},

	// Plastering (Division 09)
	{
		Key:        "plastering",
		KeywordsAr: []string{"محارة", "لياسة", "بياض"},
		KeywordsEn: []string{"plaster", "plastering", "render", "rendering"},
		Division:   "09", SearchTerm: "cement plaster", Unit: "m2",
	},
	{
		Key:        "cement_plaster_masonry",
		KeywordsAr: []string{"محارة اسمنتية", "محارة طوب", "بياض مباني", "محارة مباني"},
		KeywordsEn: []string{"cement plaster", "cement render", "masonry plaster"},
		Division:   "09", SearchTerm: "cement plaster masonry", Unit: "m2",
	},
	{
		Key:        "wall_plaster",
		KeywordsAr: []string{"محارة حوائط", "بياض حوائط", "لياسة حوائط"},
		KeywordsEn: []string{"wall plaster", "wall plastering"},
		Division:   "09", SearchTerm: "cement plaster interior", Unit: "m2",
	},
	{
		Key:        "ceiling_plaster",
		KeywordsAr: []string{"محارة اسقف", "بياض اسقف", "لياسة سقف"},
		KeywordsEn: []string{"ceiling plaster", "ceiling plastering"},
		Division:   "09", SearchTerm: "plaster ceilings", Unit: "m2",
	},
	{
		Key:        "gypsum_plaster",
		KeywordsAr: []string{"محارة جبسية", "محارة جبس"},
		KeywordsEn: []string{"gypsum plaster"},
		Division:   "09", SearchTerm: "gypsum plaster", Unit: "m2",
	},
	{
		Key:        "base_coat",
		KeywordsAr: []string{"محارة خشنة", "طبقة اساس", "رشة", "طرطشة"},
		KeywordsEn: []string{"base coat", "scratch coat", "rough coat", "splash coat"},
		Division:   "09", SearchTerm: "splash coat", Unit: "m2",
	},
	{
		Key:        "finish_coat",
		KeywordsAr: []string{"محارة ناعمة", "تشطيب", "طبقة نهائية", "ضهارة"},
		KeywordsEn: []string{"finish coat", "skim coat", "final coat", "float finish"},
		Division:   "09", SearchTerm: "finish coat", Unit: "m2",
	},
	{
		Key:        "stucco",
		KeywordsAr: []string{"ستوكو", "محارة خارجية"},
		KeywordsEn: []string{"stucco", "external render"},
		Division:   "09", SearchTerm: "stucco", Unit: "m2",
	},

	// Flooring (Division 09)
	{
		Key:        "ceramic_tiles",
		KeywordsAr: []string{"سيراميك", "بلاط", "كاشي"},
		KeywordsEn: []string{"ceramic", "tiles", "tile"},
		Division:   "09", SearchTerm: "ceramic tile", Unit: "m2",
	},
	{
		Key:        "porcelain_tiles",
		KeywordsAr: []string{"بورسلان", "بورسلين"},
		KeywordsEn: []string{"porcelain"},
		Division:   "09", SearchTerm: "porcelain tile", Unit: "m2",
	},
	{
		Key:        "marble",
		KeywordsAr: []string{"رخام"},
		KeywordsEn: []string{"marble"},
		Division:   "09", SearchTerm: "marble", Unit: "m2",
	},
	{
		Key:        "granite",
		KeywordsAr: []string{"جرانيت", "غرانيت"},
		KeywordsEn: []string{"granite"},
		Division:   "09", SearchTerm: "granite", Unit: "m2",
	},

	// Painting and gypsum (Division 09)
	{
		Key:        "painting",
		KeywordsAr: []string{"دهانات", "دهان", "بوية", "طلاء"},
		KeywordsEn: []string{"paint", "painting", "coating"},
		Division:   "09", SearchTerm: "paint", Unit: "m2",
	},
	{
		Key:        "gypsum_board",
		KeywordsAr: []string{"جبسون بورد", "جبس بورد", "جبس"},
		KeywordsEn: []string{"gypsum board", "drywall", "plasterboard"},
		Division:   "09", SearchTerm: "gypsum board", Unit: "m2",
	},
	{
		Key:        "suspended_ceiling",
		KeywordsAr: []string{"أسقف معلقة", "سقف معلق", "فورسيلنج"},
		KeywordsEn: []string{"suspended ceiling", "false ceiling", "drop ceiling"},
		Division:   "09", SearchTerm: "suspended ceiling", Unit: "m2",
	},
}
