package taxonomy

import (
	"sort"
	"strings"
)

// Synonyms maps a canonical search phrase to its equivalents, including
// Arabic forms. Expansion is symmetric: hitting any member pulls in the
// canonical phrase and the rest of the group.
var Synonyms = map[string][]string{
	// Footings
	"isolated footing": {"pad footing", "spread footing", "قواعد منفصلة", "قاعدة منفصلة"},
	"strip footing":    {"continuous footing", "wall footing", "قواعد شريطية", "قاعدة شريطية"},
	"raft foundation":  {"mat foundation", "لبشة", "حصيرة"},

	// Columns
	"column":       {"عمود", "أعمدة", "كولون"},
	"round column": {"circular column", "عمود دائري"},

	// Beams
	"beam":       {"كمرة", "كمرات", "بيم"},
	"grade beam": {"tie beam", "سمل", "ميدة"},

	// Slabs
	"slab":      {"بلاطة", "سقف", "سلاب"},
	"flat slab": {"فلات سلاب", "سقف مسطح"},

	// Work stages
	"formwork":      {"forms", "shuttering", "شدة", "نجارة"},
	"reinforcement": {"rebar", "reinforcing", "تسليح", "حدادة"},
	"casting":       {"concrete", "pouring", "صب", "خرسانة"},

	// Plastering
	"plaster":        {"plastering", "render", "محارة", "لياسة", "بياض"},
	"cement plaster": {"محارة اسمنتية"},
	"gypsum plaster": {"محارة جبسية"},
}

// ExpandQuery returns the query plus every synonym phrase the query
// mentions, deduplicated. The original query is always the first entry.
func ExpandQuery(query string) []string {
	lower := strings.ToLower(query)
	seen := map[string]bool{lower: true}
	expanded := []string{lower}

	add := func(term string) {
		if !seen[term] {
			seen[term] = true
			expanded = append(expanded, term)
		}
	}

	// Iterate in sorted key order so expansion is deterministic.
	for _, canonical := range sortedSynonymKeys() {
		group := Synonyms[canonical]
		if strings.Contains(lower, canonical) {
			for _, syn := range group {
				add(syn)
			}
		}
		for _, syn := range group {
			if strings.Contains(lower, syn) {
				add(canonical)
				for _, other := range group {
					if other != syn {
						add(other)
					}
				}
			}
		}
	}

	return expanded
}

// ExpandTokens widens a token set with the words of every synonym group a
// token belongs to. Used by title matching so that "نجارة" counts as a hit
// on "formwork" in an item title.
func ExpandTokens(tokens []string) map[string]bool {
	expanded := make(map[string]bool, len(tokens))
	for _, tok := range tokens {
		expanded[tok] = true
	}

	for _, tok := range tokens {
		for _, canonical := range sortedSynonymKeys() {
			group := Synonyms[canonical]
			if !tokenInPhrase(tok, canonical) && !tokenInGroup(tok, group) {
				continue
			}
			for _, w := range strings.Fields(canonical) {
				expanded[w] = true
			}
			for _, syn := range group {
				for _, w := range strings.Fields(syn) {
					expanded[w] = true
				}
			}
		}
	}

	return expanded
}

func sortedSynonymKeys() []string {
	keys := make([]string, 0, len(Synonyms))
	for k := range Synonyms {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func tokenInPhrase(tok, phrase string) bool {
	for _, w := range strings.Fields(phrase) {
		if w == tok {
			return true
		}
	}
	return false
}

func tokenInGroup(tok string, group []string) bool {
	for _, phrase := range group {
		if tokenInPhrase(tok, phrase) {
			return true
		}
	}
	return false
}
