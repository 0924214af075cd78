package taxonomy

import "strings"

// unitFamilies groups interchangeable units of measure. The family head is
// the catalog's canonical spelling; members include metric, imperial and
// Arabic forms.
var unitFamilies = map[string][]string{
	"SQM":      {"M2", "SF", "S.F.", "SQ.M", "م²", "متر مربع"},
	"CUM":      {"M3", "CY", "C.Y.", "CU.M", "م³", "متر مكعب"},
	"LM":       {"M", "LF", "L.F.", "م.ط", "متر طولي"},
	"EA":       {"EACH", "NO", "EA.", "عدد"},
	"MET. TON": {"TON", "MT", "طن"},
}

// UnitsCompatible reports whether two unit spellings belong to the same
// unit family. Exact equality is the caller's concern; this answers the
// weaker "same family" question (e.g. SQM vs M2).
func UnitsCompatible(a, b string) bool {
	au := strings.ToUpper(strings.TrimSpace(a))
	bu := strings.ToUpper(strings.TrimSpace(b))
	if au == "" || bu == "" {
		return false
	}

	for head, members := range unitFamilies {
		if unitInFamily(au, head, members) && unitInFamily(bu, head, members) {
			return true
		}
	}
	return false
}

// UnitFamily returns the members of the family a unit belongs to, or nil.
func UnitFamily(unit string) []string {
	u := strings.ToUpper(strings.TrimSpace(unit))
	for head, members := range unitFamilies {
		if unitInFamily(u, head, members) {
			family := make([]string, 0, len(members)+1)
			family = append(family, head)
			family = append(family, members...)
			return family
		}
	}
	return nil
}

func unitInFamily(u, head string, members []string) bool {
	if u == head {
		return true
	}
	for _, m := range members {
		if u == strings.ToUpper(m) {
			return true
		}
	}
	return false
}
