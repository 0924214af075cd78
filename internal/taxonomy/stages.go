package taxonomy

// WorkStage identifies one phase of concrete work.
type WorkStage string

// Work stages. StageAll covers the complete scope and carries no code
// prefix filter.
const (
	StageFormwork      WorkStage = "formwork"
	StageReinforcement WorkStage = "reinforcement"
	StageCasting       WorkStage = "casting"
	StageAll           WorkStage = "all"
)

// StageDefinition describes a work stage: the CSI code prefix used as a
// hard filter and the bilingual keyword sets that detect it.
type StageDefinition struct {
	Stage      WorkStage
	DisplayAr  string
	DisplayEn  string
	CodePrefix string
	KeywordsAr []string
	KeywordsEn []string
}

// Stages returns all stage definitions in detection and display order.
// The positional order also defines the numeric shorthand a user may answer
// a stage question with ("1" = formwork .. "4" = all).
func Stages() []StageDefinition {
	return stageDefinitions
}

// Stage returns the definition for s.
func Stage(s WorkStage) (StageDefinition, bool) {
	for _, d := range stageDefinitions {
		if d.Stage == s {
			return d, true
		}
	}
	return StageDefinition{}, false
}

// StageByOrdinal maps the numeric shorthand "1".."4" to a stage.
func StageByOrdinal(n int) (WorkStage, bool) {
	if n < 1 || n > len(stageDefinitions) {
		return "", false
	}
	return stageDefinitions[n-1].Stage, true
}

var stageDefinitions = []StageDefinition{
	{
		Stage:      StageFormwork,
		DisplayAr:  "نجارة / شدات",
		DisplayEn:  "Formwork",
		CodePrefix: "031",
		KeywordsAr: []string{"نجارة", "شدة", "شدات", "فورم"},
		KeywordsEn: []string{"formwork", "shuttering", "forms"},
	},
	{
		Stage:      StageReinforcement,
		DisplayAr:  "حدادة / تسليح",
		DisplayEn:  "Reinforcement",
		CodePrefix: "032",
		KeywordsAr: []string{"حدادة", "تسليح", "حديد"},
		KeywordsEn: []string{"reinforcement", "rebar", "reinforcing", "steel"},
	},
	{
		Stage:      StageCasting,
		DisplayAr:  "صب خرسانة",
		DisplayEn:  "Concrete Casting",
		CodePrefix: "033",
		KeywordsAr: []string{"صب", "خرسانة", "خرسانه"},
		KeywordsEn: []string{"casting", "concrete", "pouring", "placing", "pour"},
	},
	{
		Stage:      StageAll,
		DisplayAr:  "شامل (الكل)",
		DisplayEn:  "All Stages (Complete)",
		CodePrefix: "",
		KeywordsAr: []string{"شامل", "كامل"},
		KeywordsEn: []string{"all stages", "complete", "everything"},
	},
}
