package conversation

import (
	"fmt"

	"github.com/sitecrew/estimator/internal/domain"
	"github.com/sitecrew/estimator/internal/taxonomy"
)

// Prompt is a clarification question with its answer options, rendered in
// the session language.
type Prompt struct {
	Question string
	Options  []string
}

// Question builds the clarification prompt for a state. Returns false for
// states that ask nothing (READY and, by convention, NEED_ELEMENT, where
// the assistant answers with a generic greeting instead).
func Question(state State, slots Slots) (Prompt, bool) {
	switch state {
	case StateNeedSubtype:
		return subtypePrompt(slots), true
	case StateNeedStage:
		return stagePrompt(slots), true
	case StateNeedQuantity:
		return quantityPrompt(slots), true
	default:
		return Prompt{}, false
	}
}

func subtypePrompt(slots Slots) Prompt {
	def, _ := taxonomy.Element(slots.Element)

	options := make([]string, 0, len(def.Subtypes))
	for _, sub := range def.Subtypes {
		options = append(options, display(slots.Language, sub.DisplayAr, sub.DisplayEn))
	}

	if slots.Language == domain.LanguageArabic {
		return Prompt{
			Question: fmt.Sprintf("ما نوع %s المطلوب؟", def.DisplayAr),
			Options:  options,
		}
	}
	return Prompt{
		Question: fmt.Sprintf("Which type of %s do you need?", def.DisplayEn),
		Options:  options,
	}
}

func stagePrompt(slots Slots) Prompt {
	stages := taxonomy.Stages()

	options := make([]string, 0, len(stages))
	for i, stage := range stages {
		options = append(options,
			fmt.Sprintf("%d. %s", i+1, display(slots.Language, stage.DisplayAr, stage.DisplayEn)))
	}

	if slots.Language == domain.LanguageArabic {
		return Prompt{Question: "ما مرحلة العمل المطلوبة؟", Options: options}
	}
	return Prompt{Question: "Which work stage do you need?", Options: options}
}

func quantityPrompt(slots Slots) Prompt {
	unit := slots.Unit
	if unit == "" {
		if def, ok := taxonomy.Element(slots.Element); ok {
			unit = def.DefaultUnit
		}
	}

	if slots.Language == domain.LanguageArabic {
		q := "ما الكمية المطلوبة؟"
		if unit != "" {
			q = fmt.Sprintf("ما الكمية المطلوبة (%s)؟", unit)
		}
		return Prompt{Question: q}
	}

	q := "What quantity do you need?"
	if unit != "" {
		q = fmt.Sprintf("What quantity do you need (%s)?", unit)
	}
	return Prompt{Question: q}
}

func display(lang domain.Language, ar, en string) string {
	if lang == domain.LanguageArabic {
		return ar
	}
	return en
}
