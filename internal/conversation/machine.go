// Package conversation drives the multi-turn disambiguation flow. The
// caller supplies the full turn history on every request; the machine
// replays it to derive the current slots, so no per-session state lives in
// the server and concurrent sessions need no locking.
package conversation

import (
	"strings"
	"unicode"

	"github.com/sitecrew/estimator/internal/classify"
	"github.com/sitecrew/estimator/internal/domain"
	"github.com/sitecrew/estimator/internal/logging"
	"github.com/sitecrew/estimator/internal/query"
	"github.com/sitecrew/estimator/internal/taxonomy"
)

// State names the one piece of information the machine still needs, or
// readiness to search.
type State string

const (
	StateNeedElement  State = "need_element"
	StateNeedSubtype  State = "need_subtype"
	StateNeedStage    State = "need_work_stage"
	StateNeedQuantity State = "need_quantity"
	StateReady        State = "ready"
)

// Slots holds everything resolved so far. A zero field means the slot is
// still open. Resolved slots are never overwritten during replay; the user
// starts a new conversation to change them.
type Slots struct {
	Element  taxonomy.ElementKey
	Subtype  taxonomy.SubtypeKey
	Stage    taxonomy.WorkStage
	Quantity *float64
	Unit     string
	Language domain.Language
}

// Machine advances conversations. Stateless; safe for concurrent use.
type Machine struct {
	classifier *classify.Classifier
	logger     logging.Logger
}

func NewMachine(classifier *classify.Classifier, logger logging.Logger) *Machine {
	return &Machine{classifier: classifier, logger: logger}
}

// Advance replays every user turn in history followed by the new utterance
// and returns the resulting slots and state. The same inputs always yield
// the same outputs.
func (m *Machine) Advance(history []domain.Turn, utterance string) (Slots, State) {
	slots := Slots{Language: domain.LanguageEnglish}

	for _, turn := range history {
		if turn.Role == domain.RoleUser {
			slots = m.apply(slots, turn.Content)
		}
	}
	slots = m.apply(slots, utterance)

	state := StateOf(slots)

	m.logger.Debug("conversation advanced",
		logging.String("state", string(state)),
		logging.String("element", string(slots.Element)),
		logging.String("subtype", string(slots.Subtype)),
		logging.String("stage", string(slots.Stage)),
		logging.Bool("has_quantity", slots.Quantity != nil))

	return slots, state
}

// apply folds one user utterance into the slots. Only open slots may be
// filled; an utterance that matches nothing leaves the slots untouched.
func (m *Machine) apply(slots Slots, utterance string) Slots {
	trimmed := strings.TrimSpace(utterance)
	if trimmed == "" {
		return slots
	}

	// A digit-only reply carries no language signal; the session language
	// only changes when the utterance shows Arabic script or Latin letters.
	if lang := query.DetectLanguage(trimmed); lang == domain.LanguageArabic || hasLetter(trimmed) {
		slots.Language = lang
	}
	stageWasOpen := slots.Stage == ""

	if slots.Element == "" {
		result := m.classifier.Classify(trimmed)
		slots.Element = result.Element
		if slots.Subtype == "" {
			slots.Subtype = result.Subtype
		}
		if slots.Stage == "" {
			slots.Stage = result.Stage
		}
	} else {
		if slots.Subtype == "" {
			if sub, ok := m.classifier.DetectSubtype(slots.Element, trimmed); ok {
				slots.Subtype = sub
			}
		}
		if slots.Stage == "" {
			if stage, ok := m.classifier.DetectStage(trimmed); ok {
				slots.Stage = stage
			}
		}
	}

	// A bare "1".."4" answering the stage question is shorthand, not a
	// quantity.
	if slots.Quantity == nil && !(stageWasOpen && isStageOrdinal(trimmed)) {
		parsed := query.Parse(trimmed)
		if parsed.Quantity != nil {
			slots.Quantity = parsed.Quantity
			if slots.Unit == "" {
				slots.Unit = parsed.Unit
			}
		}
	}

	return slots
}

// StateOf maps slots to the next question. Subtype is only required for
// elements that declare subtypes.
func StateOf(slots Slots) State {
	if slots.Element == "" {
		return StateNeedElement
	}
	if slots.Subtype == "" {
		if def, ok := taxonomy.Element(slots.Element); ok && len(def.Subtypes) > 0 {
			return StateNeedSubtype
		}
	}
	if slots.Stage == "" {
		return StateNeedStage
	}
	if slots.Quantity == nil {
		return StateNeedQuantity
	}
	return StateReady
}

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

// isStageOrdinal reports whether the utterance is a bare stage shorthand
// digit, which must not be mistaken for a quantity.
func isStageOrdinal(trimmed string) bool {
	if len(trimmed) != 1 || trimmed[0] < '1' || trimmed[0] > '9' {
		return false
	}
	_, ok := taxonomy.StageByOrdinal(int(trimmed[0] - '0'))
	return ok
}
