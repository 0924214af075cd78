// Package classify detects which construction element, subtype and work
// stage a normalized query refers to. Matching is a single Aho-Corasick
// pass over the query with hits resolved by a fixed precedence order, so a
// query that mentions both "raft" and "foundation" always lands on the same
// element. Deliberately not a statistical model: the vocabulary is small,
// bilingual and must stay auditable, and a wrong guess is worse than an
// explicit follow-up question.
package classify

import (
	"sort"
	"strings"

	ahocorasick "github.com/cloudflare/ahocorasick"

	"github.com/sitecrew/estimator/internal/domain"
	"github.com/sitecrew/estimator/internal/logging"
	"github.com/sitecrew/estimator/internal/query"
	"github.com/sitecrew/estimator/internal/taxonomy"
)

// Result is the classifier output. Zero values mean "not detected".
type Result struct {
	Element  taxonomy.ElementKey
	Subtype  taxonomy.SubtypeKey
	Stage    taxonomy.WorkStage
	Language domain.Language
	Matched  []string // keywords that fired, for explanations and tests
}

// target records what a keyword resolves to. A keyword may carry an
// element, an (element, subtype) pair, or a work stage.
type target struct {
	element taxonomy.ElementKey
	subtype taxonomy.SubtypeKey
	stage   taxonomy.WorkStage
}

// Classifier holds the compiled keyword automaton. Immutable after
// construction; safe for concurrent use.
type Classifier struct {
	matcher   *ahocorasick.Matcher
	keywords  []string
	kwTargets map[string][]target
	logger    logging.Logger
}

// New compiles the element, subtype and stage keyword sets from the
// taxonomy into a single automaton.
func New(logger logging.Logger) *Classifier {
	c := &Classifier{
		kwTargets: make(map[string][]target),
		logger:    logger,
	}

	for _, elem := range taxonomy.Elements() {
		for _, kw := range append(append([]string{}, elem.KeywordsAr...), elem.KeywordsEn...) {
			c.add(kw, target{element: elem.Key})
		}
		for _, sub := range elem.Subtypes {
			for _, kw := range append(append([]string{}, sub.KeywordsAr...), sub.KeywordsEn...) {
				c.add(kw, target{element: elem.Key, subtype: sub.Key})
			}
		}
	}

	for _, stage := range taxonomy.Stages() {
		for _, kw := range append(append([]string{}, stage.KeywordsAr...), stage.KeywordsEn...) {
			c.add(kw, target{stage: stage.Stage})
		}
	}

	c.matcher = ahocorasick.NewStringMatcher(c.keywords)

	logger.Info("classifier initialized",
		logging.Int("keywords", len(c.keywords)))

	return c
}

func (c *Classifier) add(keyword string, t target) {
	kw := query.Normalize(keyword)
	if kw == "" {
		return
	}
	c.keywords = append(c.keywords, kw)
	c.kwTargets[kw] = append(c.kwTargets[kw], t)
}

// Classify resolves the element, subtype and work stage mentioned in a raw
// query. Element precedence follows taxonomy.Elements order; the first
// element with a keyword hit wins, and subtype hits count for their parent
// element. Stage detection is independent of the element.
func (c *Classifier) Classify(raw string) Result {
	normalized := query.Normalize(raw)
	result := Result{Language: query.DetectLanguage(raw)}

	if normalized == "" {
		return result
	}

	hits := c.hitSet(normalized)
	if len(hits) == 0 {
		return result
	}

	result.Element, result.Subtype, result.Matched = c.resolveElement(hits)
	result.Stage = c.resolveStage(hits)

	c.logger.Debug("query classified",
		logging.String("element", string(result.Element)),
		logging.String("subtype", string(result.Subtype)),
		logging.String("stage", string(result.Stage)),
		logging.String("language", string(result.Language)))

	return result
}

// DetectSubtype scans an utterance for a subtype of a known element only.
// Used by the conversation layer when the element slot is already locked.
func (c *Classifier) DetectSubtype(elem taxonomy.ElementKey, raw string) (taxonomy.SubtypeKey, bool) {
	def, ok := taxonomy.Element(elem)
	if !ok {
		return "", false
	}

	normalized := query.Normalize(raw)
	for _, sub := range def.Subtypes {
		for _, kw := range append(append([]string{}, sub.KeywordsAr...), sub.KeywordsEn...) {
			if strings.Contains(normalized, query.Normalize(kw)) {
				return sub.Key, true
			}
		}
	}
	return "", false
}

// DetectStage scans an utterance for a work stage. Accepts the numeric
// shorthand "1".."4" mapped positionally to the stage list.
func (c *Classifier) DetectStage(raw string) (taxonomy.WorkStage, bool) {
	trimmed := strings.TrimSpace(raw)
	if n := len(trimmed); n == 1 && trimmed[0] >= '1' && trimmed[0] <= '9' {
		if stage, ok := taxonomy.StageByOrdinal(int(trimmed[0] - '0')); ok {
			return stage, true
		}
	}

	hits := c.hitSet(query.Normalize(raw))
	if stage := c.resolveStage(hits); stage != "" {
		return stage, true
	}
	return "", false
}

// hitSet runs the automaton and returns the set of keywords found as
// substrings of the normalized text.
func (c *Classifier) hitSet(normalized string) map[string]bool {
	if normalized == "" {
		return nil
	}

	hits := make(map[string]bool)
	for _, idx := range c.matcher.Match([]byte(normalized)) {
		if idx < len(c.keywords) {
			hits[c.keywords[idx]] = true
		}
	}
	return hits
}

// resolveElement walks elements in precedence order and returns the first
// one any of whose keywords (subtype keywords included) fired.
func (c *Classifier) resolveElement(hits map[string]bool) (taxonomy.ElementKey, taxonomy.SubtypeKey, []string) {
	for _, elem := range taxonomy.Elements() {
		matched := make([]string, 0, 2)
		found := false
		for kw := range hits {
			for _, t := range c.kwTargets[kw] {
				if t.element == elem.Key && t.stage == "" {
					found = true
					matched = append(matched, kw)
				}
			}
		}
		if !found {
			continue
		}
		sort.Strings(matched)

		// Subtypes resolve in their declared order, first hit wins.
		for _, sub := range elem.Subtypes {
			for kw := range hits {
				for _, t := range c.kwTargets[kw] {
					if t.element == elem.Key && t.subtype == sub.Key {
						return elem.Key, sub.Key, matched
					}
				}
			}
		}
		return elem.Key, "", matched
	}
	return "", "", nil
}

// resolveStage returns the first stage in declared order with a keyword hit.
func (c *Classifier) resolveStage(hits map[string]bool) taxonomy.WorkStage {
	for _, stage := range taxonomy.Stages() {
		for kw := range hits {
			for _, t := range c.kwTargets[kw] {
				if t.stage == stage.Stage {
					return stage.Stage
				}
			}
		}
	}
	return ""
}
