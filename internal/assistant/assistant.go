// Package assistant orchestrates a full conversational turn: advance the
// state machine, ask the next clarification, or run the catalog search,
// rerank the pool and compute the productivity estimate.
package assistant

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/sitecrew/estimator/internal/catalog"
	"github.com/sitecrew/estimator/internal/conversation"
	"github.com/sitecrew/estimator/internal/domain"
	"github.com/sitecrew/estimator/internal/logging"
	"github.com/sitecrew/estimator/internal/query"
	"github.com/sitecrew/estimator/internal/rank"
	"github.com/sitecrew/estimator/internal/taxonomy"
)

// Response statuses.
const (
	StatusGreeting     = "greeting"
	StatusNeedElement  = "need_element"
	StatusNeedSubtype  = "need_subtype"
	StatusNeedStage    = "need_work_stage"
	StatusNeedQuantity = "need_quantity"
	StatusResults      = "results"
	StatusSelectItem   = "select_item"
	StatusCalculated   = "calculated"
	StatusNotFound     = "not_found"
)

// selectMargin is the score gap under which the top two candidates are
// treated as a tie: the caller picks the item instead of the assistant
// calculating on an ambiguous winner.
const selectMargin = 0.05

// SearchConfig tunes the candidate search and rerank.
type SearchConfig struct {
	TopK           int
	MinConfidence  float64
	CandidateLimit int
}

// Request is one conversational turn from the caller. History carries the
// whole conversation; nothing is held server-side between turns.
type Request struct {
	SessionID string          `json:"session_id,omitempty"`
	Query     string          `json:"query"`
	Language  domain.Language `json:"lang,omitempty"`
	History   []domain.Turn   `json:"history,omitempty"`
	Crews     int             `json:"num_crews,omitempty"`
}

// Response is the assistant's answer: a clarification prompt, ranked
// results, a calculated estimate, or a guidance message.
type Response struct {
	SessionID         string                       `json:"session_id"`
	Status            string                       `json:"status"`
	Question          string                       `json:"question,omitempty"`
	Options           []string                     `json:"options,omitempty"`
	Message           string                       `json:"message,omitempty"`
	Results           []domain.ScoredCandidate     `json:"results,omitempty"`
	Estimate          *domain.ProductivityEstimate `json:"estimate,omitempty"`
	Warnings          []string                     `json:"warnings,omitempty"`
	Suggestions       []string                     `json:"suggestions,omitempty"`
	DataSourceMissing bool                         `json:"data_source_missing,omitempty"`
}

// Assistant wires the state machine, catalog and reranker together.
// Stateless; safe for concurrent use.
type Assistant struct {
	machine  *conversation.Machine
	catalog  catalog.Catalog
	reranker *rank.Reranker
	cfg      SearchConfig
	logger   logging.Logger
}

func New(machine *conversation.Machine, cat catalog.Catalog, reranker *rank.Reranker, cfg SearchConfig, logger logging.Logger) *Assistant {
	if cfg.TopK <= 0 {
		cfg.TopK = rank.DefaultTopK
	}
	if cfg.MinConfidence <= 0 {
		cfg.MinConfidence = rank.DefaultMinConfidence
	}
	return &Assistant{
		machine:  machine,
		catalog:  cat,
		reranker: reranker,
		cfg:      cfg,
		logger:   logger,
	}
}

// ClassifyAndSearch handles one turn. It never returns an error for bad
// user input; every failure mode degrades to a clarification or an explicit
// empty result.
func (a *Assistant) ClassifyAndSearch(ctx context.Context, req Request) Response {
	resp := Response{SessionID: req.SessionID}
	if resp.SessionID == "" {
		resp.SessionID = uuid.New().String()
	}

	if strings.TrimSpace(req.Query) == "" && len(req.History) == 0 {
		resp.Status = StatusGreeting
		resp.Message = greeting(req.Language)
		return resp
	}

	slots, state := a.machine.Advance(req.History, req.Query)

	switch state {
	case conversation.StateNeedElement:
		if conceptResp, ok := a.conceptSearch(ctx, resp, req); ok {
			return conceptResp
		}
		resp.Status = StatusNeedElement
		resp.Message = elementGuidance(slots.Language)
		resp.Options = elementOptions(slots.Language)
		return resp

	case conversation.StateNeedSubtype, conversation.StateNeedStage, conversation.StateNeedQuantity:
		prompt, _ := conversation.Question(state, slots)
		resp.Status = string(state)
		resp.Question = prompt.Question
		resp.Options = prompt.Options
		return resp
	}

	return a.search(ctx, resp, req, slots)
}

// search runs the READY path: build the candidate pool from the resolved
// slots, rerank it, and when a quantity is known compute the estimate for
// the best match.
func (a *Assistant) search(ctx context.Context, resp Response, req Request, slots conversation.Slots) Response {
	pool, searchQuery := a.candidates(ctx, slots)

	out := a.reranker.Rerank(ctx, searchQuery, pool, rank.Filters{}, rank.Options{
		TopK:          a.cfg.TopK,
		MinConfidence: a.cfg.MinConfidence,
		Unit:          slots.Unit,
	})

	return a.respond(resp, req, out, slots.Quantity, slots.Language)
}

// conceptSearch serves vocabulary outside the concrete element taxonomy,
// such as plastering, waterproofing and painting. The concept's CSI
// division hint narrows the pool the way a work-stage prefix does for
// concrete elements.
func (a *Assistant) conceptSearch(ctx context.Context, resp Response, req Request) (Response, bool) {
	entry, ok := matchConcept(req.Query)
	if !ok {
		return resp, false
	}

	parsed := query.Parse(req.Query)

	pool, err := a.catalog.SearchCandidates(ctx, catalog.CandidateQuery{
		Terms:      expandTerms([]string{entry.SearchTerm}),
		CodePrefix: entry.Division,
		Limit:      a.cfg.CandidateLimit,
	})
	if err != nil {
		a.logger.Error("concept candidate search failed",
			logging.String("concept", entry.Key), logging.Error(err))
		pool = nil
	} else if pool == nil {
		pool = []domain.LineItem{}
	}

	unit := parsed.Unit
	if unit == "" {
		unit = entry.Unit
	}

	out := a.reranker.Rerank(ctx, entry.SearchTerm, pool, rank.Filters{}, rank.Options{
		TopK:          a.cfg.TopK,
		MinConfidence: a.cfg.MinConfidence,
		Unit:          unit,
	})

	return a.respond(resp, req, out, parsed.Quantity, parsed.Language), true
}

// respond maps a rerank outcome onto the response: not_found, a selection
// question when the top candidates tie, a calculated estimate, or the
// ranked list.
func (a *Assistant) respond(resp Response, req Request, out rank.Output, quantity *float64, lang domain.Language) Response {
	resp.Warnings = out.Warnings
	resp.Suggestions = out.Suggestions
	resp.DataSourceMissing = out.DataSourceMissing
	resp.Results = out.Results

	if len(out.Results) == 0 {
		resp.Status = StatusNotFound
		resp.Message = notFoundMessage(lang)
		return resp
	}

	if quantity != nil {
		if len(out.Results) > 1 && out.Results[0].Score-out.Results[1].Score < selectMargin {
			resp.Status = StatusSelectItem
			resp.Question = selectItemQuestion(lang)
			resp.Options = itemOptions(out.Results, lang)
			return resp
		}
		best := out.Results[0]
		if estimate, ok := Calculate(&best.Item, *quantity, req.Crews); ok {
			resp.Status = StatusCalculated
			resp.Estimate = estimate
			return resp
		}
	}

	resp.Status = StatusResults
	return resp
}

// matchConcept scans the concept keyword table in declared order and
// returns the first entry with a keyword hit against the normalized query.
func matchConcept(rawQuery string) (taxonomy.KeywordEntry, bool) {
	normalized := query.Normalize(rawQuery)
	if normalized == "" {
		return taxonomy.KeywordEntry{}, false
	}
	for _, entry := range taxonomy.KeywordEntries() {
		for _, kw := range entry.KeywordsAr {
			if strings.Contains(normalized, query.Normalize(kw)) {
				return entry, true
			}
		}
		for _, kw := range entry.KeywordsEn {
			if strings.Contains(normalized, query.Normalize(kw)) {
				return entry, true
			}
		}
	}
	return taxonomy.KeywordEntry{}, false
}

// candidates selects the pool for the resolved slots: items under the
// stage's code prefix whose descriptions mention the element or subtype
// search terms. A catalog failure yields a nil pool, which the reranker
// reports as a missing data source.
func (a *Assistant) candidates(ctx context.Context, slots conversation.Slots) ([]domain.LineItem, string) {
	terms, searchQuery := searchTerms(slots)

	q := catalog.CandidateQuery{
		Terms: terms,
		Limit: a.cfg.CandidateLimit,
	}
	if def, ok := taxonomy.Stage(slots.Stage); ok {
		q.CodePrefix = def.CodePrefix
	}

	pool, err := a.catalog.SearchCandidates(ctx, q)
	if err != nil {
		a.logger.Error("candidate search failed", logging.Error(err))
		return nil, searchQuery
	}
	if pool == nil {
		pool = []domain.LineItem{}
	}
	return pool, searchQuery
}

// searchTerms derives the catalog filter terms and the canonical rerank
// query from the slots. Subtype terms are preferred because they are more
// specific; element terms always remain as a fallback filter.
func searchTerms(slots conversation.Slots) ([]string, string) {
	def, ok := taxonomy.Element(slots.Element)
	if !ok {
		return nil, ""
	}

	terms := append([]string{}, def.SearchTerms...)
	primary := def.SearchTerms
	if slots.Subtype != "" {
		if sub, subOK := def.Subtype(slots.Subtype); subOK {
			terms = append(sub.SearchTerms, terms...)
			primary = sub.SearchTerms
		}
	}

	queryParts := make([]string, 0, 2)
	if len(primary) > 0 {
		queryParts = append(queryParts, primary[0])
	}
	if stage, stageOK := taxonomy.Stage(slots.Stage); stageOK && len(stage.KeywordsEn) > 0 {
		queryParts = append(queryParts, stage.KeywordsEn[0])
	}

	return expandTerms(terms), strings.Join(queryParts, " ")
}

// expandTerms widens the catalog filter terms with their synonym phrases so
// retrieval sees the same vocabulary the scorer does, Arabic forms included.
func expandTerms(terms []string) []string {
	seen := make(map[string]bool, len(terms))
	expanded := make([]string, 0, len(terms)*2)
	for _, term := range terms {
		for _, t := range taxonomy.ExpandQuery(term) {
			if !seen[t] {
				seen[t] = true
				expanded = append(expanded, t)
			}
		}
	}
	return expanded
}

func greeting(lang domain.Language) string {
	if lang == domain.LanguageArabic {
		return "مرحباً! اسألني عن معدلات الإنتاجية لأي بند إنشائي، مثل: لبشة خرسانية 120 م3"
	}
	return "Hello! Ask me about productivity rates for any construction item, for example: raft foundation concrete 120 m3"
}

func elementGuidance(lang domain.Language) string {
	if lang == domain.LanguageArabic {
		return "لم أتعرف على العنصر الإنشائي. اذكر عنصراً مثل: بلاطة، كمرة، عمود، قاعدة"
	}
	return "I could not identify the structural element. Name one, for example: slab, beam, column, footing"
}

func elementOptions(lang domain.Language) []string {
	elements := taxonomy.Elements()
	options := make([]string, 0, len(elements))
	for _, elem := range elements {
		if lang == domain.LanguageArabic {
			options = append(options, elem.DisplayAr)
		} else {
			options = append(options, elem.DisplayEn)
		}
	}
	return options
}

func selectItemQuestion(lang domain.Language) string {
	if lang == domain.LanguageArabic {
		return "وجدت أكثر من بند مطابق. اختر البند المطلوب:"
	}
	return "I found more than one matching item. Select the one you need:"
}

func itemOptions(results []domain.ScoredCandidate, lang domain.Language) []string {
	options := make([]string, 0, len(results))
	for i, r := range results {
		desc := r.Item.Description
		if lang == domain.LanguageArabic && r.Item.DescriptionAr != "" {
			desc = r.Item.DescriptionAr
		}
		options = append(options, fmt.Sprintf("%d. %s (%s)", i+1, desc, r.Item.FullCode))
	}
	return options
}

func notFoundMessage(lang domain.Language) string {
	if lang == domain.LanguageArabic {
		return "لم أجد بنوداً مطابقة. جرّب صياغة أخرى أو أضف تفاصيل"
	}
	return "No matching items found. Try rephrasing or adding detail"
}
