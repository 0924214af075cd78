package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitecrew/estimator/internal/assistant"
	"github.com/sitecrew/estimator/internal/catalog"
	"github.com/sitecrew/estimator/internal/classify"
	"github.com/sitecrew/estimator/internal/conversation"
	"github.com/sitecrew/estimator/internal/domain"
	"github.com/sitecrew/estimator/internal/logging"
	"github.com/sitecrew/estimator/internal/rank"
	"github.com/sitecrew/estimator/internal/telemetry"
)

// Prometheus collectors register globally, so one provider serves every
// test in the package.
var testTelemetry = telemetry.NewProvider()

func fptr(v float64) *float64 { return &v }

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	nop := logging.NewNop()
	items := []domain.LineItem{
		{FullCode: "030000000000", Description: "concrete"},
		{
			FullCode:    "032110600200",
			Description: "Reinforcing steel in place footings #4 to #7",
			Unit:        "ton",
			DailyOutput: fptr(2.1), ManHours: fptr(15.238),
		},
		{
			FullCode:      "033113350400",
			Description:   "Structural concrete in place mat foundations over 20 cy",
			DescriptionAr: "خرسانة لبشة",
			Unit:          "C.Y.",
			DailyOutput:   fptr(125), ManHours: fptr(0.448),
		},
	}

	cat := catalog.NewMemory(items)
	reranker := rank.NewReranker(nop)
	machine := conversation.NewMachine(classify.New(nop), nop)
	asst := assistant.New(machine, cat, reranker, assistant.SearchConfig{MinConfidence: 0.05}, nop)

	handler := NewHandler(asst, reranker, cat, testTelemetry, nop)

	router := gin.New()
	SetupRoutes(router, handler)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAssist_Clarification(t *testing.T) {
	router := testRouter()

	w := doJSON(t, router, http.MethodPost, "/api/v1/assist", assistant.Request{Query: "لبشة"})

	require.Equal(t, http.StatusOK, w.Code)

	var resp assistant.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, assistant.StatusNeedStage, resp.Status)
	assert.Len(t, resp.Options, 4)
	assert.NotEmpty(t, resp.SessionID)
}

func TestAssist_Calculated(t *testing.T) {
	router := testRouter()

	w := doJSON(t, router, http.MethodPost, "/api/v1/assist", assistant.Request{
		Query: "isolated footing reinforcement 50 m3",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp assistant.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, assistant.StatusCalculated, resp.Status)
	require.NotNil(t, resp.Estimate)
	assert.Equal(t, "032110600200", resp.Estimate.ItemCode)
}

func TestAssist_InvalidJSON(t *testing.T) {
	router := testRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/assist", bytes.NewReader([]byte("{not json")))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRerank_InlineCandidates(t *testing.T) {
	router := testRouter()

	w := doJSON(t, router, http.MethodPost, "/api/v1/rerank", RerankRequest{
		Query: "mat foundation concrete",
		Candidates: []domain.LineItem{
			{
				FullCode:    "033113350400",
				Description: "Structural concrete in place mat foundations",
				Unit:        "C.Y.",
				DailyOutput: fptr(125), ManHours: fptr(0.448),
			},
		},
		MinConfidence: 0.05,
	})

	require.Equal(t, http.StatusOK, w.Code)

	var out rank.Output
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.Len(t, out.Results, 1)
	assert.Equal(t, 1, out.Results[0].Rank)
	assert.False(t, out.DataSourceMissing)
}

func TestRerank_RelaxationRecorded(t *testing.T) {
	router := testRouter()
	before := testutil.ToFloat64(testTelemetry.Metrics.FilterRelaxations)

	// man_hours 3 fails the 2.5 threshold but passes its first 1.25x widening.
	w := doJSON(t, router, http.MethodPost, "/api/v1/rerank", RerankRequest{
		Query: "mat foundation concrete",
		Candidates: []domain.LineItem{
			{
				FullCode:    "033113350400",
				Description: "Structural concrete in place mat foundations",
				Unit:        "C.Y.",
				DailyOutput: fptr(125), ManHours: fptr(3),
			},
		},
		Filters:       RerankFilters{ManHoursLT: fptr(2.5)},
		MinConfidence: 0.05,
	})

	require.Equal(t, http.StatusOK, w.Code)

	var out rank.Output
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.Len(t, out.Results, 1)
	assert.NotEmpty(t, out.Warnings)

	after := testutil.ToFloat64(testTelemetry.Metrics.FilterRelaxations)
	assert.Equal(t, 1.0, after-before, "one relaxation step should be counted")
}

func TestRerank_MissingQuery(t *testing.T) {
	router := testRouter()

	w := doJSON(t, router, http.MethodPost, "/api/v1/rerank", map[string]any{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetItem(t *testing.T) {
	router := testRouter()

	w := doJSON(t, router, http.MethodGet, "/api/v1/items/033113350400", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var item domain.LineItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &item))
	assert.Equal(t, "C.Y.", item.Unit)

	notFound := doJSON(t, router, http.MethodGet, "/api/v1/items/999999", nil)
	assert.Equal(t, http.StatusNotFound, notFound.Code)
}

func TestSearchItems(t *testing.T) {
	router := testRouter()

	w := doJSON(t, router, http.MethodGet, "/api/v1/items?q=foundations", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp ItemsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Total)

	missing := doJSON(t, router, http.MethodGet, "/api/v1/items", nil)
	assert.Equal(t, http.StatusBadRequest, missing.Code)
}

func TestEstimate(t *testing.T) {
	router := testRouter()

	w := doJSON(t, router, http.MethodPost, "/api/v1/estimate", EstimateRequest{
		Code: "033113350400", Quantity: 300,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var est domain.ProductivityEstimate
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &est))
	assert.Equal(t, 3, est.DurationDays)

	header := doJSON(t, router, http.MethodPost, "/api/v1/estimate", EstimateRequest{
		Code: "030000000000", Quantity: 10,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, header.Code)

	missing := doJSON(t, router, http.MethodPost, "/api/v1/estimate", EstimateRequest{
		Code: "999999", Quantity: 10,
	})
	assert.Equal(t, http.StatusNotFound, missing.Code)
}

func TestHealthAndReady(t *testing.T) {
	router := testRouter()

	health := doJSON(t, router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, health.Code)

	ready := doJSON(t, router, http.MethodGet, "/ready", nil)
	assert.Equal(t, http.StatusOK, ready.Code)
}

func TestRateLimitMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RateLimitMiddleware(1))
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	var limited bool
	for i := 0; i < 30; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		if w.Code == http.StatusTooManyRequests {
			limited = true
			break
		}
	}
	assert.True(t, limited, "burst beyond the limit should be rejected")
}
