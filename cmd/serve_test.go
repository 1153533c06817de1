package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/servicegrid/match-cli/internal/engine"
	"github.com/servicegrid/match-cli/internal/model"
	"github.com/servicegrid/match-cli/internal/store"
)

func testRouter(t *testing.T, st store.Store) http.Handler {
	t.Helper()
	eng, err := engine.New(engine.Options{})
	require.NoError(t, err)
	return newRouter(eng, st)
}

func testRequestBody() []byte {
	req := model.MatchRequest{
		Job: model.JobInput{
			ID:        "job-100",
			Title:     "Rewire kitchen",
			Category:  "electrical",
			BudgetMin: 50,
			BudgetMax: 120,
			Location:  []float64{-33.8688, 151.2093},
			Urgency:   "medium",
			Skills:    []string{"electrical", "wiring"},
		},
		Providers: []model.ProviderInput{
			{
				ID:              "prov-1",
				Name:            "City Electrics",
				Skills:          []string{"electrical", "wiring", "safety"},
				Location:        []float64{-33.8598, 151.2093},
				Rating:          4.6,
				CompletedJobs:   40,
				HourlyRate:      80,
				ServiceRadiusKM: 25,
				Availability:    map[string]bool{"monday": true, "friday": true},
			},
		},
	}
	raw, _ := json.Marshal(req)
	return raw
}

func TestHealthEndpoint(t *testing.T) {
	router := testRouter(t, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestMatchEndpoint(t *testing.T) {
	router := testRouter(t, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/match", bytes.NewReader(testRequestBody()))
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp model.MatchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "job-100", resp.JobID)
	require.Equal(t, 1, resp.MatchesFound)
	assert.Equal(t, "prov-1", resp.Matches[0].ProviderID)
	assert.Greater(t, resp.Matches[0].MatchScore, 50.0)
	assert.NotEmpty(t, resp.Matches[0].Explanation)
}

func TestMatchEndpointRejectsMalformedBody(t *testing.T) {
	router := testRouter(t, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/match", strings.NewReader("{not json"))
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid request body")
}

func TestMatchEndpointRejectsInvalidJob(t *testing.T) {
	router := testRouter(t, nil)

	body := `{"job":{"id":"","category":"electrical"},"providers":[]}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/match", strings.NewReader(body))
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var errResp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Contains(t, errResp["error"], "id is required")
}

func TestMatchEndpointRecordsRun(t *testing.T) {
	st, err := store.NewSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	require.NoError(t, st.Migrate(context.Background()))

	router := testRouter(t, st)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/match", bytes.NewReader(testRequestBody()))
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	runs, err := st.ListRuns(context.Background(), store.RunFilter{})
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "job-100", runs[0].JobID)
	assert.Equal(t, "heuristic", runs[0].Strategy)
	assert.Equal(t, 1, runs[0].MatchesFound)
	assert.Contains(t, runs[0].Response, `"provider_id":"prov-1"`)
}
