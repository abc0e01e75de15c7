package service_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"jobboard-api/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRequest() service.MatchRequest {
	return service.MatchRequest{
		ResumeContext:      "Three years of Go and PostgreSQL work.",
		PreferredTrack:     "Backend",
		ExperienceLevel:    "Mid",
		JobTitle:           "Backend Engineer",
		Company:            "Acme",
		Locations:          []string{"Jakarta"},
		RequiredSkills:     []string{"Go", "PostgreSQL"},
		JobExperienceLevel: "Mid",
		JobType:            "Full-time",
	}
}

func TestAnalyzeMatch_Success(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/match-job-resume", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"match_score": 87.5,
			"is_recommended": true,
			"matching_skills": ["Go", "PostgreSQL"],
			"missing_skills": ["Kubernetes"],
			"reason": "Strong overlap on core backend skills."
		}`))
	}))
	defer srv.Close()

	svc := service.NewMatchServiceWithBaseURL(srv.URL)
	result, err := svc.AnalyzeMatch(context.Background(), sampleRequest())
	require.NoError(t, err)

	assert.Equal(t, 87.5, result.MatchScore)
	assert.True(t, result.IsRecommended)
	assert.Equal(t, []string{"Go", "PostgreSQL"}, result.MatchingSkills)
	assert.Equal(t, []string{"Kubernetes"}, result.MissingSkills)
	assert.Equal(t, "Strong overlap on core backend skills.", result.Reason)

	// payload carries the documented field names
	assert.Equal(t, "Three years of Go and PostgreSQL work.", gotBody["resume_context"])
	assert.Equal(t, []any{"Jakarta"}, gotBody["locations"])
	assert.Equal(t, "Mid", gotBody["job_experience_level"])
}

func TestAnalyzeMatch_ErrorBodyMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error": "rate limited"}`))
	}))
	defer srv.Close()

	svc := service.NewMatchServiceWithBaseURL(srv.URL)
	_, err := svc.AnalyzeMatch(context.Background(), sampleRequest())

	var svcErr *service.MatchServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "rate limited", svcErr.Message)
}

func TestAnalyzeMatch_UnparseableErrorBodyFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`<html>boom</html>`))
	}))
	defer srv.Close()

	svc := service.NewMatchServiceWithBaseURL(srv.URL)
	_, err := svc.AnalyzeMatch(context.Background(), sampleRequest())

	var svcErr *service.MatchServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "match analysis failed, please try again later", svcErr.Message)
}

func TestAnalyzeMatch_MissingBaseURL(t *testing.T) {
	svc := service.NewMatchServiceWithBaseURL("")
	_, err := svc.AnalyzeMatch(context.Background(), sampleRequest())
	assert.ErrorIs(t, err, service.ErrMatchNotConfigured)
}

func TestAnalyzeMatch_NetworkFailure(t *testing.T) {
	// nothing listens here
	svc := service.NewMatchServiceWithBaseURL("http://127.0.0.1:1")
	_, err := svc.AnalyzeMatch(context.Background(), sampleRequest())

	var svcErr *service.MatchServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.NotEmpty(t, svcErr.Message)
}

func TestAnalyzeMatch_ScoreOutOfRange(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"match_score": 250}`))
	}))
	defer srv.Close()

	svc := service.NewMatchServiceWithBaseURL(srv.URL)
	_, err := svc.AnalyzeMatch(context.Background(), sampleRequest())

	var svcErr *service.MatchServiceError
	require.ErrorAs(t, err, &svcErr)
}
