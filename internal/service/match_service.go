package service

import (
	"context"
	"errors"
	"fmt"

	"jobboard-api/internal/config"
	"jobboard-api/internal/model"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

const matchEndpointPath = "/api/match-job-resume"

// fallback when the service fails without a usable message
const genericMatchError = "match analysis failed, please try again later"

// ErrMatchNotConfigured means MATCH_AI_BASE_URL is missing. This disables the
// match feature only; the rest of the API is unaffected.
var ErrMatchNotConfigured = errors.New("match service URL is not configured")

// MatchServiceError carries the user-facing failure message for a match call
// (non-2xx response or network failure).
type MatchServiceError struct {
	Message string
}

func (e *MatchServiceError) Error() string {
	return e.Message
}

// MatchRequest is the JSON body sent to the external scoring service.
// Experience levels are already normalized to the canonical buckets.
type MatchRequest struct {
	ResumeContext      string   `json:"resume_context"`
	PreferredTrack     string   `json:"preferred_track"`
	ExperienceLevel    string   `json:"experience_level"`
	JobTitle           string   `json:"job_title"`
	Company            string   `json:"company"`
	Locations          []string `json:"locations"`
	RequiredSkills     []string `json:"required_skills"`
	JobExperienceLevel string   `json:"job_experience_level"`
	JobType            string   `json:"job_type"`
}

type MatchServiceInterface interface {
	AnalyzeMatch(ctx context.Context, req MatchRequest) (*model.MatchResult, error)
}

type MatchService struct {
	BaseURL string
	client  *resty.Client
}

func NewMatchService() *MatchService {
	return &MatchService{
		BaseURL: config.LoadMatchAIConfig().BaseURL,
		client:  resty.New(),
	}
}

// NewMatchServiceWithBaseURL bypasses env config, mainly for tests.
func NewMatchServiceWithBaseURL(baseURL string) *MatchService {
	return &MatchService{
		BaseURL: baseURL,
		client:  resty.New(),
	}
}

// AnalyzeMatch issues exactly one POST to the scoring service. No retries and
// no caching; every call produces a whole new result.
func (s *MatchService) AnalyzeMatch(ctx context.Context, req MatchRequest) (*model.MatchResult, error) {
	if s.BaseURL == "" {
		return nil, ErrMatchNotConfigured
	}

	if req.Locations == nil {
		req.Locations = []string{}
	}
	if req.RequiredSkills == nil {
		req.RequiredSkills = []string{}
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post(s.BaseURL + matchEndpointPath)
	if err != nil {
		msg := err.Error()
		if msg == "" {
			msg = genericMatchError
		}
		return nil, &MatchServiceError{Message: msg}
	}

	body := resp.String()

	if resp.IsError() {
		// error bodies are JSON with an optional "error" field, but don't
		// count on it being parseable
		msg := gjson.Get(body, "error").String()
		if msg == "" {
			msg = genericMatchError
		}
		return nil, &MatchServiceError{Message: msg}
	}

	if !gjson.Valid(body) {
		return nil, &MatchServiceError{Message: genericMatchError}
	}

	result := &model.MatchResult{
		MatchScore:     gjson.Get(body, "match_score").Float(),
		IsRecommended:  gjson.Get(body, "is_recommended").Bool(),
		Reason:         gjson.Get(body, "reason").String(),
		MatchingSkills: stringList(gjson.Get(body, "matching_skills")),
		MissingSkills:  stringList(gjson.Get(body, "missing_skills")),
	}

	if result.MatchScore < 0 || result.MatchScore > 100 {
		return nil, &MatchServiceError{Message: fmt.Sprintf("match score %v out of range", result.MatchScore)}
	}

	return result, nil
}

func stringList(res gjson.Result) []string {
	arr := res.Array()
	out := make([]string, 0, len(arr))
	for _, v := range arr {
		out = append(out, v.String())
	}
	return out
}
