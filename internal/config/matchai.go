package config

import (
	"os"
	"sync"
)

// MatchAIConfig points at the external match-scoring service. BaseURL may be
// empty; the match feature reports a configuration error in that case while the
// rest of the API keeps working.
type MatchAIConfig struct {
	BaseURL string
}

var (
	matchAIConfig *MatchAIConfig
	matchAIOnce   sync.Once
)

func LoadMatchAIConfig() *MatchAIConfig {
	matchAIOnce.Do(func() {
		matchAIConfig = &MatchAIConfig{
			BaseURL: os.Getenv("MATCH_AI_BASE_URL"),
		}
	})
	return matchAIConfig
}
