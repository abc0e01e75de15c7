package config

import (
	"os"
	"sync"
)

type JWTConfig struct {
	Secret string
}

var (
	jwtConfig *JWTConfig
	jwtOnce   sync.Once
)

func LoadJWTConfig() *JWTConfig {
	jwtOnce.Do(func() {
		jwtConfig = &JWTConfig{
			Secret: os.Getenv("JWT_SECRET"),
		}
	})
	return jwtConfig
}
