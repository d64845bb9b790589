package config

import "go.trai.ch/repute/internal/core/ports"

// NewLoaderWithEnv creates a Loader reading overrides from env.
func NewLoaderWithEnv(logger ports.Logger, env map[string]string) *Loader {
	return &Loader{logger: logger, getenv: func(k string) string { return env[k] }}
}
