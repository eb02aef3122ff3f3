package config

import "strings"

// BackendConfig describes the sandboxed execution backend: one endpoint per
// language, the default execution limits, and which languages are dispatched
// through the work queue instead of a direct call.
type BackendConfig struct {
	Endpoints       map[string]string
	QueuedLanguages map[string]bool
	TimeoutSeconds  int
	MemoryLimitMB   int
}

func NewBackendConfig() *BackendConfig {
	endpoints := map[string]string{
		"python":     getEnv("BACKEND_URL_PYTHON", "http://localhost:9000/execute/python"),
		"javascript": getEnv("BACKEND_URL_JAVASCRIPT", "http://localhost:9000/execute/javascript"),
	}

	queued := map[string]bool{}
	for _, language := range strings.Split(getEnv("QUEUED_LANGUAGES", ""), ",") {
		language = strings.TrimSpace(language)
		if language != "" {
			queued[language] = true
		}
	}

	return &BackendConfig{
		Endpoints:       endpoints,
		QueuedLanguages: queued,
		TimeoutSeconds:  getEnvInt("EXECUTION_TIMEOUT_SEC", 10),
		MemoryLimitMB:   getEnvInt("EXECUTION_MEMORY_MB", 128),
	}
}
