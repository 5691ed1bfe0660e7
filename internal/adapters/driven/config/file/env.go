package file

import (
	"strconv"
	"strings"

	"github.com/DiengWinz/acl-chatbot-api/internal/logger"
)

type envKind int

const (
	envString envKind = iota
	envInt
	envFloat
	envList
)

// EnvBinding maps an environment variable onto a config key.
type EnvBinding struct {
	Name string
	Key  string
	kind envKind
}

// EnvBindings lists the recognised environment variables.
var EnvBindings = []EnvBinding{
	{"GROQ_API_KEY", "llm.api_key", envString},
	{"GROQ_MODEL", "llm.model", envString},
	{"GROQ_BASE_URL", "llm.base_url", envString},
	{"LLM_MAX_TOKENS", "llm.max_tokens", envInt},
	{"LLM_TEMPERATURE", "llm.temperature", envFloat},
	{"LLM_REQUESTS_PER_MINUTE", "llm.requests_per_minute", envInt},
	{"LLM_TIMEOUT_SECONDS", "llm.timeout_seconds", envInt},
	{"API_KEYS", "server.api_keys", envList},
	{"PORT", "server.port", envInt},
	{"KNOWLEDGE_BASE_DIR", "rag.knowledge_base_dir", envString},
	{"CHUNK_SIZE", "rag.chunk_size", envInt},
	{"CHUNK_OVERLAP", "rag.chunk_overlap", envInt},
	{"TOP_K_RESULTS", "rag.top_k_results", envInt},
	{"MAX_HISTORY_LENGTH", "session.max_history_length", envInt},
	{"SESSION_TTL_MINUTES", "session.ttl_minutes", envInt},
	{"SWEEP_INTERVAL_MINUTES", "session.sweep_interval_minutes", envInt},
	{"ENVIRONMENT", "app.environment", envString},
	{"PROMPT_DIR", "llm.prompt_dir", envString},
}

// applyEnv overrides data with every bound variable that lookup finds.
// Values that do not parse are ignored with a warning.
func applyEnv(data map[string]any, lookup func(string) (string, bool)) {
	for _, b := range EnvBindings {
		raw, ok := lookup(b.Name)
		if !ok {
			continue
		}
		raw = strings.TrimSpace(raw)
		switch b.kind {
		case envString:
			data[b.Key] = raw
		case envInt:
			n, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				logger.Warn("ignoring %s=%q: not an integer", b.Name, raw)
				continue
			}
			data[b.Key] = n
		case envFloat:
			f, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				logger.Warn("ignoring %s=%q: not a number", b.Name, raw)
				continue
			}
			data[b.Key] = f
		case envList:
			data[b.Key] = splitList(raw)
		}
	}
}

// splitList splits a comma separated value, trimming items and dropping
// empty ones.
func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
