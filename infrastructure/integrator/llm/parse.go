package llm

import (
	"strings"

	"github.com/George0Simion/BizzGenie/internal/domain"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var ErrEmptySummary = errors.New("resposta do modelo sem summary_markdown")

// extractJSON remove as cercas ``` que alguns modelos insistem em devolver
func extractJSON(content string) string {
	text := strings.TrimSpace(content)

	var inner string
	if parts := strings.SplitN(text, "```json", 2); len(parts) == 2 {
		inner = parts[1]
	} else if parts := strings.SplitN(text, "```", 2); len(parts) == 2 {
		inner = parts[1]
	} else {
		return text
	}

	if idx := strings.Index(inner, "```"); idx >= 0 {
		inner = inner[:idx]
	}

	return strings.TrimSpace(inner)
}

func parseAdvice(content string) (*domain.FinanceAdvice, error) {
	var advice domain.FinanceAdvice
	if err := json.Unmarshal([]byte(extractJSON(content)), &advice); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar conselho do modelo")
	}

	if strings.TrimSpace(advice.SummaryMarkdown) == "" {
		return nil, ErrEmptySummary
	}

	if advice.Actions == nil {
		advice.Actions = []string{}
	}
	if advice.AffectedMetrics == nil {
		advice.AffectedMetrics = []string{}
	}

	return &advice, nil
}
