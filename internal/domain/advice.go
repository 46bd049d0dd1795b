package domain

// FinanceAdvice é a resposta estruturada do assistente financeiro
type FinanceAdvice struct {
	SummaryMarkdown string   `json:"summary_markdown"`
	Actions         []string `json:"actions"`
	AffectedMetrics []string `json:"affected_metrics"`
}

type FinanceCheckReport struct {
	Date     Date           `json:"date"`
	Insights []*Insight     `json:"insights"`
	Advice   *FinanceAdvice `json:"advice"`
}

type FinanceAnswer struct {
	Question string         `json:"question"`
	Insights []*Insight     `json:"insights"`
	Advice   *FinanceAdvice `json:"advice"`
}
