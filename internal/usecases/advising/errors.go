package advising

import "errors"

var (
	ErrEmptyQuestion      = errors.New("pergunta não pode ser vazia")
	ErrInsightCollection  = errors.New("erro ao coletar insights financeiros")
	ErrAdviceGeneration   = errors.New("erro ao gerar conselho financeiro")
	ErrAdvisorUnavailable = errors.New("assistente financeiro não configurado")
)
