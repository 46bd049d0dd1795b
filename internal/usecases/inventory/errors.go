package inventory

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidQuantity    = errors.New("quantidade deve ser maior que zero")
	ErrQuantityPrecision  = errors.New("quantidade aceita no máximo 3 casas decimais")
	ErrMissingProductName = errors.New("nome do produto é obrigatório")
	ErrDatabaseOperation  = errors.New("erro ao realizar operação no banco de dados")
)

// InventoryError é um erro com contexto adicional para o estoque
type InventoryError struct {
	Err         error  // Erro base
	Code        string // Código de erro para API
	ProductName string // Produto envolvido (quando aplicável)
	Details     string // Detalhes adicionais
}

func (e *InventoryError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *InventoryError) Unwrap() error {
	return e.Err
}

func NewInventoryError(err error, code string, productName string, details string) *InventoryError {
	return &InventoryError{
		Err:         err,
		Code:        code,
		ProductName: productName,
		Details:     details,
	}
}

// IsValidationError indica erros causados pela entrada do usuário
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidQuantity) ||
		errors.Is(err, ErrQuantityPrecision) ||
		errors.Is(err, ErrMissingProductName)
}
