package authenticating

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

// HashOwnerPassword valida a força da senha e gera o hash usado em OWNER_PASSWORD_HASH
func HashOwnerPassword(password string) (string, error) {
	if err := ValidatePasswordStrength(password); err != nil {
		return "", errors.Join(ErrWeakPassword, err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	return string(hashed), nil
}

// ValidatePasswordStrength exige ao menos 8 caracteres com maiúscula, minúscula,
// número e símbolo. Todas as regras violadas voltam na mesma mensagem.
func ValidatePasswordStrength(password string) error {
	var hasUpper, hasLower, hasNumber, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasNumber = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}

	var missing []string
	if len([]rune(password)) < minPasswordLength {
		missing = append(missing, fmt.Sprintf("pelo menos %d caracteres", minPasswordLength))
	}
	if !hasUpper {
		missing = append(missing, "uma letra maiúscula")
	}
	if !hasLower {
		missing = append(missing, "uma letra minúscula")
	}
	if !hasNumber {
		missing = append(missing, "um número")
	}
	if !hasSpecial {
		missing = append(missing, "um caractere especial")
	}

	if len(missing) > 0 {
		return fmt.Errorf("a senha deve conter %s", strings.Join(missing, ", "))
	}
	return nil
}
