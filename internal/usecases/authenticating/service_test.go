package authenticating

import (
	"testing"
	"time"

	"github.com/George0Simion/BizzGenie/internal/config"
	"github.com/George0Simion/BizzGenie/pkg/apiErrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const ownerPassword = "Restaurante#2025"

func newTestService(t *testing.T) *Service {
	hash, err := bcrypt.GenerateFromPassword([]byte(ownerPassword), bcrypt.MinCost)
	require.NoError(t, err)

	return &Service{
		cfg: config.Auth{
			Secret:            "segredo-de-teste",
			OwnerEmail:        "Owner@BizzGenie.local",
			OwnerName:         "Maria",
			OwnerPasswordHash: string(hash),
			TokenTTL:          time.Hour,
		},
		now: time.Now,
	}
}

func TestService_LoginUser(t *testing.T) {
	tests := []struct {
		name         string
		email        string
		password     string
		expectedErr  error
		expectedCode string
	}{
		{name: "Login válido", email: " owner@bizzgenie.local ", password: ownerPassword},
		{name: "Email vazio", email: "", password: ownerPassword, expectedErr: ErrMissingRequiredData, expectedCode: apiErrors.ErrMissingRequiredData},
		{name: "Email errado", email: "outro@bizzgenie.local", password: ownerPassword, expectedErr: ErrInvalidCredentials, expectedCode: apiErrors.ErrInvalidCredentials},
		{name: "Senha errada", email: "owner@bizzgenie.local", password: "errada", expectedErr: ErrInvalidCredentials, expectedCode: apiErrors.ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newTestService(t)

			token, err := service.LoginUser(tt.email, tt.password)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				var authErr *AuthError
				require.ErrorAs(t, err, &authErr)
				assert.Equal(t, tt.expectedCode, authErr.Code)
				assert.Empty(t, token)
				return
			}

			require.NoError(t, err)
			claims, err := service.ValidateToken(token)
			require.NoError(t, err)
			assert.Equal(t, "owner@bizzgenie.local", claims.OwnerEmail)
			assert.Equal(t, "Maria", claims.OwnerName)

			profile := service.GetOwnerProfile(claims)
			assert.Equal(t, "owner@bizzgenie.local", profile.Email)
		})
	}
}

func TestService_LoginUser_SemHash(t *testing.T) {
	service := &Service{cfg: config.Auth{OwnerEmail: "owner@bizzgenie.local"}, now: time.Now}

	_, err := service.LoginUser("owner@bizzgenie.local", ownerPassword)

	assert.ErrorIs(t, err, ErrOwnerNotConfigured)
}

func TestService_ValidateToken(t *testing.T) {
	service := newTestService(t)
	token, err := service.LoginUser("owner@bizzgenie.local", ownerPassword)
	require.NoError(t, err)

	t.Run("Token expirado", func(t *testing.T) {
		later := &Service{cfg: service.cfg, now: func() time.Time { return time.Now().Add(2 * time.Hour) }}

		_, err := later.ValidateToken(token)

		assert.ErrorIs(t, err, ErrExpiredToken)
		assert.True(t, IsAuthorizationError(err))
	})

	t.Run("Segredo diferente", func(t *testing.T) {
		other := newTestService(t)
		other.cfg.Secret = "outro-segredo"

		_, err := other.ValidateToken(token)

		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Token malformado", func(t *testing.T) {
		_, err := service.ValidateToken("nao.e.jwt")

		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestHashOwnerPassword(t *testing.T) {
	hash, err := HashOwnerPassword(ownerPassword)
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte(ownerPassword)))

	tests := []struct {
		name     string
		password string
	}{
		{name: "Curta", password: "Ab1!"},
		{name: "Sem maiúscula", password: "restaurante#2025"},
		{name: "Sem minúscula", password: "RESTAURANTE#2025"},
		{name: "Sem número", password: "Restaurante#"},
		{name: "Sem especial", password: "Restaurante2025"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := HashOwnerPassword(tt.password)
			assert.ErrorIs(t, err, ErrWeakPassword)
		})
	}
}

func TestValidatePasswordStrength_ListaTodasAsRegras(t *testing.T) {
	err := ValidatePasswordStrength("abc")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "pelo menos 8 caracteres")
	assert.Contains(t, err.Error(), "uma letra maiúscula")
	assert.Contains(t, err.Error(), "um número")
	assert.Contains(t, err.Error(), "um caractere especial")
	assert.NotContains(t, err.Error(), "minúscula")
}
