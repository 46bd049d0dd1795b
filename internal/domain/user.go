package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// Owner é o dono do restaurante, única conta com acesso ao back office
type Owner struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type Claims struct {
	OwnerEmail string `json:"owner_email"`
	OwnerName  string `json:"owner_name"`
	jwt.RegisteredClaims
}
