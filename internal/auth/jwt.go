package auth

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims do token de acesso.
type Claims struct {
	UsuarioID string `json:"usuarioId"`
	jwt.RegisteredClaims
}

// Tempo de vida do access token
const AccessTTL = 24 * time.Hour

func chaveJWT() ([]byte, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, errors.New("JWT_SECRET não definida")
	}
	return []byte(secret), nil
}

// GerarToken gera um JWT HS256 com validade de 24h
func GerarToken(usuarioID string) (string, error) {
	chave, err := chaveJWT()
	if err != nil {
		return "", err
	}
	now := time.Now()
	claims := &Claims{
		UsuarioID: usuarioID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   usuarioID,
			ExpiresAt: jwt.NewNumericDate(now.Add(AccessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(chave)
}

// ValidarToken valida o token e retorna as claims
func ValidarToken(tokenStr string) (*Claims, error) {
	chave, err := chaveJWT()
	if err != nil {
		return nil, err
	}
	parser := jwt.NewParser(jwt.WithValidMethods([]string{"HS256"}))
	token, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return chave, nil
	})
	if err != nil {
		return nil, fmt.Errorf("token inválido ou expirado: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("token inválido")
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, errors.New("não foi possível extrair claims")
	}
	return claims, nil
}
