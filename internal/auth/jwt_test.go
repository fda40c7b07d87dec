package auth

import (
	"os"
	"testing"
)

func TestGerarEValidarToken(t *testing.T) {
	os.Setenv("JWT_SECRET", "segredo-de-teste")

	token, err := GerarToken("user-1")
	if err != nil {
		t.Fatalf("erro ao gerar token: %v", err)
	}

	claims, err := ValidarToken(token)
	if err != nil {
		t.Fatalf("erro ao validar token: %v", err)
	}
	if claims.UsuarioID != "user-1" {
		t.Fatalf("usuarioId esperado user-1, veio %q", claims.UsuarioID)
	}
}

func TestValidarTokenAdulterado(t *testing.T) {
	os.Setenv("JWT_SECRET", "segredo-de-teste")

	token, err := GerarToken("user-1")
	if err != nil {
		t.Fatalf("erro ao gerar token: %v", err)
	}

	if _, err := ValidarToken(token + "x"); err == nil {
		t.Fatal("token adulterado não pode validar")
	}
}

func TestGerarTokenSemSegredo(t *testing.T) {
	os.Unsetenv("JWT_SECRET")
	if _, err := GerarToken("user-1"); err == nil {
		t.Fatal("esperado erro sem JWT_SECRET")
	}
}
