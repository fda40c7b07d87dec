package usuario

import (
	"encoding/json"
	"net/http"

	"github.com/financas-io/api-financas/internal/auth"
	"github.com/financas-io/api-financas/internal/utils"
)

type Handler struct {
	Repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

type loginDTO struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

// Login trata POST /login e emite o token de acesso.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var in loginDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if in.Email == "" || in.Senha == "" {
		http.Error(w, "Email e senha são obrigatórios", http.StatusBadRequest)
		return
	}

	u, err := h.Repo.FindByEmail(in.Email)
	if err != nil {
		http.Error(w, "Credenciais inválidas", http.StatusUnauthorized)
		return
	}
	if !utils.VerificarSenha(u.Senha, in.Senha) {
		http.Error(w, "Credenciais inválidas", http.StatusUnauthorized)
		return
	}

	token, err := auth.GerarToken(u.ID)
	if err != nil {
		http.Error(w, "Erro ao gerar token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"token": token})
}
