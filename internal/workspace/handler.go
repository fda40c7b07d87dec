package workspace

import (
	"encoding/json"
	"net/http"

	"github.com/financas-io/api-financas/internal/auth"
)

type Handler struct {
	Repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

type criarWorkspaceDTO struct {
	Nome string `json:"nome"`
	Tipo string `json:"tipo"`
}

// Criar trata POST /workspaces; o criador vira membro.
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	usuarioID, ok := auth.UsuarioIDDoContexto(r.Context())
	if !ok {
		http.Error(w, "Não autenticado", http.StatusUnauthorized)
		return
	}

	var in criarWorkspaceDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if in.Nome == "" {
		http.Error(w, "O campo 'nome' é obrigatório", http.StatusBadRequest)
		return
	}
	if in.Tipo == "" {
		in.Tipo = TipoPessoal
	}
	if in.Tipo != TipoPessoal && in.Tipo != TipoCompartilhado {
		http.Error(w, "Tipo inválido. Use 'pessoal' ou 'compartilhado'.", http.StatusBadRequest)
		return
	}

	ws := &Workspace{Nome: in.Nome, Tipo: in.Tipo}
	if err := h.Repo.Create(ws, usuarioID); err != nil {
		http.Error(w, "Erro ao criar workspace", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(ws)
}

// Listar trata GET /workspaces e devolve os workspaces do usuário autenticado.
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	usuarioID, ok := auth.UsuarioIDDoContexto(r.Context())
	if !ok {
		http.Error(w, "Não autenticado", http.StatusUnauthorized)
		return
	}

	list, err := h.Repo.ListByUsuario(usuarioID)
	if err != nil {
		http.Error(w, "Erro ao listar workspaces", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}
