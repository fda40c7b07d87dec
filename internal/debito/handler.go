package debito

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/financas-io/api-financas/internal/auth"
	"github.com/financas-io/api-financas/internal/metodopagamento"
)

/* ========================= Colaboradores do handler ========================= */

// Gravador é a porta de persistência do lote de débitos. A gravação é
// atômica: ou todos os registros da expansão entram, ou nenhum.
type Gravador interface {
	CriarLote(debitos []*Debito) error
	ListarPorWorkspace(workspaceID string) ([]Debito, error)
}

// VerificadorMembro responde se o usuário pertence ao workspace.
type VerificadorMembro interface {
	EhMembro(workspaceID, usuarioID string) (bool, error)
}

// VerificadorReferencia responde se uma referência (banco, categoria)
// existe no workspace.
type VerificadorReferencia interface {
	ExisteNoWorkspace(workspaceID, id string) (bool, error)
}

// BuscadorMetodoPagamento resolve o método de pagamento usado na atribuição
// de ciclo de fatura. Deve retornar gorm.ErrRecordNotFound para referência
// inexistente.
type BuscadorMetodoPagamento interface {
	BuscarPorID(workspaceID, id string) (*metodopagamento.MetodoPagamento, error)
}

/* ================================= Handler ================================= */

type Handler struct {
	Debitos    Gravador
	Membros    VerificadorMembro
	Bancos     VerificadorReferencia
	Categorias VerificadorReferencia
	Metodos    BuscadorMetodoPagamento

	// ReferenciaEstrita faz um paymentMethodId inexistente virar 404 em vez
	// do fallback silencioso para a competência da própria data.
	ReferenciaEstrita bool

	// Agora é o relógio injetado que ancora o horizonte de expansão do Fixo.
	Agora func() time.Time
}

func NewHandler(debitos Gravador, membros VerificadorMembro, bancos, categorias VerificadorReferencia, metodos BuscadorMetodoPagamento) *Handler {
	return &Handler{
		Debitos:    debitos,
		Membros:    membros,
		Bancos:     bancos,
		Categorias: categorias,
		Metodos:    metodos,
		Agora:      time.Now,
	}
}

type criarDebitoResposta struct {
	Message         string `json:"message"`
	Count           int    `json:"count,omitempty"`
	DebitID         string `json:"debitId,omitempty"`
	OriginalDebitID string `json:"originalDebitId,omitempty"`
}

func responderJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func responderMensagem(w http.ResponseWriter, status int, msg string) {
	responderJSON(w, status, map[string]string{"message": msg})
}

// Criar trata POST /workspaces/{workspaceId}/debitos.
// Fluxo: autenticação → associação ao workspace → validação → checagem de
// referências → expansão → gravação atômica do lote.
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	usuarioID, ok := auth.UsuarioIDDoContexto(r.Context())
	if !ok {
		responderMensagem(w, http.StatusUnauthorized, "Não autenticado")
		return
	}
	workspaceID := mux.Vars(r)["workspaceId"]

	membro, err := h.Membros.EhMembro(workspaceID, usuarioID)
	if err != nil {
		responderMensagem(w, http.StatusInternalServerError, "Erro ao verificar associação ao workspace")
		return
	}
	if !membro {
		responderMensagem(w, http.StatusForbidden, "Usuário não é membro do workspace")
		return
	}

	var in CriarDebitoDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		responderMensagem(w, http.StatusBadRequest, "JSON mal formado")
		return
	}
	defer r.Body.Close()

	base, err := in.ParaDebito(workspaceID, usuarioID)
	if err != nil {
		responderErroDominio(w, err)
		return
	}

	if err := h.verificarReferencias(workspaceID, base); err != nil {
		responderErroDominio(w, err)
		return
	}

	if base.Tipo == TipoComum && base.MetodoPagamentoID != nil {
		metodo, err := h.resolverMetodo(workspaceID, *base.MetodoPagamentoID)
		if err != nil {
			responderErroDominio(w, err)
			return
		}
		base.Mes, base.Ano = ResolverCicloFatura(base.Data, metodo)
	}

	lote, err := Expandir(base, h.Agora())
	if err != nil {
		responderErroDominio(w, err)
		return
	}

	if err := h.Debitos.CriarLote(lote); err != nil {
		responderMensagem(w, http.StatusInternalServerError, "Erro interno do servidor ao criar débito")
		return
	}

	resp := criarDebitoResposta{Message: "Débito criado com sucesso!"}
	switch base.Tipo {
	case TipoComum:
		resp.DebitID = lote[0].ID
	case TipoFixo, TipoAssinatura:
		resp.Count = len(lote)
	case TipoParcelamento:
		resp.Count = len(lote)
		resp.OriginalDebitID = lote[0].DebitoOriginalID
	}
	responderJSON(w, http.StatusCreated, resp)
}

// Listar trata GET /workspaces/{workspaceId}/debitos.
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	usuarioID, ok := auth.UsuarioIDDoContexto(r.Context())
	if !ok {
		responderMensagem(w, http.StatusUnauthorized, "Não autenticado")
		return
	}
	workspaceID := mux.Vars(r)["workspaceId"]

	membro, err := h.Membros.EhMembro(workspaceID, usuarioID)
	if err != nil {
		responderMensagem(w, http.StatusInternalServerError, "Erro ao verificar associação ao workspace")
		return
	}
	if !membro {
		responderMensagem(w, http.StatusForbidden, "Usuário não é membro do workspace")
		return
	}

	debitos, err := h.Debitos.ListarPorWorkspace(workspaceID)
	if err != nil {
		responderMensagem(w, http.StatusInternalServerError, "Erro interno do servidor ao listar débitos")
		return
	}
	responderJSON(w, http.StatusOK, debitos)
}

/* ============================ Regras auxiliares ============================ */

// verificarReferencias confere bankId/categoryId antes de qualquer expansão.
func (h *Handler) verificarReferencias(workspaceID string, base *Debito) error {
	if base.BancoID != nil {
		ok, err := h.Bancos.ExisteNoWorkspace(workspaceID, *base.BancoID)
		if err != nil {
			return err
		}
		if !ok {
			return &ErroReferenciaNaoEncontrada{Recurso: "Banco", ID: *base.BancoID}
		}
	}
	if base.CategoriaID != nil {
		ok, err := h.Categorias.ExisteNoWorkspace(workspaceID, *base.CategoriaID)
		if err != nil {
			return err
		}
		if !ok {
			return &ErroReferenciaNaoEncontrada{Recurso: "Categoria", ID: *base.CategoriaID}
		}
	}
	return nil
}

// resolverMetodo busca o método de pagamento para a atribuição de ciclo.
// No modo leniente, referência ausente degrada para "sem ciclo especial".
func (h *Handler) resolverMetodo(workspaceID, id string) (*metodopagamento.MetodoPagamento, error) {
	metodo, err := h.Metodos.BuscarPorID(workspaceID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if h.ReferenciaEstrita {
				return nil, &ErroReferenciaNaoEncontrada{Recurso: "Método de pagamento", ID: id}
			}
			return nil, nil
		}
		return nil, err
	}
	return metodo, nil
}

func responderErroDominio(w http.ResponseWriter, err error) {
	var ev *ErroValidacao
	if errors.As(err, &ev) {
		responderMensagem(w, http.StatusBadRequest, ev.Motivo)
		return
	}
	var er *ErroReferenciaNaoEncontrada
	if errors.As(err, &er) {
		responderMensagem(w, http.StatusNotFound, er.Error())
		return
	}
	responderMensagem(w, http.StatusInternalServerError, "Erro interno do servidor ao criar débito")
}
