package debito

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// CriarDebitoDTO é o corpo de POST /workspaces/{workspaceId}/debitos.
// Datas chegam como strings ISO-8601 (RFC 3339).
type CriarDebitoDTO struct {
	Descricao         string          `json:"description"`
	Valor             decimal.Decimal `json:"value"`
	Data              string          `json:"date"`
	Tipo              string          `json:"type"`
	BancoID           *string         `json:"bankId"`
	MetodoPagamentoID *string         `json:"paymentMethodId"`
	CategoriaID       *string         `json:"categoryId"`
	ComprovanteURL    *string         `json:"proofUrl"`
	Frequencia        *string         `json:"frequency"`
	DataInicio        *string         `json:"startDate"`
	DataFim           *string         `json:"endDate"`
	TotalParcelas     *int            `json:"totalInstallments"`
	ParcelaAtual      *int            `json:"currentInstallment"`
}

func parseData(campo, valor string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, valor)
	if err != nil {
		return time.Time{}, novoErroValidacao("Campo '%s' não é uma data ISO-8601 válida.", campo)
	}
	return t, nil
}

// ParaDebito valida os campos base e monta o registro modelo a partir do qual
// a expansão gera o lote. Validações específicas de cada tipo ficam na
// estratégia de expansão.
func (in *CriarDebitoDTO) ParaDebito(workspaceID, usuarioID string) (*Debito, error) {
	descricao := strings.TrimSpace(in.Descricao)
	if descricao == "" {
		return nil, novoErroValidacao("O campo 'description' é obrigatório.")
	}
	if !in.Valor.IsPositive() {
		return nil, novoErroValidacao("O campo 'value' deve ser maior que zero.")
	}
	switch in.Tipo {
	case TipoComum, TipoFixo, TipoAssinatura, TipoParcelamento:
	default:
		return nil, novoErroValidacao("Tipo de débito inválido: %q.", in.Tipo)
	}
	if in.Data == "" {
		return nil, novoErroValidacao("O campo 'date' é obrigatório.")
	}
	data, err := parseData("date", in.Data)
	if err != nil {
		return nil, err
	}

	d := &Debito{
		WorkspaceID:       workspaceID,
		UsuarioID:         usuarioID,
		Descricao:         descricao,
		Valor:             in.Valor,
		Data:              data,
		Mes:               NomeMes(data.Month()),
		Ano:               data.Year(),
		Tipo:              in.Tipo,
		BancoID:           in.BancoID,
		MetodoPagamentoID: in.MetodoPagamentoID,
		CategoriaID:       in.CategoriaID,
		ComprovanteURL:    in.ComprovanteURL,
		Status:            StatusPendente,
	}

	if in.Frequencia != nil {
		d.Frequencia = *in.Frequencia
	}
	if in.DataInicio != nil {
		inicio, err := parseData("startDate", *in.DataInicio)
		if err != nil {
			return nil, err
		}
		d.DataInicio = &inicio
	}
	if in.DataFim != nil {
		fim, err := parseData("endDate", *in.DataFim)
		if err != nil {
			return nil, err
		}
		d.DataFim = &fim
	}
	if in.TotalParcelas != nil {
		d.TotalParcelas = *in.TotalParcelas
	}
	if in.ParcelaAtual != nil {
		d.ParcelaAtual = *in.ParcelaAtual
	}
	return d, nil
}
