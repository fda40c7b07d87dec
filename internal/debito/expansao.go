package debito

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/financas-io/api-financas/internal/metodopagamento"
)

// Quantidade fixa de ocorrências geradas para uma assinatura.
const ocorrenciasAssinatura = 12

// PoliticaRecorrencia materializa uma definição de débito recorrente em
// ocorrências mensais concretas. "agora" delimita o horizonte de geração e é
// recebido explicitamente para manter a expansão pura e testável.
type PoliticaRecorrencia interface {
	Expandir(base *Debito, agora time.Time) ([]*Debito, error)
}

// Expandir aplica a estratégia do tipo do débito e devolve o lote a
// persistir. Nenhum registro é montado se a validação do tipo falhar.
func Expandir(base *Debito, agora time.Time) ([]*Debito, error) {
	switch base.Tipo {
	case TipoComum:
		unico := clonar(base)
		unico.ID = uuid.NewString()
		return []*Debito{unico}, nil
	case TipoFixo:
		return RecorrenciaFixa{}.Expandir(base, agora)
	case TipoAssinatura:
		return RecorrenciaAssinatura{}.Expandir(base, agora)
	case TipoParcelamento:
		return ExpandirParcelamento(base)
	default:
		return nil, novoErroValidacao("Tipo de débito inválido: %q.", base.Tipo)
	}
}

// ResolverCicloFatura decide a competência (mês/ano) de uma compra no crédito.
// Compras após o dia de fechamento da fatura pertencem ao mês seguinte; no
// dia do fechamento ainda contam para o mês corrente. Métodos que não são de
// crédito, ou sem dia de fechamento, mantêm a competência da data.
func ResolverCicloFatura(data time.Time, metodo *metodopagamento.MetodoPagamento) (mes string, ano int) {
	mes, ano = NomeMes(data.Month()), data.Year()
	if metodo == nil || metodo.Tipo != metodopagamento.TipoCredito || metodo.DiaFechamentoFatura == nil {
		return mes, ano
	}
	if data.Day() > *metodo.DiaFechamentoFatura {
		proximo := time.Date(data.Year(), data.Month()+1, 1, 0, 0, 0, 0, data.Location())
		return NomeMes(proximo.Month()), proximo.Year()
	}
	return mes, ano
}

// RecorrenciaFixa gera uma ocorrência por mês, do mês de início (dia fixado
// em 1) até dezembro do ano corrente, inclusive. O horizonte é limitado de
// propósito: a regeneração para anos seguintes fica fora do fluxo de criação.
type RecorrenciaFixa struct{}

func (RecorrenciaFixa) Expandir(base *Debito, agora time.Time) ([]*Debito, error) {
	if err := validarRecorrencia(base); err != nil {
		return nil, err
	}

	inicio := primeiroDiaDoMes(*base.DataInicio)
	fim := time.Date(agora.Year(), time.December, 1, 0, 0, 0, 0, inicio.Location())
	if inicio.After(fim) {
		return nil, novoErroValidacao("Data de início posterior a dezembro do ano corrente não gera ocorrências.")
	}

	var lote []*Debito
	for d := inicio; !d.After(fim); d = d.AddDate(0, 1, 0) {
		oc := clonar(base)
		oc.ID = uuid.NewString()
		oc.Data = d
		oc.Mes = NomeMes(d.Month())
		oc.Ano = d.Year()
		lote = append(lote, oc)
	}
	return lote, nil
}

// RecorrenciaAssinatura gera exatamente 12 ocorrências mensais consecutivas a
// partir do mês de início, independentemente do ano corrente. Toda ocorrência
// sai marcada como ativa e como registro-modelo da assinatura.
type RecorrenciaAssinatura struct{}

func (RecorrenciaAssinatura) Expandir(base *Debito, _ time.Time) ([]*Debito, error) {
	if err := validarRecorrencia(base); err != nil {
		return nil, err
	}

	inicio := primeiroDiaDoMes(*base.DataInicio)
	lote := make([]*Debito, 0, ocorrenciasAssinatura)
	for i := 0; i < ocorrenciasAssinatura; i++ {
		d := inicio.AddDate(0, i, 0)
		oc := clonar(base)
		oc.ID = uuid.NewString()
		oc.Data = d
		oc.Mes = NomeMes(d.Month())
		oc.Ano = d.Year()
		oc.IsActive = true
		oc.IsTemplate = true
		lote = append(lote, oc)
	}
	return lote, nil
}

// ExpandirParcelamento gera exatamente TotalParcelas registros mensais
// consecutivos. Todos compartilham o DebitoOriginalID, que é o id pré-alocado
// da primeira parcela (inclusive nela mesma), de modo que o vínculo do plano
// nasce junto com o lote e não depende de leitura após a gravação.
func ExpandirParcelamento(base *Debito) ([]*Debito, error) {
	if base.DataInicio == nil || base.TotalParcelas == 0 || base.ParcelaAtual == 0 {
		return nil, novoErroValidacao("Data de Início, Total de Parcelas e Parcela Atual são obrigatórios para débito Parcelamento.")
	}
	if base.TotalParcelas < 1 {
		return nil, novoErroValidacao("O campo 'totalInstallments' deve ser maior que zero.")
	}
	if base.ParcelaAtual != 1 {
		return nil, novoErroValidacao("Ao criar um parcelamento, a parcela atual deve ser 1.")
	}

	inicio := primeiroDiaDoMes(*base.DataInicio)
	origemID := uuid.NewString()

	lote := make([]*Debito, 0, base.TotalParcelas)
	for i := 1; i <= base.TotalParcelas; i++ {
		d := inicio.AddDate(0, i-1, 0)
		p := clonar(base)
		if i == 1 {
			p.ID = origemID
		} else {
			p.ID = uuid.NewString()
		}
		p.Data = d
		p.Mes = NomeMes(d.Month())
		p.Ano = d.Year()
		p.Descricao = fmt.Sprintf("Parcela %d/%d - %s", i, base.TotalParcelas, base.Descricao)
		p.ParcelaAtual = i
		p.DebitoOriginalID = origemID
		lote = append(lote, p)
	}
	return lote, nil
}

func validarRecorrencia(base *Debito) error {
	if base.Frequencia == "" || base.DataInicio == nil {
		return novoErroValidacao("Frequência e Data de Início são obrigatórios para débito %s.", base.Tipo)
	}
	if base.Frequencia != FrequenciaMensal {
		return novoErroValidacao("Frequência %q não suportada; use %q.", base.Frequencia, FrequenciaMensal)
	}
	return nil
}

func primeiroDiaDoMes(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func clonar(base *Debito) *Debito {
	c := *base
	return &c
}
