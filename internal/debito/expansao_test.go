package debito

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/financas-io/api-financas/internal/metodopagamento"
)

func baseDebito(tipo string, data time.Time) *Debito {
	return &Debito{
		WorkspaceID: "ws-1",
		UsuarioID:   "user-1",
		Descricao:   "Internet",
		Valor:       decimal.NewFromFloat(99.90),
		Data:        data,
		Mes:         NomeMes(data.Month()),
		Ano:         data.Year(),
		Tipo:        tipo,
		Status:      StatusPendente,
	}
}

func ptrInt(v int) *int { return &v }

/* ============================ Ciclo de fatura ============================ */

func metodoCredito(fechamento int) *metodopagamento.MetodoPagamento {
	return &metodopagamento.MetodoPagamento{
		Nome:                "Cartão",
		Tipo:                metodopagamento.TipoCredito,
		DiaFechamentoFatura: ptrInt(fechamento),
	}
}

func TestResolverCicloFaturaSemCredito(t *testing.T) {
	data := time.Date(2025, time.March, 25, 0, 0, 0, 0, time.UTC)

	mes, ano := ResolverCicloFatura(data, nil)
	if mes != "março" || ano != 2025 {
		t.Fatalf("sem método: esperado março/2025, veio %s/%d", mes, ano)
	}

	pix := &metodopagamento.MetodoPagamento{Tipo: metodopagamento.TipoPix}
	mes, ano = ResolverCicloFatura(data, pix)
	if mes != "março" || ano != 2025 {
		t.Fatalf("pix: esperado março/2025, veio %s/%d", mes, ano)
	}

	credSemFechamento := &metodopagamento.MetodoPagamento{Tipo: metodopagamento.TipoCredito}
	mes, ano = ResolverCicloFatura(data, credSemFechamento)
	if mes != "março" || ano != 2025 {
		t.Fatalf("crédito sem fechamento: esperado março/2025, veio %s/%d", mes, ano)
	}
}

func TestResolverCicloFaturaViradaDeMes(t *testing.T) {
	data := time.Date(2025, time.March, 25, 0, 0, 0, 0, time.UTC)
	mes, ano := ResolverCicloFatura(data, metodoCredito(20))
	if mes != "abril" || ano != 2025 {
		t.Fatalf("esperado abril/2025, veio %s/%d", mes, ano)
	}
}

func TestResolverCicloFaturaViradaDeAno(t *testing.T) {
	data := time.Date(2025, time.December, 28, 0, 0, 0, 0, time.UTC)
	mes, ano := ResolverCicloFatura(data, metodoCredito(20))
	if mes != "janeiro" || ano != 2026 {
		t.Fatalf("esperado janeiro/2026, veio %s/%d", mes, ano)
	}
}

func TestResolverCicloFaturaDiaDoFechamentoNaoVira(t *testing.T) {
	data := time.Date(2025, time.March, 20, 0, 0, 0, 0, time.UTC)
	mes, ano := ResolverCicloFatura(data, metodoCredito(20))
	if mes != "março" || ano != 2025 {
		t.Fatalf("dia igual ao fechamento não deve virar: veio %s/%d", mes, ano)
	}
}

/* ================================= Comum ================================= */

func TestExpandirComumGeraUmRegistro(t *testing.T) {
	agora := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)
	base := baseDebito(TipoComum, time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC))

	lote, err := Expandir(base, agora)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if len(lote) != 1 {
		t.Fatalf("esperado 1 registro, veio %d", len(lote))
	}
	d := lote[0]
	if d.ID == "" {
		t.Fatal("registro sem id pré-alocado")
	}
	if d.Mes != "março" || d.Ano != 2025 {
		t.Fatalf("competência esperada março/2025, veio %s/%d", d.Mes, d.Ano)
	}
	if !d.Data.Equal(base.Data) {
		t.Fatalf("Comum deve manter a data informada; veio %v", d.Data)
	}
}

/* ================================== Fixo ================================== */

func TestExpandirFixoAteDezembro(t *testing.T) {
	agora := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)

	casos := []struct {
		inicio    time.Time
		esperados int
	}{
		{time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC), 12},
		{time.Date(2025, time.June, 3, 0, 0, 0, 0, time.UTC), 7},
		{time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC), 1},
	}

	for _, c := range casos {
		base := baseDebito(TipoFixo, c.inicio)
		base.Frequencia = FrequenciaMensal
		inicio := c.inicio
		base.DataInicio = &inicio

		lote, err := Expandir(base, agora)
		if err != nil {
			t.Fatalf("início %v: erro inesperado: %v", c.inicio, err)
		}
		if len(lote) != c.esperados {
			t.Fatalf("início %v: esperado %d registros, veio %d", c.inicio, c.esperados, len(lote))
		}
		for i, d := range lote {
			if d.Data.Day() != 1 {
				t.Fatalf("registro %d não caiu no dia 1: %v", i, d.Data)
			}
			if d.Mes != NomeMes(d.Data.Month()) || d.Ano != d.Data.Year() {
				t.Fatalf("registro %d com mês/ano inconsistentes: %s/%d vs %v", i, d.Mes, d.Ano, d.Data)
			}
		}
		ultimo := lote[len(lote)-1]
		if ultimo.Data.Month() != time.December || ultimo.Ano != 2025 {
			t.Fatalf("janela deve terminar em dezembro/2025, terminou em %s/%d", ultimo.Mes, ultimo.Ano)
		}
	}
}

func TestExpandirFixoInicioEmAnoPassado(t *testing.T) {
	agora := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)
	inicio := time.Date(2024, time.November, 20, 0, 0, 0, 0, time.UTC)

	base := baseDebito(TipoFixo, inicio)
	base.Frequencia = FrequenciaMensal
	base.DataInicio = &inicio

	lote, err := Expandir(base, agora)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	// nov/2024 .. dez/2025
	if len(lote) != 14 {
		t.Fatalf("esperado 14 registros, veio %d", len(lote))
	}
	if lote[0].Mes != "novembro" || lote[0].Ano != 2024 {
		t.Fatalf("primeiro registro esperado novembro/2024, veio %s/%d", lote[0].Mes, lote[0].Ano)
	}
	if lote[13].Mes != "dezembro" || lote[13].Ano != 2025 {
		t.Fatalf("último registro esperado dezembro/2025, veio %s/%d", lote[13].Mes, lote[13].Ano)
	}
}

func TestExpandirFixoSemCamposObrigatorios(t *testing.T) {
	agora := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)
	base := baseDebito(TipoFixo, agora)

	_, err := Expandir(base, agora)
	var ev *ErroValidacao
	if !errors.As(err, &ev) {
		t.Fatalf("esperado ErroValidacao, veio %v", err)
	}
}

func TestExpandirFixoFrequenciaNaoSuportada(t *testing.T) {
	agora := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)
	inicio := agora
	base := baseDebito(TipoFixo, agora)
	base.Frequencia = "weekly"
	base.DataInicio = &inicio

	_, err := Expandir(base, agora)
	var ev *ErroValidacao
	if !errors.As(err, &ev) {
		t.Fatalf("esperado ErroValidacao, veio %v", err)
	}
}

/* =============================== Assinatura =============================== */

func TestExpandirAssinaturaSempreDozeMeses(t *testing.T) {
	agora := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)

	for _, inicio := range []time.Time{
		time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.October, 28, 0, 0, 0, 0, time.UTC),
		time.Date(2023, time.July, 1, 0, 0, 0, 0, time.UTC),
	} {
		base := baseDebito(TipoAssinatura, inicio)
		base.Frequencia = FrequenciaMensal
		ini := inicio
		base.DataInicio = &ini

		lote, err := Expandir(base, agora)
		if err != nil {
			t.Fatalf("início %v: erro inesperado: %v", inicio, err)
		}
		if len(lote) != 12 {
			t.Fatalf("início %v: esperado 12 registros, veio %d", inicio, len(lote))
		}
		esperada := time.Date(inicio.Year(), inicio.Month(), 1, 0, 0, 0, 0, time.UTC)
		for i, d := range lote {
			if !d.Data.Equal(esperada) {
				t.Fatalf("registro %d: data esperada %v, veio %v", i, esperada, d.Data)
			}
			if !d.IsActive || !d.IsTemplate {
				t.Fatalf("registro %d deve sair com isActive e isTemplate", i)
			}
			esperada = esperada.AddDate(0, 1, 0)
		}
	}
}

/* ============================== Parcelamento ============================== */

func TestExpandirParcelamentoVinculaPlano(t *testing.T) {
	agora := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)
	inicio := time.Date(2025, time.November, 12, 0, 0, 0, 0, time.UTC)

	base := baseDebito(TipoParcelamento, inicio)
	base.Descricao = "Notebook"
	base.DataInicio = &inicio
	base.TotalParcelas = 3
	base.ParcelaAtual = 1

	lote, err := Expandir(base, agora)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if len(lote) != 3 {
		t.Fatalf("esperado 3 parcelas, veio %d", len(lote))
	}

	origem := lote[0].DebitoOriginalID
	if origem == "" || origem != lote[0].ID {
		t.Fatalf("originalDebitId deve ser o id da primeira parcela; id=%s origem=%s", lote[0].ID, origem)
	}
	for i, p := range lote {
		if p.DebitoOriginalID != origem {
			t.Fatalf("parcela %d com origem divergente: %s", i+1, p.DebitoOriginalID)
		}
		if p.ParcelaAtual != i+1 || p.TotalParcelas != 3 {
			t.Fatalf("parcela %d com numeração errada: %d/%d", i+1, p.ParcelaAtual, p.TotalParcelas)
		}
		esperada := fmt.Sprintf("Parcela %d/3 - Notebook", i+1)
		if p.Descricao != esperada {
			t.Fatalf("descrição esperada %q, veio %q", esperada, p.Descricao)
		}
		if p.Data.Day() != 1 {
			t.Fatalf("parcela %d não caiu no dia 1: %v", i+1, p.Data)
		}
	}
	// nov/2025, dez/2025, jan/2026
	if lote[2].Mes != "janeiro" || lote[2].Ano != 2026 {
		t.Fatalf("terceira parcela esperada janeiro/2026, veio %s/%d", lote[2].Mes, lote[2].Ano)
	}
}

func TestExpandirParcelamentoRejeitaParcelaAtualDiferenteDeUm(t *testing.T) {
	agora := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)
	inicio := agora

	base := baseDebito(TipoParcelamento, inicio)
	base.DataInicio = &inicio
	base.TotalParcelas = 5
	base.ParcelaAtual = 2

	_, err := Expandir(base, agora)
	var ev *ErroValidacao
	if !errors.As(err, &ev) {
		t.Fatalf("esperado ErroValidacao, veio %v", err)
	}
}

func TestExpandirParcelamentoSemCamposObrigatorios(t *testing.T) {
	agora := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)
	base := baseDebito(TipoParcelamento, agora)

	_, err := Expandir(base, agora)
	var ev *ErroValidacao
	if !errors.As(err, &ev) {
		t.Fatalf("esperado ErroValidacao, veio %v", err)
	}
}

/* ============================ Lote compartilhado ============================ */

func TestExpandirLoteCompartilhaAtributosBase(t *testing.T) {
	agora := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)
	inicio := time.Date(2025, time.August, 9, 0, 0, 0, 0, time.UTC)
	bancoID := "banco-1"

	base := baseDebito(TipoFixo, inicio)
	base.Frequencia = FrequenciaMensal
	base.DataInicio = &inicio
	base.BancoID = &bancoID

	lote, err := Expandir(base, agora)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	vistos := map[string]bool{}
	for i, d := range lote {
		if d.Descricao != base.Descricao || !d.Valor.Equal(base.Valor) {
			t.Fatalf("registro %d divergiu dos atributos base", i)
		}
		if d.BancoID == nil || *d.BancoID != bancoID {
			t.Fatalf("registro %d perdeu a referência de banco", i)
		}
		if d.WorkspaceID != base.WorkspaceID || d.UsuarioID != base.UsuarioID {
			t.Fatalf("registro %d perdeu a posse", i)
		}
		if vistos[d.ID] {
			t.Fatalf("id repetido no lote: %s", d.ID)
		}
		vistos[d.ID] = true
	}
}

// A criação não é idempotente: o mesmo payload expandido duas vezes produz
// lotes independentes, com ids distintos.
func TestExpandirNaoDeduplica(t *testing.T) {
	agora := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)
	base := baseDebito(TipoComum, agora)

	a, err := Expandir(base, agora)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	b, err := Expandir(base, agora)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if a[0].ID == b[0].ID {
		t.Fatal("expansões independentes não podem compartilhar id")
	}
}
