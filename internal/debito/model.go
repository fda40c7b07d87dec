package debito

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Tipos de débito suportados.
const (
	TipoComum        = "Comum"
	TipoFixo         = "Fixo"
	TipoAssinatura   = "Assinatura"
	TipoParcelamento = "Parcelamento"
)

// FrequenciaMensal é a única frequência de recorrência suportada.
const FrequenciaMensal = "monthly"

// StatusPendente é o status inicial de todo débito criado.
const StatusPendente = "pending"

// Debito é um lançamento de despesa: uma transação avulsa ou uma ocorrência
// de um plano recorrente/parcelado. Os nomes de campo JSON seguem o contrato
// público da API.
type Debito struct {
	ID          string          `gorm:"type:uuid;primaryKey" json:"id"`
	WorkspaceID string          `gorm:"type:uuid;not null;index" json:"workspaceId"`
	UsuarioID   string          `gorm:"type:uuid;not null" json:"userId"`
	Descricao   string          `gorm:"size:255;not null" json:"description"`
	Valor       decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"value"`
	Data        time.Time       `gorm:"not null;index" json:"date"`
	Mes         string          `gorm:"size:20;not null" json:"month"`
	Ano         int             `gorm:"not null" json:"year"`
	Tipo        string          `gorm:"size:30;not null" json:"type"`

	BancoID           *string `gorm:"type:uuid" json:"bankId"`
	MetodoPagamentoID *string `gorm:"type:uuid" json:"paymentMethodId"`
	CategoriaID       *string `gorm:"type:uuid" json:"categoryId"`
	ComprovanteURL    *string `gorm:"size:512" json:"proofUrl"`

	Status string `gorm:"size:30;not null;default:'pending';index" json:"status"`

	// Campos de recorrência (Fixo/Assinatura).
	IsTemplate bool       `json:"isTemplate"`
	Frequencia string     `gorm:"size:20" json:"frequency,omitempty"`
	DataInicio *time.Time `json:"startDate"`
	DataFim    *time.Time `json:"endDate"`
	IsActive   bool       `json:"isActive"`

	// Campos de parcelamento.
	TotalParcelas    int    `json:"totalInstallments,omitempty"`
	ParcelaAtual     int    `json:"currentInstallment,omitempty"`
	DebitoOriginalID string `gorm:"type:uuid;index" json:"originalDebitId,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (d *Debito) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Debito{})
}

// Nomes de mês em pt-BR, na forma armazenada nos registros.
var mesesPtBR = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// NomeMes devolve o nome do mês em pt-BR (minúsculo), como gravado em Mes.
func NomeMes(m time.Month) string {
	return mesesPtBR[m-1]
}
