package metodopagamento

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tipos de método de pagamento aceitos.
const (
	TipoCredito = "Crédito"
	TipoDebito  = "Débito"
	TipoPix     = "Pix"
	TipoConta   = "Conta"
)

// MetodoPagamento representa a forma de pagamento de um lançamento.
// Métodos de crédito carregam o dia de fechamento da fatura, usado para
// atribuir compras à competência correta.
type MetodoPagamento struct {
	ID                  string    `gorm:"type:uuid;primaryKey" json:"id"`
	WorkspaceID         string    `gorm:"type:uuid;not null;index" json:"workspaceId"`
	Nome                string    `gorm:"size:120;not null" json:"nome"`
	Tipo                string    `gorm:"size:30;not null" json:"tipo"`
	DiaFechamentoFatura *int      `json:"invoiceClosingDay"`
	DiaVencimentoFatura *int      `json:"invoiceDueDate"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

func (m *MetodoPagamento) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&MetodoPagamento{})
}
