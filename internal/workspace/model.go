package workspace

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tipos de workspace suportados.
const (
	TipoPessoal       = "pessoal"
	TipoCompartilhado = "compartilhado"
)

// Workspace é a fronteira de agrupamento que possui bancos, categorias,
// métodos de pagamento e lançamentos.
type Workspace struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	Nome      string    `gorm:"size:120;not null" json:"nome"`
	Tipo      string    `gorm:"size:30;not null;default:'pessoal'" json:"tipo"`
	Membros   []Membro  `gorm:"foreignKey:WorkspaceID;constraint:OnDelete:CASCADE" json:"membros"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Membro vincula um usuário a um workspace (pessoal ou compartilhado).
type Membro struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	WorkspaceID string    `gorm:"type:uuid;not null;index:idx_membro_ws_usuario,unique" json:"workspaceId"`
	UsuarioID   string    `gorm:"type:uuid;not null;index:idx_membro_ws_usuario,unique" json:"usuarioId"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (ws *Workspace) BeforeCreate(tx *gorm.DB) error {
	if ws.ID == "" {
		ws.ID = uuid.NewString()
	}
	return nil
}

// Migrate cria as tabelas no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Workspace{}, &Membro{})
}
