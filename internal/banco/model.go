package banco

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Banco é uma conta bancária referenciada por lançamentos do workspace.
type Banco struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	WorkspaceID string    `gorm:"type:uuid;not null;index" json:"workspaceId"`
	Nome        string    `gorm:"size:120;not null" json:"nome"`
	Codigo      string    `gorm:"size:10" json:"codigo"`
	IconURL     string    `gorm:"size:255" json:"iconUrl"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (b *Banco) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Banco{})
}
