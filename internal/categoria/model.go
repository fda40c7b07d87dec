package categoria

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Categoria classifica lançamentos dentro de um workspace.
type Categoria struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	WorkspaceID string    `gorm:"type:uuid;not null;index" json:"workspaceId"`
	Nome        string    `gorm:"size:120;not null" json:"nome"`
	Icone       string    `gorm:"size:80" json:"icone"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (c *Categoria) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Categoria{})
}
