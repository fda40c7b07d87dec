package usuario

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Usuario é a identidade autenticada dona dos registros que cria.
type Usuario struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	Nome      string    `gorm:"size:120;not null" json:"nome"`
	Email     string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Senha     string    `gorm:"size:255;not null" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (u *Usuario) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Usuario{})
}
