package metodopagamento

import "gorm.io/gorm"

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(m *MetodoPagamento) error {
	return r.DB.Create(m).Error
}

// BuscarPorID busca um método de pagamento do workspace.
// Retorna gorm.ErrRecordNotFound se a referência não existir.
func (r *Repository) BuscarPorID(workspaceID, id string) (*MetodoPagamento, error) {
	var m MetodoPagamento
	err := r.DB.Where("workspace_id = ? AND id = ?", workspaceID, id).First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *Repository) ListByWorkspace(workspaceID string) ([]MetodoPagamento, error) {
	var list []MetodoPagamento
	err := r.DB.Where("workspace_id = ?", workspaceID).Order("nome ASC").Find(&list).Error
	return list, err
}
