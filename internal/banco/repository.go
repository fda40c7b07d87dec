package banco

import "gorm.io/gorm"

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(b *Banco) error {
	return r.DB.Create(b).Error
}

func (r *Repository) FindByID(workspaceID, id string) (*Banco, error) {
	var b Banco
	err := r.DB.Where("workspace_id = ? AND id = ?", workspaceID, id).First(&b).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// ExisteNoWorkspace informa se o banco referenciado pertence ao workspace.
func (r *Repository) ExisteNoWorkspace(workspaceID, id string) (bool, error) {
	var count int64
	err := r.DB.Model(&Banco{}).
		Where("workspace_id = ? AND id = ?", workspaceID, id).
		Count(&count).Error
	return count > 0, err
}

func (r *Repository) ListByWorkspace(workspaceID string) ([]Banco, error) {
	var list []Banco
	err := r.DB.Where("workspace_id = ?", workspaceID).Order("nome ASC").Find(&list).Error
	return list, err
}
