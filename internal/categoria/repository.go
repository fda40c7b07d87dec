package categoria

import "gorm.io/gorm"

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(c *Categoria) error {
	return r.DB.Create(c).Error
}

func (r *Repository) FindByID(workspaceID, id string) (*Categoria, error) {
	var c Categoria
	err := r.DB.Where("workspace_id = ? AND id = ?", workspaceID, id).First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ExisteNoWorkspace informa se a categoria referenciada pertence ao workspace.
func (r *Repository) ExisteNoWorkspace(workspaceID, id string) (bool, error) {
	var count int64
	err := r.DB.Model(&Categoria{}).
		Where("workspace_id = ? AND id = ?", workspaceID, id).
		Count(&count).Error
	return count > 0, err
}

func (r *Repository) ListByWorkspace(workspaceID string) ([]Categoria, error) {
	var list []Categoria
	err := r.DB.Where("workspace_id = ?", workspaceID).Order("nome ASC").Find(&list).Error
	return list, err
}
