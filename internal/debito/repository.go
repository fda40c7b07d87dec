package debito

import "gorm.io/gorm"

// Repository encapsula o acesso a dados de débitos.
type Repository struct {
	DB *gorm.DB
}

// NewRepository instancia um novo repositório.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// WithDB retorna uma cópia do repo usando um *gorm.DB específico (ex.: tx).
func (r *Repository) WithDB(db *gorm.DB) *Repository {
	if db == nil {
		db = r.DB
	}
	return &Repository{DB: db}
}

// CriarLote grava todos os débitos de uma expansão em uma única transação.
// Ou o lote inteiro entra, ou nada entra: falha no meio não deixa meses ou
// parcelas órfãos visíveis.
func (r *Repository) CriarLote(debitos []*Debito) error {
	if len(debitos) == 0 {
		return nil
	}
	return r.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(debitos).Error
	})
}

// FindByID busca um único débito do workspace pelo seu ID.
func (r *Repository) FindByID(workspaceID, id string) (*Debito, error) {
	var d Debito
	err := r.DB.Where("workspace_id = ? AND id = ?", workspaceID, id).First(&d).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// ListarPorWorkspace lista os débitos do workspace, mais recentes primeiro.
func (r *Repository) ListarPorWorkspace(workspaceID string) ([]Debito, error) {
	var list []Debito
	err := r.DB.
		Where("workspace_id = ?", workspaceID).
		Order("data DESC").
		Find(&list).Error
	return list, err
}

// ListarPorPlano lista as parcelas de um plano de parcelamento, em ordem.
func (r *Repository) ListarPorPlano(workspaceID, origemID string) ([]Debito, error) {
	var list []Debito
	err := r.DB.
		Where("workspace_id = ? AND debito_original_id = ?", workspaceID, origemID).
		Order("parcela_atual ASC").
		Find(&list).Error
	return list, err
}

// DeleteByID apaga o débito; retorna gorm.ErrRecordNotFound se nada foi deletado.
func (r *Repository) DeleteByID(workspaceID, id string) error {
	res := r.DB.Where("workspace_id = ?", workspaceID).Delete(&Debito{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
