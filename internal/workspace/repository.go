package workspace

import "gorm.io/gorm"

// Repository encapsula o acesso a dados de workspaces e membros.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Create grava o workspace e inscreve o criador como membro, atomicamente.
func (r *Repository) Create(ws *Workspace, criadorID string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(ws).Error; err != nil {
			return err
		}
		return tx.Create(&Membro{WorkspaceID: ws.ID, UsuarioID: criadorID}).Error
	})
}

// ListByUsuario lista os workspaces dos quais o usuário é membro.
func (r *Repository) ListByUsuario(usuarioID string) ([]Workspace, error) {
	var list []Workspace
	err := r.DB.
		Joins("JOIN membros ON membros.workspace_id = workspaces.id").
		Where("membros.usuario_id = ?", usuarioID).
		Preload("Membros").
		Find(&list).Error
	return list, err
}

// FindByID busca um workspace pelo id.
func (r *Repository) FindByID(id string) (*Workspace, error) {
	var ws Workspace
	if err := r.DB.Preload("Membros").Where("id = ?", id).First(&ws).Error; err != nil {
		return nil, err
	}
	return &ws, nil
}

// EhMembro verifica se o usuário pertence ao workspace.
func (r *Repository) EhMembro(workspaceID, usuarioID string) (bool, error) {
	var count int64
	err := r.DB.Model(&Membro{}).
		Where("workspace_id = ? AND usuario_id = ?", workspaceID, usuarioID).
		Count(&count).Error
	return count > 0, err
}
