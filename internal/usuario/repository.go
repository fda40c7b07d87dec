package usuario

import "gorm.io/gorm"

// Repository encapsula o acesso a dados de usuários.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(u *Usuario) error {
	return r.DB.Create(u).Error
}

func (r *Repository) FindByEmail(email string) (*Usuario, error) {
	var u Usuario
	if err := r.DB.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *Repository) FindByID(id string) (*Usuario, error) {
	var u Usuario
	if err := r.DB.Where("id = ?", id).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}
