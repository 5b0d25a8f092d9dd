package repository

import "github.com/jhoicas/Empleos-api/internal/domain/entity"

// CompanyRepository define el puerto de persistencia para Company.
type CompanyRepository interface {
	Create(company *entity.Company) error
	GetByID(id string) (*entity.Company, error)
	// GetByUserID resuelve la empresa del usuario autenticado. Toda
	// autorización de propiedad sobre avisos parte de aquí.
	GetByUserID(userID string) (*entity.Company, error)
	Update(company *entity.Company) error
}
