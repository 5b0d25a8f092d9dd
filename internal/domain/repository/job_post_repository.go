package repository

import "github.com/jhoicas/Empleos-api/internal/domain/entity"

// JobFilter filtros del listado público. JobTypes vacío = todos los tipos;
// Location vacío = cualquier ubicación.
type JobFilter struct {
	JobTypes []string
	Location string
}

// ActiveJobRow fila del listado público: el aviso más la tarjeta de la empresa.
type ActiveJobRow struct {
	Job             entity.JobPost
	CompanyName     string
	CompanyLogo     string
	CompanyLocation string
	CompanyAbout    string
}

// JobPostRepository define el puerto de persistencia para JobPost.
//
// Las mutaciones con alcance de propiedad (Update, Delete, Activate) reciben
// companyID y reportan con el bool si alguna fila coincidió: false significa
// que el aviso no existe o pertenece a otra empresa, sin distinguirlos.
type JobPostRepository interface {
	Create(job *entity.JobPost) error
	GetByID(id string) (*entity.JobPost, error)
	Update(job *entity.JobPost, companyID string) (bool, error)
	Delete(id, companyID string) (bool, error)
	Activate(id, companyID string) (bool, error)
	ListByCompany(companyID string) ([]*entity.JobPost, error)
	// ListActive devuelve solo avisos con status = active, más recientes primero.
	ListActive(f JobFilter, limit, offset int) ([]*ActiveJobRow, error)
	CountActive(f JobFilter) (int, error)
	// IncrementApplicants suma 1 al contador cacheado. Debe ejecutarse en la
	// misma transacción que el alta de la postulación.
	IncrementApplicants(id string) error
}
