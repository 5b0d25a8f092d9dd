package repository

import "github.com/jhoicas/Empleos-api/internal/domain/entity"

// ApplicantRow fila de la lista de postulantes de un aviso: la postulación
// completa más los datos del perfil del candidato.
type ApplicantRow struct {
	Application entity.Application
	SeekerName  string
	SeekerAbout string
	Email       string
}

// AppliedJobRow fila del historial de postulaciones de un candidato.
type AppliedJobRow struct {
	Application entity.Application
	JobTitle    string
	CompanyName string
	JobLocation string
	JobStatus   string
}

// ApplicationRepository define el puerto de persistencia para Application.
//
// Create debe traducir la violación del UNIQUE (job_id, user_id) a
// domain.ErrDuplicate: ese constraint, y no el pre-chequeo de la capa de
// aplicación, es lo que resuelve el doble submit concurrente.
type ApplicationRepository interface {
	Create(app *entity.Application) error
	GetByJobAndUser(jobID, userID string) (*entity.Application, error)
	ListByJob(jobID string) ([]*ApplicantRow, error)
	ListByUser(userID string) ([]*AppliedJobRow, error)
	// UpdateStatus cambia el estado con alcance (id, job_id); false si la
	// postulación no existe o no pertenece a ese aviso.
	UpdateStatus(id, jobID, status string) (bool, error)
}
