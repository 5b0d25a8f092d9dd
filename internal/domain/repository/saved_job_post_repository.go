package repository

import "github.com/jhoicas/Empleos-api/internal/domain/entity"

// SavedJobRow fila del listado de avisos guardados, con resumen del aviso.
type SavedJobRow struct {
	Saved       entity.SavedJobPost
	JobTitle    string
	CompanyName string
	JobLocation string
	JobStatus   string
}

// SavedJobPostRepository define el puerto de persistencia para SavedJobPost.
// Create traduce la violación del UNIQUE (job_id, user_id) a domain.ErrDuplicate.
type SavedJobPostRepository interface {
	Create(saved *entity.SavedJobPost) error
	// DeleteByIDAndUser borra solo si el bookmark pertenece al usuario; false
	// si no existe o es de otro usuario.
	DeleteByIDAndUser(id, userID string) (bool, error)
	ListByUser(userID string) ([]*SavedJobRow, error)
}
