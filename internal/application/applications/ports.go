package applications

import (
	"context"

	"github.com/jhoicas/Empleos-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el alta de la postulación y el
// incremento del contador del aviso sean atómicos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		appRepo repository.ApplicationRepository,
		jobRepo repository.JobPostRepository,
	) error) error
}
