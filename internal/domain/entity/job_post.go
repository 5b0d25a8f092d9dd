package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de un aviso. Un aviso nace en draft (pendiente de
// pago), pasa a active cuando el webhook confirma el pago, y el despachador
// externo lo marca expired al vencer la duración contratada.
const (
	JobStatusDraft   = "draft"
	JobStatusActive  = "active"
	JobStatusExpired = "expired"
)

// Tipos de contratación aceptados.
const (
	EmploymentFullTime   = "full-time"
	EmploymentPartTime   = "part-time"
	EmploymentContract   = "contract"
	EmploymentInternship = "internship"
)

// ValidEmploymentType indica si el tipo de contratación es uno de los aceptados.
func ValidEmploymentType(t string) bool {
	switch t {
	case EmploymentFullTime, EmploymentPartTime, EmploymentContract, EmploymentInternship:
		return true
	}
	return false
}

// JobPost representa un aviso de empleo publicado por una Company.
// Applicants es un contador cacheado que se mantiene en la misma transacción
// que el alta de cada Application.
type JobPost struct {
	ID              string
	CompanyID       string
	JobTitle        string
	JobDescription  string
	EmploymentType  string // ver constantes Employment*
	Location        string
	SalaryFrom      decimal.Decimal
	SalaryTo        decimal.Decimal
	ListingDuration int      // días de publicación contratados (7, 30, 60, 90)
	Benefits        []string
	Status          string // ver constantes JobStatus*
	Applicants      int    // contador cacheado de postulaciones
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
