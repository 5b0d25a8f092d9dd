package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ApplyRequest postulación de un candidato a un aviso.
type ApplyRequest struct {
	Resume         string           `json:"resume"`
	CoverLetter    string           `json:"cover_letter"`
	ExpectedSalary *decimal.Decimal `json:"expected_salary"`
	NoticePeriod   string           `json:"notice_period"`
	Relocation     bool             `json:"relocation"`
	Skills         string           `json:"skills"` // separadas por coma, como las envía el formulario
}

// ApplicationResponse representación de una postulación.
type ApplicationResponse struct {
	ID             string           `json:"id"`
	JobID          string           `json:"job_id"`
	Status         string           `json:"status"`
	Resume         string           `json:"resume"`
	CoverLetter    string           `json:"cover_letter"`
	ExpectedSalary *decimal.Decimal `json:"expected_salary,omitempty"`
	NoticePeriod   string           `json:"notice_period"`
	Relocation     bool             `json:"relocation"`
	Skills         []string         `json:"skills"`
	AppliedAt      time.Time        `json:"applied_at"`
}

// ApplicantResponse fila de la lista de postulantes de un aviso (solo para la
// empresa dueña): postulación completa más el perfil del candidato.
type ApplicantResponse struct {
	Application ApplicationResponse `json:"application"`
	SeekerName  string              `json:"seeker_name"`
	SeekerAbout string              `json:"seeker_about"`
	Email       string              `json:"email"`
}

// UpdateApplicationStatusRequest cambio de estado de una postulación.
type UpdateApplicationStatusRequest struct {
	Status string `json:"status"`
}

// AppliedJobResponse fila del historial de postulaciones del candidato.
type AppliedJobResponse struct {
	Application ApplicationResponse `json:"application"`
	JobTitle    string              `json:"job_title"`
	CompanyName string              `json:"company_name"`
	JobLocation string              `json:"job_location"`
	JobStatus   string              `json:"job_status"`
}
