package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una postulación. El grafo de transiciones es deliberadamente
// libre: la empresa puede mover una postulación de cualquier estado a
// cualquier otro (override manual).
const (
	ApplicationPending  = "pending"
	ApplicationReviewed = "reviewed"
	ApplicationRejected = "rejected"
	ApplicationAccepted = "accepted"
)

// ValidApplicationStatus indica si el estado es uno de los aceptados.
func ValidApplicationStatus(s string) bool {
	switch s {
	case ApplicationPending, ApplicationReviewed, ApplicationRejected, ApplicationAccepted:
		return true
	}
	return false
}

// Application representa la postulación de un candidato a un aviso.
// Invariante: a lo sumo una postulación por par (job_id, user_id); lo
// garantiza el constraint UNIQUE en la tabla, no el pre-chequeo.
type Application struct {
	ID             string
	JobID          string
	UserID         string
	Status         string // ver constantes Application*
	Resume         string // URL de la hoja de vida enviada en esta postulación
	CoverLetter    string
	ExpectedSalary decimal.NullDecimal // opcional
	NoticePeriod   string              // ej. "15 días", "1 mes"
	Relocation     bool
	Skills         []string
	AppliedAt      time.Time // inmutable
}
