package entity

import "time"

// Tipos de usuario. Vacío hasta completar el onboarding.
const (
	UserTypeCompany   = "company"
	UserTypeJobSeeker = "job_seeker"
)

// User representa la identidad de una persona en el portal. Según el tipo
// elegido en el onboarding queda asociado a un perfil Company o JobSeeker
// (mutuamente excluyentes).
type User struct {
	ID                  string
	Email               string // único en todo el sistema
	PasswordHash        string
	Name                string
	UserType            string // ver constantes UserType*; "" antes del onboarding
	OnboardingCompleted bool
	PaymentCustomerID   string // ID de cliente en el proveedor de pagos; "" hasta la primera compra
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
