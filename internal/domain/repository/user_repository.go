package repository

import "github.com/jhoicas/Empleos-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	// GetByPaymentCustomerID resuelve el usuario dueño de un cliente del
	// proveedor de pagos (usado por el webhook).
	GetByPaymentCustomerID(customerID string) (*entity.User, error)
	Update(user *entity.User) error
	SetPaymentCustomerID(userID, customerID string) error
	// CompleteOnboarding fija user_type y marca el onboarding como completo.
	CompleteOnboarding(userID, userType string) error
}
