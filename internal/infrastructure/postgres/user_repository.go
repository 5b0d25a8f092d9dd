package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Empleos-api/internal/domain"
	"github.com/jhoicas/Empleos-api/internal/domain/entity"
	"github.com/jhoicas/Empleos-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = `id, email, password_hash, name, user_type, onboarding_completed, payment_customer_id, created_at, updated_at`

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste un nuevo usuario. Email duplicado -> ErrEmailAlreadyExists.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (id, email, password_hash, name, user_type, onboarding_completed, payment_customer_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.Email, user.PasswordHash, user.Name, user.UserType,
		user.OnboardingCompleted, nullIfEmpty(user.PaymentCustomerID),
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	return r.findOne(`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

// GetByEmail obtiene un usuario por email.
func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	return r.findOne(`SELECT `+userColumns+` FROM users WHERE email = $1 LIMIT 1`, email)
}

// GetByPaymentCustomerID obtiene el usuario dueño de un cliente del proveedor de pagos.
func (r *UserRepo) GetByPaymentCustomerID(customerID string) (*entity.User, error) {
	if customerID == "" {
		return nil, nil
	}
	return r.findOne(`SELECT `+userColumns+` FROM users WHERE payment_customer_id = $1`, customerID)
}

func (r *UserRepo) findOne(query string, arg any) (*entity.User, error) {
	var u entity.User
	var customerID *string
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.UserType,
		&u.OnboardingCompleted, &customerID, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	if customerID != nil {
		u.PaymentCustomerID = *customerID
	}
	return &u, nil
}

// Update actualiza un usuario.
func (r *UserRepo) Update(user *entity.User) error {
	query := `
		UPDATE users SET email = $2, password_hash = $3, name = $4, user_type = $5,
			onboarding_completed = $6, payment_customer_id = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.Email, user.PasswordHash, user.Name, user.UserType,
		user.OnboardingCompleted, nullIfEmpty(user.PaymentCustomerID), user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// SetPaymentCustomerID fija el ID de cliente en el proveedor de pagos.
func (r *UserRepo) SetPaymentCustomerID(userID, customerID string) error {
	query := `UPDATE users SET payment_customer_id = $2, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, userID, customerID)
	if err != nil {
		return fmt.Errorf("set payment customer id: %w", err)
	}
	return nil
}

// CompleteOnboarding fija user_type y marca el onboarding como completo.
func (r *UserRepo) CompleteOnboarding(userID, userType string) error {
	query := `UPDATE users SET user_type = $2, onboarding_completed = true, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, userID, userType)
	if err != nil {
		return fmt.Errorf("complete onboarding: %w", err)
	}
	return nil
}

// nullIfEmpty convierte "" en NULL para columnas opcionales.
func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
