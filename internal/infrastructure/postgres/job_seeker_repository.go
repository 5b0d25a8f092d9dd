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

var _ repository.JobSeekerRepository = (*JobSeekerRepo)(nil)

// JobSeekerRepo implementación del puerto JobSeekerRepository sobre PostgreSQL.
type JobSeekerRepo struct {
	q Querier
}

// NewJobSeekerRepository construye el adaptador de persistencia para candidatos.
func NewJobSeekerRepository(q Querier) *JobSeekerRepo {
	return &JobSeekerRepo{q: q}
}

// Create persiste un perfil de candidato. user_id es único (-> ErrDuplicate).
func (r *JobSeekerRepo) Create(seeker *entity.JobSeeker) error {
	query := `
		INSERT INTO job_seekers (id, user_id, name, about, resume, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		seeker.ID, seeker.UserID, seeker.Name, seeker.About, seeker.Resume,
		seeker.CreatedAt, seeker.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert job seeker: %w", err)
	}
	return nil
}

// GetByUserID obtiene el perfil de candidato de un usuario.
func (r *JobSeekerRepo) GetByUserID(userID string) (*entity.JobSeeker, error) {
	query := `
		SELECT id, user_id, name, about, resume, created_at, updated_at
		FROM job_seekers WHERE user_id = $1`
	var s entity.JobSeeker
	err := r.q.QueryRow(context.Background(), query, userID).Scan(
		&s.ID, &s.UserID, &s.Name, &s.About, &s.Resume, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get job seeker by user: %w", err)
	}
	return &s, nil
}

// Update actualiza el perfil del candidato.
func (r *JobSeekerRepo) Update(seeker *entity.JobSeeker) error {
	query := `
		UPDATE job_seekers SET name = $2, about = $3, resume = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		seeker.ID, seeker.Name, seeker.About, seeker.Resume, seeker.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update job seeker: %w", err)
	}
	return nil
}
