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

var _ repository.ApplicationRepository = (*ApplicationRepo)(nil)

// ApplicationRepo implementación del puerto ApplicationRepository sobre
// PostgreSQL (usable con pool o tx).
type ApplicationRepo struct {
	q Querier
}

// NewApplicationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewApplicationRepository(q Querier) *ApplicationRepo {
	return &ApplicationRepo{q: q}
}

// Create persiste una postulación. La tabla tiene UNIQUE (job_id, user_id):
// la violación se traduce a domain.ErrDuplicate y resuelve el doble submit
// concurrente a exactamente un éxito.
func (r *ApplicationRepo) Create(app *entity.Application) error {
	query := `
		INSERT INTO applications (id, job_id, user_id, status, resume, cover_letter,
			expected_salary, notice_period, relocation, skills, applied_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		app.ID, app.JobID, app.UserID, app.Status, app.Resume, app.CoverLetter,
		app.ExpectedSalary, app.NoticePeriod, app.Relocation, app.Skills, app.AppliedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert application: %w", err)
	}
	return nil
}

// GetByJobAndUser obtiene la postulación de un usuario a un aviso, si existe.
func (r *ApplicationRepo) GetByJobAndUser(jobID, userID string) (*entity.Application, error) {
	query := `
		SELECT id, job_id, user_id, status, resume, cover_letter, expected_salary,
			notice_period, relocation, skills, applied_at
		FROM applications WHERE job_id = $1 AND user_id = $2`
	var a entity.Application
	err := r.q.QueryRow(context.Background(), query, jobID, userID).Scan(
		&a.ID, &a.JobID, &a.UserID, &a.Status, &a.Resume, &a.CoverLetter,
		&a.ExpectedSalary, &a.NoticePeriod, &a.Relocation, &a.Skills, &a.AppliedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get application by job and user: %w", err)
	}
	return &a, nil
}

// ListByJob lista las postulaciones de un aviso con el perfil de cada
// candidato, más recientes primero. La autorización de propiedad ocurre en la
// capa de aplicación antes de llamar aquí.
func (r *ApplicationRepo) ListByJob(jobID string) ([]*repository.ApplicantRow, error) {
	query := `
		SELECT a.id, a.job_id, a.user_id, a.status, a.resume, a.cover_letter, a.expected_salary,
			a.notice_period, a.relocation, a.skills, a.applied_at,
			s.name, s.about, u.email
		FROM applications a
		JOIN users u ON u.id = a.user_id
		LEFT JOIN job_seekers s ON s.user_id = a.user_id
		WHERE a.job_id = $1
		ORDER BY a.applied_at DESC`
	rows, err := r.q.Query(context.Background(), query, jobID)
	if err != nil {
		return nil, fmt.Errorf("list applications by job: %w", err)
	}
	defer rows.Close()
	var list []*repository.ApplicantRow
	for rows.Next() {
		var row repository.ApplicantRow
		a := &row.Application
		var seekerName, seekerAbout *string
		if err := rows.Scan(
			&a.ID, &a.JobID, &a.UserID, &a.Status, &a.Resume, &a.CoverLetter, &a.ExpectedSalary,
			&a.NoticePeriod, &a.Relocation, &a.Skills, &a.AppliedAt,
			&seekerName, &seekerAbout, &row.Email,
		); err != nil {
			return nil, fmt.Errorf("scan applicant: %w", err)
		}
		if seekerName != nil {
			row.SeekerName = *seekerName
		}
		if seekerAbout != nil {
			row.SeekerAbout = *seekerAbout
		}
		list = append(list, &row)
	}
	return list, rows.Err()
}

// ListByUser lista las postulaciones de un candidato con el resumen de cada
// aviso, más recientes primero.
func (r *ApplicationRepo) ListByUser(userID string) ([]*repository.AppliedJobRow, error) {
	query := `
		SELECT a.id, a.job_id, a.user_id, a.status, a.resume, a.cover_letter, a.expected_salary,
			a.notice_period, a.relocation, a.skills, a.applied_at,
			j.job_title, j.location, j.status, c.name
		FROM applications a
		JOIN job_posts j ON j.id = a.job_id
		JOIN companies c ON c.id = j.company_id
		WHERE a.user_id = $1
		ORDER BY a.applied_at DESC`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list applications by user: %w", err)
	}
	defer rows.Close()
	var list []*repository.AppliedJobRow
	for rows.Next() {
		var row repository.AppliedJobRow
		a := &row.Application
		if err := rows.Scan(
			&a.ID, &a.JobID, &a.UserID, &a.Status, &a.Resume, &a.CoverLetter, &a.ExpectedSalary,
			&a.NoticePeriod, &a.Relocation, &a.Skills, &a.AppliedAt,
			&row.JobTitle, &row.JobLocation, &row.JobStatus, &row.CompanyName,
		); err != nil {
			return nil, fmt.Errorf("scan applied job: %w", err)
		}
		list = append(list, &row)
	}
	return list, rows.Err()
}

// UpdateStatus cambia el estado con alcance (id, job_id). false = cero filas.
func (r *ApplicationRepo) UpdateStatus(id, jobID, status string) (bool, error) {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE applications SET status = $3 WHERE id = $1 AND job_id = $2`,
		id, jobID, status)
	if err != nil {
		return false, fmt.Errorf("update application status: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
