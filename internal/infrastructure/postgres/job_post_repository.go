package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Empleos-api/internal/domain/entity"
	"github.com/jhoicas/Empleos-api/internal/domain/repository"
)

var _ repository.JobPostRepository = (*JobPostRepo)(nil)

const jobColumns = `id, company_id, job_title, job_description, employment_type, location,
	salary_from, salary_to, listing_duration, benefits, status, applicants, created_at, updated_at`

// JobPostRepo implementación del puerto JobPostRepository sobre PostgreSQL
// (usable con pool o tx).
type JobPostRepo struct {
	q Querier
}

// NewJobPostRepository construye el adaptador. Pasar pool o tx (Querier).
func NewJobPostRepository(q Querier) *JobPostRepo {
	return &JobPostRepo{q: q}
}

// Create persiste un aviso nuevo.
func (r *JobPostRepo) Create(job *entity.JobPost) error {
	query := `
		INSERT INTO job_posts (id, company_id, job_title, job_description, employment_type, location,
			salary_from, salary_to, listing_duration, benefits, status, applicants, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		job.ID, job.CompanyID, job.JobTitle, job.JobDescription, job.EmploymentType, job.Location,
		job.SalaryFrom, job.SalaryTo, job.ListingDuration, job.Benefits, job.Status, job.Applicants,
		job.CreatedAt, job.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert job post: %w", err)
	}
	return nil
}

// GetByID obtiene un aviso por ID.
func (r *JobPostRepo) GetByID(id string) (*entity.JobPost, error) {
	query := `SELECT ` + jobColumns + ` FROM job_posts WHERE id = $1`
	var j entity.JobPost
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&j.ID, &j.CompanyID, &j.JobTitle, &j.JobDescription, &j.EmploymentType, &j.Location,
		&j.SalaryFrom, &j.SalaryTo, &j.ListingDuration, &j.Benefits, &j.Status, &j.Applicants,
		&j.CreatedAt, &j.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get job post by id: %w", err)
	}
	return &j, nil
}

// Update actualiza un aviso con alcance (id, company_id). false = cero filas.
func (r *JobPostRepo) Update(job *entity.JobPost, companyID string) (bool, error) {
	query := `
		UPDATE job_posts SET job_title = $3, job_description = $4, employment_type = $5,
			location = $6, salary_from = $7, salary_to = $8, benefits = $9, updated_at = $10
		WHERE id = $1 AND company_id = $2`
	tag, err := r.q.Exec(context.Background(), query,
		job.ID, companyID, job.JobTitle, job.JobDescription, job.EmploymentType,
		job.Location, job.SalaryFrom, job.SalaryTo, job.Benefits, job.UpdatedAt,
	)
	if err != nil {
		return false, fmt.Errorf("update job post: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Delete borra un aviso con alcance (id, company_id). Las postulaciones y
// bookmarks caen por el ON DELETE CASCADE de sus FKs.
func (r *JobPostRepo) Delete(id, companyID string) (bool, error) {
	tag, err := r.q.Exec(context.Background(),
		`DELETE FROM job_posts WHERE id = $1 AND company_id = $2`, id, companyID)
	if err != nil {
		return false, fmt.Errorf("delete job post: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Activate pasa el aviso a active con alcance (id, company_id): un jobId de
// otra empresa no coincide con ninguna fila. Reentrante para reentregas del
// webhook (re-fija el mismo estado).
func (r *JobPostRepo) Activate(id, companyID string) (bool, error) {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE job_posts SET status = 'active', updated_at = now() WHERE id = $1 AND company_id = $2`,
		id, companyID)
	if err != nil {
		return false, fmt.Errorf("activate job post: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// ListByCompany lista los avisos de una empresa, más recientes primero.
func (r *JobPostRepo) ListByCompany(companyID string) ([]*entity.JobPost, error) {
	query := `SELECT ` + jobColumns + ` FROM job_posts WHERE company_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list job posts: %w", err)
	}
	defer rows.Close()
	var list []*entity.JobPost
	for rows.Next() {
		var j entity.JobPost
		if err := rows.Scan(
			&j.ID, &j.CompanyID, &j.JobTitle, &j.JobDescription, &j.EmploymentType, &j.Location,
			&j.SalaryFrom, &j.SalaryTo, &j.ListingDuration, &j.Benefits, &j.Status, &j.Applicants,
			&j.CreatedAt, &j.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan job post: %w", err)
		}
		list = append(list, &j)
	}
	return list, rows.Err()
}

// ListActive lista avisos activos con la tarjeta de su empresa, aplicando los
// filtros y la paginación del listado público.
func (r *JobPostRepo) ListActive(f repository.JobFilter, limit, offset int) ([]*repository.ActiveJobRow, error) {
	where, args := activeFilterWhere(f)
	query := fmt.Sprintf(`
		SELECT j.id, j.company_id, j.job_title, j.job_description, j.employment_type, j.location,
			j.salary_from, j.salary_to, j.listing_duration, j.benefits, j.status, j.applicants,
			j.created_at, j.updated_at,
			c.name, c.logo, c.location, c.about
		FROM job_posts j
		JOIN companies c ON c.id = j.company_id
		WHERE %s
		ORDER BY j.created_at DESC
		LIMIT $%d OFFSET $%d`, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list active job posts: %w", err)
	}
	defer rows.Close()
	var list []*repository.ActiveJobRow
	for rows.Next() {
		var row repository.ActiveJobRow
		j := &row.Job
		if err := rows.Scan(
			&j.ID, &j.CompanyID, &j.JobTitle, &j.JobDescription, &j.EmploymentType, &j.Location,
			&j.SalaryFrom, &j.SalaryTo, &j.ListingDuration, &j.Benefits, &j.Status, &j.Applicants,
			&j.CreatedAt, &j.UpdatedAt,
			&row.CompanyName, &row.CompanyLogo, &row.CompanyLocation, &row.CompanyAbout,
		); err != nil {
			return nil, fmt.Errorf("scan active job post: %w", err)
		}
		list = append(list, &row)
	}
	return list, rows.Err()
}

// CountActive cuenta los avisos activos que cumplen el filtro.
func (r *JobPostRepo) CountActive(f repository.JobFilter) (int, error) {
	where, args := activeFilterWhere(f)
	var total int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM job_posts j WHERE `+where, args...).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count active job posts: %w", err)
	}
	return total, nil
}

// IncrementApplicants suma 1 al contador cacheado del aviso.
func (r *JobPostRepo) IncrementApplicants(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE job_posts SET applicants = applicants + 1 WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("increment applicants: %w", err)
	}
	return nil
}

// activeFilterWhere arma el WHERE del listado público. status = active
// siempre; el resto de condiciones solo si el filtro las trae.
func activeFilterWhere(f repository.JobFilter) (string, []any) {
	where := `j.status = 'active'`
	var args []any
	if len(f.JobTypes) > 0 {
		args = append(args, f.JobTypes)
		where += fmt.Sprintf(" AND j.employment_type = ANY($%d)", len(args))
	}
	if f.Location != "" {
		args = append(args, f.Location)
		where += fmt.Sprintf(" AND j.location = $%d", len(args))
	}
	return where, args
}
