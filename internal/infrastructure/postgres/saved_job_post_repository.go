package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Empleos-api/internal/domain"
	"github.com/jhoicas/Empleos-api/internal/domain/entity"
	"github.com/jhoicas/Empleos-api/internal/domain/repository"
)

var _ repository.SavedJobPostRepository = (*SavedJobPostRepo)(nil)

// SavedJobPostRepo implementación del puerto SavedJobPostRepository sobre PostgreSQL.
type SavedJobPostRepo struct {
	q Querier
}

// NewSavedJobPostRepository construye el adaptador de persistencia para bookmarks.
func NewSavedJobPostRepository(q Querier) *SavedJobPostRepo {
	return &SavedJobPostRepo{q: q}
}

// Create persiste un bookmark. UNIQUE (job_id, user_id) -> ErrDuplicate.
func (r *SavedJobPostRepo) Create(saved *entity.SavedJobPost) error {
	query := `
		INSERT INTO saved_job_posts (id, job_id, user_id, created_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		saved.ID, saved.JobID, saved.UserID, saved.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert saved job post: %w", err)
	}
	return nil
}

// DeleteByIDAndUser borra un bookmark solo si pertenece al usuario.
func (r *SavedJobPostRepo) DeleteByIDAndUser(id, userID string) (bool, error) {
	tag, err := r.q.Exec(context.Background(),
		`DELETE FROM saved_job_posts WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return false, fmt.Errorf("delete saved job post: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// ListByUser lista los bookmarks del usuario con el resumen de cada aviso.
func (r *SavedJobPostRepo) ListByUser(userID string) ([]*repository.SavedJobRow, error) {
	query := `
		SELECT sj.id, sj.job_id, sj.user_id, sj.created_at,
			j.job_title, j.location, j.status, c.name
		FROM saved_job_posts sj
		JOIN job_posts j ON j.id = sj.job_id
		JOIN companies c ON c.id = j.company_id
		WHERE sj.user_id = $1
		ORDER BY sj.created_at DESC`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list saved job posts: %w", err)
	}
	defer rows.Close()
	var list []*repository.SavedJobRow
	for rows.Next() {
		var row repository.SavedJobRow
		s := &row.Saved
		if err := rows.Scan(
			&s.ID, &s.JobID, &s.UserID, &s.CreatedAt,
			&row.JobTitle, &row.JobLocation, &row.JobStatus, &row.CompanyName,
		); err != nil {
			return nil, fmt.Errorf("scan saved job post: %w", err)
		}
		list = append(list, &row)
	}
	return list, rows.Err()
}
