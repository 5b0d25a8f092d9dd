package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Empleos-api/internal/application/dto"
	"github.com/jhoicas/Empleos-api/internal/domain"
	"github.com/jhoicas/Empleos-api/internal/domain/entity"
	"github.com/jhoicas/Empleos-api/internal/domain/repository"
)

// SavedJobUseCase guardado de avisos (bookmarks). Sin más invariante que la
// unicidad por (user, job), garantizada por el constraint de la tabla.
type SavedJobUseCase struct {
	savedRepo repository.SavedJobPostRepository
	jobRepo   repository.JobPostRepository
}

// NewSavedJobUseCase construye el caso de uso.
func NewSavedJobUseCase(savedRepo repository.SavedJobPostRepository, jobRepo repository.JobPostRepository) *SavedJobUseCase {
	return &SavedJobUseCase{savedRepo: savedRepo, jobRepo: jobRepo}
}

// Save guarda un aviso para el usuario. ErrDuplicate si ya estaba guardado.
func (uc *SavedJobUseCase) Save(userID, jobID string) (*dto.SavedJobResponse, error) {
	job, err := uc.jobRepo.GetByID(jobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, domain.ErrNotFound
	}
	saved := &entity.SavedJobPost{
		ID:        uuid.New().String(),
		JobID:     jobID,
		UserID:    userID,
		CreatedAt: time.Now(),
	}
	if err := uc.savedRepo.Create(saved); err != nil {
		return nil, err
	}
	return &dto.SavedJobResponse{
		ID:       saved.ID,
		JobID:    saved.JobID,
		JobTitle: job.JobTitle,
		SavedAt:  saved.CreatedAt,
	}, nil
}

// Unsave borra un bookmark propio. ErrNotFound si no existe o es de otro usuario.
func (uc *SavedJobUseCase) Unsave(userID, savedID string) error {
	ok, err := uc.savedRepo.DeleteByIDAndUser(savedID, userID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve los avisos guardados del usuario.
func (uc *SavedJobUseCase) List(userID string) ([]dto.SavedJobResponse, error) {
	rows, err := uc.savedRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SavedJobResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.SavedJobResponse{
			ID:          row.Saved.ID,
			JobID:       row.Saved.JobID,
			JobTitle:    row.JobTitle,
			CompanyName: row.CompanyName,
			JobLocation: row.JobLocation,
			JobStatus:   row.JobStatus,
			SavedAt:     row.Saved.CreatedAt,
		})
	}
	return out, nil
}
