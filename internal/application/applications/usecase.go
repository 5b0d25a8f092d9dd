package applications

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Empleos-api/internal/application/dto"
	"github.com/jhoicas/Empleos-api/internal/domain"
	"github.com/jhoicas/Empleos-api/internal/domain/entity"
	"github.com/jhoicas/Empleos-api/internal/domain/repository"
)

// UseCase casos de uso del libro de postulaciones: postular, listar
// postulantes, cambiar estado y consultar el historial propio.
type UseCase struct {
	txRunner    TxRunner
	appRepo     repository.ApplicationRepository
	jobRepo     repository.JobPostRepository
	seekerRepo  repository.JobSeekerRepository
	companyRepo repository.CompanyRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(txRunner TxRunner, appRepo repository.ApplicationRepository, jobRepo repository.JobPostRepository, seekerRepo repository.JobSeekerRepository, companyRepo repository.CompanyRepository) *UseCase {
	return &UseCase{
		txRunner:    txRunner,
		appRepo:     appRepo,
		jobRepo:     jobRepo,
		seekerRepo:  seekerRepo,
		companyRepo: companyRepo,
	}
}

// Apply registra la postulación de un candidato a un aviso.
//
// Guardas: el actor debe tener perfil de candidato (ErrNotJobSeeker) y el
// aviso debe existir (ErrNotFound). El chequeo previo de duplicado es solo un
// fast-path para el mensaje al usuario: la corrección ante doble submit
// concurrente la da el UNIQUE (job_id, user_id), que el repositorio traduce a
// ErrDuplicate y aquí se mapea a ErrAlreadyApplied. El insert y el incremento
// del contador van en la misma transacción.
func (uc *UseCase) Apply(ctx context.Context, userID, jobID string, in dto.ApplyRequest) (*dto.ApplicationResponse, error) {
	seeker, err := uc.seekerRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if seeker == nil {
		return nil, domain.ErrNotJobSeeker
	}

	job, err := uc.jobRepo.GetByID(jobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, domain.ErrNotFound
	}

	existing, err := uc.appRepo.GetByJobAndUser(jobID, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrAlreadyApplied
	}

	app := &entity.Application{
		ID:           uuid.New().String(),
		JobID:        jobID,
		UserID:       userID,
		Status:       entity.ApplicationPending,
		Resume:       in.Resume,
		CoverLetter:  in.CoverLetter,
		NoticePeriod: in.NoticePeriod,
		Relocation:   in.Relocation,
		Skills:       splitSkills(in.Skills),
		AppliedAt:    time.Now(),
	}
	if in.ExpectedSalary != nil {
		app.ExpectedSalary = decimal.NewNullDecimal(*in.ExpectedSalary)
	}

	err = uc.txRunner.Run(ctx, func(appRepo repository.ApplicationRepository, jobRepo repository.JobPostRepository) error {
		if err := appRepo.Create(app); err != nil {
			return err
		}
		return jobRepo.IncrementApplicants(jobID)
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			// Perdió la carrera contra otro submit del mismo usuario.
			return nil, domain.ErrAlreadyApplied
		}
		return nil, err
	}
	return toApplicationResponse(app), nil
}

// ListApplicants devuelve la lista completa de postulantes de un aviso, solo
// para la empresa dueña. Nunca devuelve una lista parcial: si el actor no es
// el dueño, ErrForbidden.
func (uc *UseCase) ListApplicants(userID, jobID string) ([]dto.ApplicantResponse, error) {
	if err := uc.authorizeOwner(userID, jobID); err != nil {
		return nil, err
	}
	rows, err := uc.appRepo.ListByJob(jobID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ApplicantResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.ApplicantResponse{
			Application: *toApplicationResponse(&row.Application),
			SeekerName:  row.SeekerName,
			SeekerAbout: row.SeekerAbout,
			Email:       row.Email,
		})
	}
	return out, nil
}

// UpdateStatus cambia el estado de una postulación. La propiedad del aviso se
// rederiva del store, nunca del cliente. El grafo de transiciones es libre:
// cualquier estado puede pasar a cualquier otro.
func (uc *UseCase) UpdateStatus(userID, jobID, applicationID, status string) error {
	if !entity.ValidApplicationStatus(status) {
		return domain.ErrInvalidInput
	}
	if err := uc.authorizeOwner(userID, jobID); err != nil {
		return err
	}
	ok, err := uc.appRepo.UpdateStatus(applicationID, jobID, status)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

// ListAppliedJobs devuelve el historial de postulaciones del candidato.
func (uc *UseCase) ListAppliedJobs(userID string) ([]dto.AppliedJobResponse, error) {
	rows, err := uc.appRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AppliedJobResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.AppliedJobResponse{
			Application: *toApplicationResponse(&row.Application),
			JobTitle:    row.JobTitle,
			CompanyName: row.CompanyName,
			JobLocation: row.JobLocation,
			JobStatus:   row.JobStatus,
		})
	}
	return out, nil
}

// authorizeOwner verifica que el usuario sea dueño (vía su Company) del aviso.
func (uc *UseCase) authorizeOwner(userID, jobID string) error {
	company, err := uc.companyRepo.GetByUserID(userID)
	if err != nil {
		return err
	}
	if company == nil {
		return domain.ErrForbidden
	}
	job, err := uc.jobRepo.GetByID(jobID)
	if err != nil {
		return err
	}
	if job == nil {
		return domain.ErrNotFound
	}
	if job.CompanyID != company.ID {
		return domain.ErrForbidden
	}
	return nil
}

// splitSkills separa el campo de habilidades del formulario (coma) en lista.
func splitSkills(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

func toApplicationResponse(a *entity.Application) *dto.ApplicationResponse {
	resp := &dto.ApplicationResponse{
		ID:           a.ID,
		JobID:        a.JobID,
		Status:       a.Status,
		Resume:       a.Resume,
		CoverLetter:  a.CoverLetter,
		NoticePeriod: a.NoticePeriod,
		Relocation:   a.Relocation,
		Skills:       a.Skills,
		AppliedAt:    a.AppliedAt,
	}
	if a.ExpectedSalary.Valid {
		v := a.ExpectedSalary.Decimal
		resp.ExpectedSalary = &v
	}
	return resp
}
