package applications_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Empleos-api/internal/application/applications"
	"github.com/jhoicas/Empleos-api/internal/application/dto"
	"github.com/jhoicas/Empleos-api/internal/domain"
	"github.com/jhoicas/Empleos-api/internal/domain/entity"
	"github.com/jhoicas/Empleos-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de repositorios (en memoria)
// ──────────────────────────────────────────────────────────────────────────────

type fakeSeekerRepo struct {
	byUser map[string]*entity.JobSeeker
}

func (f *fakeSeekerRepo) Create(*entity.JobSeeker) error { return nil }
func (f *fakeSeekerRepo) GetByUserID(userID string) (*entity.JobSeeker, error) {
	return f.byUser[userID], nil
}
func (f *fakeSeekerRepo) Update(*entity.JobSeeker) error { return nil }

type fakeCompanyRepo struct {
	byUser map[string]*entity.Company
}

func (f *fakeCompanyRepo) Create(*entity.Company) error { return nil }
func (f *fakeCompanyRepo) GetByID(string) (*entity.Company, error) {
	return nil, nil
}
func (f *fakeCompanyRepo) GetByUserID(userID string) (*entity.Company, error) {
	return f.byUser[userID], nil
}
func (f *fakeCompanyRepo) Update(*entity.Company) error { return nil }

type fakeJobRepo struct {
	jobs       map[string]*entity.JobPost
	increments map[string]int
}

func (f *fakeJobRepo) Create(job *entity.JobPost) error { f.jobs[job.ID] = job; return nil }
func (f *fakeJobRepo) GetByID(id string) (*entity.JobPost, error) {
	return f.jobs[id], nil
}
func (f *fakeJobRepo) Update(*entity.JobPost, string) (bool, error) { return false, nil }
func (f *fakeJobRepo) Delete(string, string) (bool, error) { return false, nil }
func (f *fakeJobRepo) Activate(string, string) (bool, error) { return false, nil }
func (f *fakeJobRepo) ListByCompany(string) ([]*entity.JobPost, error) {
	return nil, nil
}
func (f *fakeJobRepo) ListActive(repository.JobFilter, int, int) ([]*repository.ActiveJobRow, error) {
	return nil, nil
}
func (f *fakeJobRepo) CountActive(repository.JobFilter) (int, error) { return 0, nil }
func (f *fakeJobRepo) IncrementApplicants(id string) error {
	if f.increments == nil {
		f.increments = map[string]int{}
	}
	f.increments[id]++
	return nil
}

type fakeAppRepo struct {
	apps        map[string]*entity.Application // clave job|user
	failCreate  error
	lastUpdated string
}

func appKey(jobID, userID string) string { return jobID + "|" + userID }

func (f *fakeAppRepo) Create(app *entity.Application) error {
	if f.failCreate != nil {
		return f.failCreate
	}
	key := appKey(app.JobID, app.UserID)
	if _, ok := f.apps[key]; ok {
		return domain.ErrDuplicate
	}
	if f.apps == nil {
		f.apps = map[string]*entity.Application{}
	}
	f.apps[key] = app
	return nil
}
func (f *fakeAppRepo) GetByJobAndUser(jobID, userID string) (*entity.Application, error) {
	return f.apps[appKey(jobID, userID)], nil
}
func (f *fakeAppRepo) ListByJob(string) ([]*repository.ApplicantRow, error) {
	return nil, nil
}
func (f *fakeAppRepo) ListByUser(string) ([]*repository.AppliedJobRow, error) {
	return nil, nil
}
func (f *fakeAppRepo) UpdateStatus(id, jobID, status string) (bool, error) {
	for _, a := range f.apps {
		if a.ID == id && a.JobID == jobID {
			a.Status = status
			f.lastUpdated = id
			return true, nil
		}
	}
	return false, nil
}

// fakeTxRunner ejecuta el cuerpo directamente, sin transacción real.
type fakeTxRunner struct {
	appRepo *fakeAppRepo
	jobRepo *fakeJobRepo
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(repository.ApplicationRepository, repository.JobPostRepository) error) error {
	return fn(f.appRepo, f.jobRepo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Armado del caso de uso con datos semilla
// ──────────────────────────────────────────────────────────────────────────────

const (
	seekerUserID = "user-seeker-1"
	ownerUserID  = "user-owner-1"
	otherUserID  = "user-owner-2"
	ownerCompany = "company-1"
	otherCompany = "company-2"
	activeJobID  = "job-1"
)

func buildUseCase() (*applications.UseCase, *fakeAppRepo, *fakeJobRepo) {
	seekers := &fakeSeekerRepo{byUser: map[string]*entity.JobSeeker{
		seekerUserID: {ID: "seeker-1", UserID: seekerUserID, Name: "Ana"},
	}}
	companies := &fakeCompanyRepo{byUser: map[string]*entity.Company{
		ownerUserID: {ID: ownerCompany, UserID: ownerUserID, Name: "Acme"},
		otherUserID: {ID: otherCompany, UserID: otherUserID, Name: "Globex"},
	}}
	jobs := &fakeJobRepo{jobs: map[string]*entity.JobPost{
		activeJobID: {ID: activeJobID, CompanyID: ownerCompany, JobTitle: "Backend Dev", Status: entity.JobStatusActive},
	}}
	apps := &fakeAppRepo{apps: map[string]*entity.Application{}}
	tx := &fakeTxRunner{appRepo: apps, jobRepo: jobs}
	return applications.NewUseCase(tx, apps, jobs, seekers, companies), apps, jobs
}

func applyRequest() dto.ApplyRequest {
	return dto.ApplyRequest{
		Resume:       "https://cv.example/ana.pdf",
		CoverLetter:  "me interesa el puesto",
		NoticePeriod: "15 días",
		Relocation:   true,
		Skills:       "go, postgres,  redis ",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Apply
// ──────────────────────────────────────────────────────────────────────────────

func TestApply_Exitosa_IncrementaContador(t *testing.T) {
	uc, apps, jobs := buildUseCase()

	out, err := uc.Apply(context.Background(), seekerUserID, activeJobID, applyRequest())
	require.NoError(t, err)

	assert.Equal(t, entity.ApplicationPending, out.Status, "la postulación debe nacer en pending")
	assert.Equal(t, []string{"go", "postgres", "redis"}, out.Skills,
		"las habilidades deben separarse por coma y recortarse")
	assert.Equal(t, 1, jobs.increments[activeJobID],
		"el contador de postulantes debe incrementarse en la misma operación")
	assert.NotNil(t, apps.apps[appKey(activeJobID, seekerUserID)])
}

func TestApply_SinPerfilCandidato_Retorna403(t *testing.T) {
	uc, _, _ := buildUseCase()

	// ownerUserID tiene empresa pero no perfil de candidato
	_, err := uc.Apply(context.Background(), ownerUserID, activeJobID, applyRequest())
	assert.ErrorIs(t, err, domain.ErrNotJobSeeker)
}

func TestApply_AvisoInexistente_RetornaNotFound(t *testing.T) {
	uc, _, _ := buildUseCase()

	_, err := uc.Apply(context.Background(), seekerUserID, "job-no-existe", applyRequest())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestApply_Duplicada_RetornaAlreadyApplied(t *testing.T) {
	uc, _, jobs := buildUseCase()

	_, err := uc.Apply(context.Background(), seekerUserID, activeJobID, applyRequest())
	require.NoError(t, err)

	_, err = uc.Apply(context.Background(), seekerUserID, activeJobID, applyRequest())
	assert.ErrorIs(t, err, domain.ErrAlreadyApplied)
	assert.Equal(t, 1, jobs.increments[activeJobID],
		"el segundo intento no debe volver a incrementar el contador")
}

// El doble submit concurrente pasa el pre-chequeo pero pierde en el constraint
// UNIQUE: el ErrDuplicate del repositorio debe mapearse a ErrAlreadyApplied.
func TestApply_CarreraDobleSubmit_MapeaDuplicate(t *testing.T) {
	uc, apps, jobs := buildUseCase()
	apps.failCreate = domain.ErrDuplicate

	_, err := uc.Apply(context.Background(), seekerUserID, activeJobID, applyRequest())
	assert.ErrorIs(t, err, domain.ErrAlreadyApplied)
	assert.Zero(t, jobs.increments[activeJobID],
		"una postulación que pierde la carrera no debe tocar el contador")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests ListApplicants / UpdateStatus — autorización de propiedad
// ──────────────────────────────────────────────────────────────────────────────

func TestListApplicants_NoDueno_RetornaForbidden(t *testing.T) {
	uc, _, _ := buildUseCase()

	_, err := uc.ListApplicants(otherUserID, activeJobID)
	assert.ErrorIs(t, err, domain.ErrForbidden,
		"una empresa ajena no debe ver los postulantes")
}

func TestListApplicants_SinEmpresa_RetornaForbidden(t *testing.T) {
	uc, _, _ := buildUseCase()

	_, err := uc.ListApplicants(seekerUserID, activeJobID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestUpdateStatus_DuenoCambiaEstado(t *testing.T) {
	uc, apps, _ := buildUseCase()

	_, err := uc.Apply(context.Background(), seekerUserID, activeJobID, applyRequest())
	require.NoError(t, err)
	app := apps.apps[appKey(activeJobID, seekerUserID)]

	err = uc.UpdateStatus(ownerUserID, activeJobID, app.ID, entity.ApplicationAccepted)
	require.NoError(t, err)
	assert.Equal(t, entity.ApplicationAccepted, app.Status)
}

func TestUpdateStatus_NoDueno_RetornaForbidden(t *testing.T) {
	uc, apps, _ := buildUseCase()

	_, err := uc.Apply(context.Background(), seekerUserID, activeJobID, applyRequest())
	require.NoError(t, err)
	app := apps.apps[appKey(activeJobID, seekerUserID)]

	err = uc.UpdateStatus(otherUserID, activeJobID, app.ID, entity.ApplicationRejected)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Equal(t, entity.ApplicationPending, app.Status,
		"el estado no debe cambiar cuando el actor no es el dueño")
}

func TestUpdateStatus_EstadoInvalido_RetornaValidation(t *testing.T) {
	uc, _, _ := buildUseCase()

	err := uc.UpdateStatus(ownerUserID, activeJobID, "app-x", "archivado")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateStatus_PostulacionDeOtroAviso_RetornaNotFound(t *testing.T) {
	uc, _, _ := buildUseCase()

	// La postulación no existe dentro del aviso del dueño: cero filas tocadas.
	err := uc.UpdateStatus(ownerUserID, activeJobID, "app-ajena", entity.ApplicationReviewed)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
