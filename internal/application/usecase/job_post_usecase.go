package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Empleos-api/internal/application/billing"
	"github.com/jhoicas/Empleos-api/internal/application/dto"
	"github.com/jhoicas/Empleos-api/internal/domain"
	"github.com/jhoicas/Empleos-api/internal/domain/entity"
	"github.com/jhoicas/Empleos-api/internal/domain/repository"
)

// JobPostUseCase casos de uso de avisos para la empresa: alta (con checkout de
// pago), edición, baja y consulta de los propios.
type JobPostUseCase struct {
	jobRepo     repository.JobPostRepository
	companyRepo repository.CompanyRepository
	userRepo    repository.UserRepository
	payments    billing.PaymentGateway
	events      EventDispatcher
	invalidator *ListInvalidator
	publicURL   string
	currency    string
}

// NewJobPostUseCase construye el caso de uso.
func NewJobPostUseCase(
	jobRepo repository.JobPostRepository,
	companyRepo repository.CompanyRepository,
	userRepo repository.UserRepository,
	payments billing.PaymentGateway,
	events EventDispatcher,
	invalidator *ListInvalidator,
	publicURL, currency string,
) *JobPostUseCase {
	return &JobPostUseCase{
		jobRepo:     jobRepo,
		companyRepo: companyRepo,
		userRepo:    userRepo,
		payments:    payments,
		events:      events,
		invalidator: invalidator,
		publicURL:   publicURL,
		currency:    currency,
	}
}

// Create da de alta un aviso en draft, emite job/created al despachador y crea
// la sesión de checkout con el jobId en metadata. La tarifa se valida ANTES de
// insertar: nunca queda un aviso sin nivel de precio comprable.
func (uc *JobPostUseCase) Create(ctx context.Context, userID string, in dto.CreateJobRequest) (*dto.CreateJobResponse, error) {
	company, err := uc.companyRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrForbidden
	}

	if in.JobTitle == "" || in.JobDescription == "" || in.Location == "" {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidEmploymentType(in.EmploymentType) {
		return nil, domain.ErrInvalidInput
	}
	if in.SalaryTo.LessThan(in.SalaryFrom) {
		return nil, domain.ErrInvalidInput
	}
	tier, ok := billing.PriceForDuration(in.ListingDuration)
	if !ok {
		return nil, domain.ErrInvalidInput
	}

	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	customerID := user.PaymentCustomerID
	if customerID == "" {
		customerID, err = uc.payments.CreateCustomer(ctx, user.Email, user.Name)
		if err != nil {
			return nil, err
		}
		if err := uc.userRepo.SetPaymentCustomerID(userID, customerID); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	job := &entity.JobPost{
		ID:              uuid.New().String(),
		CompanyID:       company.ID,
		JobTitle:        in.JobTitle,
		JobDescription:  in.JobDescription,
		EmploymentType:  in.EmploymentType,
		Location:        in.Location,
		SalaryFrom:      in.SalaryFrom,
		SalaryTo:        in.SalaryTo,
		ListingDuration: in.ListingDuration,
		Benefits:        in.Benefits,
		Status:          entity.JobStatusDraft,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.jobRepo.Create(job); err != nil {
		return nil, err
	}

	if err := uc.events.Send(ctx, EventJobCreated, map[string]any{
		"jobId":          job.ID,
		"expirationDays": job.ListingDuration,
	}); err != nil {
		return nil, fmt.Errorf("emitir job/created: %w", err)
	}

	session, err := uc.payments.CreateCheckoutSession(ctx, billing.CheckoutSessionInput{
		CustomerID:  customerID,
		ProductName: fmt.Sprintf("Publicación de aviso - %d días", tier.Days),
		Description: tier.Description,
		Currency:    uc.currency,
		UnitAmount:  tier.Price,
		Metadata:    map[string]string{"jobId": job.ID},
		SuccessURL:  uc.publicURL + "/payment/success",
		CancelURL:   uc.publicURL + "/payment/cancel",
	})
	if err != nil {
		return nil, err
	}

	return &dto.CreateJobResponse{
		Job:         *toJobResponse(job),
		CheckoutURL: session.URL,
	}, nil
}

// Update edita un aviso con alcance de propiedad: el UPDATE va condicionado
// por (id, company_id) derivado del actor, nunca del cliente.
func (uc *JobPostUseCase) Update(ctx context.Context, userID, jobID string, in dto.UpdateJobRequest) (*dto.JobResponse, error) {
	company, err := uc.companyRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrForbidden
	}

	job, err := uc.jobRepo.GetByID(jobID)
	if err != nil {
		return nil, err
	}
	if job == nil || job.CompanyID != company.ID {
		// No distinguimos "no existe" de "no es tuyo".
		return nil, domain.ErrNotFound
	}

	if in.JobTitle != nil {
		job.JobTitle = *in.JobTitle
	}
	if in.JobDescription != nil {
		job.JobDescription = *in.JobDescription
	}
	if in.EmploymentType != nil {
		if !entity.ValidEmploymentType(*in.EmploymentType) {
			return nil, domain.ErrInvalidInput
		}
		job.EmploymentType = *in.EmploymentType
	}
	if in.Location != nil {
		job.Location = *in.Location
	}
	if in.SalaryFrom != nil {
		job.SalaryFrom = *in.SalaryFrom
	}
	if in.SalaryTo != nil {
		job.SalaryTo = *in.SalaryTo
	}
	if job.SalaryTo.LessThan(job.SalaryFrom) {
		return nil, domain.ErrInvalidInput
	}
	if in.Benefits != nil {
		job.Benefits = in.Benefits
	}
	job.UpdatedAt = time.Now()

	ok, err := uc.jobRepo.Update(job, company.ID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrNotFound
	}
	uc.invalidator.Invalidate(ctx)
	return toJobResponse(job), nil
}

// Delete borra un aviso con alcance de propiedad y emite la cancelación de la
// expiración programada.
func (uc *JobPostUseCase) Delete(ctx context.Context, userID, jobID string) error {
	company, err := uc.companyRepo.GetByUserID(userID)
	if err != nil {
		return err
	}
	if company == nil {
		return domain.ErrForbidden
	}
	ok, err := uc.jobRepo.Delete(jobID, company.ID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	uc.invalidator.Invalidate(ctx)

	if err := uc.events.Send(ctx, EventJobCancelExpiration, map[string]any{
		"jobId": jobID,
	}); err != nil {
		return fmt.Errorf("emitir job/cancel.expiration: %w", err)
	}
	return nil
}

// ListMine devuelve todos los avisos de la empresa del actor, en cualquier estado.
func (uc *JobPostUseCase) ListMine(userID string) ([]dto.JobResponse, error) {
	company, err := uc.companyRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrForbidden
	}
	jobs, err := uc.jobRepo.ListByCompany(company.ID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, *toJobResponse(j))
	}
	return out, nil
}

// GetByID devuelve el detalle de un aviso. Los avisos no activos solo son
// visibles para su empresa dueña; para el resto es como si no existieran.
func (uc *JobPostUseCase) GetByID(jobID, actorUserID string) (*dto.JobResponse, error) {
	job, err := uc.jobRepo.GetByID(jobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, domain.ErrNotFound
	}
	if job.Status != entity.JobStatusActive {
		if actorUserID == "" {
			return nil, domain.ErrNotFound
		}
		company, err := uc.companyRepo.GetByUserID(actorUserID)
		if err != nil {
			return nil, err
		}
		if company == nil || company.ID != job.CompanyID {
			return nil, domain.ErrNotFound
		}
	}
	return toJobResponse(job), nil
}

func toJobResponse(j *entity.JobPost) *dto.JobResponse {
	return &dto.JobResponse{
		ID:              j.ID,
		CompanyID:       j.CompanyID,
		JobTitle:        j.JobTitle,
		JobDescription:  j.JobDescription,
		EmploymentType:  j.EmploymentType,
		Location:        j.Location,
		SalaryFrom:      j.SalaryFrom,
		SalaryTo:        j.SalaryTo,
		ListingDuration: j.ListingDuration,
		Benefits:        j.Benefits,
		Status:          j.Status,
		Applicants:      j.Applicants,
		CreatedAt:       j.CreatedAt,
	}
}
