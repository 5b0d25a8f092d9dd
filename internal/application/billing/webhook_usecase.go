package billing

import (
	"context"

	"github.com/jhoicas/Empleos-api/internal/application/dto"
	"github.com/jhoicas/Empleos-api/internal/domain"
	"github.com/jhoicas/Empleos-api/internal/domain/repository"
)

// EventCheckoutCompleted único tipo de evento que muta estado; el resto se
// acepta y se ignora.
const EventCheckoutCompleted = "checkout.session.completed"

// PaymentWebhookUseCase procesa eventos ya verificados del proveedor de pagos.
// La verificación de firma ocurre antes, en el handler; aquí solo llega
// payload auténtico.
type PaymentWebhookUseCase struct {
	userRepo    repository.UserRepository
	companyRepo repository.CompanyRepository
	jobRepo     repository.JobPostRepository
	invalidator ListingCacheInvalidator
}

// NewPaymentWebhookUseCase construye el caso de uso. invalidator puede ser nil.
func NewPaymentWebhookUseCase(userRepo repository.UserRepository, companyRepo repository.CompanyRepository, jobRepo repository.JobPostRepository, invalidator ListingCacheInvalidator) *PaymentWebhookUseCase {
	return &PaymentWebhookUseCase{userRepo: userRepo, companyRepo: companyRepo, jobRepo: jobRepo, invalidator: invalidator}
}

// HandleEvent procesa un evento. Para checkout.session.completed resuelve
// cliente → usuario → empresa y activa el aviso con alcance (jobId, companyId):
// un jobId ajeno a la empresa pagadora no coincide con ninguna fila y no
// activa nada. Cualquier otro tipo de evento es un no-op.
//
// Errores: ErrInvalidInput si falta el jobId en metadata; ErrNotFound si el
// cliente, la empresa o el aviso no resuelven (el handler decide el código).
func (uc *PaymentWebhookUseCase) HandleEvent(event dto.PaymentEvent) error {
	if event.Type != EventCheckoutCompleted {
		return nil
	}

	jobID := event.Data.Object.Metadata["jobId"]
	if jobID == "" {
		return domain.ErrInvalidInput
	}

	user, err := uc.userRepo.GetByPaymentCustomerID(event.Data.Object.Customer)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}
	company, err := uc.companyRepo.GetByUserID(user.ID)
	if err != nil {
		return err
	}
	if company == nil {
		return domain.ErrNotFound
	}

	ok, err := uc.jobRepo.Activate(jobID, company.ID)
	if err != nil {
		return err
	}
	if !ok {
		// Aviso inexistente o de otra empresa: cero filas tocadas.
		return domain.ErrNotFound
	}

	// El aviso pasó de draft a active: sin esto, el listado cacheado seguiría
	// sirviendo la página vieja hasta vencer el TTL.
	if uc.invalidator != nil {
		uc.invalidator.Invalidate(context.Background())
	}
	return nil
}
