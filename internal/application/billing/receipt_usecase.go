package billing

import (
	"context"
	"time"

	"github.com/jhoicas/Empleos-api/internal/domain"
	"github.com/jhoicas/Empleos-api/internal/domain/entity"
	"github.com/jhoicas/Empleos-api/internal/domain/repository"
)

// ReceiptUseCase genera el recibo PDF de la compra de una publicación.
// Solo la empresa dueña de un aviso ya activado puede descargarlo.
type ReceiptUseCase struct {
	jobRepo     repository.JobPostRepository
	companyRepo repository.CompanyRepository
	pdfGen      ReceiptPDFGenerator
	currency    string
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(jobRepo repository.JobPostRepository, companyRepo repository.CompanyRepository, pdfGen ReceiptPDFGenerator, currency string) *ReceiptUseCase {
	return &ReceiptUseCase{jobRepo: jobRepo, companyRepo: companyRepo, pdfGen: pdfGen, currency: currency}
}

// GetReceipt valida propiedad y estado del aviso y devuelve los bytes del PDF.
func (uc *ReceiptUseCase) GetReceipt(ctx context.Context, userID, jobID string) ([]byte, error) {
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
	if job == nil {
		return nil, domain.ErrNotFound
	}
	if job.CompanyID != company.ID {
		return nil, domain.ErrForbidden
	}
	if job.Status != entity.JobStatusActive {
		// Sin pago confirmado no hay recibo que emitir.
		return nil, domain.ErrConflict
	}

	tier, ok := PriceForDuration(job.ListingDuration)
	if !ok {
		return nil, domain.ErrInvalidInput
	}

	data := &ReceiptData{
		JobID:       job.ID,
		JobTitle:    job.JobTitle,
		CompanyName: company.Name,
		Days:        tier.Days,
		Description: tier.Description,
		Price:       tier.Price,
		Currency:    uc.currency,
		IssuedAt:    time.Now().Format("2006-01-02"),
	}
	return uc.pdfGen.GenerateReceiptPDF(ctx, data)
}
