package billing_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Empleos-api/internal/application/billing"
	"github.com/jhoicas/Empleos-api/internal/domain"
	"github.com/jhoicas/Empleos-api/internal/domain/entity"
)

// fakePDFGen captura los datos del recibo y devuelve bytes fijos.
type fakePDFGen struct {
	lastData *billing.ReceiptData
}

func (f *fakePDFGen) GenerateReceiptPDF(_ context.Context, data *billing.ReceiptData) ([]byte, error) {
	f.lastData = data
	return []byte("%PDF-fake"), nil
}

func buildReceiptUseCase() (*billing.ReceiptUseCase, *fakePDFGen, *fakeJobRepo) {
	companies := &fakeCompanyRepo{byUser: map[string]*entity.Company{
		payingUserID: {ID: payingCompanyID, UserID: payingUserID, Name: "Acme"},
	}}
	jobs := &fakeJobRepo{jobs: map[string]*entity.JobPost{
		"job-activo": {ID: "job-activo", CompanyID: payingCompanyID, JobTitle: "Backend Dev",
			Status: entity.JobStatusActive, ListingDuration: 30},
		"job-borrador": {ID: "job-borrador", CompanyID: payingCompanyID,
			Status: entity.JobStatusDraft, ListingDuration: 30},
		"job-ajeno": {ID: "job-ajeno", CompanyID: "company-999",
			Status: entity.JobStatusActive, ListingDuration: 7},
	}}
	gen := &fakePDFGen{}
	return billing.NewReceiptUseCase(jobs, companies, gen, "INR"), gen, jobs
}

func TestGetReceipt_AvisoActivoPropio(t *testing.T) {
	uc, gen, _ := buildReceiptUseCase()

	out, err := uc.GetReceipt(context.Background(), payingUserID, "job-activo")
	require.NoError(t, err)
	assert.NotEmpty(t, out)

	require.NotNil(t, gen.lastData)
	assert.Equal(t, "Backend Dev", gen.lastData.JobTitle)
	assert.Equal(t, 30, gen.lastData.Days)
	assert.Equal(t, "INR", gen.lastData.Currency)
	assert.True(t, gen.lastData.Price.IntPart() == 179,
		"el precio debe salir de la tarifa de 30 días")
}

func TestGetReceipt_SinPagoConfirmado_RetornaConflict(t *testing.T) {
	uc, _, _ := buildReceiptUseCase()

	_, err := uc.GetReceipt(context.Background(), payingUserID, "job-borrador")
	assert.ErrorIs(t, err, domain.ErrConflict,
		"un aviso en draft no tiene recibo que emitir")
}

func TestGetReceipt_AvisoAjeno_RetornaForbidden(t *testing.T) {
	uc, _, _ := buildReceiptUseCase()

	_, err := uc.GetReceipt(context.Background(), payingUserID, "job-ajeno")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestGetReceipt_SinEmpresa_RetornaForbidden(t *testing.T) {
	uc, _, _ := buildReceiptUseCase()

	_, err := uc.GetReceipt(context.Background(), "user-sin-empresa", "job-activo")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestGetReceipt_AvisoInexistente_RetornaNotFound(t *testing.T) {
	uc, _, _ := buildReceiptUseCase()

	_, err := uc.GetReceipt(context.Background(), payingUserID, "job-fantasma")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
