package usecase_test

import (
	"context"
	"encoding/json"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Empleos-api/internal/application/dto"
	"github.com/jhoicas/Empleos-api/internal/application/usecase"
	"github.com/jhoicas/Empleos-api/internal/domain"
	"github.com/jhoicas/Empleos-api/internal/domain/entity"
	"github.com/jhoicas/Empleos-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

// fakeListRepo captura la consulta y devuelve filas fijas.
type fakeListRepo struct {
	rows       []*repository.ActiveJobRow
	total      int
	lastFilter repository.JobFilter
	lastLimit  int
	lastOffset int
	calls      int
}

func (f *fakeListRepo) Create(*entity.JobPost) error { return nil }
func (f *fakeListRepo) GetByID(string) (*entity.JobPost, error) { return nil, nil }
func (f *fakeListRepo) Update(*entity.JobPost, string) (bool, error) { return false, nil }
func (f *fakeListRepo) Delete(string, string) (bool, error) { return false, nil }
func (f *fakeListRepo) Activate(string, string) (bool, error) { return false, nil }
func (f *fakeListRepo) ListByCompany(string) ([]*entity.JobPost, error) {
	return nil, nil
}
func (f *fakeListRepo) ListActive(filter repository.JobFilter, limit, offset int) ([]*repository.ActiveJobRow, error) {
	f.lastFilter = filter
	f.lastLimit = limit
	f.lastOffset = offset
	f.calls++
	return f.rows, nil
}
func (f *fakeListRepo) CountActive(repository.JobFilter) (int, error) { return f.total, nil }
func (f *fakeListRepo) IncrementApplicants(string) error { return nil }

// fakeCache cache en memoria con contador de versión.
type fakeCache struct {
	data    map[string][]byte
	version int64
}

func newFakeCache() *fakeCache { return &fakeCache{data: map[string][]byte{}} }

func (f *fakeCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	b, ok := f.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}
func (f *fakeCache) SetJSON(_ context.Context, key string, v any, _ time.Duration) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	f.data[key] = b
	return nil
}
func (f *fakeCache) Incr(context.Context, string) (int64, error) {
	f.version++
	return f.version, nil
}
func (f *fakeCache) Get(context.Context, string) (string, error) {
	if f.version == 0 {
		return "", nil
	}
	return strconv.FormatInt(f.version, 10), nil
}

func activeRow(id string) *repository.ActiveJobRow {
	return &repository.ActiveJobRow{
		Job:         entity.JobPost{ID: id, JobTitle: "Backend Dev", Status: entity.JobStatusActive},
		CompanyName: "Acme",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestList_DefaultsDePaginacion(t *testing.T) {
	repo := &fakeListRepo{rows: []*repository.ActiveJobRow{activeRow("j1")}, total: 25}
	uc := usecase.NewJobListUseCase(repo, nil, nil)

	out, err := uc.List(context.Background(), dto.JobListQuery{})
	require.NoError(t, err)

	assert.Equal(t, 10, repo.lastLimit, "sin page_size debe usarse el default")
	assert.Equal(t, 0, repo.lastOffset, "sin page debe consultarse la primera página")
	assert.Equal(t, 1, out.CurrentPage)
	assert.Equal(t, 3, out.TotalPages, "25 avisos en páginas de 10 son 3 páginas")
}

func TestList_PageSizeExcedido_RetornaValidation(t *testing.T) {
	uc := usecase.NewJobListUseCase(&fakeListRepo{}, nil, nil)

	_, err := uc.List(context.Background(), dto.JobListQuery{PageSize: 51})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestList_OffsetDePaginasSiguientes(t *testing.T) {
	repo := &fakeListRepo{total: 100}
	uc := usecase.NewJobListUseCase(repo, nil, nil)

	_, err := uc.List(context.Background(), dto.JobListQuery{Page: 3, PageSize: 20})
	require.NoError(t, err)

	assert.Equal(t, 20, repo.lastLimit)
	assert.Equal(t, 40, repo.lastOffset)
}

func TestList_NormalizaFiltros(t *testing.T) {
	repo := &fakeListRepo{}
	uc := usecase.NewJobListUseCase(repo, nil, nil)

	_, err := uc.List(context.Background(), dto.JobListQuery{
		JobTypes: []string{" Full-Time ", "CONTRACT", ""},
		Location: "bogotá",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"contract", "full-time"}, repo.lastFilter.JobTypes,
		"los tipos deben normalizarse a minúsculas y ordenarse")
	assert.Equal(t, "Bogotá", repo.lastFilter.Location,
		"la ubicación debe homogeneizar capitalización")
}

func TestList_WorldwideNoFiltra(t *testing.T) {
	repo := &fakeListRepo{}
	uc := usecase.NewJobListUseCase(repo, nil, nil)

	_, err := uc.List(context.Background(), dto.JobListQuery{Location: "Worldwide"})
	require.NoError(t, err)

	assert.Empty(t, repo.lastFilter.Location, "worldwide equivale a no filtrar por ubicación")
}

func TestList_SegundaConsultaSaleDelCache(t *testing.T) {
	repo := &fakeListRepo{rows: []*repository.ActiveJobRow{activeRow("j1")}, total: 1}
	c := newFakeCache()
	uc := usecase.NewJobListUseCase(repo, c, nil)

	first, err := uc.List(context.Background(), dto.JobListQuery{})
	require.NoError(t, err)
	second, err := uc.List(context.Background(), dto.JobListQuery{})
	require.NoError(t, err)

	assert.Equal(t, 1, repo.calls, "la segunda consulta idéntica no debe tocar la base")
	assert.Equal(t, first.Jobs, second.Jobs)
}

func TestList_InvalidateCortaElCache(t *testing.T) {
	repo := &fakeListRepo{rows: []*repository.ActiveJobRow{activeRow("j1")}, total: 1}
	c := newFakeCache()
	uc := usecase.NewJobListUseCase(repo, c, nil)
	invalidator := usecase.NewListInvalidator(c)

	_, err := uc.List(context.Background(), dto.JobListQuery{})
	require.NoError(t, err)

	invalidator.Invalidate(context.Background())

	_, err = uc.List(context.Background(), dto.JobListQuery{})
	require.NoError(t, err)
	assert.Equal(t, 2, repo.calls,
		"tras invalidar, la consulta debe volver a la base (clave con versión nueva)")
}

func TestInvalidator_NilSeguro(t *testing.T) {
	var iv *usecase.ListInvalidator
	assert.NotPanics(t, func() { iv.Invalidate(context.Background()) })
	assert.NotPanics(t, func() { usecase.NewListInvalidator(nil).Invalidate(context.Background()) })
}
