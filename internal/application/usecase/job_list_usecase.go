package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jhoicas/Empleos-api/internal/application/dto"
	"github.com/jhoicas/Empleos-api/internal/domain"
	"github.com/jhoicas/Empleos-api/internal/domain/repository"
	"github.com/jhoicas/Empleos-api/pkg/logger"
)

const (
	jobsCacheVersionKey = "jobs:ver"
	jobsCacheTTL        = 60 * time.Second

	defaultPageSize = 10
	maxPageSize     = 50
)

// locationWorldwide valor sentinela del filtro: equivale a no filtrar.
const locationWorldwide = "worldwide"

var titleCaser = cases.Title(language.Und)

// ListInvalidator invalida el cache del listado público subiendo la versión
// del namespace. Nil-safe: sin cache configurado es un no-op.
type ListInvalidator struct {
	cache ListCache
}

// NewListInvalidator construye el invalidador.
func NewListInvalidator(cache ListCache) *ListInvalidator {
	return &ListInvalidator{cache: cache}
}

// Invalidate sube la versión; las claves viejas quedan huérfanas y expiran por TTL.
func (iv *ListInvalidator) Invalidate(ctx context.Context) {
	if iv == nil || iv.cache == nil {
		return
	}
	_, _ = iv.cache.Incr(ctx, jobsCacheVersionKey)
}

// JobListUseCase listado público de avisos: solo status = active, filtros de
// tipo de contratación y ubicación, más recientes primero, con cache
// read-through en Redis.
type JobListUseCase struct {
	jobRepo repository.JobPostRepository
	cache   ListCache
	log     *logger.Logger
}

// NewJobListUseCase construye el caso de uso. cache puede ser nil.
func NewJobListUseCase(jobRepo repository.JobPostRepository, cache ListCache, log *logger.Logger) *JobListUseCase {
	return &JobListUseCase{jobRepo: jobRepo, cache: cache, log: log}
}

// List ejecuta la consulta del listado.
func (uc *JobListUseCase) List(ctx context.Context, q dto.JobListQuery) (*dto.JobListResponse, error) {
	page := q.Page
	if page <= 0 {
		page = 1
	}
	size := q.PageSize
	if size <= 0 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		return nil, domain.ErrInvalidInput
	}

	filter := repository.JobFilter{
		JobTypes: normalizeJobTypes(q.JobTypes),
		Location: normalizeLocation(q.Location),
	}

	key := uc.cacheKey(ctx, page, size, filter)
	if uc.cache != nil {
		var cached dto.JobListResponse
		hit, err := uc.cache.GetJSON(ctx, key, &cached)
		if err == nil && hit {
			return &cached, nil
		}
	}

	offset := (page - 1) * size
	rows, err := uc.jobRepo.ListActive(filter, size, offset)
	if err != nil {
		return nil, err
	}
	total, err := uc.jobRepo.CountActive(filter)
	if err != nil {
		return nil, err
	}

	cards := make([]dto.JobCard, 0, len(rows))
	for _, row := range rows {
		cards = append(cards, dto.JobCard{
			ID:             row.Job.ID,
			JobTitle:       row.Job.JobTitle,
			EmploymentType: row.Job.EmploymentType,
			Location:       row.Job.Location,
			SalaryFrom:     row.Job.SalaryFrom,
			SalaryTo:       row.Job.SalaryTo,
			Applicants:     row.Job.Applicants,
			CreatedAt:      row.Job.CreatedAt,
			Company: dto.JobCardCompany{
				Name:     row.CompanyName,
				Logo:     row.CompanyLogo,
				Location: row.CompanyLocation,
				About:    row.CompanyAbout,
			},
		})
	}

	resp := &dto.JobListResponse{
		Jobs:        cards,
		TotalPages:  (total + size - 1) / size,
		CurrentPage: page,
	}

	if uc.cache != nil {
		if err := uc.cache.SetJSON(ctx, key, resp, jobsCacheTTL); err != nil && uc.log != nil {
			uc.log.Warn().Err(err).Str("key", key).Msg("no se pudo cachear el listado")
		}
	}
	return resp, nil
}

// cacheKey arma la clave versionada de la página consultada.
func (uc *JobListUseCase) cacheKey(ctx context.Context, page, size int, f repository.JobFilter) string {
	ver := "0"
	if uc.cache != nil {
		if v, err := uc.cache.Get(ctx, jobsCacheVersionKey); err == nil && v != "" {
			ver = v
		}
	}
	return fmt.Sprintf("jobs:v%s:p%d:s%d:t%s:l%s",
		ver, page, size, strings.Join(f.JobTypes, ","), f.Location)
}

// normalizeJobTypes depura y ordena el filtro de tipos para que dos consultas
// equivalentes compartan clave de cache.
func normalizeJobTypes(types []string) []string {
	out := make([]string, 0, len(types))
	for _, t := range types {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// normalizeLocation homogeneiza la capitalización de la ubicación
// ("bogotá" y "Bogotá" son el mismo filtro); "worldwide" no filtra.
func normalizeLocation(loc string) string {
	loc = strings.TrimSpace(loc)
	if loc == "" || strings.EqualFold(loc, locationWorldwide) {
		return ""
	}
	return titleCaser.String(strings.ToLower(loc))
}
