package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateJobRequest alta de un aviso. El aviso nace en draft; pasa a active
// cuando el proveedor de pagos confirma el checkout.
type CreateJobRequest struct {
	JobTitle        string          `json:"job_title"`
	JobDescription  string          `json:"job_description"`
	EmploymentType  string          `json:"employment_type"`
	Location        string          `json:"location"`
	SalaryFrom      decimal.Decimal `json:"salary_from"`
	SalaryTo        decimal.Decimal `json:"salary_to"`
	ListingDuration int             `json:"listing_duration"`
	Benefits        []string        `json:"benefits"`
}

// UpdateJobRequest actualización de un aviso (campos opcionales).
type UpdateJobRequest struct {
	JobTitle        *string          `json:"job_title"`
	JobDescription  *string          `json:"job_description"`
	EmploymentType  *string          `json:"employment_type"`
	Location        *string          `json:"location"`
	SalaryFrom      *decimal.Decimal `json:"salary_from"`
	SalaryTo        *decimal.Decimal `json:"salary_to"`
	Benefits        []string         `json:"benefits"`
}

// JobResponse representación de un aviso.
type JobResponse struct {
	ID              string          `json:"id"`
	CompanyID       string          `json:"company_id"`
	JobTitle        string          `json:"job_title"`
	JobDescription  string          `json:"job_description"`
	EmploymentType  string          `json:"employment_type"`
	Location        string          `json:"location"`
	SalaryFrom      decimal.Decimal `json:"salary_from"`
	SalaryTo        decimal.Decimal `json:"salary_to"`
	ListingDuration int             `json:"listing_duration"`
	Benefits        []string        `json:"benefits"`
	Status          string          `json:"status"`
	Applicants      int             `json:"applicants"`
	CreatedAt       time.Time       `json:"created_at"`
}

// CreateJobResponse aviso recién creado más la URL de pago a la que debe
// redirigirse la empresa.
type CreateJobResponse struct {
	Job         JobResponse `json:"job"`
	CheckoutURL string      `json:"checkout_url"`
}

// JobListQuery parámetros del listado público.
type JobListQuery struct {
	Page     int      `query:"page"`
	PageSize int      `query:"page_size"`
	JobTypes []string `query:"job_types"`
	Location string   `query:"location"`
}

// JobCardCompany tarjeta de empresa embebida en cada fila del listado.
type JobCardCompany struct {
	Name     string `json:"name"`
	Logo     string `json:"logo"`
	Location string `json:"location"`
	About    string `json:"about"`
}

// JobCard fila del listado público.
type JobCard struct {
	ID             string          `json:"id"`
	JobTitle       string          `json:"job_title"`
	EmploymentType string          `json:"employment_type"`
	Location       string          `json:"location"`
	SalaryFrom     decimal.Decimal `json:"salary_from"`
	SalaryTo       decimal.Decimal `json:"salary_to"`
	Applicants     int             `json:"applicants"`
	CreatedAt      time.Time       `json:"created_at"`
	Company        JobCardCompany  `json:"company"`
}

// JobListResponse página del listado público.
type JobListResponse struct {
	Jobs        []JobCard `json:"jobs"`
	TotalPages  int       `json:"total_pages"`
	CurrentPage int       `json:"current_page"`
}
