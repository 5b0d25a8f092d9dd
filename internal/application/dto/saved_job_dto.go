package dto

import "time"

// SavedJobResponse fila del listado de avisos guardados.
type SavedJobResponse struct {
	ID          string    `json:"id"`
	JobID       string    `json:"job_id"`
	JobTitle    string    `json:"job_title"`
	CompanyName string    `json:"company_name"`
	JobLocation string    `json:"job_location"`
	JobStatus   string    `json:"job_status"`
	SavedAt     time.Time `json:"saved_at"`
}
