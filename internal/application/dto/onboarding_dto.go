package dto

import "time"

// CreateCompanyRequest onboarding de empresa.
type CreateCompanyRequest struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	About    string `json:"about"`
	Logo     string `json:"logo"`
	Website  string `json:"website"`
	XAccount string `json:"x_account"`
}

// CompanyResponse representación pública de una empresa.
type CompanyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	About     string    `json:"about"`
	Logo      string    `json:"logo"`
	Website   string    `json:"website"`
	XAccount  string    `json:"x_account,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateJobSeekerRequest onboarding de candidato.
type CreateJobSeekerRequest struct {
	Name   string `json:"name"`
	About  string `json:"about"`
	Resume string `json:"resume"`
}

// JobSeekerResponse representación pública de un candidato.
type JobSeekerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	About     string    `json:"about"`
	Resume    string    `json:"resume"`
	CreatedAt time.Time `json:"created_at"`
}
