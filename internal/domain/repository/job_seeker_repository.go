package repository

import "github.com/jhoicas/Empleos-api/internal/domain/entity"

// JobSeekerRepository define el puerto de persistencia para JobSeeker.
type JobSeekerRepository interface {
	Create(seeker *entity.JobSeeker) error
	GetByUserID(userID string) (*entity.JobSeeker, error)
	Update(seeker *entity.JobSeeker) error
}
