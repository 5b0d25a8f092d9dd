package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Empleos-api/internal/application/dto"
	"github.com/jhoicas/Empleos-api/internal/domain"
	"github.com/jhoicas/Empleos-api/internal/domain/entity"
	"github.com/jhoicas/Empleos-api/internal/domain/repository"
)

// OnboardingUseCase completa el onboarding de un usuario: elige rol y crea el
// perfil correspondiente (Company o JobSeeker, mutuamente excluyentes).
type OnboardingUseCase struct {
	userRepo    repository.UserRepository
	companyRepo repository.CompanyRepository
	seekerRepo  repository.JobSeekerRepository
}

// NewOnboardingUseCase construye el caso de uso.
func NewOnboardingUseCase(userRepo repository.UserRepository, companyRepo repository.CompanyRepository, seekerRepo repository.JobSeekerRepository) *OnboardingUseCase {
	return &OnboardingUseCase{userRepo: userRepo, companyRepo: companyRepo, seekerRepo: seekerRepo}
}

// CreateCompany crea el perfil de empresa y fija user_type = company.
func (uc *OnboardingUseCase) CreateCompany(userID string, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if user.OnboardingCompleted {
		return nil, domain.ErrAlreadyOnboarded
	}
	now := time.Now()
	company := &entity.Company{
		ID:        uuid.New().String(),
		UserID:    userID,
		Name:      in.Name,
		Location:  in.Location,
		About:     in.About,
		Logo:      in.Logo,
		Website:   in.Website,
		XAccount:  in.XAccount,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.companyRepo.Create(company); err != nil {
		return nil, err
	}
	if err := uc.userRepo.CompleteOnboarding(userID, entity.UserTypeCompany); err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// CreateJobSeeker crea el perfil de candidato y fija user_type = job_seeker.
func (uc *OnboardingUseCase) CreateJobSeeker(userID string, in dto.CreateJobSeekerRequest) (*dto.JobSeekerResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if user.OnboardingCompleted {
		return nil, domain.ErrAlreadyOnboarded
	}
	now := time.Now()
	seeker := &entity.JobSeeker{
		ID:        uuid.New().String(),
		UserID:    userID,
		Name:      in.Name,
		About:     in.About,
		Resume:    in.Resume,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.seekerRepo.Create(seeker); err != nil {
		return nil, err
	}
	if err := uc.userRepo.CompleteOnboarding(userID, entity.UserTypeJobSeeker); err != nil {
		return nil, err
	}
	return toJobSeekerResponse(seeker), nil
}

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	return &dto.CompanyResponse{
		ID:        c.ID,
		Name:      c.Name,
		Location:  c.Location,
		About:     c.About,
		Logo:      c.Logo,
		Website:   c.Website,
		XAccount:  c.XAccount,
		CreatedAt: c.CreatedAt,
	}
}

func toJobSeekerResponse(s *entity.JobSeeker) *dto.JobSeekerResponse {
	return &dto.JobSeekerResponse{
		ID:        s.ID,
		Name:      s.Name,
		About:     s.About,
		Resume:    s.Resume,
		CreatedAt: s.CreatedAt,
	}
}
