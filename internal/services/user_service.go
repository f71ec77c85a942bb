package services

import (
	"context"

	"github.com/velamar/pesca-api/internal/jobs"
	"github.com/velamar/pesca-api/internal/models"
	"github.com/velamar/pesca-api/internal/repository"
)

// UserService manages ERP user accounts
type UserService struct {
	userRepo repository.UserRepository
	emailSvc *EmailService
	worker   *jobs.Worker
}

func NewUserService(userRepo repository.UserRepository, emailSvc *EmailService, worker *jobs.Worker) *UserService {
	return &UserService{
		userRepo: userRepo,
		emailSvc: emailSvc,
		worker:   worker,
	}
}

// Create registers a new user account and sends the welcome email in the
// background. The account is created even if the email cannot be sent.
func (s *UserService) Create(ctx context.Context, user *models.User, password string) error {
	if len(password) < 8 {
		return ErrPasswordCorta
	}

	switch user.Role {
	case "":
		user.Role = models.RoleUser
	case models.RoleAdmin, models.RoleLiquidador, models.RoleUser:
	default:
		return ErrRolInvalido
	}

	if err := user.SetPassword(password); err != nil {
		return err
	}
	user.Active = true

	if err := s.userRepo.Create(ctx, user); err != nil {
		return err
	}

	if s.emailSvc != nil && s.worker != nil {
		bienvenido := *user
		s.worker.Enqueue(func(jobCtx context.Context) error {
			return s.emailSvc.SendAccountCreated(jobCtx, &bienvenido)
		})
	}

	return nil
}
