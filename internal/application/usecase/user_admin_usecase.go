package usecase

import (
	"context"
	"time"

	"github.com/allanborges/restaurant-api/internal/application/dto"
	"github.com/allanborges/restaurant-api/internal/domain"
	"github.com/allanborges/restaurant-api/internal/domain/entity"
	"github.com/allanborges/restaurant-api/internal/domain/repository"
	"github.com/allanborges/restaurant-api/pkg/logger"
)

// UserAdminUseCase gestión de cuentas por administradores: listado y flujo de
// aprobación.
type UserAdminUseCase struct {
	users repository.UserAccountRepository
	// protectAdmins activa la variante estricta: una cuenta ADMIN no se
	// aprueba/modifica por esta vía ni se concede ADMIN mediante aprobación.
	protectAdmins bool
	log           *logger.Logger
}

// NewUserAdminUseCase construye el caso de uso.
func NewUserAdminUseCase(users repository.UserAccountRepository, protectAdmins bool, log *logger.Logger) *UserAdminUseCase {
	return &UserAdminUseCase{users: users, protectAdmins: protectAdmins, log: log}
}

// FindAll lista todas las cuentas proyectadas a la forma pública, sin paginación.
func (uc *UserAdminUseCase) FindAll(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := uc.users.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *dto.ToUserResponse(u))
	}
	return out, nil
}

// Approve aplica la acción de aprobación sobre la cuenta id en nombre de
// approvedBy. Petición ausente equivale a {roles: ninguno, enabled: true}.
//
// Roles: un conjunto no vacío reemplaza los actuales; si la cuenta no tiene
// roles, se asigna CLIENT por defecto; en otro caso se conservan.
// Enabled: nulo significa true. Al habilitar se limpia la inactivación y se
// registra el aprobador; al deshabilitar el estado de inactivación no se toca.
func (uc *UserAdminUseCase) Approve(ctx context.Context, id int64, req *dto.ApproveUserRequest, approvedBy string) (*dto.UserResponse, error) {
	if req == nil {
		req = &dto.ApproveUserRequest{}
	}
	for _, r := range req.Roles {
		if !entity.ValidRole(r) {
			return nil, domain.ErrValidation
		}
	}

	user, err := uc.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	if uc.protectAdmins {
		if user.HasRole(entity.RoleAdmin) {
			return nil, domain.ErrAdminApproval
		}
		for _, r := range req.Roles {
			if r == entity.RoleAdmin {
				return nil, domain.ErrAdminApproval
			}
		}
	}

	if len(req.Roles) > 0 {
		user.Roles = req.Roles
	} else if len(user.Roles) == 0 {
		user.Roles = []string{entity.RoleClient}
	}

	enable := req.Enabled == nil || *req.Enabled
	user.Approve(enable, approvedBy, time.Now())

	if err := uc.users.Update(ctx, user); err != nil {
		return nil, err
	}
	uc.log.Info().Int64("id", user.ID).Bool("enabled", enable).Str("by", approvedBy).Msg("cuenta aprobada")
	return dto.ToUserResponse(user), nil
}
