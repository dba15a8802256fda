// Package auth implementa el registro y el login de cuentas.
package auth

import (
	"context"
	"crypto/subtle"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/allanborges/restaurant-api/internal/application/dto"
	"github.com/allanborges/restaurant-api/internal/domain"
	"github.com/allanborges/restaurant-api/internal/domain/entity"
	"github.com/allanborges/restaurant-api/internal/domain/repository"
	"github.com/allanborges/restaurant-api/pkg/jwt"
	"github.com/allanborges/restaurant-api/pkg/logger"
)

// AuthUseCase casos de uso de autenticación: registro pendiente, alta de admin
// por bootstrap y login.
type AuthUseCase struct {
	users           repository.UserAccountRepository
	tokens          *jwt.Service
	bootstrapSecret string
	log             *logger.Logger
}

// NewAuthUseCase construye el caso de uso.
func NewAuthUseCase(users repository.UserAccountRepository, tokens *jwt.Service, bootstrapSecret string, log *logger.Logger) *AuthUseCase {
	return &AuthUseCase{users: users, tokens: tokens, bootstrapSecret: bootstrapSecret, log: log}
}

// RegisterPending crea una cuenta pendiente de aprobación: rol CLIENT,
// deshabilitada e inactivada desde ahora. Username, email y NIF deben ser
// únicos. El password se hashea con bcrypt antes de persistir.
func (uc *AuthUseCase) RegisterPending(ctx context.Context, in dto.RegisterUserRequest) (*dto.UserResponse, error) {
	if err := uc.checkUniqueness(ctx, in); err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.UserAccount{
		Username:     in.Username,
		PasswordHash: string(hash),
		Name:         in.Name,
		Email:        in.Email,
		NIF:          optional(in.NIF),
		Roles:        []string{entity.RoleClient},
		Enabled:      false,
	}
	user.Stamp(in.Username, now)
	user.Inactivate(in.Username, now) // pendiente hasta que un admin apruebe
	if err := uc.setAddresses(user, in.Addresses); err != nil {
		return nil, err
	}
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}
	uc.log.Info().Str("username", user.Username).Msg("cuenta registrada pendiente de aprobación")
	return dto.ToUserResponse(user), nil
}

// RegisterAdmin crea una cuenta ADMIN habilitada y activa, saltando el flujo
// de aprobación. El secreto provisto se compara en tiempo constante contra el
// secreto de bootstrap configurado; en caso de ausencia o desajuste, Forbidden.
func (uc *AuthUseCase) RegisterAdmin(ctx context.Context, in dto.RegisterUserRequest, providedSecret string) (*dto.UserResponse, error) {
	if err := uc.validateAdminSecret(providedSecret); err != nil {
		return nil, err
	}
	if existing, err := uc.users.FindByUsername(ctx, in.Username); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrUsernameExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	admin := &entity.UserAccount{
		Username:     in.Username,
		PasswordHash: string(hash),
		Name:         in.Name,
		Email:        in.Email,
		Roles:        []string{entity.RoleAdmin},
		Enabled:      true,
	}
	admin.Stamp(in.Username, time.Now())
	if err := uc.users.Create(ctx, admin); err != nil {
		return nil, err
	}
	uc.log.Info().Str("username", admin.Username).Msg("cuenta admin creada por bootstrap")
	return dto.ToUserResponse(admin), nil
}

// Login verifica las credenciales contra el hash almacenado y, de forma
// independiente, exige que la cuenta esté habilitada y no inactivada. Emite el
// token con los roles de la cuenta.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.AuthRequest) (*dto.AuthResponse, error) {
	user, err := uc.users.FindByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrBadCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrBadCredentials
	}
	// chequeo obligatorio e independiente de la verificación de credenciales
	if !user.CanAuthenticate() {
		return nil, domain.ErrAccountInactive
	}
	token, err := uc.tokens.Generate(user.Username, user.Roles)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{Token: token}, nil
}

// validateAdminSecret compara en tiempo constante (requisito duro: evita fugas
// por canal temporal en la igualdad).
func (uc *AuthUseCase) validateAdminSecret(provided string) error {
	if provided == "" || uc.bootstrapSecret == "" {
		return domain.ErrInvalidAdminSecret
	}
	if subtle.ConstantTimeCompare([]byte(provided), []byte(uc.bootstrapSecret)) != 1 {
		return domain.ErrInvalidAdminSecret
	}
	return nil
}

func (uc *AuthUseCase) checkUniqueness(ctx context.Context, in dto.RegisterUserRequest) error {
	if existing, err := uc.users.FindByUsername(ctx, in.Username); err != nil {
		return err
	} else if existing != nil {
		return domain.ErrUsernameExists
	}
	if existing, err := uc.users.FindByEmail(ctx, in.Email); err != nil {
		return err
	} else if existing != nil {
		return domain.ErrEmailExists
	}
	if in.NIF != "" {
		if existing, err := uc.users.FindByNIF(ctx, in.NIF); err != nil {
			return err
		} else if existing != nil {
			return domain.ErrNIFExists
		}
	}
	return nil
}

func (uc *AuthUseCase) setAddresses(user *entity.UserAccount, in []dto.AddressDTO) error {
	if len(in) == 0 {
		return nil
	}
	addresses := make([]entity.Address, 0, len(in))
	for _, a := range in {
		addresses = append(addresses, a.ToAddressEntity())
	}
	if err := user.SetAddresses(addresses); err != nil {
		return domain.ErrValidation
	}
	return nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
