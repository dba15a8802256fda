package repository

import (
	"context"

	"github.com/allanborges/restaurant-api/internal/domain/entity"
)

// UserAccountRepository define el puerto de persistencia para UserAccount.
// Los Find* devuelven (nil, nil) cuando la cuenta no existe.
type UserAccountRepository interface {
	// Create persiste la cuenta con sus roles y direcciones en una única
	// transacción y rellena los IDs generados.
	Create(ctx context.Context, user *entity.UserAccount) error
	FindByID(ctx context.Context, id int64) (*entity.UserAccount, error)
	FindByUsername(ctx context.Context, username string) (*entity.UserAccount, error)
	FindByEmail(ctx context.Context, email string) (*entity.UserAccount, error)
	FindByNIF(ctx context.Context, nif string) (*entity.UserAccount, error)
	// Update persiste campos, roles y estado de inactivación de la cuenta.
	Update(ctx context.Context, user *entity.UserAccount) error
	// FindAll devuelve todas las cuentas con roles y direcciones cargados.
	FindAll(ctx context.Context) ([]*entity.UserAccount, error)
}
