package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/allanborges/restaurant-api/internal/domain"
	"github.com/allanborges/restaurant-api/internal/domain/entity"
	"github.com/allanborges/restaurant-api/internal/domain/repository"
)

var _ repository.UserAccountRepository = (*UserAccountRepo)(nil)

// UserAccountRepo implementación del puerto UserAccountRepository sobre PostgreSQL.
type UserAccountRepo struct {
	db DB
}

// NewUserAccountRepository construye el adaptador de persistencia de cuentas.
func NewUserAccountRepository(db DB) *UserAccountRepo {
	return &UserAccountRepo{db: db}
}

const userColumns = `id, username, password_hash, name, email, nif, enabled,
	created_by, created_date, updated_by, updated_date, inactivated_by, inactivated_date`

// Create inserta la cuenta, sus roles y sus direcciones en una única
// transacción y rellena los IDs generados.
func (r *UserAccountRepo) Create(ctx context.Context, user *entity.UserAccount) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	query := `
		INSERT INTO users (username, password_hash, name, email, nif, enabled,
			created_by, created_date, updated_by, updated_date, inactivated_by, inactivated_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`
	err = tx.QueryRow(ctx, query,
		user.Username, user.PasswordHash, user.Name, user.Email, user.NIF, user.Enabled,
		user.CreatedBy, user.CreatedDate, user.UpdatedBy, user.UpdatedDate,
		user.InactivatedBy, user.InactivatedDate,
	).Scan(&user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return mapUserUniqueViolation(err)
		}
		return fmt.Errorf("insert user: %w", err)
	}

	if err := insertRoles(ctx, tx, user.ID, user.Roles); err != nil {
		return err
	}
	for i := range user.Addresses {
		a := &user.Addresses[i]
		a.UserID = user.ID
		err := tx.QueryRow(ctx, `
			INSERT INTO user_addresses (user_id, street_name, door_number, postal_code, district,
				municipality, neighborhood, is_primary, created_by, created_date, updated_by, updated_date)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			RETURNING id`,
			a.UserID, a.StreetName, a.DoorNumber, a.PostalCode, a.District,
			a.Municipality, a.Neighborhood, a.Primary,
			user.CreatedBy, user.CreatedDate, user.UpdatedBy, user.UpdatedDate,
		).Scan(&a.ID)
		if err != nil {
			return fmt.Errorf("insert address: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// FindByID obtiene una cuenta por ID con roles y direcciones; (nil, nil) si no existe.
func (r *UserAccountRepo) FindByID(ctx context.Context, id int64) (*entity.UserAccount, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

// FindByUsername obtiene una cuenta por username; (nil, nil) si no existe.
func (r *UserAccountRepo) FindByUsername(ctx context.Context, username string) (*entity.UserAccount, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username)
}

// FindByEmail obtiene una cuenta por email; (nil, nil) si no existe.
func (r *UserAccountRepo) FindByEmail(ctx context.Context, email string) (*entity.UserAccount, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

// FindByNIF obtiene una cuenta por NIF; (nil, nil) si no existe.
func (r *UserAccountRepo) FindByNIF(ctx context.Context, nif string) (*entity.UserAccount, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE nif = $1`, nif)
}

// Update persiste campos, estado de inactivación y roles (reemplazo completo
// del conjunto) en una transacción.
func (r *UserAccountRepo) Update(ctx context.Context, user *entity.UserAccount) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx, `
		UPDATE users SET name = $2, email = $3, nif = $4, enabled = $5,
			updated_by = $6, updated_date = $7, inactivated_by = $8, inactivated_date = $9
		WHERE id = $1`,
		user.ID, user.Name, user.Email, user.NIF, user.Enabled,
		user.UpdatedBy, user.UpdatedDate, user.InactivatedBy, user.InactivatedDate,
	)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM user_roles WHERE user_id = $1`, user.ID); err != nil {
		return fmt.Errorf("delete roles: %w", err)
	}
	if err := insertRoles(ctx, tx, user.ID, user.Roles); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// FindAll devuelve todas las cuentas con roles y direcciones cargados.
func (r *UserAccountRepo) FindAll(ctx context.Context) ([]*entity.UserAccount, error) {
	rows, err := r.db.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []*entity.UserAccount
	byID := make(map[int64]*entity.UserAccount)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
		byID[u.ID] = u
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return users, nil
	}

	ids := make([]int64, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}
	if err := r.loadRoles(ctx, byID, ids); err != nil {
		return nil, err
	}
	if err := r.loadAddresses(ctx, byID, ids); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserAccountRepo) findOne(ctx context.Context, query string, arg any) (*entity.UserAccount, error) {
	u, err := scanUser(r.db.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	byID := map[int64]*entity.UserAccount{u.ID: u}
	if err := r.loadRoles(ctx, byID, []int64{u.ID}); err != nil {
		return nil, err
	}
	if err := r.loadAddresses(ctx, byID, []int64{u.ID}); err != nil {
		return nil, err
	}
	return u, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*entity.UserAccount, error) {
	var u entity.UserAccount
	err := row.Scan(
		&u.ID, &u.Username, &u.PasswordHash, &u.Name, &u.Email, &u.NIF, &u.Enabled,
		&u.CreatedBy, &u.CreatedDate, &u.UpdatedBy, &u.UpdatedDate,
		&u.InactivatedBy, &u.InactivatedDate,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserAccountRepo) loadRoles(ctx context.Context, byID map[int64]*entity.UserAccount, ids []int64) error {
	rows, err := r.db.Query(ctx, `SELECT user_id, role FROM user_roles WHERE user_id = ANY($1) ORDER BY role`, ids)
	if err != nil {
		return fmt.Errorf("load roles: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var userID int64
		var role string
		if err := rows.Scan(&userID, &role); err != nil {
			return fmt.Errorf("scan role: %w", err)
		}
		if u := byID[userID]; u != nil {
			u.Roles = append(u.Roles, role)
		}
	}
	return rows.Err()
}

func (r *UserAccountRepo) loadAddresses(ctx context.Context, byID map[int64]*entity.UserAccount, ids []int64) error {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, street_name, door_number, postal_code, district,
			municipality, neighborhood, is_primary
		FROM user_addresses WHERE user_id = ANY($1) ORDER BY id`, ids)
	if err != nil {
		return fmt.Errorf("load addresses: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var a entity.Address
		if err := rows.Scan(&a.ID, &a.UserID, &a.StreetName, &a.DoorNumber, &a.PostalCode,
			&a.District, &a.Municipality, &a.Neighborhood, &a.Primary); err != nil {
			return fmt.Errorf("scan address: %w", err)
		}
		if u := byID[a.UserID]; u != nil {
			u.Addresses = append(u.Addresses, a)
		}
	}
	return rows.Err()
}

func insertRoles(ctx context.Context, tx pgx.Tx, userID int64, roles []string) error {
	for _, role := range roles {
		if _, err := tx.Exec(ctx, `INSERT INTO user_roles (user_id, role) VALUES ($1, $2)`, userID, role); err != nil {
			return fmt.Errorf("insert role: %w", err)
		}
	}
	return nil
}

// mapUserUniqueViolation traduce el constraint violado al error de conflicto
// específico del dominio.
func mapUserUniqueViolation(err error) error {
	name := strings.ToLower(constraintName(err))
	switch {
	case strings.Contains(name, "email"):
		return domain.ErrEmailExists
	case strings.Contains(name, "nif"):
		return domain.ErrNIFExists
	default:
		return domain.ErrUsernameExists
	}
}
