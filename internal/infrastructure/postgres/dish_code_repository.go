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

var _ repository.DishCodeRepository = (*DishCodeRepo)(nil)

// DishCodeRepo implementación del puerto DishCodeRepository sobre PostgreSQL.
type DishCodeRepo struct {
	db DB
}

// NewDishCodeRepository construye el adaptador de persistencia de códigos.
func NewDishCodeRepository(db DB) *DishCodeRepo {
	return &DishCodeRepo{db: db}
}

// Create inserta un código nuevo. El índice único sobre lower(code) protege
// contra duplicados concurrentes.
func (r *DishCodeRepo) Create(ctx context.Context, code *entity.DishCode) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO dish_codes (code, description, created_by, created_date, updated_by, updated_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		code.Code, code.Description,
		code.CreatedBy, code.CreatedDate, code.UpdatedBy, code.UpdatedDate,
	).Scan(&code.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: code %s", domain.ErrConflict, code.Code)
		}
		return fmt.Errorf("insert dish code: %w", err)
	}
	return nil
}

// FindByCode busca un código sin distinguir mayúsculas; (nil, nil) si no existe.
func (r *DishCodeRepo) FindByCode(ctx context.Context, code string) (*entity.DishCode, error) {
	var c entity.DishCode
	err := r.db.QueryRow(ctx, `
		SELECT id, code, description FROM dish_codes WHERE lower(code) = lower($1)`, code,
	).Scan(&c.ID, &c.Code, &c.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get dish code: %w", err)
	}
	return &c, nil
}

// FindByCodes devuelve los códigos existentes del conjunto pedido, sin
// distinguir mayúsculas. Los tokens desconocidos simplemente no aparecen.
func (r *DishCodeRepo) FindByCodes(ctx context.Context, codes []string) ([]*entity.DishCode, error) {
	lowered := make([]string, 0, len(codes))
	for _, c := range codes {
		lowered = append(lowered, strings.ToLower(c))
	}
	rows, err := r.db.Query(ctx, `
		SELECT id, code, description FROM dish_codes WHERE lower(code) = ANY($1)`, lowered)
	if err != nil {
		return nil, fmt.Errorf("list dish codes: %w", err)
	}
	defer rows.Close()

	var out []*entity.DishCode
	for rows.Next() {
		var c entity.DishCode
		if err := rows.Scan(&c.ID, &c.Code, &c.Description); err != nil {
			return nil, fmt.Errorf("scan dish code: %w", err)
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}
