package postgres

import (
	"context"
	"fmt"

	"github.com/allanborges/restaurant-api/internal/application/usecase"
	"github.com/allanborges/restaurant-api/internal/domain/repository"
)

var _ usecase.DishTxRunner = (*DishTxRunner)(nil)

// DishTxRunner ejecuta un callback con repositorios de platos y códigos atados
// a una misma transacción pgx. Commit solo si el callback devuelve nil.
type DishTxRunner struct {
	db DB
}

// NewDishTxRunner construye el runner transaccional.
func NewDishTxRunner(db DB) *DishTxRunner {
	return &DishTxRunner{db: db}
}

// Run abre la transacción, reconstruye los repositorios sobre ella y la
// confirma o revierte según el resultado del callback.
func (r *DishTxRunner) Run(ctx context.Context, fn func(dishes repository.DishRepository, codes repository.DishCodeRepository) error) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewDishRepository(tx), NewDishCodeRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
