package repository

import (
	"context"

	"github.com/allanborges/restaurant-api/internal/domain/entity"
	"github.com/allanborges/restaurant-api/internal/domain/query"
)

// DishRepository define el puerto de persistencia para Dish. Los Find*
// devuelven (nil, nil) cuando el plato no existe. Las lecturas de listado
// excluyen filas soft-inactivadas.
type DishRepository interface {
	Create(ctx context.Context, dish *entity.Dish) error
	FindByID(ctx context.Context, id int64) (*entity.Dish, error)
	Update(ctx context.Context, dish *entity.Dish) error
	FindAllActive(ctx context.Context) ([]*entity.Dish, error)
	// FindPage ejecuta la conjunción de predicados dos veces: una acotada por
	// página y otra solo de conteo, con filtrado idéntico en ambas.
	FindPage(ctx context.Context, preds []query.Predicate, sort query.Sort, page query.Page) ([]*entity.Dish, int64, error)
}

// DishCodeRepository define el puerto de persistencia para la taxonomía de
// códigos de plato. Las búsquedas por código no distinguen mayúsculas.
type DishCodeRepository interface {
	Create(ctx context.Context, code *entity.DishCode) error
	FindByCode(ctx context.Context, code string) (*entity.DishCode, error)
	FindByCodes(ctx context.Context, codes []string) ([]*entity.DishCode, error)
}
