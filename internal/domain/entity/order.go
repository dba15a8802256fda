package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de un pedido.
const (
	OrderStatusPending   = "PENDING"
	OrderStatusPaid      = "PAID"
	OrderStatusPreparing = "PREPARING"
	OrderStatusReady     = "READY"
	OrderStatusCompleted = "COMPLETED"
	OrderStatusCancelled = "CANCELLED"
)

// Order es un pedido del restaurante. Forma parte del modelo de datos pero
// todavía no lo ejercita ningún servicio HTTP: se persiste el modelo para que
// los ítems puedan congelar nombre y precio del plato al momento del pedido.
type Order struct {
	ID            int64
	OrderCode     string // único, inmutable
	Status        string
	CustomerName  string
	CustomerEmail string
	Notes         string
	Total         decimal.Decimal
	PlacedAt      *time.Time
	PaidAt        *time.Time
	Items         []OrderItem
	Audit
}

// AddItem agrega una línea al pedido congelando nombre y precio unitario del
// plato, calcula el total de línea y mantiene el total del pedido.
func (o *Order) AddItem(dish *Dish, quantity int) OrderItem {
	item := OrderItem{
		DishID:    dish.ID,
		DishName:  dish.Name,
		UnitPrice: dish.Price,
		Quantity:  quantity,
		LineTotal: dish.Price.Mul(decimal.NewFromInt(int64(quantity))),
	}
	o.Items = append(o.Items, item)
	o.Total = o.Total.Add(item.LineTotal)
	return item
}

// OrderItem es una línea de pedido: referencia un plato y un pedido y toma una
// instantánea de nombre, precio unitario y total de línea.
type OrderItem struct {
	ID        int64
	OrderID   int64
	DishID    int64
	DishName  string
	UnitPrice decimal.Decimal
	Quantity  int
	LineTotal decimal.Decimal
	Audit
}
