package entity

import "github.com/shopspring/decimal"

// Dish representa un plato del catálogo. El precio es decimal exacto
// (hasta 10 dígitos enteros y 2 decimales); el stock es un entero no negativo.
// "Borrar" un plato significa fijar InactivatedDate: las lecturas filtran por
// InactivatedDate nulo y la fila nunca se elimina.
type Dish struct {
	ID          int64
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
	Code        *DishCode
	ImageURL    string
	Audit
}
