package entity

// DishCode es la taxonomía de platos. El código es único, en mayúsculas,
// de 3 a 64 caracteres del conjunto [A-Z0-9_-]. Se resuelve-o-crea bajo demanda
// a partir de entrada libre normalizada.
type DishCode struct {
	ID          int64
	Code        string
	Description *string
	Audit
}
