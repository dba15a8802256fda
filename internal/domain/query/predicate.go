// Package query modela el filtrado dinámico, el orden y la paginación del
// catálogo como datos puros: un conjunto cerrado de variantes de predicado que
// la capa de almacenamiento traduce a SQL. La construcción de predicados no
// toca la base de datos y se prueba de forma aislada.
package query

import "time"

// Predicate es una variante tipada de filtro. Todas las variantes de una
// consulta se combinan con AND.
type Predicate interface{ isPredicate() }

// IsNull exige que el campo sea NULL (p. ej. inactivated_date para excluir
// filas soft-inactivadas).
type IsNull struct {
	Field string
}

// Exact exige igualdad exacta con un valor ya tipado (int64, int, decimal...).
type Exact struct {
	Field string
	Value any
}

// Substring exige coincidencia de subcadena sin distinguir mayúsculas.
type Substring struct {
	Field string
	Value string
}

// Range exige pertenencia a un rango temporal inclusivo; cualquiera de los dos
// extremos puede faltar.
type Range struct {
	Field string
	From  *time.Time
	To    *time.Time
}

// InSet exige pertenencia a un conjunto de valores textuales, sin distinguir
// mayúsculas.
type InSet struct {
	Field  string
	Values []string
}

func (IsNull) isPredicate()    {}
func (Exact) isPredicate()     {}
func (Substring) isPredicate() {}
func (Range) isPredicate()     {}
func (InSet) isPredicate()     {}

// Direction es el sentido de ordenación.
type Direction string

const (
	Asc  Direction = "ASC"
	Desc Direction = "DESC"
)

// Sort describe la ordenación pedida. Field viaja como nombre lógico; la capa
// de almacenamiento lo resuelve contra su mapa de columnas ("code" ordena por
// el texto del código resuelto, no por la clave foránea).
type Sort struct {
	Field     string
	Direction Direction
}

// Page es la página pedida (número base cero y tamaño).
type Page struct {
	Number int
	Size   int
}

// Offset devuelve el desplazamiento de filas de la página.
func (p Page) Offset() int { return p.Number * p.Size }
