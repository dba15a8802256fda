package query

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/allanborges/restaurant-api/internal/domain"
)

// Campos lógicos del filtro de platos.
const (
	FieldID              = "id"
	FieldName            = "name"
	FieldDescription     = "description"
	FieldPrice           = "price"
	FieldStock           = "stock"
	FieldCode            = "code"
	FieldCreatedDate     = "created_date"
	FieldInactivatedDate = "inactivated_date"
)

const dateLayout = "2006-01-02"

// DishFilter es la bolsa de filtros del listado paginado. Todos los campos son
// cadenas opcionales salvo Codes, que admite valores repetidos y/o separados
// por comas. Los valores se validan al construir los predicados.
type DishFilter struct {
	ID              string
	Name            string
	Description     string
	Price           string
	Stock           string
	Codes           []string
	CreatedDateFrom string
	CreatedDateTo   string
}

// claves de query reconocidas: las de filtro más las de paginación/orden que
// gestiona el handler. Cualquier otra clave se rechaza en vez de ignorarse.
var filterKeys = map[string]bool{
	"id": true, "name": true, "description": true, "price": true,
	"stock": true, "code": true, "createdDateFrom": true, "createdDateTo": true,
}

var pagingKeys = map[string]bool{
	"page": true, "size": true, "sort": true, "orderBy": true,
}

// ParseDishFilter construye el filtro desde los parámetros de la URL,
// rechazando claves desconocidas.
func ParseDishFilter(values url.Values) (DishFilter, error) {
	var f DishFilter
	for key, vals := range values {
		switch {
		case pagingKeys[key]:
			continue
		case !filterKeys[key]:
			return DishFilter{}, fmt.Errorf("%w: parámetro de filtro desconocido %q", domain.ErrValidation, key)
		}
		switch key {
		case "id":
			f.ID = values.Get(key)
		case "name":
			f.Name = values.Get(key)
		case "description":
			f.Description = values.Get(key)
		case "price":
			f.Price = values.Get(key)
		case "stock":
			f.Stock = values.Get(key)
		case "code":
			f.Codes = append(f.Codes, vals...)
		case "createdDateFrom":
			f.CreatedDateFrom = values.Get(key)
		case "createdDateTo":
			f.CreatedDateTo = values.Get(key)
		}
	}
	return f, nil
}

// Predicates traduce el filtro a la conjunción de predicados tipados. Siempre
// incluye la exclusión de filas soft-inactivadas como primer predicado.
// Valores no parseables fallan con ErrValidation en lugar de ignorarse.
func (f DishFilter) Predicates() ([]Predicate, error) {
	preds := []Predicate{IsNull{Field: FieldInactivatedDate}}

	if f.ID != "" {
		id, err := strconv.ParseInt(f.ID, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: id debe ser numérico", domain.ErrValidation)
		}
		preds = append(preds, Exact{Field: FieldID, Value: id})
	}
	if f.Name != "" {
		preds = append(preds, Substring{Field: FieldName, Value: f.Name})
	}
	if f.Description != "" {
		preds = append(preds, Substring{Field: FieldDescription, Value: f.Description})
	}
	if f.Price != "" {
		price, err := decimal.NewFromString(f.Price)
		if err != nil {
			return nil, fmt.Errorf("%w: price debe ser decimal", domain.ErrValidation)
		}
		// igualdad decimal exacta; no hay filtro por rango de precio a propósito
		preds = append(preds, Exact{Field: FieldPrice, Value: price})
	}
	if f.Stock != "" {
		stock, err := strconv.Atoi(f.Stock)
		if err != nil {
			return nil, fmt.Errorf("%w: stock debe ser entero", domain.ErrValidation)
		}
		preds = append(preds, Exact{Field: FieldStock, Value: stock})
	}
	if codes := NormalizeCodes(f.Codes); len(codes) > 0 {
		preds = append(preds, InSet{Field: FieldCode, Values: codes})
	}
	if rangePred, err := f.createdDateRange(); err != nil {
		return nil, err
	} else if rangePred != nil {
		preds = append(preds, *rangePred)
	}
	return preds, nil
}

// createdDateRange interpreta los límites como fechas yyyy-MM-dd inclusivas:
// "from" al inicio del día, "to" al final del día.
func (f DishFilter) createdDateRange() (*Range, error) {
	if f.CreatedDateFrom == "" && f.CreatedDateTo == "" {
		return nil, nil
	}
	r := Range{Field: FieldCreatedDate}
	if f.CreatedDateFrom != "" {
		day, err := time.Parse(dateLayout, f.CreatedDateFrom)
		if err != nil {
			return nil, fmt.Errorf("%w: createdDateFrom debe ser yyyy-MM-dd", domain.ErrValidation)
		}
		r.From = &day
	}
	if f.CreatedDateTo != "" {
		day, err := time.Parse(dateLayout, f.CreatedDateTo)
		if err != nil {
			return nil, fmt.Errorf("%w: createdDateTo debe ser yyyy-MM-dd", domain.ErrValidation)
		}
		endOfDay := day.Add(24*time.Hour - time.Nanosecond)
		r.To = &endOfDay
	}
	return &r, nil
}

// quita marcas diacríticas antes de validar el charset del código.
var foldDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeCodes normaliza la lista de códigos: separa por comas, recorta,
// pliega acentos, pasa a mayúsculas y deduplica preservando el orden.
func NormalizeCodes(raw []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, chunk := range raw {
		for _, token := range strings.Split(chunk, ",") {
			token = strings.TrimSpace(token)
			if token == "" {
				continue
			}
			if folded, _, err := transform.String(foldDiacritics, token); err == nil {
				token = folded
			}
			token = strings.ToUpper(token)
			if !seen[token] {
				seen[token] = true
				out = append(out, token)
			}
		}
	}
	return out
}

// ParseSort interpreta la dirección y el campo de ordenación. La dirección por
// defecto es DESC; un campo ausente ordena por id. Campos desconocidos viajan
// tal cual y los resuelve la capa de almacenamiento contra su lista blanca.
func ParseSort(direction, orderBy string) (Sort, error) {
	dir := Desc
	switch strings.ToUpper(strings.TrimSpace(direction)) {
	case "", string(Desc):
	case string(Asc):
		dir = Asc
	default:
		return Sort{}, fmt.Errorf("%w: sort debe ser ASC o DESC", domain.ErrValidation)
	}
	field := strings.TrimSpace(orderBy)
	if field == "" {
		field = FieldID
	}
	return Sort{Field: field, Direction: dir}, nil
}
