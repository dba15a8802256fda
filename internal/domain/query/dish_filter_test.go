package query_test

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allanborges/restaurant-api/internal/domain"
	"github.com/allanborges/restaurant-api/internal/domain/query"
)

// ──────────────────────────────────────────────────────────────────────────────
// ParseDishFilter
// ──────────────────────────────────────────────────────────────────────────────

func TestParseDishFilter_ClaveDesconocida_Rechazada(t *testing.T) {
	values := url.Values{"nombre": {"paella"}}

	_, err := query.ParseDishFilter(values)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestParseDishFilter_ClavesDePaginacion_Ignoradas(t *testing.T) {
	values := url.Values{"page": {"2"}, "size": {"10"}, "sort": {"ASC"}, "orderBy": {"name"}}

	f, err := query.ParseDishFilter(values)
	require.NoError(t, err)
	assert.Equal(t, query.DishFilter{}, f)
}

func TestParseDishFilter_CodigosRepetidos(t *testing.T) {
	values := url.Values{"code": {"ENTRADAS", "POSTRES"}}

	f, err := query.ParseDishFilter(values)
	require.NoError(t, err)
	assert.Equal(t, []string{"ENTRADAS", "POSTRES"}, f.Codes)
}

// ──────────────────────────────────────────────────────────────────────────────
// Predicates
// ──────────────────────────────────────────────────────────────────────────────

func TestPredicates_SiempreExcluyeInactivados(t *testing.T) {
	preds, err := query.DishFilter{}.Predicates()
	require.NoError(t, err)
	require.NotEmpty(t, preds)
	assert.Equal(t, query.IsNull{Field: query.FieldInactivatedDate}, preds[0])
}

func TestPredicates_IDNoNumerico_Error(t *testing.T) {
	_, err := query.DishFilter{ID: "abc"}.Predicates()
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestPredicates_PriceNoDecimal_Error(t *testing.T) {
	_, err := query.DishFilter{Price: "12,50"}.Predicates()
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestPredicates_StockNoEntero_Error(t *testing.T) {
	_, err := query.DishFilter{Stock: "mucho"}.Predicates()
	assert.ErrorIs(t, err, domain.ErrValidation)
}

// Códigos separados por comas y códigos repetidos producen el mismo conjunto.
func TestPredicates_CodigosComaYRepetidos_Equivalentes(t *testing.T) {
	comas, err := query.DishFilter{Codes: []string{"entradas, postres"}}.Predicates()
	require.NoError(t, err)
	repetidos, err := query.DishFilter{Codes: []string{"ENTRADAS", "POSTRES"}}.Predicates()
	require.NoError(t, err)

	assert.Equal(t, comas, repetidos)
}

func TestPredicates_RangoDeFechas_LimitesInclusivos(t *testing.T) {
	preds, err := query.DishFilter{
		CreatedDateFrom: "2026-08-01",
		CreatedDateTo:   "2026-08-15",
	}.Predicates()
	require.NoError(t, err)

	var r *query.Range
	for _, p := range preds {
		if rangePred, ok := p.(query.Range); ok {
			r = &rangePred
		}
	}
	require.NotNil(t, r, "debe haber un predicado de rango")

	wantFrom := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	wantTo := time.Date(2026, 8, 15, 23, 59, 59, int(time.Second-time.Nanosecond), time.UTC)
	assert.Equal(t, wantFrom, *r.From, "from al inicio del día")
	assert.Equal(t, wantTo, *r.To, "to al final del día")
}

func TestPredicates_FechaInvalida_Error(t *testing.T) {
	_, err := query.DishFilter{CreatedDateFrom: "01/08/2026"}.Predicates()
	assert.ErrorIs(t, err, domain.ErrValidation)
}

// ──────────────────────────────────────────────────────────────────────────────
// NormalizeCodes
// ──────────────────────────────────────────────────────────────────────────────

func TestNormalizeCodes_RecortaMayusculasYDeduplica(t *testing.T) {
	got := query.NormalizeCodes([]string{" entradas ,postres", "ENTRADAS", "", " "})
	assert.Equal(t, []string{"ENTRADAS", "POSTRES"}, got)
}

func TestNormalizeCodes_PliegaAcentos(t *testing.T) {
	got := query.NormalizeCodes([]string{"menú"})
	assert.Equal(t, []string{"MENU"}, got)
}

func TestNormalizeCodes_PreservaOrden(t *testing.T) {
	got := query.NormalizeCodes([]string{"b,a,c", "a"})
	assert.Equal(t, []string{"B", "A", "C"}, got)
}

// ──────────────────────────────────────────────────────────────────────────────
// ParseSort
// ──────────────────────────────────────────────────────────────────────────────

func TestParseSort_PorDefecto_DescPorID(t *testing.T) {
	s, err := query.ParseSort("", "")
	require.NoError(t, err)
	assert.Equal(t, query.Sort{Field: query.FieldID, Direction: query.Desc}, s)
}

func TestParseSort_AscExplicito(t *testing.T) {
	s, err := query.ParseSort("asc", "name")
	require.NoError(t, err)
	assert.Equal(t, query.Sort{Field: "name", Direction: query.Asc}, s)
}

func TestParseSort_DireccionInvalida_Error(t *testing.T) {
	_, err := query.ParseSort("sideways", "name")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestParseSort_CampoDesconocido_ViajaTalCual(t *testing.T) {
	// la lista blanca la aplica la capa de almacenamiento
	s, err := query.ParseSort("DESC", "code.description")
	require.NoError(t, err)
	assert.Equal(t, "code.description", s.Field)
}

func TestPageOffset(t *testing.T) {
	assert.Equal(t, 0, query.Page{Number: 0, Size: 10}.Offset())
	assert.Equal(t, 30, query.Page{Number: 3, Size: 10}.Offset())
}
