// Package pdf implementa la generación de la carta imprimible del
// restaurante.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del restaurante + fecha de emisión           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  SECCIÓN por código (ENTRADAS, PRINCIPALES, POSTRES...)     │
//	│    Nombre del plato            Descripción          Precio   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: leyenda de precios con IVA incluido                 │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"sort"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/allanborges/restaurant-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 120, Green: 40, Blue: 31}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoMenuGenerator implementa usecase.MenuPDFGenerator usando Maroto v2.
type MarotoMenuGenerator struct {
	restaurantName string
}

// NewMarotoMenuGenerator construye el generador.
func NewMarotoMenuGenerator(restaurantName string) *MarotoMenuGenerator {
	return &MarotoMenuGenerator{restaurantName: restaurantName}
}

// GenerateMenuPDF genera la carta del catálogo activo, agrupada por código de
// plato, y devuelve sus bytes.
func (g *MarotoMenuGenerator) GenerateMenuPDF(_ context.Context, dishes []*entity.Dish) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Carta", true).
		WithAuthor(g.restaurantName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.restaurantName))
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.5}))

	for _, section := range groupByCode(dishes) {
		m.AddRows(sectionHeaderRow(section.title))
		for _, d := range section.dishes {
			m.AddRows(dishRow(d))
		}
		m.AddRows(row.New(3))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(row.New(6).Add(col.New(12).Add(
		text.New("Precios en euros, IVA incluido. La disponibilidad puede variar según el servicio.",
			props.Text{Size: 7, Color: colorGray, Align: align.Center, Top: 2}),
	)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar carta: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nombre del restaurante y fecha de emisión.
func headerRow(name string) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(name, props.Text{
				Style: fontstyle.Bold, Size: 16, Color: colorPrimary, Top: 2,
			}),
			text.New("Carta del día", props.Text{
				Size: 9, Top: 11, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New(time.Now().Format("02/01/2006"), props.Text{
				Size: 9, Align: align.Right, Top: 3, Color: colorGray,
			}),
		),
	)
}

// sectionHeaderRow: título de la sección (código y su descripción si la hay).
func sectionHeaderRow(title string) core.Row {
	return row.New(9).Add(col.New(12).Add(
		text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 11, Color: colorPrimary, Top: 2,
		}),
	))
}

// dishRow: una línea por plato con nombre, descripción y precio.
func dishRow(d *entity.Dish) core.Row {
	return row.New(10).Add(
		col.New(9).Add(
			text.New(d.Name, props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 1,
			}),
			text.New(d.Description, props.Text{
				Size: 7.5, Top: 6, Color: colorGray,
			}),
		),
		col.New(3).Add(
			text.New(d.Price.StringFixed(2)+" €", props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 1,
			}),
		),
	)
}

type menuSection struct {
	title  string
	dishes []*entity.Dish
}

// groupByCode agrupa los platos por código y ordena las secciones
// alfabéticamente y los platos por nombre dentro de cada una.
func groupByCode(dishes []*entity.Dish) []menuSection {
	byCode := make(map[string][]*entity.Dish)
	titles := make(map[string]string)
	for _, d := range dishes {
		key := "OTROS"
		title := "OTROS"
		if d.Code != nil {
			key = d.Code.Code
			title = d.Code.Code
			if d.Code.Description != nil && *d.Code.Description != "" {
				title = *d.Code.Description
			}
		}
		byCode[key] = append(byCode[key], d)
		titles[key] = title
	}

	keys := make([]string, 0, len(byCode))
	for k := range byCode {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	sections := make([]menuSection, 0, len(keys))
	for _, k := range keys {
		group := byCode[k]
		sort.Slice(group, func(i, j int) bool { return group[i].Name < group[j].Name })
		sections = append(sections, menuSection{title: titles[k], dishes: group})
	}
	return sections
}
