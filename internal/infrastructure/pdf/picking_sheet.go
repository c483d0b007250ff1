// Package pdf genera la hoja de picking imprimible de una orden.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: N° Orden + Estado    │  Prioridad + Fecha           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Asignado a                                                  │
//	│  TABLA: Ubicación | Producto | Cantidad | Recogido | ☐       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: QR con el N° de orden                               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"sort"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
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

	"github.com/jhoicas/wms-almacen/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var statusLabels = map[string]string{
	entity.OrderPending:   "Pendiente",
	entity.OrderInProcess: "En proceso",
	entity.OrderCompleted: "Completada",
}

var priorityLabels = map[string]string{
	entity.PriorityHigh:   "Alta",
	entity.PriorityMedium: "Media",
	entity.PriorityLow:    "Baja",
}

// PickingSheetGenerator genera la hoja de picking con Maroto v2.
type PickingSheetGenerator struct {
	author string
}

// NewPickingSheetGenerator construye el generador; author aparece en los metadatos del PDF.
func NewPickingSheetGenerator(author string) *PickingSheetGenerator {
	return &PickingSheetGenerator{author: author}
}

// Generate devuelve los bytes del PDF. Los ítems se listan ordenados por ubicación (ruta de recorrido).
func (g *PickingSheetGenerator) Generate(order *entity.PickingOrder) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Hoja de picking "+order.OrderNumber, true).
		WithAuthor(g.author, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(assigneeRow(order))
	m.AddRows(tableHeaderRow())
	m.AddRows(itemRows(order.Items)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(footerRow(order))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar hoja de picking: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(order *entity.PickingOrder) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New("HOJA DE PICKING", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(order.OrderNumber, props.Text{
				Style: fontstyle.Bold, Size: 14, Top: 6,
			}),
		),
		col.New(5).Add(
			text.New("Prioridad: "+label(priorityLabels, order.Priority), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New("Estado: "+label(statusLabels, order.Status), props.Text{
				Size: 8, Align: align.Right, Top: 7,
			}),
			text.New("Creada: "+order.CreatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 12, Color: colorGray,
			}),
		),
	)
}

func assigneeRow(order *entity.PickingOrder) core.Row {
	assignee := order.AssignedTo
	if assignee == "" {
		assignee = "Sin asignar"
	}
	return row.New(10).Add(col.New(12).Add(
		text.New("Operario: "+assignee, props.Text{Size: 9, Top: 3}),
	))
}

func tableHeaderRow() core.Row {
	h := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Ubicación", 2, align.Left),
		h("Producto", 5, align.Left),
		h("Cantidad", 2, align.Center),
		h("Recogido", 2, align.Center),
		h("OK", 1, align.Center),
	)
}

func itemRows(items []entity.OrderItem) []core.Row {
	sorted := append([]entity.OrderItem(nil), items...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Location < sorted[j].Location })

	rows := make([]core.Row, 0, len(sorted))
	for _, it := range sorted {
		check := "[ ]"
		if it.Picked >= it.Quantity {
			check = "[x]"
		}
		rows = append(rows, row.New(7).Add(
			col.New(2).Add(text.New(nonEmpty(it.Location, "-"), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(5).Add(text.New(it.ProductName, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(fmt.Sprint(it.Quantity), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(fmt.Sprint(it.Picked), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(1).Add(text.New(check, props.Text{Size: 8, Align: align.Center, Top: 1})),
		))
	}
	return rows
}

// footerRow: QR con el número de orden para escanear al despachar.
func footerRow(order *entity.PickingOrder) core.Row {
	return row.New(40).Add(
		col.New(4).Add(code.NewQr(order.OrderNumber, props.Rect{Percent: 90, Center: true})),
		col.New(8).Add(
			text.New("Escanea el código para confirmar la orden en despacho.", props.Text{
				Size: 8, Top: 4, Left: 3, Color: colorGray,
			}),
			text.New(fmt.Sprintf("%d ítems", len(order.Items)), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 14, Left: 3, Color: colorPrimary,
			}),
		),
	)
}

func label(labels map[string]string, key string) string {
	if l, ok := labels[key]; ok {
		return l
	}
	return key
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
