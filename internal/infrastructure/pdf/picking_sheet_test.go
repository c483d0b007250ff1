package pdf_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/wms-almacen/internal/domain/entity"
	"github.com/jhoicas/wms-almacen/internal/infrastructure/pdf"
)

func TestGenerate_DevuelvePDF(t *testing.T) {
	order := &entity.PickingOrder{
		ID: 1, OrderNumber: "PED-001", Status: entity.OrderInProcess, Priority: entity.PriorityHigh,
		CreatedAt: time.Date(2024, 10, 28, 9, 0, 0, 0, time.Local), AssignedTo: "Pedro Operario",
		Items: []entity.OrderItem{
			{ProductID: 4, ProductName: "Producto D - Industrial", Location: "A-03-02", Quantity: 5},
			{ProductID: 1, ProductName: "Producto A - Electrónico", Location: "A-01-01", Quantity: 10, Picked: 10},
			{ProductID: 9, ProductName: "Sin ubicación", Quantity: 1},
		},
	}

	doc, err := pdf.NewPickingSheetGenerator("wms-test").Generate(order)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")))
	assert.Equal(t, "A-03-02", order.Items[0].Location, "no reordena los ítems de la orden")
}

func TestGenerate_OrdenSinItems(t *testing.T) {
	doc, err := pdf.NewPickingSheetGenerator("").Generate(&entity.PickingOrder{OrderNumber: "PED-010", Status: entity.OrderPending})
	require.NoError(t, err)
	assert.NotEmpty(t, doc)
}
