// Package excel arma el reporte de stock en formato xlsx.
package excel

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/wms-almacen/internal/application/dto"
)

// Nombres de las hojas del reporte.
const (
	SheetProducts  = "Productos"
	SheetMovements = "Movimientos"
)

// ContentType tipo MIME del libro generado.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var productHeaders = []string{"SKU", "EAN", "Nombre", "Categoría", "Stock", "Stock mínimo", "Estado", "Ubicación"}

var movementHeaders = []string{"Fecha", "Tipo", "Producto", "Cantidad", "Ubicación", "Usuario", "Referencia"}

var statusLabels = map[string]string{
	"out_of_stock": "Sin stock",
	"low_stock":    "Stock bajo",
	"available":    "Disponible",
}

var movementLabels = map[string]string{
	"inbound":  "Entrada",
	"outbound": "Salida",
}

// StockReport genera el libro con productos y movimientos.
type StockReport struct{}

// NewStockReport construye el generador.
func NewStockReport() *StockReport { return &StockReport{} }

// Build devuelve el xlsx con la hoja Productos y la hoja Movimientos (en el orden recibido).
func (r *StockReport) Build(products []dto.ProductResponse, movements []dto.MovementResponse) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetProducts); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(SheetMovements); err != nil {
		return nil, err
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"00467F"}},
	})
	if err != nil {
		return nil, err
	}

	if err := writeHeader(f, SheetProducts, productHeaders, headerStyle); err != nil {
		return nil, err
	}
	for i, p := range products {
		values := []interface{}{p.SKU, p.EAN, p.Name, p.Category, p.Stock, p.MinStock, label(statusLabels, p.Status), p.Location}
		if err := writeRow(f, SheetProducts, i+2, values); err != nil {
			return nil, err
		}
	}

	if err := writeHeader(f, SheetMovements, movementHeaders, headerStyle); err != nil {
		return nil, err
	}
	for i, m := range movements {
		values := []interface{}{m.Date.Format("2006-01-02 15:04"), label(movementLabels, m.Type), m.ProductName, m.Quantity, m.Location, m.User, m.Reference}
		if err := writeRow(f, SheetMovements, i+2, values); err != nil {
			return nil, err
		}
	}

	f.SetActiveSheet(0)
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: escribir libro: %w", err)
	}
	return bytes.Clone(buf.Bytes()), nil
}

func writeHeader(f *excelize.File, sheet string, headers []string, style int) error {
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}
	last, _ := excelize.CoordinatesToCellName(len(headers), 1)
	if err := f.SetCellStyle(sheet, "A1", last, style); err != nil {
		return err
	}
	return f.SetColWidth(sheet, "A", "H", 16)
}

func writeRow(f *excelize.File, sheet string, rowNum int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

func label(labels map[string]string, key string) string {
	if l, ok := labels[key]; ok {
		return l
	}
	return key
}
