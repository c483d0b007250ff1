package inventory

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/jhoicas/wms-almacen/internal/domain/entity"
)

// ProductMatcher búsqueda de texto libre sobre nombre, SKU, EAN y categoría
// (subcadena sin distinguir mayúsculas, basta con que coincida un campo).
type ProductMatcher struct {
	fold  cases.Caser
	query string
}

// NewProductMatcher prepara la consulta tal cual llega, sin recortar espacios;
// una consulta vacía coincide con todo.
func NewProductMatcher(query string) *ProductMatcher {
	fold := cases.Fold()
	return &ProductMatcher{fold: fold, query: fold.String(query)}
}

// Match indica si el producto coincide con la consulta.
func (m *ProductMatcher) Match(p *entity.Product) bool {
	if m.query == "" {
		return true
	}
	for _, field := range []string{p.Name, p.SKU, p.EAN, p.Category} {
		if strings.Contains(m.fold.String(field), m.query) {
			return true
		}
	}
	return false
}
