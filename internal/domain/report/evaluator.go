package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/analytics-pro/internal/domain"
)

// Primitivas compartidas por todo el catálogo. Cada reporte es una composición
// de estas funciones en dos etapas explícitas (colección intermedia primero,
// reducción después), de modo que el manejo de bordes —HAVING después de
// agrupar, división por cero, orden y límite— es idéntico en los 24 reportes.

// Ordering criterio de orden del resultado agrupado.
type Ordering int

const (
	OrderNone      Ordering = iota // conserva el orden de primera aparición
	OrderKeyAsc                    // clave ascendente (fechas, meses, nombres compuestos)
	OrderValueDesc                 // métrica descendente (rankings)
	OrderValueAsc                  // métrica ascendente (baja rotación)
)

// groupSum filtra, agrupa y suma en una pasada. El orden de los grupos es el
// de primera aparición de cada clave (estable y determinista); ordenar es una
// etapa posterior.
func groupSum[R any](rows []R, filter func(R) bool, key func(R) string, value func(R) decimal.Decimal) []Group {
	idx := make(map[string]int)
	var groups []Group
	for _, r := range rows {
		if filter != nil && !filter(r) {
			continue
		}
		k := key(r)
		i, ok := idx[k]
		if !ok {
			idx[k] = len(groups)
			groups = append(groups, Group{Key: k})
			i = len(groups) - 1
		}
		groups[i].Value = groups[i].Value.Add(value(r))
		groups[i].Count++
	}
	return groups
}

// groupAvg agrupa y promedia: suma del valor dividida por el conteo del grupo.
// El conteo de un grupo existente nunca es cero, así que la división es segura.
func groupAvg[R any](rows []R, filter func(R) bool, key func(R) string, value func(R) decimal.Decimal) []Group {
	groups := groupSum(rows, filter, key, value)
	for i := range groups {
		groups[i].Value = groups[i].Value.Div(decimal.NewFromInt(groups[i].Count)).Round(2)
	}
	return groups
}

// having aplica el filtro post-agregación. Siempre después de agrupar, nunca
// sobre las filas fuente.
func having(groups []Group, pred func(Group) bool) []Group {
	out := groups[:0:0]
	for _, g := range groups {
		if pred(g) {
			out = append(out, g)
		}
	}
	return out
}

// orderBy ordena los grupos según el criterio; el sort es estable para que
// claves con la misma métrica conserven un orden reproducible.
func orderBy(groups []Group, ord Ordering) []Group {
	switch ord {
	case OrderKeyAsc:
		sort.SliceStable(groups, func(i, j int) bool { return groups[i].Key < groups[j].Key })
	case OrderValueDesc:
		sort.SliceStable(groups, func(i, j int) bool { return groups[i].Value.GreaterThan(groups[j].Value) })
	case OrderValueAsc:
		sort.SliceStable(groups, func(i, j int) bool { return groups[i].Value.LessThan(groups[j].Value) })
	}
	return groups
}

// topN recorta el resultado a como máximo n filas (n <= 0 no recorta).
func topN(groups []Group, n int) []Group {
	if n > 0 && len(groups) > n {
		return groups[:n]
	}
	return groups
}

// sumWhere suma el valor sobre las filas que pasan el filtro.
func sumWhere[R any](rows []R, filter func(R) bool, value func(R) decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, r := range rows {
		if filter == nil || filter(r) {
			total = total.Add(value(r))
		}
	}
	return total
}

// countWhere cuenta las filas que pasan el filtro.
func countWhere[R any](rows []R, filter func(R) bool) int64 {
	var n int64
	for _, r := range rows {
		if filter == nil || filter(r) {
			n++
		}
	}
	return n
}

// distinctWhere cuenta claves distintas entre las filas que pasan el filtro.
func distinctWhere[R any](rows []R, filter func(R) bool, key func(R) string) int64 {
	seen := make(map[string]struct{})
	for _, r := range rows {
		if filter == nil || filter(r) {
			seen[key(r)] = struct{}{}
		}
	}
	return int64(len(seen))
}

// ratio divide numerador entre denominador; con denominador cero devuelve el
// error tipado en lugar de cero o infinito (el caller decide cómo reportarlo).
func ratio(num, den decimal.Decimal) (decimal.Decimal, error) {
	if den.IsZero() {
		return decimal.Zero, domain.ErrDivisionByZero
	}
	return num.Div(den).Round(2), nil
}

// percent igual que ratio pero expresado como porcentaje.
func percent(num, den decimal.Decimal) (decimal.Decimal, error) {
	r, err := ratio(num.Mul(decimal.NewFromInt(100)), den)
	if err != nil {
		return decimal.Zero, err
	}
	return r, nil
}

func fromInt(n int64) decimal.Decimal { return decimal.NewFromInt(n) }
