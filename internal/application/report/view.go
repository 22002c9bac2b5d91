package report

import (
	"github.com/gasdistrib/relatorio-dashboard-go/internal/domain/entity"
)

// DerivedView é o estado derivado completo de (agregado bruto × filtros):
// rollups consistentes entre si e métricas escalares. O agregado bruto nunca
// é alterado; uma view é inteiramente recalculada quando o agregado ou os
// filtros mudam.
type DerivedView struct {
	Aggregate *entity.ReportAggregate
	Filters   Filters
	Rollups   Rollups
	Metrics   Metrics
}

// DeriveView é a função pura do pipeline: agregado × filtros -> view.
func DeriveView(agg *entity.ReportAggregate, filters Filters) *DerivedView {
	rollups := DeriveRollups(agg, filters)
	return &DerivedView{
		Aggregate: agg,
		Filters:   filters,
		Rollups:   rollups,
		Metrics:   ComputeMetrics(rollups, agg.Expenses),
	}
}

// ViewCache memoiza a última view derivada, chaveada pela identidade do
// agregado e pela chave dos filtros. Substitui o estado mutável implícito da
// implementação original por recomputação explícita.
type ViewCache struct {
	agg  *entity.ReportAggregate
	key  string
	view *DerivedView
}

// Get devolve a view memoizada quando (agregado, filtros) não mudou, e
// recomputa caso contrário. Agregado nil devolve view nil.
func (c *ViewCache) Get(agg *entity.ReportAggregate, filters Filters) *DerivedView {
	if agg == nil {
		c.agg, c.view = nil, nil
		return nil
	}
	if c.view != nil && c.agg == agg && c.key == filters.Key() {
		return c.view
	}
	c.agg = agg
	c.key = filters.Key()
	c.view = DeriveView(agg, filters)
	return c.view
}

// Invalidate descarta a view memoizada.
func (c *ViewCache) Invalidate() {
	c.agg, c.key, c.view = nil, "", nil
}
