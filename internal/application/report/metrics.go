package report

import (
	"github.com/shopspring/decimal"

	"github.com/gasdistrib/relatorio-dashboard-go/internal/domain/entity"
)

// Metrics são os indicadores escalares do relatório, recalculados a cada
// mudança de filtro sobre as coleções ativas.
//
// TotalExpenses e OrderExpensesTotal são medidas distintas e nunca devem ser
// confundidas: a primeira soma as contas a pagar da empresa (conjunto
// completo, sem filtro); a segunda soma os custos operacionais lançados por
// venda no conjunto filtrado, e é ela que entra no valor líquido.
type Metrics struct {
	TotalSales         decimal.Decimal
	TotalQuantity      int
	AverageTicket      decimal.Decimal
	PaymentTotal       decimal.Decimal
	TotalExpenses      decimal.Decimal
	OrderExpensesTotal decimal.Decimal
	NetValue           decimal.Decimal
}

// ComputeMetrics calcula os indicadores a partir dos rollups ativos e das
// despesas da empresa (sempre o conjunto completo).
func ComputeMetrics(rollups Rollups, expenses []entity.ExpenseRecord) Metrics {
	var m Metrics

	for _, s := range rollups.Sales {
		m.TotalSales = m.TotalSales.Add(s.Total)
		m.TotalQuantity += s.Quantity
		m.OrderExpensesTotal = m.OrderExpensesTotal.Add(s.Expenses)
	}

	if m.TotalQuantity > 0 {
		m.AverageTicket = m.TotalSales.Div(decimal.NewFromInt(int64(m.TotalQuantity)))
	}

	for _, p := range rollups.PaymentBreakdown {
		m.PaymentTotal = m.PaymentTotal.Add(p.Amount)
	}

	for _, e := range expenses {
		m.TotalExpenses = m.TotalExpenses.Add(e.Amount)
	}

	m.NetValue = m.TotalSales.Sub(m.OrderExpensesTotal)
	return m
}
