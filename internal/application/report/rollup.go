package report

import (
	"github.com/shopspring/decimal"

	"github.com/gasdistrib/relatorio-dashboard-go/internal/domain/entity"
)

// Filters é o conjunto de filtros interativos ativos sobre o relatório.
// O valor "Todos" (ou vazio) desativa o filtro correspondente.
type Filters struct {
	Client  string
	Payment string
}

// Key devolve a chave de memoização dos filtros.
func (f Filters) Key() string {
	return f.Client + "\x00" + f.Payment
}

// Narrowing informa se algum filtro restringe o conjunto base.
func (f Filters) Narrowing() bool {
	return !IsAll(f.Client) || !IsAll(f.Payment)
}

// Rollups agrupa as coleções ativas do relatório: os conjuntos base já
// filtrados e os quatro rollups dependentes, consistentes entre si.
type Rollups struct {
	Sales              []entity.SaleRecord
	Receivements       []entity.ReceivementRecord
	ProductSummary     []entity.ProductSummaryRow
	PaymentBreakdown   []entity.PaymentBreakdownRow
	ReceivementSummary []entity.ReceivementSummaryRow
	GeneralDetail      []entity.PaymentBreakdownRow
}

// DeriveRollups recalcula os rollups dependentes a partir dos conjuntos base
// filtrados. Sem filtro de cliente ativo os rollups calculados no servidor
// são devolvidos intactos (evita re-derivação e deriva numérica no caso
// comum). Com filtro ativo, tudo é reconstruído do conjunto filtrado, de
// modo que as somas permaneçam consistentes com as linhas exibidas.
// Despesas e estoque nunca passam por aqui: são coleções da empresa inteira.
func DeriveRollups(agg *entity.ReportAggregate, filters Filters) Rollups {
	sales := filterSales(agg.Sales, filters)
	receivements := filterReceivements(agg.Receivements, filters)

	if !IsAll(filters.Client) {
		breakdown := rebuildPaymentBreakdown(sales)
		return Rollups{
			Sales:              sales,
			Receivements:       receivements,
			ProductSummary:     rebuildProductSummary(sales),
			PaymentBreakdown:   breakdown,
			ReceivementSummary: rebuildReceivementSummary(receivements),
			// O detalhamento geral não tem fonte própria: sob filtro ele
			// espelha o detalhamento por pagamento.
			GeneralDetail: breakdown,
		}
	}

	return Rollups{
		Sales:              sales,
		Receivements:       receivements,
		ProductSummary:     agg.ProductSummary,
		PaymentBreakdown:   agg.PaymentBreakdown,
		ReceivementSummary: agg.ReceivementSummary,
		GeneralDetail:      agg.GeneralDetail,
	}
}

func filterSales(sales []entity.SaleRecord, filters Filters) []entity.SaleRecord {
	out := make([]entity.SaleRecord, 0, len(sales))
	for _, s := range sales {
		if !MatchesClient(filters.Client, s.Client) {
			continue
		}
		if !MatchesPayment(filters.Payment, s.Method()) {
			continue
		}
		out = append(out, s)
	}
	return out
}

func filterReceivements(recs []entity.ReceivementRecord, filters Filters) []entity.ReceivementRecord {
	out := make([]entity.ReceivementRecord, 0, len(recs))
	for _, r := range recs {
		if !MatchesClient(filters.Client, r.Client) {
			continue
		}
		if !MatchesPayment(filters.Payment, r.Method) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// rebuildProductSummary agrupa as vendas filtradas por produto. A chave de
// agrupamento é a string exata do produto (sensível a caixa e espaços),
// intencionalmente mais rígida que o casamento de cliente.
func rebuildProductSummary(sales []entity.SaleRecord) []entity.ProductSummaryRow {
	index := make(map[string]int)
	rows := []entity.ProductSummaryRow{}

	for _, s := range sales {
		i, ok := index[s.Product]
		if !ok {
			i = len(rows)
			index[s.Product] = i
			rows = append(rows, entity.ProductSummaryRow{Product: s.Product})
		}
		rows[i].Quantity += s.Quantity
		rows[i].Total = rows[i].Total.Add(s.Total)
	}

	for i := range rows {
		if rows[i].Quantity > 0 {
			rows[i].AveragePrice = rows[i].Total.Div(decimal.NewFromInt(int64(rows[i].Quantity)))
		}
	}
	return rows
}

// rebuildPaymentBreakdown agrupa as vendas filtradas por método de pagamento
// (ausente conta como "Outros"), contando vendas e somando valores. O
// percentual é calculado sobre a soma do conjunto filtrado; com soma zero,
// todos os percentuais são zero.
func rebuildPaymentBreakdown(sales []entity.SaleRecord) []entity.PaymentBreakdownRow {
	index := make(map[string]int)
	rows := []entity.PaymentBreakdownRow{}
	sum := decimal.Zero

	for _, s := range sales {
		method := s.Method()
		i, ok := index[method]
		if !ok {
			i = len(rows)
			index[method] = i
			rows = append(rows, entity.PaymentBreakdownRow{Method: method})
		}
		rows[i].Quantity++
		rows[i].Amount = rows[i].Amount.Add(s.Total)
		sum = sum.Add(s.Total)
	}

	if !sum.IsZero() {
		for i := range rows {
			pct, _ := rows[i].Amount.Div(sum).Mul(decimal.NewFromInt(100)).Float64()
			rows[i].Percentage = pct
		}
	}
	return rows
}

func rebuildReceivementSummary(recs []entity.ReceivementRecord) []entity.ReceivementSummaryRow {
	index := make(map[string]int)
	rows := []entity.ReceivementSummaryRow{}

	for _, r := range recs {
		i, ok := index[r.Method]
		if !ok {
			i = len(rows)
			index[r.Method] = i
			rows = append(rows, entity.ReceivementSummaryRow{Method: r.Method})
		}
		rows[i].Quantity++
		rows[i].Amount = rows[i].Amount.Add(r.Amount)
	}
	return rows
}
