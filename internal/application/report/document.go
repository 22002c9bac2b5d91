package report

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gasdistrib/relatorio-dashboard-go/internal/domain/entity"
)

// Títulos das seções do documento, na ordem fixa do contrato de exportação.
const (
	SectionSales              = "Vendas"
	SectionProducts           = "Produtos"
	SectionFinance            = "Financeiro"
	SectionReceivements       = "Recebimentos"
	SectionReceivementSummary = "Resumo dos Recebimentos"
	SectionExpenses           = "Despesas"
	SectionGeneralDetail      = "Detalhamento Geral"
)

const emptySectionText = "Nenhum registro no período"

// FallbackMetadata sintetiza o cabeçalho quando o backend ainda não
// retornou dados (ou o fetch falhou).
func FallbackMetadata(rng Range, unit, city, preparedBy string) entity.ReportMetadata {
	return entity.ReportMetadata{
		Date:       time.Now().Format(brDate),
		Unit:       unit,
		City:       city,
		Period:     rng.Label(),
		PreparedBy: preparedBy,
	}
}

// BuildDocument monta o modelo de documento a partir da view derivada.
// Este é o único lugar que transforma valores em texto: todos os
// renderizadores (terminal, PDF, impressão, XLSX, CSV, JSON) transcrevem o
// resultado sem reformatar nem recalcular nada.
func BuildDocument(view *DerivedView, rng Range, emittedAt time.Time) *entity.ReportDocument {
	meta := view.Aggregate.Metadata
	m := view.Metrics

	doc := &entity.ReportDocument{
		Title:      "Relatório Detalhado",
		Period:     rng.Label(),
		Unit:       meta.Unit,
		City:       meta.City,
		EmittedAt:  emittedAt.Format("02/01/2006 15:04"),
		PreparedBy: meta.PreparedBy,
		Cards: []entity.SummaryCard{
			{Label: "Total Bruto", Value: FormatBRL(m.TotalSales)},
			{Label: "Quantidade", Value: strconv.Itoa(m.TotalQuantity)},
			{Label: "Ticket Médio", Value: FormatBRL(m.AverageTicket)},
			{Label: "Despesas (Empresa)", Value: FormatBRL(m.TotalExpenses)},
			{Label: "Despesas (Vendas)", Value: FormatBRL(m.OrderExpensesTotal)},
			{Label: "Valor Líquido", Value: FormatBRL(m.NetValue)},
		},
	}

	doc.Sections = []entity.DocumentSection{
		salesSection(view.Rollups.Sales, m),
		productsSection(view.Rollups.ProductSummary),
		breakdownSection(SectionFinance, view.Rollups.PaymentBreakdown),
		receivementsSection(view.Rollups.Receivements),
		receivementSummarySection(view.Rollups.ReceivementSummary),
		expensesSection(view.Aggregate.Expenses, m.TotalExpenses),
		breakdownSection(SectionGeneralDetail, view.Rollups.GeneralDetail),
	}

	return doc
}

func salesSection(sales []entity.SaleRecord, m Metrics) entity.DocumentSection {
	sec := entity.DocumentSection{
		Title:   SectionSales,
		Columns: []string{"Cliente", "Cidade", "Produto", "Data", "Qtd", "Preço Unit.", "Total", "Pagamento", "Status"},
		Empty:   emptySectionText,
	}
	for _, s := range sales {
		sec.Rows = append(sec.Rows, []string{
			s.Client,
			s.City,
			s.Product,
			FormatDateBR(s.Date),
			strconv.Itoa(s.Quantity),
			FormatBRL(s.UnitPrice),
			FormatBRL(s.Total),
			s.Method(),
			s.PaymentStatus,
		})
	}
	sec.Total = []string{"Total", "", "", "", strconv.Itoa(m.TotalQuantity), "", FormatBRL(m.TotalSales), "", ""}
	return sec
}

func productsSection(rows []entity.ProductSummaryRow) entity.DocumentSection {
	sec := entity.DocumentSection{
		Title:   SectionProducts,
		Columns: []string{"Produto", "Qtd", "Preço Médio", "Total"},
		Empty:   emptySectionText,
	}
	qty := 0
	total := decimal.Zero
	for _, r := range rows {
		sec.Rows = append(sec.Rows, []string{
			r.Product,
			strconv.Itoa(r.Quantity),
			FormatBRL(r.AveragePrice),
			FormatBRL(r.Total),
		})
		qty += r.Quantity
		total = total.Add(r.Total)
	}
	sec.Total = []string{"Total", strconv.Itoa(qty), "", FormatBRL(total)}
	return sec
}

func breakdownSection(title string, rows []entity.PaymentBreakdownRow) entity.DocumentSection {
	sec := entity.DocumentSection{
		Title:   title,
		Columns: []string{"Método", "Qtd", "Valor", "%"},
		Empty:   emptySectionText,
	}
	qty := 0
	amount := decimal.Zero
	pct := 0.0
	for _, r := range rows {
		sec.Rows = append(sec.Rows, []string{
			r.Method,
			strconv.Itoa(r.Quantity),
			FormatBRL(r.Amount),
			FormatPercent(r.Percentage),
		})
		qty += r.Quantity
		amount = amount.Add(r.Amount)
		pct += r.Percentage
	}
	sec.Total = []string{"Total", strconv.Itoa(qty), FormatBRL(amount), FormatPercent(pct)}
	return sec
}

func receivementsSection(rows []entity.ReceivementRecord) entity.DocumentSection {
	sec := entity.DocumentSection{
		Title:   SectionReceivements,
		Columns: []string{"Código", "Cliente", "Método", "Documento", "Valor", "Recebido"},
		Empty:   emptySectionText,
	}
	amount := decimal.Zero
	received := decimal.Zero
	for _, r := range rows {
		sec.Rows = append(sec.Rows, []string{
			r.Code,
			r.Client,
			r.Method,
			r.Document,
			FormatBRL(r.Amount),
			FormatBRL(r.Received),
		})
		amount = amount.Add(r.Amount)
		received = received.Add(r.Received)
	}
	sec.Total = []string{"Total", "", "", "", FormatBRL(amount), FormatBRL(received)}
	return sec
}

func receivementSummarySection(rows []entity.ReceivementSummaryRow) entity.DocumentSection {
	sec := entity.DocumentSection{
		Title:   SectionReceivementSummary,
		Columns: []string{"Método", "Qtd", "Valor"},
		Empty:   emptySectionText,
	}
	qty := 0
	amount := decimal.Zero
	for _, r := range rows {
		sec.Rows = append(sec.Rows, []string{
			r.Method,
			strconv.Itoa(r.Quantity),
			FormatBRL(r.Amount),
		})
		qty += r.Quantity
		amount = amount.Add(r.Amount)
	}
	sec.Total = []string{"Total", strconv.Itoa(qty), FormatBRL(amount)}
	return sec
}

func expensesSection(rows []entity.ExpenseRecord, total decimal.Decimal) entity.DocumentSection {
	sec := entity.DocumentSection{
		Title:   SectionExpenses,
		Columns: []string{"Fornecedor", "Vencimento", "Documento", "Valor"},
		Empty:   emptySectionText,
	}
	for _, r := range rows {
		sec.Rows = append(sec.Rows, []string{
			r.Provider,
			FormatDateBR(r.DueDate),
			r.Document,
			FormatBRL(r.Amount),
		})
	}
	sec.Total = []string{"Total", "", "", FormatBRL(total)}
	return sec
}

// StockSections monta as tabelas de estoque exibidas no terminal. Estoque é
// somente leitura e fica fora do contrato de exportação.
func StockSections(agg *entity.ReportAggregate) []entity.DocumentSection {
	liquid := entity.DocumentSection{
		Title:   "Estoque (Líquido)",
		Columns: []string{"Produto", "Local", "Qtd"},
		Empty:   emptySectionText,
	}
	for _, r := range agg.LiquidStock {
		liquid.Rows = append(liquid.Rows, []string{r.Product, r.Location, strconv.Itoa(r.Quantity)})
	}

	container := entity.DocumentSection{
		Title:   "Estoque (Vasilhames)",
		Columns: []string{"Produto", "Local", "Vazios", "Manutenção", "Total"},
		Empty:   emptySectionText,
	}
	for _, r := range agg.ContainerStock {
		container.Rows = append(container.Rows, []string{
			r.Product,
			r.Location,
			strconv.Itoa(r.Empty),
			strconv.Itoa(r.Maintenance),
			strconv.Itoa(r.Total),
		})
	}

	return []entity.DocumentSection{liquid, container}
}
