package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gasdistrib/relatorio-dashboard-go/internal/domain/entity"
)

func buildTestDocument(t *testing.T, filters Filters) *entity.ReportDocument {
	t.Helper()
	agg := testAggregate()
	view := DeriveView(agg, filters)
	rng := Range{Start: "2025-03-01", End: "2025-03-31"}
	return BuildDocument(view, rng, time.Date(2025, time.April, 1, 9, 30, 0, 0, time.UTC))
}

func TestBuildDocumentHeaderAndCards(t *testing.T) {
	doc := buildTestDocument(t, Filters{Client: FilterAll, Payment: FilterAll})

	assert.Equal(t, "Relatório Detalhado", doc.Title)
	assert.Equal(t, "01/03/2025 a 31/03/2025", doc.Period)
	assert.Equal(t, "Filial Centro", doc.Unit)
	assert.Equal(t, "Fortaleza", doc.City)
	assert.Equal(t, "01/04/2025 09:30", doc.EmittedAt)

	require.Len(t, doc.Cards, 6)
	assert.Equal(t, "Total Bruto", doc.Cards[0].Label)
	assert.Equal(t, "R$ 1.320,00", doc.Cards[0].Value)
	assert.Equal(t, "Quantidade", doc.Cards[1].Label)
	assert.Equal(t, "7", doc.Cards[1].Value)
	assert.Equal(t, "Despesas (Empresa)", doc.Cards[3].Label)
	assert.Equal(t, "R$ 650,00", doc.Cards[3].Value)
	assert.Equal(t, "Despesas (Vendas)", doc.Cards[4].Label)
	assert.Equal(t, "R$ 15,00", doc.Cards[4].Value)
	assert.Equal(t, "Valor Líquido", doc.Cards[5].Label)
	assert.Equal(t, "R$ 1.305,00", doc.Cards[5].Value)
}

func TestBuildDocumentFixedSectionOrder(t *testing.T) {
	doc := buildTestDocument(t, Filters{Client: FilterAll, Payment: FilterAll})

	var titles []string
	for _, sec := range doc.Sections {
		titles = append(titles, sec.Title)
	}
	assert.Equal(t, []string{
		SectionSales,
		SectionProducts,
		SectionFinance,
		SectionReceivements,
		SectionReceivementSummary,
		SectionExpenses,
		SectionGeneralDetail,
	}, titles)
}

func TestBuildDocumentSalesSectionTotals(t *testing.T) {
	doc := buildTestDocument(t, Filters{Client: FilterAll, Payment: FilterAll})

	sales := doc.Sections[0]
	require.Len(t, sales.Rows, 4)
	assert.Equal(t, []string{"Mercearia Central", "Fortaleza", "P13", "02/03/2025", "2", "R$ 110,00", "R$ 220,00", "Pix", "Pago"}, sales.Rows[0])

	// A venda sem método informado é exibida como "Outros".
	assert.Equal(t, "Outros", sales.Rows[3][7])

	require.NotNil(t, sales.Total)
	assert.Equal(t, "Total", sales.Total[0])
	assert.Equal(t, "7", sales.Total[4])
	assert.Equal(t, "R$ 1.320,00", sales.Total[6])
}

func TestBuildDocumentFilteredTotalsMatchRows(t *testing.T) {
	doc := buildTestDocument(t, Filters{Client: "Mercearia Central", Payment: FilterAll})

	sales := doc.Sections[0]
	require.Len(t, sales.Rows, 2)
	assert.Equal(t, "R$ 615,00", sales.Total[6])

	finance := doc.Sections[2]
	require.Len(t, finance.Rows, 1)
	assert.Equal(t, []string{"Pix", "2", "R$ 615,00", "100,0%"}, finance.Rows[0])
	assert.Equal(t, "R$ 615,00", finance.Total[2])

	// Detalhamento geral espelha o financeiro sob filtro.
	general := doc.Sections[6]
	assert.Equal(t, finance.Rows, general.Rows)

	// Despesas permanecem o conjunto completo da empresa.
	expenses := doc.Sections[5]
	require.Len(t, expenses.Rows, 2)
	assert.Equal(t, "R$ 650,00", expenses.Total[3])
}

func TestBuildDocumentEmptyAggregate(t *testing.T) {
	agg := &entity.ReportAggregate{}
	view := DeriveView(agg, Filters{Client: FilterAll, Payment: FilterAll})
	doc := BuildDocument(view, Range{Start: "2025-03-01", End: "2025-03-31"}, time.Now())

	for _, sec := range doc.Sections {
		assert.Empty(t, sec.Rows, "seção %s", sec.Title)
		assert.Equal(t, "Nenhum registro no período", sec.Empty)
	}
	assert.Equal(t, "R$ 0,00", doc.Cards[0].Value)
	assert.Equal(t, "0", doc.Cards[1].Value)
}

func TestFallbackMetadata(t *testing.T) {
	rng := Range{Start: "2025-03-01", End: "2025-03-31"}
	meta := FallbackMetadata(rng, "Filial Centro", "Fortaleza", "Sistema")

	assert.Equal(t, "01/03/2025 a 31/03/2025", meta.Period)
	assert.Equal(t, "Filial Centro", meta.Unit)
	assert.Equal(t, "Fortaleza", meta.City)
	assert.Equal(t, "Sistema", meta.PreparedBy)
	assert.NotEmpty(t, meta.Date)
}

func TestStockSections(t *testing.T) {
	agg := testAggregate()
	sections := StockSections(agg)

	require.Len(t, sections, 2)
	assert.Equal(t, "Estoque (Líquido)", sections[0].Title)
	require.Len(t, sections[0].Rows, 1)
	assert.Equal(t, []string{"P13", "Depósito 1", "40"}, sections[0].Rows[0])

	assert.Equal(t, "Estoque (Vasilhames)", sections[1].Title)
	require.Len(t, sections[1].Rows, 1)
	assert.Equal(t, []string{"P13", "Depósito 1", "12", "3", "15"}, sections[1].Rows[0])
}
