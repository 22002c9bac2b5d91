package entity

// ReportMetadata descreve o cabeçalho do relatório detalhado.
// É fornecida pelo backend; quando ainda não há dados carregados, o caso de
// uso sintetiza uma versão de fallback a partir do período normalizado.
type ReportMetadata struct {
	Date       string `json:"date"`
	Unit       string `json:"unit"`
	City       string `json:"city"`
	Period     string `json:"period"`
	PreparedBy string `json:"prepared_by"`
}

// ReportAggregate é o agregado completo de um período, como retornado pelo
// backend. As coleções derivadas (productSummary, paymentBreakdown,
// receivementSummary, generalDetail) são os rollups calculados no servidor
// para o conjunto sem filtro.
type ReportAggregate struct {
	Metadata           ReportMetadata          `json:"metadata"`
	Sales              []SaleRecord            `json:"sales"`
	ProductSummary     []ProductSummaryRow     `json:"product_summary"`
	PaymentBreakdown   []PaymentBreakdownRow   `json:"payment_breakdown"`
	Receivements       []ReceivementRecord     `json:"receivements"`
	ReceivementSummary []ReceivementSummaryRow `json:"receivement_summary"`
	Expenses           []ExpenseRecord         `json:"expenses"`
	GeneralDetail      []PaymentBreakdownRow   `json:"general_detail"`
	LiquidStock        []LiquidStockRow        `json:"liquid_stock"`
	ContainerStock     []ContainerStockRow     `json:"container_stock"`
}
