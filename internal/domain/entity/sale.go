package entity

import "github.com/shopspring/decimal"

// Status de pagamento reconhecidos pelo backend.
const (
	PaymentStatusPaid    = "Pago"
	PaymentStatusOverdue = "Vencido"
	PaymentStatusPending = "Pendente"
)

// DefaultPaymentMethod é o rótulo usado quando a venda não informa o método.
const DefaultPaymentMethod = "Outros"

// SaleRecord é uma linha de venda do período (um item vendido).
// Total é o valor autoritativo vindo do backend; não é recalculado aqui.
type SaleRecord struct {
	Client        string          `json:"client"`
	City          string          `json:"city"`
	Product       string          `json:"product"`
	Date          string          `json:"date"`
	Quantity      int             `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	Total         decimal.Decimal `json:"total"`
	PaymentMethod string          `json:"payment_method,omitempty"`
	PaymentStatus string          `json:"payment_status,omitempty"`
	Expenses      decimal.Decimal `json:"expenses,omitempty"`
}

// Method retorna o método de pagamento, com fallback para "Outros".
func (s SaleRecord) Method() string {
	if s.PaymentMethod == "" {
		return DefaultPaymentMethod
	}
	return s.PaymentMethod
}

// ProductSummaryRow é uma linha do resumo por produto (um produto distinto).
type ProductSummaryRow struct {
	Product      string          `json:"product"`
	Quantity     int             `json:"quantity"`
	AveragePrice decimal.Decimal `json:"average_price"`
	Total        decimal.Decimal `json:"total"`
}

// PaymentBreakdownRow é uma linha do detalhamento por método de pagamento.
// Quantity conta vendas, não itens; Percentage está em [0,100].
type PaymentBreakdownRow struct {
	Method     string          `json:"method"`
	Quantity   int             `json:"quantity"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage float64         `json:"percentage"`
}
