package entity

import "github.com/shopspring/decimal"

// ReceivementRecord é um recebimento registrado no período, independente da
// venda que eventualmente liquida. Received assume o valor de Amount quando o
// backend não o informa (resolvido no mapeamento da borda).
type ReceivementRecord struct {
	Code     string          `json:"code"`
	Client   string          `json:"client"`
	Method   string          `json:"method"`
	Document string          `json:"document"`
	Amount   decimal.Decimal `json:"amount"`
	Received decimal.Decimal `json:"received"`
}

// ReceivementSummaryRow é uma linha do resumo de recebimentos por método.
type ReceivementSummaryRow struct {
	Method   string          `json:"method"`
	Quantity int             `json:"quantity"`
	Amount   decimal.Decimal `json:"amount"`
}
