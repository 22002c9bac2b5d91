package entity

import "github.com/shopspring/decimal"

// ExpenseRecord é uma despesa da empresa (conta a pagar) no período.
// Despesas são globais: nunca são filtradas por cliente ou método de
// pagamento, pois não pertencem a uma venda individual.
type ExpenseRecord struct {
	Provider string          `json:"provider"`
	DueDate  string          `json:"due_date"`
	Document string          `json:"document"`
	Amount   decimal.Decimal `json:"amount"`
}
