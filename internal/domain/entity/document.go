package entity

// ReportDocument é o modelo de layout compartilhado por todos os
// renderizadores (terminal, PDF, documento de impressão, XLSX, CSV).
// Ele é construído uma única vez a partir do estado derivado; os
// renderizadores apenas o transcrevem, de modo que tela e exportações não
// podem divergir em valores ou ordem de linhas.
type ReportDocument struct {
	Title      string        `json:"title"`
	Period     string        `json:"period"`
	Unit       string        `json:"unit"`
	City       string        `json:"city"`
	EmittedAt  string        `json:"emitted_at"`
	PreparedBy string        `json:"prepared_by"`
	Cards      []SummaryCard     `json:"cards"`
	Sections   []DocumentSection `json:"sections"`
}

// SummaryCard é um indicador escalar do cabeçalho (total bruto, ticket
// médio, valor líquido...).
type SummaryCard struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// DocumentSection é uma tabela do relatório com linha de total explícita.
// Total pode ser nil em seções sem rodapé somável.
type DocumentSection struct {
	Title   string     `json:"title"`
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
	Total   []string   `json:"total,omitempty"`
	Empty   string     `json:"empty,omitempty"`
}
