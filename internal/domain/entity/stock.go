package entity

// LiquidStockRow é uma posição de estoque de produto líquido (granel).
// Estoque é somente leitura e nunca sofre filtro.
type LiquidStockRow struct {
	Product  string `json:"product"`
	Location string `json:"location"`
	Quantity int    `json:"quantity"`
}

// ContainerStockRow é uma posição de estoque de vasilhames.
type ContainerStockRow struct {
	Product     string `json:"product"`
	Location    string `json:"location"`
	Empty       int    `json:"empty"`
	Maintenance int    `json:"maintenance"`
	Total       int    `json:"total"`
}
