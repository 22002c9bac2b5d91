package entity

// Client é uma entrada do diretório de clientes, usada para popular e
// validar o filtro de cliente. Somente leitura neste subsistema.
type Client struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
