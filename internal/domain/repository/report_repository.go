package repository

import (
	"context"

	"github.com/gasdistrib/relatorio-dashboard-go/internal/domain/entity"
)

// ReportRequest é a consulta enviada ao backend: o período já normalizado
// (start <= end) e, opcionalmente, a unidade/filial.
type ReportRequest struct {
	StartDate  string
	EndDate    string
	LocationID string
}

// ReportRepository define a interface de acesso ao backend de relatórios.
type ReportRepository interface {
	// FetchReport busca o agregado do relatório detalhado para o período.
	FetchReport(ctx context.Context, req ReportRequest) (*entity.ReportAggregate, error)

	// ListClients busca o diretório de clientes para o filtro.
	ListClients(ctx context.Context) ([]entity.Client, error)
}
