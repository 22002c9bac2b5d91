package usecase

import (
	"context"
	"sync"

	"github.com/gasdistrib/relatorio-dashboard-go/internal/application/report"
	"github.com/gasdistrib/relatorio-dashboard-go/internal/domain/entity"
	"github.com/gasdistrib/relatorio-dashboard-go/internal/domain/repository"
	"github.com/gasdistrib/relatorio-dashboard-go/internal/shared/types"
)

// ReportSession guarda o agregado bruto do período corrente e a view
// derivada memoizada. Cada Refresh incrementa um contador de geração e
// cancela o fetch anterior ainda em voo; uma resposta só é aplicada se a sua
// geração ainda for a mais recente, de modo que dois períodos solicitados em
// sequência nunca deixam o estado com dados do período errado.
type ReportSession struct {
	repo repository.ReportRepository

	mu         sync.Mutex
	generation uint64
	cancel     context.CancelFunc
	aggregate  *entity.ReportAggregate
	rng        report.Range
	cache      report.ViewCache
}

// NewReportSession cria uma sessão vazia sobre o repositório de relatórios.
func NewReportSession(repo repository.ReportRepository) *ReportSession {
	return &ReportSession{repo: repo}
}

// Refresh busca o agregado do período informado e o torna o estado corrente.
// Em caso de falha de rede ou resposta sem sucesso, o estado é limpo (todas
// as coleções derivadas degradam para vazio) e o erro é devolvido. Uma
// resposta que chega depois de outro Refresh é descartada com
// ErrStaleResponse sem tocar no estado.
func (s *ReportSession) Refresh(ctx context.Context, rng report.Range, locationID string) error {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	if s.cancel != nil {
		s.cancel()
	}
	fetchCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.mu.Unlock()

	agg, err := s.repo.FetchReport(fetchCtx, repository.ReportRequest{
		StartDate:  rng.Start,
		EndDate:    rng.End,
		LocationID: locationID,
	})

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		return types.ErrStaleResponse
	}

	if err != nil {
		s.aggregate = nil
		s.rng = report.Range{}
		s.cache.Invalidate()
		return err
	}

	s.aggregate = agg
	s.rng = rng
	return nil
}

// Loaded informa se há um agregado carregado com sucesso.
func (s *ReportSession) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.aggregate != nil
}

// Range devolve o período aplicado do agregado corrente.
func (s *ReportSession) Range() report.Range {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng
}

// View devolve a view derivada para os filtros, memoizada por
// (agregado, filtros). Sem agregado carregado devolve nil.
func (s *ReportSession) View(filters report.Filters) *report.DerivedView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.Get(s.aggregate, filters)
}

// Clear descarta o estado carregado.
func (s *ReportSession) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.aggregate = nil
	s.rng = report.Range{}
	s.cache.Invalidate()
}
