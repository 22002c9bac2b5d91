// Package report contém o motor do relatório detalhado: normalização de
// período, filtros, re-agregação, métricas derivadas e o modelo de documento
// compartilhado pelos renderizadores.
package report

import (
	"fmt"
	"time"

	"github.com/gasdistrib/relatorio-dashboard-go/internal/shared/types"
)

const isoDate = "2006-01-02"
const brDate = "02/01/2006"

// Range é um período já normalizado (Start <= End), em datas ISO.
// É a chave de busca/cache e o "período aplicado" exibido ao usuário.
type Range struct {
	Start string
	End   string
}

// NormalizeRange resolve duas datas editadas livremente em um par ordenado.
// Entradas invertidas são trocadas em silêncio: o backend espera start <= end
// e a UI original nunca tratou inversão como erro. Datas vazias assumem o mês
// corrente; uma única data vazia copia a outra (período de um dia).
func NormalizeRange(startDate, endDate string) (Range, error) {
	if startDate == "" && endDate == "" {
		return CurrentMonthRange(time.Now()), nil
	}
	if startDate == "" {
		startDate = endDate
	}
	if endDate == "" {
		endDate = startDate
	}

	start, err := time.Parse(isoDate, startDate)
	if err != nil {
		return Range{}, fmt.Errorf("%w: %q", types.ErrEmptyRange, startDate)
	}
	end, err := time.Parse(isoDate, endDate)
	if err != nil {
		return Range{}, fmt.Errorf("%w: %q", types.ErrEmptyRange, endDate)
	}

	if start.After(end) {
		start, end = end, start
	}

	return Range{Start: start.Format(isoDate), End: end.Format(isoDate)}, nil
}

// CurrentMonthRange retorna o período do primeiro dia do mês até hoje.
func CurrentMonthRange(now time.Time) Range {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return Range{Start: first.Format(isoDate), End: now.Format(isoDate)}
}

// Key devolve a chave de cache/fetch do período.
func (r Range) Key() string {
	return r.Start + "|" + r.End
}

// Label devolve o período no formato de exibição brasileiro.
func (r Range) Label() string {
	start, err1 := time.Parse(isoDate, r.Start)
	end, err2 := time.Parse(isoDate, r.End)
	if err1 != nil || err2 != nil {
		return r.Start + " a " + r.End
	}
	return start.Format(brDate) + " a " + end.Format(brDate)
}

// IsZero informa se o período ainda não foi definido.
func (r Range) IsZero() bool {
	return r.Start == "" && r.End == ""
}
