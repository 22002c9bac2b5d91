package types

import "errors"

var (
	// ErrReportNotLoaded bloqueia exportações antes de um fetch bem-sucedido.
	ErrReportNotLoaded = errors.New("nenhum relatório carregado; informe um período válido antes de exportar")

	// ErrStaleResponse marca a resposta de um fetch que foi substituído por
	// outro mais recente; o resultado é descartado, nunca aplicado.
	ErrStaleResponse = errors.New("resposta obsoleta: um período mais recente já foi solicitado")

	// ErrEmptyRange indica datas que não puderam ser interpretadas.
	ErrEmptyRange = errors.New("período inválido: use datas no formato YYYY-MM-DD")

	// ErrBrowserUnavailable indica que o documento de impressão não pôde ser
	// aberto no navegador.
	ErrBrowserUnavailable = errors.New("não foi possível abrir o navegador para impressão")
)
