package importing

import "github.com/pkg/errors"

var (
	// ErrNoMonthColumns indica que a primeira linha do extrato não contém
	// nenhuma coluna no formato FYxx-Mon.
	ErrNoMonthColumns = errors.New("nenhuma coluna de mês fiscal encontrada (esperado formato FYxx-Mon)")

	// ErrNoParseableMonths indica que havia colunas FY mas nenhuma pôde ser
	// convertida em data.
	ErrNoParseableMonths = errors.New("não foi possível interpretar as colunas de mês fiscal")

	// ErrUnreadableFile indica que o conteúdo não pôde ser lido com nenhuma
	// das codificações suportadas.
	ErrUnreadableFile = errors.New("não foi possível ler o arquivo com nenhuma codificação suportada")

	// ErrNoDataRows indica um extrato estruturalmente válido porém vazio.
	ErrNoDataRows = errors.New("nenhuma linha de dados encontrada no extrato")
)
