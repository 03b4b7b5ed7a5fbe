package importing

import (
	"bytes"
	"encoding/csv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"

	"github.com/vfg2006/revenue-insights-api/pkg/utils"
)

// Formato do extrato (ACR Details by Quarter Month SL4):
//
//	Linha 0: FiscalMonth, , , FY26-Jul, FY26-Aug, ..., Total
//	Linha 1: TPAccountName, ServiceCompGrouping, ServiceLevel4, $ ACR, ...
//	Linha 2+: Cliente, Bucket, Produto, $receita, $receita, ...
//
// A coluna Total e tudo após ela são ignorados; os totais são deriváveis.

// MonthColumn é uma coluna de mês fiscal reconhecida no cabeçalho.
type MonthColumn struct {
	FiscalMonth string
	MonthDate   time.Time
}

// ExtractRow é uma linha de dados do extrato, com as receitas alinhadas às
// colunas de mês do Extract.
type ExtractRow struct {
	CustomerName string
	Bucket       string
	Product      string
	Revenues     []float64
}

// Extract é o extrato já estruturado, pronto para o upsert.
type Extract struct {
	MonthColumns []MonthColumn
	Rows         []ExtractRow
}

// EarliestMonth retorna o menor mês presente no extrato.
func (e *Extract) EarliestMonth() time.Time {
	earliest := e.MonthColumns[0].MonthDate
	for _, col := range e.MonthColumns[1:] {
		if col.MonthDate.Before(earliest) {
			earliest = col.MonthDate
		}
	}
	return earliest
}

// LatestMonth retorna o maior mês presente no extrato.
func (e *Extract) LatestMonth() time.Time {
	latest := e.MonthColumns[0].MonthDate
	for _, col := range e.MonthColumns[1:] {
		if col.MonthDate.After(latest) {
			latest = col.MonthDate
		}
	}
	return latest
}

// ParseExtract interpreta o conteúdo bruto de um extrato de receita.
// Planilhas .xlsx são lidas pela primeira aba; qualquer outro arquivo é
// tratado como CSV, testando as codificações comuns dos exports.
func ParseExtract(content []byte, filename string) (*Extract, error) {
	var (
		table [][]string
		err   error
	)

	if strings.HasSuffix(strings.ToLower(filename), ".xlsx") {
		table, err = loadWorkbook(content)
	} else {
		table, err = loadCSV(content)
	}
	if err != nil {
		return nil, err
	}

	return parseTable(table)
}

func loadWorkbook(content []byte) ([][]string, error) {
	workbook, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, ErrUnreadableFile
	}
	defer workbook.Close()

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrUnreadableFile
	}

	rows, err := workbook.GetRows(sheets[0])
	if err != nil {
		return nil, ErrUnreadableFile
	}

	return rows, nil
}

func loadCSV(content []byte) ([][]string, error) {
	candidates := make([]string, 0, 3)

	if utf8.Valid(content) {
		candidates = append(candidates, string(content))
	}

	// Exports antigos costumam vir em cp1252 ou latin-1.
	for _, cm := range []*charmap.Charmap{charmap.Windows1252, charmap.ISO8859_1} {
		if decoded, err := cm.NewDecoder().Bytes(content); err == nil {
			candidates = append(candidates, string(decoded))
		}
	}

	for _, candidate := range candidates {
		reader := csv.NewReader(strings.NewReader(candidate))
		reader.FieldsPerRecord = -1

		rows, err := reader.ReadAll()
		if err == nil && len(rows) > 0 {
			return rows, nil
		}
	}

	return nil, ErrUnreadableFile
}

func parseTable(table [][]string) (*Extract, error) {
	if len(table) == 0 {
		return nil, ErrNoMonthColumns
	}

	columns, indexes, err := monthColumns(table[0])
	if err != nil {
		return nil, err
	}

	rows := make([]ExtractRow, 0)
	if len(table) > 2 {
		// Linha 0 traz os meses, linha 1 os rótulos das colunas.
		for _, raw := range table[2:] {
			row, ok := parseRow(raw, indexes)
			if !ok {
				continue
			}
			rows = append(rows, row)
		}
	}

	return &Extract{
		MonthColumns: columns,
		Rows:         rows,
	}, nil
}

func monthColumns(header []string) ([]MonthColumn, []int, error) {
	start := -1
	for i, cell := range header {
		if strings.Contains(cell, "FY") {
			start = i
			break
		}
	}
	if start == -1 {
		return nil, nil, ErrNoMonthColumns
	}

	columns := make([]MonthColumn, 0)
	indexes := make([]int, 0)
	sawLabel := false

	for i := start; i < len(header); i++ {
		cell := strings.TrimSpace(header[i])
		if cell == "" {
			continue
		}
		if strings.EqualFold(cell, "total") {
			break
		}
		if !strings.Contains(cell, "FY") {
			continue
		}

		sawLabel = true
		date := utils.FiscalMonthToDate(cell)
		if date == nil {
			continue
		}

		columns = append(columns, MonthColumn{FiscalMonth: cell, MonthDate: *date})
		indexes = append(indexes, i)
	}

	if len(columns) == 0 {
		if sawLabel {
			return nil, nil, ErrNoParseableMonths
		}
		return nil, nil, ErrNoMonthColumns
	}

	return columns, indexes, nil
}

func parseRow(raw []string, indexes []int) (ExtractRow, bool) {
	row := ExtractRow{}

	if len(raw) == 0 {
		return row, false
	}

	row.CustomerName = strings.TrimSpace(raw[0])
	if row.CustomerName == "" {
		return row, false
	}

	if len(raw) > 1 {
		row.Bucket = strings.TrimSpace(raw[1])
	}
	if len(raw) > 2 {
		row.Product = strings.TrimSpace(raw[2])
	}

	row.Revenues = make([]float64, len(indexes))
	for j, idx := range indexes {
		if idx < len(raw) {
			row.Revenues[j] = utils.ParseCurrency(raw[idx])
		}
	}

	return row, true
}
