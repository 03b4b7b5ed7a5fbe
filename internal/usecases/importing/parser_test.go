package importing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleExtract = `FiscalMonth,,,FY26-Jul,FY26-Aug,FY26-Sep,Total
TPAccountName,ServiceCompGrouping,ServiceLevel4,$ ACR,$ ACR,$ ACR,$ ACR
Contoso,Core DBs,Total,"$10,000","$11,000","$12,000","$33,000"
Contoso,Core DBs,SQL Database,"$6,000","$6,500","$7,000","$19,500"
Contoso,Total,,"$10,000","$11,000","$12,000","$33,000"
Fabrikam,Analytics,Total,$500,($200),$0,$300
`

func TestParseExtract(t *testing.T) {
	extract, err := ParseExtract([]byte(sampleExtract), "acr_details.csv")
	require.NoError(t, err)

	require.Len(t, extract.MonthColumns, 3)
	assert.Equal(t, "FY26-Jul", extract.MonthColumns[0].FiscalMonth)
	assert.Equal(t, time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC), extract.MonthColumns[0].MonthDate)
	assert.Equal(t, time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC), extract.MonthColumns[2].MonthDate)

	assert.Equal(t, time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC), extract.EarliestMonth())
	assert.Equal(t, time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC), extract.LatestMonth())

	require.Len(t, extract.Rows, 4)

	total := extract.Rows[0]
	assert.Equal(t, "Contoso", total.CustomerName)
	assert.Equal(t, "Core DBs", total.Bucket)
	assert.Equal(t, "Total", total.Product)
	assert.Equal(t, []float64{10000, 11000, 12000}, total.Revenues)

	product := extract.Rows[1]
	assert.Equal(t, "SQL Database", product.Product)
	assert.Equal(t, []float64{6000, 6500, 7000}, product.Revenues)

	// Valores com parênteses são negativos; célula $0 vira zero.
	fabrikam := extract.Rows[3]
	assert.Equal(t, []float64{500, -200, 0}, fabrikam.Revenues)
}

func TestParseExtract_TotalColumnExcluded(t *testing.T) {
	extract, err := ParseExtract([]byte(sampleExtract), "acr_details.csv")
	require.NoError(t, err)

	for _, col := range extract.MonthColumns {
		assert.NotEqual(t, "Total", col.FiscalMonth)
	}
}

func TestParseExtract_SemColunasDeMes(t *testing.T) {
	content := "TPAccountName,Bucket,Product,Valor\nContoso,Core DBs,Total,100\n"

	_, err := ParseExtract([]byte(content), "sem_meses.csv")
	assert.ErrorIs(t, err, ErrNoMonthColumns)
}

func TestParseExtract_ColunasFYInvalidas(t *testing.T) {
	content := "FiscalMonth,,,FYXX-Zzz,Total\nTPAccountName,B,P,$ ACR\nContoso,Core DBs,Total,100\n"

	_, err := ParseExtract([]byte(content), "invalido.csv")
	assert.ErrorIs(t, err, ErrNoParseableMonths)
}

func TestParseExtract_LinhasSemClienteIgnoradas(t *testing.T) {
	content := "FiscalMonth,,,FY26-Jul\nTPAccountName,B,P,$ ACR\n,Core DBs,Total,100\nContoso,Core DBs,Total,100\n"

	extract, err := ParseExtract([]byte(content), "extrato.csv")
	require.NoError(t, err)
	require.Len(t, extract.Rows, 1)
	assert.Equal(t, "Contoso", extract.Rows[0].CustomerName)
}

func TestParseExtract_CodificacaoWindows1252(t *testing.T) {
	// "Calçados São Pedro" com ç/ã em cp1252, inválido como utf-8.
	header := []byte("FiscalMonth,,,FY26-Jul\nTPAccountName,B,P,$ ACR\n")
	row := []byte{'C', 'a', 'l', 0xE7, 'a', 'd', 'o', 's', ' ', 'S', 0xE3, 'o', ' ', 'P', 'e', 'd', 'r', 'o', ',', 'C', 'o', 'r', 'e', ' ', 'D', 'B', 's', ',', 'T', 'o', 't', 'a', 'l', ',', '5', '0', '0', '\n'}

	extract, err := ParseExtract(append(header, row...), "extrato.csv")
	require.NoError(t, err)
	require.Len(t, extract.Rows, 1)
	assert.Equal(t, "Calçados São Pedro", extract.Rows[0].CustomerName)
	assert.Equal(t, []float64{500}, extract.Rows[0].Revenues)
}

func TestParseExtract_ArquivoIlegivel(t *testing.T) {
	_, err := ParseExtract([]byte{0x00, 0x01, 0x02}, "lixo.xlsx")
	assert.ErrorIs(t, err, ErrUnreadableFile)
}

func TestConsolidateProductName(t *testing.T) {
	assert.Equal(t, "Azure Synapse Analytics", ConsolidateProductName("Azure Synapse Analytics Dedicated SQL Pool"))
	assert.Equal(t, "Azure Synapse Analytics", ConsolidateProductName("Azure Synapse Analytics"))
	assert.Equal(t, "SQL Database", ConsolidateProductName("SQL Database"))
}
