package utils

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCurrency(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
	}{
		{name: "Valor com símbolo e separador de milhar", input: "$1,234.56", expected: 1234.56},
		{name: "Valor inteiro com símbolo", input: "$1234", expected: 1234.0},
		{name: "Valor sem símbolo", input: "1234.56", expected: 1234.56},
		{name: "Negativo entre parênteses", input: "($500)", expected: -500.0},
		{name: "Negativo com separador", input: "($1,234)", expected: -1234.0},
		{name: "Valor com espaços", input: " $ 2,000 ", expected: 2000.0},
		{name: "String vazia", input: "", expected: 0.0},
		{name: "Texto não numérico", input: "N/A", expected: 0.0},
		{name: "Zero", input: "$0", expected: 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseCurrency(tt.input))
		})
	}
}

func TestFiscalMonthToDate(t *testing.T) {
	tests := []struct {
		fiscalMonth string
		expected    *time.Time
	}{
		{"FY26-Jul", datePtr(2025, time.July)},
		{"FY26-Dec", datePtr(2025, time.December)},
		{"FY26-Jan", datePtr(2026, time.January)},
		{"FY26-Jun", datePtr(2026, time.June)},
		{"FY24-Sep", datePtr(2023, time.September)},
		{"FY26-Xyz", nil},
		{"2026-01", nil},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.fiscalMonth, func(t *testing.T) {
			result := FiscalMonthToDate(tt.fiscalMonth)
			if tt.expected == nil {
				assert.Nil(t, result)
				return
			}

			require.NotNil(t, result)
			assert.Equal(t, *tt.expected, *result)
		})
	}
}

func TestDateToFiscalMonth(t *testing.T) {
	assert.Equal(t, "FY26-Jul", DateToFiscalMonth(time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "FY26-Jan", DateToFiscalMonth(time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "FY09-Mar", DateToFiscalMonth(time.Date(2009, time.March, 1, 0, 0, 0, 0, time.UTC)))
}

// Propriedade de ida e volta: todo rótulo válido sobrevive à conversão dupla.
func TestFiscalMonthRoundTrip(t *testing.T) {
	for year := 20; year <= 30; year++ {
		for _, abbr := range monthAbbrs {
			label := fmt.Sprintf("FY%02d-%s", year, abbr)

			date := FiscalMonthToDate(label)
			require.NotNil(t, date, "rótulo válido deveria converter: %s", label)
			assert.Equal(t, label, DateToFiscalMonth(*date))
		}
	}
}

func datePtr(year int, month time.Month) *time.Time {
	d := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return &d
}
