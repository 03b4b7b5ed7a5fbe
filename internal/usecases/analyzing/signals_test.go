package analyzing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/revenue-insights-api/internal/domain"
)

func newSeries(name string, revenues []float64) Series {
	months := []string{
		"FY26-Jul", "FY26-Aug", "FY26-Sep", "FY26-Oct", "FY26-Nov", "FY26-Dec",
		"FY26-Jan", "FY26-Feb", "FY26-Mar", "FY26-Apr", "FY26-May", "FY26-Jun",
	}

	return Series{
		CustomerName: name,
		Bucket:       "Core DBs",
		Revenues:     revenues,
		MonthNames:   months[:len(revenues)],
	}
}

func TestComputeSignals_SerieCurtaDemais(t *testing.T) {
	signals := ComputeSignals(newSeries("Contoso", []float64{5000, 6000}))
	assert.Nil(t, signals)
}

func TestComputeSignals_ReceitaIrrelevante(t *testing.T) {
	signals := ComputeSignals(newSeries("Contoso", []float64{100, 150, 100}))
	assert.Nil(t, signals)
}

func TestComputeSignals_SerieMajoritariamenteZerada(t *testing.T) {
	signals := ComputeSignals(newSeries("Contoso", []float64{1000, 0, 1000, 0, 0, 1000}))
	assert.Nil(t, signals)
}

func TestComputeSignals_TendenciaDeAlta(t *testing.T) {
	signals := ComputeSignals(newSeries("Contoso", []float64{1000, 1100, 1200, 1300, 1400, 1500}))
	require.NotNil(t, signals)

	assert.Equal(t, 1250.0, signals.AvgRevenue)
	assert.Equal(t, 1500.0, signals.LatestRevenue)
	assert.Equal(t, domain.ConfidenceMedium, signals.Confidence)

	// Reta perfeita de +100/mês sobre média 1250: +8%/mês, R² = 1.
	assert.InDelta(t, 8.0, signals.TrendSlope, 0.001)
	assert.InDelta(t, 1.0, signals.TrendRSquared, 0.001)

	assert.InDelta(t, 100.0/1400.0, signals.LastMonthChange, 0.001)
	assert.InDelta(t, 200.0/1300.0, signals.Last2MonthChange, 0.001)
	assert.InDelta(t, 1500.0/1400.0, signals.CurrentVsMax, 0.001)
	assert.Equal(t, 0.0, signals.MaxDrawdown)
}

func TestComputeSignals_TendenciaDeQueda(t *testing.T) {
	signals := ComputeSignals(newSeries("Contoso", []float64{1500, 1400, 1300, 1200, 1100, 1000}))
	require.NotNil(t, signals)

	assert.InDelta(t, -8.0, signals.TrendSlope, 0.001)
	assert.Less(t, signals.LastMonthChange, 0.0)
	assert.InDelta(t, 1000.0/1500.0, signals.CurrentVsMax, 0.001)
	assert.InDelta(t, 500.0/1500.0, signals.MaxDrawdown, 0.001)
}

func TestComputeSignals_ConfiancaPorTamanhoDoHistorico(t *testing.T) {
	base := []float64{1000, 1100, 1200, 1300, 1400, 1500, 1600, 1700, 1800}

	low := ComputeSignals(newSeries("Contoso", base[:3]))
	require.NotNil(t, low)
	assert.Equal(t, domain.ConfidenceLow, low.Confidence)

	medium := ComputeSignals(newSeries("Contoso", base[:6]))
	require.NotNil(t, medium)
	assert.Equal(t, domain.ConfidenceMedium, medium.Confidence)

	high := ComputeSignals(newSeries("Contoso", base))
	require.NotNil(t, high)
	assert.Equal(t, domain.ConfidenceHigh, high.Confidence)
}

func TestComputeSignals_ClienteNovo(t *testing.T) {
	signals := ComputeSignals(newSeries("Contoso", []float64{0, 0, 1000, 2000, 3000}))
	require.NotNil(t, signals)

	assert.Equal(t, domain.CategoryNewCustomer, signals.Category)
	// A média considera só os meses ativos.
	assert.Equal(t, 2000.0, signals.AvgRevenue)
	assert.Contains(t, signals.Reason, "FY26-Sep")
}

func TestComputeSignals_ClientePerdido(t *testing.T) {
	signals := ComputeSignals(newSeries("Contoso", []float64{3000, 2000, 0, 0}))
	require.NotNil(t, signals)

	assert.Equal(t, domain.CategoryChurned, signals.Category)
	assert.Contains(t, signals.Reason, "$2500")
}

func TestComputeSignals_Deterministico(t *testing.T) {
	series := newSeries("Contoso", []float64{8000, 7500, 9000, 6500, 7000, 8200, 7800})

	first := ComputeSignals(series)
	second := ComputeSignals(series)

	require.NotNil(t, first)
	assert.Equal(t, first, second)
}
