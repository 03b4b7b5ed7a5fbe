package analyzing

import (
	"fmt"
	"math"

	"github.com/samber/lo"
	"github.com/vfg2006/revenue-insights-api/internal/domain"
)

// Séries com receita total abaixo deste valor não valem análise.
const minSeriesRevenue = 500.0

// Series é a entrada da computação de sinais: a série mensal ordenada de um
// cliente/bucket mais os identificadores que a acompanham.
type Series struct {
	CustomerName string
	Bucket       string
	Revenues     []float64
	MonthNames   []string

	TPID       *string
	SellerName *string
	CustomerID *int
}

// ComputeSignals computa os sinais estatísticos de uma série mensal.
// Retorna nil quando a série é curta ou irrelevante demais para análise:
// menos de 3 pontos, receita total abaixo do mínimo ou zeros demais.
// Séries de cliente novo ou perdido voltam já categorizadas - os demais
// sinais não fazem sentido nesses casos.
func ComputeSignals(series Series) *domain.CustomerSignals {
	revenues := series.Revenues
	n := len(revenues)

	if lo.Sum(revenues) < minSeriesRevenue {
		return nil
	}
	if n < 3 {
		return nil
	}

	signals := &domain.CustomerSignals{
		CustomerName: series.CustomerName,
		Bucket:       series.Bucket,
		Revenues:     revenues,
		MonthNames:   series.MonthNames,
		TPID:         series.TPID,
		SellerName:   series.SellerName,
		CustomerID:   series.CustomerID,
		Confidence:   confidenceForHistory(n),
		LatestRevenue: revenues[n-1],
	}

	signals.AvgRevenue = mean(revenues)
	nonZero := lo.Filter(revenues, func(r float64, _ int) bool { return r > 0 })

	zerosAtStart := 0
	for _, r := range revenues {
		if r != 0 {
			break
		}
		zerosAtStart++
	}

	zerosAtEnd := 0
	for i := n - 1; i >= 0; i-- {
		if revenues[i] != 0 {
			break
		}
		zerosAtEnd++
	}

	// Cliente novo: começou zerado e passou a gerar receita.
	if zerosAtStart >= 2 && len(nonZero) >= 2 {
		signals.Category = domain.CategoryNewCustomer
		activeAvg := mean(nonZero)
		signals.AvgRevenue = activeAvg
		signals.Reason = fmt.Sprintf("Started generating revenue in %s. Active avg: $%.0f", series.MonthNames[zerosAtStart], activeAvg)
		return signals
	}

	// Cliente perdido: receita caiu a zero e ficou lá.
	if zerosAtEnd >= 2 && len(nonZero) >= 2 {
		signals.Category = domain.CategoryChurned
		signals.Reason = fmt.Sprintf("Revenue dropped to $0. Previous avg: $%.0f", mean(nonZero))
		return signals
	}

	// O restante da análise exige uma série majoritariamente não nula.
	if float64(len(nonZero)) < float64(n)*0.6 {
		return nil
	}

	x := make([]float64, n)
	for i := range x {
		x[i] = float64(i + 1)
	}
	slope, _, rSquared := linearRegression(x, revenues)

	if signals.AvgRevenue > 0 {
		signals.TrendSlope = slope / signals.AvgRevenue * 100
	}
	signals.TrendRSquared = rSquared

	momChanges := make([]float64, 0, n-1)
	for i := 1; i < n; i++ {
		if revenues[i-1] > 0 {
			momChanges = append(momChanges, (revenues[i]-revenues[i-1])/revenues[i-1])
		} else {
			momChanges = append(momChanges, 0)
		}
	}

	if revenues[n-2] > 0 {
		signals.LastMonthChange = (revenues[n-1] - revenues[n-2]) / revenues[n-2]
	}
	if revenues[n-3] > 0 {
		signals.Last2MonthChange = (revenues[n-1] - revenues[n-3]) / revenues[n-3]
	}

	if len(momChanges) >= 2 {
		absChanges := lo.Map(momChanges, func(c float64, _ int) float64 { return math.Abs(c) })
		meanChange := mean(absChanges)
		if meanChange > 0 {
			signals.VolatilityCV = stdev(momChanges) / meanChange
		} else {
			signals.VolatilityCV = stdev(momChanges)
		}
	}

	peak := revenues[0]
	maxDrawdown := 0.0
	for _, r := range revenues[1:] {
		if r > peak {
			peak = r
		} else if peak > 0 {
			if dd := (peak - r) / peak; dd > maxDrawdown {
				maxDrawdown = dd
			}
		}
	}
	signals.MaxDrawdown = maxDrawdown

	history := revenues[:n-1]
	if maxHistory := lo.Max(history); maxHistory > 0 {
		signals.CurrentVsMax = revenues[n-1] / maxHistory
	}
	if avgHistory := mean(history); avgHistory > 0 {
		signals.CurrentVsAvg = revenues[n-1] / avgHistory
	}

	return signals
}

// confidenceForHistory deriva a confiança do tamanho do histórico: uma
// tendência de 3 pontos vale bem menos que uma de 12.
func confidenceForHistory(months int) domain.Confidence {
	switch {
	case months >= 9:
		return domain.ConfidenceHigh
	case months >= 6:
		return domain.ConfidenceMedium
	default:
		return domain.ConfidenceLow
	}
}

// linearRegression ajusta uma reta por mínimos quadrados.
func linearRegression(x, y []float64) (slope, intercept, rSquared float64) {
	n := len(x)
	if n < 2 {
		return 0, 0, 0
	}

	meanX := mean(x)
	meanY := mean(y)

	var numerator, denominator float64
	for i := 0; i < n; i++ {
		numerator += (x[i] - meanX) * (y[i] - meanY)
		denominator += (x[i] - meanX) * (x[i] - meanX)
	}

	if denominator == 0 {
		return 0, meanY, 0
	}

	slope = numerator / denominator
	intercept = meanY - slope*meanX

	var ssRes, ssTot float64
	for i := 0; i < n; i++ {
		predicted := slope*x[i] + intercept
		ssRes += (y[i] - predicted) * (y[i] - predicted)
		ssTot += (y[i] - meanY) * (y[i] - meanY)
	}

	if ssTot > 0 {
		rSquared = 1 - ssRes/ssTot
	}

	return slope, intercept, rSquared
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return lo.Sum(values) / float64(len(values))
}

func stdev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}

	m := mean(values)
	var sum float64
	for _, v := range values {
		sum += (v - m) * (v - m)
	}

	return math.Sqrt(sum / float64(len(values)-1))
}
