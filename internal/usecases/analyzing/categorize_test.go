package analyzing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/revenue-insights-api/internal/domain"
)

func TestCategorize(t *testing.T) {
	cfg := domain.DefaultAnalysisConfig()

	tests := []struct {
		name     string
		signals  domain.CustomerSignals
		expected domain.Category
	}{
		{
			name:     "queda sustentada com derrubada recente",
			signals:  domain.CustomerSignals{TrendSlope: -8, LastMonthChange: -0.25},
			expected: domain.CategoryChurnRisk,
		},
		{
			name:     "queda sustentada acumulada em dois meses",
			signals:  domain.CustomerSignals{TrendSlope: -8, LastMonthChange: -0.05, Last2MonthChange: -0.30},
			expected: domain.CategoryChurnRisk,
		},
		{
			name:     "colapso frente ao pico historico",
			signals:  domain.CustomerSignals{TrendSlope: -1, CurrentVsMax: 0.5, CurrentVsAvg: 0.8},
			expected: domain.CategoryChurnRisk,
		},
		{
			name:     "volatilidade alta acima do piso de receita",
			signals:  domain.CustomerSignals{AvgRevenue: 8000, VolatilityCV: 0.6, CurrentVsMax: 0.95, CurrentVsAvg: 1.0},
			expected: domain.CategoryVolatile,
		},
		{
			name:     "volatilidade alta abaixo do piso nao e volatil",
			signals:  domain.CustomerSignals{AvgRevenue: 4000, VolatilityCV: 0.6, CurrentVsMax: 0.95, CurrentVsAvg: 1.0},
			expected: domain.CategoryHealthy,
		},
		{
			name:     "crescimento acelerando",
			signals:  domain.CustomerSignals{TrendSlope: 8, LastMonthChange: 0.10, CurrentVsMax: 0.85, CurrentVsAvg: 1.1},
			expected: domain.CategoryExpansionOpportunity,
		},
		{
			name:     "crescimento sem aceleracao nem pico",
			signals:  domain.CustomerSignals{TrendSlope: 8, LastMonthChange: 0.01, CurrentVsMax: 0.85, CurrentVsAvg: 1.1, VolatilityCV: 0.3},
			expected: domain.CategoryHealthy,
		},
		{
			name:     "tendencia estavel com queda forte no ultimo mes",
			signals:  domain.CustomerSignals{TrendSlope: 1, LastMonthChange: -0.25, CurrentVsMax: 0.95, CurrentVsAvg: 0.9, VolatilityCV: 0.3},
			expected: domain.CategoryRecentDip,
		},
		{
			name:     "amolecimento em dois meses com tendencia positiva",
			signals:  domain.CustomerSignals{TrendSlope: 3, LastMonthChange: -0.05, Last2MonthChange: -0.12, CurrentVsMax: 0.95, CurrentVsAvg: 0.95, VolatilityCV: 0.3},
			expected: domain.CategoryRecentDip,
		},
		{
			name:     "reto e sem variacao",
			signals:  domain.CustomerSignals{TrendSlope: 0.5, VolatilityCV: 0.1, CurrentVsMax: 0.98, CurrentVsAvg: 1.0},
			expected: domain.CategoryStagnant,
		},
		{
			name:     "saudavel por exclusao",
			signals:  domain.CustomerSignals{TrendSlope: 3, VolatilityCV: 0.3, CurrentVsMax: 0.95, CurrentVsAvg: 1.0},
			expected: domain.CategoryHealthy,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Categorize(&tt.signals, cfg)
			assert.Equal(t, tt.expected, tt.signals.Category)
			assert.NotEmpty(t, tt.signals.Reason)
		})
	}
}

func TestCategorize_NaoReavaliaClienteNovoOuPerdido(t *testing.T) {
	cfg := domain.DefaultAnalysisConfig()

	signals := domain.CustomerSignals{Category: domain.CategoryNewCustomer, Reason: "Started generating revenue in FY26-Sep. Active avg: $2000"}
	Categorize(&signals, cfg)
	assert.Equal(t, domain.CategoryNewCustomer, signals.Category)

	signals = domain.CustomerSignals{Category: domain.CategoryChurned, TrendSlope: -50, LastMonthChange: -1}
	Categorize(&signals, cfg)
	assert.Equal(t, domain.CategoryChurned, signals.Category)
}

func TestDetermineAction_ContaPequenaNaoAciona(t *testing.T) {
	cfg := domain.DefaultAnalysisConfig()

	signals := domain.CustomerSignals{
		Category:   domain.CategoryChurnRisk,
		Confidence: domain.ConfidenceHigh,
		AvgRevenue: 1000,
		TrendSlope: -20,
	}
	DetermineAction(&signals, cfg)

	assert.Equal(t, domain.ActionNone, signals.RecommendedAction)
	assert.Equal(t, 0, signals.PriorityScore)
	assert.Contains(t, signals.EngagementRationale, "Below revenue threshold")
}

func TestDetermineAction_ConfiancaBaixaDobraOCorte(t *testing.T) {
	cfg := domain.DefaultAnalysisConfig()

	// 4000 passa o corte normal (3000) mas nao o dobrado (6000).
	signals := domain.CustomerSignals{
		Category:   domain.CategoryChurnRisk,
		Confidence: domain.ConfidenceLow,
		AvgRevenue: 4000,
		TrendSlope: -20,
	}
	DetermineAction(&signals, cfg)

	assert.Equal(t, domain.ActionNone, signals.RecommendedAction)
}

func TestDetermineAction_ImpactoBaixoNaoAciona(t *testing.T) {
	cfg := domain.DefaultAnalysisConfig()

	// Em risco: 5000 * 1% = $50/mês. Irrelevante.
	signals := domain.CustomerSignals{
		Category:   domain.CategoryChurnRisk,
		Confidence: domain.ConfidenceHigh,
		AvgRevenue: 5000,
		TrendSlope: -1,
	}
	DetermineAction(&signals, cfg)

	assert.Equal(t, domain.ActionNone, signals.RecommendedAction)
	assert.Contains(t, signals.EngagementRationale, "Dollar impact too low")
}

func TestDetermineAction_RiscoDeChurn(t *testing.T) {
	cfg := domain.DefaultAnalysisConfig()

	signals := domain.CustomerSignals{
		Category:         domain.CategoryChurnRisk,
		Confidence:       domain.ConfidenceMedium,
		AvgRevenue:       10000,
		TrendSlope:       -15,
		Last2MonthChange: -0.10,
	}
	DetermineAction(&signals, cfg)

	assert.Equal(t, domain.ActionCheckInHigh, signals.RecommendedAction)
	assert.InDelta(t, 1500.0, signals.DollarsAtRisk, 0.001)
	// Base 65 + porte (+5) + confianca media (+5) + queda severa (+10).
	assert.Equal(t, 85, signals.PriorityScore)
}

func TestDetermineAction_DolaresEmRiscoFalamMaisAlto(t *testing.T) {
	cfg := domain.DefaultAnalysisConfig()

	// 50000 * 10% = $5000/mês em risco: urgente mesmo sem categoria severa.
	signals := domain.CustomerSignals{
		Category:   domain.CategoryRecentDip,
		Confidence: domain.ConfidenceHigh,
		AvgRevenue: 50000,
		TrendSlope: -10,
	}
	DetermineAction(&signals, cfg)

	assert.Equal(t, domain.ActionCheckInUrgent, signals.RecommendedAction)
	assert.InDelta(t, 5000.0, signals.DollarsAtRisk, 0.001)
	assert.Equal(t, 100, signals.PriorityScore)
}

func TestDetermineAction_OportunidadeDeExpansao(t *testing.T) {
	cfg := domain.DefaultAnalysisConfig()

	signals := domain.CustomerSignals{
		Category:   domain.CategoryExpansionOpportunity,
		Confidence: domain.ConfidenceHigh,
		AvgRevenue: 20000,
		TrendSlope: 10,
	}
	DetermineAction(&signals, cfg)

	assert.Equal(t, domain.ActionExpansionOutreach, signals.RecommendedAction)
	assert.InDelta(t, 2000.0, signals.DollarsOpportunity, 0.001)
	// Base 55 + porte (+5) + confianca alta (+10).
	assert.Equal(t, 70, signals.PriorityScore)
}

func TestDetermineAction_ClientePerdidoViraMonitoramento(t *testing.T) {
	cfg := domain.DefaultAnalysisConfig()

	signals := domain.CustomerSignals{
		Category:   domain.CategoryChurned,
		Confidence: domain.ConfidenceHigh,
		AvgRevenue: 5000,
	}
	DetermineAction(&signals, cfg)

	assert.Equal(t, domain.ActionMonitor, signals.RecommendedAction)
	assert.Equal(t, 10, signals.PriorityScore)
}

func TestDetermineAction_ClienteNovoRecebeBoasVindas(t *testing.T) {
	cfg := domain.DefaultAnalysisConfig()

	signals := domain.CustomerSignals{
		Category:   domain.CategoryNewCustomer,
		Confidence: domain.ConfidenceLow,
		AvgRevenue: 8000,
	}
	DetermineAction(&signals, cfg)

	assert.Equal(t, domain.ActionWelcomeCall, signals.RecommendedAction)
	assert.Equal(t, 50, signals.PriorityScore)
}

func TestDetermineAction_ContaEstavelNaoAciona(t *testing.T) {
	cfg := domain.DefaultAnalysisConfig()

	for _, category := range []domain.Category{domain.CategoryStagnant, domain.CategoryHealthy} {
		signals := domain.CustomerSignals{
			Category:   category,
			Confidence: domain.ConfidenceHigh,
			AvgRevenue: 30000,
			TrendSlope: 4,
		}
		DetermineAction(&signals, cfg)

		assert.Equal(t, domain.ActionNone, signals.RecommendedAction)
		assert.Equal(t, 5, signals.PriorityScore)
	}
}
