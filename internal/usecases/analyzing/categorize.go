package analyzing

import (
	"fmt"
	"math"
	"strings"

	"github.com/vfg2006/revenue-insights-api/internal/domain"
	"github.com/vfg2006/revenue-insights-api/pkg/utils"
)

// Limiares fixos da categorização. Os limiares por usuário ficam em
// AnalysisConfig; estes definem o formato das regras, não a sensibilidade.
const (
	decliningSlope    = -5.0
	sharpDrop         = -0.20
	moderateDrop      = -0.10
	growingSlope      = 5.0
	highVolatility    = 0.50
	stagnantSlope     = 2.0
	lowVolatility     = 0.20
	collapseThreshold = 0.70
	spikeThreshold    = 1.30
)

// Categorize aplica a sequência de decisão sobre os sinais, da categoria
// mais severa para a menos severa - a primeira regra satisfeita vence.
// Séries já marcadas como cliente novo ou perdido não são reavaliadas.
func Categorize(signals *domain.CustomerSignals, cfg *domain.AnalysisConfig) {
	if signals.Category == domain.CategoryNewCustomer || signals.Category == domain.CategoryChurned {
		return
	}

	slope := signals.TrendSlope
	lastChange := signals.LastMonthChange
	last2mChange := signals.Last2MonthChange
	volatility := signals.VolatilityCV

	// Risco de churn: tendência de queda com derrubada recente.
	if slope < decliningSlope && lastChange < sharpDrop {
		signals.Category = domain.CategoryChurnRisk
		signals.Reason = fmt.Sprintf("Declining %+.1f%%/month | Last month dropped %+.1f%%", slope, lastChange*100)
		return
	}
	if slope < decliningSlope && last2mChange < sharpDrop {
		signals.Category = domain.CategoryChurnRisk
		signals.Reason = fmt.Sprintf("Declining %+.1f%%/month | Down %+.1f%% over 2 months", slope, last2mChange*100)
		return
	}
	// Colapso: bem abaixo do pico histórico e ainda caindo.
	if signals.CurrentVsMax < collapseThreshold && slope < 0 {
		signals.Category = domain.CategoryChurnRisk
		signals.Reason = fmt.Sprintf("Revenue at %.0f%% of peak | Trend: %+.1f%%/month", signals.CurrentVsMax*100, slope)
		return
	}

	// Volátil: instabilidade alta. Contas pequenas oscilam por natureza,
	// então a regra só vale acima do piso de receita.
	if volatility > highVolatility && signals.AvgRevenue > cfg.VolatileMinRevenue {
		reason := fmt.Sprintf("High volatility (CV: %.0f%%) | Max drawdown: %.0f%%", volatility*100, signals.MaxDrawdown*100)
		if slope < 0 {
			reason += fmt.Sprintf(" | With downward trend (%+.1f%%/month)", slope)
		}
		signals.Category = domain.CategoryVolatile
		signals.Reason = reason
		return
	}

	// Expansão: crescendo com aceleração, perto do máximo ou acima da média.
	if slope > growingSlope {
		isAccelerating := lastChange > 0.05
		nearMax := signals.CurrentVsMax > 0.90
		aboveAvg := signals.CurrentVsAvg > spikeThreshold

		if isAccelerating || nearMax || aboveAvg {
			parts := []string{fmt.Sprintf("Growing %+.1f%%/month", slope)}
			if isAccelerating {
				parts = append(parts, fmt.Sprintf("Accelerating (+%.1f%% last month)", lastChange*100))
			}
			if nearMax {
				parts = append(parts, fmt.Sprintf("Near historical max (%.0f%%)", signals.CurrentVsMax*100))
			}
			if aboveAvg {
				parts = append(parts, fmt.Sprintf("Above avg (%.0f%% of historical)", signals.CurrentVsAvg*100))
			}
			signals.Category = domain.CategoryExpansionOpportunity
			signals.Reason = strings.Join(parts, " | ")
			return
		}
	}

	// Queda recente: tendência estável mas o mês fechou em queda forte.
	if slope >= decliningSlope && lastChange < sharpDrop {
		signals.Category = domain.CategoryRecentDip
		signals.Reason = fmt.Sprintf("Overall trend stable (%+.1f%%/month) | But last month dropped %+.1f%%", slope, lastChange*100)
		return
	}
	if slope >= 0 && last2mChange < moderateDrop && lastChange < 0 {
		signals.Category = domain.CategoryRecentDip
		signals.Reason = fmt.Sprintf("Positive trend (%+.1f%%/month) | Recent softness: %+.1f%% over 2 months", slope, last2mChange*100)
		return
	}

	// Estagnado: reto e sem variação.
	if math.Abs(slope) < stagnantSlope && volatility < lowVolatility {
		signals.Category = domain.CategoryStagnant
		signals.Reason = fmt.Sprintf("Flat trend (%+.1f%%/month) | Low volatility (%.0f%%)", slope, volatility*100)
		return
	}

	signals.Category = domain.CategoryHealthy
	signals.Reason = fmt.Sprintf("Trend: %+.1f%%/month | Volatility: %.0f%%", slope, volatility*100)
}

// DetermineAction traduz categoria e sinais em uma ação recomendada com
// estimativa de impacto em dólares e score de prioridade.
func DetermineAction(signals *domain.CustomerSignals, cfg *domain.AnalysisConfig) {
	if signals.TrendSlope < 0 {
		signals.DollarsAtRisk = utils.RoundWithTwoDecimalPlace(signals.AvgRevenue * math.Abs(signals.TrendSlope) / 100)
	}
	if signals.TrendSlope > 0 {
		signals.DollarsOpportunity = utils.RoundWithTwoDecimalPlace(signals.AvgRevenue * signals.TrendSlope / 100)
	}

	// Com pouca história, o corte de receita sobe: não vale acionar um
	// vendedor em cima de um sinal fraco de uma conta pequena.
	effectiveMinRevenue := cfg.MinRevenueForOutreach
	if signals.Confidence == domain.ConfidenceLow {
		effectiveMinRevenue *= cfg.LowConfidenceRevenueMultiplier
	}

	if signals.AvgRevenue < effectiveMinRevenue {
		signals.RecommendedAction = domain.ActionNone
		signals.EngagementRationale = fmt.Sprintf("Below revenue threshold ($%.0f < $%.0f)", signals.AvgRevenue, effectiveMinRevenue)
		signals.PriorityScore = 0
		return
	}

	maxDollarImpact := math.Max(signals.DollarsAtRisk, signals.DollarsOpportunity)
	if maxDollarImpact < cfg.MinDollarImpact &&
		signals.Category != domain.CategoryNewCustomer && signals.Category != domain.CategoryChurned {
		signals.RecommendedAction = domain.ActionNone
		signals.EngagementRationale = fmt.Sprintf("Dollar impact too low ($%.0f/mo). Not worth actioning.", maxDollarImpact)
		signals.PriorityScore = 0
		return
	}

	switch signals.Category {
	case domain.CategoryChurned:
		signals.RecommendedAction = domain.ActionMonitor
		signals.EngagementRationale = "Customer churned. Review for win-back campaign eligibility."
		signals.PriorityScore = 10
		return

	case domain.CategoryNewCustomer:
		signals.RecommendedAction = domain.ActionWelcomeCall
		signals.EngagementRationale = fmt.Sprintf("New customer ramping up. Avg: $%.0f/month. Ensure successful onboarding.", signals.AvgRevenue)
		signals.PriorityScore = priorityScore(signals, cfg, 50)
		return
	}

	// Impacto em dólares fala mais alto que a categoria.
	if signals.DollarsAtRisk >= cfg.DollarAtRiskOverride {
		if signals.DollarsAtRisk >= cfg.DollarAtRiskOverride*2 {
			signals.RecommendedAction = domain.ActionCheckInUrgent
			signals.PriorityScore = priorityScore(signals, cfg, 70)
		} else {
			signals.RecommendedAction = domain.ActionCheckInHigh
			signals.PriorityScore = priorityScore(signals, cfg, 60)
		}
		signals.EngagementRationale = riskRationale(signals)
		return
	}

	if signals.DollarsOpportunity >= cfg.DollarOpportunityOverride {
		signals.RecommendedAction = domain.ActionExpansionOutreach
		signals.EngagementRationale = expansionRationale(signals)
		signals.PriorityScore = priorityScore(signals, cfg, 55)
		return
	}

	switch signals.Category {
	case domain.CategoryChurnRisk:
		if signals.Confidence == domain.ConfidenceHigh {
			signals.RecommendedAction = domain.ActionCheckInUrgent
			signals.PriorityScore = priorityScore(signals, cfg, 80)
		} else {
			signals.RecommendedAction = domain.ActionCheckInHigh
			signals.PriorityScore = priorityScore(signals, cfg, 65)
		}
		signals.EngagementRationale = riskRationale(signals)

	case domain.CategoryRecentDip:
		if signals.Last2MonthChange < cfg.RecentDropThreshold {
			signals.RecommendedAction = domain.ActionCheckInMedium
			signals.EngagementRationale = dipRationale(signals)
			signals.PriorityScore = priorityScore(signals, cfg, 45)
		} else {
			signals.RecommendedAction = domain.ActionMonitor
			signals.EngagementRationale = fmt.Sprintf("Minor dip (%+.1f%%). Monitor for continued decline.", signals.Last2MonthChange*100)
			signals.PriorityScore = priorityScore(signals, cfg, 25)
		}

	case domain.CategoryVolatile:
		if signals.Confidence == domain.ConfidenceHigh || signals.TrendSlope < -3 {
			signals.RecommendedAction = domain.ActionCheckInMedium
			signals.EngagementRationale = volatileRationale(signals)
			signals.PriorityScore = priorityScore(signals, cfg, 40)
		} else {
			signals.RecommendedAction = domain.ActionMonitor
			signals.EngagementRationale = fmt.Sprintf("Volatile usage pattern (CV: %.0f%%). No immediate risk.", signals.VolatilityCV*100)
			signals.PriorityScore = priorityScore(signals, cfg, 20)
		}

	case domain.CategoryExpansionOpportunity:
		if signals.TrendSlope/100 >= cfg.ExpansionGrowthThreshold {
			signals.RecommendedAction = domain.ActionExpansionOutreach
			signals.EngagementRationale = expansionRationale(signals)
			signals.PriorityScore = priorityScore(signals, cfg, 50)
		} else {
			signals.RecommendedAction = domain.ActionMonitor
			signals.EngagementRationale = fmt.Sprintf("Moderate growth (%+.1f%%/month). Watch for acceleration.", signals.TrendSlope)
			signals.PriorityScore = priorityScore(signals, cfg, 25)
		}

	case domain.CategoryStagnant, domain.CategoryHealthy:
		signals.RecommendedAction = domain.ActionNone
		signals.EngagementRationale = "Stable account. No action required."
		signals.PriorityScore = 5

	default:
		signals.RecommendedAction = domain.ActionMonitor
		signals.EngagementRationale = "Uncategorized - review manually."
		signals.PriorityScore = 15
	}
}

// priorityScore compõe o score 0-100 usado para ordenar a fila de ações:
// base por categoria mais reforços por porte, confiança e severidade.
func priorityScore(signals *domain.CustomerSignals, cfg *domain.AnalysisConfig, base int) int {
	score := base

	switch {
	case signals.AvgRevenue >= cfg.StrategicThreshold:
		score += 20
	case signals.AvgRevenue >= cfg.HighValueThreshold:
		score += 12
	case signals.AvgRevenue >= cfg.MinRevenueForOutreach*3:
		score += 5
	}

	switch signals.Confidence {
	case domain.ConfidenceHigh:
		score += 10
	case domain.ConfidenceMedium:
		score += 5
	}

	if signals.TrendSlope < -10 {
		score += 10
	} else if signals.TrendSlope < -5 {
		score += 5
	}

	if signals.Last2MonthChange < -0.25 {
		score += 10
	} else if signals.Last2MonthChange < -0.15 {
		score += 5
	}

	if score > 100 {
		return 100
	}
	if score < 0 {
		return 0
	}
	return score
}

func riskRationale(signals *domain.CustomerSignals) string {
	parts := make([]string, 0, 5)

	if signals.VolatilityCV > 0.5 {
		parts = append(parts, fmt.Sprintf("High volatility (CV %.0f%%)", signals.VolatilityCV*100))
	}
	if signals.TrendSlope < -3 {
		parts = append(parts, fmt.Sprintf("declining %+.1f%%/month", signals.TrendSlope))
	}
	if signals.Last2MonthChange < -0.1 {
		parts = append(parts, fmt.Sprintf("down %.0f%% over 2 months", math.Abs(signals.Last2MonthChange)*100))
	} else if signals.LastMonthChange < -0.1 {
		parts = append(parts, fmt.Sprintf("dropped %.0f%% last month", math.Abs(signals.LastMonthChange)*100))
	}
	if signals.CurrentVsMax < 0.8 {
		parts = append(parts, fmt.Sprintf("at %.0f%% of historical peak", signals.CurrentVsMax*100))
	}
	if signals.DollarsAtRisk > 0 {
		parts = append(parts, fmt.Sprintf("~$%.0f/month at risk", signals.DollarsAtRisk))
	}
	if len(parts) == 0 {
		parts = append(parts, signals.Reason)
	}

	return sentence(strings.Join(parts, ". ")) + "."
}

func dipRationale(signals *domain.CustomerSignals) string {
	parts := []string{
		fmt.Sprintf("Overall trend stable (%+.1f%%/month)", signals.TrendSlope),
		fmt.Sprintf("but recent %.0f%% decline over 2 months", math.Abs(signals.Last2MonthChange)*100),
	}
	if signals.DollarsAtRisk > 500 {
		parts = append(parts, fmt.Sprintf("~$%.0f/month at risk if continues", signals.DollarsAtRisk))
	}

	return sentence(strings.Join(parts, ". ")) + ". Soft check-in recommended."
}

func volatileRationale(signals *domain.CustomerSignals) string {
	parts := []string{
		fmt.Sprintf("Usage swings significantly (CV %.0f%%)", signals.VolatilityCV*100),
		fmt.Sprintf("max drawdown %.0f%%", signals.MaxDrawdown*100),
	}
	if signals.TrendSlope < 0 {
		parts = append(parts, fmt.Sprintf("with downward drift (%+.1f%%/month)", signals.TrendSlope))
	}

	return sentence(strings.Join(parts, ". ")) + ". Usage pattern review recommended."
}

func expansionRationale(signals *domain.CustomerSignals) string {
	parts := []string{fmt.Sprintf("Growing %+.1f%%/month", signals.TrendSlope)}

	if signals.LastMonthChange > 0.05 {
		parts = append(parts, fmt.Sprintf("accelerating (+%.0f%% last month)", signals.LastMonthChange*100))
	}
	if signals.CurrentVsMax > 1.0 {
		parts = append(parts, "at all-time high")
	} else if signals.CurrentVsMax > 0.9 {
		parts = append(parts, fmt.Sprintf("near historical max (%.0f%%)", signals.CurrentVsMax*100))
	}
	if signals.DollarsOpportunity > 0 {
		parts = append(parts, fmt.Sprintf("~$%.0f/month growth opportunity", signals.DollarsOpportunity))
	}

	return sentence(strings.Join(parts, ". ")) + ". Expansion conversation opportunity."
}

func sentence(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
