package domain

import "time"

// Category classifica a saúde da receita de um cliente/bucket.
type Category string

const (
	CategoryChurnRisk            Category = "CHURN_RISK"
	CategoryRecentDip            Category = "RECENT_DIP"
	CategoryExpansionOpportunity Category = "EXPANSION_OPPORTUNITY"
	CategoryVolatile             Category = "VOLATILE"
	CategoryStagnant             Category = "STAGNANT"
	CategoryHealthy              Category = "HEALTHY"
	CategoryNewCustomer          Category = "NEW_CUSTOMER"
	CategoryChurned              Category = "CHURNED"
)

// Confidence indica a confiança do veredito, derivada do tamanho do histórico.
type Confidence string

const (
	ConfidenceHigh   Confidence = "HIGH"
	ConfidenceMedium Confidence = "MEDIUM"
	ConfidenceLow    Confidence = "LOW"
)

// Ações recomendadas. Os textos são exibidos diretamente aos vendedores.
const (
	ActionNone              = "NO ACTION"
	ActionMonitor           = "MONITOR"
	ActionCheckInUrgent     = "CHECK-IN (Urgent)"
	ActionCheckInHigh       = "CHECK-IN (High)"
	ActionCheckInMedium     = "CHECK-IN (Medium)"
	ActionExpansionOutreach = "EXPANSION OUTREACH"
	ActionWelcomeCall       = "WELCOME CALL"
)

// AnalysisConfig reúne os limiares que controlam categorização e recomendação.
// Uma configuração por usuário; na ausência valem os defaults.
type AnalysisConfig struct {
	MinRevenueForOutreach     float64 `json:"min_revenue_for_outreach"`
	MinDollarImpact           float64 `json:"min_dollar_impact"`
	DollarAtRiskOverride      float64 `json:"dollar_at_risk_override"`
	DollarOpportunityOverride float64 `json:"dollar_opportunity_override"`

	HighValueThreshold float64 `json:"high_value_threshold"`
	StrategicThreshold float64 `json:"strategic_threshold"`

	VolatileMinRevenue       float64 `json:"volatile_min_revenue"`
	RecentDropThreshold      float64 `json:"recent_drop_threshold"`
	ExpansionGrowthThreshold float64 `json:"expansion_growth_threshold"`

	LowConfidenceRevenueMultiplier float64 `json:"low_confidence_revenue_multiplier"`
}

// DefaultAnalysisConfig é o único ponto de construção dos limiares padrão.
func DefaultAnalysisConfig() *AnalysisConfig {
	return &AnalysisConfig{
		MinRevenueForOutreach:          3000,
		MinDollarImpact:                1000,
		DollarAtRiskOverride:           2000,
		DollarOpportunityOverride:      1500,
		HighValueThreshold:             25000,
		StrategicThreshold:             50000,
		VolatileMinRevenue:             5000,
		RecentDropThreshold:            -0.15,
		ExpansionGrowthThreshold:       0.08,
		LowConfidenceRevenueMultiplier: 2.0,
	}
}

// CustomerSignals carrega a série de um cliente/bucket e os sinais
// estatísticos computados sobre ela. Campos numéricos explícitos, um por
// sinal - nada de mapas intermediários.
type CustomerSignals struct {
	CustomerName string
	Bucket       string
	Revenues     []float64
	MonthNames   []string

	TPID       *string
	SellerName *string
	CustomerID *int

	AvgRevenue    float64
	LatestRevenue float64
	TrendSlope    float64 // % da média por mês
	TrendRSquared float64

	LastMonthChange  float64
	Last2MonthChange float64

	VolatilityCV float64
	MaxDrawdown  float64

	CurrentVsMax float64
	CurrentVsAvg float64

	Category   Category
	Confidence Confidence
	Reason     string

	RecommendedAction   string
	EngagementRationale string
	PriorityScore       int
	DollarsAtRisk       float64
	DollarsOpportunity  float64
}

// AnalysisResult é o veredito persistido por (cliente, bucket), sempre
// sobrescrito pela análise mais recente.
type AnalysisResult struct {
	ID           int     `json:"id"`
	CustomerName string  `json:"customer_name"`
	CustomerID   *int    `json:"customer_id"`
	Bucket       string  `json:"bucket"`
	TPID         *string `json:"tpid"`
	SellerName   *string `json:"seller_name"`

	Category            Category   `json:"category"`
	Confidence          Confidence `json:"confidence"`
	RecommendedAction   string     `json:"recommended_action"`
	EngagementRationale string     `json:"engagement_rationale"`
	PriorityScore       int        `json:"priority_score"`

	MonthsAnalyzed   int     `json:"months_analyzed"`
	AvgRevenue       float64 `json:"avg_revenue"`
	LatestRevenue    float64 `json:"latest_revenue"`
	TrendSlope       float64 `json:"trend_slope"`
	LastMonthChange  float64 `json:"last_month_change"`
	Last2MonthChange float64 `json:"last_2month_change"`
	VolatilityCV     float64 `json:"volatility_cv"`
	MaxDrawdown      float64 `json:"max_drawdown"`
	CurrentVsMax     float64 `json:"current_vs_max"`
	CurrentVsAvg     float64 `json:"current_vs_avg"`

	DollarsAtRisk      float64 `json:"dollars_at_risk"`
	DollarsOpportunity float64 `json:"dollars_opportunity"`

	PreviousCategory      *Category  `json:"previous_category"`
	PreviousPriorityScore *int       `json:"previous_priority_score"`
	StatusChangedAt       *time.Time `json:"status_changed_at"`

	AnalyzedAt time.Time `json:"analyzed_at"`
}

// Actionable indica se o veredito pede intervenção humana.
func (a *AnalysisResult) Actionable() bool {
	return a.RecommendedAction != ActionNone && a.RecommendedAction != ActionMonitor
}

// AnalysisSummary agrega os contadores de uma execução de análise.
type AnalysisSummary struct {
	Analyzed   int `json:"analyzed"`
	Actionable int `json:"actionable"`
	Skipped    int `json:"skipped"`
}

// AnalysisProgress é um item do fluxo incremental da análise.
// Summary é preenchido apenas no item final.
type AnalysisProgress struct {
	Current        int              `json:"current"`
	Total          int              `json:"total"`
	CustomerName   string           `json:"customer_name"`
	Bucket         string           `json:"bucket"`
	CategoryCounts map[Category]int `json:"category_counts"`
	Summary        *AnalysisSummary `json:"summary,omitempty"`
}

// CustomerBucket identifica uma combinação distinta presente nos fatos.
type CustomerBucket struct {
	CustomerName string  `json:"customer_name"`
	Bucket       string  `json:"bucket"`
	TPID         *string `json:"tpid"`
}

// AnalysisFilters filtra a consulta de vereditos acionáveis.
type AnalysisFilters struct {
	MinPriority int
	Categories  []Category
	SellerName  *string
	Limit       int
}
