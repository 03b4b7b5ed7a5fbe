package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/revenue-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/revenue-insights-api/internal/domain"
)

const (
	analysisConfigsTable = "analysis_configs"
)

// AnalysisConfigRepository guarda os limiares de análise por usuário.
// GetByUser retorna nil quando o usuário nunca salvou uma configuração;
// quem consome decide aplicar os defaults.
type AnalysisConfigRepository interface {
	GetByUser(userID int) (*domain.AnalysisConfig, error)
	Save(userID int, cfg *domain.AnalysisConfig) error
}

type analysisConfigRepository struct {
	q postgres.Queryer
}

func NewAnalysisConfigRepository(conn *postgres.Connection) AnalysisConfigRepository {
	return &analysisConfigRepository{
		q: conn,
	}
}

func (r *analysisConfigRepository) GetByUser(userID int) (*domain.AnalysisConfig, error) {
	query, args, err := squirrel.
		Select(`min_revenue_for_outreach, min_dollar_impact, dollar_at_risk_override,
			dollar_opportunity_override, high_value_threshold, strategic_threshold,
			volatile_min_revenue, recent_drop_threshold, expansion_growth_threshold,
			low_confidence_revenue_multiplier`).
		From(analysisConfigsTable).
		Where(squirrel.Eq{"user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	cfg := &domain.AnalysisConfig{}
	err = r.q.QueryRow(query, args...).Scan(
		&cfg.MinRevenueForOutreach,
		&cfg.MinDollarImpact,
		&cfg.DollarAtRiskOverride,
		&cfg.DollarOpportunityOverride,
		&cfg.HighValueThreshold,
		&cfg.StrategicThreshold,
		&cfg.VolatileMinRevenue,
		&cfg.RecentDropThreshold,
		&cfg.ExpansionGrowthThreshold,
		&cfg.LowConfidenceRevenueMultiplier,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear configuração de análise: %w", err)
	}

	return cfg, nil
}

func (r *analysisConfigRepository) Save(userID int, cfg *domain.AnalysisConfig) error {
	query, args, err := squirrel.
		Insert(analysisConfigsTable).
		Columns(
			"user_id", "min_revenue_for_outreach", "min_dollar_impact",
			"dollar_at_risk_override", "dollar_opportunity_override",
			"high_value_threshold", "strategic_threshold", "volatile_min_revenue",
			"recent_drop_threshold", "expansion_growth_threshold",
			"low_confidence_revenue_multiplier",
		).
		Values(
			userID,
			cfg.MinRevenueForOutreach,
			cfg.MinDollarImpact,
			cfg.DollarAtRiskOverride,
			cfg.DollarOpportunityOverride,
			cfg.HighValueThreshold,
			cfg.StrategicThreshold,
			cfg.VolatileMinRevenue,
			cfg.RecentDropThreshold,
			cfg.ExpansionGrowthThreshold,
			cfg.LowConfidenceRevenueMultiplier,
		).
		Suffix(`ON CONFLICT (user_id) DO UPDATE SET
			min_revenue_for_outreach = EXCLUDED.min_revenue_for_outreach,
			min_dollar_impact = EXCLUDED.min_dollar_impact,
			dollar_at_risk_override = EXCLUDED.dollar_at_risk_override,
			dollar_opportunity_override = EXCLUDED.dollar_opportunity_override,
			high_value_threshold = EXCLUDED.high_value_threshold,
			strategic_threshold = EXCLUDED.strategic_threshold,
			volatile_min_revenue = EXCLUDED.volatile_min_revenue,
			recent_drop_threshold = EXCLUDED.recent_drop_threshold,
			expansion_growth_threshold = EXCLUDED.expansion_growth_threshold,
			low_confidence_revenue_multiplier = EXCLUDED.low_confidence_revenue_multiplier`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.q.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}
