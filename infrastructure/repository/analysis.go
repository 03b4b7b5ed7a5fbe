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
	analysesTable = "revenue_analyses"

	analysisColumns = `id, customer_name, customer_id, bucket, tpid, seller_name,
		category, confidence, recommended_action, engagement_rationale, priority_score,
		months_analyzed, avg_revenue, latest_revenue, trend_slope,
		last_month_change, last_2month_change, volatility_cv, max_drawdown,
		current_vs_max, current_vs_avg, dollars_at_risk, dollars_opportunity,
		previous_category, previous_priority_score, status_changed_at, analyzed_at`
)

// AnalysisRepository guarda um veredito por (cliente, bucket). A escrita é
// sempre sobrescrita: SaveOrUpdate lê o veredito anterior para preservar o
// rastro de mudança de categoria antes de gravar o novo.
type AnalysisRepository interface {
	WithTx(tx *sql.Tx) AnalysisRepository
	GetByCustomerBucket(customerName, bucket string) (*domain.AnalysisResult, error)
	SaveOrUpdate(result *domain.AnalysisResult) error
	ListActionable(filters domain.AnalysisFilters) ([]*domain.AnalysisResult, error)
	ListBySeller(sellerName string) ([]*domain.AnalysisResult, error)
}

type analysisRepository struct {
	q postgres.Queryer
}

func NewAnalysisRepository(conn *postgres.Connection) AnalysisRepository {
	return &analysisRepository{
		q: conn,
	}
}

func (r *analysisRepository) WithTx(tx *sql.Tx) AnalysisRepository {
	return &analysisRepository{q: tx}
}

func (r *analysisRepository) GetByCustomerBucket(customerName, bucket string) (*domain.AnalysisResult, error) {
	query, args, err := squirrel.
		Select(analysisColumns).
		From(analysesTable).
		Where(squirrel.Eq{
			"customer_name": customerName,
			"bucket":        bucket,
		}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result := &domain.AnalysisResult{}
	err = scanAnalysis(r.q.QueryRow(query, args...), result)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear análise: %w", err)
	}

	return result, nil
}

func (r *analysisRepository) SaveOrUpdate(result *domain.AnalysisResult) error {
	existing, err := r.GetByCustomerBucket(result.CustomerName, result.Bucket)
	if err != nil {
		return err
	}

	if existing == nil {
		return r.insert(result)
	}

	result.ID = existing.ID
	if existing.Category != result.Category {
		result.PreviousCategory = &existing.Category
		result.PreviousPriorityScore = &existing.PriorityScore
		result.StatusChangedAt = &result.AnalyzedAt
	} else {
		result.PreviousCategory = existing.PreviousCategory
		result.PreviousPriorityScore = existing.PreviousPriorityScore
		result.StatusChangedAt = existing.StatusChangedAt
	}

	return r.update(result)
}

func (r *analysisRepository) insert(result *domain.AnalysisResult) error {
	query, args, err := squirrel.
		Insert(analysesTable).
		Columns(
			"customer_name", "customer_id", "bucket", "tpid", "seller_name",
			"category", "confidence", "recommended_action", "engagement_rationale", "priority_score",
			"months_analyzed", "avg_revenue", "latest_revenue", "trend_slope",
			"last_month_change", "last_2month_change", "volatility_cv", "max_drawdown",
			"current_vs_max", "current_vs_avg", "dollars_at_risk", "dollars_opportunity",
			"previous_category", "previous_priority_score", "status_changed_at", "analyzed_at",
		).
		Values(
			result.CustomerName,
			result.CustomerID,
			result.Bucket,
			result.TPID,
			result.SellerName,
			result.Category,
			result.Confidence,
			result.RecommendedAction,
			result.EngagementRationale,
			result.PriorityScore,
			result.MonthsAnalyzed,
			result.AvgRevenue,
			result.LatestRevenue,
			result.TrendSlope,
			result.LastMonthChange,
			result.Last2MonthChange,
			result.VolatilityCV,
			result.MaxDrawdown,
			result.CurrentVsMax,
			result.CurrentVsAvg,
			result.DollarsAtRisk,
			result.DollarsOpportunity,
			result.PreviousCategory,
			result.PreviousPriorityScore,
			result.StatusChangedAt,
			result.AnalyzedAt,
		).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.q.QueryRow(query, args...).Scan(&result.ID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *analysisRepository) update(result *domain.AnalysisResult) error {
	query, args, err := squirrel.
		Update(analysesTable).
		Set("customer_id", result.CustomerID).
		Set("tpid", result.TPID).
		Set("seller_name", result.SellerName).
		Set("category", result.Category).
		Set("confidence", result.Confidence).
		Set("recommended_action", result.RecommendedAction).
		Set("engagement_rationale", result.EngagementRationale).
		Set("priority_score", result.PriorityScore).
		Set("months_analyzed", result.MonthsAnalyzed).
		Set("avg_revenue", result.AvgRevenue).
		Set("latest_revenue", result.LatestRevenue).
		Set("trend_slope", result.TrendSlope).
		Set("last_month_change", result.LastMonthChange).
		Set("last_2month_change", result.Last2MonthChange).
		Set("volatility_cv", result.VolatilityCV).
		Set("max_drawdown", result.MaxDrawdown).
		Set("current_vs_max", result.CurrentVsMax).
		Set("current_vs_avg", result.CurrentVsAvg).
		Set("dollars_at_risk", result.DollarsAtRisk).
		Set("dollars_opportunity", result.DollarsOpportunity).
		Set("previous_category", result.PreviousCategory).
		Set("previous_priority_score", result.PreviousPriorityScore).
		Set("status_changed_at", result.StatusChangedAt).
		Set("analyzed_at", result.AnalyzedAt).
		Where(squirrel.Eq{"id": result.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.q.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *analysisRepository) ListActionable(filters domain.AnalysisFilters) ([]*domain.AnalysisResult, error) {
	builder := squirrel.
		Select(analysisColumns).
		From(analysesTable).
		Where(squirrel.NotEq{"recommended_action": []string{domain.ActionNone, domain.ActionMonitor}})

	if filters.MinPriority > 0 {
		builder = builder.Where(squirrel.GtOrEq{"priority_score": filters.MinPriority})
	}
	if len(filters.Categories) > 0 {
		builder = builder.Where(squirrel.Eq{"category": filters.Categories})
	}
	if filters.SellerName != nil {
		builder = builder.Where(squirrel.Eq{"seller_name": *filters.SellerName})
	}

	builder = builder.OrderBy("priority_score DESC", "dollars_at_risk DESC")

	if filters.Limit > 0 {
		builder = builder.Limit(uint64(filters.Limit))
	}

	query, args, err := builder.
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryAnalyses(query, args)
}

func (r *analysisRepository) ListBySeller(sellerName string) ([]*domain.AnalysisResult, error) {
	query, args, err := squirrel.
		Select(analysisColumns).
		From(analysesTable).
		Where(squirrel.Eq{"seller_name": sellerName}).
		OrderBy("priority_score DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryAnalyses(query, args)
}

func (r *analysisRepository) queryAnalyses(query string, args []interface{}) ([]*domain.AnalysisResult, error) {
	rows, err := r.q.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	results := make([]*domain.AnalysisResult, 0)
	for rows.Next() {
		result := &domain.AnalysisResult{}
		if err := scanAnalysisRows(rows, result); err != nil {
			return nil, fmt.Errorf("erro ao escanear análise: %w", err)
		}
		results = append(results, result)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return results, nil
}

func scanAnalysis(row *sql.Row, result *domain.AnalysisResult) error {
	return row.Scan(analysisFields(result)...)
}

func scanAnalysisRows(rows *sql.Rows, result *domain.AnalysisResult) error {
	return rows.Scan(analysisFields(result)...)
}

func analysisFields(result *domain.AnalysisResult) []interface{} {
	return []interface{}{
		&result.ID,
		&result.CustomerName,
		&result.CustomerID,
		&result.Bucket,
		&result.TPID,
		&result.SellerName,
		&result.Category,
		&result.Confidence,
		&result.RecommendedAction,
		&result.EngagementRationale,
		&result.PriorityScore,
		&result.MonthsAnalyzed,
		&result.AvgRevenue,
		&result.LatestRevenue,
		&result.TrendSlope,
		&result.LastMonthChange,
		&result.Last2MonthChange,
		&result.VolatilityCV,
		&result.MaxDrawdown,
		&result.CurrentVsMax,
		&result.CurrentVsAvg,
		&result.DollarsAtRisk,
		&result.DollarsOpportunity,
		&result.PreviousCategory,
		&result.PreviousPriorityScore,
		&result.StatusChangedAt,
		&result.AnalyzedAt,
	}
}
