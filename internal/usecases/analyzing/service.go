package analyzing

import (
	"context"
	"database/sql"
	"maps"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revenue-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/revenue-insights-api/infrastructure/repository"
	"github.com/vfg2006/revenue-insights-api/internal/domain"
)

const minSeriesPoints = 3

// Analyzer orquestra a análise de receita sobre todos os clientes/buckets
// presentes na base e expõe as consultas sobre os vereditos persistidos.
type Analyzer interface {
	RunForAll(ctx context.Context, userID int) (*domain.AnalysisSummary, error)
	RunStreaming(ctx context.Context, userID int) (<-chan domain.AnalysisProgress, <-chan error)
	ListActionable(filters domain.AnalysisFilters) ([]*domain.AnalysisResult, error)
	SellerAlerts(sellerName string) ([]*domain.AnalysisResult, error)
	ConfigForUser(userID int) (*domain.AnalysisConfig, error)
	SaveConfig(userID int, cfg *domain.AnalysisConfig) error
}

type Service struct {
	conn        postgres.Conn
	bucketFacts repository.BucketFactRepository
	analyses    repository.AnalysisRepository
	configs     repository.AnalysisConfigRepository
	customers   repository.CustomerRepository
}

func NewService(
	conn postgres.Conn,
	bucketFacts repository.BucketFactRepository,
	analyses repository.AnalysisRepository,
	configs repository.AnalysisConfigRepository,
	customers repository.CustomerRepository,
) *Service {
	return &Service{
		conn:        conn,
		bucketFacts: bucketFacts,
		analyses:    analyses,
		configs:     configs,
		customers:   customers,
	}
}

// runContext reúne tudo que uma passada de análise precisa carregar uma vez:
// limiares do usuário, meses a considerar, combinações e o diretório de
// clientes indexado por id.
type runContext struct {
	cfg           *domain.AnalysisConfig
	months        []time.Time
	combos        []*domain.CustomerBucket
	customersByID map[int]*domain.Customer
}

// RunForAll analisa todas as combinações cliente/bucket em uma única
// transação: ou a passada inteira persiste, ou nada persiste.
func (s *Service) RunForAll(ctx context.Context, userID int) (*domain.AnalysisSummary, error) {
	rc, err := s.prepare(userID)
	if err != nil {
		return nil, err
	}

	summary := &domain.AnalysisSummary{}

	err = s.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		analyses := s.analyses.WithTx(tx)

		for _, combo := range rc.combos {
			if err := ctx.Err(); err != nil {
				return err
			}

			result, err := s.analyzeCombo(rc, combo)
			if err != nil {
				return err
			}
			if result == nil {
				summary.Skipped++
				continue
			}

			if err := analyses.SaveOrUpdate(result); err != nil {
				return errors.Wrapf(err, "erro ao salvar a análise de %s/%s", combo.CustomerName, combo.Bucket)
			}

			summary.Analyzed++
			if result.Actionable() {
				summary.Actionable++
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"user_id":    userID,
		"analyzed":   summary.Analyzed,
		"actionable": summary.Actionable,
		"skipped":    summary.Skipped,
	}).Info("Análise de receita concluída")

	return summary, nil
}

// RunStreaming executa a mesma análise emitindo progresso a cada combinação.
// Cada veredito é persistido individualmente: se o consumidor cancelar no
// meio, o que já foi processado permanece na base.
func (s *Service) RunStreaming(ctx context.Context, userID int) (<-chan domain.AnalysisProgress, <-chan error) {
	progressCh := make(chan domain.AnalysisProgress)
	errCh := make(chan error, 1)

	go func() {
		defer close(progressCh)
		defer close(errCh)

		rc, err := s.prepare(userID)
		if err != nil {
			errCh <- err
			return
		}

		summary := &domain.AnalysisSummary{}
		counts := make(map[domain.Category]int)

		for i, combo := range rc.combos {
			result, err := s.analyzeCombo(rc, combo)
			if err != nil {
				errCh <- err
				return
			}

			if result == nil {
				summary.Skipped++
			} else {
				if err := s.analyses.SaveOrUpdate(result); err != nil {
					errCh <- errors.Wrapf(err, "erro ao salvar a análise de %s/%s", combo.CustomerName, combo.Bucket)
					return
				}

				summary.Analyzed++
				if result.Actionable() {
					summary.Actionable++
				}
				counts[result.Category]++
			}

			progress := domain.AnalysisProgress{
				Current:        i + 1,
				Total:          len(rc.combos),
				CustomerName:   combo.CustomerName,
				Bucket:         combo.Bucket,
				CategoryCounts: maps.Clone(counts),
			}

			select {
			case progressCh <- progress:
			case <-ctx.Done():
				errCh <- ctx.Err()
				return
			}
		}

		final := domain.AnalysisProgress{
			Current:        len(rc.combos),
			Total:          len(rc.combos),
			CategoryCounts: maps.Clone(counts),
			Summary:        summary,
		}

		select {
		case progressCh <- final:
		case <-ctx.Done():
			errCh <- ctx.Err()
		}
	}()

	return progressCh, errCh
}

func (s *Service) ListActionable(filters domain.AnalysisFilters) ([]*domain.AnalysisResult, error) {
	return s.analyses.ListActionable(filters)
}

func (s *Service) SellerAlerts(sellerName string) ([]*domain.AnalysisResult, error) {
	return s.analyses.ListBySeller(sellerName)
}

// ConfigForUser retorna a configuração do usuário, ou os defaults quando o
// usuário nunca salvou uma.
func (s *Service) ConfigForUser(userID int) (*domain.AnalysisConfig, error) {
	cfg, err := s.configs.GetByUser(userID)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return domain.DefaultAnalysisConfig(), nil
	}
	return cfg, nil
}

func (s *Service) SaveConfig(userID int, cfg *domain.AnalysisConfig) error {
	return s.configs.Save(userID, cfg)
}

func (s *Service) prepare(userID int) (*runContext, error) {
	cfg, err := s.ConfigForUser(userID)
	if err != nil {
		return nil, err
	}

	months, err := s.bucketFacts.DistinctMonths()
	if err != nil {
		return nil, err
	}

	// O mês mais recente costuma estar parcial no extrato e distorceria a
	// ponta da série; com mais de um mês na base, ele fica de fora.
	monthDates := make([]time.Time, 0, len(months))
	for _, m := range months {
		monthDates = append(monthDates, m.MonthDate)
	}
	if len(monthDates) > 1 {
		monthDates = monthDates[:len(monthDates)-1]
	}

	combos, err := s.bucketFacts.ListCustomerBuckets()
	if err != nil {
		return nil, err
	}

	customers, err := s.customers.ListAll()
	if err != nil {
		return nil, err
	}

	customersByID := make(map[int]*domain.Customer, len(customers))
	for _, c := range customers {
		customersByID[c.ID] = c
	}

	return &runContext{
		cfg:           cfg,
		months:        monthDates,
		combos:        combos,
		customersByID: customersByID,
	}, nil
}

// analyzeCombo computa e categoriza a série de uma combinação. Retorna nil
// quando a série não tem pontos suficientes ou é irrelevante - caso normal,
// contado como skipped pelo chamador.
func (s *Service) analyzeCombo(rc *runContext, combo *domain.CustomerBucket) (*domain.AnalysisResult, error) {
	facts, err := s.bucketFacts.GetSeries(combo.CustomerName, combo.Bucket, rc.months)
	if err != nil {
		return nil, err
	}
	if len(facts) < minSeriesPoints {
		return nil, nil
	}

	revenues := make([]float64, len(facts))
	monthNames := make([]string, len(facts))
	for i, f := range facts {
		revenues[i] = f.Revenue
		monthNames[i] = f.FiscalMonth
	}

	series := Series{
		CustomerName: combo.CustomerName,
		Bucket:       combo.Bucket,
		Revenues:     revenues,
		MonthNames:   monthNames,
		TPID:         combo.TPID,
	}
	s.enrich(&series, facts, rc.customersByID)

	signals := ComputeSignals(series)
	if signals == nil {
		return nil, nil
	}

	Categorize(signals, rc.cfg)
	DetermineAction(signals, rc.cfg)

	return toResult(signals), nil
}

// enrich preenche os vínculos da série a partir dos fatos (customer_id e
// vendedor gravados na importação) e completa pelo diretório de clientes o
// que os fatos não trazem.
func (s *Service) enrich(series *Series, facts []*domain.BucketRevenueFact, customersByID map[int]*domain.Customer) {
	for _, f := range facts {
		if series.CustomerID == nil && f.CustomerID != nil {
			series.CustomerID = f.CustomerID
		}
		if series.SellerName == nil && f.SellerName != nil {
			series.SellerName = f.SellerName
		}
		if series.TPID == nil && f.TPID != nil {
			series.TPID = f.TPID
		}
	}

	if series.CustomerID == nil {
		return
	}

	customer, ok := customersByID[*series.CustomerID]
	if !ok {
		return
	}

	if series.SellerName == nil && customer.SellerName != nil {
		series.SellerName = customer.SellerName
	}
	if series.TPID == nil && customer.TPID != nil {
		series.TPID = customer.TPID
	}
}

func toResult(signals *domain.CustomerSignals) *domain.AnalysisResult {
	return &domain.AnalysisResult{
		CustomerName: signals.CustomerName,
		CustomerID:   signals.CustomerID,
		Bucket:       signals.Bucket,
		TPID:         signals.TPID,
		SellerName:   signals.SellerName,

		Category:            signals.Category,
		Confidence:          signals.Confidence,
		RecommendedAction:   signals.RecommendedAction,
		EngagementRationale: signals.EngagementRationale,
		PriorityScore:       signals.PriorityScore,

		MonthsAnalyzed:   len(signals.Revenues),
		AvgRevenue:       signals.AvgRevenue,
		LatestRevenue:    signals.LatestRevenue,
		TrendSlope:       signals.TrendSlope,
		LastMonthChange:  signals.LastMonthChange,
		Last2MonthChange: signals.Last2MonthChange,
		VolatilityCV:     signals.VolatilityCV,
		MaxDrawdown:      signals.MaxDrawdown,
		CurrentVsMax:     signals.CurrentVsMax,
		CurrentVsAvg:     signals.CurrentVsAvg,

		DollarsAtRisk:      signals.DollarsAtRisk,
		DollarsOpportunity: signals.DollarsOpportunity,

		AnalyzedAt: time.Now().UTC(),
	}
}
