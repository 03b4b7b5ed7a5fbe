package analyzing

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	pgmocks "github.com/vfg2006/revenue-insights-api/infrastructure/database/postgres/mocks"
	"github.com/vfg2006/revenue-insights-api/infrastructure/repository/mocks"
	"github.com/vfg2006/revenue-insights-api/internal/domain"
)

type analysisMocks struct {
	conn        *pgmocks.MockConn
	bucketFacts *mocks.MockBucketFactRepository
	analyses    *mocks.MockAnalysisRepository
	configs     *mocks.MockAnalysisConfigRepository
	customers   *mocks.MockCustomerRepository
}

func newAnalysisService(t *testing.T) (*Service, analysisMocks) {
	ctrl := gomock.NewController(t)

	m := analysisMocks{
		conn:        pgmocks.NewMockConn(ctrl),
		bucketFacts: mocks.NewMockBucketFactRepository(ctrl),
		analyses:    mocks.NewMockAnalysisRepository(ctrl),
		configs:     mocks.NewMockAnalysisConfigRepository(ctrl),
		customers:   mocks.NewMockCustomerRepository(ctrl),
	}

	service := &Service{
		conn:        m.conn,
		bucketFacts: m.bucketFacts,
		analyses:    m.analyses,
		configs:     m.configs,
		customers:   m.customers,
	}

	// A transação dos testes executa o corpo diretamente.
	m.conn.EXPECT().
		RunInTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(*sql.Tx) error) error {
			return fn(nil)
		}).
		AnyTimes()

	m.analyses.EXPECT().WithTx(gomock.Any()).Return(m.analyses).AnyTimes()

	return service, m
}

func monthSummaries(dates ...time.Time) []*domain.MonthSummary {
	summaries := make([]*domain.MonthSummary, 0, len(dates))
	for _, d := range dates {
		summaries = append(summaries, &domain.MonthSummary{MonthDate: d})
	}
	return summaries
}

func fact(month time.Time, fiscalMonth string, revenue float64) *domain.BucketRevenueFact {
	return &domain.BucketRevenueFact{
		CustomerName: "Contoso",
		Bucket:       "Core DBs",
		FiscalMonth:  fiscalMonth,
		MonthDate:    month,
		Revenue:      revenue,
	}
}

var (
	jul = time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)
	aug = time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC)
	sep = time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)
	oct = time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC)
)

func expectDecliningContoso(m analysisMocks) {
	m.configs.EXPECT().GetByUser(7).Return(nil, nil)
	m.bucketFacts.EXPECT().DistinctMonths().Return(monthSummaries(jul, aug, sep, oct), nil)
	m.bucketFacts.EXPECT().ListCustomerBuckets().Return([]*domain.CustomerBucket{
		{CustomerName: "Contoso", Bucket: "Core DBs"},
	}, nil)
	m.customers.EXPECT().ListAll().Return(nil, nil)

	// O mês mais recente (outubro) fica fora da janela.
	m.bucketFacts.EXPECT().
		GetSeries("Contoso", "Core DBs", []time.Time{jul, aug, sep}).
		Return([]*domain.BucketRevenueFact{
			fact(jul, "FY26-Jul", 10000),
			fact(aug, "FY26-Aug", 9000),
			fact(sep, "FY26-Sep", 7000),
		}, nil)
}

func TestService_RunForAll_SerieEmQueda(t *testing.T) {
	service, m := newAnalysisService(t)
	expectDecliningContoso(m)

	var saved *domain.AnalysisResult
	m.analyses.EXPECT().
		SaveOrUpdate(gomock.Any()).
		DoAndReturn(func(result *domain.AnalysisResult) error {
			saved = result
			return nil
		})

	summary, err := service.RunForAll(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Analyzed)
	assert.Equal(t, 1, summary.Actionable)
	assert.Equal(t, 0, summary.Skipped)

	require.NotNil(t, saved)
	assert.Equal(t, "Contoso", saved.CustomerName)
	assert.Equal(t, "Core DBs", saved.Bucket)
	assert.Equal(t, 3, saved.MonthsAnalyzed)
	assert.Equal(t, domain.CategoryChurnRisk, saved.Category)
	assert.Equal(t, domain.ConfidenceLow, saved.Confidence)
	assert.Equal(t, domain.ActionCheckInHigh, saved.RecommendedAction)
	assert.Equal(t, 85, saved.PriorityScore)
	assert.Equal(t, 7000.0, saved.LatestRevenue)
	assert.Negative(t, saved.TrendSlope)
	assert.Positive(t, saved.DollarsAtRisk)
}

func TestService_RunForAll_HistoricoCurtoEhPulado(t *testing.T) {
	service, m := newAnalysisService(t)

	m.configs.EXPECT().GetByUser(7).Return(nil, nil)
	m.bucketFacts.EXPECT().DistinctMonths().Return(monthSummaries(jul, aug, sep), nil)
	m.bucketFacts.EXPECT().ListCustomerBuckets().Return([]*domain.CustomerBucket{
		{CustomerName: "Contoso", Bucket: "Core DBs"},
	}, nil)
	m.customers.EXPECT().ListAll().Return(nil, nil)

	m.bucketFacts.EXPECT().
		GetSeries("Contoso", "Core DBs", []time.Time{jul, aug}).
		Return([]*domain.BucketRevenueFact{
			fact(jul, "FY26-Jul", 10000),
			fact(aug, "FY26-Aug", 9000),
		}, nil)

	summary, err := service.RunForAll(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, 0, summary.Analyzed)
	assert.Equal(t, 1, summary.Skipped)
}

func TestService_RunForAll_PreencheVinculosPeloDiretorio(t *testing.T) {
	service, m := newAnalysisService(t)

	customerID := 42
	seller := "Maria Souza"
	tpid := "998877"

	m.configs.EXPECT().GetByUser(7).Return(nil, nil)
	m.bucketFacts.EXPECT().DistinctMonths().Return(monthSummaries(jul, aug, sep, oct), nil)
	m.bucketFacts.EXPECT().ListCustomerBuckets().Return([]*domain.CustomerBucket{
		{CustomerName: "Contoso", Bucket: "Core DBs"},
	}, nil)
	m.customers.EXPECT().ListAll().Return([]*domain.Customer{
		{ID: customerID, Name: "Contoso Ltda", SellerName: &seller, TPID: &tpid},
	}, nil)

	linked := fact(jul, "FY26-Jul", 10000)
	linked.CustomerID = &customerID

	m.bucketFacts.EXPECT().
		GetSeries("Contoso", "Core DBs", []time.Time{jul, aug, sep}).
		Return([]*domain.BucketRevenueFact{
			linked,
			fact(aug, "FY26-Aug", 9000),
			fact(sep, "FY26-Sep", 7000),
		}, nil)

	var saved *domain.AnalysisResult
	m.analyses.EXPECT().
		SaveOrUpdate(gomock.Any()).
		DoAndReturn(func(result *domain.AnalysisResult) error {
			saved = result
			return nil
		})

	_, err := service.RunForAll(context.Background(), 7)
	require.NoError(t, err)

	require.NotNil(t, saved)
	require.NotNil(t, saved.CustomerID)
	assert.Equal(t, customerID, *saved.CustomerID)
	require.NotNil(t, saved.SellerName)
	assert.Equal(t, seller, *saved.SellerName)
	require.NotNil(t, saved.TPID)
	assert.Equal(t, tpid, *saved.TPID)
}

func TestService_RunStreaming_EmiteProgressoEResumoFinal(t *testing.T) {
	service, m := newAnalysisService(t)
	expectDecliningContoso(m)

	var saved *domain.AnalysisResult
	m.analyses.EXPECT().
		SaveOrUpdate(gomock.Any()).
		DoAndReturn(func(result *domain.AnalysisResult) error {
			saved = result
			return nil
		})

	progressCh, errCh := service.RunStreaming(context.Background(), 7)

	items := make([]domain.AnalysisProgress, 0, 2)
	for p := range progressCh {
		items = append(items, p)
	}
	require.NoError(t, <-errCh)

	require.Len(t, items, 2)

	assert.Equal(t, 1, items[0].Current)
	assert.Equal(t, 1, items[0].Total)
	assert.Equal(t, "Contoso", items[0].CustomerName)
	assert.Equal(t, 1, items[0].CategoryCounts[domain.CategoryChurnRisk])
	assert.Nil(t, items[0].Summary)

	final := items[1]
	require.NotNil(t, final.Summary)
	assert.Equal(t, 1, final.Summary.Analyzed)
	assert.Equal(t, 1, final.Summary.Actionable)

	// As duas variantes produzem o mesmo veredito persistido.
	require.NotNil(t, saved)
	assert.Equal(t, domain.CategoryChurnRisk, saved.Category)
	assert.Equal(t, 85, saved.PriorityScore)
}

func TestService_ConfigForUser_DefaultsNaAusencia(t *testing.T) {
	service, m := newAnalysisService(t)

	m.configs.EXPECT().GetByUser(7).Return(nil, nil)

	cfg, err := service.ConfigForUser(7)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAnalysisConfig(), cfg)
}

func TestService_ConfigForUser_ConfiguracaoSalva(t *testing.T) {
	service, m := newAnalysisService(t)

	custom := domain.DefaultAnalysisConfig()
	custom.MinRevenueForOutreach = 10000

	m.configs.EXPECT().GetByUser(7).Return(custom, nil)

	cfg, err := service.ConfigForUser(7)
	require.NoError(t, err)
	assert.Equal(t, 10000.0, cfg.MinRevenueForOutreach)
}
