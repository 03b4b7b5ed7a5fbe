package importing

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

type importMocks struct {
	conn        *pgmocks.MockConn
	customers   *mocks.MockCustomerRepository
	batches     *mocks.MockImportBatchRepository
	bucketFacts *mocks.MockBucketFactRepository
	prodFacts   *mocks.MockProductFactRepository
}

func newImportService(t *testing.T) (*Service, importMocks) {
	ctrl := gomock.NewController(t)

	m := importMocks{
		conn:        pgmocks.NewMockConn(ctrl),
		customers:   mocks.NewMockCustomerRepository(ctrl),
		batches:     mocks.NewMockImportBatchRepository(ctrl),
		bucketFacts: mocks.NewMockBucketFactRepository(ctrl),
		prodFacts:   mocks.NewMockProductFactRepository(ctrl),
	}

	service := &Service{
		conn:                  m.conn,
		customerRepository:    m.customers,
		importBatchRepository: m.batches,
		bucketFactRepository:  m.bucketFacts,
		productFactRepository: m.prodFacts,
	}

	// A transação dos testes executa o corpo diretamente.
	m.conn.EXPECT().
		RunInTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(*sql.Tx) error) error {
			return fn(nil)
		}).
		AnyTimes()

	m.batches.EXPECT().WithTx(gomock.Any()).Return(m.batches).AnyTimes()
	m.bucketFacts.EXPECT().WithTx(gomock.Any()).Return(m.bucketFacts).AnyTimes()
	m.prodFacts.EXPECT().WithTx(gomock.Any()).Return(m.prodFacts).AnyTimes()

	return service, m
}

const singleRowExtract = `FiscalMonth,,,FY26-Jul,FY26-Aug,FY26-Sep,Total
TPAccountName,ServiceCompGrouping,ServiceLevel4,$ ACR,$ ACR,$ ACR,$ ACR
Contoso,Core DBs,Total,"$10,000","$11,000","$12,000","$33,000"
`

func TestService_Import_ExtratoNovo(t *testing.T) {
	service, m := newImportService(t)

	m.customers.EXPECT().ListAll().Return(nil, nil)
	m.bucketFacts.EXPECT().DistinctMonths().Return(nil, nil)
	m.batches.EXPECT().Create(gomock.Any()).Return(nil)

	m.bucketFacts.EXPECT().
		GetByNaturalKey("Contoso", "Core DBs", gomock.Any()).
		Return(nil, nil).
		Times(3)

	inserted := make([]*domain.BucketRevenueFact, 0, 3)
	m.bucketFacts.EXPECT().
		Insert(gomock.Any()).
		DoAndReturn(func(fact *domain.BucketRevenueFact) error {
			inserted = append(inserted, fact)
			return nil
		}).
		Times(3)

	m.batches.EXPECT().Finalize(gomock.Any()).Return(nil)

	batch, err := service.Import(context.Background(), []byte(singleRowExtract), "acr_details.csv", 1)
	require.NoError(t, err)

	assert.Equal(t, 1, batch.RecordCount)
	assert.Equal(t, 3, batch.RecordsCreated)
	assert.Equal(t, 0, batch.RecordsUpdated)
	assert.Equal(t, 3, batch.NewMonthsAdded)
	assert.Equal(t, time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC), batch.EarliestMonth)
	assert.Equal(t, time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC), batch.LatestMonth)
	assert.NotEmpty(t, batch.ID)

	require.Len(t, inserted, 3)
	assert.Equal(t, 10000.0, inserted[0].Revenue)
	assert.Equal(t, "FY26-Jul", inserted[0].FiscalMonth)
	assert.Nil(t, inserted[0].CustomerID)
}

func TestService_Import_Idempotente(t *testing.T) {
	service, m := newImportService(t)

	m.customers.EXPECT().ListAll().Return(nil, nil)

	months := []*domain.MonthSummary{
		{MonthDate: time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)},
		{MonthDate: time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC)},
		{MonthDate: time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)},
	}
	m.bucketFacts.EXPECT().DistinctMonths().Return(months, nil)
	m.batches.EXPECT().Create(gomock.Any()).Return(nil)

	revenues := map[string]float64{"FY26-Jul": 10000, "FY26-Aug": 11000, "FY26-Sep": 12000}
	m.bucketFacts.EXPECT().
		GetByNaturalKey("Contoso", "Core DBs", gomock.Any()).
		DoAndReturn(func(name, bucket string, monthDate time.Time) (*domain.BucketRevenueFact, error) {
			return &domain.BucketRevenueFact{
				ID:           1,
				CustomerName: name,
				Bucket:       bucket,
				MonthDate:    monthDate,
				Revenue:      revenues[fiscalMonthFor(monthDate)],
			}, nil
		}).
		Times(3)

	// Nada mudou: nenhum Insert e nenhum Update.
	m.batches.EXPECT().Finalize(gomock.Any()).Return(nil)

	batch, err := service.Import(context.Background(), []byte(singleRowExtract), "acr_details.csv", 1)
	require.NoError(t, err)

	assert.Equal(t, 0, batch.RecordsCreated)
	assert.Equal(t, 0, batch.RecordsUpdated)
	assert.Equal(t, 0, batch.NewMonthsAdded)
}

func fiscalMonthFor(monthDate time.Time) string {
	switch monthDate.Month() {
	case time.July:
		return "FY26-Jul"
	case time.August:
		return "FY26-Aug"
	default:
		return "FY26-Sep"
	}
}

func TestService_Import_AtualizaValorAlterado(t *testing.T) {
	service, m := newImportService(t)

	m.customers.EXPECT().ListAll().Return(nil, nil)
	m.bucketFacts.EXPECT().DistinctMonths().Return([]*domain.MonthSummary{
		{MonthDate: time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)},
		{MonthDate: time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC)},
		{MonthDate: time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)},
	}, nil)
	m.batches.EXPECT().Create(gomock.Any()).Return(nil)

	// Julho veio com valor antigo; agosto e setembro iguais ao extrato.
	old := map[string]float64{"FY26-Jul": 9000, "FY26-Aug": 11000, "FY26-Sep": 12000}
	m.bucketFacts.EXPECT().
		GetByNaturalKey("Contoso", "Core DBs", gomock.Any()).
		DoAndReturn(func(name, bucket string, monthDate time.Time) (*domain.BucketRevenueFact, error) {
			return &domain.BucketRevenueFact{
				ID:           1,
				CustomerName: name,
				Bucket:       bucket,
				MonthDate:    monthDate,
				Revenue:      old[fiscalMonthFor(monthDate)],
			}, nil
		}).
		Times(3)

	m.bucketFacts.EXPECT().
		Update(gomock.Any()).
		DoAndReturn(func(fact *domain.BucketRevenueFact) error {
			assert.Equal(t, 10000.0, fact.Revenue)
			return nil
		})

	m.batches.EXPECT().Finalize(gomock.Any()).Return(nil)

	batch, err := service.Import(context.Background(), []byte(singleRowExtract), "acr_details.csv", 1)
	require.NoError(t, err)

	assert.Equal(t, 0, batch.RecordsCreated)
	assert.Equal(t, 1, batch.RecordsUpdated)
}

func TestService_Import_IgnoraTotaisDoCliente(t *testing.T) {
	service, m := newImportService(t)

	content := `FiscalMonth,,,FY26-Jul
TPAccountName,ServiceCompGrouping,ServiceLevel4,$ ACR
Contoso,Total,,"$10,000"
`

	m.customers.EXPECT().ListAll().Return(nil, nil)
	m.bucketFacts.EXPECT().DistinctMonths().Return(nil, nil)
	m.batches.EXPECT().Create(gomock.Any()).Return(nil)

	// Nenhum acesso aos fatos: a linha é um total por cliente.
	m.batches.EXPECT().Finalize(gomock.Any()).Return(nil)

	batch, err := service.Import(context.Background(), []byte(content), "acr_details.csv", 1)
	require.NoError(t, err)
	assert.Equal(t, 0, batch.RecordsCreated)
}

func TestService_Import_ResolveClienteEPreencheVinculo(t *testing.T) {
	service, m := newImportService(t)

	content := `FiscalMonth,,,FY26-Jul
TPAccountName,ServiceCompGrouping,ServiceLevel4,$ ACR
"Azara Healthcare, LLC",Core DBs,Total,"$5,000"
`

	seller := "Maria Silva"
	tpid := "12345"
	m.customers.EXPECT().ListAll().Return([]*domain.Customer{
		{ID: 42, Name: "Azara Healthcare", SellerName: &seller, TPID: &tpid},
	}, nil)
	m.bucketFacts.EXPECT().DistinctMonths().Return(nil, nil)
	m.batches.EXPECT().Create(gomock.Any()).Return(nil)

	m.bucketFacts.EXPECT().
		GetByNaturalKey("Azara Healthcare, LLC", "Core DBs", gomock.Any()).
		Return(nil, nil)

	m.bucketFacts.EXPECT().
		Insert(gomock.Any()).
		DoAndReturn(func(fact *domain.BucketRevenueFact) error {
			if assert.NotNil(t, fact.CustomerID) {
				assert.Equal(t, 42, *fact.CustomerID)
			}
			if assert.NotNil(t, fact.SellerName) {
				assert.Equal(t, "Maria Silva", *fact.SellerName)
			}
			if assert.NotNil(t, fact.TPID) {
				assert.Equal(t, "12345", *fact.TPID)
			}
			return nil
		})

	m.batches.EXPECT().Finalize(gomock.Any()).Return(nil)

	_, err := service.Import(context.Background(), []byte(content), "acr_details.csv", 1)
	require.NoError(t, err)
}

func TestService_Import_LinhaDeProduto(t *testing.T) {
	service, m := newImportService(t)

	content := `FiscalMonth,,,FY26-Jul
TPAccountName,ServiceCompGrouping,ServiceLevel4,$ ACR
Contoso,Analytics,Azure Synapse Analytics,"$2,500"
`

	m.customers.EXPECT().ListAll().Return(nil, nil)
	m.bucketFacts.EXPECT().DistinctMonths().Return(nil, nil)
	m.batches.EXPECT().Create(gomock.Any()).Return(nil)

	m.prodFacts.EXPECT().
		GetByNaturalKey("Contoso", "Analytics", "Azure Synapse Analytics", gomock.Any()).
		Return(nil, nil)

	m.prodFacts.EXPECT().
		Insert(gomock.Any()).
		DoAndReturn(func(fact *domain.ProductRevenueFact) error {
			assert.Equal(t, 2500.0, fact.Revenue)
			assert.Equal(t, "Azure Synapse Analytics", fact.Product)
			return nil
		})

	m.batches.EXPECT().Finalize(gomock.Any()).Return(nil)

	batch, err := service.Import(context.Background(), []byte(content), "acr_details.csv", 1)
	require.NoError(t, err)
	assert.Equal(t, 1, batch.RecordsCreated)
}

func TestService_Import_ExtratoVazio(t *testing.T) {
	service, _ := newImportService(t)

	content := "FiscalMonth,,,FY26-Jul\nTPAccountName,B,P,$ ACR\n"

	_, err := service.Import(context.Background(), []byte(content), "vazio.csv", 1)
	assert.ErrorIs(t, err, ErrNoDataRows)
}

func TestService_ImportStream_EmiteProgressoEFinal(t *testing.T) {
	service, m := newImportService(t)

	m.customers.EXPECT().ListAll().Return(nil, nil)
	m.bucketFacts.EXPECT().DistinctMonths().Return(nil, nil)
	m.batches.EXPECT().Create(gomock.Any()).Return(nil)
	m.bucketFacts.EXPECT().GetByNaturalKey(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).Times(3)
	m.bucketFacts.EXPECT().Insert(gomock.Any()).Return(nil).Times(3)
	m.batches.EXPECT().Finalize(gomock.Any()).Return(nil)

	progressCh, errCh := service.ImportStream(context.Background(), []byte(singleRowExtract), "acr_details.csv", 1)

	items := make([]domain.ImportProgress, 0)
	for progress := range progressCh {
		items = append(items, progress)
	}
	require.NoError(t, <-errCh)

	require.NotEmpty(t, items)
	final := items[len(items)-1]
	require.NotNil(t, final.Batch)
	assert.Equal(t, 3, final.Batch.RecordsCreated)

	for _, item := range items[:len(items)-1] {
		assert.Nil(t, item.Batch)
		assert.Equal(t, "Contoso", item.CustomerName)
	}
}

func TestService_ProductsForBucket_Consolida(t *testing.T) {
	service, m := newImportService(t)

	m.prodFacts.EXPECT().
		ProductsForBucket("Contoso", "Analytics").
		Return([]*domain.ProductSummary{
			{Product: "Azure Synapse Analytics Dedicated SQL Pool", TotalRevenue: 1000, MonthCount: 6},
			{Product: "Azure Synapse Analytics Serverless", TotalRevenue: 400, MonthCount: 3},
			{Product: "Power BI Embedded", TotalRevenue: 900, MonthCount: 6},
		}, nil)

	products, err := service.ProductsForBucket("Contoso", "Analytics")
	require.NoError(t, err)

	require.Len(t, products, 2)
	assert.Equal(t, "Azure Synapse Analytics", products[0].Product)
	assert.Equal(t, 1400.0, products[0].TotalRevenue)
	assert.Equal(t, "Power BI Embedded", products[1].Product)
}
