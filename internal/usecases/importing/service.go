package importing

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revenue-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/revenue-insights-api/infrastructure/repository"
	"github.com/vfg2006/revenue-insights-api/internal/domain"
	"github.com/vfg2006/revenue-insights-api/internal/usecases/matching"
	"github.com/vfg2006/revenue-insights-api/pkg/utils"
)

// Importer ingere extratos de receita e expõe as consultas sobre os fatos.
type Importer interface {
	Import(ctx context.Context, content []byte, filename string, userID int) (*domain.ImportBatch, error)
	ImportStream(ctx context.Context, content []byte, filename string, userID int) (<-chan domain.ImportProgress, <-chan error)
	ListMonths() ([]*domain.MonthSummary, error)
	ListRecentImports(limit int) ([]*domain.ImportBatch, error)
	CustomerHistory(customerName string, bucket *string) ([]*domain.BucketRevenueFact, error)
	ProductHistory(customerName string, bucket, product *string) ([]*domain.ProductRevenueFact, error)
	ProductsForBucket(customerName, bucket string) ([]*domain.ProductSummary, error)
}

type Service struct {
	conn                  postgres.Conn
	customerRepository    repository.CustomerRepository
	importBatchRepository repository.ImportBatchRepository
	bucketFactRepository  repository.BucketFactRepository
	productFactRepository repository.ProductFactRepository
}

func NewService(
	conn postgres.Conn,
	customerRepo repository.CustomerRepository,
	importBatchRepo repository.ImportBatchRepository,
	bucketFactRepo repository.BucketFactRepository,
	productFactRepo repository.ProductFactRepository,
) Importer {
	return &Service{
		conn:                  conn,
		customerRepository:    customerRepo,
		importBatchRepository: importBatchRepo,
		bucketFactRepository:  bucketFactRepo,
		productFactRepository: productFactRepo,
	}
}

// Import processa um extrato inteiro dentro de uma única transação:
// ou todo o arquivo entra, ou nada entra.
func (s *Service) Import(ctx context.Context, content []byte, filename string, userID int) (*domain.ImportBatch, error) {
	return s.runImport(ctx, content, filename, userID, nil)
}

// ImportStream processa o extrato emitindo progresso por linha. O item
// final carrega o lote consolidado; erros chegam pelo segundo canal após
// o fechamento do primeiro.
func (s *Service) ImportStream(ctx context.Context, content []byte, filename string, userID int) (<-chan domain.ImportProgress, <-chan error) {
	progressCh := make(chan domain.ImportProgress)
	errCh := make(chan error, 1)

	emit := func(progress domain.ImportProgress) {
		select {
		case progressCh <- progress:
		case <-ctx.Done():
		}
	}

	go func() {
		defer close(errCh)
		defer close(progressCh)

		batch, err := s.runImport(ctx, content, filename, userID, emit)
		if err != nil {
			errCh <- err
			return
		}

		emit(domain.ImportProgress{
			Current: batch.RecordCount,
			Total:   batch.RecordCount,
			Batch:   batch,
		})
	}()

	return progressCh, errCh
}

func (s *Service) runImport(
	ctx context.Context,
	content []byte,
	filename string,
	userID int,
	emit func(domain.ImportProgress),
) (*domain.ImportBatch, error) {
	extract, err := ParseExtract(content, filename)
	if err != nil {
		return nil, err
	}

	if len(extract.Rows) == 0 {
		return nil, ErrNoDataRows
	}

	customers, err := s.customerRepository.ListAll()
	if err != nil {
		return nil, err
	}
	resolver := matching.NewResolver(customers)

	// Meses já presentes antes desta importação, para apurar new_months_added.
	existingMonths, err := s.existingMonthSet()
	if err != nil {
		return nil, err
	}

	batchID, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	batch := &domain.ImportBatch{
		ID:            batchID,
		Filename:      filename,
		UserID:        userID,
		RecordCount:   len(extract.Rows),
		EarliestMonth: extract.EarliestMonth(),
		LatestMonth:   extract.LatestMonth(),
		ImportedAt:    time.Now().UTC(),
	}

	err = s.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		return s.importExtract(ctx, tx, extract, resolver, existingMonths, batch, emit)
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"import_id":        batch.ID,
		"filename":         batch.Filename,
		"records_created":  batch.RecordsCreated,
		"records_updated":  batch.RecordsUpdated,
		"new_months_added": batch.NewMonthsAdded,
	}).Info("Importação de receita concluída")

	return batch, nil
}

func (s *Service) importExtract(
	ctx context.Context,
	tx *sql.Tx,
	extract *Extract,
	resolver matching.Resolver,
	existingMonths map[string]struct{},
	batch *domain.ImportBatch,
	emit func(domain.ImportProgress),
) error {
	batchRepo := s.importBatchRepository.WithTx(tx)
	bucketRepo := s.bucketFactRepository.WithTx(tx)
	productRepo := s.productFactRepository.WithTx(tx)

	if err := batchRepo.Create(batch); err != nil {
		return err
	}

	// Cache de resolução por nome bruto, válido só para esta execução.
	resolved := make(map[string]*domain.Customer)
	newMonths := make(map[string]struct{})

	for i, row := range extract.Rows {
		if err := ctx.Err(); err != nil {
			return err
		}

		// Linhas de total do cliente são deriváveis dos buckets.
		if strings.EqualFold(row.Bucket, "Total") {
			continue
		}

		customer, ok := resolved[row.CustomerName]
		if !ok {
			customer = resolver.Resolve(row.CustomerName)
			resolved[row.CustomerName] = customer
		}

		for j, col := range extract.MonthColumns {
			revenue := row.Revenues[j]

			if isBucketTotal(row.Product) {
				err := s.upsertBucketFact(bucketRepo, row, col, revenue, customer, batch, existingMonths, newMonths)
				if err != nil {
					return err
				}
			} else {
				err := s.upsertProductFact(productRepo, row, col, revenue, customer, batch)
				if err != nil {
					return err
				}
			}
		}

		if emit != nil {
			emit(domain.ImportProgress{
				Current:      i + 1,
				Total:        len(extract.Rows),
				CustomerName: row.CustomerName,
			})
		}
	}

	batch.NewMonthsAdded = len(newMonths)

	return batchRepo.Finalize(batch)
}

func isBucketTotal(product string) bool {
	return product == "" || strings.EqualFold(product, "Total")
}

func (s *Service) upsertBucketFact(
	repo repository.BucketFactRepository,
	row ExtractRow,
	col MonthColumn,
	revenue float64,
	customer *domain.Customer,
	batch *domain.ImportBatch,
	existingMonths map[string]struct{},
	newMonths map[string]struct{},
) error {
	existing, err := repo.GetByNaturalKey(row.CustomerName, row.Bucket, col.MonthDate)
	if err != nil {
		return err
	}

	if existing != nil {
		changed := false

		if existing.Revenue != revenue {
			existing.Revenue = revenue
			existing.LastImportID = batch.ID
			existing.LastUpdatedAt = time.Now().UTC()
			batch.RecordsUpdated++
			changed = true
		}
		if customer != nil && existing.CustomerID == nil {
			existing.CustomerID = &customer.ID
			changed = true
		}
		if customer != nil && existing.SellerName == nil && customer.SellerName != nil {
			existing.SellerName = customer.SellerName
			changed = true
		}

		if changed {
			return repo.Update(existing)
		}
		return nil
	}

	fact := &domain.BucketRevenueFact{
		CustomerName:  row.CustomerName,
		Bucket:        row.Bucket,
		FiscalMonth:   col.FiscalMonth,
		MonthDate:     col.MonthDate,
		Revenue:       revenue,
		LastImportID:  batch.ID,
		LastUpdatedAt: time.Now().UTC(),
	}
	if customer != nil {
		fact.CustomerID = &customer.ID
		fact.SellerName = customer.SellerName
		fact.TPID = customer.TPID
	}

	if err := repo.Insert(fact); err != nil {
		return err
	}
	batch.RecordsCreated++

	key := col.MonthDate.Format(time.DateOnly)
	if _, exists := existingMonths[key]; !exists {
		newMonths[key] = struct{}{}
	}

	return nil
}

func (s *Service) upsertProductFact(
	repo repository.ProductFactRepository,
	row ExtractRow,
	col MonthColumn,
	revenue float64,
	customer *domain.Customer,
	batch *domain.ImportBatch,
) error {
	existing, err := repo.GetByNaturalKey(row.CustomerName, row.Bucket, row.Product, col.MonthDate)
	if err != nil {
		return err
	}

	if existing != nil {
		changed := false

		if existing.Revenue != revenue {
			existing.Revenue = revenue
			existing.LastImportID = batch.ID
			existing.LastUpdatedAt = time.Now().UTC()
			batch.RecordsUpdated++
			changed = true
		}
		if customer != nil && existing.CustomerID == nil {
			existing.CustomerID = &customer.ID
			changed = true
		}

		if changed {
			return repo.Update(existing)
		}
		return nil
	}

	fact := &domain.ProductRevenueFact{
		CustomerName:  row.CustomerName,
		Bucket:        row.Bucket,
		Product:       row.Product,
		FiscalMonth:   col.FiscalMonth,
		MonthDate:     col.MonthDate,
		Revenue:       revenue,
		LastImportID:  batch.ID,
		LastUpdatedAt: time.Now().UTC(),
	}
	if customer != nil {
		fact.CustomerID = &customer.ID
	}

	if err := repo.Insert(fact); err != nil {
		return err
	}
	batch.RecordsCreated++

	return nil
}

func (s *Service) existingMonthSet() (map[string]struct{}, error) {
	months, err := s.bucketFactRepository.DistinctMonths()
	if err != nil {
		return nil, err
	}

	set := make(map[string]struct{}, len(months))
	for _, month := range months {
		set[month.MonthDate.Format(time.DateOnly)] = struct{}{}
	}

	return set, nil
}

func (s *Service) ListMonths() ([]*domain.MonthSummary, error) {
	return s.bucketFactRepository.DistinctMonths()
}

func (s *Service) ListRecentImports(limit int) ([]*domain.ImportBatch, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.importBatchRepository.ListRecent(limit)
}

func (s *Service) CustomerHistory(customerName string, bucket *string) ([]*domain.BucketRevenueFact, error) {
	return s.bucketFactRepository.GetHistory(customerName, bucket)
}

func (s *Service) ProductHistory(customerName string, bucket, product *string) ([]*domain.ProductRevenueFact, error) {
	return s.productFactRepository.GetHistory(customerName, bucket, product)
}

// ProductsForBucket devolve os produtos de um cliente/bucket já com os
// prefixos de consolidação aplicados.
func (s *Service) ProductsForBucket(customerName, bucket string) ([]*domain.ProductSummary, error) {
	products, err := s.productFactRepository.ProductsForBucket(customerName, bucket)
	if err != nil {
		return nil, err
	}

	return ConsolidateProducts(products), nil
}
