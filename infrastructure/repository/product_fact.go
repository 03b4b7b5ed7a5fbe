package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/revenue-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/revenue-insights-api/internal/domain"
)

const (
	productFactsTable = "product_revenue_facts"

	productFactColumns = "id, customer_name, customer_id, bucket, product, fiscal_month, month_date, revenue, last_import_id, last_updated_at"
)

// ProductFactRepository persiste o detalhamento por produto dentro de um
// bucket. O agregado autoritativo continua sendo o total do bucket.
type ProductFactRepository interface {
	WithTx(tx *sql.Tx) ProductFactRepository
	GetByNaturalKey(customerName, bucket, product string, monthDate time.Time) (*domain.ProductRevenueFact, error)
	Insert(fact *domain.ProductRevenueFact) error
	Update(fact *domain.ProductRevenueFact) error
	GetHistory(customerName string, bucket, product *string) ([]*domain.ProductRevenueFact, error)
	ProductsForBucket(customerName, bucket string) ([]*domain.ProductSummary, error)
}

type productFactRepository struct {
	q postgres.Queryer
}

func NewProductFactRepository(conn *postgres.Connection) ProductFactRepository {
	return &productFactRepository{
		q: conn,
	}
}

func (r *productFactRepository) WithTx(tx *sql.Tx) ProductFactRepository {
	return &productFactRepository{q: tx}
}

func (r *productFactRepository) GetByNaturalKey(customerName, bucket, product string, monthDate time.Time) (*domain.ProductRevenueFact, error) {
	query, args, err := squirrel.
		Select(productFactColumns).
		From(productFactsTable).
		Where(squirrel.Eq{
			"customer_name": customerName,
			"bucket":        bucket,
			"product":       product,
			"month_date":    monthDate.Format(time.DateOnly),
		}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	fact := &domain.ProductRevenueFact{}
	err = r.q.QueryRow(query, args...).Scan(
		&fact.ID,
		&fact.CustomerName,
		&fact.CustomerID,
		&fact.Bucket,
		&fact.Product,
		&fact.FiscalMonth,
		&fact.MonthDate,
		&fact.Revenue,
		&fact.LastImportID,
		&fact.LastUpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear fato de produto: %w", err)
	}

	return fact, nil
}

func (r *productFactRepository) Insert(fact *domain.ProductRevenueFact) error {
	query, args, err := squirrel.
		Insert(productFactsTable).
		Columns("customer_name", "customer_id", "bucket", "product", "fiscal_month", "month_date", "revenue", "last_import_id", "last_updated_at").
		Values(
			fact.CustomerName,
			fact.CustomerID,
			fact.Bucket,
			fact.Product,
			fact.FiscalMonth,
			fact.MonthDate.Format(time.DateOnly),
			fact.Revenue,
			fact.LastImportID,
			fact.LastUpdatedAt,
		).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.q.QueryRow(query, args...).Scan(&fact.ID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *productFactRepository) Update(fact *domain.ProductRevenueFact) error {
	query, args, err := squirrel.
		Update(productFactsTable).
		Set("customer_id", fact.CustomerID).
		Set("revenue", fact.Revenue).
		Set("last_import_id", fact.LastImportID).
		Set("last_updated_at", fact.LastUpdatedAt).
		Where(squirrel.Eq{"id": fact.ID}).
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

func (r *productFactRepository) GetHistory(customerName string, bucket, product *string) ([]*domain.ProductRevenueFact, error) {
	builder := squirrel.
		Select(productFactColumns).
		From(productFactsTable).
		Where(squirrel.Eq{"customer_name": customerName})

	if bucket != nil {
		builder = builder.Where(squirrel.Eq{"bucket": *bucket})
	}
	if product != nil {
		builder = builder.Where(squirrel.Eq{"product": *product})
	}

	query, args, err := builder.
		OrderBy("bucket ASC", "product ASC", "month_date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.q.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	facts := make([]*domain.ProductRevenueFact, 0)
	for rows.Next() {
		fact := &domain.ProductRevenueFact{}
		err := rows.Scan(
			&fact.ID,
			&fact.CustomerName,
			&fact.CustomerID,
			&fact.Bucket,
			&fact.Product,
			&fact.FiscalMonth,
			&fact.MonthDate,
			&fact.Revenue,
			&fact.LastImportID,
			&fact.LastUpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear fato de produto: %w", err)
		}
		facts = append(facts, fact)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return facts, nil
}

func (r *productFactRepository) ProductsForBucket(customerName, bucket string) ([]*domain.ProductSummary, error) {
	query, args, err := squirrel.
		Select("product, SUM(revenue) AS total_revenue, COUNT(DISTINCT month_date) AS month_count").
		From(productFactsTable).
		Where(squirrel.Eq{
			"customer_name": customerName,
			"bucket":        bucket,
		}).
		GroupBy("product").
		OrderBy("total_revenue DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.q.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	products := make([]*domain.ProductSummary, 0)
	for rows.Next() {
		product := &domain.ProductSummary{}
		if err := rows.Scan(&product.Product, &product.TotalRevenue, &product.MonthCount); err != nil {
			return nil, fmt.Errorf("erro ao escanear resumo de produto: %w", err)
		}
		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return products, nil
}
