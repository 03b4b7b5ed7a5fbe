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
	bucketFactsTable = "bucket_revenue_facts"

	bucketFactColumns = "id, customer_name, customer_id, bucket, seller_name, tpid, fiscal_month, month_date, revenue, last_import_id, last_updated_at"
)

// BucketFactRepository persiste os totais mensais por cliente/bucket.
// O upsert é feito em duas etapas (busca pela chave natural e insert ou
// update) porque a importação precisa distinguir "valor mudou" de "linha
// já existia igual" e preencher customer_id que estava nulo.
type BucketFactRepository interface {
	WithTx(tx *sql.Tx) BucketFactRepository
	GetByNaturalKey(customerName, bucket string, monthDate time.Time) (*domain.BucketRevenueFact, error)
	Insert(fact *domain.BucketRevenueFact) error
	Update(fact *domain.BucketRevenueFact) error
	MonthExists(monthDate time.Time) (bool, error)
	DistinctMonths() ([]*domain.MonthSummary, error)
	ListCustomerBuckets() ([]*domain.CustomerBucket, error)
	GetSeries(customerName, bucket string, monthDates []time.Time) ([]*domain.BucketRevenueFact, error)
	GetHistory(customerName string, bucket *string) ([]*domain.BucketRevenueFact, error)
}

type bucketFactRepository struct {
	q postgres.Queryer
}

func NewBucketFactRepository(conn *postgres.Connection) BucketFactRepository {
	return &bucketFactRepository{
		q: conn,
	}
}

func (r *bucketFactRepository) WithTx(tx *sql.Tx) BucketFactRepository {
	return &bucketFactRepository{q: tx}
}

func (r *bucketFactRepository) GetByNaturalKey(customerName, bucket string, monthDate time.Time) (*domain.BucketRevenueFact, error) {
	query, args, err := squirrel.
		Select(bucketFactColumns).
		From(bucketFactsTable).
		Where(squirrel.Eq{
			"customer_name": customerName,
			"bucket":        bucket,
			"month_date":    monthDate.Format(time.DateOnly),
		}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	fact, err := scanBucketFact(r.q.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear fato de receita: %w", err)
	}

	return fact, nil
}

func (r *bucketFactRepository) Insert(fact *domain.BucketRevenueFact) error {
	query, args, err := squirrel.
		Insert(bucketFactsTable).
		Columns("customer_name", "customer_id", "bucket", "seller_name", "tpid", "fiscal_month", "month_date", "revenue", "last_import_id", "last_updated_at").
		Values(
			fact.CustomerName,
			fact.CustomerID,
			fact.Bucket,
			fact.SellerName,
			fact.TPID,
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

func (r *bucketFactRepository) Update(fact *domain.BucketRevenueFact) error {
	query, args, err := squirrel.
		Update(bucketFactsTable).
		Set("customer_id", fact.CustomerID).
		Set("seller_name", fact.SellerName).
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

func (r *bucketFactRepository) MonthExists(monthDate time.Time) (bool, error) {
	query, args, err := squirrel.
		Select("1").
		From(bucketFactsTable).
		Where(squirrel.Eq{"month_date": monthDate.Format(time.DateOnly)}).
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var one int
	err = r.q.QueryRow(query, args...).Scan(&one)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("erro ao executar a query: %w", err)
	}

	return true, nil
}

func (r *bucketFactRepository) DistinctMonths() ([]*domain.MonthSummary, error) {
	query, args, err := squirrel.
		Select("month_date, fiscal_month, COUNT(id) AS record_count").
		From(bucketFactsTable).
		GroupBy("month_date", "fiscal_month").
		OrderBy("month_date ASC").
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

	months := make([]*domain.MonthSummary, 0)
	for rows.Next() {
		month := &domain.MonthSummary{}
		if err := rows.Scan(&month.MonthDate, &month.FiscalMonth, &month.RecordCount); err != nil {
			return nil, fmt.Errorf("erro ao escanear resumo de mês: %w", err)
		}
		months = append(months, month)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return months, nil
}

func (r *bucketFactRepository) ListCustomerBuckets() ([]*domain.CustomerBucket, error) {
	query, args, err := squirrel.
		Select("customer_name, bucket, MAX(tpid) AS tpid").
		From(bucketFactsTable).
		GroupBy("customer_name", "bucket").
		OrderBy("customer_name ASC", "bucket ASC").
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

	combos := make([]*domain.CustomerBucket, 0)
	for rows.Next() {
		combo := &domain.CustomerBucket{}
		if err := rows.Scan(&combo.CustomerName, &combo.Bucket, &combo.TPID); err != nil {
			return nil, fmt.Errorf("erro ao escanear combinação cliente/bucket: %w", err)
		}
		combos = append(combos, combo)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return combos, nil
}

// GetSeries retorna a série mensal ordenada de um cliente/bucket,
// restrita aos meses informados.
func (r *bucketFactRepository) GetSeries(customerName, bucket string, monthDates []time.Time) ([]*domain.BucketRevenueFact, error) {
	dates := make([]string, 0, len(monthDates))
	for _, d := range monthDates {
		dates = append(dates, d.Format(time.DateOnly))
	}

	query, args, err := squirrel.
		Select(bucketFactColumns).
		From(bucketFactsTable).
		Where(squirrel.Eq{
			"customer_name": customerName,
			"bucket":        bucket,
			"month_date":    dates,
		}).
		OrderBy("month_date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryFacts(query, args)
}

func (r *bucketFactRepository) GetHistory(customerName string, bucket *string) ([]*domain.BucketRevenueFact, error) {
	builder := squirrel.
		Select(bucketFactColumns).
		From(bucketFactsTable).
		Where(squirrel.Eq{"customer_name": customerName})

	if bucket != nil {
		builder = builder.Where(squirrel.Eq{"bucket": *bucket})
	}

	query, args, err := builder.
		OrderBy("bucket ASC", "month_date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryFacts(query, args)
}

func (r *bucketFactRepository) queryFacts(query string, args []interface{}) ([]*domain.BucketRevenueFact, error) {
	rows, err := r.q.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	facts := make([]*domain.BucketRevenueFact, 0)
	for rows.Next() {
		fact, err := scanBucketFactRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear fato de receita: %w", err)
		}
		facts = append(facts, fact)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return facts, nil
}

func scanBucketFact(row *sql.Row) (*domain.BucketRevenueFact, error) {
	fact := &domain.BucketRevenueFact{}
	err := row.Scan(
		&fact.ID,
		&fact.CustomerName,
		&fact.CustomerID,
		&fact.Bucket,
		&fact.SellerName,
		&fact.TPID,
		&fact.FiscalMonth,
		&fact.MonthDate,
		&fact.Revenue,
		&fact.LastImportID,
		&fact.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return fact, nil
}

func scanBucketFactRows(rows *sql.Rows) (*domain.BucketRevenueFact, error) {
	fact := &domain.BucketRevenueFact{}
	err := rows.Scan(
		&fact.ID,
		&fact.CustomerName,
		&fact.CustomerID,
		&fact.Bucket,
		&fact.SellerName,
		&fact.TPID,
		&fact.FiscalMonth,
		&fact.MonthDate,
		&fact.Revenue,
		&fact.LastImportID,
		&fact.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return fact, nil
}
