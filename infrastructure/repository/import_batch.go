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
	importBatchesTable = "import_batches"
)

type ImportBatchRepository interface {
	WithTx(tx *sql.Tx) ImportBatchRepository
	Create(batch *domain.ImportBatch) error
	Finalize(batch *domain.ImportBatch) error
	ListRecent(limit int) ([]*domain.ImportBatch, error)
}

type importBatchRepository struct {
	q postgres.Queryer
}

func NewImportBatchRepository(conn *postgres.Connection) ImportBatchRepository {
	return &importBatchRepository{
		q: conn,
	}
}

func (r *importBatchRepository) WithTx(tx *sql.Tx) ImportBatchRepository {
	return &importBatchRepository{q: tx}
}

func (r *importBatchRepository) Create(batch *domain.ImportBatch) error {
	query, args, err := squirrel.
		Insert(importBatchesTable).
		Columns("id", "filename", "user_id", "record_count", "earliest_month", "latest_month", "imported_at").
		Values(
			batch.ID,
			batch.Filename,
			batch.UserID,
			batch.RecordCount,
			batch.EarliestMonth,
			batch.LatestMonth,
			batch.ImportedAt,
		).
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

// Finalize grava os contadores apurados ao fim da importação.
func (r *importBatchRepository) Finalize(batch *domain.ImportBatch) error {
	query, args, err := squirrel.
		Update(importBatchesTable).
		Set("record_count", batch.RecordCount).
		Set("records_created", batch.RecordsCreated).
		Set("records_updated", batch.RecordsUpdated).
		Set("new_months_added", batch.NewMonthsAdded).
		Where(squirrel.Eq{"id": batch.ID}).
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

func (r *importBatchRepository) ListRecent(limit int) ([]*domain.ImportBatch, error) {
	query, args, err := squirrel.
		Select("id, filename, user_id, record_count, records_created, records_updated, new_months_added, earliest_month, latest_month, imported_at").
		From(importBatchesTable).
		OrderBy("imported_at DESC").
		Limit(uint64(limit)).
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

	batches := make([]*domain.ImportBatch, 0)
	for rows.Next() {
		batch := &domain.ImportBatch{}
		err := rows.Scan(
			&batch.ID,
			&batch.Filename,
			&batch.UserID,
			&batch.RecordCount,
			&batch.RecordsCreated,
			&batch.RecordsUpdated,
			&batch.NewMonthsAdded,
			&batch.EarliestMonth,
			&batch.LatestMonth,
			&batch.ImportedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear lote de importação: %w", err)
		}
		batches = append(batches, batch)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return batches, nil
}
