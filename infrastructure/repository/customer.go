package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/revenue-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/revenue-insights-api/internal/domain"
)

const (
	customersTable = "customers"
)

// CustomerRepository dá acesso somente leitura ao diretório de clientes.
// O diretório é mantido por outro subsistema; aqui ele alimenta a
// resolução de nomes e o enriquecimento das análises.
type CustomerRepository interface {
	ListAll() ([]*domain.Customer, error)
	GetByID(id int) (*domain.Customer, error)
}

type customerRepository struct {
	q postgres.Queryer
}

func NewCustomerRepository(conn *postgres.Connection) CustomerRepository {
	return &customerRepository{
		q: conn,
	}
}

func (r *customerRepository) ListAll() ([]*domain.Customer, error) {
	query, args, err := squirrel.
		Select("id, name, nickname, tpid, seller_name, created_at, updated_at").
		From(customersTable).
		OrderBy("name ASC").
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

	customers := make([]*domain.Customer, 0)
	for rows.Next() {
		customer := &domain.Customer{}
		err := rows.Scan(
			&customer.ID,
			&customer.Name,
			&customer.Nickname,
			&customer.TPID,
			&customer.SellerName,
			&customer.CreatedAt,
			&customer.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear cliente: %w", err)
		}
		customers = append(customers, customer)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return customers, nil
}

func (r *customerRepository) GetByID(id int) (*domain.Customer, error) {
	query, args, err := squirrel.
		Select("id, name, nickname, tpid, seller_name, created_at, updated_at").
		From(customersTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	customer := &domain.Customer{}
	err = r.q.QueryRow(query, args...).Scan(
		&customer.ID,
		&customer.Name,
		&customer.Nickname,
		&customer.TPID,
		&customer.SellerName,
		&customer.CreatedAt,
		&customer.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear cliente: %w", err)
	}

	return customer, nil
}
