package postgres

import (
	"database/sql"
)

// Queryer é satisfeito por *sql.DB e *sql.Tx, permitindo que os
// repositórios executem dentro ou fora de uma transação.
type Queryer interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}
