// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "time"

// Customer é uma entrada do diretório canônico de clientes.
// O núcleo analítico trata este diretório como somente leitura: a
// resolução de nomes liga registros de receita a estas entradas.
type Customer struct {
	ID         int       `json:"id"`
	Name       string    `json:"name"`
	Nickname   *string   `json:"nickname"`
	TPID       *string   `json:"tpid"`
	SellerName *string   `json:"seller_name"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
