package domain

import "time"

// ImportBatch registra uma execução de importação de extrato de receita.
// Os contadores são finalizados ao término da mesma execução que criou o lote.
type ImportBatch struct {
	ID             string    `json:"id"`
	Filename       string    `json:"filename"`
	UserID         int       `json:"user_id"`
	RecordCount    int       `json:"record_count"`
	RecordsCreated int       `json:"records_created"`
	RecordsUpdated int       `json:"records_updated"`
	NewMonthsAdded int       `json:"new_months_added"`
	EarliestMonth  time.Time `json:"earliest_month"`
	LatestMonth    time.Time `json:"latest_month"`
	ImportedAt     time.Time `json:"imported_at"`
}

// BucketRevenueFact é o total mensal de um cliente em um bucket de receita.
// Chave natural: (customer_name, bucket, month_date). O nome do cliente é
// mantido como veio no extrato; CustomerID é preenchido quando a resolução
// de nomes encontra uma entrada no diretório.
type BucketRevenueFact struct {
	ID            int       `json:"id"`
	CustomerName  string    `json:"customer_name"`
	CustomerID    *int      `json:"customer_id"`
	Bucket        string    `json:"bucket"`
	SellerName    *string   `json:"seller_name"`
	TPID          *string   `json:"tpid"`
	FiscalMonth   string    `json:"fiscal_month"`
	MonthDate     time.Time `json:"month_date"`
	Revenue       float64   `json:"revenue"`
	LastImportID  string    `json:"last_import_id"`
	LastUpdatedAt time.Time `json:"last_updated_at"`
}

// ProductRevenueFact detalha a receita de um produto dentro de um bucket.
// Chave natural: (customer_name, bucket, product, month_date). O total do
// bucket é o agregado autoritativo; produtos são um detalhamento.
type ProductRevenueFact struct {
	ID            int       `json:"id"`
	CustomerName  string    `json:"customer_name"`
	CustomerID    *int      `json:"customer_id"`
	Bucket        string    `json:"bucket"`
	Product       string    `json:"product"`
	FiscalMonth   string    `json:"fiscal_month"`
	MonthDate     time.Time `json:"month_date"`
	Revenue       float64   `json:"revenue"`
	LastImportID  string    `json:"last_import_id"`
	LastUpdatedAt time.Time `json:"last_updated_at"`
}

// RevenueRecord é uma linha normalizada do extrato (formato longo).
// Product vazio indica uma linha de total de bucket.
type RevenueRecord struct {
	Bucket       string
	CustomerName string
	Product      string
	FiscalMonth  string
	MonthDate    time.Time
	Revenue      float64
}

// IsBucketTotal indica se o registro representa o total do bucket
// em vez do detalhamento de um produto.
func (r RevenueRecord) IsBucketTotal() bool {
	return r.Product == ""
}

// MonthSummary resume um mês distinto presente na base.
type MonthSummary struct {
	MonthDate   time.Time `json:"month_date"`
	FiscalMonth string    `json:"fiscal_month"`
	RecordCount int       `json:"record_count"`
}

// ProductSummary agrega a receita de um produto para um cliente/bucket.
type ProductSummary struct {
	Product      string  `json:"product"`
	TotalRevenue float64 `json:"total_revenue"`
	MonthCount   int     `json:"month_count"`
}

// ImportProgress é um item do fluxo de progresso da importação incremental.
// Batch é preenchido apenas no item final, após o commit.
type ImportProgress struct {
	Current      int          `json:"current"`
	Total        int          `json:"total"`
	CustomerName string       `json:"customer_name"`
	Batch        *ImportBatch `json:"batch,omitempty"`
}
