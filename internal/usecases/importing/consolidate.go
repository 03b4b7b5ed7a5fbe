package importing

import (
	"sort"
	"strings"

	"github.com/vfg2006/revenue-insights-api/internal/domain"
)

// Produtos cujo nome começa com estes prefixos são agrupados sob o próprio
// prefixo na visão de produtos. Os SKUs do Synapse variam por região e
// camada mas representam o mesmo produto para o vendedor.
var productConsolidationPrefixes = []string{
	"Azure Synapse Analytics",
}

// ConsolidateProductName devolve o nome de exibição de um produto,
// aplicando os prefixos de consolidação.
func ConsolidateProductName(product string) string {
	for _, prefix := range productConsolidationPrefixes {
		if strings.HasPrefix(product, prefix) {
			return prefix
		}
	}
	return product
}

// ConsolidateProducts agrupa resumos de produto pelo nome consolidado,
// somando receitas. A lista resultante volta ordenada por receita.
func ConsolidateProducts(products []*domain.ProductSummary) []*domain.ProductSummary {
	grouped := make(map[string]*domain.ProductSummary)
	order := make([]string, 0, len(products))

	for _, product := range products {
		name := ConsolidateProductName(product.Product)

		entry, ok := grouped[name]
		if !ok {
			entry = &domain.ProductSummary{Product: name}
			grouped[name] = entry
			order = append(order, name)
		}

		entry.TotalRevenue += product.TotalRevenue
		if product.MonthCount > entry.MonthCount {
			entry.MonthCount = product.MonthCount
		}
	}

	consolidated := make([]*domain.ProductSummary, 0, len(order))
	for _, name := range order {
		consolidated = append(consolidated, grouped[name])
	}

	sort.SliceStable(consolidated, func(i, j int) bool {
		return consolidated[i].TotalRevenue > consolidated[j].TotalRevenue
	})

	return consolidated
}
