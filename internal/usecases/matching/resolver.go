package matching

import (
	"regexp"
	"strings"

	"github.com/samber/lo"
	"github.com/vfg2006/revenue-insights-api/internal/domain"
)

// Resolver liga nomes de cliente vindos do extrato às entradas do diretório.
// A resolução é em camadas: nome/apelido exato, prefixo progressivo por
// palavra e, por último, sigla nas duas direções. Nenhuma camada casa,
// retorna nil - o fato fica sem customer_id até uma importação futura.
type Resolver interface {
	Resolve(name string) *domain.Customer
}

var (
	punctCleaner = regexp.MustCompile(`[,.]`)
	spaceCleaner = regexp.MustCompile(`\s+`)

	// Palavras ignoradas na formação de siglas.
	acronymStopWords = map[string]struct{}{
		"a": {}, "an": {}, "the": {}, "and": {}, "or": {}, "of": {},
	}

	// Palavras genéricas demais para sustentar um match de uma palavra só.
	singleWordSkip = map[string]struct{}{
		"american":      {},
		"national":      {},
		"global":        {},
		"united":        {},
		"general":       {},
		"international": {},
		"the":           {},
	}
)

type cleanedEntry struct {
	cleaned  string
	customer *domain.Customer
}

type resolver struct {
	exact    map[string]*domain.Customer
	cleaned  []cleanedEntry
	acronyms map[string]*domain.Customer
}

// NewResolver constrói os índices de resolução a partir do diretório.
// Os índices são imutáveis; para refletir clientes novos basta recriar.
func NewResolver(customers []*domain.Customer) Resolver {
	r := &resolver{
		exact:    make(map[string]*domain.Customer, len(customers)*2),
		cleaned:  make([]cleanedEntry, 0, len(customers)),
		acronyms: make(map[string]*domain.Customer, len(customers)),
	}

	for _, customer := range customers {
		r.exact[strings.ToLower(strings.TrimSpace(customer.Name))] = customer

		if customer.Nickname != nil && *customer.Nickname != "" {
			r.exact[strings.ToLower(strings.TrimSpace(*customer.Nickname))] = customer
		}

		if cleaned := cleanForMatching(customer.Name); cleaned != "" {
			r.cleaned = append(r.cleaned, cleanedEntry{cleaned: cleaned, customer: customer})
		}

		if acronym := acronymOf(customer.Name); len(acronym) >= 2 {
			if _, exists := r.acronyms[acronym]; !exists {
				r.acronyms[acronym] = customer
			}
		}
	}

	return r
}

func (r *resolver) Resolve(name string) *domain.Customer {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil
	}

	if customer, ok := r.exact[strings.ToLower(trimmed)]; ok {
		return customer
	}

	cleaned := cleanForMatching(trimmed)
	for _, entry := range r.cleaned {
		if progressiveWordPrefixMatch(cleaned, entry.cleaned) {
			return entry.customer
		}
	}

	// Extrato traz a sigla, diretório traz o nome completo.
	if len(trimmed) >= 2 {
		if customer, ok := r.acronyms[strings.ToUpper(trimmed)]; ok {
			return customer
		}
	}

	// Extrato traz o nome completo, diretório guarda só a sigla.
	if acronym := acronymOf(trimmed); len(acronym) >= 2 {
		if customer, ok := r.exact[strings.ToLower(acronym)]; ok {
			return customer
		}
	}

	return nil
}

// cleanForMatching normaliza um nome para comparação: minúsculas, sem
// vírgulas e pontos, espaços colapsados.
func cleanForMatching(name string) string {
	cleaned := strings.ToLower(name)
	cleaned = punctCleaner.ReplaceAllString(cleaned, "")
	cleaned = spaceCleaner.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned)
}

// progressiveWordPrefixMatch compara dois nomes já limpos palavra a palavra.
// Duas ou mais palavras iniciais em comum bastam; uma palavra só vale
// quando tem pelo menos 4 caracteres e não é genérica demais.
func progressiveWordPrefixMatch(a, b string) bool {
	if a == "" || b == "" {
		return false
	}

	wordsA := strings.Fields(a)
	wordsB := strings.Fields(b)

	common := 0
	for common < len(wordsA) && common < len(wordsB) && wordsA[common] == wordsB[common] {
		common++
	}

	if common >= 2 {
		return true
	}
	if common == 1 {
		word := wordsA[0]
		if len(word) < 4 {
			return false
		}
		if _, skip := singleWordSkip[word]; skip {
			return false
		}
		return true
	}

	return false
}

// acronymOf monta a sigla de um nome: primeira letra de cada palavra,
// ignorando conectivos e palavras de um caractere.
func acronymOf(name string) string {
	words := strings.Fields(cleanForMatching(name))

	letters := lo.FilterMap(words, func(word string, _ int) (string, bool) {
		if len(word) < 2 {
			return "", false
		}
		if _, stop := acronymStopWords[word]; stop {
			return "", false
		}
		return strings.ToUpper(word[:1]), true
	})

	return strings.Join(letters, "")
}
