package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/revenue-insights-api/internal/domain"
)

func strPtr(s string) *string {
	return &s
}

func TestCleanForMatching(t *testing.T) {
	assert.Equal(t, "novopath", cleanForMatching("NOVOPATH"))
	assert.Equal(t, "azara healthcare llc", cleanForMatching("Azara Healthcare, LLC"))
	assert.Equal(t, "danubenet inc", cleanForMatching("DanubeNet, Inc."))
	assert.Equal(t, "foo bar", cleanForMatching("  Foo   Bar  "))
	assert.Equal(t, "", cleanForMatching(""))
}

func TestProgressiveWordPrefixMatch(t *testing.T) {
	tests := []struct {
		name     string
		a        string
		b        string
		expected bool
	}{
		{
			name:     "Match exato",
			a:        "novopath",
			b:        "novopath",
			expected: true,
		},
		{
			name:     "A é prefixo de B por palavras",
			a:        "ltc consulting",
			b:        "ltc consulting services",
			expected: true,
		},
		{
			name:     "B é prefixo de A por palavras",
			a:        "azara healthcare llc",
			b:        "azara healthcare",
			expected: true,
		},
		{
			name:     "Match após descartar palavra divergente",
			a:        "streamline health",
			b:        "streamline healthcare solutions",
			expected: true,
		},
		{
			name:     "Sufixo societário descartado",
			a:        "signature healthcare llc",
			b:        "signature healthcare",
			expected: true,
		},
		{
			name:     "Uma palavra com sufixo no candidato",
			a:        "danubenet inc",
			b:        "danubenet",
			expected: true,
		},
		{
			name:     "Nomes sem relação",
			a:        "microsoft",
			b:        "apple",
			expected: false,
		},
		{
			name:     "String vazia de um lado",
			a:        "",
			b:        "something",
			expected: false,
		},
		{
			name:     "String vazia do outro lado",
			a:        "something",
			b:        "",
			expected: false,
		},
		{
			name:     "Palavra única curta demais",
			a:        "ab",
			b:        "abc",
			expected: false,
		},
		{
			name:     "Conectivo ao final descartado",
			a:        "acme solutions the",
			b:        "acme solutions",
			expected: true,
		},
		{
			name:     "Palavra genérica não sustenta match sozinha",
			a:        "american express",
			b:        "american airlines",
			expected: false,
		},
		{
			name:     "Três caracteres não bastam",
			a:        "ace",
			b:        "acme",
			expected: false,
		},
		{
			name:     "Palavra única exata com 4+ caracteres",
			a:        "danubenet",
			b:        "danubenet inc",
			expected: true,
		},
		{
			name:     "Comparação é por palavra, não por caractere",
			a:        "north ohio medical",
			b:        "northern ohio medical specialists",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, progressiveWordPrefixMatch(tt.a, tt.b))
		})
	}
}

func TestAcronymOf(t *testing.T) {
	assert.Equal(t, "FSI", acronymOf("Facilities Survey Inc"))
	assert.Equal(t, "BA", acronymOf("Bank of America"))
	assert.Equal(t, "N", acronymOf("Novopath"))
	assert.Equal(t, "", acronymOf(""))
	assert.Equal(t, "DI", acronymOf("DanubeNet, Inc."))
	assert.Equal(t, "", acronymOf("a the of"))
	assert.Equal(t, "C", acronymOf("A B Company"))
}

func TestResolver_Resolve(t *testing.T) {
	customers := []*domain.Customer{
		{ID: 1, Name: "Azara Healthcare"},
		{ID: 2, Name: "Long Name Here", Nickname: strPtr("LNH")},
		{ID: 3, Name: "LTC Consulting Services"},
		{ID: 4, Name: "Streamline Healthcare Solutions"},
		{ID: 5, Name: "Acme Corp"},
		{ID: 6, Name: "NOVOPATH"},
		{ID: 7, Name: "Facilities Survey Inc"},
	}
	r := NewResolver(customers)

	tests := []struct {
		name       string
		input      string
		expectedID int
	}{
		{
			name:       "Nome exato",
			input:      "Azara Healthcare",
			expectedID: 1,
		},
		{
			name:       "Apelido exato",
			input:      "LNH",
			expectedID: 2,
		},
		{
			name:       "Sufixo LLC descartado",
			input:      "Azara Healthcare, LLC",
			expectedID: 1,
		},
		{
			name:       "Prefixo por palavras",
			input:      "LTC CONSULTING",
			expectedID: 3,
		},
		{
			name:       "Palavra divergente descartada",
			input:      "STREAMLINE HEALTH",
			expectedID: 4,
		},
		{
			name:       "Caixa não importa",
			input:      "Novopath",
			expectedID: 6,
		},
		{
			name:       "Sigla do extrato para nome completo",
			input:      "FSI",
			expectedID: 7,
		},
		{
			name:       "Sigla em minúsculas",
			input:      "fsi",
			expectedID: 7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			customer := r.Resolve(tt.input)
			if assert.NotNil(t, customer) {
				assert.Equal(t, tt.expectedID, customer.ID)
			}
		})
	}

	t.Run("Sem correspondência retorna nil", func(t *testing.T) {
		assert.Nil(t, r.Resolve("Totally Different Company XYZ"))
	})

	t.Run("Nome vazio retorna nil", func(t *testing.T) {
		assert.Nil(t, r.Resolve("   "))
	})
}

func TestResolver_AcronymReverse(t *testing.T) {
	// O diretório guarda só a sigla; o extrato traz o nome completo.
	r := NewResolver([]*domain.Customer{{ID: 10, Name: "FSI"}})

	customer := r.Resolve("Facilities Survey Inc")
	if assert.NotNil(t, customer) {
		assert.Equal(t, 10, customer.ID)
	}
}
