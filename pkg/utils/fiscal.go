package utils

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// FiscalMonthPattern identifica rótulos de mês fiscal no formato "FY26-Jan".
var FiscalMonthPattern = regexp.MustCompile(`^FY(\d{2})-([A-Za-z]{3})$`)

var monthAbbrs = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

var currencyCleaner = regexp.MustCompile(`[$,\s]`)

// ParseCurrency converte um valor monetário em texto para float64.
// Aceita "$1,234.56", "($1,234)" para negativos e valores já numéricos.
// Entrada não interpretável vale 0.0 - a importação nunca aborta por uma célula ruim.
func ParseCurrency(value string) float64 {
	cleaned := currencyCleaner.ReplaceAllString(value, "")
	if cleaned == "" {
		return 0.0
	}

	if strings.HasPrefix(cleaned, "(") && strings.HasSuffix(cleaned, ")") {
		cleaned = "-" + cleaned[1:len(cleaned)-1]
	}

	parsed, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0.0
	}

	return parsed
}

// FiscalMonthToDate converte um rótulo de mês fiscal para o primeiro dia do mês calendário.
// O ano fiscal vai de julho a junho: FY26-Jul = julho/2025, FY26-Jan = janeiro/2026.
// Retorna nil para rótulos inválidos.
func FiscalMonthToDate(fiscalMonth string) *time.Time {
	match := FiscalMonthPattern.FindStringSubmatch(strings.TrimSpace(fiscalMonth))
	if match == nil {
		return nil
	}

	fiscalYear, err := strconv.Atoi(match[1])
	if err != nil {
		return nil
	}

	monthNum := 0
	for i, abbr := range monthAbbrs {
		if strings.EqualFold(abbr, match[2]) {
			monthNum = i + 1
			break
		}
	}
	if monthNum == 0 {
		return nil
	}

	// Jul-Dez caem no ano calendário anterior ao ano fiscal
	calendarYear := 2000 + fiscalYear
	if monthNum >= 7 {
		calendarYear--
	}

	date := time.Date(calendarYear, time.Month(monthNum), 1, 0, 0, 0, 0, time.UTC)
	return &date
}

// DateToFiscalMonth é o inverso de FiscalMonthToDate para datas no primeiro dia do mês.
func DateToFiscalMonth(date time.Time) string {
	fiscalYear := date.Year() - 2000
	if date.Month() >= time.July {
		fiscalYear++
	}

	return "FY" + padTwo(fiscalYear) + "-" + monthAbbrs[int(date.Month())-1]
}

func padTwo(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
