package domain

import "strings"

// Country страна из списка выбора анкеты
type Country struct {
	Code string
	Name string
}

// Countries поддерживаемые страны (ISO 3166-1 alpha-2)
var Countries = []Country{
	{Code: "AE", Name: "United Arab Emirates"},
	{Code: "AR", Name: "Argentina"},
	{Code: "AU", Name: "Australia"},
	{Code: "BR", Name: "Brazil"},
	{Code: "CA", Name: "Canada"},
	{Code: "CH", Name: "Switzerland"},
	{Code: "CN", Name: "China"},
	{Code: "DE", Name: "Germany"},
	{Code: "ES", Name: "Spain"},
	{Code: "FR", Name: "France"},
	{Code: "GB", Name: "United Kingdom"},
	{Code: "IN", Name: "India"},
	{Code: "IT", Name: "Italy"},
	{Code: "JP", Name: "Japan"},
	{Code: "KR", Name: "South Korea"},
	{Code: "MX", Name: "Mexico"},
	{Code: "NL", Name: "Netherlands"},
	{Code: "SG", Name: "Singapore"},
	{Code: "US", Name: "United States"},
	{Code: "ZA", Name: "South Africa"},
}

var countryIndex = func() map[string]Country {
	idx := make(map[string]Country, len(Countries))
	for _, c := range Countries {
		idx[c.Code] = c
	}
	return idx
}()

// IsSupportedCountry возвращает true, если код есть в списке стран
func IsSupportedCountry(code string) bool {
	_, ok := countryIndex[strings.ToUpper(strings.TrimSpace(code))]
	return ok
}

// NormalizeCountry приводит код страны к верхнему регистру
func NormalizeCountry(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
