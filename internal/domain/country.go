package domain

import (
	"strings"
)

// countryCodes maps the dataset's country display names to fixed 3-letter
// codes used as chart/export labels.
var countryCodes = map[string]string{
	"Portugal":       "PRT",
	"United Kingdom": "GBR",
	"France":         "FRA",
	"Spain":          "ESP",
	"Germany":        "DEU",
	"Italy":          "ITA",
	"Ireland":        "IRL",
	"Belgium":        "BEL",
	"Brazil":         "BRA",
	"Netherlands":    "NLD",
	"United States":  "USA",
	"Switzerland":    "CHE",
	"China":          "CHN",
	"Austria":        "AUT",
	"Sweden":         "SWE",
	"Poland":         "POL",
	"Israel":         "ISR",
	"Russia":         "RUS",
	"Norway":         "NOR",
	"Romania":        "ROU",
	"Finland":        "FIN",
	"Denmark":        "DNK",
	"Australia":      "AUS",
	"Argentina":      "ARG",
	"Morocco":        "MAR",
	"Japan":          "JPN",
	"India":          "IND",
	"Mexico":         "MEX",
	"Canada":         "CAN",
	"Greece":         "GRC",
	"Luxembourg":     "LUX",
	"Turkey":         "TUR",
	"South Africa":   "ZAF",
	"Czech Republic": "CZE",
	"Hungary":        "HUN",
}

// CountryCode returns the display code for a country name. Names missing from
// the lookup fall back to their first three characters, uppercased.
func CountryCode(name string) string {
	if code, ok := countryCodes[name]; ok {
		return code
	}

	runes := []rune(strings.ToUpper(strings.TrimSpace(name)))
	if len(runes) > 3 {
		runes = runes[:3]
	}

	return string(runes)
}
