package pricing

import "strings"

// Region is a commercial pricing zone derived from the device locale.
type Region string

const (
	RegionTR Region = "TR"
	RegionEU Region = "EU"
	RegionUS Region = "US"
)

var euPrefixes = []string{"de", "fr", "es", "it", "pl", "nl", "pt", "sv", "no", "da"}

// DetectRegion maps a locale tag to a region by language prefix. An empty
// locale and any unrecognized prefix resolve to US.
func DetectRegion(locale string) Region {
	if locale == "" {
		return RegionUS
	}
	if strings.HasPrefix(locale, "tr") {
		return RegionTR
	}
	for _, p := range euPrefixes {
		if strings.HasPrefix(locale, p) {
			return RegionEU
		}
	}
	return RegionUS
}

// CurrencySymbol returns the display symbol for a region's currency.
func CurrencySymbol(region Region) string {
	switch region {
	case RegionTR:
		return "₺"
	case RegionEU:
		return "€"
	default:
		return "$"
	}
}
