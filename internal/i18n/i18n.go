// Package i18n holds the small set of localized strings the application
// needs outside its UI layer: month abbreviations for day keys and the
// display metadata of pricing plans. Supported languages are Turkish (the
// default), English, and German.
package i18n

import (
	"strings"
	"time"
)

const Default = "tr"

var supported = map[string]bool{
	"tr": true,
	"en": true,
	"de": true,
}

// Normalize reduces a locale tag to a supported language code. "tr-TR" and
// "tr_TR.UTF-8" both normalize to "tr"; unsupported or empty locales fall
// back to the default language.
func Normalize(locale string) string {
	code := strings.ToLower(locale)
	for _, sep := range []string{"-", "_", "."} {
		if idx := strings.Index(code, sep); idx >= 0 {
			code = code[:idx]
		}
	}
	if supported[code] {
		return code
	}
	return Default
}

// Supported reports whether lang is a supported language code.
func Supported(lang string) bool {
	return supported[lang]
}

var monthAbbrevs = map[string][12]string{
	"tr": {"Oca", "Şub", "Mar", "Nis", "May", "Haz", "Tem", "Ağu", "Eyl", "Eki", "Kas", "Ara"},
	"en": {"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
	"de": {"Jan", "Feb", "Mär", "Apr", "Mai", "Jun", "Jul", "Aug", "Sep", "Okt", "Nov", "Dez"},
}

// MonthAbbrev returns the abbreviated month name for lang. Unknown languages
// use the default language's table.
func MonthAbbrev(lang string, m time.Month) string {
	table, ok := monthAbbrevs[lang]
	if !ok {
		table = monthAbbrevs[Default]
	}
	return table[int(m)-1]
}

// PlanStrings is the localized display metadata for a pricing plan.
type PlanStrings struct {
	Name   string
	Period string
	Badge  string // empty when the plan carries no badge
}

var planStrings = map[string]map[string]PlanStrings{
	"tr": {
		"monthly":  {Name: "Aylık", Period: "ay"},
		"yearly":   {Name: "Yıllık", Period: "yıl", Badge: "%33 İndirim"},
		"lifetime": {Name: "Ömür Boyu", Period: "tek seferlik", Badge: "En İyi Değer"},
	},
	"en": {
		"monthly":  {Name: "Monthly", Period: "month"},
		"yearly":   {Name: "Yearly", Period: "year", Badge: "33% Off"},
		"lifetime": {Name: "Lifetime", Period: "one-time", Badge: "Best Value"},
	},
	"de": {
		"monthly":  {Name: "Monatlich", Period: "Monat"},
		"yearly":   {Name: "Jährlich", Period: "Jahr", Badge: "33% Rabatt"},
		"lifetime": {Name: "Lebenslang", Period: "einmalig", Badge: "Bestes Angebot"},
	},
}

// PlanText returns the localized name, period, and badge for a plan id.
func PlanText(lang, planID string) PlanStrings {
	table, ok := planStrings[lang]
	if !ok {
		table = planStrings[Default]
	}
	return table[planID]
}
