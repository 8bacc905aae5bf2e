package i18n

import (
	"testing"
	"time"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		locale string
		want   string
	}{
		{"tr", "tr"},
		{"tr-TR", "tr"},
		{"tr_TR.UTF-8", "tr"},
		{"EN-us", "en"},
		{"en_US", "en"},
		{"de-DE", "de"},
		{"fr-FR", "tr"},
		{"ja", "tr"},
		{"", "tr"},
	}
	for _, tc := range cases {
		if got := Normalize(tc.locale); got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.locale, got, tc.want)
		}
	}
}

func TestSupported(t *testing.T) {
	for _, lang := range []string{"tr", "en", "de"} {
		if !Supported(lang) {
			t.Errorf("expected %q to be supported", lang)
		}
	}
	if Supported("fr") {
		t.Error("fr should not be supported")
	}
	if Supported("tr-TR") {
		t.Error("raw locale tags are not language codes")
	}
}

func TestMonthAbbrev(t *testing.T) {
	cases := []struct {
		lang  string
		month time.Month
		want  string
	}{
		{"tr", time.November, "Kas"},
		{"tr", time.January, "Oca"},
		{"tr", time.August, "Ağu"},
		{"en", time.November, "Nov"},
		{"de", time.March, "Mär"},
		{"de", time.December, "Dez"},
		// unknown languages use the default table
		{"fr", time.November, "Kas"},
		{"", time.May, "May"},
	}
	for _, tc := range cases {
		if got := MonthAbbrev(tc.lang, tc.month); got != tc.want {
			t.Errorf("MonthAbbrev(%q, %v) = %q, want %q", tc.lang, tc.month, got, tc.want)
		}
	}
}

func TestPlanText(t *testing.T) {
	tr := PlanText("tr", "yearly")
	if tr.Name != "Yıllık" || tr.Period != "yıl" || tr.Badge != "%33 İndirim" {
		t.Errorf("unexpected tr yearly strings: %+v", tr)
	}

	en := PlanText("en", "monthly")
	if en.Name != "Monthly" || en.Period != "month" {
		t.Errorf("unexpected en monthly strings: %+v", en)
	}
	if en.Badge != "" {
		t.Errorf("monthly plan should carry no badge, got %q", en.Badge)
	}

	de := PlanText("de", "lifetime")
	if de.Name != "Lebenslang" || de.Period != "einmalig" {
		t.Errorf("unexpected de lifetime strings: %+v", de)
	}

	// unknown language falls back to Turkish
	fallback := PlanText("xx", "lifetime")
	if fallback.Name != "Ömür Boyu" {
		t.Errorf("expected default-language fallback, got %+v", fallback)
	}

	// unknown plan id yields zero strings
	if zero := PlanText("tr", "weekly"); zero != (PlanStrings{}) {
		t.Errorf("unknown plan id should be empty, got %+v", zero)
	}
}
