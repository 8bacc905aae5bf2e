package pricing

import "testing"

func TestDetectRegion(t *testing.T) {
	cases := []struct {
		locale string
		want   Region
	}{
		{"", RegionUS},
		{"tr-TR", RegionTR},
		{"tr", RegionTR},
		{"de-DE", RegionEU},
		{"fr-FR", RegionEU},
		{"es", RegionEU},
		{"it-IT", RegionEU},
		{"pl-PL", RegionEU},
		{"nl", RegionEU},
		{"pt-BR", RegionEU},
		{"sv-SE", RegionEU},
		{"no", RegionEU},
		{"da-DK", RegionEU},
		{"ja-JP", RegionUS},
		{"en-US", RegionUS},
		{"zz", RegionUS},
	}

	for _, c := range cases {
		if got := DetectRegion(c.locale); got != c.want {
			t.Errorf("DetectRegion(%q) = %s, want %s", c.locale, got, c.want)
		}
	}
}

func TestCurrencySymbol(t *testing.T) {
	if got := CurrencySymbol(RegionTR); got != "₺" {
		t.Errorf("Expected ₺ for TR, got %s", got)
	}
	if got := CurrencySymbol(RegionEU); got != "€" {
		t.Errorf("Expected € for EU, got %s", got)
	}
	if got := CurrencySymbol(RegionUS); got != "$" {
		t.Errorf("Expected $ for US, got %s", got)
	}
}
