package pricing

import "testing"

func TestFallbackPlans_TurkishRegion(t *testing.T) {
	plans := FallbackPlans(RegionTR, "tr")

	if len(plans) != 3 {
		t.Fatalf("Expected 3 plans, got %d", len(plans))
	}

	wantIDs := []PlanID{PlanMonthly, PlanYearly, PlanLifetime}
	for i, id := range wantIDs {
		if plans[i].ID != id {
			t.Errorf("Expected plan %d to be %s, got %s", i, id, plans[i].ID)
		}
		if plans[i].Currency != "TRY" {
			t.Errorf("Expected TRY currency for %s, got %s", id, plans[i].Currency)
		}
	}

	if plans[0].Price != "₺59,99" {
		t.Errorf("Expected monthly price ₺59,99, got %s", plans[0].Price)
	}
	if plans[1].Price != "₺349,99" {
		t.Errorf("Expected yearly price ₺349,99, got %s", plans[1].Price)
	}
	if plans[2].Price != "₺599,99" {
		t.Errorf("Expected lifetime price ₺599,99, got %s", plans[2].Price)
	}

	if !plans[1].Recommended {
		t.Error("Expected yearly plan to be recommended")
	}
	if plans[0].Recommended || plans[2].Recommended {
		t.Error("Expected only the yearly plan to be recommended")
	}
	if plans[1].Badge == "" {
		t.Error("Expected yearly plan to carry a discount badge")
	}
	if plans[0].Name != "Aylık" {
		t.Errorf("Expected Turkish monthly name Aylık, got %s", plans[0].Name)
	}
}

func TestFallbackPlans_RegionPricePoints(t *testing.T) {
	eu := FallbackPlans(RegionEU, "en")
	if eu[0].Price != "€2,99" || eu[0].Currency != "EUR" {
		t.Errorf("Expected EU monthly €2,99 EUR, got %s %s", eu[0].Price, eu[0].Currency)
	}

	us := FallbackPlans(RegionUS, "en")
	if us[0].Price != "$2.99" || us[0].Currency != "USD" {
		t.Errorf("Expected US monthly $2.99 USD, got %s %s", us[0].Price, us[0].Currency)
	}
	if us[0].Name != "Monthly" {
		t.Errorf("Expected English monthly name, got %s", us[0].Name)
	}
}

func TestMergeStorePrices(t *testing.T) {
	plans := FallbackPlans(RegionUS, "en")

	merged := MergeStorePrices(plans, map[string]string{
		ProductSKUs[PlanMonthly]: "USD 3.49",
	})

	if merged[0].Price != "USD 3.49" {
		t.Errorf("Expected matched SKU to take the store price, got %s", merged[0].Price)
	}
	if merged[0].LocalizedPrice != plans[0].LocalizedPrice || merged[0].Currency != plans[0].Currency {
		t.Error("Expected merge to overwrite only the display price")
	}
	if merged[1].Price != plans[1].Price || merged[2].Price != plans[2].Price {
		t.Error("Expected unmatched plans to keep fallback prices")
	}

	// The input list must not be mutated.
	if plans[0].Price != "$2.99" {
		t.Errorf("Expected input plans untouched, got %s", plans[0].Price)
	}
}

func TestSKUs_OrderMatchesPlanOrder(t *testing.T) {
	skus := SKUs()
	if len(skus) != 3 {
		t.Fatalf("Expected 3 SKUs, got %d", len(skus))
	}
	for i, id := range PlanIDs {
		if skus[i] != ProductSKUs[id] {
			t.Errorf("Expected SKU %d to be %s, got %s", i, ProductSKUs[id], skus[i])
		}
	}
}
