package pricing

import (
	"fmt"
	"strings"

	"github.com/julianstephens/habitleaf/internal/i18n"
)

// PlanID identifies one of the three purchasable tiers.
type PlanID string

const (
	PlanMonthly  PlanID = "monthly"
	PlanYearly   PlanID = "yearly"
	PlanLifetime PlanID = "lifetime"
)

// PlanIDs is the fixed plan order used everywhere a plan list is built.
var PlanIDs = []PlanID{PlanMonthly, PlanYearly, PlanLifetime}

// ProductSKUs maps plan ids to the store product identifiers configured in
// the billing console.
var ProductSKUs = map[PlanID]string{
	PlanMonthly:  "habitleaf_monthly_subscription",
	PlanYearly:   "habitleaf_yearly_subscription",
	PlanLifetime: "habitleaf_lifetime_purchase",
}

// SKUs returns the product identifiers in plan order.
func SKUs() []string {
	skus := make([]string, 0, len(PlanIDs))
	for _, id := range PlanIDs {
		skus = append(skus, ProductSKUs[id])
	}
	return skus
}

// PricingPlan is a purchasable tier with its region-resolved display price.
type PricingPlan struct {
	ID             PlanID  `json:"id"`
	Name           string  `json:"name"`
	Price          string  `json:"price"` // display price with currency symbol
	LocalizedPrice float64 `json:"localized_price"`
	Currency       string  `json:"currency"`
	Period         string  `json:"period"`
	Badge          string  `json:"badge,omitempty"`
	Recommended    bool    `json:"recommended"`
}

type pricePoint struct {
	price    float64
	currency string
}

// fallbackPrices is the static per-plan/per-region price table used when the
// store lookup is unavailable.
var fallbackPrices = map[PlanID]map[Region]pricePoint{
	PlanMonthly: {
		RegionTR: {59.99, "TRY"},
		RegionEU: {2.99, "EUR"},
		RegionUS: {2.99, "USD"},
	},
	PlanYearly: {
		RegionTR: {349.99, "TRY"},
		RegionEU: {19.99, "EUR"},
		RegionUS: {19.99, "USD"},
	},
	PlanLifetime: {
		RegionTR: {599.99, "TRY"},
		RegionEU: {29.99, "EUR"},
		RegionUS: {29.99, "USD"},
	},
}

// FormatPrice renders a numeric price with the region's currency symbol and
// decimal convention (comma for TR and EU, dot for US).
func FormatPrice(price float64, region Region) string {
	s := fmt.Sprintf("%.2f", price)
	if region == RegionTR || region == RegionEU {
		s = strings.ReplaceAll(s, ".", ",")
	}
	return CurrencySymbol(region) + s
}

// FallbackPlans returns the static three-plan list for a region with display
// strings localized for lang. The yearly plan is always the recommended one.
// Pure and deterministic.
func FallbackPlans(region Region, lang string) []PricingPlan {
	plans := make([]PricingPlan, 0, len(PlanIDs))
	for _, id := range PlanIDs {
		point := fallbackPrices[id][region]
		text := i18n.PlanText(lang, string(id))
		plans = append(plans, PricingPlan{
			ID:             id,
			Name:           text.Name,
			Price:          FormatPrice(point.price, region),
			LocalizedPrice: point.price,
			Currency:       point.currency,
			Period:         text.Period,
			Badge:          text.Badge,
			Recommended:    id == PlanYearly,
		})
	}
	return plans
}

// MergeStorePrices overlays store-resolved display prices onto a plan list.
// Only the Price field of a plan whose SKU matched is overwritten; unmatched
// plans keep their fallback price.
func MergeStorePrices(plans []PricingPlan, storePrices map[string]string) []PricingPlan {
	out := make([]PricingPlan, len(plans))
	copy(out, plans)
	for i := range out {
		if p, ok := storePrices[ProductSKUs[out[i].ID]]; ok && p != "" {
			out[i].Price = p
		}
	}
	return out
}
