package billing

import (
	"context"
	"fmt"
	"strings"

	"github.com/stripe/stripe-go/v83"
	"github.com/stripe/stripe-go/v83/price"
)

// StripeClient implements PriceLookup against the Stripe Prices API. Each
// product SKU is configured in Stripe as the price's lookup key.
type StripeClient struct {
	apiKey string
}

// NewStripeClient creates a Stripe-backed price lookup.
func NewStripeClient(apiKey string) *StripeClient {
	stripe.Key = apiKey
	return &StripeClient{
		apiKey: apiKey,
	}
}

// Prices lists active Stripe prices by lookup key and formats each into a
// display string. Returns ErrUnavailable when no API key is configured.
func (c *StripeClient) Prices(ctx context.Context, skus []string) (map[string]string, error) {
	if c.apiKey == "" {
		return nil, ErrUnavailable
	}

	params := &stripe.PriceListParams{
		LookupKeys: stripe.StringSlice(skus),
	}
	params.Context = ctx

	out := make(map[string]string)
	iter := price.List(params)
	for iter.Next() {
		p := iter.Price()
		if p.LookupKey == "" {
			continue
		}
		out[p.LookupKey] = FormatStripePrice(p)
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to list prices: %w", err)
	}

	return out, nil
}

// FormatStripePrice renders a Stripe price (unit amount in the currency's
// minor unit) as a display string, e.g. "USD 2.99".
func FormatStripePrice(p *stripe.Price) string {
	return fmt.Sprintf("%s %.2f", strings.ToUpper(string(p.Currency)), float64(p.UnitAmount)/100)
}
