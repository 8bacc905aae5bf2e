package billing

import (
	"context"
	"testing"

	"github.com/stripe/stripe-go/v83"

	"github.com/julianstephens/habitleaf/internal/constants"
)

func TestFormatStripePrice(t *testing.T) {
	cases := []struct {
		currency stripe.Currency
		amount   int64
		want     string
	}{
		{stripe.CurrencyUSD, 299, "USD 2.99"},
		{stripe.CurrencyEUR, 2999, "EUR 29.99"},
		{stripe.CurrencyTRY, 59999, "TRY 599.99"},
		{stripe.CurrencyUSD, 0, "USD 0.00"},
	}
	for _, tc := range cases {
		p := &stripe.Price{Currency: tc.currency, UnitAmount: tc.amount}
		if got := FormatStripePrice(p); got != tc.want {
			t.Errorf("FormatStripePrice(%s, %d) = %q, want %q", tc.currency, tc.amount, got, tc.want)
		}
	}
}

func TestPricesWithoutKey(t *testing.T) {
	c := &StripeClient{}
	if _, err := c.Prices(context.Background(), []string{"habitleaf_monthly_subscription"}); err != ErrUnavailable {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestResolveAPIKeyPrefersEnv(t *testing.T) {
	t.Setenv(constants.EnvStripeKey, "sk_test_123")
	if got := ResolveAPIKey(); got != "sk_test_123" {
		t.Fatalf("expected env key, got %q", got)
	}
}
