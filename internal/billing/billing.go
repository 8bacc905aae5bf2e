// Package billing talks to the external store/billing API that owns the real
// product prices. The rest of the application only sees the PriceLookup
// interface; every failure here is recoverable and degrades to the static
// fallback price table upstream.
package billing

import (
	"context"
	"errors"
	"os"

	"github.com/julianstephens/habitleaf/internal/constants"
	"github.com/julianstephens/habitleaf/internal/keyring"
)

// ErrUnavailable is returned when no billing backend is configured.
var ErrUnavailable = errors.New("billing lookup unavailable")

// PriceLookup resolves product SKUs to formatted display prices.
type PriceLookup interface {
	// Prices returns a SKU -> display price mapping for the SKUs it could
	// resolve. Missing SKUs are simply absent from the map.
	Prices(ctx context.Context, skus []string) (map[string]string, error)
}

// ResolveAPIKey returns the Stripe API key from the environment, falling
// back to the OS keyring. Empty when neither is configured.
func ResolveAPIKey() string {
	if key := os.Getenv(constants.EnvStripeKey); key != "" {
		return key
	}
	key, err := keyring.GetAPIKey()
	if err != nil {
		return ""
	}
	return key
}
