package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/julianstephens/habitleaf/internal/keyring"
	"github.com/julianstephens/habitleaf/internal/pricing"
)

type PremiumCmd struct {
	Plans      PremiumPlansCmd      `cmd:"" help:"Show pricing plans for your region." default:"1"`
	ClearCache PremiumClearCacheCmd `cmd:"" name:"clear-cache" help:"Drop the cached price list."`
	SetKey     PremiumSetKeyCmd     `cmd:"" name:"set-key" help:"Store the billing API key in the OS keyring."`
	ClearKey   PremiumClearKeyCmd   `cmd:"" name:"clear-key" help:"Remove the billing API key from the OS keyring."`
	Activate   PremiumActivateCmd   `cmd:"" help:"Mark this install as premium."`
	Deactivate PremiumDeactivateCmd `cmd:"" help:"Remove the premium flag."`
}

type PremiumPlansCmd struct {
	Locale  string `short:"l" help:"Locale override for region detection (e.g. tr-TR). Defaults to $LANG."`
	Refresh bool   `short:"r" help:"Drop the cache and fetch fresh prices."`
}

func (c *PremiumPlansCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}

	locale := c.Locale
	if locale == "" {
		locale = os.Getenv("LANG")
	}
	region := pricing.DetectRegion(locale)

	resolver := ctx.resolver(settings)
	if c.Refresh {
		if err := resolver.ClearCache(); err != nil {
			return err
		}
	}

	plans := resolver.FetchPrices(context.Background(), region)

	fmt.Printf("Plans for region %s:\n\n", region)
	for _, p := range plans {
		marker := " "
		if p.Recommended {
			marker = "★"
		}
		fmt.Printf("  %s %-12s %10s / %s", marker, p.Name, p.Price, p.Period)
		if p.Badge != "" {
			fmt.Printf("  [%s]", p.Badge)
		}
		fmt.Println()
	}

	if settings.Premium {
		fmt.Println("\nPremium is active on this install.")
	}
	return nil
}

type PremiumClearCacheCmd struct{}

func (c *PremiumClearCacheCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}

	if err := ctx.resolver(settings).ClearCache(); err != nil {
		return err
	}
	fmt.Println("Cached prices cleared")
	return nil
}

type PremiumSetKeyCmd struct {
	Key string `arg:"" help:"Billing API key."`
}

func (c *PremiumSetKeyCmd) Run(ctx *Context) error {
	if !keyring.IsAvailable() {
		return keyring.ErrKeyringUnavailable
	}
	if err := keyring.SetAPIKey(c.Key); err != nil {
		return err
	}
	fmt.Println("Billing API key stored in OS keyring")
	return nil
}

type PremiumClearKeyCmd struct{}

func (c *PremiumClearKeyCmd) Run(ctx *Context) error {
	if err := keyring.DeleteAPIKey(); err != nil {
		if err == keyring.ErrNotFound {
			fmt.Println("No billing API key stored")
			return nil
		}
		return err
	}
	fmt.Println("Billing API key removed")
	return nil
}

type PremiumActivateCmd struct{}

func (c *PremiumActivateCmd) Run(ctx *Context) error {
	return setPremium(ctx, true)
}

type PremiumDeactivateCmd struct{}

func (c *PremiumDeactivateCmd) Run(ctx *Context) error {
	return setPremium(ctx, false)
}

func setPremium(ctx *Context, on bool) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}
	settings.Premium = on
	if err := ctx.Store.SaveSettings(settings); err != nil {
		return err
	}
	if on {
		fmt.Println("Premium activated")
	} else {
		fmt.Println("Premium deactivated")
	}
	return nil
}
