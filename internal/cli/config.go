package cli

import (
	"fmt"

	"github.com/julianstephens/habitleaf/internal/i18n"
)

type ConfigCmd struct {
	Show     ConfigShowCmd     `cmd:"" help:"Show current settings." default:"1"`
	Language ConfigLanguageCmd `cmd:"" help:"Set the interface language (tr|en|de)."`
	Theme    ConfigThemeCmd    `cmd:"" help:"Set the theme palette."`
}

type ConfigShowCmd struct{}

func (c *ConfigShowCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}

	fmt.Printf("Language: %s\n", settings.Language)
	fmt.Printf("Theme:    %s\n", settings.ThemePalette)
	fmt.Printf("Premium:  %v\n", settings.Premium)
	return nil
}

type ConfigLanguageCmd struct {
	Language string `arg:"" help:"Language code (tr|en|de) or locale tag (tr-TR)."`
}

func (c *ConfigLanguageCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}

	lang := i18n.Normalize(c.Language)
	settings.Language = lang
	if err := ctx.Store.SaveSettings(settings); err != nil {
		return err
	}

	fmt.Printf("Language set to %s\n", lang)
	return nil
}

type ConfigThemeCmd struct {
	Palette string `arg:"" help:"Theme palette name."`
}

func (c *ConfigThemeCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}

	settings.ThemePalette = c.Palette
	if err := ctx.Store.SaveSettings(settings); err != nil {
		return err
	}

	fmt.Printf("Theme palette set to %s\n", c.Palette)
	return nil
}
