package tui

import (
	"github.com/charmbracelet/huh"

	"github.com/quantmind-br/dashlaunch/internal/config"
)

func newSelectForm(title string, options []string, value *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("app").
				Title(title).
				Options(huh.NewOptions(options...)...).
				Value(value),
		),
	)
}

func newConfirmForm(label string, value *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Key("run").
				Title(label).
				Affirmative("Run").
				Negative("Cancel").
				Value(value),
		),
	)
}

func CreateManifestForm(values *ConfigValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("path").
				Title("Manifest Path").
				Description("JSON, YAML or TOML file listing the apps to offer").
				Value(&values.ManifestPath).
				Placeholder(config.DefaultManifestPath).
				Validate(ValidateManifestPath),
		),
	)
}

func CreateInterfaceForm(values *ConfigValues) *huh.Form {
	themes := make([]huh.Option[string], len(config.Themes))
	for i, name := range config.Themes {
		themes[i] = huh.NewOption(name, name)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("theme").
				Title("Theme").
				Description("Color theme for prompts").
				Options(themes...).
				Value(&values.Theme),

			huh.NewSelect[string]().
				Key("sort").
				Title("App Order").
				Description("Order of the selection list").
				Options(
					huh.NewOption("Manifest order", config.SortManifest),
					huh.NewOption("Alphabetical", config.SortName),
				).
				Value(&values.Sort),

			huh.NewInput().
				Key("locale").
				Title("Locale").
				Description("Language used for alphabetical ordering (e.g., en, de, sv)").
				Value(&values.Locale).
				Placeholder(config.DefaultLocale).
				Validate(ValidateLocale),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Key("loop").
				Title("Loop").
				Description("Show the selector again after an app finishes").
				Value(&values.Loop),

			huh.NewConfirm().
				Key("accessible").
				Title("Accessible Mode").
				Description("Plain prompts for screen readers").
				Value(&values.Accessible),

			huh.NewConfirm().
				Key("alt_screen").
				Title("Alternate Screen").
				Description("Draw prompts on the alternate screen buffer").
				Value(&values.AltScreen),
		),
	)
}

func CreateHistoryForm(values *ConfigValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Key("enabled").
				Title("Record History").
				Description("Remember launches and preselect the last app").
				Value(&values.HistoryEnabled),

			huh.NewInput().
				Key("ttl").
				Title("Retention").
				Description("Forget apps not launched for this long (e.g., 720h; empty keeps forever)").
				Value(&values.HistoryTTL).
				Placeholder("2160h").
				Validate(ValidateDuration),

			huh.NewInput().
				Key("directory").
				Title("History Directory").
				Description("Directory for the history database").
				Value(&values.HistoryDirectory).
				Placeholder("~/.dashlaunch/history"),
		),
	)
}

func CreateLoggingForm(values *ConfigValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("level").
				Title("Log Level").
				Description("Minimum log level to display").
				Options(
					huh.NewOption("Trace", "trace"),
					huh.NewOption("Debug", "debug"),
					huh.NewOption("Info", "info"),
					huh.NewOption("Warn", "warn"),
					huh.NewOption("Error", "error"),
				).
				Value(&values.LogLevel),

			huh.NewSelect[string]().
				Key("format").
				Title("Log Format").
				Description("Output format for logs").
				Options(
					huh.NewOption("Pretty (human-readable)", "pretty"),
					huh.NewOption("JSON (structured)", "json"),
				).
				Value(&values.LogFormat),
		),
	)
}

// GetFormForCategory returns the editor form for a category, themed
func GetFormForCategory(category string, values *ConfigValues) *huh.Form {
	var form *huh.Form
	switch category {
	case "manifest":
		form = CreateManifestForm(values)
	case "interface":
		form = CreateInterfaceForm(values)
	case "history":
		form = CreateHistoryForm(values)
	case "logging":
		form = CreateLoggingForm(values)
	default:
		return nil
	}
	return form.WithTheme(Theme(values.Theme))
}
