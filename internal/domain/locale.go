package domain

import "slices"

const DefaultLocale = "en_US"

var supportedLocales = []string{
	"en_US", "nl_NL", "nl_BE", "fr_FR",
	"fr_BE", "de_DE", "de_AT", "de_CH",
	"es_ES", "ca_ES", "pt_PT", "it_IT",
	"nb_NO", "sv_SE", "fi_FI", "da_DK",
	"is_IS", "hu_HU", "pl_PL", "lv_LV",
	"lt_LT",
}

// ResolveLocale maps the caller's language tag to a checkout locale the
// gateway accepts.
func ResolveLocale(lang string) string {
	if slices.Contains(supportedLocales, lang) {
		return lang
	}
	return DefaultLocale
}
