package domain

import (
	"fmt"
	"strings"
)

// countryCurrency maps lower-case ISO 3166 country codes to lower-case ISO
// 4217 currency codes. Only a subset of these currencies is supported as Fiat;
// the rest resolve to an invalid fiat and trigger the default fallback.
var countryCurrency = map[string]string{
	// euro area
	"at": "eur", "be": "eur", "cy": "eur", "de": "eur", "ee": "eur",
	"es": "eur", "fi": "eur", "fr": "eur", "gr": "eur", "hr": "eur",
	"ie": "eur", "it": "eur", "lt": "eur", "lu": "eur", "lv": "eur",
	"mt": "eur", "nl": "eur", "pt": "eur", "si": "eur", "sk": "eur",
	"ad": "eur", "mc": "eur", "me": "eur", "sm": "eur", "va": "eur",

	"gb": "gbp", "gg": "gbp", "im": "gbp", "je": "gbp",

	"us": "usd", "as": "usd", "ec": "usd", "gu": "usd", "mh": "usd",
	"pr": "usd", "sv": "usd", "tl": "usd", "vg": "usd", "vi": "usd",

	"au": "aud", "br": "brl", "ca": "cad", "ch": "chf", "cn": "cny",
	"cz": "czk", "dk": "dkk", "hk": "hkd", "in": "inr", "jp": "jpy",
	"kr": "krw", "mx": "mxn", "no": "nok", "nz": "nzd", "pl": "pln",
	"ru": "rub", "se": "sek", "sg": "sgd", "th": "thb", "tr": "try",
	"tw": "twd", "za": "zar",
}

// CurrencyForCountry returns the currency code used in a country.
func CurrencyForCountry(country string) (string, bool) {
	code, ok := countryCurrency[normalizeCountry(country)]
	return code, ok
}

// LocalFiat resolves the supported fiat currency for a country code. It fails
// with ErrInvalidFiat when the country is unknown or its currency is not
// supported.
func LocalFiat(country string) (Fiat, error) {
	code, ok := CurrencyForCountry(country)
	if !ok {
		return 0, fmt.Errorf("%w for country %q", ErrInvalidFiat, normalizeCountry(country))
	}
	return ParseFiat(code)
}

func normalizeCountry(country string) string {
	return strings.ToLower(strings.TrimSpace(country))
}
