package search

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"iqaama_backend/internal/model"
)

// BuyYearsMultiplier converts a monthly rent into an indicative sale price:
// monthly x 12 x this many years.
const BuyYearsMultiplier = 15

var pricePrinter = message.NewPrinter(language.English)

// DisplayPrice derives the amount and period to show for a listing mode.
// It always starts from the canonical monthly price, never from a previously
// transformed value, so re-applying a mode cannot compound the transform.
func DisplayPrice(p model.Property, tab model.ListingTab) (amount int, period string) {
	switch tab {
	case model.TabDaily:
		return int(math.Round(float64(p.MonthlyPrice) / 30)), "/night"
	case model.TabBuy:
		return p.MonthlyPrice * 12 * BuyYearsMultiplier, ""
	default:
		return p.MonthlyPrice, "/month"
	}
}

// FormatAmount renders a price the way listings show it: "AED 8,500".
func FormatAmount(currency string, amount int) string {
	if currency == "" {
		currency = "AED"
	}
	return pricePrinter.Sprintf("%s %d", currency, amount)
}
