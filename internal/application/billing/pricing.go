package billing

import "github.com/shopspring/decimal"

// PricingTier precio de publicación según la duración del aviso.
type PricingTier struct {
	Days        int
	Price       decimal.Decimal // en unidades mayores de la moneda configurada
	Description string
}

// listingDurationPricing tarifas vigentes. La duración enviada en el alta de
// un aviso debe corresponder exactamente a uno de estos niveles.
var listingDurationPricing = []PricingTier{
	{Days: 7, Price: decimal.NewFromInt(99), Description: "Publicación estándar de 7 días"},
	{Days: 30, Price: decimal.NewFromInt(179), Description: "Publicación destacada de 30 días"},
	{Days: 60, Price: decimal.NewFromInt(269), Description: "Publicación extendida de 60 días"},
	{Days: 90, Price: decimal.NewFromInt(349), Description: "Publicación premium de 90 días"},
}

// PriceForDuration devuelve el nivel de precio para una duración, si existe.
func PriceForDuration(days int) (PricingTier, bool) {
	for _, tier := range listingDurationPricing {
		if tier.Days == days {
			return tier, true
		}
	}
	return PricingTier{}, false
}
