package models

// Price trend classifications.
const (
	TrendUp     = "up"
	TrendDown   = "down"
	TrendStable = "stable"
)

// MarketPrice is one commodity quote from a market session.
type MarketPrice struct {
	Commodity  string  `json:"commodity"`
	District   string  `json:"district"`
	MinPrice   float64 `json:"minPrice"`
	MaxPrice   float64 `json:"maxPrice"`
	ModalPrice float64 `json:"modalPrice"`
	Trend      string  `json:"trend"`
}

// ClassifyTrend derives a trend label from the session price spread:
// (max-min)/modal above 0.15 is "up", below 0.05 is "down", otherwise
// "stable". A wide spread mapping to "up" matches the deployed
// behavior and is kept as-is.
func ClassifyTrend(minPrice, maxPrice, modalPrice float64) string {
	if modalPrice == 0 {
		return TrendStable
	}
	spread := (maxPrice - minPrice) / modalPrice
	switch {
	case spread > 0.15:
		return TrendUp
	case spread < 0.05:
		return TrendDown
	default:
		return TrendStable
	}
}

// CommodityTranslations maps Agmarknet English commodity names to the
// Marathi names shown to farmers. Unmapped names pass through.
var CommodityTranslations = map[string]string{
	"Onion":        "कांदा",
	"Cotton":       "कापूस",
	"Soyabean":     "सोयाबीन",
	"Soybean":      "सोयाबीन",
	"Arhar (Tur/Red Gram)(Whole)": "तूर",
	"Wheat":        "गहू",
	"Tomato":       "टोमॅटो",
	"Potato":       "बटाटा",
	"Maize":        "मका",
	"Jowar(Sorghum)": "ज्वारी",
	"Bajra(Pearl Millet/Cumbu)": "बाजरी",
	"Green Chilli": "हिरवी मिरची",
	"Garlic":       "लसूण",
	"Banana":       "केळी",
	"Paddy(Dhan)(Common)": "भात",
	"Bengal Gram(Gram)(Whole)": "हरभरा",
	"Turmeric":     "हळद",
	"Sugarcane":    "ऊस",
}

// TranslateCommodity returns the Marathi name for a commodity, or the
// input unchanged when no translation exists.
func TranslateCommodity(name string) string {
	if mr, ok := CommodityTranslations[name]; ok {
		return mr
	}
	return name
}
