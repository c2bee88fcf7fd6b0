package model

// RawItem is one catalog entry as the Lenta API returns it, either from the
// listing endpoint or from the per-item detail endpoint. Produced by a fetch,
// consumed once, never mutated.
type RawItem struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name"`
	Prices      PriceBlock  `json:"prices"`
	Attributes  []Attribute `json:"attributes"`
	Description string      `json:"description"`
}

// PriceBlock carries prices in kopecks. Divide by 100 for rubles.
type PriceBlock struct {
	Regular int64 `json:"priceRegular"`
	Promo   int64 `json:"price"`
}

// Attribute is a key/value pair on an item. Only brand resolution reads it:
// Alias is the machine key ("brand"), Name the display key ("Бренд").
type Attribute struct {
	Alias string `json:"alias"`
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Record is the persisted output unit. Exactly these five fields, in this
// order, ever reach a sink; everything else on RawItem is dropped.
type Record struct {
	ID           int64
	Name         string
	RegularPrice float64
	PromoPrice   float64
	Brand        string
}

// Rubles converts a kopeck amount to rubles.
func Rubles(kopecks int64) float64 {
	return float64(kopecks) / 100
}
