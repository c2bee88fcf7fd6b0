package model

import "fmt"

// Store is one pickup point from the store-search endpoint.
type Store struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	City  string `json:"city"`
}

// Target describes one harvesting run: a city with its region, pickup store
// and category ids. Immutable once constructed.
type Target struct {
	City       string
	RegionID   int64
	StoreID    int64
	CategoryID int64
	StoreTitle string
}

// NewTarget builds a Target with the derived store title.
func NewTarget(city string, regionID, storeID, categoryID int64) Target {
	return Target{
		City:       city,
		RegionID:   regionID,
		StoreID:    storeID,
		CategoryID: categoryID,
		StoreTitle: fmt.Sprintf("Магазин Лента %s (ID: %d)", city, storeID),
	}
}

// PageCursor tracks pagination progress: current offset plus the page size
// requested from the source. Only the collector advances it.
type PageCursor struct {
	Offset int
	Limit  int
}
