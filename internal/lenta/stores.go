package lenta

import (
	"context"
	"net/http"

	"github.com/EVA666999/lenta-parser/internal/model"
)

type storeSearchRequest struct {
	RegionID    int64    `json:"regionId"`
	SearchQuery string   `json:"searchQuery"`
	Limit       int      `json:"limit"`
	Page        int      `json:"page"`
	Sort        sortSpec `json:"sort"`
}

type storeSearchResponse struct {
	Items []model.Store `json:"items"`
}

// SearchStores returns one page of pickup points for a region, nearest
// first. Pages start at 1; an empty page means the region is exhausted.
func (c *Client) SearchStores(ctx context.Context, regionID int64, page, pageSize int) ([]model.Store, error) {
	payload := storeSearchRequest{
		RegionID:    regionID,
		SearchQuery: "",
		Limit:       pageSize,
		Page:        page,
		Sort:        sortSpec{Order: "asc", Type: "distance"},
	}

	var out storeSearchResponse
	if err := c.doJSON(ctx, http.MethodPost, "stores", "/stores/pickup/search", payload, &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}
