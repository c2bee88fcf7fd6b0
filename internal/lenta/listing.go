package lenta

import (
	"context"
	"net/http"
	"strconv"

	"github.com/EVA666999/lenta-parser/internal/model"
)

type sortSpec struct {
	Order string `json:"order"`
	Type  string `json:"type"`
}

type regionFilter struct {
	Key    string   `json:"key"`
	Values []string `json:"values"`
}

type listingFilters struct {
	Multicheckbox []regionFilter `json:"multicheckbox"`
}

type listingRequest struct {
	CategoryID     int64          `json:"categoryId"`
	Limit          int            `json:"limit"`
	Offset         int            `json:"offset"`
	Sort           sortSpec       `json:"sort"`
	RegionID       int64          `json:"regionId"`
	PickupStoreID  int64          `json:"pickupStoreId"`
	ShowOutOfStock bool           `json:"showOutOfStock"`
	Filters        listingFilters `json:"filters"`
}

type listingResponse struct {
	Items []model.RawItem `json:"items"`
}

// FetchPage requests one listing page for the target. Sort order is fixed
// (popularity, descending) and out-of-stock items are excluded, so successive
// offsets walk a stable availability-filtered ranking.
func (c *Client) FetchPage(ctx context.Context, target model.Target, cursor model.PageCursor) ([]model.RawItem, error) {
	payload := listingRequest{
		CategoryID:    target.CategoryID,
		Limit:         cursor.Limit,
		Offset:        cursor.Offset,
		Sort:          sortSpec{Order: "desc", Type: "popular"},
		RegionID:      target.RegionID,
		PickupStoreID: target.StoreID,
		Filters: listingFilters{
			Multicheckbox: []regionFilter{
				{Key: "region", Values: []string{strconv.FormatInt(target.RegionID, 10)}},
			},
		},
	}

	var out listingResponse
	if err := c.doJSON(ctx, http.MethodPost, "listing", "/catalog/items", payload, &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}
