package lenta

import (
	"context"
	"fmt"
	"net/http"

	"github.com/EVA666999/lenta-parser/internal/model"
)

// FetchDetail requests the extended item payload, including the attribute
// list the listing response omits.
func (c *Client) FetchDetail(ctx context.Context, itemID int64) (*model.RawItem, error) {
	var out model.RawItem
	path := fmt.Sprintf("/catalog/items/%d", itemID)
	if err := c.doJSON(ctx, http.MethodGet, "detail", path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
