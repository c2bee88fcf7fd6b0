package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ContentRepository stores the plain-text rendering of detail payloads.
// Written from enricher workers, so it rides on a pgx pool.
type ContentRepository struct {
	DB *pgxpool.Pool
}

func (r *ContentRepository) Save(ctx context.Context, itemID int64, content string) error {
	// invalid byte sequences would fail the UTF8 encoding on insert
	validContent := strings.ToValidUTF8(content, "")

	_, err := r.DB.Exec(ctx, `
		INSERT INTO product_raw_content (id, item_id, raw_content, fetched_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (item_id)
		DO UPDATE SET raw_content = EXCLUDED.raw_content, fetched_at = now()
	`, uuid.New(), itemID, validContent)

	return err
}
