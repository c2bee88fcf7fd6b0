package repository

import (
	"database/sql"

	"github.com/EVA666999/lenta-parser/internal/model"
)

// RecordRepository persists harvested records per city. One row per item per
// city; re-running a harvest refreshes prices and brand in place.
type RecordRepository struct {
	DB *sql.DB
}

func (r *RecordRepository) Save(city string, rec model.Record) error {
	var exists bool
	err := r.DB.QueryRow(
		"SELECT EXISTS(SELECT 1 FROM harvested_products WHERE item_id = $1 AND city = $2)",
		rec.ID, city,
	).Scan(&exists)
	if err != nil {
		return err
	}

	if exists {
		_, err = r.DB.Exec(`
			UPDATE harvested_products
			SET name = $1, regular_price = $2, promo_price = $3, brand = $4, updated_at = now()
			WHERE item_id = $5 AND city = $6
		`, rec.Name, rec.RegularPrice, rec.PromoPrice, rec.Brand, rec.ID, city)
	} else {
		_, err = r.DB.Exec(`
			INSERT INTO harvested_products
			(item_id, city, name, regular_price, promo_price, brand, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, now())
		`, rec.ID, city, rec.Name, rec.RegularPrice, rec.PromoPrice, rec.Brand)
	}

	return err
}

func (r *RecordRepository) SaveAll(city string, records []model.Record) error {
	for _, rec := range records {
		if err := r.Save(city, rec); err != nil {
			return err
		}
	}
	return nil
}
