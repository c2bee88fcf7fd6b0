// Package sink writes harvest output as CSV files.
package sink

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/EVA666999/lenta-parser/internal/model"
)

// Column order is fixed; consumers depend on it.
var recordHeader = []string{"id", "name", "regular_price", "promo_price", "brand"}

var storeHeader = []string{"id", "title", "city"}

// CSVWriter persists record batches, one file per target. Writes go through
// a temp file and a rename, so a consumer sees either the complete file or
// nothing.
type CSVWriter struct {
	Dir        string
	MaxRecords int
	Log        *slog.Logger
}

// WriteRecords writes at most MaxRecords rows to name inside Dir.
func (w *CSVWriter) WriteRecords(name string, records []model.Record) error {
	if w.MaxRecords > 0 && len(records) > w.MaxRecords {
		records = records[:w.MaxRecords]
	}

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			strconv.FormatInt(r.ID, 10),
			r.Name,
			strconv.FormatFloat(r.RegularPrice, 'f', -1, 64),
			strconv.FormatFloat(r.PromoPrice, 'f', -1, 64),
			r.Brand,
		})
	}

	if err := w.writeFile(name, recordHeader, rows); err != nil {
		return err
	}
	w.Log.Info("records written", "file", name, "rows", len(rows))
	return nil
}

// WriteStores writes the store-directory export.
func (w *CSVWriter) WriteStores(name string, stores []model.Store) error {
	rows := make([][]string, 0, len(stores))
	for _, s := range stores {
		rows = append(rows, []string{strconv.FormatInt(s.ID, 10), s.Title, s.City})
	}

	if err := w.writeFile(name, storeHeader, rows); err != nil {
		return err
	}
	w.Log.Info("stores written", "file", name, "rows", len(rows))
	return nil
}

func (w *CSVWriter) writeFile(name string, header []string, rows [][]string) error {
	tmp, err := os.CreateTemp(w.Dir, name+".tmp*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	cw := csv.NewWriter(tmp)
	if err := cw.Write(header); err != nil {
		tmp.Close()
		return fmt.Errorf("write header: %w", err)
	}
	if err := cw.WriteAll(rows); err != nil {
		tmp.Close()
		return fmt.Errorf("write rows: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), filepath.Join(w.Dir, name)); err != nil {
		return fmt.Errorf("rename into place: %w", err)
	}
	return nil
}
