package harvest

import (
	"testing"

	"github.com/EVA666999/lenta-parser/internal/model"
)

func testExtractor() BrandExtractor {
	return BrandExtractor{Alias: "brand", Name: "Бренд", MinTokenLength: 1}
}

func TestExtractBrandFromAttributes(t *testing.T) {
	b := testExtractor()

	tests := []struct {
		name string
		item model.RawItem
		want string
	}{
		{
			name: "alias match wins over heuristic",
			item: model.RawItem{
				Name:       "PEPSI MAX",
				Attributes: []model.Attribute{{Alias: "brand", Value: "Pepsi"}},
			},
			want: "Pepsi",
		},
		{
			name: "display name match",
			item: model.RawItem{
				Name:       "Молоко",
				Attributes: []model.Attribute{{Name: "Бренд", Value: "Простоквашино"}},
			},
			want: "Простоквашино",
		},
		{
			name: "first matching attribute wins",
			item: model.RawItem{
				Attributes: []model.Attribute{
					{Alias: "weight", Value: "1kg"},
					{Alias: "brand", Value: "First"},
					{Name: "Бренд", Value: "Second"},
				},
			},
			want: "First",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Extract(tt.item); got != tt.want {
				t.Errorf("Extract() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractBrandHeuristic(t *testing.T) {
	b := testExtractor()

	tests := []struct {
		name     string
		itemName string
		want     string
	}{
		{"run stops at mixed-case token", "COCA COLA Light", "COCA COLA"},
		{"only the first run is used", "COCA COLA Light ZERO", "COCA COLA"},
		{"single qualifying token", "Сок J7 яблочный", "J7"},
		{"leading non-qualifying tokens are skipped", "Напиток PEPSI MAX газированный", "PEPSI MAX"},
		{"cyrillic upper-case run", "Пельмени СИБИРСКАЯ КОЛЛЕКЦИЯ классические", "СИБИРСКАЯ КОЛЛЕКЦИЯ"},
		{"no qualifying token", "Молоко пастеризованное", ""},
		{"single-char token below threshold", "Витамин А капсулы", ""},
		{"empty name", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := b.Extract(model.RawItem{Name: tt.itemName})
			if got != tt.want {
				t.Errorf("Extract(%q) = %q, want %q", tt.itemName, got, tt.want)
			}
		})
	}
}

func TestExtractBrandEmptyAttributesFallsThrough(t *testing.T) {
	b := testExtractor()
	item := model.RawItem{Name: "FANTA апельсин", Attributes: []model.Attribute{}}
	if got := b.Extract(item); got != "FANTA" {
		t.Errorf("Extract() = %q, want %q", got, "FANTA")
	}
}

func TestExtractBrandMinTokenLength(t *testing.T) {
	b := testExtractor()
	b.MinTokenLength = 3

	// "J7" is too short with the raised threshold.
	if got := b.Extract(model.RawItem{Name: "Сок J7 ДОБРЫЙ яблочный"}); got != "ДОБРЫЙ" {
		t.Errorf("Extract() = %q, want %q", got, "ДОБРЫЙ")
	}
}
